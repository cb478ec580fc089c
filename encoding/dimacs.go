// Package encoding reads DIMACS CNF, the plain-text format for Boolean
// formulas in conjunctive normal form, from both uncompressed and gzipped
// sources.
package encoding

import (
	"bufio"
	"bytes"
	"compress/gzip"
	"io"
	"os"
	"strconv"
)

// Header carries the "p cnf V C" declaration: the declared variable count
// and clause count. Both are advisory; the parser never trusts them over
// what it actually reads, but callers use NVars to size pools and models.
type Header struct {
	NVars    int
	NClauses int
}

// ParseDimacs reads DIMACS CNF from in, returning one []int per clause
// (signed, 1-based literals, no trailing 0) and the declared header.
func ParseDimacs(in io.Reader) ([][]int, Header, error) {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	sentences := [][]int{}
	header := Header{}

	for scanner.Scan() {
		fields := bytes.Fields(scanner.Bytes())
		if len(fields) == 0 {
			continue
		}
		switch string(fields[0]) {
		case "c":
			continue
		case "p":
			if len(fields) >= 4 {
				header.NVars, _ = strconv.Atoi(string(fields[2]))
				header.NClauses, _ = strconv.Atoi(string(fields[3]))
			}
			continue
		}

		sentence := make([]int, 0, len(fields))
		for _, field := range fields {
			p, err := strconv.Atoi(string(field))
			if err != nil {
				return nil, header, err
			}
			if p != 0 {
				sentence = append(sentence, p)
			}
		}
		if len(sentence) > 0 {
			sentences = append(sentences, sentence)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, header, err
	}
	return sentences, header, nil
}

// ParseDimacsFile opens path, transparently decompressing it if it is
// gzipped (detected by the gzip magic bytes, not by file extension), and
// parses it as DIMACS CNF.
func ParseDimacsFile(path string) ([][]int, Header, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, Header{}, err
	}
	defer f.Close()

	br := bufio.NewReader(f)
	magic, err := br.Peek(2)
	if err == nil && len(magic) == 2 && magic[0] == 0x1f && magic[1] == 0x8b {
		gz, err := gzip.NewReader(br)
		if err != nil {
			return nil, Header{}, err
		}
		defer gz.Close()

		return ParseDimacs(gz)
	}
	return ParseDimacs(br)
}
