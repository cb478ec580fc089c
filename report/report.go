// Package report writes the (1+1) evolutionary search's results to an
// append-only text file, one line per completed run.
package report

import (
	"fmt"
	"os"
)

// Line is one reported result: the best fitness found, the iteration it
// was found on, and the variable set (0-based internal indices) it names.
type Line struct {
	Score     float64
	Rho       float64
	Hard      uint64
	Iteration int
	Vars      []int
}

// Truncate clears path at the start of a run, so repeated invocations never
// accumulate stale results from a previous input file.
func Truncate(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	return f.Close()
}

// Append writes one result line to path, creating it if necessary.
func Append(path string, l Line) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = fmt.Fprintln(f, format(l))
	return err
}

func format(l Line) string {
	score := fmt.Sprintf("%g", l.Score)
	if l.Score > 1e300 {
		score = "+Inf"
	}
	return fmt.Sprintf(
		"Best fitness %s (rho=%g, hard=%d) on iteration %d with %d variables: %s",
		score, l.Rho, l.Hard, l.Iteration, len(l.Vars), formatVars(l.Vars),
	)
}

func formatVars(vars []int) string {
	s := "["
	for i, v := range vars {
		if i > 0 {
			s += ","
		}
		s += fmt.Sprintf("%d", v)
	}
	return s + "]"
}
