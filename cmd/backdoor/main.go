// Command backdoor reads a DIMACS CNF instance, runs the CDCL solver over
// it, and then searches for a small strong backdoor variable set using the
// (1+1) evolutionary algorithm over the propagation-based assumption
// enumerator.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"time"

	"github.com/ericr/backdoor/config"
	"github.com/ericr/backdoor/ea"
	"github.com/ericr/backdoor/encoding"
	"github.com/ericr/backdoor/solver"
	"github.com/ericr/backdoor/tribool"
)

// Exit codes match the original command line: 10 when the instance is
// satisfiable, 20 when unsatisfiable, 0 when the search was cut short by a
// resource limit or interrupt and no verdict was reached.
const (
	exitSAT           = 10
	exitUNSAT         = 20
	exitIndeterminate = 0
	exitUsage         = 2
)

func main() {
	conf := config.New()

	cpuLim, memLim := parseFlags(conf)
	for _, spec := range []string{conf.EAVars, conf.EABans} {
		if _, err := ea.ParseIntervals(spec); err != nil {
			fmt.Fprintf(os.Stderr, "backdoor: %v\n", err)
			os.Exit(exitUsage)
		}
	}

	inputPath, outputPath := flag.Arg(0), flag.Arg(1)
	if outputPath != "" {
		conf.EAOutputPath = outputPath
	}

	clauses, header, err := encoding.ParseDimacsFile(inputPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "backdoor: %v\n", err)
		os.Exit(exitUsage)
	}
	nVars := declaredVarCount(header, clauses)
	conf.Logf(1, "parsed %s: %d declared variables, %d clauses", inputPath, nVars, len(clauses))

	s := solver.New(conf)
	// Reserve every declared variable, in declared order, before any clause
	// is added. newVar otherwise numbers variables lazily in order of first
	// appearance, which only coincides with declared 0-based numbering when
	// every clause happens to reference variables in ascending order; the EA
	// pool builder below deals exclusively in declared 0-based ids and needs
	// the two spaces to coincide.
	s.ReserveVars(nVars)
	for _, clause := range clauses {
		if !s.AddClause(clause) {
			conf.Logf(1, "formula falsified while adding clauses")
			fmt.Fprintln(os.Stdout, "UNSATISFIABLE")
			os.Exit(exitUNSAT)
		}
	}

	watch := watchResourceLimits(s, cpuLim, memLim, conf)
	defer watch.cancel()

	tStart := time.Now()
	status := s.SolveLifted([]int{})
	displayStats(conf.Logger, s, time.Since(tStart))

	switch {
	case status.True():
		fmt.Fprintln(os.Stdout, "SAT")
		runBackdoorSearch(conf, s, nVars, clauses)
		os.Exit(exitSAT)
	case status.False():
		fmt.Fprintln(os.Stdout, "UNSATISFIABLE")
		os.Exit(exitUNSAT)
	default:
		fmt.Fprintln(os.Stdout, "INDETERMINATE")
		os.Exit(exitIndeterminate)
	}
}

// runBackdoorSearch builds the EA's variable pool from the solved instance
// and drives cfg.EANumRuns independent (1+1) EA runs against it. nVars and
// clauses must be in the same declared 0-based variable space s.ReserveVars
// was called with, since assigned below feeds pool ids straight into
// s.Value.
func runBackdoorSearch(conf *config.Config, s *solver.Solver, nVars int, clauses [][]int) {
	pool, err := ea.BuildPool(nVars, clauses, conf.EAVars, conf.EABans, func(v int) bool {
		return s.Value(v) != tribool.Undef
	})
	if err != nil {
		conf.Logger.Printf("backdoor: building EA pool: %v", err)
		return
	}
	if len(pool) == 0 {
		conf.Logf(1, "EA pool is empty, skipping backdoor search")
		return
	}

	results, err := ea.RunAll(conf, s, pool)
	if err != nil {
		conf.Logger.Printf("backdoor: EA run: %v", err)
		return
	}
	for i, res := range results {
		conf.Logger.Printf("run %d: best fitness %.4f (rho=%.4f, hard=%d) with %d variables, found at iteration %d",
			i, res.Best.Score, res.Best.Rho, res.Best.Hard, len(res.BestVars), res.BestIteration)
	}
}

// declaredVarCount returns the number of declared variables: the "p cnf V
// C" header is advisory, so this also covers the case where a clause
// references a variable beyond what the header declared.
func declaredVarCount(header encoding.Header, clauses [][]int) int {
	n := header.NVars
	for _, clause := range clauses {
		for _, p := range clause {
			if p < 0 {
				p = -p
			}
			if p > n {
				n = p
			}
		}
	}
	return n
}

func displayStats(logger *log.Logger, s *solver.Solver, t time.Duration) {
	logger.Printf(
		"time=%.3fs variables=%d constraints=%d conflicts=%d propagations=%d restarts=%d decisions=%d",
		t.Seconds(), s.NVars(), s.NConstrs(), s.NConflicts(), s.NPropagations(), s.NRestarts(), s.NDecisions(),
	)
}

type limitWatch struct {
	cancel func()
}

// watchResourceLimits enforces the best-effort -cpu-lim/-mem-lim knobs. Go
// offers no setrlimit equivalent for a single goroutine's CPU time, so a
// timer stands in for CPU time and a periodic runtime.ReadMemStats poll
// stands in for RSS; both trip the solver's cooperative interrupt flag
// rather than killing the process outright.
func watchResourceLimits(s *solver.Solver, cpuLimSecs, memLimMB int, conf *config.Config) limitWatch {
	ctx, cancel := context.WithCancel(context.Background())

	if cpuLimSecs > 0 {
		timer := time.AfterFunc(time.Duration(cpuLimSecs)*time.Second, func() {
			conf.Logf(1, "cpu-lim of %ds reached, interrupting", cpuLimSecs)
			s.Interrupt()
		})
		go func() {
			<-ctx.Done()
			timer.Stop()
		}()
	}
	if memLimMB > 0 {
		go func() {
			ticker := time.NewTicker(500 * time.Millisecond)
			defer ticker.Stop()
			var mem runtime.MemStats

			for {
				select {
				case <-ctx.Done():
					return
				case <-ticker.C:
					runtime.ReadMemStats(&mem)
					if mem.Alloc > uint64(memLimMB)*1024*1024 {
						conf.Logf(1, "mem-lim of %dMB reached, interrupting", memLimMB)
						s.Interrupt()
						return
					}
				}
			}
		}()
	}
	return limitWatch{cancel: cancel}
}

func parseFlags(c *config.Config) (cpuLim, memLim int) {
	flag.IntVar(&c.Verbose, "verb", c.Verbose, "verbosity level: 0, 1 or 2")
	flag.IntVar(&cpuLim, "cpu-lim", 0, "best-effort CPU time limit in seconds, 0 disables it")
	flag.IntVar(&memLim, "mem-lim", 0, "best-effort memory limit in MB, 0 disables it")
	flag.Int64Var(&c.EASeed, "ea-seed", c.EASeed, "EA PRNG seed")
	flag.IntVar(&c.EANumRuns, "ea-num-runs", c.EANumRuns, "number of independent EA runs")
	flag.IntVar(&c.EANumIters, "ea-num-iters", c.EANumIters, "number of (1+1) iterations per run")
	flag.IntVar(&c.EAInstanceSize, "ea-instance-size", c.EAInstanceSize, "number of variables per backdoor candidate")
	flag.StringVar(&c.EAVars, "ea-vars", "", "comma-separated 0-based variable intervals to restrict the EA pool to")
	flag.StringVar(&c.EABans, "ea-bans", "", "comma-separated 0-based variable intervals to exclude from the EA pool")
	flag.StringVar(&c.EAOutputPath, "ea-output-path", c.EAOutputPath, "path backdoor search results are appended to")
	flag.Usage = flagUsage
	flag.Parse()

	if flag.NArg() < 1 {
		flagUsage()
		os.Exit(exitUsage)
	}
	c.Logger = log.New(os.Stdout, "", log.Ldate|log.Ltime)
	return cpuLim, memLim
}

func flagUsage() {
	fmt.Fprintf(os.Stderr, "Usage: backdoor <input.cnf> [<output-path>] [args]\n\nValid Arguments:\n")
	flag.PrintDefaults()
}
