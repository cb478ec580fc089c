// Package config centralizes every knob the solver, the backdoor enumerator
// and the evolutionary search read at construction time. Nothing below is
// read from package-level state; callers build a Config and pass it down.
package config

import (
	"log"
	"os"
)

// Config holds solver, enumerator and EA tuning parameters plus the shared
// logger and output destinations.
type Config struct {
	Logger  *log.Logger
	Verbose int

	// CDCL heuristics.
	VarDecay      float64
	ClaDecay      float64
	RandomVarFreq float64
	RndPolarity   bool
	RndInitAct    bool
	CCMinMode     int
	LubyRestart   bool
	RestartFirst  float64
	RestartInc    float64
	GCFrac        float64
	LearntSizeInc float64
	RandomSeed    float64

	// Resource limits, best effort.
	CPULimSecs int
	MemLimMB   int

	// (1+1) EA knobs.
	EASeed         int64
	EANumRuns      int
	EANumIters     int
	EAInstanceSize int
	EAVars         string
	EABans         string
	EAOutputPath   string
}

// New returns a Config populated with the teacher's defaults for the solver
// heuristics plus the defaults from the original EA command line.
func New() *Config {
	return &Config{
		Logger:         log.New(os.Stdout, "", log.Ldate|log.Ltime),
		Verbose:        1,
		VarDecay:       0.95,
		ClaDecay:       0.999,
		RandomVarFreq:  0.02,
		CCMinMode:      2,
		RestartFirst:   100,
		RestartInc:     2.0,
		GCFrac:         0.20,
		LearntSizeInc:  1.1,
		EASeed:         42,
		EANumRuns:      1,
		EANumIters:     1000,
		EAInstanceSize: 10,
		EAOutputPath:   "backdoors.txt",
	}
}

// Logf writes a log line only when verbosity is at least the given level.
func (c *Config) Logf(level int, format string, args ...interface{}) {
	if c.Verbose >= level {
		c.Logger.Printf(format, args...)
	}
}
