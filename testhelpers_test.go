package getopt

import (
	"bytes"
	"errors"
	"fmt"
	"testing"
)

func checkError(t *testing.T, got, expected error) {
	t.Helper()
	if (got == nil && expected != nil) || (got != nil && expected == nil) || (got != nil && expected != nil && !errors.Is(got, expected)) {
		t.Errorf("wrong error received: got = '%#v', want '%#v'", got, expected)
	}
}

// setupTestLogging - Defines an output for the default Logger and returns a
// function that prints the output if the output is not empty.
//
// Usage:
//
//	logTestOutput := setupTestLogging(t)
//	defer logTestOutput()
func setupTestLogging(t *testing.T) func() {
	s := ""
	buf := bytes.NewBufferString(s)
	Logger.SetOutput(buf)
	return func() {
		if len(buf.String()) > 0 {
			t.Log("\n" + buf.String())
		}
	}
}

// Test helper to compare two string outputs and find the first difference
func firstDiff(got, expected string) string {
	same := ""
	for i, gc := range got {
		if len([]rune(expected)) <= i {
			return fmt.Sprintf("got:\n%s\nIndex: %d | diff: got '%s' - exp '%s'\n", got, len(expected), got, expected)
		}
		if gc != []rune(expected)[i] {
			return fmt.Sprintf("got:\n%s\nIndex: %d | diff: got '%c' - exp '%c'\n%s\n", got, i, gc, []rune(expected)[i], same)
		}
		same += string(gc)
	}
	if len(expected) > len(got) {
		return fmt.Sprintf("got:\n%s\nIndex: %d | diff: got '%s' - exp '%s'\n", got, len(got), got, expected)
	}
	return ""
}

// captureDiagnostics - Diagnostics that keep every reported line.
type captureDiagnostics struct {
	lines   []string
	results []Result
}

func (c *captureDiagnostics) Report(r Result, line string) {
	c.lines = append(c.lines, line)
	c.results = append(c.results, r)
}

// loopResult - Aggregated outcome of a full scan session over the
// a, b, p and q test options.
type loopResult struct {
	aSeen        int
	bSeen        int
	p            string
	q            string
	nonOptions   []string
	unrecognized rune
	optind       int
	output       bool
	argv         []string
}

func (l loopResult) String() string {
	return fmt.Sprintf("{a:%d b:%d p:%q q:%q nonOptions:%q unrecognized:%q optind:%d output:%v argv:%q}",
		l.aSeen, l.bSeen, l.p, l.q, l.nonOptions, l.unrecognized, l.optind, l.output, l.argv)
}

type loopConfig struct {
	start          int
	reportErrors   bool
	posixlyCorrect bool
}

// getoptLoop - Runs a complete session and aggregates the results.
func getoptLoop(args []string, optstring string, cfg loopConfig) loopResult {
	diag := &captureDiagnostics{}
	s := New(args, optstring)
	s.Diagnostics = diag
	s.ReportErrors = cfg.reportErrors
	s.PosixlyCorrect = cfg.posixlyCorrect
	s.Optind = cfg.start

	res := loopResult{nonOptions: []string{}}
	for {
		r := s.Next()
		if r.Kind == KindDone {
			break
		}
		switch r.Kind {
		case KindOption:
			switch r.Char {
			case 'a':
				res.aSeen++
			case 'b':
				res.bSeen++
			case 'p':
				res.p = r.Arg
			case 'q':
				res.q = r.Arg
			default:
				res.unrecognized = r.Char
			}
		case KindNonOption:
			res.nonOptions = append(res.nonOptions, r.Arg)
		case KindUnrecognized, KindMissingArgument, KindAmbiguousColon:
			res.unrecognized = r.Char
		}
	}
	res.optind = s.Optind
	res.output = len(diag.lines) > 0
	res.argv = append([]string{}, s.Args()...)
	return res
}

// sessionConfigs - Both start sentinels, with and without POSIXLY_CORRECT.
func sessionConfigs() []loopConfig {
	configs := []loopConfig{}
	for _, posixly := range []bool{true, false} {
		for _, start := range []int{StartIndex, 1} {
			configs = append(configs, loopConfig{start: start, reportErrors: true, posixlyCorrect: posixly})
		}
	}
	return configs
}

func argv(s ...string) []string {
	return append([]string{"program"}, s...)
}
