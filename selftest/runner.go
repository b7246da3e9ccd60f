package selftest

import (
	"fmt"
	"sync"
	"time"

	"github.com/ozontech/numscan/cfg"
	"github.com/ozontech/numscan/metric"
	"go.uber.org/atomic"
	"go.uber.org/zap"
)

const subsystemName = "selftest"

type Failure struct {
	Suite string
	Case  string
	Input string
	Want  int64
	Got   int64
}

type SuiteResult struct {
	Name   string
	Passed int
	Failed int
}

// Runner checks suites and reports mismatches. It keeps no tallies
// between runs, every Run starts from zero.
type Runner struct {
	logger *zap.SugaredLogger

	runsMetric        *metric.Counter
	casesPassedMetric *metric.CounterVec
	casesFailedMetric *metric.CounterVec
	runTimeMetric     *metric.HistogramVec
}

func NewRunner(logger *zap.SugaredLogger, ctl *metric.Ctl) *Runner {
	return &Runner{
		logger:            logger.Named(subsystemName),
		runsMetric:        ctl.RegisterCounter("runs_total", "Self-test runs"),
		casesPassedMetric: ctl.RegisterCounterVec("cases_passed_total", "Self-test cases that matched", "suite"),
		casesFailedMetric: ctl.RegisterCounterVec("cases_failed_total", "Self-test cases that didn't match", "suite"),
		runTimeMetric:     ctl.RegisterHistogramVec("suite_run_seconds", "Time spent to check a suite", metric.SecondsBucketsDetailedNano, "suite"),
	}
}

// Run checks all suites concurrently, one goroutine per suite.
func (r *Runner) Run(suites []Suite) (*Report, error) {
	for i := range suites {
		switch suites[i].Kind {
		case cfg.KindDigit, cfg.KindAtoi, cfg.KindLength:
		default:
			return nil, fmt.Errorf("suite %q: %w: %q", suites[i].Name, cfg.ErrUnknownKind, suites[i].Kind)
		}
	}

	r.runsMetric.Inc()

	var (
		passed = atomic.NewInt64(0)
		failed = atomic.NewInt64(0)

		results  = make([]SuiteResult, len(suites))
		failures = make([][]Failure, len(suites))
		wg       sync.WaitGroup
	)

	for i := range suites {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()

			results[i], failures[i] = r.runSuite(&suites[i])
			passed.Add(int64(results[i].Passed))
			failed.Add(int64(results[i].Failed))
		}(i)
	}
	wg.Wait()

	report := &Report{
		Passed: passed.Load(),
		Failed: failed.Load(),
		Suites: results,
	}
	for _, f := range failures {
		report.Failures = append(report.Failures, f...)
	}

	r.logger.Infof("passed %d, failed %d", report.Passed, report.Failed)

	return report, nil
}

func (r *Runner) runSuite(s *Suite) (SuiteResult, []Failure) {
	start := time.Now()
	defer r.runTimeMetric.WithLabelValues(s.Name).ObserveSince(start)

	result := SuiteResult{Name: s.Name}
	var failures []Failure
	for i, c := range s.Cases {
		got := s.Eval(c.Input)
		if got == c.Want {
			result.Passed++
			continue
		}

		result.Failed++
		failures = append(failures, Failure{Suite: s.Name, Case: c.Name, Input: c.Input, Want: c.Want, Got: got})
		r.logger.Errorf("suite %s test %d (%s) failed, input %q, expected %d, result was %d", s.Name, i, c.Name, c.Input, c.Want, got)
	}

	r.casesPassedMetric.WithLabelValues(s.Name).Add(float64(result.Passed))
	r.casesFailedMetric.WithLabelValues(s.Name).Add(float64(result.Failed))
	r.logger.Debugf("suite %s done: passed %d, failed %d", s.Name, result.Passed, result.Failed)

	return result, failures
}
