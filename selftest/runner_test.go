package selftest

import (
	"encoding/json"
	"testing"

	"github.com/ozontech/numscan/cfg"
	"github.com/ozontech/numscan/metric"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newTestRunner() (*Runner, *metric.Ctl) {
	ctl := metric.NewCtl("test", prometheus.NewRegistry())
	return NewRunner(zap.NewNop().Sugar(), ctl), ctl
}

func TestDefaultSuitesPass(t *testing.T) {
	r, _ := newTestRunner()

	report, err := r.Run(DefaultSuites())
	require.NoError(t, err)

	assert.True(t, report.OK(), report.Text())
	assert.Equal(t, int64(3+16+8), report.Passed)
	assert.Equal(t, int64(0), report.Failed)
	assert.Empty(t, report.Failures)
	require.Len(t, report.Suites, 3)
	assert.Equal(t, SuiteResult{Name: cfg.KindAtoi, Passed: 16}, report.Suites[1])
}

func TestDefaultSuitesAreFresh(t *testing.T) {
	first := DefaultSuites()
	first[1].Cases[0].Want = 11

	second := DefaultSuites()
	assert.Equal(t, int64(10), second[1].Cases[0].Want)
}

func TestRunReportsMismatches(t *testing.T) {
	r, _ := newTestRunner()

	suites := []Suite{
		{
			Name: "broken",
			Kind: cfg.KindAtoi,
			Cases: []Case{
				{Name: "ok", Input: "10", Want: 10},
				{Name: "wrong", Input: "10 hello", Want: 11},
			},
		},
		{
			Name:  "length",
			Kind:  cfg.KindLength,
			Cases: []Case{{Name: "wrong", Input: "abc", Want: 4}},
		},
	}

	report, err := r.Run(suites)
	require.NoError(t, err)

	assert.False(t, report.OK())
	assert.Equal(t, int64(1), report.Passed)
	assert.Equal(t, int64(2), report.Failed)
	assert.Equal(t, []Failure{
		{Suite: "broken", Case: "wrong", Input: "10 hello", Want: 11, Got: 10},
		{Suite: "length", Case: "wrong", Input: "abc", Want: 4, Got: 3},
	}, report.Failures)
	assert.Contains(t, report.Text(), `FAIL broken/wrong: input "10 hello", expected 11, result was 10`)
	assert.Contains(t, report.Text(), "Passed 1, failed 2")
}

func TestRunStartsFromZero(t *testing.T) {
	r, _ := newTestRunner()
	suites := []Suite{{Name: "atoi", Kind: cfg.KindAtoi, Cases: []Case{{Name: "bad", Input: "1", Want: 2}}}}

	for i := 0; i < 3; i++ {
		report, err := r.Run(suites)
		require.NoError(t, err)
		assert.Equal(t, int64(1), report.Failed)
		assert.Equal(t, int64(0), report.Passed)
	}
}

func TestRunUnknownKind(t *testing.T) {
	r, _ := newTestRunner()

	_, err := r.Run([]Suite{{Name: "x", Kind: "atof"}})
	assert.ErrorIs(t, err, cfg.ErrUnknownKind)
}

func TestRunMetrics(t *testing.T) {
	r, ctl := newTestRunner()

	_, err := r.Run(DefaultSuites())
	require.NoError(t, err)

	passed := ctl.RegisterCounterVec("cases_passed_total", "", "suite")
	assert.Equal(t, float64(16), passed.WithLabelValues(cfg.KindAtoi).ToFloat64())
	assert.Equal(t, float64(8), passed.WithLabelValues(cfg.KindLength).ToFloat64())
	assert.Equal(t, float64(3), passed.WithLabelValues(cfg.KindDigit).ToFloat64())

	failed := ctl.RegisterCounterVec("cases_failed_total", "", "suite")
	assert.Equal(t, float64(0), failed.WithLabelValues(cfg.KindAtoi).ToFloat64())

	_, err = r.Run(DefaultSuites())
	require.NoError(t, err)
	assert.Equal(t, float64(2), ctl.RegisterCounter("runs_total", "").ToFloat64())
	assert.Equal(t, float64(32), passed.WithLabelValues(cfg.KindAtoi).ToFloat64())
}

func TestReportJSON(t *testing.T) {
	report := &Report{
		Passed:   1,
		Failed:   1,
		Suites:   []SuiteResult{{Name: "atoi", Passed: 1, Failed: 1}},
		Failures: []Failure{{Suite: "atoi", Case: "quoted", Input: `say "5"`, Want: 5, Got: 0}},
	}

	var decoded struct {
		Passed int64 `json:"passed"`
		Failed int64 `json:"failed"`
		Suites []struct {
			Name   string `json:"name"`
			Passed int    `json:"passed"`
			Failed int    `json:"failed"`
		} `json:"suites"`
		Failures []struct {
			Suite string `json:"suite"`
			Case  string `json:"case"`
			Input string `json:"input"`
			Want  int64  `json:"want"`
			Got   int64  `json:"got"`
		} `json:"failures"`
	}
	require.NoError(t, json.Unmarshal([]byte(report.JSON()), &decoded))

	assert.Equal(t, int64(1), decoded.Passed)
	assert.Equal(t, int64(1), decoded.Failed)
	require.Len(t, decoded.Suites, 1)
	assert.Equal(t, "atoi", decoded.Suites[0].Name)
	require.Len(t, decoded.Failures, 1)
	assert.Equal(t, `say "5"`, decoded.Failures[0].Input)
	assert.Equal(t, int64(5), decoded.Failures[0].Want)
}

func TestFromConfig(t *testing.T) {
	c, err := cfg.ParseConfig([]byte(`suites: {length: [{input: "ab", want: 2}], atoi: [{name: "n", input: "7", want: 7}]}`))
	require.NoError(t, err)

	suites := FromConfig(c)
	require.Len(t, suites, 2)
	assert.Equal(t, Suite{Name: "atoi_config", Kind: cfg.KindAtoi, Cases: []Case{{Name: "n", Input: "7", Want: 7}}}, suites[0])
	assert.Equal(t, "length_config", suites[1].Name)

	r, _ := newTestRunner()
	report, err := r.Run(suites)
	require.NoError(t, err)
	assert.True(t, report.OK())
}

func TestFilter(t *testing.T) {
	suites := append(DefaultSuites(), Suite{Name: "atoi_config", Kind: cfg.KindAtoi})

	assert.Len(t, Filter(suites, nil), 4)
	assert.Len(t, Filter(suites, []string{cfg.KindAtoi}), 2)
	assert.Len(t, Filter(suites, []string{"atoi_config"}), 1)
	assert.Empty(t, Filter(suites, []string{"nope"}))
}
