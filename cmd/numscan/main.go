package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kingpin"
	"github.com/ozontech/numscan/buildinfo"
	"github.com/ozontech/numscan/cfg"
	"github.com/ozontech/numscan/logger"
	"github.com/ozontech/numscan/metric"
	"github.com/ozontech/numscan/selftest"
	"github.com/ozontech/numscan/xstrconv"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/automaxprocs/maxprocs"
)

const (
	formatText = "text"
	formatJSON = "json"
)

var (
	logLevel = kingpin.Flag("log-level", `Log level, overrides LOG_LEVEL`).Enum("debug", "info", "warn", "error", "fatal")

	selftestCmd = kingpin.Command("selftest", "Check primitives against built-in tables").Default()
	config      = selftestCmd.Flag("config", `YAML file with extra cases`).ExistingFile()
	suites      = selftestCmd.Flag("suite", `Run only suites with this name or kind, repeatable`).Strings()
	format      = selftestCmd.Flag("format", `Report format`).Default(formatText).Enum(formatText, formatJSON)
	metricsFile = selftestCmd.Flag("metrics-file", `Write metrics of the run in prometheus text format to this file`).String()

	atoiCmd    = kingpin.Command("atoi", "Print the integer value of each input")
	atoiInputs = atoiCmd.Arg("input", "Strings to convert").Required().Strings()

	lengthCmd    = kingpin.Command("length", "Print the length of each input")
	lengthInputs = lengthCmd.Arg("input", "Strings to measure").Required().Strings()
)

func main() {
	kingpin.Version(buildinfo.Version)
	command := kingpin.Parse()

	if *logLevel != "" {
		logger.Level.SetLevel(logger.ParseLevel(*logLevel))
	}

	logger.Debugf("Hi! I'm numscan version=%s", buildinfo.Version)
	_, _ = maxprocs.Set(maxprocs.Logger(logger.Debugf))

	switch command {
	case selftestCmd.FullCommand():
		os.Exit(runSelftest(os.Stdout, selftestOptions{
			configPath:  *config,
			suites:      *suites,
			format:      *format,
			metricsPath: *metricsFile,
		}))
	case atoiCmd.FullCommand():
		printEach(os.Stdout, *atoiInputs, atoiValue)
	case lengthCmd.FullCommand():
		printEach(os.Stdout, *lengthInputs, lengthValue)
	}
}

func atoiValue(s string) int64 {
	return int64(xstrconv.Atoi(s))
}

func lengthValue(s string) int64 {
	return int64(xstrconv.Length(s))
}

// printEach writes fn of every input on its own line.
func printEach(out io.Writer, inputs []string, fn func(string) int64) {
	for _, input := range inputs {
		_, _ = fmt.Fprintln(out, fn(input))
	}
}

type selftestOptions struct {
	configPath  string
	suites      []string
	format      string
	metricsPath string
}

// runSelftest returns the process exit code: 0 when every case matched, 1 otherwise.
func runSelftest(out io.Writer, opts selftestOptions) int {
	all := selftest.DefaultSuites()
	if opts.configPath != "" {
		c, err := cfg.NewConfigFromFile(opts.configPath)
		if err != nil {
			logger.Errorf("can't load config: %s", err.Error())
			return 1
		}
		all = append(all, selftest.FromConfig(c)...)
	}

	picked := selftest.Filter(all, opts.suites)
	if len(picked) == 0 {
		logger.Errorf("no suites match %v", opts.suites)
		return 1
	}

	ctl := metric.NewCtl("selftest", prometheus.NewRegistry())
	report, err := selftest.NewRunner(logger.Instance, ctl).Run(picked)
	if err != nil {
		logger.Errorf("can't run self-test: %s", err.Error())
		return 1
	}

	switch opts.format {
	case formatJSON:
		_, _ = fmt.Fprintln(out, report.JSON())
	default:
		_, _ = fmt.Fprint(out, report.Text())
	}

	if opts.metricsPath != "" {
		if err := prometheus.WriteToTextfile(opts.metricsPath, ctl.Registry()); err != nil {
			logger.Errorf("can't write metrics to %q: %s", opts.metricsPath, err.Error())
			return 1
		}
		logger.Infof("metrics written to %q", opts.metricsPath)
	}

	if !report.OK() {
		return 1
	}
	return 0
}
