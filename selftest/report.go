package selftest

import (
	"fmt"
	"strings"

	insaneJSON "github.com/ozontech/insane-json"
	"github.com/ozontech/numscan/logger"
)

type Report struct {
	Passed   int64
	Failed   int64
	Suites   []SuiteResult
	Failures []Failure
}

func (r *Report) OK() bool {
	return r.Failed == 0
}

func (r *Report) Text() string {
	b := strings.Builder{}
	b.WriteString(logger.Header("self-test"))
	for _, s := range r.Suites {
		fmt.Fprintf(&b, "%-16s passed %d, failed %d\n", s.Name, s.Passed, s.Failed)
	}
	for _, f := range r.Failures {
		fmt.Fprintf(&b, "FAIL %s/%s: input %q, expected %d, result was %d\n", f.Suite, f.Case, f.Input, f.Want, f.Got)
	}
	fmt.Fprintf(&b, "Passed %d, failed %d\n", r.Passed, r.Failed)

	return b.String()
}

func (r *Report) JSON() string {
	root := insaneJSON.Spawn()
	defer insaneJSON.Release(root)
	if err := root.DecodeString("{}"); err != nil {
		panic(err)
	}

	root.AddField("passed").MutateToInt64(r.Passed)
	root.AddField("failed").MutateToInt64(r.Failed)

	suites := root.AddField("suites").MutateToArray()
	for _, s := range r.Suites {
		obj := suites.AddElementNoAlloc(root).MutateToObject()
		obj.AddField("name").MutateToString(s.Name)
		obj.AddField("passed").MutateToInt(s.Passed)
		obj.AddField("failed").MutateToInt(s.Failed)
	}

	failures := root.AddField("failures").MutateToArray()
	for _, f := range r.Failures {
		obj := failures.AddElementNoAlloc(root).MutateToObject()
		obj.AddField("suite").MutateToString(f.Suite)
		obj.AddField("case").MutateToString(f.Case)
		obj.AddField("input").MutateToString(f.Input)
		obj.AddField("want").MutateToInt64(f.Want)
		obj.AddField("got").MutateToInt64(f.Got)
	}

	return root.EncodeToString()
}
