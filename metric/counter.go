package metric

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

type Counter struct {
	metric prometheus.Counter
}

func (c *Counter) Inc() {
	c.metric.Inc()
}

func (c *Counter) Add(v float64) {
	c.metric.Add(v)
}

// should only be used in tests
func (c *Counter) ToFloat64() float64 {
	return testutil.ToFloat64(c.metric)
}

type CounterVec struct {
	vec *prometheus.CounterVec
}

func (cv *CounterVec) WithLabelValues(lvs ...string) *Counter {
	return &Counter{metric: cv.vec.WithLabelValues(lvs...)}
}
