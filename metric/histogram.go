package metric

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

type Histogram struct {
	metric prometheus.Observer
}

func (h *Histogram) ObserveSince(start time.Time) {
	h.metric.Observe(time.Since(start).Seconds())
}

type HistogramVec struct {
	vec *prometheus.HistogramVec
}

func (hv *HistogramVec) WithLabelValues(lvs ...string) *Histogram {
	return &Histogram{metric: hv.vec.WithLabelValues(lvs...)}
}
