package metric

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	PromNamespace = "numscan"
)

// SecondsBucketsDetailedNano covers range from 5ns to 1.3ms.
var SecondsBucketsDetailedNano = prometheus.ExponentialBuckets(0.000005, 2, 19)

// Ctl registers metrics of one subsystem, registering a name twice returns the first collector.
type Ctl struct {
	subsystem string
	register  *prometheus.Registry

	metrics map[string]prometheus.Collector
	mu      sync.RWMutex
}

func NewCtl(subsystem string, registry *prometheus.Registry) *Ctl {
	return &Ctl{
		subsystem: subsystem,
		register:  registry,
		metrics:   make(map[string]prometheus.Collector),
	}
}

func (mc *Ctl) Registry() *prometheus.Registry {
	return mc.register
}

func (mc *Ctl) RegisterCounter(name, help string) *Counter {
	counter := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: PromNamespace,
		Subsystem: mc.subsystem,
		Name:      name,
		Help:      help,
	})

	return &Counter{metric: mc.registerMetric(name, counter).(prometheus.Counter)}
}

func (mc *Ctl) RegisterCounterVec(name, help string, labels ...string) *CounterVec {
	counterVec := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: PromNamespace,
		Subsystem: mc.subsystem,
		Name:      name,
		Help:      help,
	}, labels)

	return &CounterVec{vec: mc.registerMetric(name, counterVec).(*prometheus.CounterVec)}
}

func (mc *Ctl) RegisterHistogramVec(name, help string, buckets []float64, labels ...string) *HistogramVec {
	histogramVec := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: PromNamespace,
		Subsystem: mc.subsystem,
		Name:      name,
		Help:      help,
		Buckets:   buckets,
	}, labels)

	return &HistogramVec{vec: mc.registerMetric(name, histogramVec).(*prometheus.HistogramVec)}
}

func (mc *Ctl) registerMetric(name string, newMetric prometheus.Collector) prometheus.Collector {
	mc.mu.RLock()
	metric, has := mc.metrics[name]
	mc.mu.RUnlock()
	if has {
		return metric
	}

	mc.mu.Lock()
	defer mc.mu.Unlock()
	metric, has = mc.metrics[name]
	if !has {
		metric = newMetric
		mc.metrics[name] = metric
		mc.register.MustRegister(metric)
	}

	return metric
}
