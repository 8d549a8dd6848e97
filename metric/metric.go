package metric

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "lifecycle"

var (
	counters = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "events_total",
		Help:      "Lifecycle events by name.",
	}, []string{"name"})

	durations = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "duration_seconds",
		Help:      "Lifecycle phase durations by name.",
		Buckets:   prometheus.ExponentialBuckets(0.001, 4, 10),
	}, []string{"name"})

	values = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "value",
		Help:      "Last reported lifecycle value by name.",
	}, []string{"name"})
)

// Register exposes every lifecycle metric through r.
func Register(r prometheus.Registerer) error {
	for _, c := range []prometheus.Collector{counters, durations, values} {
		err := r.Register(c)
		if err != nil {
			return err
		}
	}
	return nil
}

type Counter string

func (c Counter) Increment() {
	counters.WithLabelValues(string(c)).Inc()
}

func (c Counter) Add(i uint64) {
	counters.WithLabelValues(string(c)).Add(float64(i))
}

type Duration string

func (name Duration) Send(duration time.Duration) {
	durations.WithLabelValues(string(name)).Observe(duration.Seconds())
}

type Metric string

func (name Metric) Send(value int) {
	values.WithLabelValues(string(name)).Set(float64(value))
}
