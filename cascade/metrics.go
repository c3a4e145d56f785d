package cascade

import (
	"github.com/npillmayer/uicascade/selector"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics counts the work of a resolver. A nil *Metrics is valid and
// counts nothing.
type Metrics struct {
	reevaluations *prometheus.CounterVec // by severity
	rematched     prometheus.Counter     // elements re-tested against a selector
	resolved      prometheus.Counter     // elements re-resolved
}

// NewMetrics creates resolver metrics within a namespace and registers them
// with reg. If reg is nil, the metrics are not registered.
func NewMetrics(namespace string, reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		reevaluations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "cascade",
			Name:      "reevaluations_total",
			Help:      "Selector re-evaluation decisions, by severity.",
		}, []string{"severity"}),
		rematched: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "cascade",
			Name:      "rematched_elements_total",
			Help:      "Elements re-tested against a selector.",
		}),
		resolved: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "cascade",
			Name:      "resolved_elements_total",
			Help:      "Elements whose effective property values have been recomputed.",
		}),
	}
	if reg == nil {
		return m, nil
	}
	for _, c := range []prometheus.Collector{m.reevaluations, m.rematched, m.resolved} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *Metrics) reevaluation(sev selector.Severity) {
	if m == nil {
		return
	}
	m.reevaluations.WithLabelValues(sev.String()).Inc()
}

func (m *Metrics) rematch(n int) {
	if m == nil || n == 0 {
		return
	}
	m.rematched.Add(float64(n))
}

func (m *Metrics) resolve(n int) {
	if m == nil || n == 0 {
		return
	}
	m.resolved.Add(float64(n))
}
