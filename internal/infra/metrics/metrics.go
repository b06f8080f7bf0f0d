package metrics

import "github.com/prometheus/client_golang/prometheus"

type Metrics struct {
	StoreOps  *prometheus.CounterVec
	Mutations *prometheus.CounterVec
	Records   *prometheus.GaugeVec
}

// New регистрирует счётчики в reg. В тестах передаём prometheus.NewRegistry().
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		StoreOps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "shopdesk",
			Name:      "store_ops_total",
			Help:      "Store operations by op and result.",
		}, []string{"op", "result"}),
		Mutations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "shopdesk",
			Name:      "collection_mutations_total",
			Help:      "Successful collection mutations.",
		}, []string{"collection", "op"}),
		Records: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "shopdesk",
			Name:      "collection_records",
			Help:      "Records currently held per collection.",
		}, []string{"collection"}),
	}
	if reg != nil {
		reg.MustRegister(m.StoreOps, m.Mutations, m.Records)
	}
	return m
}

// Методы ниже безопасны для nil: коллекции в тестах работают без метрик.

func (m *Metrics) StoreOp(op string, err error) {
	if m == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.StoreOps.WithLabelValues(op, result).Inc()
}

func (m *Metrics) Mutation(collection, op string) {
	if m == nil {
		return
	}
	m.Mutations.WithLabelValues(collection, op).Inc()
}

func (m *Metrics) SetRecords(collection string, n int) {
	if m == nil {
		return
	}
	m.Records.WithLabelValues(collection).Set(float64(n))
}
