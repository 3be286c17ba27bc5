package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/FACorreiaa/receipt-scan/internal/domain/extraction"
)

// Metrics holds the service's Prometheus instruments. A nil *Metrics is valid
// and records nothing, so tests and the CLI can skip registration.
type Metrics struct {
	receiptsProcessed *prometheus.CounterVec
	fieldsExtracted   *prometheus.CounterVec
}

// NewMetrics registers the service instruments with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		receiptsProcessed: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "receiptscan",
			Name:      "receipts_processed_total",
			Help:      "Receipts processed, by outcome.",
		}, []string{"outcome"}),
		fieldsExtracted: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "receiptscan",
			Name:      "fields_extracted_total",
			Help:      "Successfully extracted result fields, by field.",
		}, []string{"field"}),
	}
}

func (m *Metrics) observeOutcome(outcome string) {
	if m == nil {
		return
	}
	m.receiptsProcessed.WithLabelValues(outcome).Inc()
}

func (m *Metrics) observeFields(result extraction.Result) {
	if m == nil {
		return
	}
	if result.Merchant != "" {
		m.fieldsExtracted.WithLabelValues("merchant").Inc()
	}
	if result.Amount != "" {
		m.fieldsExtracted.WithLabelValues("amount").Inc()
	}
	if result.Date != nil {
		m.fieldsExtracted.WithLabelValues("date").Inc()
	}
	if result.Category != "" {
		m.fieldsExtracted.WithLabelValues("category").Inc()
	}
}
