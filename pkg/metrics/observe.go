package metrics

import (
	"travelplan-service/pkg/parser"
)

// ObserveResult counts the records and parsing passes of one parse result
func (m *Metrics) ObserveResult(result parser.Result) {
	m.RecordsParsed.WithLabelValues("flights").Add(float64(len(result.Flights)))
	m.RecordsParsed.WithLabelValues("hotels").Add(float64(len(result.Hotels)))
	m.RecordsParsed.WithLabelValues("activities").Add(float64(len(result.Activities)))

	m.ParseTiers.WithLabelValues("flights", string(result.Tiers.Flights)).Inc()
	m.ParseTiers.WithLabelValues("hotels", string(result.Tiers.Hotels)).Inc()
	m.ParseTiers.WithLabelValues("activities", string(result.Tiers.Activities)).Inc()
}
