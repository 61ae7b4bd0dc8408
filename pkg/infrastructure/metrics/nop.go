package metrics

// NopCollector implements a no-op metrics collector.
//
// All metrics are discarded. Useful for the CLI and for tests where no
// metrics endpoint is exposed.
type NopCollector struct{}

// Compile-time assertion that NopCollector implements Collector.
var _ Collector = (*NopCollector)(nil)

// NewNop creates a new no-op metrics collector
func NewNop() *NopCollector {
	return &NopCollector{}
}

// RecordHTTPRequest discards the request metric.
func (n *NopCollector) RecordHTTPRequest(_ /* route */ string, _ /* status */ int, _ /* seconds */ float64) {
	// No-op
}

// RecordBalanceRun discards the run metric.
func (n *NopCollector) RecordBalanceRun(_ /* basis */ string, _ /* seconds */ float64) {
	// No-op
}

// SetLineBottleneck discards the bottleneck gauge.
func (n *NopCollector) SetLineBottleneck(_ /* seconds */ float64) {
	// No-op
}

// SetLineBalance discards the balance gauge.
func (n *NopCollector) SetLineBalance(_ /* percent */ float64) {
	// No-op
}

// SetOperators discards the headcount gauge.
func (n *NopCollector) SetOperators(_ /* count */ int) {
	// No-op
}

// IncrementExport discards the export counter.
func (n *NopCollector) IncrementExport(_ /* format */ string) {
	// No-op
}
