package metrics

// Collector defines methods for recording operational metrics of the
// balancing surfaces. Implementations must be safe for concurrent use.
type Collector interface {
	// RecordHTTPRequest records one handled HTTP request with its outcome
	RecordHTTPRequest(route string, status int, seconds float64)

	// RecordBalanceRun records one completed balancing run under the given basis
	RecordBalanceRun(basis string, seconds float64)

	// SetLineBottleneck sets the slowest operator load of the latest run
	SetLineBottleneck(seconds float64)

	// SetLineBalance sets the balance percentage of the latest run
	SetLineBalance(percent float64)

	// SetOperators sets the operator headcount of the latest run
	SetOperators(count int)

	// IncrementExport counts one worksheet export by format
	IncrementExport(format string)
}
