package telemetry

// This package is how the resolver reports metrics. By default they are no-ops,
// but a user can provide an implementation if they want their metrics to go somewhere.

type Metrics interface {
	IncCount(key string)
	SetGauge(key string, value float64)
}

type NOPMetrics struct {
}

func (n NOPMetrics) IncCount(key string) {
}
func (n NOPMetrics) SetGauge(key string, value float64) {
}
