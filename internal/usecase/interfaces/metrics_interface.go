package interfaces

// IMetricsRecorder receives business counters from the use cases.
type IMetricsRecorder interface {
	ObserveWebhook(outcome string)
	IncOrderCreated(paymentMethod string)
	ObservePreference(result string)
}
