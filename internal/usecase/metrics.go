package usecase

import "panaderia_api/internal/usecase/interfaces"

type noopMetrics struct{}

func (noopMetrics) ObserveWebhook(string)    {}
func (noopMetrics) IncOrderCreated(string)   {}
func (noopMetrics) ObservePreference(string) {}

func metricsOrNoop(m interfaces.IMetricsRecorder) interfaces.IMetricsRecorder {
	if m == nil {
		return noopMetrics{}
	}
	return m
}
