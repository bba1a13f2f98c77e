package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics содержит все метрики приложения
type Metrics struct {
	RequestsCreated         prometheus.Counter
	StatusUpdates           *prometheus.CounterVec
	NearbySearches          prometheus.Counter
	InventoryRecordsDropped *prometheus.CounterVec
	ForecastFallbacks       *prometheus.CounterVec
	WebhookDeliveries       *prometheus.CounterVec
	ExternalCallDuration    *prometheus.HistogramVec
}

// NewMetrics создает метрики и регистрирует их в reg.
// Для основного процесса передается prometheus.DefaultRegisterer, в тестах - отдельный реестр.
func NewMetrics(namespace string, reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		RequestsCreated: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "blood_requests_created_total",
			Help:      "The total number of created blood requests",
		}),
		StatusUpdates: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "blood_request_status_updates_total",
			Help:      "The total number of blood request status updates",
		}, []string{"status"}),
		NearbySearches: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "nearby_searches_total",
			Help:      "The total number of nearby request searches",
		}),
		InventoryRecordsDropped: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "inventory_records_dropped_total",
			Help:      "The total number of inventory records skipped during aggregation",
		}, []string{"reason"}),
		ForecastFallbacks: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "forecast_fallbacks_total",
			Help:      "The total number of times a placeholder series was served",
		}, []string{"series"}),
		WebhookDeliveries: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "webhook_deliveries_total",
			Help:      "The total number of webhook delivery attempts by result",
		}, []string{"result"}),
		ExternalCallDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "external_call_duration_seconds",
			Help:      "Time taken by calls to external services",
			Buckets:   prometheus.DefBuckets,
		}, []string{"service"}),
	}
}
