package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// QuoteCalculations счетчик расчетов разбивки цены
	QuoteCalculations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "quote_calculations_total",
			Help: "Количество расчетов цены и графика платежей",
		},
		[]string{"scheme", "status"},
	)

	// CalculationAdjustments счетчик поправок ввода (зажатие скидки, сброс DP)
	CalculationAdjustments = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "calculation_adjustments_total",
			Help: "Поправки пользовательского ввода при расчете",
		},
		[]string{"scheme", "field"},
	)

	// ReconciliationMismatches счетчик расхождений клиентского и серверного расчета
	ReconciliationMismatches = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reconciliation_mismatches_total",
			Help: "Расхождения итогов, показанных клиенту, с серверным расчетом",
		},
		[]string{"operation", "field"},
	)

	// PenjualanWrites счетчик записей транзакций
	PenjualanWrites = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "penjualan_writes_total",
			Help: "Создание и обновление транзакций продажи",
		},
		[]string{"operation", "status"},
	)

	// CatalogCache счетчик обращений к кэшу справочника
	CatalogCache = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_cache_requests_total",
			Help: "Обращения к кэшу справочника",
		},
		[]string{"entity", "result"},
	)

	// HTTPRequestsTotal счетчик HTTP-запросов
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Количество HTTP-запросов",
		},
		[]string{"method", "path", "status"},
	)

	// HTTPRequestDuration длительность HTTP-запросов
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Длительность HTTP-запросов",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)
)
