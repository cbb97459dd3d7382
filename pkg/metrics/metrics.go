package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics набор метрик сервиса
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	DBQueryDuration   *prometheus.HistogramVec
	DBOpenConnections *prometheus.GaugeVec
	DBInUse           *prometheus.GaugeVec

	BlockEditsTotal               *prometheus.CounterVec
	BookingsCreatedTotal          *prometheus.CounterVec
	BookingSubmissionsFailedTotal *prometheus.CounterVec
	CatalogCacheRequestsTotal     *prometheus.CounterVec
}

// New создает и регистрирует метрики в стандартном реестре prometheus
func New(serviceName string) *Metrics {
	return NewWithRegisterer(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegisterer создает метрики в указанном реестре (для тестов - отдельный prometheus.NewRegistry())
func NewWithRegisterer(serviceName string, reg prometheus.Registerer) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "route", "status"}),
		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),
		DBQueryDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Database query duration in seconds",
			ConstLabels: constLabels,
			Buckets:     []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"operation"}),
		DBOpenConnections: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_open_connections",
			Help:        "Number of open database connections",
			ConstLabels: constLabels,
		}, []string{}),
		DBInUse: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_in_use_connections",
			Help:        "Number of database connections in use",
			ConstLabels: constLabels,
		}, []string{}),
		BlockEditsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "block_edits_total",
			Help:        "Total number of block edit operations",
			ConstLabels: constLabels,
		}, []string{"operation", "page_type"}),
		BookingsCreatedTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "bookings_created_total",
			Help:        "Total number of created bookings",
			ConstLabels: constLabels,
		}, []string{}),
		BookingSubmissionsFailedTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "booking_submissions_failed_total",
			Help:        "Total number of failed booking submissions",
			ConstLabels: constLabels,
		}, []string{"reason"}),
		CatalogCacheRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "catalog_cache_requests_total",
			Help:        "Catalog cache lookups by result",
			ConstLabels: constLabels,
		}, []string{"result"}),
	}

	reg.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.DBQueryDuration,
		m.DBOpenConnections,
		m.DBInUse,
		m.BlockEditsTotal,
		m.BookingsCreatedTotal,
		m.BookingSubmissionsFailedTotal,
		m.CatalogCacheRequestsTotal,
	)

	return m
}

// ObserveHTTP фиксирует завершенный HTTP запрос
func (m *Metrics) ObserveHTTP(method, route string, status int, duration time.Duration) {
	m.HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// ObserveDBQuery фиксирует длительность запроса к БД
func (m *Metrics) ObserveDBQuery(operation string, duration time.Duration) {
	m.DBQueryDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// IncBlockEdit увеличивает счётчик операций редактора блоков
func (m *Metrics) IncBlockEdit(operation, pageType string) {
	if m == nil {
		return
	}
	m.BlockEditsTotal.WithLabelValues(operation, pageType).Inc()
}

// IncBookingCreated увеличивает счётчик созданных бронирований
func (m *Metrics) IncBookingCreated() {
	if m == nil {
		return
	}
	m.BookingsCreatedTotal.WithLabelValues().Inc()
}

// IncBookingSubmissionFailed увеличивает счётчик неудачных отправок бронирования
func (m *Metrics) IncBookingSubmissionFailed(reason string) {
	if m == nil {
		return
	}
	m.BookingSubmissionsFailedTotal.WithLabelValues(reason).Inc()
}

// IncCatalogCache фиксирует попадание/промах кэша каталога
func (m *Metrics) IncCatalogCache(result string) {
	if m == nil {
		return
	}
	m.CatalogCacheRequestsTotal.WithLabelValues(result).Inc()
}
