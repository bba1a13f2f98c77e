package forecast

import (
	"slices"

	"github.com/shenikar/blood_connect/internal/models"
	"github.com/shenikar/blood_connect/pkg/metrics"
	"github.com/sirupsen/logrus"
)

// FallbackShortageSeries - ряд по месяцам, который отдается, когда реальных данных нет
var FallbackShortageSeries = []models.ChartPoint{
	{Label: "Jan", Value: 25},
	{Label: "Feb", Value: 30},
	{Label: "Mar", Value: 22},
	{Label: "Apr", Value: 35},
}

// FallbackBloodTypeSeries - ряд по группам крови, который отдается, когда реальных данных нет
var FallbackBloodTypeSeries = []models.ChartPoint{
	{Label: "O+", Value: 45},
	{Label: "A+", Value: 32},
	{Label: "B+", Value: 28},
	{Label: "AB+", Value: 20},
}

// Result - результат агрегации
type Result struct {
	ShortageSeries    []models.ChartPoint `json:"shortage_series"`
	BloodTypeSeries   []models.ChartPoint `json:"blood_type_series"`
	RecordsTotal      int                 `json:"records_total"`
	RecordsValid      int                 `json:"records_valid"`
	ShortageFallback  bool                `json:"shortage_fallback"`
	BloodTypeFallback bool                `json:"blood_type_fallback"`
}

// SampleData сообщает, что хотя бы один из рядов заменен заглушкой
func (r Result) SampleData() bool {
	return r.ShortageFallback || r.BloodTypeFallback
}

// orderedMeans - накопитель сумм по ключу с сохранением порядка первого появления ключа
type orderedMeans struct {
	keys   []string
	sums   map[string]float64
	counts map[string]int
}

func newOrderedMeans() *orderedMeans {
	return &orderedMeans{
		sums:   make(map[string]float64),
		counts: make(map[string]int),
	}
}

func (m *orderedMeans) add(key string, value float64) {
	if _, ok := m.counts[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.sums[key] += value
	m.counts[key]++
}

func (m *orderedMeans) points() []models.ChartPoint {
	points := make([]models.ChartPoint, 0, len(m.keys))
	for _, key := range m.keys {
		points = append(points, models.ChartPoint{Label: key, Value: m.sums[key] / float64(m.counts[key])})
	}
	return points
}

type Aggregator struct {
	logger  *logrus.Logger
	metrics *metrics.Metrics
}

// NewAggregator создает агрегатор. metrics может быть nil.
func NewAggregator(logger *logrus.Logger, m *metrics.Metrics) *Aggregator {
	return &Aggregator{
		logger:  logger,
		metrics: m,
	}
}

// FilterWellFormed отбрасывает записи без обязательных полей. Записи не исправляются.
func (a *Aggregator) FilterWellFormed(records []models.InventoryRecord) []models.InventoryRecord {
	valid := make([]models.InventoryRecord, 0, len(records))
	for _, rec := range records {
		if IsWellFormed(rec) {
			valid = append(valid, rec)
		}
	}
	if dropped := len(records) - len(valid); dropped > 0 {
		a.logger.WithFields(logrus.Fields{
			"component": "forecast",
			"dropped":   dropped,
			"total":     len(records),
		}).Warn("Dropped malformed inventory records")
		a.countDropped("malformed", dropped)
	}
	return valid
}

// Aggregate строит ряд среднего риска по месяцам и ряд по группам крови.
// Пустой ряд заменяется соответствующей заглушкой.
func (a *Aggregator) Aggregate(records []models.InventoryRecord) Result {
	valid := a.FilterWellFormed(records)
	log := a.logger.WithField("component", "forecast")

	byMonth := newOrderedMeans()
	byType := newOrderedMeans()
	for _, rec := range valid {
		risk := Score(rec)

		if date, ok := ParseDate(rec.Date); ok {
			byMonth.add(MonthLabel(date), risk)
		} else {
			log.WithField("date", rec.Date).Warn("Invalid date format, record skipped in shortage series")
			a.countDropped("invalid_date", 1)
		}

		if rec.BloodType != "" {
			byType.add(rec.BloodType, risk)
		} else {
			log.WithField("record_id", rec.ID).Warn("Record missing blood type, skipped in blood type series")
			a.countDropped("missing_blood_type", 1)
		}
	}

	result := Result{
		ShortageSeries:  byMonth.points(),
		BloodTypeSeries: byType.points(),
		RecordsTotal:    len(records),
		RecordsValid:    len(valid),
	}
	if len(result.ShortageSeries) == 0 {
		result.ShortageSeries = slices.Clone(FallbackShortageSeries)
		result.ShortageFallback = true
		a.countFallback("shortage")
	}
	if len(result.BloodTypeSeries) == 0 {
		result.BloodTypeSeries = slices.Clone(FallbackBloodTypeSeries)
		result.BloodTypeFallback = true
		a.countFallback("blood_type")
	}

	log.WithFields(logrus.Fields{
		"records_total": result.RecordsTotal,
		"records_valid": result.RecordsValid,
		"months":        len(result.ShortageSeries),
		"blood_types":   len(result.BloodTypeSeries),
	}).Debug("Inventory records aggregated")

	return result
}

func (a *Aggregator) countDropped(reason string, n int) {
	if a.metrics != nil {
		a.metrics.InventoryRecordsDropped.WithLabelValues(reason).Add(float64(n))
	}
}

func (a *Aggregator) countFallback(series string) {
	if a.metrics != nil {
		a.metrics.ForecastFallbacks.WithLabelValues(series).Inc()
	}
}
