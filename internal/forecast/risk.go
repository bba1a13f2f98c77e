// Package forecast считает индекс риска дефицита крови по складским наблюдениям
// и сворачивает его в ряды для графиков: по месяцам и по группам крови.
package forecast

import (
	"math"
	"strings"
	"time"

	"github.com/shenikar/blood_connect/internal/models"
)

const (
	// AccidentWeight - вес зарегистрированных аварий относительно обычного расхода
	AccidentWeight = 5
	// ExpiredWeight - вес просроченных единиц относительно обычного расхода
	ExpiredWeight = 3
	// MaxRisk - верхняя граница индекса риска
	MaxRisk = 100.0
)

// Score возвращает индекс риска записи в диапазоне [0, 100].
// +1 в знаменателе защищает от деления на ноль при пустом складе.
func Score(rec models.InventoryRecord) float64 {
	var available, used int
	if rec.UnitsAvailable != nil {
		available = *rec.UnitsAvailable
	}
	if rec.UnitsUsed != nil {
		used = *rec.UnitsUsed
	}

	numerator := float64(used + AccidentWeight*rec.AccidentsReported + ExpiredWeight*rec.ExpiredUnits)
	denominator := float64(available + rec.DonationsReceived + 1)

	return math.Max(0, math.Min(MaxRisk, numerator*100/denominator))
}

// IsWellFormed сообщает, есть ли у записи все обязательные поля
func IsWellFormed(rec models.InventoryRecord) bool {
	return strings.TrimSpace(rec.Date) != "" && rec.UnitsAvailable != nil && rec.UnitsUsed != nil
}

var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006/01/02",
}

// ParseDate разбирает дату наблюдения в одном из поддерживаемых форматов
func ParseDate(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// MonthLabel - короткое название месяца: Jan, Feb, ...
func MonthLabel(t time.Time) string {
	return t.Month().String()[:3]
}
