// Package geo содержит расчет расстояний по поверхности Земли и фильтр заявок по радиусу.
package geo

import (
	"math"

	"github.com/shenikar/blood_connect/internal/models"
)

// EarthRadiusKm - средний радиус Земли в километрах
const EarthRadiusKm = 6371.0

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}

// DistanceKm возвращает расстояние по большой окружности (формула гаверсинусов) в километрах
func DistanceKm(lat1, lng1, lat2, lng2 float64) float64 {
	dLat := toRadians(lat2 - lat1)
	dLng := toRadians(lng2 - lng1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRadians(lat1))*math.Cos(toRadians(lat2))*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusKm * c
}

// FindWithinRadius возвращает заявки, расстояние до которых не больше radiusKm.
// Порядок входного среза сохраняется, сам срез не изменяется.
func FindWithinRadius(requests []*models.BloodRequest, lat, lng, radiusKm float64) []*models.BloodRequest {
	result := make([]*models.BloodRequest, 0)
	for _, req := range requests {
		if DistanceKm(lat, lng, req.Latitude, req.Longitude) <= radiusKm {
			result = append(result, req)
		}
	}
	return result
}
