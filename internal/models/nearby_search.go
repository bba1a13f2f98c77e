package models

import (
	"time"

	"github.com/google/uuid"
)

// NearbySearch представляет запись о поиске заявок рядом с пользователем
type NearbySearch struct {
	ID          int64     `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	RadiusKm    float64   `json:"radius_km"`
	ResultCount int       `json:"result_count"`
	SearchedAt  time.Time `json:"searched_at"`
}
