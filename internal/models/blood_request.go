package models

import (
	"time"

	"github.com/google/uuid"
)

// BloodType - группа крови по системам ABO/Rh
type BloodType string

const (
	BloodTypeAPos  BloodType = "A+"
	BloodTypeANeg  BloodType = "A-"
	BloodTypeBPos  BloodType = "B+"
	BloodTypeBNeg  BloodType = "B-"
	BloodTypeABPos BloodType = "AB+"
	BloodTypeABNeg BloodType = "AB-"
	BloodTypeOPos  BloodType = "O+"
	BloodTypeONeg  BloodType = "O-"
)

// Urgency - качественная срочность заявки, используется только для упорядочивания
type Urgency string

const (
	UrgencyLow      Urgency = "low"
	UrgencyMedium   Urgency = "medium"
	UrgencyHigh     Urgency = "high"
	UrgencyCritical Urgency = "critical"
)

// Rank возвращает порядок сортировки: чем меньше, тем срочнее
func (u Urgency) Rank() int {
	switch u {
	case UrgencyCritical:
		return 0
	case UrgencyHigh:
		return 1
	case UrgencyMedium:
		return 2
	case UrgencyLow:
		return 3
	}
	return 4
}

// RequestStatus - статус заявки на кровь
type RequestStatus string

const (
	StatusPending   RequestStatus = "pending"
	StatusMatched   RequestStatus = "matched"
	StatusCompleted RequestStatus = "completed"
	StatusCancelled RequestStatus = "cancelled"
)

// AllStatuses в порядке жизненного цикла
var AllStatuses = []RequestStatus{StatusPending, StatusMatched, StatusCompleted, StatusCancelled}

// BloodRequest - заявка на кровь с координатами места получения
type BloodRequest struct {
	ID            uuid.UUID     `json:"id"`
	RequesterID   uuid.UUID     `json:"requester_id"`
	RequesterName string        `json:"requester_name"`
	RequesterRole Role          `json:"requester_role"`
	BloodType     BloodType     `json:"blood_type"`
	Quantity      int           `json:"quantity"`
	Urgency       Urgency       `json:"urgency"`
	Latitude      float64       `json:"latitude"`
	Longitude     float64       `json:"longitude"`
	Address       string        `json:"address"`
	Status        RequestStatus `json:"status"`
	Description   string        `json:"description"`
	ContactPhone  string        `json:"contact_phone"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

// strictTransitions - допустимые переходы в строгом режиме
var strictTransitions = map[RequestStatus][]RequestStatus{
	StatusPending: {StatusMatched, StatusCancelled},
	StatusMatched: {StatusCompleted, StatusCancelled},
}

// CanTransition проверяет переход статуса. Без strict разрешен любой переход.
func CanTransition(from, to RequestStatus, strict bool) bool {
	if !strict {
		return true
	}
	for _, allowed := range strictTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// StatusCount - количество заявок в одном статусе
type StatusCount struct {
	Status RequestStatus `json:"status"`
	Count  int           `json:"count"`
}
