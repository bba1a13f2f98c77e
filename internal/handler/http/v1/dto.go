package v1

import (
	"time"

	"github.com/google/uuid"
)

// SignupRequest DTO для регистрации
// @Description DTO для регистрации пользователя
type SignupRequest struct {
	Name      string   `json:"name" validate:"required,min=2,max=255"`
	Email     string   `json:"email" validate:"required,email"`
	Password  string   `json:"password" validate:"required,min=8,max=72"`
	Role      string   `json:"role" validate:"required,oneof=donor hospital requester patient"`
	BloodType string   `json:"blood_type,omitempty" validate:"omitempty,oneof=A+ A- B+ B- AB+ AB- O+ O-"`
	Latitude  *float64 `json:"latitude,omitempty" validate:"omitempty,latitude"`
	Longitude *float64 `json:"longitude,omitempty" validate:"omitempty,longitude"`
}

// LoginRequest DTO для входа
// @Description DTO для входа по email и паролю
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserResponse DTO профиля пользователя
// @Description DTO профиля пользователя
type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	BloodType string    `json:"blood_type,omitempty"`
	Latitude  *float64  `json:"latitude,omitempty"`
	Longitude *float64  `json:"longitude,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// AuthResponse DTO ответа на регистрацию и вход
// @Description Токен доступа и профиль пользователя
type AuthResponse struct {
	Token string        `json:"token"`
	User  *UserResponse `json:"user"`
}

// CreateBloodRequestRequest DTO для создания заявки на кровь
// @Description DTO для создания заявки на кровь
type CreateBloodRequestRequest struct {
	BloodType    string   `json:"blood_type" validate:"required,oneof=A+ A- B+ B- AB+ AB- O+ O-"`
	Quantity     int      `json:"quantity" validate:"required,gt=0,lte=100"`
	Urgency      string   `json:"urgency" validate:"required,oneof=low medium high critical"`
	Latitude     *float64 `json:"latitude" validate:"required,latitude"`
	Longitude    *float64 `json:"longitude" validate:"required,longitude"`
	Address      string   `json:"address,omitempty" validate:"max=500"`
	Description  string   `json:"description,omitempty" validate:"max=2000"`
	ContactPhone string   `json:"contact_phone,omitempty" validate:"max=32"`
}

// UpdateStatusRequest DTO для смены статуса заявки
// @Description DTO для смены статуса заявки
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending matched completed cancelled"`
}

// BloodRequestResponse DTO для ответа с информацией о заявке
// @Description DTO для ответа с информацией о заявке
type BloodRequestResponse struct {
	ID            uuid.UUID `json:"id"`
	RequesterID   uuid.UUID `json:"requester_id"`
	RequesterName string    `json:"requester_name"`
	RequesterRole string    `json:"requester_role"`
	BloodType     string    `json:"blood_type"`
	Quantity      int       `json:"quantity"`
	Urgency       string    `json:"urgency"`
	Latitude      float64   `json:"latitude"`
	Longitude     float64   `json:"longitude"`
	Address       string    `json:"address,omitempty"`
	Status        string    `json:"status"`
	Description   string    `json:"description,omitempty"`
	ContactPhone  string    `json:"contact_phone,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// StatusCountResponse количество заявок в статусе
type StatusCountResponse struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

// DashboardResponse DTO главной страницы
// @Description Профиль, подобранные под роль заявки и счетчики по статусам
type DashboardResponse struct {
	User         *UserResponse           `json:"user"`
	Requests     []*BloodRequestResponse `json:"requests"`
	StatusCounts []StatusCountResponse   `json:"status_counts"`
}

// StatsResponse DTO для ответа со статистикой
// @Description DTO для ответа со статистикой
type StatsResponse struct {
	StatusCounts    []StatusCountResponse `json:"status_counts"`
	ActiveSearchers int                   `json:"active_searchers"`
	WindowMinutes   int                   `json:"window_minutes"`
}

// ChartPointResponse точка графика
type ChartPointResponse struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// ForecastResponse DTO страницы прогноза
// @Description Ряды риска дефицита по месяцам и группам крови
type ForecastResponse struct {
	ShortageSeries  []ChartPointResponse `json:"shortage_series"`
	BloodTypeSeries []ChartPointResponse `json:"blood_type_series"`
	SampleData      bool                 `json:"sample_data"`
	RecordsTotal    int                  `json:"records_total"`
	RecordsValid    int                  `json:"records_valid"`
	Location        string               `json:"location"`
	PeakMonth       string               `json:"peak_month"`
	PeakRisk        float64              `json:"peak_risk"`
	RiskLevel       string               `json:"risk_level"`
}

// AnemiaRequest DTO показателей анализа крови
// @Description Показатели анализа крови для модели анемии
type AnemiaRequest struct {
	Hemoglobin *float64 `json:"hemoglobin" validate:"required,gt=0"`
	MCH        *float64 `json:"mch" validate:"required,gt=0"`
	MCHC       *float64 `json:"mchc" validate:"required,gt=0"`
	MCV        *float64 `json:"mcv" validate:"required,gt=0"`
}

// AnemiaResponse DTO ответа модели
type AnemiaResponse struct {
	Positive bool   `json:"positive"`
	Label    string `json:"label"`
}

// InsightResponse DTO текстовой подсказки
type InsightResponse struct {
	Insight string `json:"insight"`
}

// InventoryRecordRequest одна складская запись
// @Description Складская запись: остатки, расход и события по одной группе крови в больнице
type InventoryRecordRequest struct {
	Date              string `json:"date"`
	HospitalName      string `json:"hospital_name" validate:"max=255"`
	City              string `json:"city" validate:"max=255"`
	BloodType         string `json:"blood_type" validate:"omitempty,oneof=A+ A- B+ B- AB+ AB- O+ O-"`
	UnitsAvailable    *int   `json:"units_available" validate:"omitempty,gte=0"`
	UnitsUsed         *int   `json:"units_used" validate:"omitempty,gte=0"`
	ExpiredUnits      int    `json:"expired_units" validate:"gte=0"`
	AccidentsReported int    `json:"accidents_reported" validate:"gte=0"`
	DonationsReceived int    `json:"donations_received" validate:"gte=0"`
	LocalEvent        string `json:"local_event,omitempty"`
	ContactPerson     string `json:"contact_person,omitempty"`
	ContactPhone      string `json:"contact_phone,omitempty"`
}

// ImportInventoryRequest DTO пакетного импорта
// @Description Пакет складских записей
type ImportInventoryRequest struct {
	Records []InventoryRecordRequest `json:"records" validate:"required,min=1,max=1000,dive"`
}

// ImportInventoryResponse DTO результата импорта
type ImportInventoryResponse struct {
	Inserted int `json:"inserted"`
}
