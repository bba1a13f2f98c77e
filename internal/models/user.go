package models

import (
	"time"

	"github.com/google/uuid"
)

// Role - роль пользователя в системе
type Role string

const (
	RoleDonor     Role = "donor"
	RoleHospital  Role = "hospital"
	RoleRequester Role = "requester"
	RolePatient   Role = "patient"
	RoleAdmin     Role = "admin"
)

// CanCreateRequests - роли, которым разрешено создавать заявки на кровь
func (r Role) CanCreateRequests() bool {
	switch r {
	case RoleHospital, RoleRequester, RolePatient, RoleAdmin:
		return true
	}
	return false
}

type User struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	BloodType    BloodType `json:"blood_type,omitempty"`
	Latitude     *float64  `json:"latitude,omitempty"`
	Longitude    *float64  `json:"longitude,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// HasLocation сообщает, указал ли пользователь координаты
func (u *User) HasLocation() bool {
	return u.Latitude != nil && u.Longitude != nil
}

// Session - данные сессии, которые хранятся в Redis по jti токена
type Session struct {
	UserID uuid.UUID `json:"user_id"`
	Role   Role      `json:"role"`
}
