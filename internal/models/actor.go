package models

import "github.com/google/uuid"

// Actor - аутентифицированный пользователь, от имени которого выполняется операция
type Actor struct {
	UserID uuid.UUID
	Role   Role
}

// AnemiaSample - показатели анализа крови для внешнего классификатора анемии
type AnemiaSample struct {
	Hemoglobin float64 `json:"Hemoglobin"`
	MCH        float64 `json:"MCH"`
	MCHC       float64 `json:"MCHC"`
	MCV        float64 `json:"MCV"`
}

// AnemiaPrediction - ответ классификатора
type AnemiaPrediction struct {
	Positive bool   `json:"positive"`
	Label    string `json:"label"`
}
