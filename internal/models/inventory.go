package models

// InventoryRecord - наблюдение о запасах крови в учреждении за день.
// UnitsAvailable и UnitsUsed обязательны, поэтому хранятся как указатели:
// nil означает, что поле отсутствовало во внешних данных.
type InventoryRecord struct {
	ID                int64  `json:"id"`
	Date              string `json:"date"`
	HospitalName      string `json:"hospital_name"`
	City              string `json:"city"`
	BloodType         string `json:"blood_type"`
	UnitsAvailable    *int   `json:"units_available"`
	UnitsUsed         *int   `json:"units_used"`
	ExpiredUnits      int    `json:"expired_units"`
	AccidentsReported int    `json:"accidents_reported"`
	DonationsReceived int    `json:"donations_received"`
	LocalEvent        string `json:"local_event,omitempty"`
	ContactPerson     string `json:"contact_person,omitempty"`
	ContactPhone      string `json:"contact_phone,omitempty"`
}

// ChartPoint - точка ряда для построения графика
type ChartPoint struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}
