package v1

import (
	"github.com/shenikar/blood_connect/internal/models"
	"github.com/shenikar/blood_connect/internal/service"
)

// DTOToBloodRequestModel преобразует DTO создания в доменную модель.
// Владелец и статус заполняет сервис.
func DTOToBloodRequestModel(dto CreateBloodRequestRequest) *models.BloodRequest {
	return &models.BloodRequest{
		BloodType:    models.BloodType(dto.BloodType),
		Quantity:     dto.Quantity,
		Urgency:      models.Urgency(dto.Urgency),
		Latitude:     *dto.Latitude,
		Longitude:    *dto.Longitude,
		Address:      dto.Address,
		Description:  dto.Description,
		ContactPhone: dto.ContactPhone,
	}
}

// ModelToBloodRequestResponse преобразует доменную модель в DTO для ответа
func ModelToBloodRequestResponse(model *models.BloodRequest) *BloodRequestResponse {
	return &BloodRequestResponse{
		ID:            model.ID,
		RequesterID:   model.RequesterID,
		RequesterName: model.RequesterName,
		RequesterRole: string(model.RequesterRole),
		BloodType:     string(model.BloodType),
		Quantity:      model.Quantity,
		Urgency:       string(model.Urgency),
		Latitude:      model.Latitude,
		Longitude:     model.Longitude,
		Address:       model.Address,
		Status:        string(model.Status),
		Description:   model.Description,
		ContactPhone:  model.ContactPhone,
		CreatedAt:     model.CreatedAt,
		UpdatedAt:     model.UpdatedAt,
	}
}

// ModelsToBloodRequestResponses преобразует слайс моделей в слайс DTO
func ModelsToBloodRequestResponses(requests []*models.BloodRequest) []*BloodRequestResponse {
	responses := make([]*BloodRequestResponse, len(requests))
	for i, model := range requests {
		responses[i] = ModelToBloodRequestResponse(model)
	}
	return responses
}

func DTOToSignupInput(dto SignupRequest) service.SignupInput {
	return service.SignupInput{
		Name:      dto.Name,
		Email:     dto.Email,
		Password:  dto.Password,
		Role:      models.Role(dto.Role),
		BloodType: models.BloodType(dto.BloodType),
		Latitude:  dto.Latitude,
		Longitude: dto.Longitude,
	}
}

func ModelToUserResponse(user *models.User) *UserResponse {
	if user == nil {
		return nil
	}
	return &UserResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Role:      string(user.Role),
		BloodType: string(user.BloodType),
		Latitude:  user.Latitude,
		Longitude: user.Longitude,
		CreatedAt: user.CreatedAt,
	}
}

func AuthResultToResponse(result *service.AuthResult) *AuthResponse {
	return &AuthResponse{
		Token: result.Token,
		User:  ModelToUserResponse(result.User),
	}
}

func StatusCountsToResponse(counts []models.StatusCount) []StatusCountResponse {
	out := make([]StatusCountResponse, len(counts))
	for i, c := range counts {
		out[i] = StatusCountResponse{Status: string(c.Status), Count: c.Count}
	}
	return out
}

func DashboardToResponse(d *service.Dashboard) *DashboardResponse {
	return &DashboardResponse{
		User:         ModelToUserResponse(d.User),
		Requests:     ModelsToBloodRequestResponses(d.Requests),
		StatusCounts: StatusCountsToResponse(d.StatusCounts),
	}
}

func StatsToResponse(s *service.Stats) *StatsResponse {
	return &StatsResponse{
		StatusCounts:    StatusCountsToResponse(s.StatusCounts),
		ActiveSearchers: s.ActiveSearchers,
		WindowMinutes:   s.WindowMinutes,
	}
}

func chartPoints(points []models.ChartPoint) []ChartPointResponse {
	out := make([]ChartPointResponse, len(points))
	for i, p := range points {
		out[i] = ChartPointResponse{Label: p.Label, Value: p.Value}
	}
	return out
}

func ForecastToResponse(f *service.Forecast) *ForecastResponse {
	return &ForecastResponse{
		ShortageSeries:  chartPoints(f.ShortageSeries),
		BloodTypeSeries: chartPoints(f.BloodTypeSeries),
		SampleData:      f.SampleData,
		RecordsTotal:    f.RecordsTotal,
		RecordsValid:    f.RecordsValid,
		Location:        f.Location,
		PeakMonth:       f.PeakMonth,
		PeakRisk:        f.PeakRisk,
		RiskLevel:       f.RiskLevel,
	}
}

func DTOToAnemiaSample(dto AnemiaRequest) models.AnemiaSample {
	return models.AnemiaSample{
		Hemoglobin: *dto.Hemoglobin,
		MCH:        *dto.MCH,
		MCHC:       *dto.MCHC,
		MCV:        *dto.MCV,
	}
}

func DTOToInventoryRecords(dto ImportInventoryRequest) []models.InventoryRecord {
	records := make([]models.InventoryRecord, len(dto.Records))
	for i, r := range dto.Records {
		records[i] = models.InventoryRecord{
			Date:              r.Date,
			HospitalName:      r.HospitalName,
			City:              r.City,
			BloodType:         r.BloodType,
			UnitsAvailable:    r.UnitsAvailable,
			UnitsUsed:         r.UnitsUsed,
			ExpiredUnits:      r.ExpiredUnits,
			AccidentsReported: r.AccidentsReported,
			DonationsReceived: r.DonationsReceived,
			LocalEvent:        r.LocalEvent,
			ContactPerson:     r.ContactPerson,
			ContactPhone:      r.ContactPhone,
		}
	}
	return records
}
