package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shenikar/blood_connect/internal/auth"
	"github.com/shenikar/blood_connect/internal/config"
	"github.com/shenikar/blood_connect/internal/forecast"
	"github.com/shenikar/blood_connect/internal/models"
	"github.com/shenikar/blood_connect/internal/service"
	"github.com/shenikar/blood_connect/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testToken = "test-token"

type testDeps struct {
	requests   *mocks.MockRequestService
	auth       *mocks.MockAuthService
	prediction *mocks.MockPredictionService
	router     *gin.Engine
}

// newTestHandler создает Handler с мокированными сервисами
func newTestHandler(t *testing.T) *testDeps {
	ctrl := gomock.NewController(t)
	deps := &testDeps{
		requests:   mocks.NewMockRequestService(ctrl),
		auth:       mocks.NewMockAuthService(ctrl),
		prediction: mocks.NewMockPredictionService(ctrl),
	}

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		APIKeys:                []string{"test-api-key"},
		StatsTimeWindowMinutes: 60,
	}

	handler := NewHandler(deps.requests, deps.auth, deps.prediction, logger, cfg)

	gin.SetMode(gin.TestMode)
	deps.router = gin.New()
	api := deps.router.Group("/api/v1")
	handler.RegisterRoutes(api)

	return deps
}

// loginAs настраивает мок так, что testToken принадлежит пользователю с ролью role
func (d *testDeps) loginAs(role models.Role) uuid.UUID {
	userID := uuid.New()
	d.auth.EXPECT().
		Authenticate(gomock.Any(), testToken).
		Return(&auth.Claims{
			UserID:           userID,
			Role:             role,
			RegisteredClaims: jwt.RegisteredClaims{ID: "jti-1"},
		}, nil).
		AnyTimes()
	return userID
}

func bearer() map[string]string {
	return map[string]string{"Authorization": "Bearer " + testToken}
}

// makeRequest - вспомогательная функция для выполнения HTTP-запросов
func makeRequest(router *gin.Engine, method, url string, body io.Reader, headers ...map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, h := range headers {
		for key, value := range h {
			req.Header.Set(key, value)
		}
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func jsonBody(t *testing.T, v any) io.Reader {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

func ptr[T any](v T) *T { return &v }

func sampleRequest(requesterID uuid.UUID) *models.BloodRequest {
	return &models.BloodRequest{
		ID:            uuid.New(),
		RequesterID:   requesterID,
		RequesterName: "Ibn Sina Hospital",
		RequesterRole: models.RoleHospital,
		BloodType:     models.BloodTypeONeg,
		Quantity:      3,
		Urgency:       models.UrgencyCritical,
		Latitude:      33.596315,
		Longitude:     -7.619994,
		Status:        models.StatusPending,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}
}

func TestHealthCheck(t *testing.T) {
	d := newTestHandler(t)

	w := makeRequest(d.router, "GET", "/api/v1/system/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestSignup_Success(t *testing.T) {
	d := newTestHandler(t)
	userID := uuid.New()

	d.auth.EXPECT().
		Signup(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, in service.SignupInput) (*service.AuthResult, error) {
			assert.Equal(t, models.RoleDonor, in.Role)
			assert.Equal(t, models.BloodTypeOPos, in.BloodType)
			return &service.AuthResult{
				Token: "issued",
				User:  &models.User{ID: userID, Name: in.Name, Email: in.Email, Role: in.Role},
			}, nil
		})

	w := makeRequest(d.router, "POST", "/api/v1/auth/signup", jsonBody(t, SignupRequest{
		Name:      "Amina",
		Email:     "amina@example.com",
		Password:  "supersecret",
		Role:      "donor",
		BloodType: "O+",
		Latitude:  ptr(33.57),
		Longitude: ptr(-7.6),
	}))

	require.Equal(t, http.StatusCreated, w.Code)
	var resp AuthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "issued", resp.Token)
	assert.Equal(t, userID, resp.User.ID)
}

func TestSignup_AdminRoleRejectedByValidation(t *testing.T) {
	d := newTestHandler(t)
	d.auth.EXPECT().Signup(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(d.router, "POST", "/api/v1/auth/signup", jsonBody(t, SignupRequest{
		Name: "Root", Email: "root@example.com", Password: "supersecret", Role: "admin",
	}))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSignup_HalfCoordinates(t *testing.T) {
	d := newTestHandler(t)
	d.auth.EXPECT().Signup(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(d.router, "POST", "/api/v1/auth/signup", jsonBody(t, SignupRequest{
		Name: "Amina", Email: "amina@example.com", Password: "supersecret", Role: "donor",
		Latitude: ptr(33.57),
	}))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "provided together")
}

func TestSignup_EmailTaken(t *testing.T) {
	d := newTestHandler(t)
	d.auth.EXPECT().
		Signup(gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("service: create user: %w", models.ErrAlreadyExists))

	w := makeRequest(d.router, "POST", "/api/v1/auth/signup", jsonBody(t, SignupRequest{
		Name: "Amina", Email: "amina@example.com", Password: "supersecret", Role: "donor",
	}))

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	d := newTestHandler(t)
	d.auth.EXPECT().
		Login(gomock.Any(), "amina@example.com", "wrong-password").
		Return(nil, models.ErrInvalidCredentials)

	w := makeRequest(d.router, "POST", "/api/v1/auth/login", jsonBody(t, LoginRequest{
		Email: "amina@example.com", Password: "wrong-password",
	}))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLogin_InvalidJSON(t *testing.T) {
	d := newTestHandler(t)
	d.auth.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(d.router, "POST", "/api/v1/auth/login", bytes.NewBufferString(`{"email": "x"`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid request body")
}

func TestLogout_UsesTokenID(t *testing.T) {
	d := newTestHandler(t)
	d.loginAs(models.RoleDonor)
	d.auth.EXPECT().Logout(gomock.Any(), "jti-1").Return(nil)

	w := makeRequest(d.router, "POST", "/api/v1/auth/logout", nil, bearer())

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestMe(t *testing.T) {
	d := newTestHandler(t)
	userID := d.loginAs(models.RolePatient)
	d.auth.EXPECT().
		GetUser(gomock.Any(), userID).
		Return(&models.User{ID: userID, Name: "Youssef", Role: models.RolePatient}, nil)

	w := makeRequest(d.router, "GET", "/api/v1/auth/me", nil, bearer())

	require.Equal(t, http.StatusOK, w.Code)
	var resp UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Youssef", resp.Name)
	assert.Equal(t, "patient", resp.Role)
}

func TestJWTMiddleware(t *testing.T) {
	t.Run("missing header", func(t *testing.T) {
		d := newTestHandler(t)
		d.requests.EXPECT().ListRequests(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		w := makeRequest(d.router, "GET", "/api/v1/requests", nil)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "authorization token required")
	})

	t.Run("rejected token", func(t *testing.T) {
		d := newTestHandler(t)
		d.auth.EXPECT().Authenticate(gomock.Any(), "stale").Return(nil, auth.ErrInvalidToken)

		w := makeRequest(d.router, "GET", "/api/v1/requests", nil, map[string]string{"Authorization": "Bearer stale"})

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "invalid or expired token")
	})
}

func TestCreateRequest_Success(t *testing.T) {
	d := newTestHandler(t)
	userID := d.loginAs(models.RoleHospital)
	requestID := uuid.New()

	d.requests.EXPECT().
		CreateRequest(gomock.Any(), models.Actor{UserID: userID, Role: models.RoleHospital}, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ models.Actor, r *models.BloodRequest) error {
			assert.Equal(t, models.BloodTypeONeg, r.BloodType)
			assert.Equal(t, 33.596315, r.Latitude)
			r.ID = requestID
			r.RequesterID = userID
			r.Status = models.StatusPending
			return nil
		})

	w := makeRequest(d.router, "POST", "/api/v1/requests", jsonBody(t, CreateBloodRequestRequest{
		BloodType: "O-",
		Quantity:  3,
		Urgency:   "critical",
		Latitude:  ptr(33.596315),
		Longitude: ptr(-7.619994),
	}), bearer())

	require.Equal(t, http.StatusCreated, w.Code)
	var resp BloodRequestResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, requestID, resp.ID)
	assert.Equal(t, "pending", resp.Status)
}

func TestCreateRequest_DonorForbidden(t *testing.T) {
	d := newTestHandler(t)
	d.loginAs(models.RoleDonor)
	d.requests.EXPECT().CreateRequest(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(d.router, "POST", "/api/v1/requests", jsonBody(t, CreateBloodRequestRequest{
		BloodType: "O-", Quantity: 1, Urgency: "low", Latitude: ptr(1.0), Longitude: ptr(1.0),
	}), bearer())

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestCreateRequest_ValidationError(t *testing.T) {
	cases := map[string]CreateBloodRequestRequest{
		"missing coordinates": {BloodType: "A+", Quantity: 1, Urgency: "low"},
		"bad blood type":      {BloodType: "Z+", Quantity: 1, Urgency: "low", Latitude: ptr(1.0), Longitude: ptr(1.0)},
		"zero quantity":       {BloodType: "A+", Quantity: 0, Urgency: "low", Latitude: ptr(1.0), Longitude: ptr(1.0)},
		"latitude range":      {BloodType: "A+", Quantity: 1, Urgency: "low", Latitude: ptr(91.0), Longitude: ptr(1.0)},
		"unknown urgency":     {BloodType: "A+", Quantity: 1, Urgency: "asap", Latitude: ptr(1.0), Longitude: ptr(1.0)},
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			d := newTestHandler(t)
			d.loginAs(models.RoleRequester)
			d.requests.EXPECT().CreateRequest(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

			w := makeRequest(d.router, "POST", "/api/v1/requests", jsonBody(t, body), bearer())

			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestListRequests_Pagination(t *testing.T) {
	d := newTestHandler(t)
	d.loginAs(models.RoleDonor)
	d.requests.EXPECT().
		ListRequests(gomock.Any(), 2, 5).
		Return([]*models.BloodRequest{sampleRequest(uuid.New())}, nil)

	w := makeRequest(d.router, "GET", "/api/v1/requests?page=2&pageSize=5", nil, bearer())

	require.Equal(t, http.StatusOK, w.Code)
	var resp []BloodRequestResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 1)
}

func TestListMyRequests(t *testing.T) {
	d := newTestHandler(t)
	userID := d.loginAs(models.RoleRequester)
	d.requests.EXPECT().
		ListMyRequests(gomock.Any(), models.Actor{UserID: userID, Role: models.RoleRequester}).
		Return([]*models.BloodRequest{}, nil)

	w := makeRequest(d.router, "GET", "/api/v1/requests/mine", nil, bearer())

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestFindNearby_Success(t *testing.T) {
	d := newTestHandler(t)
	d.loginAs(models.RoleDonor)
	near := sampleRequest(uuid.New())

	d.requests.EXPECT().
		FindNearby(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ models.Actor, q service.NearbyQuery) ([]*models.BloodRequest, error) {
			assert.Equal(t, 33.57, q.Latitude)
			assert.Equal(t, -7.6, q.Longitude)
			require.NotNil(t, q.RadiusKm)
			assert.Equal(t, 5.0, *q.RadiusKm)
			assert.True(t, q.PendingOnly)
			return []*models.BloodRequest{near}, nil
		})

	w := makeRequest(d.router, "GET", "/api/v1/requests/nearby?lat=33.57&lng=-7.6&radius_km=5&pending_only=true", nil, bearer())

	require.Equal(t, http.StatusOK, w.Code)
	var resp []BloodRequestResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, near.ID, resp[0].ID)
}

func TestFindNearby_DefaultRadius(t *testing.T) {
	d := newTestHandler(t)
	d.loginAs(models.RoleDonor)
	d.requests.EXPECT().
		FindNearby(gomock.Any(), gomock.Any(), service.NearbyQuery{Latitude: 0, Longitude: 0}).
		Return([]*models.BloodRequest{}, nil)

	w := makeRequest(d.router, "GET", "/api/v1/requests/nearby?lat=0&lng=0", nil, bearer())

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestFindNearby_InvalidQuery(t *testing.T) {
	cases := map[string]string{
		"missing lat":         "lng=1",
		"lat out of range":    "lat=90.5&lng=1",
		"lng out of range":    "lat=1&lng=-181",
		"negative radius":     "lat=1&lng=1&radius_km=-1",
		"radius not a number": "lat=1&lng=1&radius_km=far",
		"bad pending flag":    "lat=1&lng=1&pending_only=maybe",
	}
	for name, query := range cases {
		t.Run(name, func(t *testing.T) {
			d := newTestHandler(t)
			d.loginAs(models.RoleDonor)
			d.requests.EXPECT().FindNearby(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

			w := makeRequest(d.router, "GET", "/api/v1/requests/nearby?"+query, nil, bearer())

			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestGetRequest(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		d := newTestHandler(t)
		d.loginAs(models.RoleDonor)
		req := sampleRequest(uuid.New())
		d.requests.EXPECT().GetRequest(gomock.Any(), req.ID).Return(req, nil)

		w := makeRequest(d.router, "GET", "/api/v1/requests/"+req.ID.String(), nil, bearer())

		require.Equal(t, http.StatusOK, w.Code)
		var resp BloodRequestResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, req.ID, resp.ID)
		assert.Equal(t, "O-", resp.BloodType)
	})

	t.Run("not found", func(t *testing.T) {
		d := newTestHandler(t)
		d.loginAs(models.RoleDonor)
		id := uuid.New()
		d.requests.EXPECT().
			GetRequest(gomock.Any(), id).
			Return(nil, fmt.Errorf("service: get request: %w", models.ErrNotFound))

		w := makeRequest(d.router, "GET", "/api/v1/requests/"+id.String(), nil, bearer())

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("invalid id", func(t *testing.T) {
		d := newTestHandler(t)
		d.loginAs(models.RoleDonor)
		d.requests.EXPECT().GetRequest(gomock.Any(), gomock.Any()).Times(0)

		w := makeRequest(d.router, "GET", "/api/v1/requests/not-a-uuid", nil, bearer())

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "invalid request ID")
	})
}

func TestUpdateRequestStatus(t *testing.T) {
	tests := []struct {
		name       string
		serviceErr error
		wantCode   int
	}{
		{name: "ok", wantCode: http.StatusOK},
		{name: "not owner", serviceErr: models.ErrForbidden, wantCode: http.StatusForbidden},
		{name: "strict transition", serviceErr: models.ErrInvalidStatusTransition, wantCode: http.StatusUnprocessableEntity},
		{name: "storage failure", serviceErr: fmt.Errorf("service: update status: %w", context.DeadlineExceeded), wantCode: http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newTestHandler(t)
			userID := d.loginAs(models.RoleHospital)
			req := sampleRequest(userID)

			call := d.requests.EXPECT().
				UpdateStatus(gomock.Any(), models.Actor{UserID: userID, Role: models.RoleHospital}, req.ID, models.StatusMatched)
			if tt.serviceErr != nil {
				call.Return(nil, tt.serviceErr)
			} else {
				updated := *req
				updated.Status = models.StatusMatched
				call.Return(&updated, nil)
			}

			w := makeRequest(d.router, "PATCH", "/api/v1/requests/"+req.ID.String()+"/status",
				jsonBody(t, UpdateStatusRequest{Status: "matched"}), bearer())

			assert.Equal(t, tt.wantCode, w.Code)
			if tt.serviceErr == nil {
				assert.Contains(t, w.Body.String(), `"status":"matched"`)
			}
		})
	}
}

func TestUpdateRequestStatus_UnknownStatus(t *testing.T) {
	d := newTestHandler(t)
	d.loginAs(models.RoleHospital)
	d.requests.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(d.router, "PATCH", "/api/v1/requests/"+uuid.NewString()+"/status",
		jsonBody(t, UpdateStatusRequest{Status: "archived"}), bearer())

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetDashboard(t *testing.T) {
	d := newTestHandler(t)
	userID := d.loginAs(models.RoleDonor)
	d.requests.EXPECT().
		GetDashboard(gomock.Any(), models.Actor{UserID: userID, Role: models.RoleDonor}).
		Return(&service.Dashboard{
			User:         &models.User{ID: userID, Name: "Amina", Role: models.RoleDonor},
			Requests:     []*models.BloodRequest{sampleRequest(uuid.New())},
			StatusCounts: []models.StatusCount{{Status: models.StatusPending, Count: 4}},
		}, nil)

	w := makeRequest(d.router, "GET", "/api/v1/dashboard", nil, bearer())

	require.Equal(t, http.StatusOK, w.Code)
	var resp DashboardResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Amina", resp.User.Name)
	assert.Len(t, resp.Requests, 1)
	assert.Equal(t, []StatusCountResponse{{Status: "pending", Count: 4}}, resp.StatusCounts)
}

func TestGetStats(t *testing.T) {
	t.Run("admin", func(t *testing.T) {
		d := newTestHandler(t)
		d.loginAs(models.RoleAdmin)
		d.requests.EXPECT().GetStats(gomock.Any()).Return(&service.Stats{
			StatusCounts:    []models.StatusCount{{Status: models.StatusCompleted, Count: 2}},
			ActiveSearchers: 7,
			WindowMinutes:   60,
		}, nil)

		w := makeRequest(d.router, "GET", "/api/v1/stats", nil, bearer())

		require.Equal(t, http.StatusOK, w.Code)
		var resp StatsResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, 7, resp.ActiveSearchers)
		assert.Equal(t, 60, resp.WindowMinutes)
	})

	t.Run("non admin", func(t *testing.T) {
		d := newTestHandler(t)
		d.loginAs(models.RoleHospital)
		d.requests.EXPECT().GetStats(gomock.Any()).Times(0)

		w := makeRequest(d.router, "GET", "/api/v1/stats", nil, bearer())

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Contains(t, w.Body.String(), "insufficient permissions")
	})
}

func TestGetForecast(t *testing.T) {
	d := newTestHandler(t)
	d.loginAs(models.RoleDonor)
	d.prediction.EXPECT().GetForecast(gomock.Any(), gomock.Any()).Return(&service.Forecast{
		Result: forecast.Result{
			ShortageSeries:  []models.ChartPoint{{Label: "Jan", Value: 40}, {Label: "Feb", Value: 65}},
			BloodTypeSeries: []models.ChartPoint{{Label: "O-", Value: 50}},
			RecordsTotal:    3,
			RecordsValid:    3,
		},
		Location:  "Casablanca",
		PeakMonth: "Feb",
		PeakRisk:  65,
		RiskLevel: service.RiskLevelHigh,
	}, nil)

	w := makeRequest(d.router, "GET", "/api/v1/prediction/forecast", nil, bearer())

	require.Equal(t, http.StatusOK, w.Code)
	var resp ForecastResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, []ChartPointResponse{{Label: "Jan", Value: 40}, {Label: "Feb", Value: 65}}, resp.ShortageSeries)
	assert.Equal(t, "Casablanca", resp.Location)
	assert.Equal(t, "high", resp.RiskLevel)
	assert.False(t, resp.SampleData)
}

func TestPredictAnemia(t *testing.T) {
	t.Run("positive", func(t *testing.T) {
		d := newTestHandler(t)
		d.loginAs(models.RolePatient)
		d.prediction.EXPECT().
			PredictAnemia(gomock.Any(), models.AnemiaSample{Hemoglobin: 9.1, MCH: 22, MCHC: 29, MCV: 70}).
			Return(&models.AnemiaPrediction{Positive: true, Label: "anemia detected"}, nil)

		w := makeRequest(d.router, "POST", "/api/v1/prediction/anemia", jsonBody(t, AnemiaRequest{
			Hemoglobin: ptr(9.1), MCH: ptr(22.0), MCHC: ptr(29.0), MCV: ptr(70.0),
		}), bearer())

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"positive":true,"label":"anemia detected"}`, w.Body.String())
	})

	t.Run("missing field", func(t *testing.T) {
		d := newTestHandler(t)
		d.loginAs(models.RolePatient)
		d.prediction.EXPECT().PredictAnemia(gomock.Any(), gomock.Any()).Times(0)

		w := makeRequest(d.router, "POST", "/api/v1/prediction/anemia",
			bytes.NewBufferString(`{"hemoglobin": 9.1, "mch": 22, "mchc": 29}`), bearer())

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("model unavailable", func(t *testing.T) {
		d := newTestHandler(t)
		d.loginAs(models.RolePatient)
		d.prediction.EXPECT().
			PredictAnemia(gomock.Any(), gomock.Any()).
			Return(nil, fmt.Errorf("client: predict: %w", models.ErrUpstream))

		w := makeRequest(d.router, "POST", "/api/v1/prediction/anemia", jsonBody(t, AnemiaRequest{
			Hemoglobin: ptr(13.0), MCH: ptr(28.0), MCHC: ptr(33.0), MCV: ptr(90.0),
		}), bearer())

		assert.Equal(t, http.StatusBadGateway, w.Code)
	})
}

func TestGetInsight(t *testing.T) {
	d := newTestHandler(t)
	d.loginAs(models.RoleDonor)
	d.prediction.EXPECT().GetInsight(gomock.Any()).Return("Donations drop in August.", nil)

	w := makeRequest(d.router, "GET", "/api/v1/prediction/insight", nil, bearer())

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"insight":"Donations drop in August."}`, w.Body.String())
}

func TestImportInventory(t *testing.T) {
	body := ImportInventoryRequest{Records: []InventoryRecordRequest{
		{Date: "2024-01-15", HospitalName: "CHU Ibn Rochd", City: "Casablanca", BloodType: "O-", UnitsAvailable: ptr(10), UnitsUsed: ptr(4)},
		{Date: "2024-02-15", BloodType: "A+", UnitsAvailable: ptr(0), UnitsUsed: ptr(3)},
	}}

	t.Run("success", func(t *testing.T) {
		d := newTestHandler(t)
		d.prediction.EXPECT().
			ImportInventory(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, records []models.InventoryRecord) (int, error) {
				require.Len(t, records, 2)
				assert.Equal(t, "O-", records[0].BloodType)
				assert.Equal(t, 10, *records[0].UnitsAvailable)
				return len(records), nil
			})

		w := makeRequest(d.router, "POST", "/api/v1/inventory/import", jsonBody(t, body),
			map[string]string{"X-API-Key": "test-api-key"})

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.JSONEq(t, `{"inserted":2}`, w.Body.String())
	})

	t.Run("missing api key", func(t *testing.T) {
		d := newTestHandler(t)
		d.prediction.EXPECT().ImportInventory(gomock.Any(), gomock.Any()).Times(0)

		w := makeRequest(d.router, "POST", "/api/v1/inventory/import", jsonBody(t, body))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "API key required")
	})

	t.Run("wrong api key", func(t *testing.T) {
		d := newTestHandler(t)
		d.prediction.EXPECT().ImportInventory(gomock.Any(), gomock.Any()).Times(0)

		w := makeRequest(d.router, "POST", "/api/v1/inventory/import", jsonBody(t, body),
			map[string]string{"X-API-Key": "nope"})

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid API key")
	})

	t.Run("empty batch", func(t *testing.T) {
		d := newTestHandler(t)
		d.prediction.EXPECT().ImportInventory(gomock.Any(), gomock.Any()).Times(0)

		w := makeRequest(d.router, "POST", "/api/v1/inventory/import", jsonBody(t, ImportInventoryRequest{}),
			map[string]string{"X-API-Key": "test-api-key"})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
