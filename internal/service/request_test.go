package service_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shenikar/blood_connect/internal/config"
	"github.com/shenikar/blood_connect/internal/models"
	"github.com/shenikar/blood_connect/internal/service"
	"github.com/shenikar/blood_connect/internal/service/mocks"
	"github.com/shenikar/blood_connect/internal/webhook"
	webhook_mocks "github.com/shenikar/blood_connect/internal/webhook/mocks"
	"github.com/shenikar/blood_connect/pkg/metrics"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type requestFixture struct {
	service   service.RequestService
	repo      *mocks.MockBloodRequestRepository
	users     *mocks.MockUserRepository
	publisher *webhook_mocks.MockWebhookPublisher
	metrics   *metrics.Metrics
	cfg       *config.Config
}

// newTestRequestService - вспомогательная функция для создания инстанса сервиса с моками.
func newTestRequestService(t *testing.T) *requestFixture {
	ctrl := gomock.NewController(t)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	f := &requestFixture{
		repo:      mocks.NewMockBloodRequestRepository(ctrl),
		users:     mocks.NewMockUserRepository(ctrl),
		publisher: webhook_mocks.NewMockWebhookPublisher(ctrl),
		metrics:   metrics.NewMetrics("test", prometheus.NewRegistry()),
		cfg: &config.Config{
			StatsTimeWindowMinutes: 60,
			DefaultSearchRadiusKm:  10,
		},
	}
	f.service = service.NewRequestService(f.repo, f.users, logger, f.cfg, f.publisher, f.metrics)
	return f
}

// casablancaRequests - пять заявок: четыре в Касабланке и одна в Рабате
func casablancaRequests() []*models.BloodRequest {
	return []*models.BloodRequest{
		{ID: uuid.New(), BloodType: models.BloodTypeOPos, Urgency: models.UrgencyHigh, Status: models.StatusPending, Latitude: 33.5731, Longitude: -7.5898},
		{ID: uuid.New(), BloodType: models.BloodTypeANeg, Urgency: models.UrgencyCritical, Status: models.StatusPending, Latitude: 33.5950, Longitude: -7.6187},
		{ID: uuid.New(), BloodType: models.BloodTypeBPos, Urgency: models.UrgencyMedium, Status: models.StatusMatched, Latitude: 33.6050, Longitude: -7.6039},
		{ID: uuid.New(), BloodType: models.BloodTypeABPos, Urgency: models.UrgencyLow, Status: models.StatusPending, Latitude: 33.5650, Longitude: -7.6039},
		{ID: uuid.New(), BloodType: models.BloodTypeONeg, Urgency: models.UrgencyCritical, Status: models.StatusPending, Latitude: 34.0209, Longitude: -6.8416},
	}
}

func TestGetRequest_Success_FromCache(t *testing.T) {
	// Подготовка
	f := newTestRequestService(t)
	ctx := context.Background()
	id := uuid.New()
	expected := &models.BloodRequest{ID: id, BloodType: models.BloodTypeONeg}

	// Ожидания
	f.repo.EXPECT().GetRequestFromCache(ctx, id).Return(expected, nil).Times(1)

	// Действие
	request, err := f.service.GetRequest(ctx, id)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, expected, request)
}

func TestGetRequest_Success_FromDB(t *testing.T) {
	f := newTestRequestService(t)
	ctx := context.Background()
	id := uuid.New()
	expected := &models.BloodRequest{ID: id, BloodType: models.BloodTypeAPos}

	// 1. Промах кеша
	f.repo.EXPECT().GetRequestFromCache(ctx, id).Return(nil, nil).Times(1)
	// 2. Попадание в БД
	f.repo.EXPECT().GetByID(ctx, id).Return(expected, nil).Times(1)
	// 3. Запись в кеш
	f.repo.EXPECT().SetRequestCache(ctx, expected).Return(nil).Times(1)

	request, err := f.service.GetRequest(ctx, id)

	require.NoError(t, err)
	assert.Equal(t, expected, request)
}

func TestGetRequest_NotFound(t *testing.T) {
	f := newTestRequestService(t)
	ctx := context.Background()
	id := uuid.New()

	f.repo.EXPECT().GetRequestFromCache(ctx, id).Return(nil, errors.New("redis down")).Times(1)
	f.repo.EXPECT().GetByID(ctx, id).Return(nil, models.ErrNotFound).Times(1)

	request, err := f.service.GetRequest(ctx, id)

	require.Error(t, err)
	assert.Nil(t, request)
	assert.ErrorIs(t, err, models.ErrNotFound)
	assert.True(t, service.IsNotFound(err))
}

func TestCreateRequest_Critical_PublishesEvent(t *testing.T) {
	f := newTestRequestService(t)
	ctx := context.Background()
	requester := &models.User{ID: uuid.New(), Name: "CHU Ibn Rochd", Role: models.RoleHospital}
	actor := models.Actor{UserID: requester.ID, Role: requester.Role}
	toCreate := &models.BloodRequest{
		BloodType: models.BloodTypeONeg,
		Quantity:  3,
		Urgency:   models.UrgencyCritical,
		Status:    models.StatusCompleted, // должен быть заменен на pending
	}

	f.users.EXPECT().GetByID(ctx, requester.ID).Return(requester, nil).Times(1)
	f.repo.EXPECT().
		Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, r *models.BloodRequest) error {
			// Симулируем, что БД присвоила ID
			r.ID = uuid.New()
			return nil
		}).Times(1)
	f.publisher.EXPECT().
		Publish(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, event webhook.WebhookEvent) error {
			assert.Equal(t, webhook.EventRequestCreated, event.Type)
			assert.Equal(t, toCreate, event.Request)
			return nil
		}).Times(1)

	err := f.service.CreateRequest(ctx, actor, toCreate)

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, toCreate.ID)
	assert.Equal(t, models.StatusPending, toCreate.Status)
	assert.Equal(t, requester.ID, toCreate.RequesterID)
	assert.Equal(t, "CHU Ibn Rochd", toCreate.RequesterName)
	assert.Equal(t, models.RoleHospital, toCreate.RequesterRole)
	assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.RequestsCreated))
}

func TestCreateRequest_LowUrgency_NoEvent(t *testing.T) {
	f := newTestRequestService(t)
	ctx := context.Background()
	requester := &models.User{ID: uuid.New(), Role: models.RolePatient}

	f.users.EXPECT().GetByID(ctx, requester.ID).Return(requester, nil).Times(1)
	f.repo.EXPECT().Create(ctx, gomock.Any()).Return(nil).Times(1)
	f.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)

	err := f.service.CreateRequest(ctx, models.Actor{UserID: requester.ID, Role: requester.Role},
		&models.BloodRequest{BloodType: models.BloodTypeAPos, Quantity: 1, Urgency: models.UrgencyLow})

	require.NoError(t, err)
}

func TestCreateRequest_PublishFailureIsNotFatal(t *testing.T) {
	f := newTestRequestService(t)
	ctx := context.Background()
	requester := &models.User{ID: uuid.New(), Role: models.RoleRequester}

	f.users.EXPECT().GetByID(ctx, requester.ID).Return(requester, nil).Times(1)
	f.repo.EXPECT().Create(ctx, gomock.Any()).Return(nil).Times(1)
	f.publisher.EXPECT().Publish(ctx, gomock.Any()).Return(errors.New("redis down")).Times(1)

	err := f.service.CreateRequest(ctx, models.Actor{UserID: requester.ID, Role: requester.Role},
		&models.BloodRequest{BloodType: models.BloodTypeAPos, Quantity: 1, Urgency: models.UrgencyHigh})

	require.NoError(t, err)
}

func TestCreateRequest_DonorForbidden(t *testing.T) {
	f := newTestRequestService(t)

	err := f.service.CreateRequest(context.Background(), models.Actor{UserID: uuid.New(), Role: models.RoleDonor},
		&models.BloodRequest{BloodType: models.BloodTypeAPos, Quantity: 1, Urgency: models.UrgencyLow})

	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrForbidden)
}

func TestCreateRequest_RepositoryError(t *testing.T) {
	f := newTestRequestService(t)
	ctx := context.Background()
	requester := &models.User{ID: uuid.New(), Role: models.RoleHospital}

	f.users.EXPECT().GetByID(ctx, requester.ID).Return(requester, nil).Times(1)
	f.repo.EXPECT().Create(ctx, gomock.Any()).Return(errors.New("db error")).Times(1)

	err := f.service.CreateRequest(ctx, models.Actor{UserID: requester.ID, Role: requester.Role},
		&models.BloodRequest{BloodType: models.BloodTypeAPos, Quantity: 1, Urgency: models.UrgencyCritical})

	require.Error(t, err)
	assert.ErrorContains(t, err, "could not create request")
	assert.Equal(t, 0.0, testutil.ToFloat64(f.metrics.RequestsCreated))
}

func TestListRequests_Pagination(t *testing.T) {
	tests := []struct {
		name             string
		page, pageSize   int
		wantPage, wantPS int
	}{
		{name: "valid", page: 2, pageSize: 50, wantPage: 2, wantPS: 50},
		{name: "page below one", page: 0, pageSize: 10, wantPage: 1, wantPS: 10},
		{name: "page size zero", page: 1, pageSize: 0, wantPage: 1, wantPS: 20},
		{name: "page size too large", page: 3, pageSize: 101, wantPage: 3, wantPS: 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newTestRequestService(t)
			ctx := context.Background()
			expected := []*models.BloodRequest{{ID: uuid.New()}}

			f.repo.EXPECT().ListRequests(ctx, tt.wantPage, tt.wantPS).Return(expected, nil).Times(1)

			requests, err := f.service.ListRequests(ctx, tt.page, tt.pageSize)

			require.NoError(t, err)
			assert.Equal(t, expected, requests)
		})
	}
}

func TestListMyRequests(t *testing.T) {
	f := newTestRequestService(t)
	ctx := context.Background()
	actor := models.Actor{UserID: uuid.New(), Role: models.RolePatient}
	expected := []*models.BloodRequest{{ID: uuid.New(), RequesterID: actor.UserID}}

	f.repo.EXPECT().ListByRequester(ctx, actor.UserID).Return(expected, nil).Times(1)

	requests, err := f.service.ListMyRequests(ctx, actor)

	require.NoError(t, err)
	assert.Equal(t, expected, requests)
}

func TestUpdateStatus_OwnerSuccess(t *testing.T) {
	f := newTestRequestService(t)
	ctx := context.Background()
	owner := uuid.New()
	existing := &models.BloodRequest{ID: uuid.New(), RequesterID: owner, Status: models.StatusPending}

	f.repo.EXPECT().GetByID(ctx, existing.ID).Return(existing, nil).Times(1)
	f.repo.EXPECT().UpdateStatus(ctx, existing.ID, models.StatusMatched).Return(nil).Times(1)
	f.repo.EXPECT().InvalidateRequestCache(ctx, existing.ID).Return(nil).Times(1)
	f.publisher.EXPECT().
		Publish(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, event webhook.WebhookEvent) error {
			assert.Equal(t, webhook.EventRequestStatusChanged, event.Type)
			assert.Equal(t, models.StatusPending, event.PreviousStatus)
			assert.Equal(t, models.StatusMatched, event.Request.Status)
			return nil
		}).Times(1)

	updated, err := f.service.UpdateStatus(ctx, models.Actor{UserID: owner, Role: models.RoleHospital}, existing.ID, models.StatusMatched)

	require.NoError(t, err)
	assert.Equal(t, models.StatusMatched, updated.Status)
	assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.StatusUpdates.WithLabelValues("matched")))
}

func TestUpdateStatus_AdminMayUpdateAnyRequest(t *testing.T) {
	f := newTestRequestService(t)
	ctx := context.Background()
	existing := &models.BloodRequest{ID: uuid.New(), RequesterID: uuid.New(), Status: models.StatusPending}

	f.repo.EXPECT().GetByID(ctx, existing.ID).Return(existing, nil).Times(1)
	f.repo.EXPECT().UpdateStatus(ctx, existing.ID, models.StatusCancelled).Return(nil).Times(1)
	f.repo.EXPECT().InvalidateRequestCache(ctx, existing.ID).Return(nil).Times(1)
	f.publisher.EXPECT().Publish(ctx, gomock.Any()).Return(nil).Times(1)

	_, err := f.service.UpdateStatus(ctx, models.Actor{UserID: uuid.New(), Role: models.RoleAdmin}, existing.ID, models.StatusCancelled)

	require.NoError(t, err)
}

func TestUpdateStatus_NotOwnerForbidden(t *testing.T) {
	f := newTestRequestService(t)
	ctx := context.Background()
	existing := &models.BloodRequest{ID: uuid.New(), RequesterID: uuid.New(), Status: models.StatusPending}

	f.repo.EXPECT().GetByID(ctx, existing.ID).Return(existing, nil).Times(1)

	updated, err := f.service.UpdateStatus(ctx, models.Actor{UserID: uuid.New(), Role: models.RoleDonor}, existing.ID, models.StatusMatched)

	require.Error(t, err)
	assert.Nil(t, updated)
	assert.ErrorIs(t, err, models.ErrForbidden)
}

func TestUpdateStatus_StrictTransitionRejected(t *testing.T) {
	f := newTestRequestService(t)
	f.cfg.StrictStatusTransitions = true
	ctx := context.Background()
	owner := uuid.New()
	existing := &models.BloodRequest{ID: uuid.New(), RequesterID: owner, Status: models.StatusCompleted}

	f.repo.EXPECT().GetByID(ctx, existing.ID).Return(existing, nil).Times(1)

	_, err := f.service.UpdateStatus(ctx, models.Actor{UserID: owner, Role: models.RolePatient}, existing.ID, models.StatusPending)

	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrInvalidStatusTransition)
}

func TestUpdateStatus_NotFound(t *testing.T) {
	f := newTestRequestService(t)
	ctx := context.Background()
	id := uuid.New()

	f.repo.EXPECT().GetByID(ctx, id).Return(nil, models.ErrNotFound).Times(1)

	_, err := f.service.UpdateStatus(ctx, models.Actor{UserID: uuid.New(), Role: models.RoleAdmin}, id, models.StatusMatched)

	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestFindNearby_DefaultRadius(t *testing.T) {
	f := newTestRequestService(t)
	ctx := context.Background()
	actor := models.Actor{UserID: uuid.New(), Role: models.RoleDonor}
	snapshot := casablancaRequests()

	f.repo.EXPECT().ListAll(ctx).Return(snapshot, nil).Times(1)
	f.repo.EXPECT().
		SaveNearbySearch(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, search *models.NearbySearch) error {
			assert.Equal(t, actor.UserID, search.UserID)
			assert.Equal(t, 10.0, search.RadiusKm)
			assert.Equal(t, 4, search.ResultCount)
			return nil
		}).Times(1)

	found, err := f.service.FindNearby(ctx, actor, service.NearbyQuery{Latitude: 33.5892, Longitude: -7.6039})

	require.NoError(t, err)
	assert.Equal(t, snapshot[:4], found)
	assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.NearbySearches))
}

func TestFindNearby_PendingOnlyWithRadius(t *testing.T) {
	f := newTestRequestService(t)
	ctx := context.Background()
	snapshot := casablancaRequests()
	radius := 100.0

	f.repo.EXPECT().ListAll(ctx).Return(snapshot, nil).Times(1)
	// Ошибка сохранения статистики не влияет на результат
	f.repo.EXPECT().SaveNearbySearch(ctx, gomock.Any()).Return(errors.New("db error")).Times(1)

	found, err := f.service.FindNearby(ctx, models.Actor{UserID: uuid.New()}, service.NearbyQuery{
		Latitude:    33.5892,
		Longitude:   -7.6039,
		RadiusKm:    &radius,
		PendingOnly: true,
	})

	require.NoError(t, err)
	assert.Equal(t, []*models.BloodRequest{snapshot[0], snapshot[1], snapshot[3], snapshot[4]}, found)
}

func TestFindNearby_RepositoryError(t *testing.T) {
	f := newTestRequestService(t)
	ctx := context.Background()

	f.repo.EXPECT().ListAll(ctx).Return(nil, errors.New("db error")).Times(1)

	found, err := f.service.FindNearby(ctx, models.Actor{UserID: uuid.New()}, service.NearbyQuery{})

	require.Error(t, err)
	assert.Nil(t, found)
}

func TestGetDashboard(t *testing.T) {
	f := newTestRequestService(t)
	ctx := context.Background()
	donor := &models.User{ID: uuid.New(), Role: models.RoleDonor, BloodType: models.BloodTypeONeg}
	snapshot := casablancaRequests()
	counts := []models.StatusCount{{Status: models.StatusPending, Count: 4}, {Status: models.StatusMatched, Count: 1}}

	f.users.EXPECT().GetByID(ctx, donor.ID).Return(donor, nil).Times(1)
	f.repo.EXPECT().ListAll(ctx).Return(snapshot, nil).Times(1)
	f.repo.EXPECT().CountByStatus(ctx).Return(counts, nil).Times(1)

	dashboard, err := f.service.GetDashboard(ctx, models.Actor{UserID: donor.ID, Role: donor.Role})

	require.NoError(t, err)
	assert.Equal(t, donor, dashboard.User)
	assert.Equal(t, counts, dashboard.StatusCounts)
	require.Len(t, dashboard.Requests, 3)
	// Заявка с группой донора первой, затем по срочности
	assert.Equal(t, snapshot[4], dashboard.Requests[0])
	assert.Equal(t, snapshot[1], dashboard.Requests[1])
	assert.Equal(t, snapshot[0], dashboard.Requests[2])
}

func TestGetStats(t *testing.T) {
	f := newTestRequestService(t)
	ctx := context.Background()
	counts := []models.StatusCount{{Status: models.StatusPending, Count: 2}}

	f.repo.EXPECT().CountByStatus(ctx).Return(counts, nil).Times(1)
	f.repo.EXPECT().GetNearbySearchStats(ctx, 60).Return(7, nil).Times(1)

	stats, err := f.service.GetStats(ctx)

	require.NoError(t, err)
	assert.Equal(t, counts, stats.StatusCounts)
	assert.Equal(t, 7, stats.ActiveSearchers)
	assert.Equal(t, 60, stats.WindowMinutes)
}

func TestGetStats_Error(t *testing.T) {
	f := newTestRequestService(t)
	ctx := context.Background()

	f.repo.EXPECT().CountByStatus(ctx).Return(nil, nil).Times(1)
	f.repo.EXPECT().GetNearbySearchStats(ctx, 60).Return(0, errors.New("db error")).Times(1)

	stats, err := f.service.GetStats(ctx)

	require.Error(t, err)
	assert.Nil(t, stats)
	assert.ErrorContains(t, err, "could not get search stats")
}
