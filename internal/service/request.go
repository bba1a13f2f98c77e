package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/blood_connect/internal/config"
	"github.com/shenikar/blood_connect/internal/geo"
	"github.com/shenikar/blood_connect/internal/models"
	"github.com/shenikar/blood_connect/internal/webhook"
	"github.com/shenikar/blood_connect/pkg/metrics"
	"github.com/sirupsen/logrus"
)

// BloodRequestRepository определяет контракт для работы с бд заявок на кровь
type BloodRequestRepository interface {
	Create(ctx context.Context, request *models.BloodRequest) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.BloodRequest, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status models.RequestStatus) error
	ListRequests(ctx context.Context, page, pageSize int) ([]*models.BloodRequest, error)
	ListAll(ctx context.Context) ([]*models.BloodRequest, error)
	ListByRequester(ctx context.Context, requesterID uuid.UUID) ([]*models.BloodRequest, error)
	CountByStatus(ctx context.Context) ([]models.StatusCount, error)
	SaveNearbySearch(ctx context.Context, search *models.NearbySearch) error
	GetNearbySearchStats(ctx context.Context, minutes int) (int, error)

	GetRequestFromCache(ctx context.Context, id uuid.UUID) (*models.BloodRequest, error)
	SetRequestCache(ctx context.Context, request *models.BloodRequest) error
	InvalidateRequestCache(ctx context.Context, id uuid.UUID) error
}

// NearbyQuery - параметры поиска заявок рядом с точкой.
// RadiusKm == nil означает радиус по умолчанию из конфигурации.
type NearbyQuery struct {
	Latitude    float64
	Longitude   float64
	RadiusKm    *float64
	PendingOnly bool
}

// Dashboard - данные главной страницы, подобранные под роль пользователя
type Dashboard struct {
	User         *models.User           `json:"user"`
	Requests     []*models.BloodRequest `json:"requests"`
	StatusCounts []models.StatusCount   `json:"status_counts"`
}

// Stats - сводная статистика для администратора
type Stats struct {
	StatusCounts    []models.StatusCount `json:"status_counts"`
	ActiveSearchers int                  `json:"active_searchers"`
	WindowMinutes   int                  `json:"window_minutes"`
}

// RequestService определяет контракт бизнес-логики заявок на кровь
type RequestService interface {
	CreateRequest(ctx context.Context, actor models.Actor, request *models.BloodRequest) error
	GetRequest(ctx context.Context, id uuid.UUID) (*models.BloodRequest, error)
	ListRequests(ctx context.Context, page, pageSize int) ([]*models.BloodRequest, error)
	ListMyRequests(ctx context.Context, actor models.Actor) ([]*models.BloodRequest, error)
	UpdateStatus(ctx context.Context, actor models.Actor, id uuid.UUID, status models.RequestStatus) (*models.BloodRequest, error)
	FindNearby(ctx context.Context, actor models.Actor, query NearbyQuery) ([]*models.BloodRequest, error)
	GetDashboard(ctx context.Context, actor models.Actor) (*Dashboard, error)
	GetStats(ctx context.Context) (*Stats, error)
}

type requestService struct {
	repo      BloodRequestRepository
	users     UserRepository
	logger    *logrus.Logger
	cfg       *config.Config
	publisher webhook.WebhookPublisher
	metrics   *metrics.Metrics
}

func NewRequestService(repo BloodRequestRepository, users UserRepository, logger *logrus.Logger, cfg *config.Config, publisher webhook.WebhookPublisher, m *metrics.Metrics) RequestService {
	return &requestService{
		repo:      repo,
		users:     users,
		logger:    logger,
		cfg:       cfg,
		publisher: publisher,
		metrics:   m,
	}
}

// CreateRequest создает заявку от имени пользователя
func (s *requestService) CreateRequest(ctx context.Context, actor models.Actor, request *models.BloodRequest) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "request",
		"method":  "CreateRequest",
		"user_id": actor.UserID,
	})
	log.Info("Attempting to create a new blood request")

	if !actor.Role.CanCreateRequests() {
		log.WithField("role", actor.Role).Warn("Role is not allowed to create requests")
		return fmt.Errorf("service: role %s cannot create requests: %w", actor.Role, models.ErrForbidden)
	}

	requester, err := s.users.GetByID(ctx, actor.UserID)
	if err != nil {
		log.WithError(err).Error("Failed to load requester")
		return fmt.Errorf("service: could not load requester: %w", err)
	}

	request.RequesterID = requester.ID
	request.RequesterName = requester.Name
	request.RequesterRole = requester.Role
	request.Status = models.StatusPending

	if err := s.repo.Create(ctx, request); err != nil {
		log.WithError(err).Error("Failed to create request in repository")
		return fmt.Errorf("service: could not create request: %w", err)
	}
	if s.metrics != nil {
		s.metrics.RequestsCreated.Inc()
	}

	log.WithField("request_id", request.ID).Info("Blood request created successfully")

	if request.Urgency == models.UrgencyHigh || request.Urgency == models.UrgencyCritical {
		s.publish(ctx, log, webhook.WebhookEvent{
			Type:      webhook.EventRequestCreated,
			Request:   request,
			Timestamp: time.Now().UTC(),
		})
	}
	return nil
}

// GetRequest получает заявку по ID, сначала из кеша
func (s *requestService) GetRequest(ctx context.Context, id uuid.UUID) (*models.BloodRequest, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "request",
		"method":     "GetRequest",
		"request_id": id,
	})

	cached, err := s.repo.GetRequestFromCache(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to read request from cache")
	}
	if cached != nil {
		log.Debug("Request served from cache")
		return cached, nil
	}

	request, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Error("Failed to get request in repository")
		return nil, fmt.Errorf("service: could not get request: %w", err)
	}

	if err := s.repo.SetRequestCache(ctx, request); err != nil {
		log.WithError(err).Warn("Failed to cache request")
	}
	return request, nil
}

// ListRequests возвращает список заявок с пагинацией
func (s *requestService) ListRequests(ctx context.Context, page, pageSize int) ([]*models.BloodRequest, error) {
	if page < 1 {
		page = 1
	}

	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	log := s.logger.WithFields(logrus.Fields{
		"service":   "request",
		"method":    "ListRequests",
		"page":      page,
		"page_size": pageSize,
	})

	requests, err := s.repo.ListRequests(ctx, page, pageSize)
	if err != nil {
		log.WithError(err).Error("Failed to list requests from repository")
		return nil, fmt.Errorf("service: could not list requests: %w", err)
	}

	log.WithField("count", len(requests)).Info("Requests listed successfully")
	return requests, nil
}

func (s *requestService) ListMyRequests(ctx context.Context, actor models.Actor) ([]*models.BloodRequest, error) {
	requests, err := s.repo.ListByRequester(ctx, actor.UserID)
	if err != nil {
		s.logger.WithFields(logrus.Fields{
			"service": "request",
			"method":  "ListMyRequests",
			"user_id": actor.UserID,
		}).WithError(err).Error("Failed to list requester requests")
		return nil, fmt.Errorf("service: could not list requests of user: %w", err)
	}
	return requests, nil
}

// UpdateStatus меняет статус заявки. Менять статус может владелец заявки или администратор.
func (s *requestService) UpdateStatus(ctx context.Context, actor models.Actor, id uuid.UUID, status models.RequestStatus) (*models.BloodRequest, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "request",
		"method":     "UpdateStatus",
		"request_id": id,
		"status":     status,
	})
	log.Info("Attempting to update request status")

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Attempted to update a non-existent request")
		return nil, fmt.Errorf("service: request with id %s not found for update: %w", id, err)
	}

	if actor.Role != models.RoleAdmin && existing.RequesterID != actor.UserID {
		log.WithField("user_id", actor.UserID).Warn("User is not the owner of the request")
		return nil, fmt.Errorf("service: only the requester or an admin can update request %s: %w", id, models.ErrForbidden)
	}

	if !models.CanTransition(existing.Status, status, s.cfg.StrictStatusTransitions) {
		log.WithField("from", existing.Status).Warn("Status transition rejected")
		return nil, fmt.Errorf("service: %s -> %s: %w", existing.Status, status, models.ErrInvalidStatusTransition)
	}

	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		log.WithError(err).Error("Failed to update request status in repository")
		return nil, fmt.Errorf("service: could not update request status: %w", err)
	}
	if err := s.repo.InvalidateRequestCache(ctx, id); err != nil {
		log.WithError(err).Warn("Failed to invalidate request cache")
	}
	if s.metrics != nil {
		s.metrics.StatusUpdates.WithLabelValues(string(status)).Inc()
	}

	previous := existing.Status
	existing.Status = status
	existing.UpdatedAt = time.Now().UTC()

	s.publish(ctx, log, webhook.WebhookEvent{
		Type:           webhook.EventRequestStatusChanged,
		Request:        existing,
		PreviousStatus: previous,
		Timestamp:      existing.UpdatedAt,
	})

	log.Info("Request status updated successfully")
	return existing, nil
}

// FindNearby возвращает заявки в радиусе от точки и сохраняет факт поиска
func (s *requestService) FindNearby(ctx context.Context, actor models.Actor, query NearbyQuery) ([]*models.BloodRequest, error) {
	radius := s.cfg.DefaultSearchRadiusKm
	if query.RadiusKm != nil {
		radius = *query.RadiusKm
	}

	log := s.logger.WithFields(logrus.Fields{
		"service":   "request",
		"method":    "FindNearby",
		"user_id":   actor.UserID,
		"radius_km": radius,
	})

	snapshot, err := s.repo.ListAll(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to load requests snapshot")
		return nil, fmt.Errorf("service: could not load requests: %w", err)
	}

	if query.PendingOnly {
		snapshot = filterRequests(snapshot, func(r *models.BloodRequest) bool {
			return r.Status == models.StatusPending
		})
	}

	found := geo.FindWithinRadius(snapshot, query.Latitude, query.Longitude, radius)
	log.WithField("count", len(found)).Info("Nearby search completed")

	search := &models.NearbySearch{
		UserID:      actor.UserID,
		Latitude:    query.Latitude,
		Longitude:   query.Longitude,
		RadiusKm:    radius,
		ResultCount: len(found),
	}
	if err := s.repo.SaveNearbySearch(ctx, search); err != nil {
		log.WithError(err).Warn("Failed to save nearby search")
	}
	if s.metrics != nil {
		s.metrics.NearbySearches.Inc()
	}

	return found, nil
}

// GetDashboard подбирает заявки под роль пользователя
func (s *requestService) GetDashboard(ctx context.Context, actor models.Actor) (*Dashboard, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "request",
		"method":  "GetDashboard",
		"user_id": actor.UserID,
	})

	user, err := s.users.GetByID(ctx, actor.UserID)
	if err != nil {
		log.WithError(err).Error("Failed to load user")
		return nil, fmt.Errorf("service: could not load user: %w", err)
	}

	snapshot, err := s.repo.ListAll(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to load requests snapshot")
		return nil, fmt.Errorf("service: could not load requests: %w", err)
	}

	counts, err := s.repo.CountByStatus(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to count requests by status")
		return nil, fmt.Errorf("service: could not count requests: %w", err)
	}

	return &Dashboard{
		User:         user,
		Requests:     RelevantRequests(user, snapshot),
		StatusCounts: counts,
	}, nil
}

// GetStats возвращает статистику по заявкам и количество пользователей, искавших заявки в окне
func (s *requestService) GetStats(ctx context.Context) (*Stats, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "request",
		"method":  "GetStats",
	})

	counts, err := s.repo.CountByStatus(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to count requests by status")
		return nil, fmt.Errorf("service: could not count requests: %w", err)
	}

	searchers, err := s.repo.GetNearbySearchStats(ctx, s.cfg.StatsTimeWindowMinutes)
	if err != nil {
		log.WithError(err).Error("Failed to get nearby search stats")
		return nil, fmt.Errorf("service: could not get search stats: %w", err)
	}

	return &Stats{
		StatusCounts:    counts,
		ActiveSearchers: searchers,
		WindowMinutes:   s.cfg.StatsTimeWindowMinutes,
	}, nil
}

// publish отправляет событие в очередь вебхуков; ошибка публикации не прерывает операцию
func (s *requestService) publish(ctx context.Context, log *logrus.Entry, event webhook.WebhookEvent) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		log.WithError(err).Error("Failed to publish webhook event")
	}
}

// IsNotFound сообщает, что ошибка означает отсутствие сущности
func IsNotFound(err error) bool {
	return errors.Is(err, models.ErrNotFound)
}
