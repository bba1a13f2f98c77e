package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/blood_connect/internal/models"
	"github.com/shenikar/blood_connect/internal/service"
)

const requestCacheTTL = 5 * time.Minute

const requestColumns = `
	id,
	requester_id,
	requester_name,
	requester_role,
	blood_type,
	quantity,
	urgency,
	latitude,
	longitude,
	address,
	status,
	description,
	contact_phone,
	created_at,
	updated_at`

type BloodRequestRepository struct {
	db          *pgxpool.Pool
	redisClient *redis.Client
}

func NewBloodRequestRepository(db *pgxpool.Pool, redisClient *redis.Client) service.BloodRequestRepository {
	return &BloodRequestRepository{
		db:          db,
		redisClient: redisClient,
	}
}

// Create создает новую заявку в бд
func (r *BloodRequestRepository) Create(ctx context.Context, request *models.BloodRequest) error {
	query := `
		INSERT INTO blood_requests (
			requester_id, requester_name, requester_role, blood_type, quantity, urgency,
			latitude, longitude, address, status, description, contact_phone
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id, created_at, updated_at;
	`
	err := r.db.QueryRow(ctx, query,
		request.RequesterID,
		request.RequesterName,
		request.RequesterRole,
		request.BloodType,
		request.Quantity,
		request.Urgency,
		request.Latitude,
		request.Longitude,
		request.Address,
		request.Status,
		request.Description,
		request.ContactPhone,
	).Scan(&request.ID, &request.CreatedAt, &request.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create blood request: %w", err)
	}
	return nil
}

// GetByID возвращает заявку по ее UUID
func (r *BloodRequestRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.BloodRequest, error) {
	query := `SELECT ` + requestColumns + ` FROM blood_requests WHERE id = $1;`

	request, err := scanRequest(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("blood request with id %s: %w", id, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get blood request by id: %w", err)
	}
	return request, nil
}

func (r *BloodRequestRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status models.RequestStatus) error {
	query := `
		UPDATE blood_requests SET
			status = $1,
			updated_at = NOW()
		WHERE id = $2;
	`
	cmdTag, err := r.db.Exec(ctx, query, status, id)
	if err != nil {
		return fmt.Errorf("failed to update blood request status: %w", err)
	}

	// RowsAffected() == 0 значит заявки с таким id не существует
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("blood request with id %s for update: %w", id, models.ErrNotFound)
	}
	return nil
}

// ListRequests возвращает список заявок с пагинацией, новые первыми
func (r *BloodRequestRepository) ListRequests(ctx context.Context, page, pageSize int) ([]*models.BloodRequest, error) {
	// рассчитываем смещение
	offset := (page - 1) * pageSize

	query := `SELECT ` + requestColumns + `
		FROM blood_requests
		ORDER BY seq DESC
		LIMIT $1 OFFSET $2;
	`
	return r.queryRequests(ctx, "ListRequests", query, pageSize, offset)
}

// ListAll возвращает снимок всех заявок в порядке создания
func (r *BloodRequestRepository) ListAll(ctx context.Context) ([]*models.BloodRequest, error) {
	query := `SELECT ` + requestColumns + ` FROM blood_requests ORDER BY seq ASC;`
	return r.queryRequests(ctx, "ListAll", query)
}

func (r *BloodRequestRepository) ListByRequester(ctx context.Context, requesterID uuid.UUID) ([]*models.BloodRequest, error) {
	query := `SELECT ` + requestColumns + `
		FROM blood_requests
		WHERE requester_id = $1
		ORDER BY seq DESC;
	`
	return r.queryRequests(ctx, "ListByRequester", query, requesterID)
}

// CountByStatus возвращает количество заявок в каждом статусе
func (r *BloodRequestRepository) CountByStatus(ctx context.Context) ([]models.StatusCount, error) {
	query := `
		SELECT status, COUNT(*)
		FROM blood_requests
		GROUP BY status
		ORDER BY status;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to count blood requests by status: %w", err)
	}
	defer rows.Close()

	counts := make([]models.StatusCount, 0, len(models.AllStatuses))
	for rows.Next() {
		var c models.StatusCount
		if err := rows.Scan(&c.Status, &c.Count); err != nil {
			return nil, fmt.Errorf("failed to scan status count row: %w", err)
		}
		counts = append(counts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error status count iteration: %w", err)
	}
	return counts, nil
}

// SaveNearbySearch сохраняет запись о поиске заявок рядом с точкой
func (r *BloodRequestRepository) SaveNearbySearch(ctx context.Context, search *models.NearbySearch) error {
	query := `
		INSERT INTO nearby_searches (user_id, latitude, longitude, radius_km, result_count)
		VALUES ($1, $2, $3, $4, $5) RETURNING id, searched_at;
	`
	err := r.db.QueryRow(ctx, query,
		search.UserID,
		search.Latitude,
		search.Longitude,
		search.RadiusKm,
		search.ResultCount,
	).Scan(&search.ID, &search.SearchedAt)
	if err != nil {
		return fmt.Errorf("failed to save nearby search: %w", err)
	}
	return nil
}

// GetNearbySearchStats возвращает количество уникальных пользователей, искавших заявки за окно
func (r *BloodRequestRepository) GetNearbySearchStats(ctx context.Context, minutes int) (int, error) {
	query := `
		SELECT COUNT(DISTINCT user_id)
		FROM nearby_searches
		WHERE searched_at >= NOW() - ($1 * INTERVAL '1 minute');
	`
	var count int
	err := r.db.QueryRow(ctx, query, minutes).Scan(&count)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to get nearby search stats: %w", err)
	}
	return count, nil
}

// GetRequestFromCache пытается получить заявку из Redis
func (r *BloodRequestRepository) GetRequestFromCache(ctx context.Context, id uuid.UUID) (*models.BloodRequest, error) {
	val, err := r.redisClient.Get(ctx, requestCacheKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get blood request from cache: %w", err)
	}

	request := &models.BloodRequest{}
	if err := json.Unmarshal(val, request); err != nil {
		return nil, fmt.Errorf("failed to unmarshal blood request from cache: %w", err)
	}
	return request, nil
}

// SetRequestCache сохраняет заявку в Redis
func (r *BloodRequestRepository) SetRequestCache(ctx context.Context, request *models.BloodRequest) error {
	val, err := json.Marshal(request)
	if err != nil {
		return fmt.Errorf("failed to marshal blood request for cache: %w", err)
	}
	if err := r.redisClient.Set(ctx, requestCacheKey(request.ID), val, requestCacheTTL).Err(); err != nil {
		return fmt.Errorf("failed to set blood request in cache: %w", err)
	}
	return nil
}

// InvalidateRequestCache удаляет заявку из Redis кэша
func (r *BloodRequestRepository) InvalidateRequestCache(ctx context.Context, id uuid.UUID) error {
	if err := r.redisClient.Del(ctx, requestCacheKey(id)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate blood request cache: %w", err)
	}
	return nil
}

func (r *BloodRequestRepository) queryRequests(ctx context.Context, op, query string, args ...any) ([]*models.BloodRequest, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query blood requests in %s: %w", op, err)
	}
	defer rows.Close()

	requests := make([]*models.BloodRequest, 0)
	for rows.Next() {
		request, err := scanRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan blood request row in %s: %w", op, err)
		}
		requests = append(requests, request)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration in %s: %w", op, err)
	}
	return requests, nil
}

func scanRequest(row pgx.Row) (*models.BloodRequest, error) {
	request := &models.BloodRequest{}
	err := row.Scan(
		&request.ID,
		&request.RequesterID,
		&request.RequesterName,
		&request.RequesterRole,
		&request.BloodType,
		&request.Quantity,
		&request.Urgency,
		&request.Latitude,
		&request.Longitude,
		&request.Address,
		&request.Status,
		&request.Description,
		&request.ContactPhone,
		&request.CreatedAt,
		&request.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return request, nil
}

func requestCacheKey(id uuid.UUID) string {
	return fmt.Sprintf("blood_request:%s", id.String())
}
