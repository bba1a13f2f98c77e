package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/blood_connect/internal/forecast"
	"github.com/shenikar/blood_connect/internal/models"
	"github.com/shenikar/blood_connect/internal/service"
)

const forecastCacheKey = "forecast:latest"

type InventoryRepository struct {
	db          *pgxpool.Pool
	redisClient *redis.Client
}

func NewInventoryRepository(db *pgxpool.Pool, redisClient *redis.Client) service.InventoryRepository {
	return &InventoryRepository{
		db:          db,
		redisClient: redisClient,
	}
}

// ListAll возвращает все складские записи. Строки с NULL в обязательных полях тоже возвращаются:
// отбрасывать их - задача агрегатора.
func (r *InventoryRepository) ListAll(ctx context.Context) ([]models.InventoryRecord, error) {
	query := `
		SELECT
			id,
			COALESCE(date, ''),
			hospital_name,
			city,
			blood_type,
			units_available,
			units_used,
			expired_units,
			accidents_reported,
			donations_received,
			local_event,
			contact_person,
			contact_phone
		FROM blood_inventory
		ORDER BY date ASC NULLS LAST, id ASC;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list inventory records: %w", err)
	}
	defer rows.Close()

	records := make([]models.InventoryRecord, 0)
	for rows.Next() {
		var rec models.InventoryRecord
		err := rows.Scan(
			&rec.ID,
			&rec.Date,
			&rec.HospitalName,
			&rec.City,
			&rec.BloodType,
			&rec.UnitsAvailable,
			&rec.UnitsUsed,
			&rec.ExpiredUnits,
			&rec.AccidentsReported,
			&rec.DonationsReceived,
			&rec.LocalEvent,
			&rec.ContactPerson,
			&rec.ContactPhone,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan inventory row: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error inventory iteration: %w", err)
	}
	return records, nil
}

// InsertBatch вставляет записи в одной транзакции и возвращает количество вставленных строк
func (r *InventoryRepository) InsertBatch(ctx context.Context, records []models.InventoryRecord) (int, error) {
	if len(records) == 0 {
		return 0, nil
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to begin inventory transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO blood_inventory (
			date, hospital_name, city, blood_type, units_available, units_used, expired_units,
			accidents_reported, donations_received, local_event, contact_person, contact_phone
		)
		VALUES (NULLIF($1, ''), $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	batch := &pgx.Batch{}
	for _, rec := range records {
		batch.Queue(query,
			rec.Date,
			rec.HospitalName,
			rec.City,
			rec.BloodType,
			rec.UnitsAvailable,
			rec.UnitsUsed,
			rec.ExpiredUnits,
			rec.AccidentsReported,
			rec.DonationsReceived,
			rec.LocalEvent,
			rec.ContactPerson,
			rec.ContactPhone,
		)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return 0, fmt.Errorf("failed to insert inventory batch: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("failed to commit inventory batch: %w", err)
	}
	return len(records), nil
}

// GetForecastFromCache возвращает nil, nil при промахе кеша
func (r *InventoryRepository) GetForecastFromCache(ctx context.Context) (*forecast.Result, error) {
	val, err := r.redisClient.Get(ctx, forecastCacheKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get forecast from cache: %w", err)
	}

	result := &forecast.Result{}
	if err := json.Unmarshal(val, result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal forecast from cache: %w", err)
	}
	return result, nil
}

func (r *InventoryRepository) SetForecastCache(ctx context.Context, result *forecast.Result, ttl time.Duration) error {
	val, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to marshal forecast for cache: %w", err)
	}
	if err := r.redisClient.Set(ctx, forecastCacheKey, val, ttl).Err(); err != nil {
		return fmt.Errorf("failed to set forecast in cache: %w", err)
	}
	return nil
}

func (r *InventoryRepository) InvalidateForecastCache(ctx context.Context) error {
	if err := r.redisClient.Del(ctx, forecastCacheKey).Err(); err != nil {
		return fmt.Errorf("failed to invalidate forecast cache: %w", err)
	}
	return nil
}
