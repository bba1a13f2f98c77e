package service

import (
	"context"
	"fmt"
	"time"

	"github.com/shenikar/blood_connect/internal/config"
	"github.com/shenikar/blood_connect/internal/forecast"
	"github.com/shenikar/blood_connect/internal/models"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// DefaultLocationName подставляется, когда местоположение пользователя неизвестно
const DefaultLocationName = "your area"

// Уровни риска дефицита
const (
	RiskLevelLow      = "low"
	RiskLevelModerate = "moderate"
	RiskLevelHigh     = "high"
)

// InventoryRepository определяет контракт для работы с бд складских данных и кешем прогноза
type InventoryRepository interface {
	ListAll(ctx context.Context) ([]models.InventoryRecord, error)
	InsertBatch(ctx context.Context, records []models.InventoryRecord) (int, error)

	// GetForecastFromCache возвращает nil, nil при промахе кеша
	GetForecastFromCache(ctx context.Context) (*forecast.Result, error)
	SetForecastCache(ctx context.Context, result *forecast.Result, ttl time.Duration) error
	InvalidateForecastCache(ctx context.Context) error
}

// AnemiaClassifier - внешний сервис модели анемии
type AnemiaClassifier interface {
	// Predict возвращает сырой класс модели: 1 - анемия, 0 - нет
	Predict(ctx context.Context, sample models.AnemiaSample) (int, error)
	Insight(ctx context.Context) (string, error)
}

// Geocoder возвращает название населенного пункта по координатам.
// При любой ошибке возвращается DefaultLocationName.
type Geocoder interface {
	LocationName(ctx context.Context, lat, lng float64) string
}

// Forecast - ответ страницы прогноза
type Forecast struct {
	forecast.Result
	SampleData bool    `json:"sample_data"`
	Location   string  `json:"location"`
	PeakMonth  string  `json:"peak_month"`
	PeakRisk   float64 `json:"peak_risk"`
	RiskLevel  string  `json:"risk_level"`
}

// PredictionService определяет контракт прогнозов и обращения к модели
type PredictionService interface {
	GetForecast(ctx context.Context, actor models.Actor) (*Forecast, error)
	ImportInventory(ctx context.Context, records []models.InventoryRecord) (int, error)
	PredictAnemia(ctx context.Context, sample models.AnemiaSample) (*models.AnemiaPrediction, error)
	GetInsight(ctx context.Context) (string, error)
}

type predictionService struct {
	inventory  InventoryRepository
	users      UserRepository
	aggregator *forecast.Aggregator
	classifier AnemiaClassifier
	geocoder   Geocoder
	logger     *logrus.Logger
	cfg        *config.Config
}

func NewPredictionService(inventory InventoryRepository, users UserRepository, aggregator *forecast.Aggregator, classifier AnemiaClassifier, geocoder Geocoder, logger *logrus.Logger, cfg *config.Config) PredictionService {
	return &predictionService{
		inventory:  inventory,
		users:      users,
		aggregator: aggregator,
		classifier: classifier,
		geocoder:   geocoder,
		logger:     logger,
		cfg:        cfg,
	}
}

// GetForecast строит прогноз дефицита и параллельно определяет название места пользователя
func (s *predictionService) GetForecast(ctx context.Context, actor models.Actor) (*Forecast, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "prediction",
		"method":  "GetForecast",
		"user_id": actor.UserID,
	})

	var (
		result   *forecast.Result
		location = DefaultLocationName
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		result, err = s.loadForecast(gctx, log)
		return err
	})
	g.Go(func() error {
		location = s.locationOf(gctx, log, actor)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := &Forecast{
		Result:     *result,
		SampleData: result.SampleData(),
		Location:   location,
	}
	out.PeakMonth, out.PeakRisk = peak(result.ShortageSeries)
	out.RiskLevel = riskLevel(out.PeakRisk)

	log.WithFields(logrus.Fields{
		"sample_data": out.SampleData,
		"risk_level":  out.RiskLevel,
	}).Info("Forecast built")
	return out, nil
}

func (s *predictionService) loadForecast(ctx context.Context, log *logrus.Entry) (*forecast.Result, error) {
	cached, err := s.inventory.GetForecastFromCache(ctx)
	if err != nil {
		log.WithError(err).Warn("Failed to read forecast from cache")
	}
	if cached != nil {
		return cached, nil
	}

	records, err := s.inventory.ListAll(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to load inventory records")
		return nil, fmt.Errorf("service: could not load inventory records: %w", err)
	}

	result := s.aggregator.Aggregate(records)
	if err := s.inventory.SetForecastCache(ctx, &result, s.cfg.ForecastCacheTTL); err != nil {
		log.WithError(err).Warn("Failed to cache forecast")
	}
	return &result, nil
}

// locationOf никогда не возвращает ошибку: без местоположения используется DefaultLocationName
func (s *predictionService) locationOf(ctx context.Context, log *logrus.Entry, actor models.Actor) string {
	user, err := s.users.GetByID(ctx, actor.UserID)
	if err != nil {
		log.WithError(err).Warn("Failed to load user for location")
		return DefaultLocationName
	}
	if !user.HasLocation() || s.geocoder == nil {
		return DefaultLocationName
	}
	return s.geocoder.LocationName(ctx, *user.Latitude, *user.Longitude)
}

// ImportInventory сохраняет пакет складских записей и сбрасывает кеш прогноза
func (s *predictionService) ImportInventory(ctx context.Context, records []models.InventoryRecord) (int, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "prediction",
		"method":  "ImportInventory",
		"records": len(records),
	})

	inserted, err := s.inventory.InsertBatch(ctx, records)
	if err != nil {
		log.WithError(err).Error("Failed to insert inventory batch")
		return 0, fmt.Errorf("service: could not import inventory: %w", err)
	}
	if err := s.inventory.InvalidateForecastCache(ctx); err != nil {
		log.WithError(err).Warn("Failed to invalidate forecast cache")
	}

	log.WithField("inserted", inserted).Info("Inventory imported")
	return inserted, nil
}

func (s *predictionService) PredictAnemia(ctx context.Context, sample models.AnemiaSample) (*models.AnemiaPrediction, error) {
	class, err := s.classifier.Predict(ctx, sample)
	if err != nil {
		s.logger.WithFields(logrus.Fields{
			"service": "prediction",
			"method":  "PredictAnemia",
		}).WithError(err).Error("Anemia model call failed")
		return nil, fmt.Errorf("service: anemia prediction failed: %w", err)
	}

	if class == 1 {
		return &models.AnemiaPrediction{Positive: true, Label: "anemia detected"}, nil
	}
	return &models.AnemiaPrediction{Positive: false, Label: "no anemia detected"}, nil
}

func (s *predictionService) GetInsight(ctx context.Context) (string, error) {
	insight, err := s.classifier.Insight(ctx)
	if err != nil {
		s.logger.WithFields(logrus.Fields{
			"service": "prediction",
			"method":  "GetInsight",
		}).WithError(err).Error("Insight service call failed")
		return "", fmt.Errorf("service: could not get insight: %w", err)
	}
	return insight, nil
}

// peak возвращает первую точку с максимальным значением
func peak(series []models.ChartPoint) (string, float64) {
	var (
		label string
		value float64
	)
	for i, p := range series {
		if i == 0 || p.Value > value {
			label, value = p.Label, p.Value
		}
	}
	return label, value
}

func riskLevel(value float64) string {
	switch {
	case value >= 60:
		return RiskLevelHigh
	case value >= 30:
		return RiskLevelModerate
	default:
		return RiskLevelLow
	}
}
