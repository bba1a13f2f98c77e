package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/shenikar/blood_connect/internal/models"
	"github.com/shenikar/blood_connect/internal/service"
	"github.com/shenikar/blood_connect/pkg/metrics"
	"github.com/sirupsen/logrus"
)

// AnemiaClient ходит во внешний сервис модели: POST /predict и GET /generate_insight
type AnemiaClient struct {
	baseURL    string
	httpClient *http.Client
	logger     *logrus.Logger
	metrics    *metrics.Metrics
}

type predictResponse struct {
	Prediction int `json:"prediction"`
}

type insightResponse struct {
	Insight string `json:"insight"`
}

// NewAnemiaClient создает клиента модели. metrics может быть nil.
func NewAnemiaClient(baseURL string, timeout time.Duration, logger *logrus.Logger, m *metrics.Metrics) service.AnemiaClassifier {
	return &AnemiaClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
		metrics:    m,
	}
}

// Predict отправляет показатели анализа и возвращает класс модели (1 - анемия)
func (c *AnemiaClient) Predict(ctx context.Context, sample models.AnemiaSample) (int, error) {
	body, err := json.Marshal(sample)
	if err != nil {
		return 0, fmt.Errorf("failed to marshal anemia sample: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/predict", bytes.NewReader(body))
	if err != nil {
		return 0, fmt.Errorf("failed to create predict request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	var resp predictResponse
	if err := c.do(req, "anemia_model", &resp); err != nil {
		return 0, err
	}
	if resp.Prediction != 0 && resp.Prediction != 1 {
		return 0, fmt.Errorf("unexpected prediction %d: %w", resp.Prediction, models.ErrUpstream)
	}
	return resp.Prediction, nil
}

// Insight запрашивает текстовую подсказку у сервиса аналитики
func (c *AnemiaClient) Insight(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/generate_insight", nil)
	if err != nil {
		return "", fmt.Errorf("failed to create insight request: %w", err)
	}

	var resp insightResponse
	if err := c.do(req, "insight", &resp); err != nil {
		return "", err
	}
	if resp.Insight == "" {
		return "", fmt.Errorf("empty insight: %w", models.ErrUpstream)
	}
	return resp.Insight, nil
}

func (c *AnemiaClient) do(req *http.Request, name string, out any) error {
	start := time.Now()
	resp, err := c.httpClient.Do(req)
	observe(c.metrics, name, start)
	if err != nil {
		c.logger.WithField("service", name).WithError(err).Warn("External call failed")
		return fmt.Errorf("%s request failed: %v: %w", name, err, models.ErrUpstream)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_, _ = io.Copy(io.Discard, resp.Body)
		c.logger.WithFields(logrus.Fields{
			"service":     name,
			"status_code": resp.StatusCode,
		}).Warn("External service returned an error status")
		return fmt.Errorf("%s returned status %d: %w", name, resp.StatusCode, models.ErrUpstream)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode %s response: %v: %w", name, err, models.ErrUpstream)
	}
	return nil
}

func observe(m *metrics.Metrics, name string, start time.Time) {
	if m != nil {
		m.ExternalCallDuration.WithLabelValues(name).Observe(time.Since(start).Seconds())
	}
}
