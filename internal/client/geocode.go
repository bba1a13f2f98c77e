package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/shenikar/blood_connect/internal/service"
	"github.com/shenikar/blood_connect/pkg/metrics"
	"github.com/sirupsen/logrus"
)

const userAgent = "blood-connect/1.0"

// NominatimGeocoder определяет название населенного пункта через обратное геокодирование Nominatim
type NominatimGeocoder struct {
	baseURL    string
	httpClient *http.Client
	logger     *logrus.Logger
	metrics    *metrics.Metrics
}

type nominatimResponse struct {
	Address struct {
		City    string `json:"city"`
		Town    string `json:"town"`
		Village string `json:"village"`
		County  string `json:"county"`
	} `json:"address"`
}

func NewNominatimGeocoder(baseURL string, timeout time.Duration, logger *logrus.Logger, m *metrics.Metrics) service.Geocoder {
	return &NominatimGeocoder{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
		metrics:    m,
	}
}

// LocationName возвращает city, town, village или county - первое непустое.
// При любой ошибке возвращается service.DefaultLocationName.
func (g *NominatimGeocoder) LocationName(ctx context.Context, lat, lng float64) string {
	log := g.logger.WithFields(logrus.Fields{
		"service": "geocoder",
		"lat":     lat,
		"lng":     lng,
	})

	name, err := g.reverse(ctx, lat, lng)
	if err != nil {
		log.WithError(err).Warn("Reverse geocoding failed")
		return service.DefaultLocationName
	}
	if name == "" {
		log.Debug("Reverse geocoding returned no settlement name")
		return service.DefaultLocationName
	}
	return name
}

func (g *NominatimGeocoder) reverse(ctx context.Context, lat, lng float64) (string, error) {
	params := url.Values{}
	params.Set("format", "json")
	params.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	params.Set("lon", strconv.FormatFloat(lng, 'f', -1, 64))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+"/reverse?"+params.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("failed to create reverse request: %w", err)
	}
	// Nominatim требует идентифицирующий User-Agent
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := g.httpClient.Do(req)
	observe(g.metrics, "geocoder", start)
	if err != nil {
		return "", fmt.Errorf("reverse request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("reverse returned status %d", resp.StatusCode)
	}

	var body nominatimResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("failed to decode reverse response: %w", err)
	}

	for _, candidate := range []string{body.Address.City, body.Address.Town, body.Address.Village, body.Address.County} {
		if candidate != "" {
			return candidate, nil
		}
	}
	return "", nil
}
