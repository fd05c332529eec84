package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sony/gobreaker"

	"weather-stats/internal/models"
	"weather-stats/pkg/logger"
)

const (
	VisualCrossingName = "visualcrossing"

	defaultProviderTimeout = 10 * time.Second
)

// VisualCrossingOptions configures the timeline client. A zero FailureThreshold keeps the
// circuit closed forever.
type VisualCrossingOptions struct {
	BaseURL          string
	APIKey           string
	Timeout          time.Duration
	FailureThreshold uint32
	OpenInterval     time.Duration
}

type VisualCrossingRepository struct {
	baseURL    string
	apiKey     string
	timeout    time.Duration
	httpClient HTTPClient
	circuit    *gobreaker.CircuitBreaker
	l          *logger.Logger
}

// NewVisualCrossingRepository builds the client; a nil httpClient gets an *http.Client bounded by opts.Timeout.
func NewVisualCrossingRepository(opts VisualCrossingOptions, httpClient HTTPClient, l *logger.Logger) *VisualCrossingRepository {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = defaultProviderTimeout
	}

	if httpClient == nil {
		httpClient = &http.Client{Timeout: timeout}
	}

	threshold := opts.FailureThreshold
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        VisualCrossingName,
		MaxRequests: 1,
		Timeout:     opts.OpenInterval,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return threshold > 0 && counts.ConsecutiveFailures >= threshold
		},
		IsSuccessful: countsAsHealthy,
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			l.Warning("provider circuit state changed", map[string]any{
				"provider": name,
				"from":     from.String(),
				"to":       to.String(),
			})
		},
	})

	return &VisualCrossingRepository{
		baseURL:    strings.TrimRight(opts.BaseURL, "/"),
		apiKey:     opts.APIKey,
		timeout:    timeout,
		httpClient: httpClient,
		circuit:    cb,
		l:          l,
	}
}

func (v *VisualCrossingRepository) Name() string {
	return VisualCrossingName
}

type visualCrossingResponse struct {
	Days []struct {
		Datetime string   `json:"datetime"`
		Temp     *float64 `json:"temp"`
	} `json:"days"`
}

func (v *VisualCrossingRepository) FetchObservations(
	ctx context.Context,
	place string,
	start models.Date,
	end models.Date,
) ([]models.Observation, error) {
	params := map[string]any{
		"provider":   v.Name(),
		"geo_place":  place,
		"date_start": start.String(),
		"date_end":   end.String(),
	}

	v.l.Info("making visualcrossing API request", params)

	result, err := v.circuit.Execute(func() (interface{}, error) {
		return v.fetch(ctx, place, start, end)
	})
	if err != nil {
		var pe *ProviderError
		if !errors.As(err, &pe) {
			// gobreaker refused the call without reaching the provider
			pe = &ProviderError{Provider: v.Name(), Err: err}
		}
		v.l.Error(pe, params)
		return nil, pe
	}

	observations := result.([]models.Observation)

	v.l.Info("parsed visualcrossing API response", map[string]any{
		"provider": v.Name(),
		"days":     len(observations),
	})

	return observations, nil
}

func (v *VisualCrossingRepository) timelineURL(place string, start, end models.Date) string {
	values := url.Values{}
	values.Set("key", v.apiKey)
	values.Set("include", "days")
	values.Set("elements", "temp,datetime")
	values.Set("unitGroup", "metric")

	return fmt.Sprintf("%s/%s/%s/%s?%s", v.baseURL, url.PathEscape(place), start, end, values.Encode())
}

func (v *VisualCrossingRepository) fetch(ctx context.Context, place string, start, end models.Date) ([]models.Observation, error) {
	ctx, cancel := context.WithTimeout(ctx, v.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, v.timelineURL(place, start, end), nil)
	if err != nil {
		return nil, v.fail(0, errors.Wrap(err, "failed to create request"))
	}

	resp, err := v.httpClient.Do(req)
	if err != nil {
		return nil, v.fail(0, errors.Wrap(err, "failed to do request"))
	}
	defer resp.Body.Close()

	v.l.Info("received visualcrossing API response", map[string]any{
		"status":     resp.StatusCode,
		"statusText": resp.Status,
	})

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, v.fail(resp.StatusCode, errors.Wrap(err, "failed to read response body"))
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, v.fail(resp.StatusCode, errors.Errorf("HTTP error: %s: %s", resp.Status, strings.TrimSpace(string(body))))
	}

	var response visualCrossingResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, v.fail(resp.StatusCode, errors.Wrap(err, "failed to parse JSON response"))
	}

	if response.Days == nil {
		return nil, v.fail(resp.StatusCode, errors.New("response has no days field"))
	}

	observations := make([]models.Observation, 0, len(response.Days))
	for i, day := range response.Days {
		if day.Temp == nil {
			return nil, v.fail(resp.StatusCode, errors.Errorf("day %d (%s) has no temp", i, day.Datetime))
		}
		observations = append(observations, models.Observation{
			Date: day.Datetime,
			Temp: *day.Temp,
		})
	}

	return observations, nil
}

// countsAsHealthy keeps caller mistakes out of the breaker's failure count: 4xx answers
// (unknown place, bad range) and cancelled requests say nothing about provider health.
func countsAsHealthy(err error) bool {
	if err == nil || errors.Is(err, context.Canceled) {
		return true
	}

	var pe *ProviderError
	if errors.As(err, &pe) {
		return pe.StatusCode >= http.StatusBadRequest && pe.StatusCode < http.StatusInternalServerError
	}
	return false
}

func (v *VisualCrossingRepository) fail(status int, err error) *ProviderError {
	return &ProviderError{Provider: v.Name(), StatusCode: status, Err: err}
}
