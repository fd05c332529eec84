package repositories

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"weather-stats/internal/models"
)

// ErrProvider matches every *ProviderError via errors.Is.
var ErrProvider = errors.New("weather provider request failed")

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type WeatherRepository interface {
	Name() string
	// FetchObservations returns the provider's daily observations for place between start and
	// end inclusive, in the provider's order.
	FetchObservations(ctx context.Context, place string, start, end models.Date) ([]models.Observation, error)
}

// ProviderError reports a failed call: no response, a non-2xx status, or an unusable payload.
type ProviderError struct {
	Provider   string
	StatusCode int
	Err        error
}

func (e *ProviderError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: provider %s answered %d: %v", ErrProvider, e.Provider, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s: provider %s: %v", ErrProvider, e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

func (e *ProviderError) Is(target error) bool {
	return target == ErrProvider
}
