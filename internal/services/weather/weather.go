package weather

import (
	"context"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"weather-stats/internal/models"
	"weather-stats/internal/repositories"
	"weather-stats/internal/services/stats"
	"weather-stats/internal/storage"
	"weather-stats/pkg/logger"
)

// ErrValidation marks bad client input: malformed dates or identifiers.
var ErrValidation = errors.New("validation failed")

var isoDatePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// QueryParams is the raw query string of a statistics request. Empty fields take their defaults.
type QueryParams struct {
	GeoPlace  string `query:"geo_place"`
	DateStart string `query:"date_start" validate:"omitempty,isodate"`
	DateEnd   string `query:"date_end" validate:"omitempty,isodate"`
}

// Store is the part of the record store the service needs.
type Store interface {
	Insert(r models.WeatherRecord)
	Get(id uuid.UUID) (models.WeatherRecord, error)
	List() ([]models.WeatherRecord, error)
	Delete(id uuid.UUID) error
}

type Option func(*WeatherService)

// WithClock replaces time.Now when computing default dates.
func WithClock(now func() time.Time) Option {
	return func(s *WeatherService) {
		s.now = now
	}
}

// WithEmptyListNotFound controls whether listing an empty store is an error (the default) or an empty result.
func WithEmptyListNotFound(enabled bool) Option {
	return func(s *WeatherService) {
		s.emptyListNotFound = enabled
	}
}

// WeatherService turns queries into stored statistics records and exposes those records.
type WeatherService struct {
	repo     repositories.WeatherRepository
	store    Store
	validate *validator.Validate
	l        *logger.Logger

	now               func() time.Time
	emptyListNotFound bool
}

func NewWeatherService(repo repositories.WeatherRepository, store Store, l *logger.Logger, opts ...Option) *WeatherService {
	s := &WeatherService{
		repo:              repo,
		store:             store,
		validate:          newValidator(),
		l:                 l,
		now:               time.Now,
		emptyListNotFound: true,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		return fld.Tag.Get("query")
	})
	if err := v.RegisterValidation("isodate", isISODate); err != nil {
		panic(err)
	}
	return v
}

// isISODate accepts YYYY-MM-DD strings that are also real calendar days.
func isISODate(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if !isoDatePattern.MatchString(value) {
		return false
	}
	_, err := models.ParseDate(value)
	return err == nil
}

// ParseQuery validates p and fills in defaults: the default place, yesterday and today.
// No ordering between the two dates is enforced.
func (s *WeatherService) ParseQuery(p QueryParams) (models.WeatherQuery, error) {
	if err := s.validate.Struct(p); err != nil {
		s.l.Warning("invalid weather query", map[string]any{
			"geo_place":  p.GeoPlace,
			"date_start": p.DateStart,
			"date_end":   p.DateEnd,
			"err":        err.Error(),
		})
		return models.WeatherQuery{}, validationError(err)
	}

	today := models.DateOf(s.now())
	q := models.WeatherQuery{
		GeoPlace:  strings.Clone(strings.TrimSpace(p.GeoPlace)),
		DateStart: today.AddDays(-1),
		DateEnd:   today,
	}

	if q.GeoPlace == "" {
		q.GeoPlace = models.DefaultGeoPlace
	}
	// both dates already passed isodate, so parsing cannot fail here
	if p.DateStart != "" {
		q.DateStart, _ = models.ParseDate(p.DateStart)
	}
	if p.DateEnd != "" {
		q.DateEnd, _ = models.ParseDate(p.DateEnd)
	}

	return q, nil
}

func validationError(err error) error {
	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) || len(fieldErrors) == 0 {
		return errors.Wrap(ErrValidation, err.Error())
	}

	msgs := make([]string, 0, len(fieldErrors))
	for _, fe := range fieldErrors {
		msgs = append(msgs, fmt.Sprintf("%s: %q is not a valid YYYY-MM-DD date", fe.Field(), fe.Value()))
	}
	return errors.Wrap(ErrValidation, strings.Join(msgs, "; "))
}

// ParseID parses a record identifier from its canonical text form.
func ParseID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, errors.Wrapf(ErrValidation, "%q is not a valid record id", raw)
	}
	return id, nil
}

// CollectStatistics fetches observations for q, summarizes them and stores a new record.
// Nothing is stored when any step fails.
func (s *WeatherService) CollectStatistics(ctx context.Context, q models.WeatherQuery) (models.WeatherRecord, error) {
	fields := map[string]any{
		"geo_place":  q.GeoPlace,
		"date_start": q.DateStart.String(),
		"date_end":   q.DateEnd.String(),
		"provider":   s.repo.Name(),
	}

	s.l.Info("collecting weather statistics", fields)

	observations, err := s.repo.FetchObservations(ctx, q.GeoPlace, q.DateStart, q.DateEnd)
	if err != nil {
		return models.WeatherRecord{}, errors.Wrap(err, "failed to fetch observations")
	}

	s.l.Debug("fetched observations", map[string]any{"days": len(observations)})

	temps := stats.ExtractTemps(observations)
	summary, err := stats.Summarize(temps)
	if err != nil {
		s.l.Error(err, fields)
		return models.WeatherRecord{}, errors.Wrap(err, "failed to summarize temperatures")
	}

	record := models.NewWeatherRecord(uuid.New(), q, temps, summary)
	s.store.Insert(record)

	s.l.Info("stored weather statistics", map[string]any{
		"id":      record.ID.String(),
		"days":    len(temps),
		"average": summary.Average,
		"median":  summary.Median,
		"min":     summary.Min,
		"max":     summary.Max,
	})

	return record, nil
}

// Records lists every stored record in insertion order.
func (s *WeatherService) Records() ([]models.WeatherRecord, error) {
	records, err := s.store.List()
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) && !s.emptyListNotFound {
			return []models.WeatherRecord{}, nil
		}
		return nil, err
	}

	s.l.Debug("listed weather records", map[string]any{"count": len(records)})

	return records, nil
}

func (s *WeatherService) Record(id uuid.UUID) (models.WeatherRecord, error) {
	record, err := s.store.Get(id)
	if err != nil {
		s.l.Debug("weather record lookup failed", map[string]any{"id": id.String(), "err": err.Error()})
		return models.WeatherRecord{}, err
	}
	return record, nil
}

func (s *WeatherService) DeleteRecord(id uuid.UUID) error {
	if err := s.store.Delete(id); err != nil {
		s.l.Debug("weather record delete failed", map[string]any{"id": id.String(), "err": err.Error()})
		return err
	}

	s.l.Info("deleted weather record", map[string]any{"id": id.String()})

	return nil
}
