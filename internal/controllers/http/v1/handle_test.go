package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	v1 "weather-stats/internal/controllers/http/v1"
	"weather-stats/internal/models"
	"weather-stats/internal/repositories"
	"weather-stats/internal/services/weather"
	"weather-stats/internal/storage"
	"weather-stats/pkg/httpserver"
	"weather-stats/pkg/logger"
)

const scenarioDays = `{"days": [{"datetime": "2025-02-19", "temp": -6.4}, {"datetime": "2025-02-20", "temp": -8.5}]}`

type testApp struct {
	app   *fiber.App
	hits  *atomic.Int32
	place *atomic.Value
}

func newTestApp(t *testing.T, providerBody string, providerStatus int, opts ...weather.Option) *testApp {
	t.Helper()

	var hits atomic.Int32
	var place atomic.Value
	provider := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		place.Store(r.URL.Path)
		w.WriteHeader(providerStatus)
		w.Write([]byte(providerBody))
	}))
	t.Cleanup(provider.Close)

	l := logger.NewZapLogger("test-app", io.Discard)
	repo := repositories.NewVisualCrossingRepository(repositories.VisualCrossingOptions{
		BaseURL: provider.URL,
		APIKey:  "test-key",
		Timeout: time.Second,
	}, nil, l)
	service := weather.NewWeatherService(repo, storage.NewMemoryStore(), l, opts...)

	app := httpserver.InitFiberServer(httpserver.Options{AppName: "weather-stats"}, l)
	v1.NewRouter(app, service, models.AppInfo{Version: "0.1.0", Service: "weather", Author: "KhudyakovGleb"}, l)

	return &testApp{app: app, hits: &hits, place: &place}
}

func (a *testApp) do(t *testing.T, method, target string) (int, string) {
	t.Helper()

	resp, err := a.app.Test(httptest.NewRequest(method, target, nil), 5000)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return resp.StatusCode, string(body)
}

func TestRouter_RootAndInfo(t *testing.T) {
	a := newTestApp(t, scenarioDays, http.StatusOK)

	status, body := a.do(t, http.MethodGet, "/")
	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"message": "Hi! This app will help you get weather information."}`, body)

	status, body = a.do(t, http.MethodGet, "/info")
	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"version": "0.1.0", "service": "weather", "author": "KhudyakovGleb"}`, body)
}

func TestRouter_WeatherScenario(t *testing.T) {
	a := newTestApp(t, scenarioDays, http.StatusOK)

	status, body := a.do(t, http.MethodGet, "/info/weather?geo_place=Russia,%20Saint-Petersburg&date_start=2025-02-19&date_end=2025-02-20")
	require.Equal(t, http.StatusOK, status, body)
	assert.JSONEq(t, `{
		"data": {"weather_stats": {"average": -7.45, "median": -7.45, "min": -8.5, "max": -6.4}},
		"service": "weather"
	}`, body)
	assert.Equal(t, "/Russia, Saint-Petersburg/2025-02-19/2025-02-20", a.place.Load())

	// the record is now listed, fetchable and deletable
	status, body = a.do(t, http.MethodGet, "/info/allresponses")
	require.Equal(t, http.StatusOK, status)

	var all map[string]models.WeatherRecord
	require.NoError(t, json.Unmarshal([]byte(body), &all))
	require.Len(t, all, 1)

	var id string
	for key, record := range all {
		id = key
		assert.Equal(t, key, record.ID.String())
		assert.Equal(t, "Russia, Saint-Petersburg", record.GeoPlace)
		assert.Equal(t, []float64{-6.4, -8.5}, record.TempValues)
		assert.Equal(t, -8.5, record.MinValue)
		assert.Equal(t, -6.4, record.MaxValue)
	}

	status, body = a.do(t, http.MethodGet, "/info/responce/"+id)
	require.Equal(t, http.StatusOK, status)
	var record models.WeatherRecord
	require.NoError(t, json.Unmarshal([]byte(body), &record))
	assert.Equal(t, all[id], record)

	status, body = a.do(t, http.MethodDelete, "/info/responcedel/"+id)
	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"message": "Deleted successfully"}`, body)

	status, body = a.do(t, http.MethodGet, "/info/responce/"+id)
	assert.Equal(t, http.StatusNotFound, status)
	assert.JSONEq(t, `{"detail": "ID not found"}`, body)

	status, body = a.do(t, http.MethodDelete, "/info/responcedel/"+id)
	assert.Equal(t, http.StatusNotFound, status)
	assert.JSONEq(t, `{"detail": "ID not found"}`, body)

	status, body = a.do(t, http.MethodGet, "/info/allresponses")
	assert.Equal(t, http.StatusNotFound, status)
	assert.JSONEq(t, `{"detail": "Storage is empty"}`, body)
}

func TestRouter_WeatherDefaults(t *testing.T) {
	a := newTestApp(t, scenarioDays, http.StatusOK)

	status, _ := a.do(t, http.MethodGet, "/info/weather")
	require.Equal(t, http.StatusOK, status)

	path, _ := a.place.Load().(string)
	assert.Contains(t, path, "/Russia, Saint-Petersburg/")
}

func TestRouter_WeatherInvalidDates(t *testing.T) {
	a := newTestApp(t, scenarioDays, http.StatusOK)

	for _, query := range []string{"date_start=2025-13-99", "date_start=02-19-2025", "date_end=2025/02/20"} {
		status, body := a.do(t, http.MethodGet, "/info/weather?"+query)
		assert.Equal(t, http.StatusBadRequest, status, query)
		assert.Contains(t, body, "YYYY-MM-DD", query)
	}

	assert.Zero(t, a.hits.Load())
}

func TestRouter_WeatherProviderFailure(t *testing.T) {
	a := newTestApp(t, "Bad API Request", http.StatusInternalServerError)

	status, body := a.do(t, http.MethodGet, "/info/weather?date_start=2025-02-19&date_end=2025-02-20")
	assert.Equal(t, http.StatusBadGateway, status)
	assert.JSONEq(t, `{"detail": "weather provider request failed"}`, body)

	status, _ = a.do(t, http.MethodGet, "/info/allresponses")
	assert.Equal(t, http.StatusNotFound, status)
}

func TestRouter_WeatherEmptyDataset(t *testing.T) {
	a := newTestApp(t, `{"days": []}`, http.StatusOK)

	status, body := a.do(t, http.MethodGet, "/info/weather?date_start=2025-02-19&date_end=2025-02-20")
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.JSONEq(t, `{"detail": "no temperature observations to summarize"}`, body)
}

func TestRouter_MalformedID(t *testing.T) {
	a := newTestApp(t, scenarioDays, http.StatusOK)

	status, _ := a.do(t, http.MethodGet, "/info/responce/not-a-uuid")
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = a.do(t, http.MethodDelete, "/info/responcedel/not-a-uuid")
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestRouter_EmptyListAllowed(t *testing.T) {
	a := newTestApp(t, scenarioDays, http.StatusOK, weather.WithEmptyListNotFound(false))

	status, body := a.do(t, http.MethodGet, "/info/allresponses")
	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{}`, body)
}

func TestRouter_SwaggerDocument(t *testing.T) {
	a := newTestApp(t, scenarioDays, http.StatusOK)

	status, body := a.do(t, http.MethodGet, "/swagger/doc.json")
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, "/info/weather")
	assert.Contains(t, body, "/info/responcedel/{id}")
}

func TestRouter_StoredRecordSurvivesLaterRequests(t *testing.T) {
	a := newTestApp(t, scenarioDays, http.StatusOK)

	status, _ := a.do(t, http.MethodGet, "/info/weather?geo_place=AAAAAAAAAAAA&date_start=2025-02-19&date_end=2025-02-20")
	require.Equal(t, http.StatusOK, status)

	_, body := a.do(t, http.MethodGet, "/info/allresponses")
	var first map[string]models.WeatherRecord
	require.NoError(t, json.Unmarshal([]byte(body), &first))
	require.Len(t, first, 1)

	var firstID string
	for id := range first {
		firstID = id
	}

	for i := 0; i < 20; i++ {
		status, _ := a.do(t, http.MethodGet, "/info/weather?geo_place=ZZZZZZZZZZZZ&date_start=2025-02-19&date_end=2025-02-20")
		require.Equal(t, http.StatusOK, status)
	}

	status, body = a.do(t, http.MethodGet, "/info/responce/"+firstID)
	require.Equal(t, http.StatusOK, status)

	var record models.WeatherRecord
	require.NoError(t, json.Unmarshal([]byte(body), &record))
	assert.Equal(t, "AAAAAAAAAAAA", record.GeoPlace)
	assert.Equal(t, first[firstID], record)

	_, body = a.do(t, http.MethodGet, "/info/allresponses")
	var all map[string]models.WeatherRecord
	require.NoError(t, json.Unmarshal([]byte(body), &all))

	places := make(map[string]int)
	for _, r := range all {
		places[r.GeoPlace]++
	}
	assert.Equal(t, map[string]int{"AAAAAAAAAAAA": 1, "ZZZZZZZZZZZZ": 20}, places)
}
