package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"

	"weather-stats/internal/models"
	"weather-stats/internal/repositories"
	"weather-stats/internal/services/stats"
	"weather-stats/internal/services/weather"
	"weather-stats/internal/storage"
)

const (
	rootMessage    = "Hi! This app will help you get weather information."
	deletedMessage = "Deleted successfully"

	idNotFoundDetail   = "ID not found"
	storageEmptyDetail = "Storage is empty"
)

// MessageResponse is a plain text answer
type MessageResponse struct {
	Message string `json:"message" example:"Deleted successfully"`
}

// StatsData wraps the statistics of one query
type StatsData struct {
	WeatherStats models.Statistics `json:"weather_stats"`
}

// StatsResponse is the answer to a statistics request
type StatsResponse struct {
	Data    StatsData `json:"data"`
	Service string    `json:"service" example:"weather"`
}

// handleRoot godoc
// @Summary Greeting
// @Tags Info
// @Produce json
// @Success 200 {object} MessageResponse
// @Router / [get]
func (r *routes) handleRoot(c *fiber.Ctx) error {
	return c.JSON(MessageResponse{Message: rootMessage})
}

// handleInfo godoc
// @Summary Application metadata
// @Tags Info
// @Produce json
// @Success 200 {object} models.AppInfo
// @Router /info [get]
func (r *routes) handleInfo(c *fiber.Ctx) error {
	return c.JSON(r.info)
}

// handleAllResponses godoc
// @Summary List stored records
// @Description Returns every stored record keyed by its id
// @Tags Records
// @Produce json
// @Success 200 {object} map[string]models.WeatherRecord
// @Failure 404 {object} httpserver.ErrorResponse "Storage is empty"
// @Router /info/allresponses [get]
func (r *routes) handleAllResponses(c *fiber.Ctx) error {
	records, err := r.service.Records()
	if err != nil {
		return r.toHTTPError(err, storageEmptyDetail)
	}

	result := make(map[string]models.WeatherRecord, len(records))
	for _, record := range records {
		result[record.ID.String()] = record
	}

	return c.JSON(result)
}

// handleResponse godoc
// @Summary Get a stored record
// @Tags Records
// @Produce json
// @Param id path string true "Record id" format(uuid)
// @Success 200 {object} models.WeatherRecord
// @Failure 400 {object} httpserver.ErrorResponse "Malformed id"
// @Failure 404 {object} httpserver.ErrorResponse "ID not found"
// @Router /info/responce/{id} [get]
func (r *routes) handleResponse(c *fiber.Ctx) error {
	id, err := weather.ParseID(c.Params("id"))
	if err != nil {
		return r.toHTTPError(err, idNotFoundDetail)
	}

	record, err := r.service.Record(id)
	if err != nil {
		return r.toHTTPError(err, idNotFoundDetail)
	}

	return c.JSON(record)
}

// handleWeather godoc
// @Summary Compute weather statistics
// @Description Fetches daily temperatures for a place and date range, stores a record and returns its statistics
// @Tags Weather
// @Produce json
// @Param geo_place query string false "Free-text location" default(Russia, Saint-Petersburg)
// @Param date_start query string false "First day, YYYY-MM-DD (default: yesterday)" example(2025-02-19)
// @Param date_end query string false "Last day, YYYY-MM-DD (default: today)" example(2025-02-20)
// @Success 200 {object} StatsResponse
// @Failure 400 {object} httpserver.ErrorResponse "Malformed date"
// @Failure 500 {object} httpserver.ErrorResponse "No observations to summarize"
// @Failure 502 {object} httpserver.ErrorResponse "Weather provider failed"
// @Router /info/weather [get]
// @Example {curl} Example usage:
//
//	curl -X GET "http://localhost:8080/info/weather?geo_place=Oslo&date_start=2025-02-19&date_end=2025-02-20"
func (r *routes) handleWeather(c *fiber.Ctx) error {
	var params weather.QueryParams
	if err := c.QueryParser(&params); err != nil {
		r.l.Warning("cannot parse query string", map[string]any{
			"query": string(c.Request().URI().QueryString()),
			"err":   err.Error(),
		})
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	q, err := r.service.ParseQuery(params)
	if err != nil {
		return r.toHTTPError(err, "")
	}

	record, err := r.service.CollectStatistics(c.UserContext(), q)
	if err != nil {
		return r.toHTTPError(err, "")
	}

	return c.JSON(StatsResponse{
		Data:    StatsData{WeatherStats: record.Statistics()},
		Service: r.info.Service,
	})
}

// handleDelete godoc
// @Summary Delete a stored record
// @Tags Records
// @Produce json
// @Param id path string true "Record id" format(uuid)
// @Success 200 {object} MessageResponse
// @Failure 400 {object} httpserver.ErrorResponse "Malformed id"
// @Failure 404 {object} httpserver.ErrorResponse "ID not found"
// @Router /info/responcedel/{id} [delete]
func (r *routes) handleDelete(c *fiber.Ctx) error {
	id, err := weather.ParseID(c.Params("id"))
	if err != nil {
		return r.toHTTPError(err, idNotFoundDetail)
	}

	if err := r.service.DeleteRecord(id); err != nil {
		return r.toHTTPError(err, idNotFoundDetail)
	}

	return c.JSON(MessageResponse{Message: deletedMessage})
}

// toHTTPError maps service errors to statuses; the server's error handler writes the body.
func (r *routes) toHTTPError(err error, notFoundDetail string) error {
	switch {
	case errors.Is(err, weather.ErrValidation):
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	case errors.Is(err, storage.ErrNotFound):
		return fiber.NewError(fiber.StatusNotFound, notFoundDetail)
	case errors.Is(err, repositories.ErrProvider):
		return fiber.NewError(fiber.StatusBadGateway, repositories.ErrProvider.Error())
	case errors.Is(err, stats.ErrEmptyDataset):
		return fiber.NewError(fiber.StatusInternalServerError, stats.ErrEmptyDataset.Error())
	}

	return err
}
