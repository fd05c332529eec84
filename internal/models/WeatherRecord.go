package models

import (
	"slices"

	"github.com/google/uuid"
)

// Statistics is the summary computed once per query.
type Statistics struct {
	Average float64 `json:"average" example:"-7.45"`
	Median  float64 `json:"median" example:"-7.45"`
	Min     float64 `json:"min" example:"-8.5"`
	Max     float64 `json:"max" example:"-6.4"`
}

// WeatherRecord is what the store keeps for every successful query. It is never mutated.
type WeatherRecord struct {
	ID          uuid.UUID `json:"id" swaggertype:"string" example:"3f0c8a52-6a43-4a7e-9d1b-0f6c2f1f4b9e"`
	GeoPlace    string    `json:"geo_place" example:"Russia, Saint-Petersburg"`
	DateStart   Date      `json:"date_start" swaggertype:"string" example:"2025-02-19"`
	DateEnd     Date      `json:"date_end" swaggertype:"string" example:"2025-02-20"`
	TempValues  []float64 `json:"temp_value"`
	MedianValue float64   `json:"median_value" example:"-7.45"`
	AvgValue    float64   `json:"avg_value" example:"-7.45"`
	MinValue    float64   `json:"min_value" example:"-8.5"`
	MaxValue    float64   `json:"max_value" example:"-6.4"`
}

func NewWeatherRecord(id uuid.UUID, q WeatherQuery, temps []float64, s Statistics) WeatherRecord {
	return WeatherRecord{
		ID:          id,
		GeoPlace:    q.GeoPlace,
		DateStart:   q.DateStart,
		DateEnd:     q.DateEnd,
		TempValues:  slices.Clone(temps),
		MedianValue: s.Median,
		AvgValue:    s.Average,
		MinValue:    s.Min,
		MaxValue:    s.Max,
	}
}

// Clone returns a copy that shares no memory with r.
func (r WeatherRecord) Clone() WeatherRecord {
	r.TempValues = slices.Clone(r.TempValues)
	return r
}

func (r WeatherRecord) Statistics() Statistics {
	return Statistics{
		Average: r.AvgValue,
		Median:  r.MedianValue,
		Min:     r.MinValue,
		Max:     r.MaxValue,
	}
}
