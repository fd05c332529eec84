package models

// Observation is one day returned by the weather provider.
type Observation struct {
	Date string  `json:"datetime" example:"2025-02-19"`
	Temp float64 `json:"temp" example:"-6.4"`
}
