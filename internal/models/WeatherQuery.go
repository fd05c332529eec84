package models

const DefaultGeoPlace = "Russia, Saint-Petersburg"

// WeatherQuery is a validated request for statistics over an inclusive date range.
// DateStart may come after DateEnd; the provider decides what that means.
type WeatherQuery struct {
	GeoPlace  string `json:"geo_place"`
	DateStart Date   `json:"date_start"`
	DateEnd   Date   `json:"date_end"`
}
