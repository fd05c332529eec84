package models

type AppInfo struct {
	Version string `json:"version" example:"0.1.0"`
	Service string `json:"service" example:"weather"`
	Author  string `json:"author" example:"KhudyakovGleb"`
}
