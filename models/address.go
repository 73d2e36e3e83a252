package models

type Address struct {
	ID        uint     `json:"id"`
	Title     string   `json:"title"`
	FullText  string   `json:"full_text,omitempty"`
	City      string   `json:"city,omitempty"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
	IsDefault bool     `json:"is_default,omitempty"`
}
