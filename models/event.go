// Package models file: models/event.go
package models

// Event represents a community event. Details carries rich text
// produced by the admin editor; the client renders it as-is.
type Event struct {
	ID       int    `json:"id"`
	Title    string `json:"title"`
	Theme    string `json:"theme"`
	Details  string `json:"details"`
	DateTime string `json:"date_time"`
	Location string `json:"location"`
	ImageURL string `json:"image_url"`
}
