// Package models file: models/stats.go
package models

// Stats is the read-only aggregate computed server-side. The client
// only ever displays the latest fetched snapshot.
type Stats struct {
	TotalEvents       int `json:"total_events"`
	TotalParticipants int `json:"total_participants"`
	TotalUsers        int `json:"total_users"`
	TotalVideos       int `json:"total_videos"`
	TotalGalleryItems int `json:"total_gallery_items"`
}
