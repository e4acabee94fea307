// Package models file: models/media.go
package models

// ----------------------- gallery model -----------------------

// GalleryImage is a single image in the public gallery.
type GalleryImage struct {
	ID         int    `json:"id"`
	Title      string `json:"title"`
	ImageURL   string `json:"image_url"`
	UploadedAt string `json:"uploaded_at"`
}

// ----------------------- video model -----------------------

// Video is a YouTube video curated by an admin.
type Video struct {
	ID         int    `json:"id"`
	Title      string `json:"title"`
	YouTubeURL string `json:"youtube_url"`
	Views      int    `json:"views"`
	UploadedAt string `json:"uploaded_at"`
}

// MostViewed returns the video with the highest view count. It is a
// pure reduction over the already-fetched list; stored order is never
// touched. ok is false for an empty list.
func MostViewed(videos []Video) (best Video, ok bool) {
	for i, v := range videos {
		if i == 0 || v.Views > best.Views {
			best = v
			ok = true
		}
	}
	return best, ok
}

// ----------------------- system image model -----------------------

// SystemImage is a site asset bound to a named section. The banners
// section holds many images; every other section holds at most one.
type SystemImage struct {
	ID         int    `json:"id"`
	Section    string `json:"section"`
	ImageURL   string `json:"image_url"`
	UploadedAt string `json:"uploaded_at"`
}

// System image sections recognised by the API.
const (
	SectionLogo    = "logo"
	SectionContact = "contact"
	SectionAbout   = "about"
	SectionBanners = "banners"
)
