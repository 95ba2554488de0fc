package response

import (
	"lensfolio/internal/domain/gallery"

	"github.com/google/uuid"
)

type PhotoResponse struct {
	ID           uuid.UUID `json:"id"`
	Filename     string    `json:"filename"`
	URL          string    `json:"url"`
	ThumbnailURL string    `json:"thumbnailUrl"`
	Album        string    `json:"album"`
	Width        int       `json:"width"`
	Height       int       `json:"height"`
	AspectRatio  float64   `json:"aspectRatio"`
	GridWidth    int       `json:"gridWidth"`
	GridHeight   int       `json:"gridHeight"`
	Position     int       `json:"position"`
}

func FromPhoto(p *gallery.Photo) *PhotoResponse {
	return &PhotoResponse{
		ID:           p.ID(),
		Filename:     p.Filename(),
		URL:          "/uploads/" + p.Filename(),
		ThumbnailURL: "/uploads/thumbnails/" + p.Filename(),
		Album:        p.Album(),
		Width:        p.Width(),
		Height:       p.Height(),
		AspectRatio:  p.AspectRatio(),
		GridWidth:    p.GridWidth(),
		GridHeight:   p.GridHeight(),
		Position:     p.Position(),
	}
}

func FromPhotos(photos []*gallery.Photo) []*PhotoResponse {
	out := make([]*PhotoResponse, 0, len(photos))
	for _, p := range photos {
		out = append(out, FromPhoto(p))
	}
	return out
}
