package gallery

import (
	"errors"

	"github.com/google/uuid"
)

var (
	ErrInvalidDimensions = errors.New("photo dimensions must be positive")
	ErrInvalidGridSize   = errors.New("grid size must be 1 or 2")
)

const DefaultAlbum = "Portfolio"

// Photo is one gallery entry. Grid width/height describe how many cells the
// photo spans in the masonry layout; position is the gallery ordering.
type Photo struct {
	id          uuid.UUID
	filename    string
	album       string
	width       int
	height      int
	aspectRatio float64
	gridWidth   int
	gridHeight  int
	position    int
}

func NewPhoto(filename, album string, width, height, position int) (*Photo, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	if album == "" {
		album = DefaultAlbum
	}

	return &Photo{
		id:          uuid.New(),
		filename:    filename,
		album:       album,
		width:       width,
		height:      height,
		aspectRatio: float64(width) / float64(height),
		gridWidth:   1,
		gridHeight:  1,
		position:    position,
	}, nil
}

func ReconstructPhoto(
	id uuid.UUID,
	filename, album string,
	width, height int,
	aspectRatio float64,
	gridWidth, gridHeight, position int,
) *Photo {
	return &Photo{
		id:          id,
		filename:    filename,
		album:       album,
		width:       width,
		height:      height,
		aspectRatio: aspectRatio,
		gridWidth:   gridWidth,
		gridHeight:  gridHeight,
		position:    position,
	}
}

// PhotoUpdate is a partial metadata change from the admin grid editor.
type PhotoUpdate struct {
	Album      *string
	GridWidth  *int
	GridHeight *int
}

// Apply merges an update and reports whether the grid width changed, which
// is the signal to regenerate the thumbnail at its new target width.
func (p *Photo) Apply(u PhotoUpdate) (gridWidthChanged bool, err error) {
	if u.GridWidth != nil && !validGridSize(*u.GridWidth) {
		return false, ErrInvalidGridSize
	}
	if u.GridHeight != nil && !validGridSize(*u.GridHeight) {
		return false, ErrInvalidGridSize
	}

	if u.Album != nil {
		p.album = *u.Album
	}
	if u.GridWidth != nil {
		gridWidthChanged = *u.GridWidth != p.gridWidth
		p.gridWidth = *u.GridWidth
	}
	if u.GridHeight != nil {
		p.gridHeight = *u.GridHeight
	}
	return gridWidthChanged, nil
}

func (p *Photo) SetPosition(position int) {
	p.position = position
}

func validGridSize(v int) bool {
	return v == 1 || v == 2
}

// Thumbnail sizing: base width per grid cell, scaled up for lightbox detail,
// never exceeding the original.
const (
	thumbBaseWidth   = 360
	thumbDetailScale = 1.8
)

func (p *Photo) ThumbnailTargetWidth() int {
	base := thumbBaseWidth * p.gridWidth
	scaled := int(float64(base)*thumbDetailScale + 0.5)
	if scaled > p.width {
		scaled = p.width
	}
	if scaled < 1 {
		scaled = 1
	}
	return scaled
}

func (p *Photo) ID() uuid.UUID        { return p.id }
func (p *Photo) Filename() string     { return p.filename }
func (p *Photo) Album() string        { return p.album }
func (p *Photo) Width() int           { return p.width }
func (p *Photo) Height() int          { return p.height }
func (p *Photo) AspectRatio() float64 { return p.aspectRatio }
func (p *Photo) GridWidth() int       { return p.gridWidth }
func (p *Photo) GridHeight() int      { return p.gridHeight }
func (p *Photo) Position() int        { return p.position }
