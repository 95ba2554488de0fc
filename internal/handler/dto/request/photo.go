package request

import (
	"lensfolio/internal/domain/gallery"
	"lensfolio/internal/usecase"

	"github.com/google/uuid"
)

type UpdatePhotoRequest struct {
	ID         uuid.UUID `json:"id" binding:"required"`
	Album      *string   `json:"album,omitempty"`
	GridWidth  *int      `json:"gridWidth,omitempty"`
	GridHeight *int      `json:"gridHeight,omitempty"`
}

func (r UpdatePhotoRequest) ToUpdate() gallery.PhotoUpdate {
	return gallery.PhotoUpdate{
		Album:      r.Album,
		GridWidth:  r.GridWidth,
		GridHeight: r.GridHeight,
	}
}

type ReorderPhotosRequest struct {
	FromIndex *int       `json:"fromIndex,omitempty"`
	ToIndex   *int       `json:"toIndex,omitempty"`
	ID        *uuid.UUID `json:"id,omitempty"`
	Direction *string    `json:"direction,omitempty"`
	Steps     *int       `json:"steps,omitempty"`
}

func (r ReorderPhotosRequest) ToInput() usecase.ReorderInput {
	input := usecase.ReorderInput{
		FromIndex: r.FromIndex,
		ToIndex:   r.ToIndex,
		ID:        r.ID,
		Steps:     r.Steps,
	}
	if r.Direction != nil {
		d := usecase.MoveDirection(*r.Direction)
		input.Direction = &d
	}
	return input
}
