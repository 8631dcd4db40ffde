package vod

import (
	"github.com/mateovidal/streamhaus-backend/pkg/db/models"
	"github.com/mateovidal/streamhaus-backend/pkg/enums"
)

// VodEntryDTO is the catalog entry shape exposed to clients. Field names
// track what the player frontend reads.
type VodEntryDTO struct {
	ID        uint                `json:"id"`
	Title     string              `json:"title"`
	Folder    string              `json:"folder"`
	Date      string              `json:"date"`
	VisibleTo enums.VodVisibility `json:"visible_to"`
}

// CreateVodInput is the admin upload-registration payload.
type CreateVodInput struct {
	Title     string `json:"title" validate:"required"`
	Folder    string `json:"folder" validate:"required"`
	Date      string `json:"date" validate:"required"`
	VisibleTo string `json:"visible_to" validate:"omitempty,oneof=subscribers all"`
}

// ListResponse carries a page of catalog entries. NextCursor is empty on the
// final page and when pagination was not requested.
type ListResponse struct {
	Entries    []VodEntryDTO `json:"entries"`
	NextCursor string        `json:"next_cursor,omitempty"`
}

func fromModel(entry models.VodEntry) VodEntryDTO {
	return VodEntryDTO{
		ID:        entry.ID,
		Title:     entry.Title,
		Folder:    entry.Folder,
		Date:      entry.PublishedOn,
		VisibleTo: entry.Visibility,
	}
}

func fromModels(entries []models.VodEntry) []VodEntryDTO {
	out := make([]VodEntryDTO, 0, len(entries))
	for _, entry := range entries {
		out = append(out, fromModel(entry))
	}
	return out
}
