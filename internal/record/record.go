package record

import (
	"context"
	"time"
)

// Record is one row of generated-image metadata. Rows are written once per
// successful generation and never updated or deleted by this service.
type Record struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Prompt    string    `json:"prompt"`
	ImageURL  string    `json:"image_url"`
	FilePath  string    `json:"file_path"`
	IsPublic  bool      `json:"is_public"`
	CreatedAt time.Time `json:"created_at"`
}

type InsertParams struct {
	UserID   string
	Prompt   string
	ImageURL string
	FilePath string
	IsPublic bool
}

type Store interface {
	Insert(context.Context, InsertParams) (Record, error)
	ListByOwner(ctx context.Context, userID string, limit int) ([]Record, error)
	ListPublic(ctx context.Context, limit int) ([]Record, error)
}
