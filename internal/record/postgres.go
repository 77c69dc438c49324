package record

import (
	"context"
	"fmt"

	"github.com/alex38x15-dot/nebula-draw-magic/internal/log"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/samber/do"
)

type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgresStore(i *do.Injector) (Store, error) {
	return &PostgresStore{pool: do.MustInvoke[*pgxpool.Pool](i)}, nil
}

func (s *PostgresStore) Insert(ctx context.Context, p InsertParams) (Record, error) {
	r := Record{
		ID:       uuid.NewString(),
		UserID:   p.UserID,
		Prompt:   p.Prompt,
		ImageURL: p.ImageURL,
		FilePath: p.FilePath,
		IsPublic: p.IsPublic,
	}

	log := log.FromContextOrDiscard(ctx).WithGroup("record").With("id", r.ID, "user_id", r.UserID)
	log.Info("inserting generated image row")

	err := s.pool.QueryRow(ctx, `
		INSERT INTO generated_images (id, user_id, prompt, image_url, file_path, is_public, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,NOW())
		RETURNING created_at`,
		r.ID, r.UserID, r.Prompt, r.ImageURL, r.FilePath, r.IsPublic).Scan(&r.CreatedAt)
	if err != nil {
		return Record{}, fmt.Errorf("insert generated image: %w", err)
	}
	return r, nil
}

func (s *PostgresStore) ListByOwner(ctx context.Context, userID string, limit int) ([]Record, error) {
	return s.list(ctx, `
		SELECT id, user_id, prompt, image_url, file_path, is_public, created_at
		FROM generated_images WHERE user_id = $1
		ORDER BY created_at DESC LIMIT $2`, userID, limit)
}

func (s *PostgresStore) ListPublic(ctx context.Context, limit int) ([]Record, error) {
	return s.list(ctx, `
		SELECT id, user_id, prompt, image_url, file_path, is_public, created_at
		FROM generated_images WHERE is_public
		ORDER BY created_at DESC LIMIT $1`, limit)
}

func (s *PostgresStore) list(ctx context.Context, query string, args ...any) ([]Record, error) {
	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query generated images: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var r Record
		if err := rows.Scan(&r.ID, &r.UserID, &r.Prompt, &r.ImageURL, &r.FilePath, &r.IsPublic, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan generated image: %w", err)
		}
		records = append(records, r)
	}
	return records, rows.Err()
}
