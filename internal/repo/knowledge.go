package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

// KnowledgeArticle is one entry of the buyer knowledge base shown on the FAQ page.
type KnowledgeArticle struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// KnowledgeRepo reads knowledge base articles.
type KnowledgeRepo struct {
	Pool *pgxpool.Pool
}

// List returns all articles, oldest first.
func (r KnowledgeRepo) List(ctx context.Context) ([]KnowledgeArticle, error) {
	rows, err := r.Pool.Query(ctx, `
		SELECT id, title, content, created_at
		FROM knowledge
		ORDER BY created_at, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var articles []KnowledgeArticle
	for rows.Next() {
		var (
			a       KnowledgeArticle
			id      pgtype.UUID
			created pgtype.Timestamptz
		)
		if err := rows.Scan(&id, &a.Title, &a.Content, &created); err != nil {
			return nil, err
		}
		a.ID = uuidString(id)
		if created.Valid {
			a.CreatedAt = created.Time
		}
		articles = append(articles, a)
	}
	return articles, rows.Err()
}

func uuidString(id pgtype.UUID) string {
	if !id.Valid {
		return ""
	}
	return uuid.UUID(id.Bytes).String()
}
