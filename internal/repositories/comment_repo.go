package repositories

import (
	"context"

	"github.com/encorefund/backend/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CommentRepo struct {
	pool *pgxpool.Pool
}

func NewCommentRepo(pool *pgxpool.Pool) *CommentRepo {
	return &CommentRepo{pool: pool}
}

func (r *CommentRepo) Create(ctx context.Context, c *models.Comment) error {
	return r.pool.QueryRow(ctx, `
		INSERT INTO comments (campaign_id, user_id, content)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`, c.CampaignID, c.UserID, c.Content).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
}

func (r *CommentRepo) ListByCampaign(ctx context.Context, campaignID uuid.UUID) ([]models.Comment, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, campaign_id, user_id, content, created_at, updated_at
		FROM comments WHERE campaign_id = $1 ORDER BY created_at DESC
	`, campaignID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	comments := []models.Comment{}
	for rows.Next() {
		var c models.Comment
		if err := rows.Scan(&c.ID, &c.CampaignID, &c.UserID, &c.Content,
			&c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}
	return comments, rows.Err()
}
