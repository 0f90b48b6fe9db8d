package repositories

import (
	"context"

	"github.com/encorefund/backend/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UpdateRepo struct {
	pool *pgxpool.Pool
}

func NewUpdateRepo(pool *pgxpool.Pool) *UpdateRepo {
	return &UpdateRepo{pool: pool}
}

func (r *UpdateRepo) Create(ctx context.Context, u *models.Update) error {
	return r.pool.QueryRow(ctx, `
		INSERT INTO updates (campaign_id, title, content, published_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`, u.CampaignID, u.Title, u.Content, u.PublishedAt).Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt)
}

func (r *UpdateRepo) ListByCampaign(ctx context.Context, campaignID uuid.UUID) ([]models.Update, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, campaign_id, title, content, published_at, created_at, updated_at
		FROM updates WHERE campaign_id = $1 ORDER BY published_at DESC
	`, campaignID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	updates := []models.Update{}
	for rows.Next() {
		var u models.Update
		if err := rows.Scan(&u.ID, &u.CampaignID, &u.Title, &u.Content,
			&u.PublishedAt, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, err
		}
		updates = append(updates, u)
	}
	return updates, rows.Err()
}
