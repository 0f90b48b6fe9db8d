package repositories

import (
	"context"

	"github.com/encorefund/backend/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PledgeRepo struct {
	pool *pgxpool.Pool
}

func NewPledgeRepo(pool *pgxpool.Pool) *PledgeRepo {
	return &PledgeRepo{pool: pool}
}

func (r *PledgeRepo) CreateInTx(ctx context.Context, tx pgx.Tx, p *models.Pledge) error {
	return tx.QueryRow(ctx, `
		INSERT INTO pledges (campaign_id, user_id, reward_tier_id, amount, status, transaction_id)
		VALUES ($1, $2, $3, $4::numeric, $5, $6)
		RETURNING id, created_at, updated_at
	`, p.CampaignID, p.UserID, p.RewardTierID, p.Amount, p.Status, p.TransactionID,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
}

func (r *PledgeRepo) ListByCampaign(ctx context.Context, campaignID uuid.UUID) ([]models.Pledge, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, campaign_id, user_id, reward_tier_id, amount::text, status, transaction_id, created_at, updated_at
		FROM pledges WHERE campaign_id = $1 ORDER BY created_at DESC
	`, campaignID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	pledges := []models.Pledge{}
	for rows.Next() {
		var p models.Pledge
		if err := rows.Scan(&p.ID, &p.CampaignID, &p.UserID, &p.RewardTierID,
			&p.Amount, &p.Status, &p.TransactionID, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		pledges = append(pledges, p)
	}
	return pledges, rows.Err()
}
