package repositories

import (
	"context"

	"github.com/encorefund/backend/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type RewardTierRepo struct {
	pool *pgxpool.Pool
}

func NewRewardTierRepo(pool *pgxpool.Pool) *RewardTierRepo {
	return &RewardTierRepo{pool: pool}
}

func (r *RewardTierRepo) Create(ctx context.Context, t *models.RewardTier) error {
	return r.pool.QueryRow(ctx, `
		INSERT INTO reward_tiers (campaign_id, title, description, minimum_amount, estimated_delivery_date, max_claims)
		VALUES ($1, $2, $3, $4::numeric, $5, $6)
		RETURNING id, current_claims, created_at, updated_at
	`, t.CampaignID, t.Title, t.Description, t.MinimumAmount,
		t.EstimatedDeliveryDate, t.MaxClaims,
	).Scan(&t.ID, &t.CurrentClaims, &t.CreatedAt, &t.UpdatedAt)
}

func (r *RewardTierRepo) ListByCampaign(ctx context.Context, campaignID uuid.UUID) ([]models.RewardTier, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, campaign_id, title, description, minimum_amount::text, estimated_delivery_date,
		       max_claims, current_claims, created_at, updated_at
		FROM reward_tiers WHERE campaign_id = $1 ORDER BY minimum_amount ASC
	`, campaignID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tiers := []models.RewardTier{}
	for rows.Next() {
		var t models.RewardTier
		if err := rows.Scan(&t.ID, &t.CampaignID, &t.Title, &t.Description,
			&t.MinimumAmount, &t.EstimatedDeliveryDate, &t.MaxClaims,
			&t.CurrentClaims, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}
		tiers = append(tiers, t)
	}
	return tiers, rows.Err()
}

// ClaimInTx increments current_claims for a tier of the given campaign,
// refusing once max_claims is hit. Returns pgx.ErrNoRows when the tier is
// missing, belongs to another campaign, or is fully claimed.
func (r *RewardTierRepo) ClaimInTx(ctx context.Context, tx pgx.Tx, tierID, campaignID uuid.UUID) error {
	tag, err := tx.Exec(ctx, `
		UPDATE reward_tiers SET current_claims = current_claims + 1, updated_at = now()
		WHERE id = $1 AND campaign_id = $2
		  AND (max_claims IS NULL OR current_claims < max_claims)
	`, tierID, campaignID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
