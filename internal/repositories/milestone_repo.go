package repositories

import (
	"context"

	"github.com/encorefund/backend/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type MilestoneRepo struct {
	pool *pgxpool.Pool
}

func NewMilestoneRepo(pool *pgxpool.Pool) *MilestoneRepo {
	return &MilestoneRepo{pool: pool}
}

func (r *MilestoneRepo) Create(ctx context.Context, m *models.Milestone) error {
	return r.pool.QueryRow(ctx, `
		INSERT INTO milestones (campaign_id, title, description, target_amount)
		VALUES ($1, $2, $3, $4::numeric)
		RETURNING id, created_at, updated_at
	`, m.CampaignID, m.Title, m.Description, m.TargetAmount).Scan(&m.ID, &m.CreatedAt, &m.UpdatedAt)
}

func (r *MilestoneRepo) ListByCampaign(ctx context.Context, campaignID uuid.UUID) ([]models.Milestone, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, campaign_id, title, description, target_amount::text, reached_at, created_at, updated_at
		FROM milestones WHERE campaign_id = $1 ORDER BY target_amount ASC
	`, campaignID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	milestones := []models.Milestone{}
	for rows.Next() {
		var m models.Milestone
		if err := rows.Scan(&m.ID, &m.CampaignID, &m.Title, &m.Description,
			&m.TargetAmount, &m.ReachedAt, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, err
		}
		milestones = append(milestones, m)
	}
	return milestones, rows.Err()
}

// MarkReachedInTx stamps reached_at on every milestone of the campaign whose
// target the raised amount now meets, and returns the newly reached ones.
func (r *MilestoneRepo) MarkReachedInTx(ctx context.Context, tx pgx.Tx, campaignID uuid.UUID, raisedAmount string) ([]models.Milestone, error) {
	rows, err := tx.Query(ctx, `
		UPDATE milestones SET reached_at = now(), updated_at = now()
		WHERE campaign_id = $1 AND reached_at IS NULL AND target_amount <= $2::numeric
		RETURNING id, campaign_id, title, description, target_amount::text, reached_at, created_at, updated_at
	`, campaignID, raisedAmount)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reached []models.Milestone
	for rows.Next() {
		var m models.Milestone
		if err := rows.Scan(&m.ID, &m.CampaignID, &m.Title, &m.Description,
			&m.TargetAmount, &m.ReachedAt, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, err
		}
		reached = append(reached, m)
	}
	return reached, rows.Err()
}
