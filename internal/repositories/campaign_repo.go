package repositories

import (
	"context"

	"github.com/encorefund/backend/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const campaignColumns = `id, user_id, title, description, funding_goal::text, current_amount::text,
	start_date, end_date, status, banner_image_url, created_at, updated_at`

type CampaignRepo struct {
	pool *pgxpool.Pool
}

func NewCampaignRepo(pool *pgxpool.Pool) *CampaignRepo {
	return &CampaignRepo{pool: pool}
}

func scanCampaign(row pgx.Row, c *models.Campaign) error {
	return row.Scan(&c.ID, &c.UserID, &c.Title, &c.Description, &c.FundingGoal,
		&c.CurrentAmount, &c.StartDate, &c.EndDate, &c.Status, &c.BannerImageURL,
		&c.CreatedAt, &c.UpdatedAt)
}

func (r *CampaignRepo) Create(ctx context.Context, c *models.Campaign) error {
	return r.pool.QueryRow(ctx, `
		INSERT INTO campaigns (user_id, title, description, funding_goal, start_date, end_date, status, banner_image_url)
		VALUES ($1, $2, $3, $4::numeric, $5, $6, $7, $8)
		RETURNING id, current_amount::text, created_at, updated_at
	`, c.UserID, c.Title, c.Description, c.FundingGoal, c.StartDate, c.EndDate,
		c.Status, c.BannerImageURL,
	).Scan(&c.ID, &c.CurrentAmount, &c.CreatedAt, &c.UpdatedAt)
}

func (r *CampaignRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Campaign, error) {
	var c models.Campaign
	err := scanCampaign(r.pool.QueryRow(ctx,
		`SELECT `+campaignColumns+` FROM campaigns WHERE id = $1`, id), &c)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CampaignRepo) ListByOwner(ctx context.Context, userID uuid.UUID) ([]models.Campaign, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+campaignColumns+` FROM campaigns WHERE user_id = $1 ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	campaigns := []models.Campaign{}
	for rows.Next() {
		var c models.Campaign
		if err := scanCampaign(rows, &c); err != nil {
			return nil, err
		}
		campaigns = append(campaigns, c)
	}
	return campaigns, rows.Err()
}

// UpdateOwned writes every field in one statement guarded by the owner id,
// so the ownership check and the write cannot race. Returns pgx.ErrNoRows
// when the campaign does not exist or belongs to someone else.
func (r *CampaignRepo) UpdateOwned(ctx context.Context, c *models.Campaign) error {
	err := r.pool.QueryRow(ctx, `
		UPDATE campaigns
		SET title = $1, description = $2, funding_goal = $3::numeric, start_date = $4,
		    end_date = $5, status = $6, banner_image_url = $7, updated_at = now()
		WHERE id = $8 AND user_id = $9
		RETURNING current_amount::text, created_at, updated_at
	`, c.Title, c.Description, c.FundingGoal, c.StartDate, c.EndDate, c.Status,
		c.BannerImageURL, c.ID, c.UserID,
	).Scan(&c.CurrentAmount, &c.CreatedAt, &c.UpdatedAt)
	return err
}

// DeleteOwned removes the campaign row if it belongs to userID. Children are
// left in place (no cascade). Returns pgx.ErrNoRows when nothing matched.
func (r *CampaignRepo) DeleteOwned(ctx context.Context, id, userID uuid.UUID) error {
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM campaigns WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// IncrementAmountInTx adds amount to current_amount inside the pledge
// transaction and returns the new total.
func (r *CampaignRepo) IncrementAmountInTx(ctx context.Context, tx pgx.Tx, id uuid.UUID, amount string) (string, error) {
	var newAmount string
	err := tx.QueryRow(ctx, `
		UPDATE campaigns SET current_amount = current_amount + $2::numeric, updated_at = now()
		WHERE id = $1
		RETURNING current_amount::text
	`, id, amount).Scan(&newAmount)
	return newAmount, err
}
