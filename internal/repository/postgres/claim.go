package postgres

import (
	"context"
	"time"

	"retreivo-backend/internal/domain"
	"retreivo-backend/internal/repository"
)

type claimRepository struct {
	db DBTX
}

func NewClaimRepository(db DBTX) repository.ClaimRepository {
	return &claimRepository{db: db}
}

func (r *claimRepository) Create(ctx context.Context, claim *domain.Claim) error {
	query := `INSERT INTO claims (user_id, item_id, item_type, status)
	          VALUES ($1, $2, $3, $4) RETURNING claim_id, created_at`
	var createdOn time.Time
	err := r.db.QueryRowContext(ctx, query,
		claim.ClaimantID, claim.ItemID, claim.ItemType, claim.Status,
	).Scan(&claim.ID, &createdOn)
	if err != nil {
		return err
	}
	claim.CreatedOn = createdOn.Format(time.RFC3339)
	return nil
}

func (r *claimRepository) GetByID(ctx context.Context, id int32) (*domain.Claim, error) {
	return r.get(ctx, id, false)
}

func (r *claimRepository) GetForUpdate(ctx context.Context, id int32) (*domain.Claim, error) {
	return r.get(ctx, id, true)
}

func (r *claimRepository) get(ctx context.Context, id int32, forUpdate bool) (*domain.Claim, error) {
	query := `SELECT claim_id, user_id, item_id, item_type, status, created_at FROM claims WHERE claim_id = $1`
	if forUpdate {
		query += " FOR UPDATE"
	}

	claim := &domain.Claim{}
	var createdOn time.Time
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&claim.ID, &claim.ClaimantID, &claim.ItemID, &claim.ItemType, &claim.Status, &createdOn)
	if err != nil {
		return nil, err
	}
	claim.CreatedOn = createdOn.Format(time.RFC3339)
	return claim, nil
}

func (r *claimRepository) UpdateStatus(ctx context.Context, id int32, status domain.ClaimStatus) error {
	_, err := r.db.ExecContext(ctx, `UPDATE claims SET status = $1 WHERE claim_id = $2`, status, id)
	return err
}

// ListByStatus returns claims joined with their item details for hub review.
// Found-item claims carry the finder's user id so the hub can see who gets
// credited on approval.
func (r *claimRepository) ListByStatus(ctx context.Context, status domain.ClaimStatus) ([]domain.ClaimDetail, error) {
	foundQuery := `
		SELECT c.claim_id, c.user_id, c.item_id, c.item_type, c.status, c.created_at,
		       f.name, f.description, COALESCE(f.location, ''), f.user_id
		FROM claims c
		JOIN found_items f ON c.item_id = f.item_id
		WHERE c.item_type = 'found' AND c.status = $1
		ORDER BY c.created_at DESC`
	lostQuery := `
		SELECT c.claim_id, c.user_id, c.item_id, c.item_type, c.status, c.created_at,
		       l.name, l.description, COALESCE(l.location, ''), NULL::integer
		FROM claims c
		JOIN lost_items l ON c.item_id = l.item_id
		WHERE c.item_type = 'lost' AND c.status = $1
		ORDER BY c.created_at DESC`

	details, err := r.listDetails(ctx, foundQuery, status)
	if err != nil {
		return nil, err
	}
	lost, err := r.listDetails(ctx, lostQuery, status)
	if err != nil {
		return nil, err
	}
	return append(details, lost...), nil
}

func (r *claimRepository) listDetails(ctx context.Context, query string, status domain.ClaimStatus) ([]domain.ClaimDetail, error) {
	rows, err := r.db.QueryContext(ctx, query, status)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var details []domain.ClaimDetail
	for rows.Next() {
		var d domain.ClaimDetail
		var createdOn time.Time
		if err := rows.Scan(&d.ID, &d.ClaimantID, &d.ItemID, &d.ItemType, &d.Status, &createdOn,
			&d.ItemName, &d.ItemDescription, &d.ItemLocation, &d.FinderID); err != nil {
			return nil, err
		}
		d.CreatedOn = createdOn.Format(time.RFC3339)
		details = append(details, d)
	}
	return details, rows.Err()
}
