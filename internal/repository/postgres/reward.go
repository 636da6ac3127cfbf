package postgres

import (
	"context"
	"time"

	"retreivo-backend/internal/domain"
	"retreivo-backend/internal/repository"
)

type rewardRepository struct {
	db DBTX
}

func NewRewardRepository(db DBTX) repository.RewardRepository {
	return &rewardRepository{db: db}
}

func (r *rewardRepository) Insert(ctx context.Context, entry *domain.RewardEntry) error {
	query := `INSERT INTO rewards (user_id, amount, reason)
	          VALUES ($1, $2, $3) RETURNING reward_id, created_at`
	var createdOn time.Time
	err := r.db.QueryRowContext(ctx, query, entry.UserID, entry.Amount, entry.Reason).
		Scan(&entry.ID, &createdOn)
	if err != nil {
		return err
	}
	entry.CreatedOn = createdOn.Format(time.RFC3339)
	return nil
}

func (r *rewardRepository) ListByUser(ctx context.Context, userID, limit int32) ([]domain.RewardEntry, error) {
	query := `SELECT reward_id, user_id, amount, COALESCE(reason, ''), created_at
	          FROM rewards WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2`
	rows, err := r.db.QueryContext(ctx, query, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []domain.RewardEntry
	for rows.Next() {
		var e domain.RewardEntry
		var createdOn time.Time
		if err := rows.Scan(&e.ID, &e.UserID, &e.Amount, &e.Reason, &createdOn); err != nil {
			return nil, err
		}
		e.CreatedOn = createdOn.Format(time.RFC3339)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// SumByUser totals ledger entries per user, used by the reconciliation job
// to audit the cached rewards_balance column.
func (r *rewardRepository) SumByUser(ctx context.Context) (map[int32]int32, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT user_id, COALESCE(SUM(amount), 0) FROM rewards GROUP BY user_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sums := make(map[int32]int32)
	for rows.Next() {
		var userID, total int32
		if err := rows.Scan(&userID, &total); err != nil {
			return nil, err
		}
		sums[userID] = total
	}
	return sums, rows.Err()
}
