package postgres

import (
	"context"
	"database/sql"
	"time"

	"retreivo-backend/internal/domain"
	"retreivo-backend/internal/repository"
)

type userRepository struct {
	db DBTX
}

func NewUserRepository(db DBTX) repository.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) GetByID(ctx context.Context, id int32) (*domain.User, error) {
	query := `SELECT user_id, name, email, COALESCE(phone, ''), password_hash, role, rewards_balance, created_at
	          FROM users WHERE user_id = $1`
	return r.scanUser(r.db.QueryRowContext(ctx, query, id))
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT user_id, name, email, COALESCE(phone, ''), password_hash, role, rewards_balance, created_at
	          FROM users WHERE email = $1`
	return r.scanUser(r.db.QueryRowContext(ctx, query, email))
}

func (r *userRepository) scanUser(row *sql.Row) (*domain.User, error) {
	user := &domain.User{}
	var createdOn time.Time
	err := row.Scan(&user.ID, &user.Name, &user.Email, &user.Phone,
		&user.PasswordHash, &user.Role, &user.RewardsBalance, &createdOn)
	if err != nil {
		return nil, err
	}
	user.CreatedOn = createdOn.Format(time.RFC3339)
	return user, nil
}

func (r *userRepository) IncrementRewardsBalance(ctx context.Context, userID, amount int32) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE users SET rewards_balance = rewards_balance + $1, updated_at = CURRENT_TIMESTAMP WHERE user_id = $2`,
		amount, userID)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *userRepository) ListRewardsBalances(ctx context.Context) (map[int32]int32, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT user_id, rewards_balance FROM users`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	balances := make(map[int32]int32)
	for rows.Next() {
		var userID, balance int32
		if err := rows.Scan(&userID, &balance); err != nil {
			return nil, err
		}
		balances[userID] = balance
	}
	return balances, rows.Err()
}
