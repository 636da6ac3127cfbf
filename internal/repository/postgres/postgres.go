package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"retreivo-backend/internal/repository"

	_ "github.com/lib/pq"
)

// DBTX is the subset of database/sql shared by *sql.DB and *sql.Tx. Every
// repository runs over it, so the same queries serve both autocommit reads
// and transaction-scoped work.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Repositories bundles all repositories bound to a single DBTX.
type Repositories struct {
	Users   repository.UserRepository
	Items   repository.ItemRepository
	Claims  repository.ClaimRepository
	Rewards repository.RewardRepository
}

func newRepositories(db DBTX) *Repositories {
	return &Repositories{
		Users:   NewUserRepository(db),
		Items:   NewItemRepository(db),
		Claims:  NewClaimRepository(db),
		Rewards: NewRewardRepository(db),
	}
}

type Store struct {
	db *sql.DB
	*Repositories
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:           db,
		Repositories: newRepositories(db),
	}
}

// ExecTx runs fn inside a single transaction. All repositories handed to fn
// are bound to that transaction; row locks taken through them hold until
// commit or rollback. Any error from fn rolls the whole unit of work back.
func (s *Store) ExecTx(ctx context.Context, fn func(r *Repositories) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if err := fn(newRepositories(tx)); err != nil {
		return err
	}
	return tx.Commit()
}

// Ping checks database connectivity, used by the health endpoint.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}
