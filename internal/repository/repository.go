package repository

import (
	"context"

	"retreivo-backend/internal/domain"
)

type UserRepository interface {
	GetByID(ctx context.Context, id int32) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	// IncrementRewardsBalance adds amount to users.rewards_balance. It is a
	// sub-operation of reward crediting and must run on the same transaction
	// as the matching ledger insert.
	IncrementRewardsBalance(ctx context.Context, userID, amount int32) error
	ListRewardsBalances(ctx context.Context) (map[int32]int32, error)
}

type ItemRepository interface {
	Create(ctx context.Context, item *domain.Item) error
	GetByID(ctx context.Context, itemType domain.ItemType, id int32) (*domain.Item, error)
	// GetForUpdate reads the item row under SELECT ... FOR UPDATE. Only
	// meaningful on a transaction-bound repository.
	GetForUpdate(ctx context.Context, itemType domain.ItemType, id int32) (*domain.Item, error)
	UpdateStatus(ctx context.Context, itemType domain.ItemType, id int32, status domain.ItemStatus) error
	ListByOwner(ctx context.Context, ownerID int32) (lost, found []domain.Item, err error)
	SearchOpen(ctx context.Context, query, category, location string, limit int32) ([]domain.Item, error)
	GetOpenFoundByIDs(ctx context.Context, ids []int32) ([]domain.Item, error)
}

type ClaimRepository interface {
	Create(ctx context.Context, claim *domain.Claim) error
	GetByID(ctx context.Context, id int32) (*domain.Claim, error)
	GetForUpdate(ctx context.Context, id int32) (*domain.Claim, error)
	UpdateStatus(ctx context.Context, id int32, status domain.ClaimStatus) error
	ListByStatus(ctx context.Context, status domain.ClaimStatus) ([]domain.ClaimDetail, error)
}

type RewardRepository interface {
	// Insert appends a ledger row. Balance maintenance is the caller's
	// responsibility (see UserRepository.IncrementRewardsBalance).
	Insert(ctx context.Context, entry *domain.RewardEntry) error
	ListByUser(ctx context.Context, userID, limit int32) ([]domain.RewardEntry, error)
	SumByUser(ctx context.Context) (map[int32]int32, error)
}
