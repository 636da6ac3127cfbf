package service

import (
	"context"

	"retreivo-backend/internal/domain"
	"retreivo-backend/internal/logger"
	"retreivo-backend/internal/repository"
	"retreivo-backend/internal/repository/postgres"
)

// Credit appends a ledger row and increments the user's cached balance. It
// has no transaction boundary of its own: r must be transaction-bound, and
// the caller owns commit and rollback.
func Credit(ctx context.Context, r *postgres.Repositories, userID, amount int32, reason string) error {
	if amount <= 0 {
		return &domain.ValidationError{Field: "amount", Reason: "must be positive"}
	}

	entry := &domain.RewardEntry{
		UserID: userID,
		Amount: amount,
		Reason: reason,
	}
	if err := r.Rewards.Insert(ctx, entry); err != nil {
		return err
	}
	return r.Users.IncrementRewardsBalance(ctx, userID, amount)
}

type rewardService struct {
	rewardRepo repository.RewardRepository
	userRepo   repository.UserRepository
}

func NewRewardService(rewardRepo repository.RewardRepository, userRepo repository.UserRepository) RewardService {
	return &rewardService{
		rewardRepo: rewardRepo,
		userRepo:   userRepo,
	}
}

func (s *rewardService) GetRewards(ctx context.Context, userID, limit int32) (int32, []domain.RewardEntry, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return 0, nil, &domain.OperationFailedError{Op: "get rewards", Err: err}
	}
	history, err := s.rewardRepo.ListByUser(ctx, userID, limit)
	if err != nil {
		return 0, nil, &domain.OperationFailedError{Op: "get rewards", Err: err}
	}
	return user.RewardsBalance, history, nil
}

func (s *rewardService) ReconcileBalances(ctx context.Context) ([]BalanceMismatch, error) {
	sums, err := s.rewardRepo.SumByUser(ctx)
	if err != nil {
		return nil, &domain.OperationFailedError{Op: "reconcile balances", Err: err}
	}
	balances, err := s.userRepo.ListRewardsBalances(ctx)
	if err != nil {
		return nil, &domain.OperationFailedError{Op: "reconcile balances", Err: err}
	}

	var mismatches []BalanceMismatch
	for userID, balance := range balances {
		if sum := sums[userID]; sum != balance {
			mismatches = append(mismatches, BalanceMismatch{
				UserID:    userID,
				Balance:   balance,
				LedgerSum: sum,
			})
			logger.Error("rewards balance diverges from ledger",
				"user_id", userID, "balance", balance, "ledger_sum", sum)
		}
	}
	return mismatches, nil
}
