package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"retreivo-backend/internal/domain"
	"retreivo-backend/internal/repository/postgres"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCredit(t *testing.T) {
	ctx := context.Background()

	t.Run("AppendsLedgerAndIncrementsBalance", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		store := postgres.NewStore(db)

		mock.ExpectBegin()
		mock.ExpectQuery("INSERT INTO rewards").
			WithArgs(int32(7), int32(100), domain.ReasonClaimApproved).
			WillReturnRows(sqlmock.NewRows([]string{"reward_id", "created_at"}).AddRow(5, time.Now()))
		mock.ExpectExec("UPDATE users SET rewards_balance = rewards_balance \\+ \\$1").
			WithArgs(int32(100), int32(7)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err = store.ExecTx(ctx, func(r *postgres.Repositories) error {
			return Credit(ctx, r, 7, 100, domain.ReasonClaimApproved)
		})
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("BalanceUpdateFailureRollsBackLedgerRow", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		store := postgres.NewStore(db)

		mock.ExpectBegin()
		mock.ExpectQuery("INSERT INTO rewards").
			WithArgs(int32(7), int32(100), domain.ReasonClaimApproved).
			WillReturnRows(sqlmock.NewRows([]string{"reward_id", "created_at"}).AddRow(5, time.Now()))
		mock.ExpectExec("UPDATE users SET rewards_balance = rewards_balance \\+ \\$1").
			WithArgs(int32(100), int32(7)).
			WillReturnError(errors.New("deadlock detected"))
		mock.ExpectRollback()

		err = store.ExecTx(ctx, func(r *postgres.Repositories) error {
			return Credit(ctx, r, 7, 100, domain.ReasonClaimApproved)
		})
		require.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("RejectsNonPositiveAmount", func(t *testing.T) {
		err := Credit(context.Background(), nil, 7, 0, domain.ReasonClaimApproved)
		var validation *domain.ValidationError
		assert.ErrorAs(t, err, &validation)
	})
}

func TestRewardService_GetRewards(t *testing.T) {
	ctx := context.Background()
	rewardRepo := new(MockRewardRepo)
	userRepo := new(MockUserRepo)
	svc := NewRewardService(rewardRepo, userRepo)

	userRepo.On("GetByID", ctx, int32(7)).Return(&domain.User{ID: 7, RewardsBalance: 300}, nil)
	rewardRepo.On("ListByUser", ctx, int32(7), int32(10)).Return([]domain.RewardEntry{
		{ID: 5, UserID: 7, Amount: 100, Reason: domain.ReasonClaimApproved},
		{ID: 4, UserID: 7, Amount: 200, Reason: domain.ReasonClaimApproved},
	}, nil)

	balance, history, err := svc.GetRewards(ctx, 7, 10)
	require.NoError(t, err)
	assert.Equal(t, int32(300), balance)
	assert.Len(t, history, 2)
}

func TestRewardService_ReconcileBalances(t *testing.T) {
	ctx := context.Background()

	t.Run("ReportsDivergence", func(t *testing.T) {
		rewardRepo := new(MockRewardRepo)
		userRepo := new(MockUserRepo)
		svc := NewRewardService(rewardRepo, userRepo)

		rewardRepo.On("SumByUser", ctx).Return(map[int32]int32{7: 300, 8: 100}, nil)
		userRepo.On("ListRewardsBalances", ctx).Return(map[int32]int32{7: 300, 8: 150, 9: 50}, nil)

		mismatches, err := svc.ReconcileBalances(ctx)
		require.NoError(t, err)
		require.Len(t, mismatches, 2)

		byUser := make(map[int32]BalanceMismatch)
		for _, m := range mismatches {
			byUser[m.UserID] = m
		}
		assert.Equal(t, int32(150), byUser[8].Balance)
		assert.Equal(t, int32(100), byUser[8].LedgerSum)
		assert.Equal(t, int32(50), byUser[9].Balance)
		assert.Equal(t, int32(0), byUser[9].LedgerSum)
	})

	t.Run("CleanWhenConsistent", func(t *testing.T) {
		rewardRepo := new(MockRewardRepo)
		userRepo := new(MockUserRepo)
		svc := NewRewardService(rewardRepo, userRepo)

		rewardRepo.On("SumByUser", ctx).Return(map[int32]int32{7: 300}, nil)
		userRepo.On("ListRewardsBalances", ctx).Return(map[int32]int32{7: 300}, nil)

		mismatches, err := svc.ReconcileBalances(ctx)
		require.NoError(t, err)
		assert.Empty(t, mismatches)
	})
}
