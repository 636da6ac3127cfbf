package postgres

import (
	"context"
	"testing"
	"time"

	"retreivo-backend/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestRewardRepository_Insert(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewRewardRepository(db)
	ctx := context.Background()

	entry := &domain.RewardEntry{UserID: 7, Amount: 100, Reason: domain.ReasonClaimApproved}

	mock.ExpectQuery("INSERT INTO rewards").
		WithArgs(entry.UserID, entry.Amount, entry.Reason).
		WillReturnRows(sqlmock.NewRows([]string{"reward_id", "created_at"}).AddRow(5, time.Now()))

	err = repo.Insert(ctx, entry)
	assert.NoError(t, err)
	assert.Equal(t, int32(5), entry.ID)
}

func TestRewardRepository_ListByUser(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewRewardRepository(db)
	ctx := context.Background()

	mock.ExpectQuery("SELECT (.+) FROM rewards WHERE user_id = \\$1").
		WithArgs(int32(7), int32(10)).
		WillReturnRows(sqlmock.NewRows([]string{"reward_id", "user_id", "amount", "reason", "created_at"}).
			AddRow(5, 7, 100, "Claim approved", time.Now()).
			AddRow(4, 7, 100, "Claim approved", time.Now()))

	entries, err := repo.ListByUser(ctx, 7, 10)
	assert.NoError(t, err)
	assert.Len(t, entries, 2)
	assert.Equal(t, int32(100), entries[0].Amount)
}

func TestRewardRepository_SumByUser(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewRewardRepository(db)
	ctx := context.Background()

	mock.ExpectQuery("SELECT user_id, COALESCE\\(SUM\\(amount\\), 0\\) FROM rewards GROUP BY user_id").
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "sum"}).
			AddRow(7, 300).
			AddRow(8, 100))

	sums, err := repo.SumByUser(ctx)
	assert.NoError(t, err)
	assert.Equal(t, int32(300), sums[7])
	assert.Equal(t, int32(100), sums[8])
}
