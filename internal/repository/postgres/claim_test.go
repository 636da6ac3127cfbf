package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"retreivo-backend/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

var claimColumns = []string{"claim_id", "user_id", "item_id", "item_type", "status", "created_at"}

func TestClaimRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewClaimRepository(db)
	ctx := context.Background()

	claim := &domain.Claim{
		ClaimantID: 3,
		ItemID:     42,
		ItemType:   domain.ItemTypeFound,
		Status:     domain.ClaimStatusPending,
	}

	mock.ExpectQuery("INSERT INTO claims").
		WithArgs(claim.ClaimantID, claim.ItemID, claim.ItemType, claim.Status).
		WillReturnRows(sqlmock.NewRows([]string{"claim_id", "created_at"}).AddRow(11, time.Now()))

	err = repo.Create(ctx, claim)
	assert.NoError(t, err)
	assert.Equal(t, int32(11), claim.ID)
	assert.NotEmpty(t, claim.CreatedOn)
}

func TestClaimRepository_GetForUpdate(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewClaimRepository(db)
	ctx := context.Background()

	t.Run("LocksRow", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM claims WHERE claim_id = \\$1 FOR UPDATE").
			WithArgs(int32(11)).
			WillReturnRows(sqlmock.NewRows(claimColumns).
				AddRow(11, 3, 42, "found", "pending", time.Now()))

		claim, err := repo.GetForUpdate(ctx, 11)
		assert.NoError(t, err)
		assert.Equal(t, domain.ClaimStatusPending, claim.Status)
		assert.Equal(t, int32(42), claim.ItemID)
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM claims WHERE claim_id = \\$1 FOR UPDATE").
			WithArgs(int32(99)).
			WillReturnError(sql.ErrNoRows)

		_, err := repo.GetForUpdate(ctx, 99)
		assert.ErrorIs(t, err, sql.ErrNoRows)
	})
}

func TestClaimRepository_ListByStatus(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewClaimRepository(db)
	ctx := context.Background()

	detailColumns := []string{"claim_id", "user_id", "item_id", "item_type", "status", "created_at",
		"name", "description", "location", "finder_id"}

	mock.ExpectQuery("JOIN found_items").
		WithArgs(domain.ClaimStatusPending).
		WillReturnRows(sqlmock.NewRows(detailColumns).
			AddRow(11, 3, 42, "found", "pending", time.Now(), "Black wallet", "Leather wallet", "Station", 7))
	mock.ExpectQuery("JOIN lost_items").
		WithArgs(domain.ClaimStatusPending).
		WillReturnRows(sqlmock.NewRows(detailColumns).
			AddRow(12, 4, 8, "lost", "pending", time.Now(), "Phone", "Blue phone", "", nil))

	details, err := repo.ListByStatus(ctx, domain.ClaimStatusPending)
	assert.NoError(t, err)
	assert.Len(t, details, 2)
	assert.NotNil(t, details[0].FinderID)
	assert.Equal(t, int32(7), *details[0].FinderID)
	assert.Nil(t, details[1].FinderID)
}
