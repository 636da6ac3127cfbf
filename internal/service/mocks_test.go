package service

import (
	"context"

	"retreivo-backend/internal/advisory"
	"retreivo-backend/internal/domain"
	"retreivo-backend/internal/security"

	"github.com/stretchr/testify/mock"
)

// MockUserRepo
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) GetByID(ctx context.Context, id int32) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) IncrementRewardsBalance(ctx context.Context, userID, amount int32) error {
	args := m.Called(ctx, userID, amount)
	return args.Error(0)
}
func (m *MockUserRepo) ListRewardsBalances(ctx context.Context) (map[int32]int32, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int32]int32), args.Error(1)
}

// MockItemRepo
type MockItemRepo struct {
	mock.Mock
}

func (m *MockItemRepo) Create(ctx context.Context, item *domain.Item) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}
func (m *MockItemRepo) GetByID(ctx context.Context, itemType domain.ItemType, id int32) (*domain.Item, error) {
	args := m.Called(ctx, itemType, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Item), args.Error(1)
}
func (m *MockItemRepo) GetForUpdate(ctx context.Context, itemType domain.ItemType, id int32) (*domain.Item, error) {
	args := m.Called(ctx, itemType, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Item), args.Error(1)
}
func (m *MockItemRepo) UpdateStatus(ctx context.Context, itemType domain.ItemType, id int32, status domain.ItemStatus) error {
	args := m.Called(ctx, itemType, id, status)
	return args.Error(0)
}
func (m *MockItemRepo) ListByOwner(ctx context.Context, ownerID int32) ([]domain.Item, []domain.Item, error) {
	args := m.Called(ctx, ownerID)
	var lost, found []domain.Item
	if args.Get(0) != nil {
		lost = args.Get(0).([]domain.Item)
	}
	if args.Get(1) != nil {
		found = args.Get(1).([]domain.Item)
	}
	return lost, found, args.Error(2)
}
func (m *MockItemRepo) SearchOpen(ctx context.Context, query, category, location string, limit int32) ([]domain.Item, error) {
	args := m.Called(ctx, query, category, location, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Item), args.Error(1)
}
func (m *MockItemRepo) GetOpenFoundByIDs(ctx context.Context, ids []int32) ([]domain.Item, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Item), args.Error(1)
}

// MockRewardRepo
type MockRewardRepo struct {
	mock.Mock
}

func (m *MockRewardRepo) Insert(ctx context.Context, entry *domain.RewardEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}
func (m *MockRewardRepo) ListByUser(ctx context.Context, userID, limit int32) ([]domain.RewardEntry, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RewardEntry), args.Error(1)
}
func (m *MockRewardRepo) SumByUser(ctx context.Context) (map[int32]int32, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int32]int32), args.Error(1)
}

// MockAdvisoryClient
type MockAdvisoryClient struct {
	mock.Mock

	submitted chan advisory.ItemDescriptor
}

func (m *MockAdvisoryClient) SubmitItem(ctx context.Context, desc advisory.ItemDescriptor) error {
	args := m.Called(ctx, desc)
	if m.submitted != nil {
		m.submitted <- desc
	}
	return args.Error(0)
}
func (m *MockAdvisoryClient) RankMatches(ctx context.Context, desc advisory.ItemDescriptor) ([]advisory.Match, error) {
	args := m.Called(ctx, desc)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]advisory.Match), args.Error(1)
}

// MockTokenManager
type MockTokenManager struct {
	mock.Mock
}

func (m *MockTokenManager) GenerateAccessToken(userID int32, email, role string) (string, error) {
	args := m.Called(userID, email, role)
	return args.String(0), args.Error(1)
}
func (m *MockTokenManager) ValidateToken(tokenString string) (*security.UserClaims, error) {
	args := m.Called(tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*security.UserClaims), args.Error(1)
}
