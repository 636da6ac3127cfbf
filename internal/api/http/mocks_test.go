package http

import (
	"context"

	"retreivo-backend/internal/domain"
	"retreivo-backend/internal/security"
	"retreivo-backend/internal/service"

	"github.com/stretchr/testify/mock"
)

// MockClaimService
type MockClaimService struct {
	mock.Mock
}

func (m *MockClaimService) CreateClaim(ctx context.Context, userID, itemID int32, itemType domain.ItemType) (*domain.Claim, error) {
	args := m.Called(ctx, userID, itemID, itemType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Claim), args.Error(1)
}
func (m *MockClaimService) ApproveClaim(ctx context.Context, claimID int32) (*domain.Claim, error) {
	args := m.Called(ctx, claimID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Claim), args.Error(1)
}
func (m *MockClaimService) RejectClaim(ctx context.Context, claimID int32) (*domain.Claim, error) {
	args := m.Called(ctx, claimID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Claim), args.Error(1)
}
func (m *MockClaimService) ListClaims(ctx context.Context, status domain.ClaimStatus) ([]domain.ClaimDetail, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ClaimDetail), args.Error(1)
}

// MockItemService
type MockItemService struct {
	mock.Mock
}

func (m *MockItemService) ReportItem(ctx context.Context, reporterID int32, itemType domain.ItemType, in service.ReportItemInput) (*domain.Item, error) {
	args := m.Called(ctx, reporterID, itemType, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Item), args.Error(1)
}
func (m *MockItemService) GetStatus(ctx context.Context, itemType domain.ItemType, itemID int32) (domain.ItemStatus, error) {
	args := m.Called(ctx, itemType, itemID)
	return args.Get(0).(domain.ItemStatus), args.Error(1)
}
func (m *MockItemService) ListReports(ctx context.Context, userID int32) ([]domain.Item, []domain.Item, error) {
	args := m.Called(ctx, userID)
	var lost, found []domain.Item
	if args.Get(0) != nil {
		lost = args.Get(0).([]domain.Item)
	}
	if args.Get(1) != nil {
		found = args.Get(1).([]domain.Item)
	}
	return lost, found, args.Error(2)
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
