package service

import (
	"context"

	"retreivo-backend/internal/advisory"
	"retreivo-backend/internal/domain"
)

type AuthService interface {
	Login(ctx context.Context, email, password string) (*domain.User, string, error)
	GetProfile(ctx context.Context, userID int32) (*domain.User, error)
}

// ReportItemInput carries a lost/found report. Name and Description are
// required; everything else is optional.
type ReportItemInput struct {
	Name         string
	Category     string
	Description  string
	Location     string
	OccurredDate string
	Images       []string
}

type ItemService interface {
	ReportItem(ctx context.Context, reporterID int32, itemType domain.ItemType, in ReportItemInput) (*domain.Item, error)
	GetStatus(ctx context.Context, itemType domain.ItemType, itemID int32) (domain.ItemStatus, error)
	ListReports(ctx context.Context, userID int32) (lost, found []domain.Item, err error)
}

type ClaimService interface {
	CreateClaim(ctx context.Context, userID, itemID int32, itemType domain.ItemType) (*domain.Claim, error)
	ApproveClaim(ctx context.Context, claimID int32) (*domain.Claim, error)
	RejectClaim(ctx context.Context, claimID int32) (*domain.Claim, error)
	ListClaims(ctx context.Context, status domain.ClaimStatus) ([]domain.ClaimDetail, error)
}

// BalanceMismatch reports a user whose cached rewards_balance disagrees with
// the sum of their ledger entries.
type BalanceMismatch struct {
	UserID    int32
	Balance   int32
	LedgerSum int32
}

type RewardService interface {
	GetRewards(ctx context.Context, userID, limit int32) (int32, []domain.RewardEntry, error)
	// ReconcileBalances is the offline audit: it never mutates state, only
	// reports divergence between ledger sums and cached balances.
	ReconcileBalances(ctx context.Context) ([]BalanceMismatch, error)
}

type SearchInput struct {
	Query       string
	Category    string
	Location    string
	ItemName    string
	Description string
	Date        string
	Image       string
}

type SearchService interface {
	// Search returns matching open items and the method used
	// ("ml_service" or "database").
	Search(ctx context.Context, in SearchInput) ([]domain.SearchResult, string, error)
}

// AdvisoryClient is the slice of the advisory client the services consume.
type AdvisoryClient interface {
	SubmitItem(ctx context.Context, desc advisory.ItemDescriptor) error
	RankMatches(ctx context.Context, desc advisory.ItemDescriptor) ([]advisory.Match, error)
}
