package service

import (
	"context"
	"database/sql"
	"errors"

	"retreivo-backend/internal/domain"
	"retreivo-backend/internal/logger"
	"retreivo-backend/internal/repository"
	"retreivo-backend/internal/repository/postgres"
)

// TxRunner executes a function inside a single database transaction. All
// claim lifecycle work runs through it; *postgres.Store satisfies it.
type TxRunner interface {
	ExecTx(ctx context.Context, fn func(r *postgres.Repositories) error) error
}

// claimService is the claim coordinator. Every mutating operation here is
// one atomic unit of work: a transaction holding SELECT ... FOR UPDATE locks
// on the rows it transitions, so concurrent claims on the same item
// serialize on the item row and exactly one observes the open status.
type claimService struct {
	store        TxRunner
	claimRepo    repository.ClaimRepository
	rewardAmount int32
}

func NewClaimService(store TxRunner, claimRepo repository.ClaimRepository, rewardAmount int32) ClaimService {
	return &claimService{
		store:        store,
		claimRepo:    claimRepo,
		rewardAmount: rewardAmount,
	}
}

func (s *claimService) CreateClaim(ctx context.Context, userID, itemID int32, itemType domain.ItemType) (*domain.Claim, error) {
	if !itemType.Valid() {
		return nil, &domain.ValidationError{Field: "item_type", Reason: "must be 'lost' or 'found'"}
	}

	claim := &domain.Claim{
		ClaimantID: userID,
		ItemID:     itemID,
		ItemType:   itemType,
		Status:     domain.ClaimStatusPending,
	}

	err := s.store.ExecTx(ctx, func(r *postgres.Repositories) error {
		item, err := r.Items.GetForUpdate(ctx, itemType, itemID)
		if errors.Is(err, sql.ErrNoRows) {
			return &domain.NotFoundError{Entity: "item", ID: itemID}
		}
		if err != nil {
			return err
		}

		if item.Status != domain.OpenStatus(itemType) {
			return &domain.InvalidStateError{
				Entity: "item",
				ID:     itemID,
				Status: string(item.Status),
				Reason: "item is not available for claiming",
			}
		}

		if err := r.Items.UpdateStatus(ctx, itemType, itemID, domain.StatusPendingClaim); err != nil {
			return err
		}
		return r.Claims.Create(ctx, claim)
	})
	if err != nil {
		return nil, s.coordinatorError("create claim", err, "item_id", itemID, "item_type", itemType, "user_id", userID)
	}

	return claim, nil
}

func (s *claimService) ApproveClaim(ctx context.Context, claimID int32) (*domain.Claim, error) {
	var approved *domain.Claim

	err := s.store.ExecTx(ctx, func(r *postgres.Repositories) error {
		claim, err := r.Claims.GetForUpdate(ctx, claimID)
		if errors.Is(err, sql.ErrNoRows) {
			return &domain.NotFoundError{Entity: "claim", ID: claimID}
		}
		if err != nil {
			return err
		}

		if claim.Status != domain.ClaimStatusPending {
			return &domain.InvalidStateError{
				Entity: "claim",
				ID:     claimID,
				Status: string(claim.Status),
				Reason: "claim is not pending",
			}
		}

		if err := r.Claims.UpdateStatus(ctx, claimID, domain.ClaimStatusApproved); err != nil {
			return err
		}

		if claim.ItemType == domain.ItemTypeFound {
			if err := s.settleFoundClaim(ctx, r, claim); err != nil {
				return err
			}
		} else {
			if err := r.Items.UpdateStatus(ctx, domain.ItemTypeLost, claim.ItemID, domain.ResolvedStatus(domain.ItemTypeLost)); err != nil {
				return err
			}
		}

		claim.Status = domain.ClaimStatusApproved
		approved = claim
		return nil
	})
	if err != nil {
		return nil, s.coordinatorError("approve claim", err, "claim_id", claimID)
	}

	return approved, nil
}

// settleFoundClaim resolves the found item and credits the finder. It runs
// inside the approval transaction; a failed credit rolls everything back.
// A finder who no longer resolves to a user skips the credit only.
func (s *claimService) settleFoundClaim(ctx context.Context, r *postgres.Repositories, claim *domain.Claim) error {
	item, err := r.Items.GetForUpdate(ctx, domain.ItemTypeFound, claim.ItemID)
	if errors.Is(err, sql.ErrNoRows) {
		return &domain.NotFoundError{Entity: "item", ID: claim.ItemID}
	}
	if err != nil {
		return err
	}

	if err := r.Items.UpdateStatus(ctx, domain.ItemTypeFound, claim.ItemID, domain.ResolvedStatus(domain.ItemTypeFound)); err != nil {
		return err
	}

	_, err = r.Users.GetByID(ctx, item.OwnerID)
	if errors.Is(err, sql.ErrNoRows) {
		logger.Warn("finder missing at claim approval, skipping reward credit",
			"claim_id", claim.ID, "item_id", claim.ItemID, "finder_id", item.OwnerID)
		return nil
	}
	if err != nil {
		return err
	}

	return Credit(ctx, r, item.OwnerID, s.rewardAmount, domain.ReasonClaimApproved)
}

func (s *claimService) RejectClaim(ctx context.Context, claimID int32) (*domain.Claim, error) {
	var rejected *domain.Claim

	err := s.store.ExecTx(ctx, func(r *postgres.Repositories) error {
		claim, err := r.Claims.GetForUpdate(ctx, claimID)
		if errors.Is(err, sql.ErrNoRows) {
			return &domain.NotFoundError{Entity: "claim", ID: claimID}
		}
		if err != nil {
			return err
		}

		if claim.Status != domain.ClaimStatusPending {
			return &domain.InvalidStateError{
				Entity: "claim",
				ID:     claimID,
				Status: string(claim.Status),
				Reason: "claim is not pending",
			}
		}

		if err := r.Claims.UpdateStatus(ctx, claimID, domain.ClaimStatusRejected); err != nil {
			return err
		}

		// The rollback edge: the item becomes claimable again.
		if _, err := r.Items.GetForUpdate(ctx, claim.ItemType, claim.ItemID); err != nil {
			return err
		}
		if err := r.Items.UpdateStatus(ctx, claim.ItemType, claim.ItemID, domain.OpenStatus(claim.ItemType)); err != nil {
			return err
		}

		claim.Status = domain.ClaimStatusRejected
		rejected = claim
		return nil
	})
	if err != nil {
		return nil, s.coordinatorError("reject claim", err, "claim_id", claimID)
	}

	return rejected, nil
}

func (s *claimService) ListClaims(ctx context.Context, status domain.ClaimStatus) ([]domain.ClaimDetail, error) {
	claims, err := s.claimRepo.ListByStatus(ctx, status)
	if err != nil {
		return nil, &domain.OperationFailedError{Op: "list claims", Err: err}
	}
	return claims, nil
}

// coordinatorError passes client errors through untouched and normalizes
// everything else to OperationFailed after logging the failing context.
func (s *claimService) coordinatorError(op string, err error, logArgs ...any) error {
	var notFound *domain.NotFoundError
	var invalidState *domain.InvalidStateError
	var validation *domain.ValidationError
	if errors.As(err, &notFound) || errors.As(err, &invalidState) || errors.As(err, &validation) {
		return err
	}

	logger.Error("claim coordinator operation failed", append([]any{"op", op, "error", err}, logArgs...)...)
	return &domain.OperationFailedError{Op: op, Err: err}
}
