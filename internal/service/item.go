package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"retreivo-backend/internal/advisory"
	"retreivo-backend/internal/domain"
	"retreivo-backend/internal/logger"
	"retreivo-backend/internal/repository"
)

type itemService struct {
	itemRepo        repository.ItemRepository
	advisoryClient  AdvisoryClient
	advisoryTimeout time.Duration
}

func NewItemService(itemRepo repository.ItemRepository, advisoryClient AdvisoryClient, advisoryTimeout time.Duration) ItemService {
	return &itemService{
		itemRepo:        itemRepo,
		advisoryClient:  advisoryClient,
		advisoryTimeout: advisoryTimeout,
	}
}

func (s *itemService) ReportItem(ctx context.Context, reporterID int32, itemType domain.ItemType, in ReportItemInput) (*domain.Item, error) {
	if in.Name == "" {
		return nil, &domain.ValidationError{Field: "name", Reason: "is required"}
	}
	if in.Description == "" {
		return nil, &domain.ValidationError{Field: "description", Reason: "is required"}
	}

	item := &domain.Item{
		Type:        itemType,
		OwnerID:     reporterID,
		Name:        in.Name,
		Category:    in.Category,
		Description: in.Description,
		Location:    in.Location,
		Status:      domain.OpenStatus(itemType),
	}
	if in.OccurredDate != "" {
		item.OccurredDate = &in.OccurredDate
	}

	if err := s.itemRepo.Create(ctx, item); err != nil {
		return nil, &domain.OperationFailedError{Op: "report item", Err: err}
	}

	// Advisory submission happens strictly after the insert committed and
	// never affects the outcome of the report.
	go s.submitToAdvisory(item, in.Images)

	return item, nil
}

func (s *itemService) submitToAdvisory(item *domain.Item, images []string) {
	ctx, cancel := context.WithTimeout(context.Background(), s.advisoryTimeout)
	defer cancel()

	desc := advisory.ItemDescriptor{
		ItemID:      item.ID,
		ItemType:    string(item.Type),
		Name:        item.Name,
		Category:    item.Category,
		Description: item.Description,
		Location:    item.Location,
	}
	if item.OccurredDate != nil {
		desc.Date = *item.OccurredDate
	}
	if len(images) > 0 {
		desc.Image = images[0]
	}

	if err := s.advisoryClient.SubmitItem(ctx, desc); err != nil {
		logger.Warn("advisory submission failed", "item_id", item.ID, "item_type", item.Type, "error", err)
	}
}

func (s *itemService) GetStatus(ctx context.Context, itemType domain.ItemType, itemID int32) (domain.ItemStatus, error) {
	item, err := s.itemRepo.GetByID(ctx, itemType, itemID)
	if errors.Is(err, sql.ErrNoRows) {
		return "", &domain.NotFoundError{Entity: "item", ID: itemID}
	}
	if err != nil {
		return "", &domain.OperationFailedError{Op: "get item status", Err: err}
	}
	return item.Status, nil
}

func (s *itemService) ListReports(ctx context.Context, userID int32) (lost, found []domain.Item, err error) {
	lost, found, err = s.itemRepo.ListByOwner(ctx, userID)
	if err != nil {
		return nil, nil, &domain.OperationFailedError{Op: "list reports", Err: err}
	}
	return lost, found, nil
}
