package service

import (
	"context"
	"sort"

	"retreivo-backend/internal/advisory"
	"retreivo-backend/internal/domain"
	"retreivo-backend/internal/logger"
	"retreivo-backend/internal/repository"
)

const searchLimit = 20

type searchService struct {
	itemRepo       repository.ItemRepository
	advisoryClient AdvisoryClient
}

func NewSearchService(itemRepo repository.ItemRepository, advisoryClient AdvisoryClient) SearchService {
	return &searchService{
		itemRepo:       itemRepo,
		advisoryClient: advisoryClient,
	}
}

func (s *searchService) Search(ctx context.Context, in SearchInput) ([]domain.SearchResult, string, error) {
	// An image descriptor routes through advisory ranking; anything it
	// cannot serve falls back to the plain database read.
	if in.Image != "" {
		results, err := s.searchWithAdvisory(ctx, in)
		if err == nil && len(results) > 0 {
			return results, "ml_service", nil
		}
		if err != nil {
			logger.Warn("advisory ranking unavailable, falling back to database search", "error", err)
		}
	}

	if in.Query == "" && in.Category == "" && in.Location == "" {
		return nil, "", &domain.ValidationError{Field: "query", Reason: "query, category, or location is required"}
	}

	items, err := s.itemRepo.SearchOpen(ctx, in.Query, in.Category, in.Location, searchLimit)
	if err != nil {
		return nil, "", &domain.OperationFailedError{Op: "search", Err: err}
	}

	results := make([]domain.SearchResult, 0, len(items))
	for _, it := range items {
		results = append(results, domain.SearchResult{Item: it})
	}
	return results, "database", nil
}

func (s *searchService) searchWithAdvisory(ctx context.Context, in SearchInput) ([]domain.SearchResult, error) {
	name := in.ItemName
	if name == "" {
		name = in.Query
	}
	matches, err := s.advisoryClient.RankMatches(ctx, advisory.ItemDescriptor{
		ItemType:    string(domain.ItemTypeLost),
		Name:        name,
		Category:    in.Category,
		Description: in.Description,
		Location:    in.Location,
		Date:        in.Date,
		Image:       in.Image,
	})
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, nil
	}

	ids := make([]int32, 0, len(matches))
	scores := make(map[int32]float64, len(matches))
	for _, m := range matches {
		ids = append(ids, m.ItemID)
		scores[m.ItemID] = m.MatchScore
	}

	items, err := s.itemRepo.GetOpenFoundByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	results := make([]domain.SearchResult, 0, len(items))
	for _, it := range items {
		results = append(results, domain.SearchResult{Item: it, MatchScore: scores[it.ID]})
	}
	sort.Slice(results, func(i, j int) bool {
		return results[i].MatchScore > results[j].MatchScore
	})
	return results, nil
}
