package usecase

import (
	"context"

	"github.com/foodinfo/backend/internal/domain"
	"github.com/foodinfo/backend/internal/infrastructure/usda"
)

// FoodService answers the two public operations against the USDA API.
// It holds no per-request state: every call builds fresh value objects from
// the upstream payload, so concurrent requests never interact.
type FoodService struct {
	usdaClient domain.USDAClient
}

// NewFoodService creates a new food service with its upstream dependency
func NewFoodService(usdaClient domain.USDAClient) *FoodService {
	return &FoodService{
		usdaClient: usdaClient,
	}
}

// Search runs a validated query against the USDA search endpoint and returns
// one simplified page. An upstream page with no hits is a valid empty result.
// Flow: query -> USDA search -> assemble page
func (s *FoodService) Search(ctx context.Context, query domain.SearchQuery) (*domain.SearchPage, error) {
	if query.Term == "" || query.Page < 1 {
		return nil, domain.ErrInvalidQuery
	}
	if query.PageSize < 1 {
		query.PageSize = domain.DefaultPageSize
	}

	payload, err := s.usdaClient.SearchFoods(ctx, query)
	if err != nil {
		return nil, err
	}

	return BuildSearchPage(query, payload), nil
}

// Lookup fetches a single food record and reduces it to the key nutrients.
// Flow: id -> USDA detail -> normalize nutrients -> assemble detail
func (s *FoodService) Lookup(ctx context.Context, fdcID int64) (*domain.FoodDetail, error) {
	if fdcID < 1 {
		return nil, domain.ErrInvalidQuery
	}

	payload, err := s.usdaClient.GetFood(ctx, fdcID)
	if err != nil {
		return nil, err
	}

	profile := usda.ExtractNutrients(payload)

	return BuildFoodDetail(fdcID, payload, profile), nil
}
