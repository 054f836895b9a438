package domain

import "context"

// USDAClient defines the interface for interacting with the USDA FoodData Central API
type USDAClient interface {
	SearchFoods(ctx context.Context, query SearchQuery) (*USDASearchResponse, error)
	GetFood(ctx context.Context, fdcID int64) (*USDAFood, error)
}
