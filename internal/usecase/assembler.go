package usecase

import (
	"strings"

	"github.com/foodinfo/backend/internal/domain"
)

// unknownItem substitutes for records the USDA ships without a description
const unknownItem = "Unknown item"

// BuildSearchPage maps a raw USDA search response onto the public page shape.
// Upstream ordering is preserved. Entries without a positive fdcId are
// placeholder artifacts in some documented payloads and are dropped.
// TotalPages is always computed from TotalHits rather than trusted from the
// upstream, and the page number echoes the validated query.
func BuildSearchPage(query domain.SearchQuery, payload *domain.USDASearchResponse) *domain.SearchPage {
	page := &domain.SearchPage{
		Foods:      []domain.FoodSummary{},
		PageNumber: query.Page,
	}
	if payload == nil {
		return page
	}

	for _, food := range payload.Foods {
		if food.FdcID <= 0 {
			continue
		}
		desc := strings.TrimSpace(food.Description)
		if desc == "" {
			desc = strings.TrimSpace(food.LowercaseDescription)
		}
		if desc == "" {
			desc = unknownItem
		}
		page.Foods = append(page.Foods, domain.FoodSummary{
			FdcID:       food.FdcID,
			Description: desc,
		})
	}

	if payload.TotalHits > 0 {
		page.TotalHits = payload.TotalHits
	}
	page.TotalPages = totalPages(page.TotalHits, query.PageSize)

	return page
}

// BuildFoodDetail combines a raw USDA record with its normalized nutrient
// profile. The record's own fdcId wins when present; a blank description is
// replaced with a fixed placeholder instead of failing the lookup.
func BuildFoodDetail(fdcID int64, payload *domain.USDAFood, profile domain.NutrientProfile) *domain.FoodDetail {
	detail := &domain.FoodDetail{
		FdcID:       fdcID,
		Description: unknownItem,
		Nutrients:   profile,
	}
	if payload == nil {
		return detail
	}

	if payload.FdcID > 0 {
		detail.FdcID = payload.FdcID
	}
	if desc := strings.TrimSpace(payload.Description); desc != "" {
		detail.Description = desc
	}

	return detail
}

// totalPages is ceil(hits / size) without touching floats
func totalPages(hits, size int) int {
	if hits <= 0 || size <= 0 {
		return 0
	}
	return (hits + size - 1) / size
}
