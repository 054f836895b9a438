package usecase

import (
	"strconv"
	"strings"

	"github.com/foodinfo/backend/internal/domain"
)

// ParseSearchQuery validates raw search input and produces a SearchQuery.
// The term is trimmed and must be non-empty. Page defaults to 1 when absent;
// a supplied page must parse as an integer >= 1. The page size is always the
// fixed constant and never taken from the caller.
func ParseSearchQuery(term, page string) (domain.SearchQuery, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return domain.SearchQuery{}, domain.ErrInvalidQuery
	}

	pageNum := 1
	if page != "" {
		n, err := parsePositiveInt(page)
		if err != nil {
			return domain.SearchQuery{}, domain.ErrInvalidQuery
		}
		pageNum = int(n)
	}

	return domain.SearchQuery{
		Term:     term,
		Page:     pageNum,
		PageSize: domain.DefaultPageSize,
	}, nil
}

// ParseFdcID validates a raw lookup identifier. FDC IDs are positive integers.
func ParseFdcID(raw string) (int64, error) {
	id, err := parsePositiveInt(strings.TrimSpace(raw))
	if err != nil {
		return 0, domain.ErrInvalidQuery
	}
	return id, nil
}

// parsePositiveInt parses a bare decimal integer >= 1. ParseInt alone would
// also admit sign-prefixed forms like "+7", which are not valid page numbers
// or record identifiers over the wire.
func parsePositiveInt(s string) (int64, error) {
	if strings.HasPrefix(s, "+") || strings.HasPrefix(s, "-") {
		return 0, domain.ErrInvalidQuery
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil || n < 1 {
		return 0, domain.ErrInvalidQuery
	}
	return n, nil
}
