package domain

// DefaultPageSize is the fixed number of search results per page.
// Callers cannot override it; paging math assumes this constant.
const DefaultPageSize = 20

// SearchQuery is a validated search request
type SearchQuery struct {
	Term     string
	Page     int
	PageSize int
}

// FoodSummary is a single search hit reduced to the two fields clients need
type FoodSummary struct {
	FdcID       int64  `json:"fdcId"`
	Description string `json:"description"`
}

// SearchPage is one page of simplified search results plus pagination metadata
type SearchPage struct {
	Foods      []FoodSummary `json:"foods"`
	TotalHits  int           `json:"totalHits"`
	PageNumber int           `json:"pageNumber"`
	TotalPages int           `json:"totalPages"`
}

// NutrientProfile holds the five key nutrients. A nil field means the upstream
// record did not carry a usable value for it, which is distinct from zero.
type NutrientProfile struct {
	Calories *float64 `json:"calories,omitempty"`
	Protein  *float64 `json:"protein,omitempty"`
	Fat      *float64 `json:"fat,omitempty"`
	Carbs    *float64 `json:"carbs,omitempty"`
	Fiber    *float64 `json:"fiber,omitempty"`
}

// FoodDetail is the lookup response for a single food record
type FoodDetail struct {
	FdcID       int64           `json:"fdcId"`
	Description string          `json:"description"`
	Nutrients   NutrientProfile `json:"nutrients"`
}

// USDASearchResponse represents the response from the USDA search API
type USDASearchResponse struct {
	Foods       []USDASearchFood `json:"foods"`
	TotalHits   int              `json:"totalHits"`
	CurrentPage int              `json:"currentPage"`
	TotalPages  int              `json:"totalPages"`
}

// USDASearchFood is a single raw search hit from the USDA API
type USDASearchFood struct {
	FdcID                int64  `json:"fdcId"`
	Description          string `json:"description"`
	LowercaseDescription string `json:"lowercaseDescription,omitempty"`
	DataType             string `json:"dataType,omitempty"`
}

// USDAFood represents a full food record from the USDA detail API
type USDAFood struct {
	FdcID       int64          `json:"fdcId"`
	Description string         `json:"description"`
	DataType    string         `json:"dataType,omitempty"`
	Nutrients   []USDANutrient `json:"foodNutrients"`
}

// USDANutrient is a single nutrient entry from USDA data. The API has shipped
// two shapes over time: newer records nest id/name/number under "nutrient" with
// the value in "amount", older ones carry flat nutrientId/nutrientName/value.
// Both sets of fields are decoded; consumers check the nested form first.
type USDANutrient struct {
	Nutrient       *USDANutrientRef `json:"nutrient,omitempty"`
	Amount         Amount           `json:"amount"`
	NutrientID     int              `json:"nutrientId,omitempty"`
	NutrientName   string           `json:"nutrientName,omitempty"`
	NutrientNumber string           `json:"nutrientNumber,omitempty"`
	UnitName       string           `json:"unitName,omitempty"`
	Value          Amount           `json:"value"`
}

// USDANutrientRef identifies a nutrient in the newer USDA response shape
type USDANutrientRef struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Number string `json:"number,omitempty"`
}
