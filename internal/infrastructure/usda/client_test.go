package usda

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/foodinfo/backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testQuery(term string, page int) domain.SearchQuery {
	return domain.SearchQuery{Term: term, Page: page, PageSize: domain.DefaultPageSize}
}

func TestNewClient(t *testing.T) {
	client := NewClient("test-api-key", "https://api.example.com", 0)

	assert.NotNil(t, client)
	assert.Equal(t, "test-api-key", client.apiKey)
	assert.Equal(t, "https://api.example.com", client.baseURL)
	assert.NotNil(t, client.httpClient)
	assert.Equal(t, defaultTimeout, client.httpClient.Timeout)
	assert.NotNil(t, client.rateLimiter)
}

func TestSearchFoods_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/foods/search", r.URL.Path)
		assert.Equal(t, "apple", r.URL.Query().Get("query"))
		assert.Equal(t, "test-api-key", r.URL.Query().Get("api_key"))
		assert.Equal(t, "20", r.URL.Query().Get("pageSize"))
		assert.Equal(t, "1", r.URL.Query().Get("pageNumber"))

		response := domain.USDASearchResponse{
			Foods: []domain.USDASearchFood{
				{FdcID: 1102644, Description: "Apples, red delicious, with skin, raw"},
				{FdcID: 1102645, Description: "Apples, granny smith, with skin, raw"},
			},
			TotalHits: 26790,
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(response)
	}))
	defer server.Close()

	client := NewClient("test-api-key", server.URL, 0)

	result, err := client.SearchFoods(context.Background(), testQuery("apple", 1))

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Len(t, result.Foods, 2)
	assert.Equal(t, int64(1102644), result.Foods[0].FdcID)
	assert.Equal(t, 26790, result.TotalHits)
}

func TestSearchFoods_EmptyResultsIsNotAnError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(domain.USDASearchResponse{Foods: []domain.USDASearchFood{}})
	}))
	defer server.Close()

	client := NewClient("test-api-key", server.URL, 0)

	result, err := client.SearchFoods(context.Background(), testQuery("xyzzy", 1))

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Empty(t, result.Foods)
	assert.Zero(t, result.TotalHits)
}

func TestSearchFoods_UpstreamRejection(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"error": {"code": "API_KEY_INVALID", "message": "An invalid api_key was supplied"}}`))
	}))
	defer server.Close()

	client := NewClient("bad-key", server.URL, 0)

	result, err := client.SearchFoods(context.Background(), testQuery("apple", 1))

	assert.Nil(t, result)
	var statusErr *domain.UpstreamStatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusForbidden, statusErr.StatusCode)
	assert.Equal(t, "An invalid api_key was supplied", statusErr.Message)
}

func TestSearchFoods_MissingAPIKeySkipsNetwork(t *testing.T) {
	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
	}))
	defer server.Close()

	client := NewClient("", server.URL, 0)

	result, err := client.SearchFoods(context.Background(), testQuery("apple", 1))

	assert.Nil(t, result)
	assert.ErrorIs(t, err, domain.ErrMisconfigured)
	assert.Zero(t, hits.Load(), "no request should reach the upstream without a key")
}

func TestSearchFoods_ServerDown(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // refuse connections

	client := NewClient("test-api-key", server.URL, 0)

	result, err := client.SearchFoods(context.Background(), testQuery("apple", 1))

	assert.Nil(t, result)
	assert.ErrorIs(t, err, domain.ErrUpstreamUnavailable)
}

func TestSearchFoods_Timeout(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer func() {
		close(release)
		server.Close()
	}()

	client := NewClient("test-api-key", server.URL, 50*time.Millisecond)

	result, err := client.SearchFoods(context.Background(), testQuery("apple", 1))

	assert.Nil(t, result)
	assert.ErrorIs(t, err, domain.ErrUpstreamUnavailable)
}

func TestSearchFoods_SingleAttempt(t *testing.T) {
	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient("test-api-key", server.URL, 0)

	_, err := client.SearchFoods(context.Background(), testQuery("apple", 1))

	require.Error(t, err)
	assert.Equal(t, int32(1), hits.Load(), "a failed call must not be retried")
}

func TestGetFood_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/food/1102644", r.URL.Path)
		assert.Equal(t, "test-api-key", r.URL.Query().Get("api_key"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"fdcId": 1102644,
			"description": "Apples, red delicious, with skin, raw",
			"foodNutrients": [
				{"nutrient": {"id": 1008, "name": "Energy", "number": "208"}, "amount": 52.0}
			]
		}`))
	}))
	defer server.Close()

	client := NewClient("test-api-key", server.URL, 0)

	food, err := client.GetFood(context.Background(), 1102644)

	require.NoError(t, err)
	require.NotNil(t, food)
	assert.Equal(t, int64(1102644), food.FdcID)
	assert.Equal(t, "Apples, red delicious, with skin, raw", food.Description)
	require.Len(t, food.Nutrients, 1)
	v, ok := food.Nutrients[0].Amount.Float()
	require.True(t, ok)
	assert.Equal(t, 52.0, v)
}

func TestGetFood_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClient("test-api-key", server.URL, 0)

	food, err := client.GetFood(context.Background(), 999999999)

	assert.Nil(t, food)
	assert.ErrorIs(t, err, domain.ErrFoodNotFound)
}

func TestGetFood_RejectionPreservesStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"message": "rate limit exceeded"}`))
	}))
	defer server.Close()

	client := NewClient("test-api-key", server.URL, 0)

	_, err := client.GetFood(context.Background(), 1102644)

	var statusErr *domain.UpstreamStatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusTooManyRequests, statusErr.StatusCode)
	assert.Equal(t, "rate limit exceeded", statusErr.Message)
}

func TestGetFood_MissingAPIKey(t *testing.T) {
	client := NewClient("", "https://api.example.com", 0)

	food, err := client.GetFood(context.Background(), 1102644)

	assert.Nil(t, food)
	assert.ErrorIs(t, err, domain.ErrMisconfigured)
}

func TestGetFood_ContextCancellation(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer func() {
		close(release)
		server.Close()
	}()

	client := NewClient("test-api-key", server.URL, 0)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	_, err := client.GetFood(ctx, 1102644)

	assert.ErrorIs(t, err, domain.ErrUpstreamUnavailable)
}
