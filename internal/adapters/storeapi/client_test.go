package storeapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/SscSPs/storefront/internal/apperrors"
	"github.com/SscSPs/storefront/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := NewClient(Config{BaseURL: srv.URL, Timeout: 5 * time.Second})
	require.NoError(t, err)
	return client
}

func TestNewClient_InvalidBaseURL(t *testing.T) {
	_, err := NewClient(Config{BaseURL: "not a url"})
	assert.Error(t, err)

	_, err = NewClient(Config{BaseURL: "/relative/only"})
	assert.Error(t, err)
}

func TestClient_ErrorMapping(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		sentinel error
		message  string
	}{
		{"not found", http.StatusNotFound, `{"detail":"Not found."}`, apperrors.ErrNotFound, "Not found."},
		{"validation", http.StatusBadRequest, `{"rating":["Ensure this value is less than or equal to 5."]}`, apperrors.ErrValidation, "rating: Ensure this value is less than or equal to 5."},
		{"unprocessable", http.StatusUnprocessableEntity, `{"error":"bad state"}`, apperrors.ErrValidation, "bad state"},
		{"forbidden", http.StatusForbidden, ``, apperrors.ErrUnauthorized, "403 Forbidden"},
		{"server error", http.StatusInternalServerError, `<html>oops</html>`, apperrors.ErrUpstream, "500 Internal Server Error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			_, err := NewReviewsAPI(client).FindReviewByID(context.Background(), "r1")
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.sentinel)

			var appErr *apperrors.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, tt.status, appErr.Code)
			assert.Equal(t, tt.message, appErr.Message)
		})
	}
}

func TestClient_Unreachable(t *testing.T) {
	base, _ := url.Parse("http://127.0.0.1:1")
	client := NewClientWithHTTP(base, &http.Client{Timeout: time.Second})

	_, err := NewProductsAPI(client).ListVariantsByProduct(context.Background(), "p1")
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrUpstream)
	assert.Equal(t, http.StatusBadGateway, apperrors.StatusOf(err))
}

func TestReviewsAPI_FindReviewsByProduct(t *testing.T) {
	var gotQuery url.Values
	var gotPath string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"count":1,"next":null,"previous":null,"results":[{"id":"r1","product_id":"p1","rating":4,"comment":"Good"}]}`))
	})

	minRating, maxRating := 3, 5
	page, err := NewReviewsAPI(client).FindReviewsByProduct(context.Background(), "p1", domain.ReviewQuery{
		Page:      2,
		PageSize:  10,
		MinRating: &minRating,
		MaxRating: &maxRating,
		Sort:      domain.ReviewSortHighest,
	})
	require.NoError(t, err)

	assert.Equal(t, "/v1/reviews/", gotPath)
	assert.Equal(t, "p1", gotQuery.Get("product_id"))
	assert.Equal(t, "2", gotQuery.Get("page"))
	assert.Equal(t, "10", gotQuery.Get("page_size"))
	assert.Equal(t, "3", gotQuery.Get("min_rating"))
	assert.Equal(t, "5", gotQuery.Get("max_rating"))
	assert.Equal(t, "-rating", gotQuery.Get("ordering"))

	assert.Equal(t, 1, page.Count)
	require.Len(t, page.Results, 1)
	assert.Equal(t, 4, page.Results[0].Rating)
}

func TestReviewQueryValues_OmitsUnsetFilters(t *testing.T) {
	v := reviewQueryValues("p9", domain.ReviewQuery{})
	assert.Equal(t, url.Values{"product_id": []string{"p9"}}, v)

	v = reviewQueryValues("p9", domain.ReviewQuery{Sort: "bogus"})
	assert.Empty(t, v.Get("ordering"))
}

func TestReviewsAPI_SaveAndDelete(t *testing.T) {
	var methods []string
	var customer string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		methods = append(methods, r.Method+" "+r.URL.Path)
		customer = r.Header.Get(CustomerHeader)
		switch r.Method {
		case http.MethodPost:
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write([]byte(`{"id":"r9","product_id":"p1","rating":5,"comment":"Great"}`))
		case http.MethodDelete:
			w.WriteHeader(http.StatusNoContent)
		}
	})
	api := NewReviewsAPI(client)

	review, err := api.SaveReview(context.Background(), "cust-1", domain.CreateReviewInput{ProductID: "p1", Rating: 5, Comment: "Great"})
	require.NoError(t, err)
	assert.Equal(t, "r9", review.ID)
	assert.Equal(t, "cust-1", customer)

	require.NoError(t, api.DeleteReview(context.Background(), "cust-1", "r9"))
	assert.Equal(t, []string{"POST /v1/reviews/", "DELETE /v1/reviews/r9/"}, methods)
}
