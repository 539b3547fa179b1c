package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/storefront/internal/apperrors"
	"github.com/SscSPs/storefront/internal/core/domain"
	portssvc "github.com/SscSPs/storefront/internal/core/ports/services"
	"github.com/SscSPs/storefront/internal/dto"
	"github.com/SscSPs/storefront/internal/handlers"
	"github.com/SscSPs/storefront/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

const testCustomerID = "cust-42"

type HandlerTestSuite struct {
	suite.Suite
	router           *gin.Engine
	jwtSecret        string
	mockSubscription *MockSubscriptionService
	mockReview       *MockReviewService
	mockVariant      *MockVariantService
	mockActivity     *MockActivityService
	mockHealth       *MockHealthChecker
}

func TestHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

func (suite *HandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.mockSubscription = new(MockSubscriptionService)
	suite.mockReview = new(MockReviewService)
	suite.mockVariant = new(MockVariantService)
	suite.mockActivity = new(MockActivityService)
	suite.mockHealth = new(MockHealthChecker)

	cfg := &config.Config{JWTSecret: suite.jwtSecret, IsProduction: true}
	container := &portssvc.ServiceContainer{
		Review:       suite.mockReview,
		Subscription: suite.mockSubscription,
		Variant:      suite.mockVariant,
		Activity:     suite.mockActivity,
	}
	handlers.RegisterRoutes(suite.router, cfg, container, handlers.WithHealthChecker(suite.mockHealth))
}

func (suite *HandlerTestSuite) TearDownTest() {
	suite.mockSubscription.AssertExpectations(suite.T())
	suite.mockReview.AssertExpectations(suite.T())
	suite.mockVariant.AssertExpectations(suite.T())
	suite.mockActivity.AssertExpectations(suite.T())
	suite.mockHealth.AssertExpectations(suite.T())
}

// generateTestToken creates a signed JWT for the customer.
func (suite *HandlerTestSuite) generateTestToken(customerID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "storefront-test",
		Subject:   customerID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *HandlerTestSuite) do(method, url string, body any, authenticated bool) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req, err := http.NewRequest(method, url, reader)
	suite.Require().NoError(err)
	req.Header.Set("Content-Type", "application/json")
	if authenticated {
		req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(testCustomerID))
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func sampleSubscription() domain.Subscription {
	next := time.Date(2025, time.March, 4, 0, 0, 0, 0, time.UTC)
	return domain.Subscription{
		ID:              "sub-1",
		Name:            "Coffee Club",
		Status:          domain.StatusActive,
		BillingCycle:    domain.BillingMonthly,
		Price:           decimal.RequireFromString("29.99"),
		Currency:        "USD",
		AutoRenew:       true,
		NextBillingDate: &next,
		Products: []domain.SubscriptionProduct{
			{ID: "line-1", ProductID: "p1", Name: "Beans", Quantity: 2, Price: decimal.RequireFromString("12.5")},
		},
		Discounts:      []domain.Discount{{Code: "WELCOME", Amount: decimal.RequireFromString("5")}},
		TaxAmount:      decimal.RequireFromString("2.40"),
		ShippingAmount: decimal.RequireFromString("4.99"),
	}
}

func (suite *HandlerTestSuite) TestHealth() {
	suite.mockHealth.On("Ping", mock.Anything).Return(nil).Once()
	w := suite.do(http.MethodGet, "/health", nil, false)
	suite.Equal(http.StatusOK, w.Code)

	suite.mockHealth.On("Ping", mock.Anything).Return(apperrors.ErrUpstream).Once()
	w = suite.do(http.MethodGet, "/health", nil, false)
	suite.Equal(http.StatusServiceUnavailable, w.Code)
}

func (suite *HandlerTestSuite) TestProtectedRoutesRequireToken() {
	w := suite.do(http.MethodGet, "/api/v1/subscriptions", nil, false)
	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockSubscription.AssertNotCalled(suite.T(), "ListSubscriptions", mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestListSubscriptions() {
	suite.mockSubscription.On("ListSubscriptions", mock.Anything, testCustomerID).
		Return([]domain.Subscription{sampleSubscription()}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/subscriptions", nil, true)

	suite.Require().Equal(http.StatusOK, w.Code)
	var body dto.ListSubscriptionsResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Require().Len(body.Subscriptions, 1)

	sub := body.Subscriptions[0]
	suite.Equal("green", sub.StatusColor)
	suite.Equal("Active", sub.StatusLabel)
	suite.Equal([]string{"pause", "cancel", "delete"}, sub.AvailableActions)
	suite.Equal("Auto-renew enabled", sub.AutoRenew.Label)
	suite.Equal("Next billing: March 4, 2025", sub.AutoRenew.NextBillingText)
	suite.False(sub.AutoRenew.ToggleTarget)
	suite.Equal(2, sub.ProductCount)
	suite.Equal("12.50", sub.Products[0].Price)
	suite.Equal("29.99", sub.BillingSummary.Subtotal)
	suite.Equal("5.00", sub.BillingSummary.Discounts)
	suite.Equal("32.38", sub.BillingSummary.Total)
}

func (suite *HandlerTestSuite) TestListSubscriptions_UpstreamDown() {
	suite.mockSubscription.On("ListSubscriptions", mock.Anything, testCustomerID).
		Return(nil, apperrors.NewAppError(http.StatusBadGateway, "store API unreachable", apperrors.ErrUpstream)).Once()

	w := suite.do(http.MethodGet, "/api/v1/subscriptions", nil, true)

	suite.Equal(http.StatusBadGateway, w.Code)
	var body dto.ErrorResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal("Failed to load subscriptions", body.Error)
}

func (suite *HandlerTestSuite) TestRefreshSubscriptions() {
	suite.mockSubscription.On("RefreshSubscriptions", mock.Anything, testCustomerID).
		Return([]domain.Subscription{}, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/subscriptions/refresh", nil, true)

	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`{"subscriptions":[]}`, w.Body.String())
}

func (suite *HandlerTestSuite) TestPauseSubscription() {
	sub := sampleSubscription()
	sub.Status = domain.StatusPaused
	result := &domain.ActionResult{
		Action:        domain.ActionPause,
		Subscription:  &sub,
		Subscriptions: []domain.Subscription{sub},
		Notice:        domain.SuccessNotice(domain.ActionPause),
	}
	suite.mockSubscription.On("PauseSubscription", mock.Anything, testCustomerID, "sub-1").Return(result, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/subscriptions/sub-1/pause", nil, true)

	suite.Require().Equal(http.StatusOK, w.Code)
	var body dto.ActionResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal("pause", body.Action)
	suite.Equal(dto.NoticeResponse{Kind: "success", Message: "Subscription paused"}, body.Notice)
	suite.Require().NotNil(body.Subscription)
	suite.Equal([]string{"resume", "cancel", "delete"}, body.Subscription.AvailableActions)
	suite.Len(body.Subscriptions, 1)
}

func (suite *HandlerTestSuite) TestLifecycleFailureCarriesNotice() {
	testCases := []struct {
		path    string
		method  string
		message string
	}{
		{"resume", "ResumeSubscription", "Failed to resume subscription"},
		{"cancel", "CancelSubscription", "Failed to cancel subscription"},
		{"reactivate", "ReactivateSubscription", "Failed to reactivate subscription"},
	}
	for _, tc := range testCases {
		suite.Run(tc.path, func() {
			suite.mockSubscription.On(tc.method, mock.Anything, testCustomerID, "sub-1").
				Return(nil, apperrors.FromStatus(http.StatusInternalServerError, "boom")).Once()

			w := suite.do(http.MethodPost, "/api/v1/subscriptions/sub-1/"+tc.path, nil, true)

			suite.Equal(http.StatusBadGateway, w.Code)
			var body dto.ErrorResponse
			suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
			suite.Require().NotNil(body.Notice)
			suite.Equal("error", body.Notice.Kind)
			suite.Equal(tc.message, body.Notice.Message)
			suite.Equal(tc.message, body.Error)
		})
	}
}

func (suite *HandlerTestSuite) TestSetAutoRenew() {
	result := &domain.ActionResult{Action: domain.ActionAutoRenew, Notice: domain.SuccessNotice(domain.ActionAutoRenew)}
	suite.mockSubscription.On("SetAutoRenew", mock.Anything, testCustomerID, "sub-1", false).Return(result, nil).Once()

	w := suite.do(http.MethodPut, "/api/v1/subscriptions/sub-1/auto-renew", gin.H{"enabled": false}, true)

	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), "Auto-renew setting updated")
}

func (suite *HandlerTestSuite) TestSetAutoRenew_MissingBody() {
	w := suite.do(http.MethodPut, "/api/v1/subscriptions/sub-1/auto-renew", gin.H{}, true)
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestSetAutoRenew_ClientErrorKeepsUpstreamMessage() {
	suite.mockSubscription.On("SetAutoRenew", mock.Anything, testCustomerID, "sub-1", true).
		Return(nil, apperrors.FromStatus(http.StatusConflict, "subscription is cancelled")).Once()

	w := suite.do(http.MethodPut, "/api/v1/subscriptions/sub-1/auto-renew", gin.H{"enabled": true}, true)

	suite.Equal(http.StatusConflict, w.Code)
	var body dto.ErrorResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal("subscription is cancelled", body.Error)
	suite.Equal("Failed to update auto-renew setting", body.Notice.Message)
}

func (suite *HandlerTestSuite) TestCreateSubscription() {
	expected := domain.CreateSubscriptionInput{
		Name:         "Tea Club",
		BillingCycle: domain.BillingWeekly,
		Products:     []domain.SubscriptionLineInput{{ProductID: "p9", Quantity: 1}},
	}
	created := sampleSubscription()
	suite.mockSubscription.On("CreateSubscription", mock.Anything, testCustomerID, expected).
		Return(&domain.ActionResult{Action: domain.ActionCreate, Subscription: &created, Notice: domain.SuccessNotice(domain.ActionCreate)}, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/subscriptions", gin.H{
		"name":         "Tea Club",
		"billingCycle": "weekly",
		"products":     []gin.H{{"productID": "p9"}},
	}, true)

	suite.Equal(http.StatusCreated, w.Code)
}

func (suite *HandlerTestSuite) TestCreateSubscription_InvalidCycle() {
	w := suite.do(http.MethodPost, "/api/v1/subscriptions", gin.H{
		"name":         "Tea Club",
		"billingCycle": "daily",
		"products":     []gin.H{{"productID": "p9"}},
	}, true)
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestProducts() {
	ok := &domain.ActionResult{Action: domain.ActionAddProduct, Notice: domain.SuccessNotice(domain.ActionAddProduct)}
	suite.mockSubscription.On("AddProduct", mock.Anything, testCustomerID, "sub-1", "p2", 0).Return(ok, nil).Once()
	removed := &domain.ActionResult{Action: domain.ActionRemoveProduct, Notice: domain.SuccessNotice(domain.ActionRemoveProduct)}
	suite.mockSubscription.On("RemoveProduct", mock.Anything, testCustomerID, "sub-1", "p1").Return(removed, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/subscriptions/sub-1/products", gin.H{"productID": "p2"}, true)
	suite.Equal(http.StatusOK, w.Code)

	w = suite.do(http.MethodDelete, "/api/v1/subscriptions/sub-1/products/p1", nil, true)
	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), "Product removed from subscription")
}

func (suite *HandlerTestSuite) TestDeleteSubscription() {
	result := &domain.ActionResult{Action: domain.ActionDelete, Subscriptions: []domain.Subscription{}, Notice: domain.SuccessNotice(domain.ActionDelete)}
	suite.mockSubscription.On("DeleteSubscription", mock.Anything, testCustomerID, "sub-1").Return(result, nil).Once()

	w := suite.do(http.MethodDelete, "/api/v1/subscriptions/sub-1", nil, true)

	suite.Equal(http.StatusOK, w.Code)
	var body dto.ActionResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Nil(body.Subscription)
}

func (suite *HandlerTestSuite) TestGetSubscription_NotFound() {
	suite.mockSubscription.On("GetSubscriptionDetails", mock.Anything, testCustomerID, "missing").
		Return(nil, apperrors.FromStatus(http.StatusNotFound, "Not found.")).Once()

	w := suite.do(http.MethodGet, "/api/v1/subscriptions/missing", nil, true)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *HandlerTestSuite) TestGetSubscription() {
	details := &domain.SubscriptionDetails{
		Subscription:   sampleSubscription(),
		RecentActivity: []domain.ActivityEntry{{ID: "a1", Action: domain.ActionPause, Outcome: domain.OutcomeSuccess, Message: "Subscription paused"}},
	}
	suite.mockSubscription.On("GetSubscriptionDetails", mock.Anything, testCustomerID, "sub-1").Return(details, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/subscriptions/sub-1", nil, true)

	suite.Require().Equal(http.StatusOK, w.Code)
	var body dto.SubscriptionDetailsResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal("sub-1", body.Subscription.ID)
	suite.Require().Len(body.RecentActivity, 1)
	suite.Equal("Subscription paused", body.RecentActivity[0].Message)
}

func (suite *HandlerTestSuite) TestConfirmation() {
	suite.mockSubscription.On("ListSubscriptions", mock.Anything, testCustomerID).
		Return([]domain.Subscription{sampleSubscription()}, nil)

	w := suite.do(http.MethodGet, "/api/v1/subscriptions/sub-1/confirmations/delete", nil, true)
	suite.Require().Equal(http.StatusOK, w.Code)
	var body dto.ConfirmationResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.True(body.Required)
	suite.True(body.Destructive)
	suite.Contains(body.Message, "Coffee Club")

	w = suite.do(http.MethodGet, "/api/v1/subscriptions/sub-1/confirmations/resume", nil, true)
	suite.Require().Equal(http.StatusOK, w.Code)
	body = dto.ConfirmationResponse{}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.False(body.Required)

	w = suite.do(http.MethodGet, "/api/v1/subscriptions/sub-1/confirmations/explode", nil, true)
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestListProductReviews() {
	four := 4
	expected := domain.ReviewQuery{Page: 2, PageSize: 5, MinRating: &four, Sort: domain.ReviewSortHighest}
	next := "http://store/v1/reviews/?page=3"
	page := &domain.ReviewPage{Count: 12, Next: &next, Results: []domain.Review{{ID: "r1", Rating: 5, Comment: "Great"}}}
	suite.mockReview.On("GetProductReviews", mock.Anything, "p1", expected).Return(page, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/products/p1/reviews?page=2&page_size=5&min_rating=4&sort=highest", nil, true)

	suite.Require().Equal(http.StatusOK, w.Code)
	var body dto.ListReviewsResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal(12, body.Count)
	suite.True(body.HasNext)
	suite.False(body.HasPrevious)
	suite.Len(body.Reviews, 1)
}

func (suite *HandlerTestSuite) TestListProductReviews_InvalidSort() {
	w := suite.do(http.MethodGet, "/api/v1/products/p1/reviews?sort=random", nil, true)
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestCreateReview() {
	input := domain.CreateReviewInput{ProductID: "p1", Rating: 4, Comment: "Solid"}
	suite.mockReview.On("CreateReview", mock.Anything, testCustomerID, input).
		Return(&domain.Review{ID: "r2", ProductID: "p1", Rating: 4, Comment: "Solid"}, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/products/p1/reviews", gin.H{"rating": 4, "comment": "Solid"}, true)

	suite.Equal(http.StatusCreated, w.Code)
	suite.Contains(w.Body.String(), `"id":"r2"`)
}

func (suite *HandlerTestSuite) TestDeleteReview_Forbidden() {
	suite.mockReview.On("DeleteReview", mock.Anything, testCustomerID, "r1").
		Return(apperrors.FromStatus(http.StatusForbidden, "You do not own this review.")).Once()

	w := suite.do(http.MethodDelete, "/api/v1/reviews/r1", nil, true)

	suite.Equal(http.StatusForbidden, w.Code)
	suite.Contains(w.Body.String(), "You do not own this review.")
}

func (suite *HandlerTestSuite) TestUpstreamUnauthorizedIsBadGateway() {
	suite.mockReview.On("DeleteReview", mock.Anything, testCustomerID, "r1").
		Return(apperrors.FromStatus(http.StatusUnauthorized, "Invalid client credentials.")).Once()

	w := suite.do(http.MethodDelete, "/api/v1/reviews/r1", nil, true)

	suite.Equal(http.StatusBadGateway, w.Code)
	suite.NotContains(w.Body.String(), "Invalid client credentials.")
}

func (suite *HandlerTestSuite) TestLifecycleUpstreamUnauthorizedIsBadGateway() {
	suite.mockSubscription.On("PauseSubscription", mock.Anything, testCustomerID, "sub-1").
		Return(nil, apperrors.FromStatus(http.StatusUnauthorized, "token expired")).Once()

	w := suite.do(http.MethodPost, "/api/v1/subscriptions/sub-1/pause", nil, true)

	suite.Equal(http.StatusBadGateway, w.Code)
	var body dto.ErrorResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal("Failed to pause subscription", body.Error)
	suite.Require().NotNil(body.Notice)
	suite.Equal("Failed to pause subscription", body.Notice.Message)
}

func (suite *HandlerTestSuite) TestListVariants() {
	sale := decimal.RequireFromString("15")
	views := []domain.VariantView{
		domain.NewVariantView(domain.Variant{ID: "v1", Price: decimal.RequireFromString("20"), SalePrice: &sale, Stock: 3}, 5, "/ph.png", "v1"),
	}
	suite.mockVariant.On("GetVariantViews", mock.Anything, "p1", "v1").Return(views, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/products/p1/variants?selected=v1", nil, true)

	suite.Require().Equal(http.StatusOK, w.Code)
	var body dto.ListVariantsResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Require().Len(body.Variants, 1)
	v := body.Variants[0]
	suite.Equal(int64(25), v.DiscountPercent)
	suite.Equal("15.00", v.EffectivePrice)
	suite.Equal("low_stock", v.StockStatus)
	suite.Equal("/ph.png", v.ImageURL)
	suite.True(v.Selected)
	suite.Require().NotNil(v.SalePrice)
}

func (suite *HandlerTestSuite) TestListActivity() {
	token := "tok"
	next := "next"
	page := &domain.ActivityPage{Entries: []domain.ActivityEntry{{ID: "a1"}}, NextToken: &next}
	suite.mockActivity.On("ListActivity", mock.Anything, testCustomerID, 5, &token).Return(page, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/activity?limit=5&next_token=tok", nil, true)

	suite.Require().Equal(http.StatusOK, w.Code)
	var body dto.ListActivityResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Len(body.Entries, 1)
	suite.Equal("next", *body.NextToken)
}

func (suite *HandlerTestSuite) TestListActivity_LimitTooLarge() {
	w := suite.do(http.MethodGet, "/api/v1/activity?limit=500", nil, true)
	suite.Equal(http.StatusBadRequest, w.Code)
}
