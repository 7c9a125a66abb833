//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"merchstore/internal/handler/api"
	resdto "merchstore/internal/handler/dto/response"
	"merchstore/internal/usecase/commands"
	"merchstore/tests/common/builder"
	"merchstore/tests/common/httptest"
	"merchstore/tests/common/testutil"
	commandsmock "merchstore/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CheckoutHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockCheckoutCommands
	handler      *api.CheckoutHandler
}

func (s *CheckoutHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockCheckoutCommands(s.mockCtrl)
	s.handler = api.NewCheckoutHandler(s.mockCommands)

	s.router.POST("/products/:id/orders", s.handler.Purchase)
}

func (s *CheckoutHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCheckoutHandlerSuite(t *testing.T) {
	suite.Run(t, new(CheckoutHandlerTestSuite))
}

func purchaseBody() map[string]any {
	return map[string]any{
		"email":         "buyer@example.com",
		"quantity":      2,
		"payment_token": "tok_valid",
	}
}

func (s *CheckoutHandlerTestSuite) TestPurchase() {
	productID := uuid.New()
	url := "/products/" + productID.String() + "/orders"

	s.Run("successful purchase returns the order", func() {
		itemIDs := []uuid.UUID{uuid.New(), uuid.New()}
		ord := builder.NewOrderBuilder().WithProductID(productID).WithItemIDs(itemIDs).Build()

		s.mockCommands.EXPECT().
			Purchase(gomock.Any(), commands.PurchaseParams{
				ProductID:    productID,
				Quantity:     2,
				Email:        "buyer@example.com",
				PaymentToken: "tok_valid",
			}).
			Return(ord, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, purchaseBody(), "")

		var res resdto.OrderResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &res)
		s.Equal(ord.ID(), res.ID)
		s.Equal(2, res.Quantity)
	})

	s.Run("command error mapping", func() {
		cases := []struct {
			name       string
			err        error
			expectCode int
		}{
			{name: "missing product", err: commands.ErrProductNotFound, expectCode: http.StatusNotFound},
			{name: "unpublished product", err: commands.ErrUnpublishedProduct, expectCode: http.StatusNotFound},
			{name: "insufficient inventory", err: commands.ErrInsufficientInventory, expectCode: http.StatusUnprocessableEntity},
			{name: "declined payment", err: commands.ErrPaymentFailed, expectCode: http.StatusPaymentRequired},
			{name: "invalid quantity", err: commands.ErrInvalidQuantity, expectCode: http.StatusBadRequest},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().
					Purchase(gomock.Any(), gomock.Any()).
					Return(nil, tc.err)

				w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, purchaseBody(), "")
				httptest.AssertErrorResponse(s.T(), w, tc.expectCode, "")
			})
		}
	})

	s.Run("request validation", func() {
		cases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing email", mutate: testutil.Field("email", nil)},
			{name: "malformed email", mutate: testutil.Field("email", "not-an-email")},
			{name: "zero quantity", mutate: testutil.Field("quantity", 0)},
			{name: "negative quantity", mutate: testutil.Field("quantity", -1)},
			{name: "missing payment token", mutate: testutil.Field("payment_token", nil)},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				body := purchaseBody()
				tc.mutate(body)

				w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
				httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("malformed product id", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/products/not-a-uuid/orders", purchaseBody(), "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "")
	})
}
