//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"merchstore/internal/handler/api"
	resdto "merchstore/internal/handler/dto/response"
	"merchstore/internal/usecase/commands"
	"merchstore/internal/usecase/queries"
	"merchstore/tests/common/builder"
	"merchstore/tests/common/httptest"
	"merchstore/tests/common/testutil"
	commandsmock "merchstore/tests/mock/commands"
	queriesmock "merchstore/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ProductHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockProductCommands
	mockQueries  *queriesmock.MockProductQueries
	handler      *api.ProductHandler
	brandID      uuid.UUID
}

func (s *ProductHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.brandID = uuid.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockProductCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockProductQueries(s.mockCtrl)
	s.handler = api.NewProductHandler(s.mockCommands, s.mockQueries)

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Set("user_id", uuid.New())
		c.Set("brand_id", s.brandID)
		c.Next()
	}

	s.router.GET("/products/:id", s.handler.GetProduct)
	s.router.POST("/products", authMiddleware, s.handler.CreateProduct)
	s.router.PATCH("/products/:id", authMiddleware, s.handler.UpdateProduct)
	s.router.DELETE("/products/:id", authMiddleware, s.handler.DestroyProduct)
}

func (s *ProductHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestProductHandlerSuite(t *testing.T) {
	suite.Run(t, new(ProductHandlerTestSuite))
}

func (s *ProductHandlerTestSuite) TestGetProduct() {
	s.Run("returns the catalog view", func() {
		view := builder.NewProductBuilder().BuildViewQuery()
		s.mockQueries.EXPECT().GetProduct(gomock.Any(), view.ID).Return(view, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/products/"+view.ID.String(), nil, "")

		var res resdto.ProductResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &res)
		s.Equal(view.ID, res.ID)
		s.Equal(view.PriceCents, res.PriceCents)
	})

	s.Run("missing or unpublished product returns 404", func() {
		id := uuid.New()
		s.mockQueries.EXPECT().GetProduct(gomock.Any(), id).Return(nil, queries.ErrProductNotFound)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/products/"+id.String(), nil, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "Product not found")
	})

	s.Run("malformed id returns 400", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/products/not-a-uuid", nil, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "")
	})
}

func (s *ProductHandlerTestSuite) TestCreateProduct() {
	url := "/products"

	createBody := func() map[string]any {
		return map[string]any{
			"name":          "Tour Hoodie",
			"description":   "Limited tour merchandise",
			"price_cents":   4500,
			"published":     true,
			"item_quantity": 10,
		}
	}

	s.Run("creates and returns the new id", func() {
		productID := uuid.New()
		s.mockCommands.EXPECT().
			Create(gomock.Any(), commands.CreateProductParams{
				BrandID:         s.brandID,
				Name:            "Tour Hoodie",
				Description:     "Limited tour merchandise",
				PriceCents:      4500,
				Published:       true,
				InitialQuantity: 10,
			}).
			Return(productID, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, createBody(), "any-token")
		s.Equal(http.StatusCreated, w.Code)
	})

	s.Run("requires authentication", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, createBody(), "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "")
	})

	s.Run("request validation", func() {
		cases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing name", mutate: testutil.Field("name", nil)},
			{name: "missing description", mutate: testutil.Field("description", nil)},
			{name: "negative price", mutate: testutil.Field("price_cents", -1)},
			{name: "negative item quantity", mutate: testutil.Field("item_quantity", -1)},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				body := createBody()
				tc.mutate(body)

				w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "any-token")
				httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "")
			})
		}
	})
}

func (s *ProductHandlerTestSuite) TestDestroyProduct() {
	s.Run("soft-deletes the product", func() {
		id := uuid.New()
		s.mockCommands.EXPECT().Destroy(gomock.Any(), id).Return(nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/products/"+id.String(), nil, "any-token")
		s.Equal(http.StatusNoContent, w.Code)
	})

	s.Run("missing product returns 404", func() {
		id := uuid.New()
		s.mockCommands.EXPECT().Destroy(gomock.Any(), id).Return(commands.ErrProductNotFound)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/products/"+id.String(), nil, "any-token")
		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "")
	})
}
