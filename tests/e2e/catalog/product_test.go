//go:build e2e

package catalog_test

import (
	"net/http"
	"testing"

	resdto "merchstore/internal/handler/dto/response"
	"merchstore/tests/common/authtest"
	"merchstore/tests/common/builder"
	"merchstore/tests/common/dbtest"
	"merchstore/tests/common/httptest"
	"merchstore/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

const productsURL = "/api/products"

type catalogSuite struct {
	e2e.SharedSuite
	jwtHelper *authtest.JWTHelper
	brandID   uuid.UUID
}

func TestCatalogSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(catalogSuite))
}

func (s *catalogSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwtHelper = authtest.NewJWTHelper(s.Config.JWT)
	s.brandID = uuid.New()
}

func (s *catalogSuite) adminToken() string {
	return s.jwtHelper.GenerateToken(s.T(), uuid.New(), s.brandID, "admin")
}

func (s *catalogSuite) createProduct(body map[string]any) uuid.UUID {
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, productsURL, body, s.adminToken())
	var res struct {
		ID uuid.UUID `json:"id"`
	}
	httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &res)
	return res.ID
}

func defaultProductBody() map[string]any {
	return map[string]any{
		"name":          "Tour Hoodie",
		"description":   "Limited tour merchandise",
		"price_cents":   4500,
		"published":     true,
		"item_quantity": 10,
	}
}

func (s *catalogSuite) TestProductLifecycle() {
	s.Run("created product is visible with its stock", func() {
		id := s.createProduct(defaultProductBody())

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, productsURL+"/"+id.String(), nil, "")
		var res resdto.ProductResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &res)

		expected := &resdto.ProductResponse{
			Name:           "Tour Hoodie",
			Description:    "Limited tour merchandise",
			PriceCents:     4500,
			Published:      true,
			ItemsAvailable: 10,
			ItemsSold:      0,
			SoldOut:        false,
		}
		opts := []cmp.Option{
			cmpopts.IgnoreFields(resdto.ProductResponse{}, "ID", "BrandID", "CreatedAt", "UpdatedAt"),
		}
		if diff := cmp.Diff(expected, &res, opts...); diff != "" {
			s.T().Errorf("Product response mismatch (-want +got):\n%s", diff)
		}
	})

	s.Run("unpublished product is hidden from the public catalog", func() {
		body := defaultProductBody()
		body["published"] = false
		id := s.createProduct(body)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, productsURL+"/"+id.String(), nil, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "")
	})

	s.Run("update changes price and visibility", func() {
		body := defaultProductBody()
		body["published"] = false
		id := s.createProduct(body)

		update := builder.NewProductBuilder().WithName("Renamed Hoodie").WithPriceCents(9900).BuildUpdateRequestDTO()
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPatch, productsURL+"/"+id.String(), update, s.adminToken())
		s.Equal(http.StatusNoContent, w.Code)

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, productsURL+"/"+id.String(), nil, "")
		var res resdto.ProductResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &res)
		s.Equal("Renamed Hoodie", res.Name)
		s.Equal(int64(9900), res.PriceCents)
	})

	s.Run("destroy drains stock and hides the product", func() {
		id := s.createProduct(defaultProductBody())

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodDelete, productsURL+"/"+id.String(), nil, s.adminToken())
		s.Equal(http.StatusNoContent, w.Code)

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, productsURL+"/"+id.String(), nil, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "")

		s.Equal(int64(0), dbtest.CountItemsByStatus(s.T(), s.DB, id, "available"))
	})

	s.Run("admin routes reject missing tokens", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, productsURL, defaultProductBody(), "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "")
	})

	s.Run("admin routes reject expired tokens", func() {
		expired := s.jwtHelper.CreateExpiredToken(s.T(), uuid.New(), s.brandID, "admin")
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, productsURL, defaultProductBody(), expired)
		httptest.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "")
	})
}

func (s *catalogSuite) TestInventoryAdjustment() {
	s.Run("add items grows available stock", func() {
		id := s.createProduct(defaultProductBody())

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, productsURL+"/"+id.String()+"/items",
			map[string]any{"quantity": 5}, s.adminToken())
		var res resdto.InventoryResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &res)
		s.Equal(int64(15), res.ItemsAvailable)
	})

	s.Run("set inventory converges in both directions", func() {
		id := s.createProduct(defaultProductBody())

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPut, productsURL+"/"+id.String()+"/inventory",
			map[string]any{"items_remaining": 3}, s.adminToken())
		var res resdto.InventoryResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &res)
		s.Equal(int64(3), res.ItemsAvailable)

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodPut, productsURL+"/"+id.String()+"/inventory",
			map[string]any{"items_remaining": 20}, s.adminToken())
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &res)
		s.Equal(int64(20), res.ItemsAvailable)
	})

	s.Run("setting inventory on a missing product fails", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPut, productsURL+"/"+uuid.New().String()+"/inventory",
			map[string]any{"items_remaining": 3}, s.adminToken())
		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "")
	})
}
