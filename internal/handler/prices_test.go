package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/luooka/casebot/internal/domain"
	"github.com/luooka/casebot/internal/pricing"
)

type MockPricingService struct {
	mock.Mock
}

func (m *MockPricingService) Lookup(ctx context.Context, name string) (*pricing.Quote, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*pricing.Quote), args.Error(1)
}

func TestHandleGetPrice(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockSvc := new(MockPricingService)
		mockSvc.On("Lookup", mock.Anything, "爪子刀").Return(&pricing.Quote{
			Name: "（★）爪子刀（★） | 多普勒 (崭新出厂)",
			Buff: "12000",
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/prices?name=%E7%88%AA%E5%AD%90%E5%88%80", nil)
		w := httptest.NewRecorder()

		HandleGetPrice(mockSvc)(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Data pricing.Quote `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "12000", resp.Data.Buff)
		mockSvc.AssertExpectations(t)
	})

	t.Run("Missing name", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/prices", nil)
		w := httptest.NewRecorder()

		HandleGetPrice(new(MockPricingService))(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("No match", func(t *testing.T) {
		mockSvc := new(MockPricingService)
		mockSvc.On("Lookup", mock.Anything, "nothing").Return(nil, domain.ErrItemNotFound)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/prices?name=nothing", nil)
		w := httptest.NewRecorder()

		HandleGetPrice(mockSvc)(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Upstream failure", func(t *testing.T) {
		mockSvc := new(MockPricingService)
		mockSvc.On("Lookup", mock.Anything, "ak").Return(nil, domain.ErrUpstreamFetch)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/prices?name=ak", nil)
		w := httptest.NewRecorder()

		HandleGetPrice(mockSvc)(w, req)

		assert.Equal(t, http.StatusBadGateway, w.Code)
	})
}
