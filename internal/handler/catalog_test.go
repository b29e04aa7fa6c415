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
)

type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) Sync(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockCatalogService) Load(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCatalogService) Find(name string) (*domain.Container, error) {
	args := m.Called(name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Container), args.Error(1)
}

func (m *MockCatalogService) List() map[domain.ContainerType][]string {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(map[domain.ContainerType][]string)
}

func TestHandleListContainers(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockSvc := new(MockCatalogService)
		mockSvc.On("List").Return(map[domain.ContainerType][]string{
			domain.ContainerCase:     {"梦魇武器箱", "光谱武器箱"},
			domain.ContainerSouvenir: {"2021 纪念包"},
		})

		req := httptest.NewRequest(http.MethodGet, "/api/v1/case/list", nil)
		w := httptest.NewRecorder()

		HandleListContainers(mockSvc)(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Data map[string][]string `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, []string{"梦魇武器箱", "光谱武器箱"}, resp.Data[string(domain.ContainerCase)])
	})

	t.Run("Empty catalog", func(t *testing.T) {
		mockSvc := new(MockCatalogService)
		mockSvc.On("List").Return(map[domain.ContainerType][]string{})

		req := httptest.NewRequest(http.MethodGet, "/api/v1/case/list", nil)
		w := httptest.NewRecorder()

		HandleListContainers(mockSvc)(w, req)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})
}

func TestHandleSyncCatalog(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockSvc := new(MockCatalogService)
		mockSvc.On("Sync", mock.Anything).Return(42, nil)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/sync", nil)
		w := httptest.NewRecorder()

		HandleSyncCatalog(mockSvc)(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Data SyncResponse `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, 42, resp.Data.Containers)
		mockSvc.AssertExpectations(t)
	})

	t.Run("Upstream failure", func(t *testing.T) {
		mockSvc := new(MockCatalogService)
		mockSvc.On("Sync", mock.Anything).Return(0, domain.ErrUpstreamFetch)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/sync", nil)
		w := httptest.NewRecorder()

		HandleSyncCatalog(mockSvc)(w, req)

		assert.Equal(t, http.StatusBadGateway, w.Code)
	})
}
