package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"vendorhub/internal/model"
	"vendorhub/internal/service"
	"vendorhub/internal/storage"
)

// MockCatalogService is a mock implementation of service.CatalogService.
type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) ListByVendor(ctx context.Context, vendorID uuid.UUID) ([]model.CatalogItem, error) {
	args := m.Called(ctx, vendorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.CatalogItem), args.Error(1)
}

func (m *MockCatalogService) Create(ctx context.Context, vendorID uuid.UUID, input service.CatalogItemInput, image *storage.File) (*model.CatalogItem, error) {
	args := m.Called(ctx, vendorID, input, image)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CatalogItem), args.Error(1)
}

func (m *MockCatalogService) Update(ctx context.Context, itemID uuid.UUID, input service.CatalogItemInput, image *storage.File) (*model.CatalogItem, error) {
	args := m.Called(ctx, itemID, input, image)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CatalogItem), args.Error(1)
}

func (m *MockCatalogService) Delete(ctx context.Context, itemID uuid.UUID) error {
	args := m.Called(ctx, itemID)
	return args.Error(0)
}

func deleteContext(t *testing.T, target string, itemID uuid.UUID) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodDelete, target, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/items/:id")
	c.SetParamNames("id")
	c.SetParamValues(itemID.String())
	return c, rec
}

func TestCatalogHandler_Delete_WithoutConfirmation(t *testing.T) {
	itemID := uuid.New()
	mockService := new(MockCatalogService)
	h := NewCatalogHandler(mockService)

	c, _ := deleteContext(t, "/items/"+itemID.String(), itemID)
	err := h.Delete(c)

	httpErr, ok := err.(*echo.HTTPError)
	if assert.True(t, ok) {
		assert.Equal(t, http.StatusConflict, httpErr.Code)
	}
	// The guard must prevent the delete from ever being issued.
	mockService.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestCatalogHandler_Delete_Confirmed(t *testing.T) {
	itemID := uuid.New()
	mockService := new(MockCatalogService)
	mockService.On("Delete", mock.Anything, itemID).Return(nil)
	h := NewCatalogHandler(mockService)

	c, rec := deleteContext(t, "/items/"+itemID.String()+"?confirm=true", itemID)
	err := h.Delete(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	mockService.AssertExpectations(t)
}

func TestCatalogHandler_Delete_InvalidID(t *testing.T) {
	mockService := new(MockCatalogService)
	h := NewCatalogHandler(mockService)

	e := echo.New()
	req := httptest.NewRequest(http.MethodDelete, "/items/not-a-uuid?confirm=true", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/items/:id")
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	err := h.Delete(c)

	httpErr, ok := err.(*echo.HTTPError)
	if assert.True(t, ok) {
		assert.Equal(t, http.StatusBadRequest, httpErr.Code)
	}
	mockService.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}
