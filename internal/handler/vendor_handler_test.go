package handler

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"vendorhub/internal/model"
	"vendorhub/internal/service"
	"vendorhub/internal/storage"
)

// MockVendorService is a mock implementation of service.VendorService.
type MockVendorService struct {
	mock.Mock
}

func (m *MockVendorService) Register(ctx context.Context, input service.RegisterVendorInput, image *storage.File) (*model.Vendor, error) {
	args := m.Called(ctx, input, image)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Vendor), args.Error(1)
}

func (m *MockVendorService) List(ctx context.Context) ([]model.Vendor, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Vendor), args.Error(1)
}

func vendorForm(t *testing.T) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	fields := map[string]string{
		"shop_name":  "Daily Fresh",
		"location":   "Kukatpally",
		"owner_name": "Kiran",
		"phone":      "9876543210",
		"category":   "Grocery",
	}
	for k, v := range fields {
		assert.NoError(t, w.WriteField(k, v))
	}
	assert.NoError(t, w.Close())
	return body, w.FormDataContentType()
}

func TestVendorHandler_Register_WithoutImagePart(t *testing.T) {
	mockService := new(MockVendorService)
	mockService.On("Register", mock.Anything, mock.AnythingOfType("service.RegisterVendorInput"), (*storage.File)(nil)).
		Return(&model.Vendor{ShopName: "Daily Fresh"}, nil)
	h := NewVendorHandler(mockService)

	body, contentType := vendorForm(t)
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/vendors", body)
	req.Header.Set(echo.HeaderContentType, contentType)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Register(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)
	mockService.AssertExpectations(t)
}

func TestVendorHandler_Register_MalformedImagePart(t *testing.T) {
	mockService := new(MockVendorService)
	h := NewVendorHandler(mockService)

	// A multipart content type with a body that does not parse: the request
	// claimed an image but it cannot be read, so it must be rejected rather
	// than registered without its image.
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/vendors", strings.NewReader("not a multipart body"))
	req.Header.Set(echo.HeaderContentType, "multipart/form-data; boundary=deadbeef")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Register(c)

	httpErr, ok := err.(*echo.HTTPError)
	if assert.True(t, ok) {
		assert.Equal(t, http.StatusBadRequest, httpErr.Code)
	}
	mockService.AssertNotCalled(t, "Register", mock.Anything, mock.Anything, mock.Anything)
}
