package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	apperrors "vendorhub/internal/errors"
	"vendorhub/internal/model"
	"vendorhub/internal/storage"
)

var testCategories = []string{"Grocery", "Vegetables", "Chicken", "Mutton", "Fish", "Sweet House", "Milk Shop"}

// MockVendorRepository is a mock implementation of VendorRepository.
type MockVendorRepository struct {
	mock.Mock
}

func (m *MockVendorRepository) Create(ctx context.Context, vendor *model.Vendor) error {
	args := m.Called(ctx, vendor)
	return args.Error(0)
}

func (m *MockVendorRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Vendor, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Vendor), args.Error(1)
}

func (m *MockVendorRepository) List(ctx context.Context) ([]model.Vendor, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Vendor), args.Error(1)
}

// MockUploader is a mock implementation of ImageUploader.
type MockUploader struct {
	mock.Mock
}

func (m *MockUploader) Upload(ctx context.Context, f *storage.File, folder string) (string, error) {
	args := m.Called(ctx, f, folder)
	return args.String(0), args.Error(1)
}

func validVendorInput() RegisterVendorInput {
	return RegisterVendorInput{
		ShopName:  "Daily Fresh",
		Location:  "Kukatpally",
		OwnerName: "Kiran",
		Phone:     "9876543210",
		Category:  "Grocery",
	}
}

func TestVendorService_Register_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*RegisterVendorInput)
	}{
		{name: "empty shop name", mutate: func(i *RegisterVendorInput) { i.ShopName = "" }},
		{name: "blank shop name", mutate: func(i *RegisterVendorInput) { i.ShopName = "   " }},
		{name: "empty location", mutate: func(i *RegisterVendorInput) { i.Location = "" }},
		{name: "empty owner name", mutate: func(i *RegisterVendorInput) { i.OwnerName = "" }},
		{name: "empty phone", mutate: func(i *RegisterVendorInput) { i.Phone = "" }},
		{name: "empty category", mutate: func(i *RegisterVendorInput) { i.Category = "" }},
		{name: "category outside list", mutate: func(i *RegisterVendorInput) { i.Category = "Electronics" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockVendorRepository)
			mockUploader := new(MockUploader)
			service := NewVendorService(mockRepo, mockUploader, nil, testCategories)

			input := validVendorInput()
			tt.mutate(&input)

			vendor, err := service.Register(context.Background(), input, nil)

			var validationErr *apperrors.ValidationError
			assert.ErrorAs(t, err, &validationErr)
			assert.Nil(t, vendor)
			// Validation happens before any network call.
			mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
			mockUploader.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestVendorService_Register_NoImage(t *testing.T) {
	mockRepo := new(MockVendorRepository)
	mockUploader := new(MockUploader)
	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Vendor")).Return(nil)

	service := NewVendorService(mockRepo, mockUploader, nil, testCategories)
	vendor, err := service.Register(context.Background(), validVendorInput(), nil)

	assert.NoError(t, err)
	assert.NotNil(t, vendor)
	assert.Equal(t, "Daily Fresh", vendor.ShopName)
	assert.Equal(t, "Kukatpally", vendor.Location)
	assert.Equal(t, "Kiran", vendor.OwnerName)
	assert.Equal(t, "9876543210", vendor.Phone)
	assert.Equal(t, "Grocery", vendor.Category)
	assert.Empty(t, vendor.ImageURL, "vendor without image must have no image url")
	mockUploader.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything)
	mockRepo.AssertExpectations(t)
}

func TestVendorService_Register_WithImage(t *testing.T) {
	mockRepo := new(MockVendorRepository)
	mockUploader := new(MockUploader)
	image := &storage.File{Name: "shop.jpg", ContentType: "image/jpeg", Size: 1024}

	mockUploader.On("Upload", mock.Anything, image, "vendors").
		Return("http://localhost:9000/images/vendors/123_shop.jpg", nil)
	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Vendor")).Return(nil)

	service := NewVendorService(mockRepo, mockUploader, nil, testCategories)
	vendor, err := service.Register(context.Background(), validVendorInput(), image)

	assert.NoError(t, err)
	assert.Equal(t, "http://localhost:9000/images/vendors/123_shop.jpg", vendor.ImageURL)
	mockUploader.AssertExpectations(t)
	mockRepo.AssertExpectations(t)
}

func TestVendorService_Register_UploadFailureAbortsPersist(t *testing.T) {
	mockRepo := new(MockVendorRepository)
	mockUploader := new(MockUploader)
	image := &storage.File{Name: "shop.jpg", ContentType: "image/jpeg", Size: 1024}

	mockUploader.On("Upload", mock.Anything, image, "vendors").
		Return("", &apperrors.UploadError{Err: assert.AnError})

	service := NewVendorService(mockRepo, mockUploader, nil, testCategories)
	vendor, err := service.Register(context.Background(), validVendorInput(), image)

	var uploadErr *apperrors.UploadError
	assert.ErrorAs(t, err, &uploadErr)
	assert.Nil(t, vendor)
	// A failed upload must leave no partial vendor record behind.
	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestVendorService_List(t *testing.T) {
	mockRepo := new(MockVendorRepository)
	expected := []model.Vendor{
		{ShopName: "Green Basket", Category: "Vegetables"},
		{ShopName: "Daily Fresh", Category: "Grocery"},
	}
	mockRepo.On("List", mock.Anything).Return(expected, nil)

	service := NewVendorService(mockRepo, new(MockUploader), nil, testCategories)
	vendors, err := service.List(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, expected, vendors)
	mockRepo.AssertExpectations(t)
}

func sampleVendors() []model.Vendor {
	return []model.Vendor{
		{ShopName: "Daily Fresh", Location: "Kukatpally", OwnerName: "Kiran", Category: "Grocery"},
		{ShopName: "Green Basket", Location: "Madhapur", OwnerName: "Lakshmi", Category: "Vegetables"},
		{ShopName: "Royal Chicken Center", Location: "Ameerpet", OwnerName: "Salim", Category: "Chicken"},
		{ShopName: "Gokul Milk Shop", Location: "Begumpet", OwnerName: "Ravi", Category: "Milk Shop"},
	}
}

func TestFilterVendors(t *testing.T) {
	vendors := sampleVendors()

	tests := []struct {
		name     string
		search   string
		category string
		expected []string
	}{
		{
			name:     "no filters returns everything",
			expected: []string{"Daily Fresh", "Green Basket", "Royal Chicken Center", "Gokul Milk Shop"},
		},
		{
			name:     "category All returns everything",
			category: "All",
			expected: []string{"Daily Fresh", "Green Basket", "Royal Chicken Center", "Gokul Milk Shop"},
		},
		{
			name:     "search matches shop name case-insensitively",
			search:   "daily",
			expected: []string{"Daily Fresh"},
		},
		{
			name:     "search matches location",
			search:   "madhapur",
			expected: []string{"Green Basket"},
		},
		{
			name:     "search matches owner name",
			search:   "SALIM",
			expected: []string{"Royal Chicken Center"},
		},
		{
			name:     "category narrows exactly",
			category: "Grocery",
			expected: []string{"Daily Fresh"},
		},
		{
			name:     "search and category intersect",
			search:   "k",
			category: "Vegetables",
			expected: []string{"Green Basket"},
		},
		{
			name:     "no match",
			search:   "nonexistent",
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterVendors(vendors, tt.search, tt.category)
			names := make([]string, 0, len(got))
			for _, v := range got {
				names = append(names, v.ShopName)
			}
			assert.Equal(t, tt.expected, names)
		})
	}
}

func TestFilterVendors_PredicateOrderCommutes(t *testing.T) {
	vendors := sampleVendors()

	searches := []string{"", "k", "fresh", "nonexistent"}
	categories := []string{"", "All", "Grocery", "Vegetables"}

	for _, search := range searches {
		for _, category := range categories {
			searchFirst := FilterVendors(FilterVendors(vendors, search, ""), "", category)
			categoryFirst := FilterVendors(FilterVendors(vendors, "", category), search, "")
			combined := FilterVendors(vendors, search, category)

			assert.Equal(t, combined, searchFirst, "search=%q category=%q", search, category)
			assert.Equal(t, combined, categoryFirst, "search=%q category=%q", search, category)
		}
	}
}

func TestFilterVendors_Idempotent(t *testing.T) {
	vendors := sampleVendors()

	once := FilterVendors(vendors, "k", "Grocery")
	twice := FilterVendors(once, "k", "Grocery")
	assert.Equal(t, once, twice)
}

func TestFilterVendors_DoesNotMutateInput(t *testing.T) {
	vendors := sampleVendors()
	FilterVendors(vendors, "daily", "Grocery")
	assert.Equal(t, sampleVendors(), vendors)
}
