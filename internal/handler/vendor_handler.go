package handler

import (
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"vendorhub/internal/errors"
	"vendorhub/internal/service"
	"vendorhub/internal/storage"
)

// VendorHandler handles vendor registration and listing endpoints.
type VendorHandler struct {
	vendorService service.VendorService
}

// NewVendorHandler creates a new vendor handler.
func NewVendorHandler(vendorService service.VendorService) *VendorHandler {
	return &VendorHandler{vendorService: vendorService}
}

// formImage extracts the optional "image" multipart part. A missing part is
// not an error; the caller receives a nil file. The returned closer must be
// called once the request is handled.
func formImage(c echo.Context) (*storage.File, func(), error) {
	fh, err := c.FormFile("image")
	if err == http.ErrMissingFile {
		return nil, func() {}, nil
	}
	if err != nil {
		// a malformed multipart body must not silently drop the image
		return nil, func() {}, err
	}

	src, err := fh.Open()
	if err != nil {
		return nil, func() {}, err
	}

	file := &storage.File{
		Name:        fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Size:        fh.Size,
		Reader:      src,
	}
	return file, func() { _ = src.Close() }, nil
}

// writeDomainError maps a service error onto the HTTP response, logging
// only unexpected failures (validation outcomes stay out of the log).
func writeDomainError(c echo.Context, err error) error {
	httpErr := errors.MapErrorToHTTP(err)
	if httpErr.StatusCode >= http.StatusInternalServerError {
		log.Printf("%s %s: %v", c.Request().Method, c.Path(), err)
	}
	return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
}

// Register godoc
// @Summary Register a new vendor
// @Description Multipart form: shop_name, location, owner_name, phone, category, optional image. The image upload must succeed before the vendor record is written.
// @Tags vendors
// @Accept mpfd
// @Produce json
// @Param shop_name formData string true "Shop name"
// @Param location formData string true "Location"
// @Param owner_name formData string true "Owner name"
// @Param phone formData string true "Phone number"
// @Param category formData string true "Vendor category"
// @Param image formData file false "Shop/owner photo (JPEG, PNG, or WebP, max 5MB)"
// @Success 201 {object} model.Vendor
// @Failure 400 {object} errors.ErrorResponse
// @Failure 502 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /vendors [post]
func (h *VendorHandler) Register(c echo.Context) error {
	input := service.RegisterVendorInput{
		ShopName:  c.FormValue("shop_name"),
		Location:  c.FormValue("location"),
		OwnerName: c.FormValue("owner_name"),
		Phone:     c.FormValue("phone"),
		Category:  c.FormValue("category"),
	}

	image, closeImage, err := formImage(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "unreadable image part")
	}
	defer closeImage()

	vendor, err := h.vendorService.Register(c.Request().Context(), input, image)
	if err != nil {
		return writeDomainError(c, err)
	}

	return c.JSON(http.StatusCreated, vendor)
}

// List godoc
// @Summary List vendors
// @Description Returns all vendors newest first, optionally narrowed by a free-text search (shop name, location, owner name) and an exact category. Category "All" or empty disables the category filter.
// @Tags vendors
// @Produce json
// @Param search query string false "Search term"
// @Param category query string false "Category filter"
// @Success 200 {array} model.Vendor
// @Failure 500 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /vendors [get]
func (h *VendorHandler) List(c echo.Context) error {
	vendors, err := h.vendorService.List(c.Request().Context())
	if err != nil {
		return writeDomainError(c, err)
	}

	filtered := service.FilterVendors(vendors, c.QueryParam("search"), c.QueryParam("category"))
	return c.JSON(http.StatusOK, filtered)
}
