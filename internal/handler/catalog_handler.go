package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"vendorhub/internal/errors"
	"vendorhub/internal/service"
)

// CatalogHandler handles per-vendor catalog item endpoints.
type CatalogHandler struct {
	catalogService service.CatalogService
}

// NewCatalogHandler creates a new catalog handler.
func NewCatalogHandler(catalogService service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

func itemInput(c echo.Context) service.CatalogItemInput {
	return service.CatalogItemInput{
		Name:        c.FormValue("name"),
		Price:       c.FormValue("price"),
		Unit:        c.FormValue("unit"),
		Description: c.FormValue("description"),
	}
}

// List godoc
// @Summary List a vendor's catalog items
// @Tags catalog
// @Produce json
// @Param id path string true "Vendor ID"
// @Success 200 {array} model.CatalogItem
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /vendors/{id}/items [get]
func (h *CatalogHandler) List(c echo.Context) error {
	vendorID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid vendor id")
	}

	items, err := h.catalogService.ListByVendor(c.Request().Context(), vendorID)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, items)
}

// Create godoc
// @Summary Add a catalog item to a vendor
// @Description Multipart form: name, price (positive number), unit, optional description and image. The image upload must succeed before the item is written.
// @Tags catalog
// @Accept mpfd
// @Produce json
// @Param id path string true "Vendor ID"
// @Param name formData string true "Item name"
// @Param price formData string true "Price"
// @Param unit formData string true "Unit"
// @Param description formData string false "Description"
// @Param image formData file false "Item photo (JPEG, PNG, or WebP, max 5MB)"
// @Success 201 {object} model.CatalogItem
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 502 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /vendors/{id}/items [post]
func (h *CatalogHandler) Create(c echo.Context) error {
	vendorID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid vendor id")
	}

	image, closeImage, err := formImage(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "unreadable image part")
	}
	defer closeImage()

	item, err := h.catalogService.Create(c.Request().Context(), vendorID, itemInput(c), image)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusCreated, item)
}

// Update godoc
// @Summary Update a catalog item
// @Description Same form as create. Without a new image the existing image URL is preserved.
// @Tags catalog
// @Accept mpfd
// @Produce json
// @Param id path string true "Item ID"
// @Param name formData string true "Item name"
// @Param price formData string true "Price"
// @Param unit formData string true "Unit"
// @Param description formData string false "Description"
// @Param image formData file false "Replacement photo"
// @Success 200 {object} model.CatalogItem
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 502 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /items/{id} [put]
func (h *CatalogHandler) Update(c echo.Context) error {
	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid item id")
	}

	image, closeImage, err := formImage(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "unreadable image part")
	}
	defer closeImage()

	item, err := h.catalogService.Update(c.Request().Context(), itemID, itemInput(c), image)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, item)
}

// Delete godoc
// @Summary Delete a catalog item
// @Description Destructive-action guard: the request must carry confirm=true or it is refused and no delete is issued. There is no undo.
// @Tags catalog
// @Produce json
// @Param id path string true "Item ID"
// @Param confirm query string true "Must be true"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /items/{id} [delete]
func (h *CatalogHandler) Delete(c echo.Context) error {
	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid item id")
	}

	if c.QueryParam("confirm") != "true" {
		return echo.NewHTTPError(http.StatusConflict, errors.ErrorResponse{
			Error: "deletion requires confirmation",
			Code:  "CONFIRMATION_REQUIRED",
		})
	}

	if err := h.catalogService.Delete(c.Request().Context(), itemID); err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{
		"message": "item deleted",
	})
}
