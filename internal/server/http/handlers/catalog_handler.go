package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/napatr/coffeehouse/internal/domain/model"
	"github.com/napatr/coffeehouse/internal/server/http/dto"
)

// CatalogHandler serves the read-only menu and category endpoints.
type CatalogHandler struct {
	facade CatalogFacade
}

// NewCatalogHandler constructs CatalogHandler.
func NewCatalogHandler(facade CatalogFacade) *CatalogHandler {
	return &CatalogHandler{facade: facade}
}

// Categories handles GET /categories.
func (h *CatalogHandler) Categories(c *gin.Context) {
	categories, err := h.facade.Categories(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	response := make([]dto.CategoryResponse, 0, len(categories))
	for _, category := range categories {
		response = append(response, toCategoryResponse(category))
	}
	c.JSON(http.StatusOK, response)
}

// Menu handles GET /menu. Unavailable items are hidden unless
// available_only=false is passed.
func (h *CatalogHandler) Menu(c *gin.Context) {
	filter := model.MenuFilter{AvailableOnly: c.Query("available_only") != "false"}
	if raw := c.Query("category_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid category id"})
			return
		}
		filter.CategoryID = &id
	}

	items, err := h.facade.MenuItems(c.Request.Context(), filter)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toMenuItemResponses(items))
}

// Popular handles GET /menu/popular.
func (h *CatalogHandler) Popular(c *gin.Context) {
	items, err := h.facade.PopularMenuItems(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toMenuItemResponses(items))
}

// MenuItem handles GET /menu/:id.
func (h *CatalogHandler) MenuItem(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid menu item id"})
		return
	}

	item, err := h.facade.MenuItem(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toMenuItemResponse(*item))
}

func toMenuItemResponses(items []model.MenuItem) []dto.MenuItemResponse {
	response := make([]dto.MenuItemResponse, 0, len(items))
	for _, item := range items {
		response = append(response, toMenuItemResponse(item))
	}
	return response
}

func toMenuItemResponse(item model.MenuItem) dto.MenuItemResponse {
	resp := dto.MenuItemResponse{
		ID:          item.ID,
		Name:        item.Name,
		NameTH:      item.NameTH,
		Description: item.Description,
		Price:       item.Price,
		ImageURL:    item.ImageURL,
		CategoryID:  item.CategoryID,
		IsPopular:   item.IsPopular,
		IsHot:       item.IsHot,
		IsAvailable: item.IsAvailable,
	}
	if item.Category != nil {
		category := toCategoryResponse(*item.Category)
		resp.Category = &category
	}
	return resp
}

func toCategoryResponse(category model.Category) dto.CategoryResponse {
	return dto.CategoryResponse{
		ID:          category.ID,
		Name:        category.Name,
		NameTH:      category.NameTH,
		Description: category.Description,
		CreatedAt:   category.CreatedAt,
		UpdatedAt:   category.UpdatedAt,
	}
}
