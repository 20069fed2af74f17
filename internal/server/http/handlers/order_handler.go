package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/napatr/coffeehouse/internal/domain/model"
	"github.com/napatr/coffeehouse/internal/server/http/dto"
)

// OrderHandler manages order-related endpoints.
type OrderHandler struct {
	facade OrderFacade
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade OrderFacade) *OrderHandler {
	return &OrderHandler{facade: facade}
}

// Create handles POST /orders.
func (h *OrderHandler) Create(c *gin.Context) {
	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request body"})
		return
	}

	order := model.NewOrder{
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		CustomerPhone: req.CustomerPhone,
		TableNumber:   req.TableNumber,
		Notes:         req.Notes,
		OrderType:     model.OrderType(req.OrderType),
		Items:         make([]model.NewOrderItem, 0, len(req.Items)),
	}
	for _, item := range req.Items {
		order.Items = append(order.Items, model.NewOrderItem{
			MenuItemID:          item.MenuItemID,
			Quantity:            item.Quantity,
			SpecialInstructions: item.SpecialInstructions,
		})
	}

	orderID, err := h.facade.PlaceOrder(c.Request.Context(), order)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.CreateOrderResponse{
		Success: true,
		OrderID: orderID,
		Message: "Order placed successfully",
	})
}

// List handles GET /orders.
func (h *OrderHandler) List(c *gin.Context) {
	var filter model.OrderFilter
	if status := c.Query("status"); status != "" {
		s := model.OrderStatus(status)
		filter.Status = &s
	}
	if orderType := c.Query("order_type"); orderType != "" {
		t := model.OrderType(orderType)
		filter.OrderType = &t
	}
	filter.Limit, _ = strconv.Atoi(c.Query("limit"))
	filter.Offset, _ = strconv.Atoi(c.Query("offset"))

	orders, err := h.facade.Orders(c.Request.Context(), filter)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toOrderResponses(orders))
}

// ListByStatus handles GET /orders/status/:status.
func (h *OrderHandler) ListByStatus(c *gin.Context) {
	orders, err := h.facade.OrdersByStatus(c.Request.Context(), c.Param("status"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toOrderResponses(orders))
}

// Get handles GET /orders/:id.
func (h *OrderHandler) Get(c *gin.Context) {
	id, ok := orderID(c)
	if !ok {
		return
	}
	order, err := h.facade.Order(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toOrderResponse(*order))
}

// UpdateStatus handles PATCH /orders/:id/status.
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	id, ok := orderID(c)
	if !ok {
		return
	}
	var req dto.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request body"})
		return
	}

	if err := h.facade.UpdateOrderStatus(c.Request.Context(), id, req.Status, req.ChangedBy, req.Notes); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.UpdateStatusResponse{
		Success: true,
		Message: "Order status updated successfully",
	})
}

// History handles GET /orders/:id/history.
func (h *OrderHandler) History(c *gin.Context) {
	id, ok := orderID(c)
	if !ok {
		return
	}
	history, err := h.facade.OrderHistory(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}

	response := make([]dto.StatusChangeResponse, 0, len(history))
	for _, change := range history {
		response = append(response, dto.StatusChangeResponse{
			ID:        change.ID,
			OrderID:   change.OrderID,
			Status:    string(change.Status),
			ChangedBy: change.ChangedBy,
			Notes:     change.Notes,
			CreatedAt: change.CreatedAt,
		})
	}
	c.JSON(http.StatusOK, response)
}

func orderID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid order id"})
		return 0, false
	}
	return id, true
}

func toOrderResponses(orders []model.Order) []dto.OrderResponse {
	response := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		response = append(response, toOrderResponse(o))
	}
	return response
}

func toOrderResponse(order model.Order) dto.OrderResponse {
	items := make([]dto.OrderItemResponse, 0, len(order.Items))
	for _, item := range order.Items {
		resp := dto.OrderItemResponse{
			ID:                  item.ID,
			OrderID:             item.OrderID,
			MenuItemID:          item.MenuItemID,
			Quantity:            item.Quantity,
			UnitPrice:           item.UnitPrice,
			TotalPrice:          item.TotalPrice,
			SpecialInstructions: item.SpecialInstructions,
			CreatedAt:           item.CreatedAt,
		}
		if item.MenuItem != nil {
			resp.MenuItem = &dto.OrderMenuItemSummary{
				ID:          item.MenuItem.ID,
				Name:        item.MenuItem.Name,
				NameTH:      item.MenuItem.NameTH,
				Description: item.MenuItem.Description,
				Price:       item.MenuItem.Price,
				ImageURL:    item.MenuItem.ImageURL,
				Category: dto.CategoryRef{
					ID:     item.MenuItem.Category.ID,
					Name:   item.MenuItem.Category.Name,
					NameTH: item.MenuItem.Category.NameTH,
				},
			}
		}
		items = append(items, resp)
	}

	return dto.OrderResponse{
		ID:            order.ID,
		CustomerID:    order.CustomerID,
		CustomerName:  order.CustomerName,
		CustomerPhone: order.CustomerPhone,
		TableNumber:   order.TableNumber,
		TotalAmount:   order.TotalAmount,
		Status:        string(order.Status),
		Notes:         order.Notes,
		OrderType:     string(order.OrderType),
		CreatedAt:     order.CreatedAt,
		UpdatedAt:     order.UpdatedAt,
		Items:         items,
	}
}
