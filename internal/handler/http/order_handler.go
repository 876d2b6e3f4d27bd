package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/gearshift-labs/partsdepot/internal/apperror"
	"github.com/gearshift-labs/partsdepot/internal/domain/contract"
	"github.com/gearshift-labs/partsdepot/internal/domain/entity"
	"github.com/gearshift-labs/partsdepot/internal/handler/http/dto"
	"github.com/gearshift-labs/partsdepot/internal/handler/http/middleware"
	"github.com/gearshift-labs/partsdepot/internal/infrastructure/logger"
)

type OrderHandler struct {
	orders contract.IOrderRepository
	log    logger.Logger
}

func NewOrderHandler(orders contract.IOrderRepository, log logger.Logger) *OrderHandler {
	return &OrderHandler{orders: orders, log: log}
}

// GetOrders handles GET /orders
func (h *OrderHandler) GetOrders(c *gin.Context) {
	orders, err := h.orders.GetOrders(c.Request.Context())
	if err != nil {
		h.log.Errorf("fetching orders: %v", err)
		apperror.Respond(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, orders)
}

// GetOrder handles GET /orders/:id
func (h *OrderHandler) GetOrder(c *gin.Context) {
	id := c.Param("id")
	order, err := h.orders.GetOrderByID(c.Request.Context(), id)
	if err != nil {
		apperror.Respond(c, err)
		return
	}
	if order == nil {
		apperror.Respond(c, apperror.NotFound("Order", id))
		return
	}
	SuccessHandler(c, http.StatusOK, order)
}

// CreateOrder handles POST /orders. The ordering user comes from the session;
// every partId was confirmed to exist by the cross-reference stage.
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	rc := middleware.Gate(c)
	var req dto.CreateOrderRequest
	if !BindGate(c, &req) {
		return
	}

	order := entity.Order{
		UserID: rc.Identity.ID,
		Items:  toOrderItems(req.Items),
		Status: req.Status,
	}
	if req.OrderDate != nil {
		order.OrderDate = *req.OrderDate
	}
	id, err := h.orders.CreateOrder(c.Request.Context(), &order)
	if err != nil {
		h.log.Errorf("creating order: %v", err)
		apperror.Respond(c, err)
		return
	}
	CreatedHandler(c, "Order created", id)
}

// UpdateOrder handles PUT /orders/:id
func (h *OrderHandler) UpdateOrder(c *gin.Context) {
	rc := middleware.Gate(c)
	var req dto.UpdateOrderRequest
	if !BindGate(c, &req) {
		return
	}

	updates := make(map[string]any)
	if req.Items != nil {
		updates["items"] = toOrderItems(*req.Items)
	}
	if req.Status != nil {
		updates["status"] = *req.Status
	}

	matched, err := h.orders.UpdateOrderByID(c.Request.Context(), rc.ParamID, updates)
	if err != nil {
		h.log.Errorf("updating order %s: %v", rc.ParamID, err)
		apperror.Respond(c, err)
		return
	}
	if !matched {
		apperror.Respond(c, apperror.NotFound("Order", rc.ParamID))
		return
	}
	MessageHandler(c, http.StatusOK, "Order updated")
}

// DeleteOrder handles DELETE /orders/:id
func (h *OrderHandler) DeleteOrder(c *gin.Context) {
	id := c.Param("id")
	deleted, err := h.orders.DeleteOrderByID(c.Request.Context(), id)
	if err != nil {
		h.log.Errorf("deleting order %s: %v", id, err)
		apperror.Respond(c, err)
		return
	}
	if !deleted {
		apperror.Respond(c, apperror.NotFound("Order", id))
		return
	}
	MessageHandler(c, http.StatusOK, "Order deleted")
}

// toOrderItems converts request line items to entities. The hex values were
// validated by the schema stage, so a parse failure cannot happen here.
func toOrderItems(items []dto.OrderItemRequest) []entity.OrderItem {
	out := make([]entity.OrderItem, 0, len(items))
	for _, it := range items {
		oid, _ := primitive.ObjectIDFromHex(it.PartID)
		out = append(out, entity.OrderItem{PartID: oid, Quantity: it.Quantity})
	}
	return out
}
