package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Oluwafemi99/alx-backend-graphql-crm/logger"
	orderpkg "github.com/Oluwafemi99/alx-backend-graphql-crm/order"
)

// OrderHandler bundles dependencies for order-related HTTP handlers.
type OrderHandler struct {
	service orderpkg.Service
	log     *logger.Logger
}

// NewOrderHandler constructs an OrderHandler.
func NewOrderHandler(svc orderpkg.Service, log *logger.Logger) *OrderHandler {
	return &OrderHandler{service: svc, log: log}
}

type createOrderPayload struct {
	CustomerID uuid.UUID `json:"customer_id" binding:"required"`
	// An empty list is rejected by the service with a structured failure,
	// not by binding, so the NoProductsSelected contract stays intact.
	ProductIDs []uuid.UUID `json:"product_ids"`
	OrderDate  *time.Time  `json:"order_date"`
}

// CreateOrder creates an order for an existing customer over existing
// products. The total is derived server-side; any total in the payload is
// ignored by construction.
func (h *OrderHandler) CreateOrder() gin.HandlerFunc {
	return func(c *gin.Context) {
		var p createOrderPayload
		if err := c.ShouldBindJSON(&p); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid request payload", "detail": err.Error()})
			return
		}
		created, err := h.service.CreateOrder(c.Request.Context(), orderpkg.CreateOrderRequest{
			CustomerID: p.CustomerID,
			ProductIDs: p.ProductIDs,
			OrderDate:  p.OrderDate,
		})
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{
			"success": true,
			"message": "Order created successfully.",
			"order":   created,
		})
	}
}

// ListOrders lists orders matching the optional filter criteria.
func (h *OrderHandler) ListOrders() gin.HandlerFunc {
	return func(c *gin.Context) {
		var f orderpkg.Filter
		f.CustomerName = c.Query("customer_name")
		f.ProductName = c.Query("product_name")
		f.OrderBy = orderByParam(c)

		var err error
		if f.TotalAmountGte, err = decimalParam(c, "total_amount_gte"); err != nil {
			badParam(c, "total_amount_gte")
			return
		}
		if f.TotalAmountLte, err = decimalParam(c, "total_amount_lte"); err != nil {
			badParam(c, "total_amount_lte")
			return
		}
		if f.OrderDateGte, err = timeParam(c, "order_date_gte"); err != nil {
			badParam(c, "order_date_gte")
			return
		}
		if f.OrderDateLte, err = timeParam(c, "order_date_lte"); err != nil {
			badParam(c, "order_date_lte")
			return
		}
		if f.ProductID, err = uuidParam(c, "product_id"); err != nil {
			badParam(c, "product_id")
			return
		}

		list, err := h.service.ListOrders(c.Request.Context(), f)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"orders": list, "count": len(list)})
	}
}

// GetOrder fetches a single order by id, with its customer and products.
func (h *OrderHandler) GetOrder() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		ord, err := h.service.GetOrder(c.Request.Context(), id)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"order": ord})
	}
}
