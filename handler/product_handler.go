package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/Oluwafemi99/alx-backend-graphql-crm/logger"
	productpkg "github.com/Oluwafemi99/alx-backend-graphql-crm/product"
)

// ProductHandler bundles dependencies for product-related HTTP handlers.
type ProductHandler struct {
	service productpkg.Service
	log     *logger.Logger
}

// NewProductHandler constructs a ProductHandler.
func NewProductHandler(svc productpkg.Service, log *logger.Logger) *ProductHandler {
	return &ProductHandler{service: svc, log: log}
}

type productPayload struct {
	Name string `json:"name" binding:"required"`
	// Price accepts a JSON number or string; zero is a valid price, so no
	// required tag here.
	Price decimal.Decimal `json:"price"`
	Stock *int            `json:"stock"`
}

// CreateProduct creates a single product. Stock defaults to 0 when omitted.
func (h *ProductHandler) CreateProduct() gin.HandlerFunc {
	return func(c *gin.Context) {
		var p productPayload
		if err := c.ShouldBindJSON(&p); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid request payload", "detail": err.Error()})
			return
		}
		stock := 0
		if p.Stock != nil {
			stock = *p.Stock
		}
		created, err := h.service.CreateProduct(c.Request.Context(), productpkg.CreateProductRequest{
			Name:  p.Name,
			Price: p.Price,
			Stock: stock,
		})
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{
			"success": true,
			"message": "Product created successfully.",
			"product": created,
		})
	}
}

// ListProducts lists products matching the optional filter criteria.
func (h *ProductHandler) ListProducts() gin.HandlerFunc {
	return func(c *gin.Context) {
		var f productpkg.Filter
		f.Name = c.Query("name")
		f.OrderBy = orderByParam(c)

		var err error
		if f.PriceGte, err = decimalParam(c, "price_gte"); err != nil {
			badParam(c, "price_gte")
			return
		}
		if f.PriceLte, err = decimalParam(c, "price_lte"); err != nil {
			badParam(c, "price_lte")
			return
		}
		if f.StockGte, err = intParam(c, "stock_gte"); err != nil {
			badParam(c, "stock_gte")
			return
		}
		if f.StockLte, err = intParam(c, "stock_lte"); err != nil {
			badParam(c, "stock_lte")
			return
		}
		if f.LowStock, err = boolParam(c, "low_stock"); err != nil {
			badParam(c, "low_stock")
			return
		}

		list, err := h.service.ListProducts(c.Request.Context(), f)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"products": list, "count": len(list)})
	}
}

// GetProduct fetches a single product by id.
func (h *ProductHandler) GetProduct() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		prod, err := h.service.GetProduct(c.Request.Context(), id)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"product": prod})
	}
}
