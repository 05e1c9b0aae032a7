package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	customerpkg "github.com/Oluwafemi99/alx-backend-graphql-crm/customer"
	"github.com/Oluwafemi99/alx-backend-graphql-crm/logger"
)

// CustomerHandler bundles dependencies for customer-related HTTP handlers.
type CustomerHandler struct {
	service customerpkg.Service
	log     *logger.Logger
}

// NewCustomerHandler constructs a CustomerHandler.
func NewCustomerHandler(svc customerpkg.Service, log *logger.Logger) *CustomerHandler {
	return &CustomerHandler{service: svc, log: log}
}

// Presence and format rules live in the service layer so failures come
// back as structured results, not transport-level binding errors.
type customerPayload struct {
	Name  string  `json:"name"`
	Email string  `json:"email"`
	Phone *string `json:"phone"`
}

type bulkCustomersPayload struct {
	Customers []customerPayload `json:"customers"`
}

// CreateCustomer creates a single customer.
func (h *CustomerHandler) CreateCustomer() gin.HandlerFunc {
	return func(c *gin.Context) {
		var p customerPayload
		if err := c.ShouldBindJSON(&p); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid request payload", "detail": err.Error()})
			return
		}
		created, err := h.service.CreateCustomer(c.Request.Context(), customerpkg.CreateCustomerRequest{
			Name:  p.Name,
			Email: p.Email,
			Phone: p.Phone,
		})
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{
			"success":  true,
			"message":  "Customer created successfully.",
			"customer": created,
		})
	}
}

// BulkCreateCustomers creates many customers in one transaction with
// per-record error capture. Both lists are always present in the response.
func (h *CustomerHandler) BulkCreateCustomers() gin.HandlerFunc {
	return func(c *gin.Context) {
		var p bulkCustomersPayload
		if err := c.ShouldBindJSON(&p); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid request payload", "detail": err.Error()})
			return
		}
		reqs := make([]customerpkg.CreateCustomerRequest, 0, len(p.Customers))
		for _, rec := range p.Customers {
			reqs = append(reqs, customerpkg.CreateCustomerRequest{
				Name:  rec.Name,
				Email: rec.Email,
				Phone: rec.Phone,
			})
		}
		res, err := h.service.BulkCreateCustomers(c.Request.Context(), reqs)
		if err != nil {
			respondError(c, err)
			return
		}
		if len(res.Errors) > 0 {
			h.log.Warnw("bulk customer create finished with record errors",
				"created", len(res.Created), "errors", len(res.Errors))
		}
		c.JSON(http.StatusOK, gin.H{
			"created_customers": res.Created,
			"errors":            res.Errors,
		})
	}
}

// ListCustomers lists customers matching the optional filter criteria.
func (h *CustomerHandler) ListCustomers() gin.HandlerFunc {
	return func(c *gin.Context) {
		var f customerpkg.Filter
		f.Name = c.Query("name")
		f.Email = c.Query("email")
		f.PhonePattern = c.Query("phone_pattern")
		f.OrderBy = orderByParam(c)

		var err error
		if f.CreatedAtGte, err = timeParam(c, "created_at_gte"); err != nil {
			badParam(c, "created_at_gte")
			return
		}
		if f.CreatedAtLte, err = timeParam(c, "created_at_lte"); err != nil {
			badParam(c, "created_at_lte")
			return
		}

		list, err := h.service.ListCustomers(c.Request.Context(), f)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"customers": list, "count": len(list)})
	}
}

// GetCustomer fetches a single customer by id.
func (h *CustomerHandler) GetCustomer() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		cust, err := h.service.GetCustomer(c.Request.Context(), id)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"customer": cust})
	}
}
