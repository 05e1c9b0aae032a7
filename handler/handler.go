// Package api exposes the CRM mutations and queries over JSON/HTTP. The
// handlers only parse requests and shape responses; success, message and
// errors fields from the services are propagated verbatim.
package api

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Oluwafemi99/alx-backend-graphql-crm/apperr"
)

func respondError(c *gin.Context, err error) {
	var ae *apperr.Error
	if errors.As(err, &ae) {
		c.JSON(statusFor(ae.Code), gin.H{"success": false, "message": ae.Message})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "internal error"})
}

func statusFor(code apperr.Code) int {
	switch code {
	case apperr.CodeDuplicateEmail:
		return http.StatusConflict
	case apperr.CodeNotFound, apperr.CodeCustomerNotFound:
		return http.StatusNotFound
	case apperr.CodeStorage:
		return http.StatusInternalServerError
	default:
		return http.StatusBadRequest
	}
}

// query-string parsing helpers shared by the list endpoints

func timeParam(c *gin.Context, name string) (*time.Time, error) {
	v := c.Query(name)
	if v == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func decimalParam(c *gin.Context, name string) (*decimal.Decimal, error) {
	v := c.Query(name)
	if v == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(v)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func intParam(c *gin.Context, name string) (*int, error) {
	v := c.Query(name)
	if v == "" {
		return nil, nil
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return nil, err
	}
	return &i, nil
}

func boolParam(c *gin.Context, name string) (bool, error) {
	v := c.Query(name)
	if v == "" {
		return false, nil
	}
	return strconv.ParseBool(v)
}

func uuidParam(c *gin.Context, name string) (*uuid.UUID, error) {
	v := c.Query(name)
	if v == "" {
		return nil, nil
	}
	id, err := uuid.Parse(v)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func orderByParam(c *gin.Context) []string {
	v := c.Query("order_by")
	if v == "" {
		return nil
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func pathID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid id"})
		return uuid.Nil, false
	}
	return id, true
}

func badParam(c *gin.Context, name string) {
	c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid query parameter: " + name})
}
