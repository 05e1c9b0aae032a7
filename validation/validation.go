// Package validation holds the stateless field checks run before every
// write. Functions here never touch the store; referential checks live in
// the services that own the corresponding repositories.
package validation

import (
	"net/mail"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Oluwafemi99/alx-backend-graphql-crm/apperr"
)

// Accepted shapes: +<10-15 digits>, DDD-DDD-DDDD, or a bare 10-15 digit run.
var phonePattern = regexp.MustCompile(`^(\+\d{10,15}|\d{3}-\d{3}-\d{4}|\d{10,15})$`)

// Customer checks the field-level rules for a customer record. A nil or
// empty phone is valid; any other shape must match phonePattern.
func Customer(name, email string, phone *string) *apperr.Error {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(email) == "" {
		return apperr.New(apperr.CodeMissingRequiredFields, "Missing required fields.")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return apperr.NewField(apperr.CodeInvalidEmailFormat, "email", "Invalid email format.")
	}
	if phone != nil && *phone != "" && !phonePattern.MatchString(*phone) {
		return apperr.New(apperr.CodeInvalidPhoneFormat, "Invalid phone format.")
	}
	return nil
}

// Product checks the numeric bounds for a product record.
func Product(price decimal.Decimal, stock int) *apperr.Error {
	if price.IsNegative() {
		return apperr.NewField(apperr.CodeInvalidNumericField, "price", "Price must be non-negative.")
	}
	if stock < 0 {
		return apperr.NewField(apperr.CodeInvalidNumericField, "stock", "Stock must be non-negative.")
	}
	return nil
}
