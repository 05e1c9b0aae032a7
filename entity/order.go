package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Order links one customer to one or more products. TotalAmount is derived
// from the associated product prices at creation time and is never settable
// by callers. An order row and its order_products rows are written in the
// same transaction, so readers never see an order with zero products.
type Order struct {
	ID          uuid.UUID       `json:"id" gorm:"type:uuid;primaryKey"`
	CustomerID  uuid.UUID       `json:"customer_id" gorm:"type:uuid;index;not null"`
	Customer    Customer        `json:"customer" gorm:"foreignKey:CustomerID"`
	Products    []Product       `json:"products" gorm:"many2many:order_products"`
	OrderDate   time.Time       `json:"order_date" gorm:"index;not null"`
	TotalAmount decimal.Decimal `json:"total_amount" gorm:"type:numeric(20,2);not null"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
	DeletedAt   gorm.DeletedAt  `json:"-" gorm:"index"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}
