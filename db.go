package main

import (
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/Oluwafemi99/alx-backend-graphql-crm/config"
	"github.com/Oluwafemi99/alx-backend-graphql-crm/entity"
	"github.com/Oluwafemi99/alx-backend-graphql-crm/logger"
)

func setupDatabase(cfg config.Config, log *logger.Logger) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		log.Fatalw("failed to connect database", "error", err)
	}

	// Migrates the three entity tables plus the order_products join table
	// declared on entity.Order, including the unique index on
	// customers.email that backstops the service-level check.
	if err := db.AutoMigrate(
		&entity.Customer{},
		&entity.Product{},
		&entity.Order{},
	); err != nil {
		log.Fatalw("failed to run migrations", "error", err)
	}
	return db
}
