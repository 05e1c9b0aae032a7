package main

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/Oluwafemi99/alx-backend-graphql-crm/config"
	customerrepo "github.com/Oluwafemi99/alx-backend-graphql-crm/customer/repository"
	customersvc "github.com/Oluwafemi99/alx-backend-graphql-crm/customer/service"
	api "github.com/Oluwafemi99/alx-backend-graphql-crm/handler"
	"github.com/Oluwafemi99/alx-backend-graphql-crm/logger"
	orderrepo "github.com/Oluwafemi99/alx-backend-graphql-crm/order/repository"
	ordersvc "github.com/Oluwafemi99/alx-backend-graphql-crm/order/service"
	productrepo "github.com/Oluwafemi99/alx-backend-graphql-crm/product/repository"
	productsvc "github.com/Oluwafemi99/alx-backend-graphql-crm/product/service"
	"github.com/Oluwafemi99/alx-backend-graphql-crm/scheduler"
	"github.com/Oluwafemi99/alx-backend-graphql-crm/seed"
)

func main() {
	cfg := config.Load()

	log, err := logger.New(cfg.GinMode)
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to build logger:", err)
		os.Exit(1)
	}
	defer log.Close()

	db := setupDatabase(cfg, log)

	// repositories
	customerRepo := customerrepo.NewGormCustomerRepo(db)
	productRepo := productrepo.NewGormProductRepo(db)
	orderRepo := orderrepo.NewGormOrderRepo(db)

	// services
	customerService := customersvc.NewCustomerService(customerRepo)
	productService := productsvc.NewProductService(productRepo)
	orderService := ordersvc.NewOrderService(orderRepo, customerRepo, productRepo)

	if cfg.SeedDemoData {
		if err := seed.Run(context.Background(), customerService, productService, orderService, log); err != nil {
			log.Fatalw("seeding failed", "error", err)
		}
	}

	// scheduled jobs: heartbeat, report, order reminders
	sched := scheduler.New(customerRepo, orderRepo, cfg, log)
	if err := sched.Start(); err != nil {
		log.Fatalw("failed to start scheduler", "error", err)
	}
	defer sched.Stop()

	// handlers
	customerHandler := api.NewCustomerHandler(customerService, log)
	productHandler := api.NewProductHandler(productService, log)
	orderHandler := api.NewOrderHandler(orderService, log)

	gin.SetMode(cfg.GinMode)
	r := gin.New()
	r.Use(gin.Recovery(), gin.Logger(), cors.Default())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "CRM is alive"})
	})

	v1 := r.Group("/api/v1")
	{
		v1.POST("/customers", customerHandler.CreateCustomer())
		v1.POST("/customers/bulk", customerHandler.BulkCreateCustomers())
		v1.GET("/customers", customerHandler.ListCustomers())
		v1.GET("/customers/:id", customerHandler.GetCustomer())

		v1.POST("/products", productHandler.CreateProduct())
		v1.GET("/products", productHandler.ListProducts())
		v1.GET("/products/:id", productHandler.GetProduct())

		v1.POST("/orders", orderHandler.CreateOrder())
		v1.GET("/orders", orderHandler.ListOrders())
		v1.GET("/orders/:id", orderHandler.GetOrder())
	}

	log.Infow("starting server", "addr", cfg.HTTPAddr)
	if err := r.Run(cfg.HTTPAddr); err != nil {
		log.Fatalw("server exited", "error", err)
	}
}
