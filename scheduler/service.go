// Package scheduler runs the periodic CRM jobs: a liveness heartbeat, a
// daily aggregate report and order reminders. Jobs only read through the
// repositories; delivery and retry semantics stay here, outside the core.
package scheduler

import (
	"context"
	"net/http"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/shopspring/decimal"

	"github.com/Oluwafemi99/alx-backend-graphql-crm/config"
	customerpkg "github.com/Oluwafemi99/alx-backend-graphql-crm/customer"
	"github.com/Oluwafemi99/alx-backend-graphql-crm/entity"
	"github.com/Oluwafemi99/alx-backend-graphql-crm/logger"
	orderpkg "github.com/Oluwafemi99/alx-backend-graphql-crm/order"
)

const jobTimeout = 30 * time.Second

// reminderWindow is how far back the reminder job scans for orders.
const reminderWindow = 7 * 24 * time.Hour

// Service owns the cron runner and the job implementations.
type Service struct {
	cron      *cron.Cron
	customers customerpkg.Repository
	orders    orderpkg.Repository
	cfg       config.Config
	log       *logger.Logger
	client    *http.Client
}

func New(customers customerpkg.Repository, orders orderpkg.Repository, cfg config.Config, log *logger.Logger) *Service {
	return &Service{
		cron:      cron.New(),
		customers: customers,
		orders:    orders,
		cfg:       cfg,
		log:       log,
		client:    &http.Client{Timeout: 10 * time.Second},
	}
}

// Start registers the jobs and starts the runner.
func (s *Service) Start() error {
	if _, err := s.cron.AddFunc(s.cfg.HeartbeatSpec, s.heartbeat); err != nil {
		return err
	}
	if _, err := s.cron.AddFunc(s.cfg.ReportSpec, s.report); err != nil {
		return err
	}
	if _, err := s.cron.AddFunc(s.cfg.ReminderSpec, s.remindRecentOrders); err != nil {
		return err
	}
	s.cron.Start()
	return nil
}

// Stop halts scheduling; running jobs finish on the returned context.
func (s *Service) Stop() context.Context {
	return s.cron.Stop()
}

// heartbeat logs liveness and pings the health endpoint.
func (s *Service) heartbeat() {
	s.log.Infow("CRM is alive")
	resp, err := s.client.Get(s.cfg.HeartbeatURL)
	if err != nil {
		s.log.Warnw("heartbeat endpoint check failed", "url", s.cfg.HeartbeatURL, "error", err)
		return
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		s.log.Warnw("heartbeat endpoint unhealthy", "url", s.cfg.HeartbeatURL, "status", resp.StatusCode)
		return
	}
	s.log.Infow("heartbeat endpoint OK", "url", s.cfg.HeartbeatURL)
}

func (s *Service) report() {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	customers, orders, revenue, err := s.reportSnapshot(ctx)
	if err != nil {
		s.log.Errorw("CRM report failed", "error", err)
		return
	}
	s.log.Infow("CRM report",
		"customers", customers,
		"orders", orders,
		"revenue", revenue.StringFixed(2),
	)
}

func (s *Service) reportSnapshot(ctx context.Context) (customers, orders int64, revenue decimal.Decimal, err error) {
	if customers, err = s.customers.Count(ctx); err != nil {
		return 0, 0, decimal.Zero, err
	}
	if orders, err = s.orders.Count(ctx); err != nil {
		return 0, 0, decimal.Zero, err
	}
	if revenue, err = s.orders.TotalRevenue(ctx); err != nil {
		return 0, 0, decimal.Zero, err
	}
	return customers, orders, revenue, nil
}

func (s *Service) remindRecentOrders() {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	list, err := s.recentOrders(ctx)
	if err != nil {
		s.log.Errorw("order reminder scan failed", "error", err)
		return
	}
	for _, o := range list {
		s.log.Infow("order reminder",
			"order_id", o.ID,
			"email", o.Customer.Email,
			"order_date", o.OrderDate,
		)
	}
	s.log.Infow("order reminders processed", "count", len(list))
}

func (s *Service) recentOrders(ctx context.Context) ([]entity.Order, error) {
	cutoff := time.Now().UTC().Add(-reminderWindow)
	return s.orders.List(ctx, orderpkg.Filter{OrderDateGte: &cutoff})
}
