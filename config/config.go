// Package config loads runtime configuration from the environment. The
// resulting Config value is passed explicitly to every constructor that
// needs it; there is no process-wide registry.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	DBHost     string
	DBPort     int
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	HTTPAddr string
	GinMode  string

	// SeedDemoData loads the demo dataset on startup when true.
	SeedDemoData bool

	// Cron specs for the scheduled jobs.
	HeartbeatSpec string
	ReportSpec    string
	ReminderSpec  string
	// HeartbeatURL is the health endpoint pinged by the heartbeat job.
	HeartbeatURL string
}

func Load() Config {
	return Config{
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnvInt("DB_PORT", 5432),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBName:     getEnv("DB_NAME", "crm"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		HTTPAddr: getEnv("HTTP_ADDR", ":8080"),
		GinMode:  getEnv("GIN_MODE", "debug"),

		SeedDemoData: getEnvBool("SEED_DEMO_DATA", false),

		HeartbeatSpec: getEnv("HEARTBEAT_CRON", "*/5 * * * *"),
		ReportSpec:    getEnv("REPORT_CRON", "0 6 * * *"),
		ReminderSpec:  getEnv("REMINDER_CRON", "0 8 * * *"),
		HeartbeatURL:  getEnv("HEARTBEAT_URL", "http://localhost:8080/health"),
	}
}

// DSN builds the postgres connection string.
func (c Config) DSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password='%s' dbname=%s port=%d sslmode=%s",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort, c.DBSSLMode,
	)
}

func getEnv(name, def string) string {
	v := strings.TrimSpace(os.Getenv(name))
	if v == "" {
		return def
	}
	return v
}

func getEnvInt(name string, def int) int {
	v := strings.TrimSpace(os.Getenv(name))
	if v == "" {
		return def
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return i
}

func getEnvBool(name string, def bool) bool {
	v := strings.TrimSpace(os.Getenv(name))
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}
