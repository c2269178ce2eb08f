package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Config carries everything the core needs injected. Nothing outside Load reads
// the environment, so tax defaults and attendance policy are always explicit.
type Config struct {
	Port          string
	LedgerBaseURL string

	// Live reconciliation cadence for the current-month view.
	PollInterval time.Duration

	// Salary policy defaults, overridable per company upstream.
	WorkingDayMinutes  int  // minutes in one working day, default 480 (8h)
	DefaultWorkingDays int  // fallback when a record carries none, default 26
	FixedLatePenalty   bool // apply late deduction to fixed-salary employees

	// Invoicing defaults.
	DefaultVATRate decimal.Decimal

	RedisAddr    string
	KafkaBrokers []string
}

func Load() Config {
	cfg := Config{
		Port:               getEnv("PORT", "3000"),
		LedgerBaseURL:      getEnv("LEDGER_BASE_URL", "http://localhost:8001/api"),
		PollInterval:       getDuration("LIVE_POLL_INTERVAL", 2*time.Second),
		WorkingDayMinutes:  getInt("WORKING_DAY_MINUTES", 480),
		DefaultWorkingDays: getInt("DEFAULT_WORKING_DAYS", 26),
		FixedLatePenalty:   getBool("FIXED_SALARY_LATE_PENALTY", false),
		DefaultVATRate:     getDecimal("DEFAULT_VAT_RATE", decimal.NewFromInt(18)),
		RedisAddr:          getEnv("REDIS_ADDR", "localhost:6379"),
	}

	if brokers := os.Getenv("KAFKA_BROKERS"); brokers != "" {
		cfg.KafkaBrokers = strings.Split(brokers, ",")
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			return d
		}
	}
	return fallback
}

func getDecimal(key string, fallback decimal.Decimal) decimal.Decimal {
	if v := os.Getenv(key); v != "" {
		if d, err := decimal.NewFromString(v); err == nil {
			return d
		}
	}
	return fallback
}
