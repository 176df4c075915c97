package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
)

type Config struct {
	Port      string
	JWTSecret string

	DBHost       string
	DBPort       string
	DBUser       string
	DBPassword   string
	DBName       string
	DBSSLMode    string
	DBMaxRetries int

	RedisAddr string
	RedisDB   int

	KafkaBroker  string
	KafkaGroupID string

	Policy    Policy
	RateLimit RateLimit

	ReconcileCron string
}

// Policy holds the engine's business thresholds.
type Policy struct {
	LeaveMaxSpanDays   int
	LeaveMinNoticeDays int
	WFHMaxSpanDays     int
	WFHMinNoticeDays   int

	EscalationThreshold time.Duration
	ExecutiveFallbackID string
	MaxHierarchyDepth   int

	NotificationRetentionDays int
	AuditRetentionMonths      int
	CancelledRetentionDays    int
	ArchiveAfterMonths        int
}

type RateLimit struct {
	Backend       string // memory | redis
	Window        time.Duration
	SubmitBudget  int
	ApproveBudget int
	CancelBudget  int
	IPPerSecond   float64
	IPBurst       int
}

func getenv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func getint(k string, d int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return d
}

func getduration(k string, d time.Duration) time.Duration {
	if v := os.Getenv(k); v != "" {
		if n, err := time.ParseDuration(v); err == nil {
			return n
		}
	}
	return d
}

func getfloat(k string, d float64) float64 {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.ParseFloat(v, 64); err == nil {
			return n
		}
	}
	return d
}

func Load() *Config {
	return &Config{
		Port:      getenv("PORT", "3000"),
		JWTSecret: os.Getenv("JWT_SECRET"),

		DBHost:       getenv("DB_HOST", "localhost"),
		DBPort:       getenv("DB_PORT", "5432"),
		DBUser:       getenv("DB_USER", "postgres"),
		DBPassword:   os.Getenv("DB_PASSWORD"),
		DBName:       getenv("DB_NAME", "go_leave"),
		DBSSLMode:    getenv("DB_SSLMODE", "disable"),
		DBMaxRetries: getint("DB_MAX_RETRIES", 5),

		RedisAddr: getenv("REDIS_ADDR", "localhost:6379"),
		RedisDB:   getint("REDIS_DB", 0),

		KafkaBroker:  os.Getenv("KAFKA_BROKER"),
		KafkaGroupID: getenv("KAFKA_GROUP_ID", "go-leave-balance-provisioning"),

		Policy: Policy{
			LeaveMaxSpanDays:   getint("LEAVE_MAX_SPAN_DAYS", 30),
			LeaveMinNoticeDays: getint("LEAVE_MIN_NOTICE_DAYS", 2),
			WFHMaxSpanDays:     getint("WFH_MAX_SPAN_DAYS", 30),
			WFHMinNoticeDays:   getint("WFH_MIN_NOTICE_DAYS", 0),

			EscalationThreshold: getduration("ESCALATION_THRESHOLD", 72*time.Hour),
			ExecutiveFallbackID: os.Getenv("ESCALATION_EXECUTIVE_ID"),
			MaxHierarchyDepth:   getint("MAX_HIERARCHY_DEPTH", 5),

			NotificationRetentionDays: getint("NOTIFICATION_RETENTION_DAYS", 30),
			AuditRetentionMonths:      getint("AUDIT_RETENTION_MONTHS", 6),
			CancelledRetentionDays:    getint("CANCELLED_RETENTION_DAYS", 90),
			ArchiveAfterMonths:        getint("ARCHIVE_AFTER_MONTHS", 24),
		},

		RateLimit: RateLimit{
			Backend:       getenv("RATE_LIMIT_BACKEND", "memory"),
			Window:        getduration("RATE_LIMIT_WINDOW", time.Minute),
			SubmitBudget:  getint("RATE_LIMIT_SUBMIT", 10),
			ApproveBudget: getint("RATE_LIMIT_APPROVE", 30),
			CancelBudget:  getint("RATE_LIMIT_CANCEL", 10),
			IPPerSecond:   getfloat("RATE_LIMIT_IP_RPS", 20),
			IPBurst:       getint("RATE_LIMIT_IP_BURST", 40),
		},

		ReconcileCron: getenv("RECONCILE_CRON", "15 2 * * *"),
	}
}

func (c *Config) Validate() error {
	if c.DBHost == "" || c.DBName == "" || c.DBUser == "" {
		return errors.New("missing database config (DB_HOST/DB_NAME/DB_USER)")
	}
	if _, err := net.LookupPort("tcp", c.DBPort); err != nil {
		return fmt.Errorf("invalid DB_PORT %q: %w", c.DBPort, err)
	}
	if c.Port == "" {
		return errors.New("missing PORT")
	}
	if c.Policy.LeaveMaxSpanDays <= 0 || c.Policy.WFHMaxSpanDays <= 0 {
		return errors.New("max span days must be positive")
	}
	if c.Policy.LeaveMinNoticeDays < 0 || c.Policy.WFHMinNoticeDays < 0 {
		return errors.New("min notice days must not be negative")
	}
	if c.Policy.MaxHierarchyDepth <= 0 {
		return errors.New("MAX_HIERARCHY_DEPTH must be positive")
	}
	if c.Policy.ExecutiveFallbackID != "" {
		if _, err := uuid.Parse(c.Policy.ExecutiveFallbackID); err != nil {
			return fmt.Errorf("invalid ESCALATION_EXECUTIVE_ID: %w", err)
		}
	}
	switch c.RateLimit.Backend {
	case "memory", "redis":
	default:
		return fmt.Errorf("invalid RATE_LIMIT_BACKEND %q", c.RateLimit.Backend)
	}
	if _, err := cron.ParseStandard(c.ReconcileCron); err != nil {
		return fmt.Errorf("invalid RECONCILE_CRON %q: %w", c.ReconcileCron, err)
	}
	return nil
}

func (c *Config) RequireJWTSecret() error {
	if c.JWTSecret == "" {
		return errors.New("JWT_SECRET is required")
	}
	return nil
}
