package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"
)

type Config struct {
	AppPort string

	MySQLHost string
	MySQLPort string
	MySQLDB   string
	MySQLUser string
	MySQLPass string

	RedisAddr string
	RedisDB   int

	JWTSecret   string
	JWTTTLHours int

	IdempTTLSecs int

	// push-notification dispatch; empty endpoint disables the worker
	PushEndpoint  string
	PushServerKey string
	PushQueueKey  string
}

func getenv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func getenvInt(k string, d int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return d
}

func Load() *Config {
	return &Config{
		AppPort:   getenv("APP_PORT", "8080"),
		MySQLHost: getenv("MYSQL_HOST", "mysql"),
		MySQLPort: getenv("MYSQL_PORT", "3306"),
		MySQLDB:   getenv("MYSQL_DB", "solarshare"),
		MySQLUser: getenv("MYSQL_USER", "solarshare"),
		MySQLPass: getenv("MYSQL_PASS", "solarshare"),

		RedisAddr: getenv("REDIS_ADDR", "redis:6379"),
		RedisDB:   getenvInt("REDIS_DB", 0),

		JWTSecret:   getenv("JWT_SECRET", ""),
		JWTTTLHours: getenvInt("JWT_TTL_HOURS", 72),

		IdempTTLSecs: getenvInt("IDEMPOTENCY_TTL_SECONDS", 300),

		PushEndpoint:  getenv("PUSH_ENDPOINT", ""),
		PushServerKey: getenv("PUSH_SERVER_KEY", ""),
		PushQueueKey:  getenv("PUSH_QUEUE_KEY", "notify:outbox"),
	}
}

func (c *Config) Validate() error {
	if c.MySQLHost == "" || c.MySQLPort == "" || c.MySQLDB == "" || c.MySQLUser == "" {
		return errors.New("missing MySQL config (MYSQL_HOST/PORT/DB/USER)")
	}
	if _, err := strconv.Atoi(c.MySQLPort); err != nil {
		return fmt.Errorf("MYSQL_PORT must be numeric: %q", c.MySQLPort)
	}
	if c.JWTSecret == "" {
		return errors.New("JWT_SECRET is required")
	}
	if _, _, err := net.SplitHostPort(c.RedisAddr); err != nil {
		return fmt.Errorf("REDIS_ADDR must be host:port: %q", c.RedisAddr)
	}
	return nil
}

func (c *Config) MySQLDSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
		c.MySQLUser, c.MySQLPass, c.MySQLHost, c.MySQLPort, c.MySQLDB)
}
