package constants

import "time"

type ContextKey string

const TraceIDKey ContextKey = "trace_id"

const (
	NameMaxLength      = 100
	PasswordMinLength  = 8
	PasswordMaxLength  = 72
	JWTSecretMinLength = 32

	DefaultAccessTokenTTL = 30 * time.Minute

	DefaultPage      = 1
	DefaultPageLimit = 10
	MaxPageLimit     = 100

	MaxSearchQueryLength = 100

	DefaultMaxRequestSize = 1 << 20

	DBPoolMaxOpenConns    = 25
	DBPoolMinOpenConns    = 5
	DBPoolConnMaxLifetime = time.Hour
	DBPoolConnMaxIdleTime = 30 * time.Minute
	DBPoolHealthCheck     = time.Minute
	DBPoolConnectTimeout  = 5 * time.Second
	DBPoolMaxAttempts     = 10
	DBPoolRetryDelay      = time.Second
	DBPoolMetricsInterval = 30 * time.Second

	ServerReadHeaderTimeout = 10 * time.Second
	ServerReadTimeout       = 30 * time.Second
	ServerWriteTimeout      = 30 * time.Second
	ServerIdleTimeout       = 120 * time.Second

	ShutdownTimeout = 30 * time.Second
	DrainTimeout    = 10 * time.Second

	CredentialRateLimitPerSecond = 5.0
	CredentialRateLimitBurst     = 10
	RateLimitCleanupInterval     = time.Minute
)
