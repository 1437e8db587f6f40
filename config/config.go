package config

import (
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Auth     AuthConfig
	Payment  PaymentConfig
	Email    EmailConfig
	GeoIP    GeoIPConfig
	Worker   WorkerConfig
	LogLevel string
}

type ServerConfig struct {
	Port            string
	Mode            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
	MaxConns int32
	MinConns int32
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type AuthConfig struct {
	JWTSecret string
	Audience  string
}

type PaymentConfig struct {
	SecretKey     string
	WebhookSecret string
	Currency      string
	SuccessURL    string
	CancelURL     string
	// SessionTTL is how long a hosted checkout page stays open. Keep it below Worker.PendingExpiry.
	SessionTTL time.Duration
}

type EmailConfig struct {
	SMTPHost    string
	SMTPPort    string
	Username    string
	Password    string
	FromAddress string
	FromName    string
}

// Enabled reports whether SMTP delivery is configured. Without it mail is only logged.
func (c EmailConfig) Enabled() bool {
	return c.SMTPHost != "" && c.FromAddress != ""
}

type GeoIPConfig struct {
	DatabaseURL string
	TTL         time.Duration
}

type WorkerConfig struct {
	ConsumerID       string
	PendingExpiry    time.Duration
	ExpiryInterval   time.Duration
	ClaimMinIdleTime time.Duration
	MaxRetryCount    int
}

var AppConfig *Config

func LoadConfig() *Config {
	// .env is optional; real deployments inject the environment directly
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	AppConfig = &Config{
		Server:   GetServerConfig(v),
		Database: GetDatabaseConfig(v),
		Redis:    GetRedisConfig(v),
		Auth:     GetAuthConfig(v),
		Payment:  GetPaymentConfig(v),
		Email:    GetEmailConfig(v),
		GeoIP:    GetGeoIPConfig(v),
		Worker:   GetWorkerConfig(v),
		LogLevel: v.GetString("log.level"),
	}

	return AppConfig
}

func LoadTestConfig() *Config {
	testConfig := &DatabaseConfig{
		Host:     "localhost",
		Port:     "5433",
		User:     "postgres",
		Password: "postgres",
		DBName:   "test_db",
		SSLMode:  "disable",
		MaxConns: 5,
		MinConns: 1,
	}

	testRedisConfig := RedisConfig{
		Host:     "localhost",
		Port:     "6380",
		Password: "",
		DB:       1,
	}

	return &Config{
		Database: *testConfig,
		Redis:    testRedisConfig,
		Auth:     AuthConfig{JWTSecret: "test-secret", Audience: "authenticated"},
		Payment:  PaymentConfig{Currency: "usd", WebhookSecret: "whsec_test", SessionTTL: 35 * time.Minute},
		LogLevel: "debug",
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.mode", "release")
	v.SetDefault("server.read_timeout", "10s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.shutdown_timeout", "10s")

	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", "5432")
	v.SetDefault("db.user", "postgres")
	v.SetDefault("db.password", "postgres")
	v.SetDefault("db.name", "postgres")
	v.SetDefault("db.ssl_mode", "disable")
	v.SetDefault("db.max_conns", 25)
	v.SetDefault("db.min_conns", 5)

	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", "6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	v.SetDefault("auth.jwt_secret", "")
	v.SetDefault("auth.audience", "authenticated")

	v.SetDefault("payment.secret_key", "")
	v.SetDefault("payment.webhook_secret", "")
	v.SetDefault("payment.currency", "usd")
	v.SetDefault("payment.success_url", "http://localhost:3000/bookings/success?session_id={CHECKOUT_SESSION_ID}")
	v.SetDefault("payment.cancel_url", "http://localhost:3000/bookings/cancelled")
	v.SetDefault("payment.session_ttl", "35m")

	v.SetDefault("email.smtp_host", "")
	v.SetDefault("email.smtp_port", "587")
	v.SetDefault("email.username", "")
	v.SetDefault("email.password", "")
	v.SetDefault("email.from_address", "")
	v.SetDefault("email.from_name", "Event Booking")

	v.SetDefault("geoip.database_url", "")
	v.SetDefault("geoip.ttl", "24h")

	v.SetDefault("worker.consumer_id", "")
	v.SetDefault("worker.pending_expiry", "45m")
	v.SetDefault("worker.expiry_interval", "1m")
	v.SetDefault("worker.claim_min_idle_time", "30s")
	v.SetDefault("worker.max_retry_count", 5)

	v.SetDefault("log.level", "info")
}

func GetServerConfig(v *viper.Viper) ServerConfig {
	return ServerConfig{
		Port:            v.GetString("server.port"),
		Mode:            v.GetString("server.mode"),
		ReadTimeout:     v.GetDuration("server.read_timeout"),
		WriteTimeout:    v.GetDuration("server.write_timeout"),
		ShutdownTimeout: v.GetDuration("server.shutdown_timeout"),
	}
}

func GetDatabaseConfig(v *viper.Viper) DatabaseConfig {
	return DatabaseConfig{
		Host:     v.GetString("db.host"),
		Port:     v.GetString("db.port"),
		User:     v.GetString("db.user"),
		Password: v.GetString("db.password"),
		DBName:   v.GetString("db.name"),
		SSLMode:  v.GetString("db.ssl_mode"),
		MaxConns: v.GetInt32("db.max_conns"),
		MinConns: v.GetInt32("db.min_conns"),
	}
}

func GetRedisConfig(v *viper.Viper) RedisConfig {
	return RedisConfig{
		Host:     v.GetString("redis.host"),
		Port:     v.GetString("redis.port"),
		Password: v.GetString("redis.password"),
		DB:       v.GetInt("redis.db"),
	}
}

func GetAuthConfig(v *viper.Viper) AuthConfig {
	return AuthConfig{
		JWTSecret: v.GetString("auth.jwt_secret"),
		Audience:  v.GetString("auth.audience"),
	}
}

func GetPaymentConfig(v *viper.Viper) PaymentConfig {
	return PaymentConfig{
		SecretKey:     v.GetString("payment.secret_key"),
		WebhookSecret: v.GetString("payment.webhook_secret"),
		Currency:      strings.ToLower(v.GetString("payment.currency")),
		SuccessURL:    v.GetString("payment.success_url"),
		CancelURL:     v.GetString("payment.cancel_url"),
		SessionTTL:    v.GetDuration("payment.session_ttl"),
	}
}

func GetEmailConfig(v *viper.Viper) EmailConfig {
	return EmailConfig{
		SMTPHost:    v.GetString("email.smtp_host"),
		SMTPPort:    v.GetString("email.smtp_port"),
		Username:    v.GetString("email.username"),
		Password:    v.GetString("email.password"),
		FromAddress: v.GetString("email.from_address"),
		FromName:    v.GetString("email.from_name"),
	}
}

func GetGeoIPConfig(v *viper.Viper) GeoIPConfig {
	return GeoIPConfig{
		DatabaseURL: v.GetString("geoip.database_url"),
		TTL:         v.GetDuration("geoip.ttl"),
	}
}

func GetWorkerConfig(v *viper.Viper) WorkerConfig {
	return WorkerConfig{
		ConsumerID:       v.GetString("worker.consumer_id"),
		PendingExpiry:    v.GetDuration("worker.pending_expiry"),
		ExpiryInterval:   v.GetDuration("worker.expiry_interval"),
		ClaimMinIdleTime: v.GetDuration("worker.claim_min_idle_time"),
		MaxRetryCount:    v.GetInt("worker.max_retry_count"),
	}
}
