// Package config предоставляет структуры и функцию для загрузки конфига сервиса.
package config

import (
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config общая структура для хранения настроек всех бинарей сервиса.
type Config struct {
	Env                     string `yaml:"env" env:"ENV" env-default:"local"`
	StorageConnectionString string `yaml:"storage_connection_string" env:"STORAGE_CONNECTION_STRING"`
	MigrationsPath          string `yaml:"migrations_path" env:"MIGRATIONS_PATH" env-default:"./migrations"`
	RabbitConnection        string `yaml:"rabbit_connection" env:"RABBIT_CONNECTION"`
	RedisConnection         `yaml:"redis_connection"`
	HTTPServer              `yaml:"http_server"`
	JWTToken                `yaml:"jwttoken"`
	SMTP                    `yaml:"smtp"`
	SignProvider            `yaml:"sign_provider"`
	BillingProvider         `yaml:"billing_provider"`
	Messaging               `yaml:"messaging"`
	CRM                     `yaml:"crm"`
	Reminder                `yaml:"reminder"`
}

// HTTPServer структура для настройки сервера.
type HTTPServer struct {
	AddressHTTP string        `yaml:"addresshttp" env:"ADDRESS_HTTP" env-default:":8080"`
	TimeoutHTTP time.Duration `yaml:"timeouthttp" env-default:"5s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env-default:"60s"`
}

// RedisConnection структура для настройки подключения к redis.
type RedisConnection struct {
	AddressRedis string        `yaml:"addressredis" env:"ADDRESS_REDIS"`
	Password     string        `yaml:"password" env:"REDIS_PASSWORD"`
	User         string        `yaml:"user" env:"REDIS_USER"`
	DB           int           `yaml:"db" env-default:"0"`
	MaxRetries   int           `yaml:"max_retries" env-default:"3"`
	DialTimeout  time.Duration `yaml:"dial_timeout" env-default:"5s"`
	TimeoutRedis time.Duration `yaml:"timeoutredis" env-default:"3s"`
}

// JWTToken структура для работы с jwt-токеном.
type JWTToken struct {
	JWTSecretKey string        `yaml:"jwt_secret_key" env:"JWT_SECRET_KEY"`
	TokenTTL     time.Duration `yaml:"token_ttl" env-default:"24h"`
}

// SMTP настройки почтового транспорта.
type SMTP struct {
	SMTPHost string `yaml:"smtp_host" env:"SMTP_HOST"`
	SMTPPort string `yaml:"smtp_port" env:"SMTP_PORT" env-default:"587"`
	SMTPUser string `yaml:"smtp_user" env:"SMTP_USER"`
	SMTPPass string `yaml:"smtp_pass" env:"SMTP_PASS"`
}

// SignProvider настройки провайдера цифровой подписи.
// Пустой APIKey переводит адаптер в симулированный режим.
type SignProvider struct {
	SignAPIKey  string `yaml:"sign_api_key" env:"SIGN_API_KEY"`
	SignBaseURL string `yaml:"sign_base_url" env:"SIGN_BASE_URL" env-default:"https://api.signprovider.com/v3"`
}

// BillingProvider настройки провайдера рекуррентного биллинга.
// Пустой APIKey переводит адаптер в симулированный режим.
type BillingProvider struct {
	BillingAPIKey  string `yaml:"billing_api_key" env:"BILLING_API_KEY"`
	BillingBaseURL string `yaml:"billing_base_url" env:"BILLING_BASE_URL" env-default:"https://api.billingprovider.com/v3"`
}

// Messaging настройки HTTP-провайдера SMS и чат-сообщений.
type Messaging struct {
	MessagingAccountSID string `yaml:"messaging_account_sid" env:"MESSAGING_ACCOUNT_SID"`
	MessagingAuthToken  string `yaml:"messaging_auth_token" env:"MESSAGING_AUTH_TOKEN"`
	MessagingFromNumber string `yaml:"messaging_from_number" env:"MESSAGING_FROM_NUMBER"`
	MessagingChatFrom   string `yaml:"messaging_chat_from" env:"MESSAGING_CHAT_FROM"`
	MessagingBaseURL    string `yaml:"messaging_base_url" env:"MESSAGING_BASE_URL" env-default:"https://api.messaging.com/v1"`
}

// CRM настройки форвардера событий во внешнюю CRM.
// Пустой WebhookURL отключает отправку.
type CRM struct {
	CRMWebhookURL string `yaml:"crm_webhook_url" env:"CRM_WEBHOOK_URL"`
	CRMSecret     string `yaml:"crm_secret" env:"CRM_SECRET"`
}

// Reminder настройки планировщика напоминаний.
type Reminder struct {
	ScanInterval time.Duration `yaml:"scan_interval" env:"REMINDER_SCAN_INTERVAL" env-default:"1h"`
}

// MustLoad загружает конфиг из файла по пути CONFIG_PATH, при ошибке завершает процесс.
func MustLoad() *Config {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		log.Fatal("CONFIG_PATH is not set")
	}
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		log.Fatalf("file: %s - does not exist", configPath)
	}
	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("cannot read config: %s", err)
	}
	return &cfg
}
