package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

const envPrefix = "ORCHESTRATION"

type Config struct {
	ServiceName string    `mapstructure:"service_name"`
	Env         string    `mapstructure:"env"`
	Port        string    `mapstructure:"port"`
	Database    Database  `mapstructure:"database"`
	AWS         AWS       `mapstructure:"aws"`
	Services    Services  `mapstructure:"services"`
	Saga        Saga      `mapstructure:"saga"`
	HTTP        HTTP      `mapstructure:"http"`
	Telemetry   Telemetry `mapstructure:"telemetry"`
}

type Database struct {
	URL         string `mapstructure:"url"`
	Host        string `mapstructure:"host"`
	Port        int    `mapstructure:"port"`
	User        string `mapstructure:"user"`
	Password    string `mapstructure:"password"`
	Database    string `mapstructure:"database"`
	SSLMode     string `mapstructure:"ssl_mode"`
	AutoMigrate bool   `mapstructure:"auto_migrate"`
}

type AWS struct {
	Region      string `mapstructure:"region"`
	Endpoint    string `mapstructure:"endpoint"`
	SNSTopicArn string `mapstructure:"sns_topic_arn"`
	SQSQueueURL string `mapstructure:"sqs_queue_url"`
	SQSWorkers  int32  `mapstructure:"sqs_workers"`
}

// Services holds the base URLs of the collaborating services
type Services struct {
	InventoryURL string `mapstructure:"inventory_url"`
	PaymentURL   string `mapstructure:"payment_url"`
	TicketingURL string `mapstructure:"ticketing_url"`
	UserURL      string `mapstructure:"user_url"`
}

type Saga struct {
	StepTimeout         time.Duration `mapstructure:"step_timeout"`
	NotificationTimeout time.Duration `mapstructure:"notification_timeout"`
	PublishAuditEvents  bool          `mapstructure:"publish_audit_events"`
}

type HTTP struct {
	ClientTimeout   time.Duration `mapstructure:"client_timeout"`
	RequestTimeout  time.Duration `mapstructure:"request_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type Telemetry struct {
	Enabled      bool   `mapstructure:"enabled"`
	OTLPEndpoint string `mapstructure:"otlp_endpoint"`
}

// ReadConfig loads <ENVIRONMENT>.json next to this file. Every key can be
// overridden with ORCHESTRATION_<KEY>, dots replaced by underscores.
func ReadConfig() (*Config, error) {
	_, filename, _, ok := runtime.Caller(0)
	if !ok {
		return nil, errors.New("unable to get current file")
	}

	v := viper.New()
	v.SetConfigName(getConfigName())
	v.SetConfigType("json")
	v.AddConfigPath(filepath.Dir(filename))

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, errors.Wrap(err, "error reading config file")
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, errors.Wrap(err, "error unmarshaling config")
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func getConfigName() string {
	env := os.Getenv("ENVIRONMENT")
	if env == "" {
		return "local"
	}
	return env
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("service_name", "orchestration-service")
	v.SetDefault("env", getConfigName())
	v.SetDefault("port", "8080")

	v.SetDefault("database.url", "")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "password")
	v.SetDefault("database.database", "orchestration")
	v.SetDefault("database.ssl_mode", "disable")
	v.SetDefault("database.auto_migrate", true)

	v.SetDefault("aws.region", "us-east-1")
	v.SetDefault("aws.endpoint", "")
	v.SetDefault("aws.sns_topic_arn", "arn:aws:sns:us-east-1:000000000000:orchestration-events")
	v.SetDefault("aws.sqs_queue_url", "http://localhost:4566/000000000000/orchestration-reconciliations")
	v.SetDefault("aws.sqs_workers", 4)

	v.SetDefault("services.inventory_url", "http://localhost:8082")
	v.SetDefault("services.payment_url", "http://localhost:8083")
	v.SetDefault("services.ticketing_url", "http://localhost:8084")
	v.SetDefault("services.user_url", "http://localhost:8081")

	v.SetDefault("saga.step_timeout", "10s")
	v.SetDefault("saga.notification_timeout", "3s")
	v.SetDefault("saga.publish_audit_events", false)

	v.SetDefault("http.client_timeout", "8s")
	v.SetDefault("http.request_timeout", "60s")
	v.SetDefault("http.shutdown_timeout", "30s")

	v.SetDefault("telemetry.enabled", true)
	v.SetDefault("telemetry.otlp_endpoint", "")
}

// Validate rejects configurations the service cannot start with
func (c *Config) Validate() error {
	if c.Port == "" {
		return errors.New("port is required")
	}
	if c.Saga.StepTimeout <= 0 {
		return errors.New("saga.step_timeout must be positive")
	}
	if c.HTTP.ClientTimeout > c.Saga.StepTimeout {
		return errors.New("http.client_timeout must not exceed saga.step_timeout")
	}

	urls := map[string]string{
		"services.inventory_url": c.Services.InventoryURL,
		"services.payment_url":   c.Services.PaymentURL,
		"services.ticketing_url": c.Services.TicketingURL,
		"services.user_url":      c.Services.UserURL,
	}
	for key, url := range urls {
		if url == "" {
			return errors.Errorf("%s is required", key)
		}
	}

	return nil
}

// GetDatabaseURL constructs database URL from config
func (c *Config) GetDatabaseURL() string {
	if c.Database.URL != "" {
		return c.Database.URL
	}

	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Database,
		c.Database.SSLMode,
	)
}
