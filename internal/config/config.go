package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// DatabaseConfig holds connection settings for the optional registry database.
// When Host is empty the service runs on the built-in in-memory registry.
type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// Enabled reports whether a database was configured.
func (c DatabaseConfig) Enabled() bool {
	return c.Host != ""
}

// DSN returns the Postgres connection string.
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// KafkaConfig holds broker settings for planner telemetry events.
// When no brokers are configured, publishing is a no-op.
type KafkaConfig struct {
	Brokers     []string
	GroupPrefix string
}

// Enabled reports whether Kafka brokers were configured.
func (c KafkaConfig) Enabled() bool {
	return len(c.Brokers) > 0
}

// ServiceConfig holds all configuration for the planner service.
type ServiceConfig struct {
	Port              string
	AppEnv            string
	StaticDir         string
	RouteComputeDelay time.Duration
	DB                DatabaseConfig
	Kafka             KafkaConfig
}

// Load reads configuration from PLANNER_-prefixed environment variables.
func Load() (*ServiceConfig, error) {
	v := viper.New()
	v.SetEnvPrefix("PLANNER")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("service_port", "8080")
	v.SetDefault("app_env", "development")
	v.SetDefault("static_dir", "web")
	v.SetDefault("route_compute_delay", "600ms")
	v.SetDefault("db_port", 5432)
	v.SetDefault("db_user", "planner")
	v.SetDefault("db_name", "planner")
	v.SetDefault("db_sslmode", "disable")
	v.SetDefault("kafka_group_prefix", "routesketch.")

	delay, err := time.ParseDuration(v.GetString("route_compute_delay"))
	if err != nil {
		return nil, fmt.Errorf("invalid PLANNER_ROUTE_COMPUTE_DELAY: %w", err)
	}

	var brokers []string
	if raw := v.GetString("kafka_brokers"); raw != "" {
		for _, b := range strings.Split(raw, ",") {
			if b = strings.TrimSpace(b); b != "" {
				brokers = append(brokers, b)
			}
		}
	}

	return &ServiceConfig{
		Port:              ":" + strings.TrimPrefix(v.GetString("service_port"), ":"),
		AppEnv:            v.GetString("app_env"),
		StaticDir:         v.GetString("static_dir"),
		RouteComputeDelay: delay,
		DB: DatabaseConfig{
			Host:     v.GetString("db_host"),
			Port:     v.GetInt("db_port"),
			User:     v.GetString("db_user"),
			Password: v.GetString("db_password"),
			DBName:   v.GetString("db_name"),
			SSLMode:  v.GetString("db_sslmode"),
		},
		Kafka: KafkaConfig{
			Brokers:     brokers,
			GroupPrefix: v.GetString("kafka_group_prefix"),
		},
	}, nil
}
