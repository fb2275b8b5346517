package config

import (
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

const (
	StoreDriverRedis  = "redis"
	StoreDriverMongo  = "mongo"
	StoreDriverMemory = "memory"
)

type HTTPServerConfig struct {
	Port            string        `yaml:"port" env:"HTTP_PORT_STOREFRONT" env-default:"8085"`
	ReadTimeout     time.Duration `yaml:"read_timeout" env-default:"5s"`
	WriteTimeout    time.Duration `yaml:"write_timeout" env-default:"10s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout" env-default:"60s"`
	TimeoutGraceful time.Duration `yaml:"timeout_graceful_shutdown" env-default:"15s"`
	AllowedOrigins  []string      `yaml:"allowed_origins" env:"HTTP_ALLOWED_ORIGINS" env-separator:"," env-default:"*"`
}

type MetricsConfig struct {
	Port        string `yaml:"port" env:"METRICS_PORT" env-default:"9095"`
	ServiceName string `yaml:"service_name" env:"METRICS_SERVICE_NAME" env-default:"storefront"`
}

type StoreConfig struct {
	Driver    string `yaml:"driver" env:"STORE_DRIVER" env-default:"redis"`
	KeyPrefix string `yaml:"key_prefix" env:"STORE_KEY_PREFIX" env-default:"storefront"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr" env:"REDIS_ADDR" env-default:"localhost:6379"`
	Password string `yaml:"password" env:"REDIS_PASSWORD"`
	DB       int    `yaml:"db" env:"REDIS_DB" env-default:"0"`
}

type MongoDBConfig struct {
	URI        string `yaml:"uri" env:"MONGO_URI" env-default:"mongodb://localhost:27017"`
	User       string `yaml:"user" env:"MONGO_USER"`
	Password   string `yaml:"password" env:"MONGO_PASSWORD"`
	Database   string `yaml:"database" env:"MONGO_DATABASE" env-default:"storefront_db"`
	Collection string `yaml:"collection" env:"MONGO_COLLECTION" env-default:"kv"`
}

type NATSConfig struct {
	Enabled bool   `yaml:"enabled" env:"NATS_ENABLED" env-default:"false"`
	URL     string `yaml:"url" env:"NATS_URL" env-default:"nats://localhost:4222"`
}

type SMTPConfig struct {
	Enabled     bool          `yaml:"enabled" env:"SMTP_ENABLED" env-default:"false"`
	Host        string        `yaml:"host" env:"SMTP_HOST"`
	Port        int           `yaml:"port" env:"SMTP_PORT" env-default:"587"`
	Username    string        `yaml:"username" env:"SMTP_USERNAME"`
	Password    string        `yaml:"password" env:"SMTP_PASSWORD"`
	SenderEmail string        `yaml:"sender_email" env:"SMTP_SENDER_EMAIL"`
	Encryption  string        `yaml:"encryption" env:"SMTP_ENCRYPTION" env-default:"tls"`
	ServerName  string        `yaml:"server_name" env:"SMTP_SERVER_NAME"`
	SendTimeout time.Duration `yaml:"send_timeout" env:"SMTP_SEND_TIMEOUT" env-default:"10s"`
}

type AuthConfig struct {
	BcryptCost int `yaml:"bcrypt_cost" env:"AUTH_BCRYPT_COST" env-default:"10"`
}

type LoggerConfig struct {
	Level      string `yaml:"level" env:"LOG_LEVEL" env-default:"info"`
	Encoding   string `yaml:"encoding" env:"LOG_ENCODING" env-default:"json"`
	TimeFormat string `yaml:"time_format" env:"LOG_TIME_FORMAT" env-default:"2006-01-02T15:04:05.000Z07:00"`
	Output     string `yaml:"output" env:"LOG_OUTPUT" env-default:"stderr"`
}

type Config struct {
	Env        string           `yaml:"env" env:"ENV" env-default:"local"`
	HTTPServer HTTPServerConfig `yaml:"http_server"`
	Metrics    MetricsConfig    `yaml:"metrics"`
	Store      StoreConfig      `yaml:"store"`
	Redis      RedisConfig      `yaml:"redis"`
	MongoDB    MongoDBConfig    `yaml:"mongo"`
	NATS       NATSConfig       `yaml:"nats"`
	SMTP       SMTPConfig       `yaml:"smtp"`
	Auth       AuthConfig       `yaml:"auth"`
	Logger     LoggerConfig     `yaml:"logger"`
}

func LoadConfig(path string) (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if path == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, err
		}
		return &cfg, nil
	}

	err := cleanenv.ReadConfig(path, &cfg)
	if err != nil {
		if _, ok := err.(*os.PathError); ok {
			log.Printf("Warning: Config file not found at %s, attempting to load from environment variables only.", path)
			if errEnv := cleanenv.ReadEnv(&cfg); errEnv != nil {
				return nil, errEnv
			}
			return &cfg, nil
		}
		return nil, err
	}
	return &cfg, nil
}

func MustLoad() *Config {
	configPath := os.Getenv("CONFIG_PATH_STOREFRONT")
	if configPath == "" {
		configPath = "config.yaml"
	}
	cfg, err := LoadConfig(configPath)
	if err != nil {
		log.Fatalf("cannot load config: %v", err)
	}
	return cfg
}
