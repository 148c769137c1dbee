package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"
)

const envPrefix = "SHOPAPI"

type PsqlConfig struct {
	User     string `mapstructure:"user" validate:"required"`
	Password string `mapstructure:"password"`
	Host     string `mapstructure:"host" validate:"required"`
	Port     int    `mapstructure:"port" validate:"gt=0"`
	Database string `mapstructure:"database" validate:"required"`
	Sslmode  string `mapstructure:"sslmode"`
}

type HTTPConfig struct {
	Env     string        `mapstructure:"env" validate:"oneof=local dev prod"`
	Port    int           `mapstructure:"port" validate:"gt=0,lt=65536"`
	Timeout time.Duration `mapstructure:"timeout" validate:"gt=0"`
}

type Config struct {
	HTTP HTTPConfig `mapstructure:"http"`
	Psql PsqlConfig `mapstructure:"psql_conn"`
}

// Load reads config.yaml from dir (or the working directory when dir is
// empty). Values can be overridden by SHOPAPI_* environment variables, e.g.
// SHOPAPI_PSQL_CONN_PASSWORD. A .env file next to the config is loaded first.
func Load(dir string) (*Config, error) {
	if dir == "" {
		dir = "."
	}

	if err := godotenv.Load(dir + "/.env"); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("Error loading .env file, %s\n", err)
		return nil, err
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			log.Printf("Error reading config file, %s\n", err)
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		log.Printf("Unable to decode into struct, %v\n", err)
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("http.env", EnvLocal)
	v.SetDefault("http.port", 8080)
	v.SetDefault("http.timeout", 10*time.Second)
	v.SetDefault("psql_conn.user", "postgres")
	v.SetDefault("psql_conn.password", "")
	v.SetDefault("psql_conn.host", "localhost")
	v.SetDefault("psql_conn.port", 5432)
	v.SetDefault("psql_conn.database", "shop")
	v.SetDefault("psql_conn.sslmode", "disable")
}

func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config.Validate: %w", err)
	}
	return nil
}

func (c *Config) ConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Psql.User, c.Psql.Password, c.Psql.Host, c.Psql.Port, c.Psql.Database, c.Psql.Sslmode)
}
