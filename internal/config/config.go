package config

import (
	"errors"
	"os"
	"strings"

	"github.com/spf13/viper"
	"github.com/subosito/gotenv"
)

type Config struct {
	App struct {
		Env      string
		Timezone string
	} `mapstructure:"app"`

	HTTP struct {
		Addr      string
		PublicURL string `mapstructure:"public_url"` // база для ссылок на оплату
	} `mapstructure:"http"`

	Storage struct {
		Driver string // memory | file | postgres
		Dir    string
	} `mapstructure:"storage"`

	Postgres struct {
		DSN string
	} `mapstructure:"postgres"`

	Metrics struct {
		Enabled bool
	} `mapstructure:"metrics"`

	Telegram struct {
		Token       string
		AdminChatID int64 `mapstructure:"admin_chat_id"`
	} `mapstructure:"telegram"`
}

const (
	DriverMemory   = "memory"
	DriverFile     = "file"
	DriverPostgres = "postgres"
)

// Load читает .env (если есть), затем YAML, затем APP_* из окружения.
// При пустом path читаются только значения по умолчанию и окружение.
func Load(path string) (Config, error) {
	if err := gotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, err
	}

	v := viper.New()
	v.SetDefault("app.env", "prod")
	v.SetDefault("app.timezone", "Europe/Berlin")
	v.SetDefault("http.addr", ":8080")
	v.SetDefault("http.public_url", "http://localhost:8080")
	v.SetDefault("storage.driver", DriverFile)
	v.SetDefault("storage.dir", "data")
	v.SetDefault("postgres.dsn", "")
	v.SetDefault("metrics.enabled", true)
	v.SetDefault("telegram.token", "")
	v.SetDefault("telegram.admin_chat_id", 0)

	v.SetEnvPrefix("APP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var c Config
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return c, err
		}
	}
	if err := v.Unmarshal(&c); err != nil {
		return c, err
	}
	return c, c.validate()
}

func (c Config) validate() error {
	switch c.Storage.Driver {
	case DriverMemory, DriverFile:
	case DriverPostgres:
		if c.Postgres.DSN == "" {
			return errors.New("config: postgres.dsn is required for postgres storage")
		}
	default:
		return errors.New("config: unknown storage.driver " + c.Storage.Driver)
	}
	return nil
}
