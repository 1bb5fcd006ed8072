package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App       App       `mapstructure:",squash"`
	Server    Server    `mapstructure:",squash"`
	Dataset   Dataset   `mapstructure:",squash"`
	Database  Database  `mapstructure:",squash"`
	Cache     Cache     `mapstructure:",squash"`
	Charts    Charts    `mapstructure:",squash"`
	Dashboard Dashboard `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
	Env      string `mapstructure:"app_env"`
}

type Server struct {
	Host        string   `mapstructure:"host"`
	Port        string   `mapstructure:"port"`
	CorsOrigins []string `mapstructure:"cors_allowed_origins"`
}

// Dataset descreve de onde a tabela de vendas é carregada
type Dataset struct {
	Source string `mapstructure:"dataset_source"`
	Path   string `mapstructure:"dataset_path"`
	Sheet  string `mapstructure:"dataset_sheet"`
	Table  string `mapstructure:"dataset_table"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type Cache struct {
	Size           int           `mapstructure:"cache_size"`
	TTL            time.Duration `mapstructure:"cache_ttl"`
	CleanupCron    string        `mapstructure:"cache_cleanup_cron"`
	CleanupEnabled bool          `mapstructure:"cache_cleanup_enabled"`
}

type Charts struct {
	Engine string `mapstructure:"chart_engine"`
	Width  int    `mapstructure:"chart_width"`
	Height int    `mapstructure:"chart_height"`
}

type Dashboard struct {
	MonthOrder  string `mapstructure:"dashboard_month_order"`
	TopN        int    `mapstructure:"dashboard_top_n"`
	PreviewRows int    `mapstructure:"dashboard_preview_rows"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", []string{"*"})

	viper.SetDefault("DATASET_SOURCE", "") // vazio: escolhe pela extensão do arquivo
	viper.SetDefault("DATASET_PATH", "data/Financials_cleaned.csv")
	viper.SetDefault("DATASET_SHEET", "")
	viper.SetDefault("DATASET_TABLE", "financials")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/sales?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("CACHE_SIZE", 128)
	viper.SetDefault("CACHE_TTL", "30m")
	viper.SetDefault("CACHE_CLEANUP_CRON", "*/10 * * * *") // A cada 10 minutos
	viper.SetDefault("CACHE_CLEANUP_ENABLED", true)

	viper.SetDefault("CHART_ENGINE", "gonum")
	viper.SetDefault("CHART_WIDTH", 640)
	viper.SetDefault("CHART_HEIGHT", 360)

	viper.SetDefault("DASHBOARD_MONTH_ORDER", "alphabetical")
	viper.SetDefault("DASHBOARD_TOP_N", 10)
	viper.SetDefault("DASHBOARD_PREVIEW_ROWS", 10)

	viper.SetDefault("LOG_LEVEL", "debug")
	viper.SetDefault("APP_ENV", "development")
}

func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Debug("Usando variáveis de ambiente (viper não conseguiu ler .env): ", err)
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(cwd, "../.env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Debug("Arquivo .env carregado de: ", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando apenas variáveis de ambiente")
}
