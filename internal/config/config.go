package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App             App             `mapstructure:",squash"`
	Server          Server          `mapstructure:",squash"`
	Database        Database        `mapstructure:",squash"`
	WB              WB              `mapstructure:",squash"`
	Sheets          Sheets          `mapstructure:",squash"`
	AdvertStatsSync AdvertStatsSync `mapstructure:",squash"`
	AdvertSpendSync AdvertSpendSync `mapstructure:",squash"`
	ContentSync     ContentSync     `mapstructure:",squash"`
	FunnelSync      FunnelSync      `mapstructure:",squash"`

	// Accounts é o mapeamento nome da conta -> token da API WB,
	// resolvido uma única vez aqui e injetado nos serviços. Os jobs
	// nunca procuram credenciais no filesystem por conta própria.
	Accounts map[string]string `mapstructure:"-"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type WB struct {
	AdvertURL    string `mapstructure:"wb_advert_url"`
	ContentURL   string `mapstructure:"wb_content_url"`
	AnalyticsURL string `mapstructure:"wb_analytics_url"`
	// AccountTokens é o JSON bruto {"conta": "token", ...} vindo do
	// ambiente; NewConfig o decodifica em Config.Accounts.
	AccountTokens string `mapstructure:"wb_account_tokens"`
}

type Sheets struct {
	CredentialsFile  string `mapstructure:"sheets_credentials_file"`
	SpreadsheetID    string `mapstructure:"sheets_spreadsheet_id"`
	AdvertStatsSheet string `mapstructure:"sheets_advert_stats_sheet"`
	AdvertSpendSheet string `mapstructure:"sheets_advert_spend_sheet"`
	ContentSheet     string `mapstructure:"sheets_content_sheet"`
	FunnelSheet      string `mapstructure:"sheets_funnel_sheet"`
}

type AdvertStatsSync struct {
	CronSchedule       string `mapstructure:"advert_stats_sync_cron"`
	LookbackDays       int    `mapstructure:"advert_stats_sync_lookback_days"`
	MaxConcurrentUnits int    `mapstructure:"advert_stats_sync_max_concurrent_units"`
	MaxRetries         int    `mapstructure:"advert_stats_sync_max_retries"`
	RateLimitDelaySecs int    `mapstructure:"advert_stats_sync_rate_limit_delay_seconds"`
	NetworkDelaySecs   int    `mapstructure:"advert_stats_sync_network_delay_seconds"`
	BatchCooldownSecs  int    `mapstructure:"advert_stats_sync_batch_cooldown_seconds"`
	Enabled            bool   `mapstructure:"advert_stats_sync_enabled"`
}

type AdvertSpendSync struct {
	CronSchedule       string `mapstructure:"advert_spend_sync_cron"`
	LookbackDays       int    `mapstructure:"advert_spend_sync_lookback_days"`
	MaxConcurrentUnits int    `mapstructure:"advert_spend_sync_max_concurrent_units"`
	MaxRetries         int    `mapstructure:"advert_spend_sync_max_retries"`
	RetryDelaySecs     int    `mapstructure:"advert_spend_sync_retry_delay_seconds"`
	Enabled            bool   `mapstructure:"advert_spend_sync_enabled"`
}

type ContentSync struct {
	CronSchedule       string `mapstructure:"content_sync_cron"`
	PageSize           int    `mapstructure:"content_sync_page_size"`
	MaxConcurrentUnits int    `mapstructure:"content_sync_max_concurrent_units"`
	MaxRetries         int    `mapstructure:"content_sync_max_retries"`
	RateLimitDelaySecs int    `mapstructure:"content_sync_rate_limit_delay_seconds"`
	Enabled            bool   `mapstructure:"content_sync_enabled"`
}

type FunnelSync struct {
	CronSchedule       string `mapstructure:"funnel_sync_cron"`
	LookbackDays       int    `mapstructure:"funnel_sync_lookback_days"`
	PageSize           int    `mapstructure:"funnel_sync_page_size"`
	MaxConcurrentUnits int    `mapstructure:"funnel_sync_max_concurrent_units"`
	MaxRetries         int    `mapstructure:"funnel_sync_max_retries"`
	RateLimitDelaySecs int    `mapstructure:"funnel_sync_rate_limit_delay_seconds"`
	PageDelaySecs      int    `mapstructure:"funnel_sync_page_delay_seconds"`
	Enabled            bool   `mapstructure:"funnel_sync_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/wb_analytics")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("WB_ADVERT_URL", "https://advert-api.wildberries.ru")
	viper.SetDefault("WB_CONTENT_URL", "https://content-api.wildberries.ru")
	viper.SetDefault("WB_ANALYTICS_URL", "https://seller-analytics-api.wildberries.ru")
	viper.SetDefault("WB_ACCOUNT_TOKENS", "{}")

	viper.SetDefault("SHEETS_CREDENTIALS_FILE", "creds.json")
	viper.SetDefault("SHEETS_SPREADSHEET_ID", "")
	viper.SetDefault("SHEETS_ADVERT_STATS_SHEET", "БД_Рекламная_статистика")
	viper.SetDefault("SHEETS_ADVERT_SPEND_SHEET", "БД_Рекламные_затраты")
	viper.SetDefault("SHEETS_CONTENT_SHEET", "БД_Фото")
	viper.SetDefault("SHEETS_FUNNEL_SHEET", "БД_Воронка")

	// O endpoint fullstats aceita lotes de até 100 IDs e limita a uma
	// requisição por minuto por token.
	viper.SetDefault("ADVERT_STATS_SYNC_CRON", "0 3 * * *")
	viper.SetDefault("ADVERT_STATS_SYNC_LOOKBACK_DAYS", 1)
	viper.SetDefault("ADVERT_STATS_SYNC_MAX_CONCURRENT_UNITS", 10)
	viper.SetDefault("ADVERT_STATS_SYNC_MAX_RETRIES", 5)
	viper.SetDefault("ADVERT_STATS_SYNC_RATE_LIMIT_DELAY_SECONDS", 60)
	viper.SetDefault("ADVERT_STATS_SYNC_NETWORK_DELAY_SECONDS", 30)
	viper.SetDefault("ADVERT_STATS_SYNC_BATCH_COOLDOWN_SECONDS", 60)
	viper.SetDefault("ADVERT_STATS_SYNC_ENABLED", false)

	viper.SetDefault("ADVERT_SPEND_SYNC_CRON", "0 4 * * *")
	viper.SetDefault("ADVERT_SPEND_SYNC_LOOKBACK_DAYS", 1)
	viper.SetDefault("ADVERT_SPEND_SYNC_MAX_CONCURRENT_UNITS", 10)
	viper.SetDefault("ADVERT_SPEND_SYNC_MAX_RETRIES", 5)
	viper.SetDefault("ADVERT_SPEND_SYNC_RETRY_DELAY_SECONDS", 20)
	viper.SetDefault("ADVERT_SPEND_SYNC_ENABLED", false)

	viper.SetDefault("FUNNEL_SYNC_CRON", "0 5 * * *")
	viper.SetDefault("FUNNEL_SYNC_LOOKBACK_DAYS", 1)
	viper.SetDefault("FUNNEL_SYNC_PAGE_SIZE", 1000)
	viper.SetDefault("FUNNEL_SYNC_MAX_CONCURRENT_UNITS", 10)
	viper.SetDefault("FUNNEL_SYNC_MAX_RETRIES", 30)
	viper.SetDefault("FUNNEL_SYNC_RATE_LIMIT_DELAY_SECONDS", 20)
	viper.SetDefault("FUNNEL_SYNC_PAGE_DELAY_SECONDS", 2)
	viper.SetDefault("FUNNEL_SYNC_ENABLED", false)

	viper.SetDefault("CONTENT_SYNC_CRON", "0 6 * * *")
	viper.SetDefault("CONTENT_SYNC_PAGE_SIZE", 100)
	viper.SetDefault("CONTENT_SYNC_MAX_CONCURRENT_UNITS", 10)
	viper.SetDefault("CONTENT_SYNC_MAX_RETRIES", 5)
	viper.SetDefault("CONTENT_SYNC_RATE_LIMIT_DELAY_SECONDS", 20)
	viper.SetDefault("CONTENT_SYNC_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	// Configurar valores padrão
	SetDefaults()

	// Configurar o Viper
	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv() // Isso permite que o Viper leia variáveis de ambiente

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
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

	// Decodificar o mapa de tokens das contas. Um mapa vazio não é um
	// erro: o processo sobe, mas os jobs não terão unidades de trabalho.
	config.Accounts = make(map[string]string)
	if config.WB.AccountTokens != "" {
		if err := json.Unmarshal([]byte(config.WB.AccountTokens), &config.Accounts); err != nil {
			return nil, fmt.Errorf("erro ao decodificar WB_ACCOUNT_TOKENS: %w", err)
		}
	}

	if len(config.Accounts) == 0 {
		logrus.Warn("Nenhuma conta configurada em WB_ACCOUNT_TOKENS")
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

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	// Obter diretório atual
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../.env"),            // Diretório acima
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
