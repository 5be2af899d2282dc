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
	App                App                `mapstructure:",squash"`
	Server             Server             `mapstructure:",squash"`
	Database           Database           `mapstructure:",squash"`
	Meta               Meta               `mapstructure:",squash"`
	Together           Together           `mapstructure:",squash"`
	Launch             Launch             `mapstructure:",squash"`
	Retry              Retry              `mapstructure:",squash"`
	Render             Render             `mapstructure:",squash"`
	CampaignStatusSync CampaignStatusSync `mapstructure:",squash"`
	SecretKey          string             `mapstructure:"secret_key"`
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

type Meta struct {
	BaseURL               string    `mapstructure:"meta_base_url"`
	URL                   string    `mapstructure:"meta_url"`
	Version               string    `mapstructure:"meta_version"`
	AccessToken           string    `mapstructure:"meta_access_token"`
	AppID                 string    `mapstructure:"meta_app_id"`
	AppSecret             string    `mapstructure:"meta_app_secret"`
	LongLivedToken        string    `mapstructure:"meta_long_lived_token"`
	AdAccountID           string    `mapstructure:"meta_ad_account_id"`
	PageID                string    `mapstructure:"meta_page_id"`
	RequestTimeoutSeconds int       `mapstructure:"meta_request_timeout_seconds"`
	TokenExpiresAt        time.Time `mapstructure:"-"`
}

// Together guarda as credenciais e parâmetros do provedor de LLM
// usado para gerar os textos dos anúncios
type Together struct {
	BaseURL               string  `mapstructure:"together_base_url"`
	APIKey                string  `mapstructure:"together_api_key"`
	Model                 string  `mapstructure:"together_model"`
	Temperature           float64 `mapstructure:"together_temperature"`
	MaxTokens             int     `mapstructure:"together_max_tokens"`
	RequestTimeoutSeconds int     `mapstructure:"together_request_timeout_seconds"`
	TestMode              bool    `mapstructure:"together_test_mode"`
}

// Launch define os valores padrão do pipeline de lançamento de campanhas
type Launch struct {
	DefaultDailyBudgetCents int64  `mapstructure:"launch_default_daily_budget_cents"`
	DefaultCurrency         string `mapstructure:"launch_default_currency"`
	DefaultScheduleDays     int    `mapstructure:"launch_default_schedule_days"`
	DefaultAgeMin           int    `mapstructure:"launch_default_age_min"`
	DefaultAgeMax           int    `mapstructure:"launch_default_age_max"`
	DefaultStatus           string `mapstructure:"launch_default_status"`
	DefaultImageURL         string `mapstructure:"launch_default_image_url"`
	LinkURL                 string `mapstructure:"launch_link_url"`
}

// Retry configura a política de backoff exponencial do cliente da plataforma
type Retry struct {
	MaxAttempts       int     `mapstructure:"retry_max_attempts"`
	BaseDelayMs       int     `mapstructure:"retry_base_delay_ms"`
	BackoffMultiplier float64 `mapstructure:"retry_backoff_multiplier"`
}

type Render struct {
	APIKey    string `mapstructure:"render_api_key"`
	ServiceID string `mapstructure:"render_service_id"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type CampaignStatusSync struct {
	CronSchedule        string `mapstructure:"campaign_status_sync_cron"`
	LookbackDays        int    `mapstructure:"campaign_status_sync_lookback_days"`
	RequestDelaySeconds int    `mapstructure:"campaign_status_sync_request_delay_seconds"`
	Enabled             bool   `mapstructure:"campaign_status_sync_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/launcher")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("META_BASE_URL", "https://graph.facebook.com")
	viper.SetDefault("META_URL", "https://graph.facebook.com/v22.0")
	viper.SetDefault("META_VERSION", "v22.0")
	viper.SetDefault("META_APP_ID", "your_app_id")
	viper.SetDefault("META_APP_SECRET", "your_app_secret")
	viper.SetDefault("META_ACCESS_TOKEN", "your_access_token") // ONLY LOCAL
	viper.SetDefault("META_AD_ACCOUNT_ID", "")
	viper.SetDefault("META_PAGE_ID", "")
	viper.SetDefault("META_REQUEST_TIMEOUT_SECONDS", 30)

	viper.SetDefault("TOGETHER_BASE_URL", "https://api.together.xyz/v1")
	viper.SetDefault("TOGETHER_API_KEY", "")
	viper.SetDefault("TOGETHER_MODEL", "meta-llama/Meta-Llama-3.1-8B-Instruct-Turbo")
	viper.SetDefault("TOGETHER_TEMPERATURE", 0.7)
	viper.SetDefault("TOGETHER_MAX_TOKENS", 1000)
	viper.SetDefault("TOGETHER_REQUEST_TIMEOUT_SECONDS", 60)
	viper.SetDefault("TOGETHER_TEST_MODE", false)

	// Defaults do pipeline de lançamento
	viper.SetDefault("LAUNCH_DEFAULT_DAILY_BUDGET_CENTS", 8500)
	viper.SetDefault("LAUNCH_DEFAULT_CURRENCY", "USD")
	viper.SetDefault("LAUNCH_DEFAULT_SCHEDULE_DAYS", 30) // Campanha roda por 30 dias por padrão
	viper.SetDefault("LAUNCH_DEFAULT_AGE_MIN", 25)
	viper.SetDefault("LAUNCH_DEFAULT_AGE_MAX", 45)
	viper.SetDefault("LAUNCH_DEFAULT_STATUS", "PAUSED") // Criar pausada para revisão manual
	viper.SetDefault("LAUNCH_DEFAULT_IMAGE_URL", "https://placehold.co/600x400")
	viper.SetDefault("LAUNCH_LINK_URL", "https://example.com")

	// Defaults da política de retry do cliente da plataforma
	viper.SetDefault("RETRY_MAX_ATTEMPTS", 3)
	viper.SetDefault("RETRY_BASE_DELAY_MS", 500)
	viper.SetDefault("RETRY_BACKOFF_MULTIPLIER", 2.0)

	viper.SetDefault("SECRET_KEY", "your_secret_key")

	viper.SetDefault("RENDER_API_KEY", "")
	viper.SetDefault("RENDER_SERVICE_ID", "")

	// Defaults para sincronização de status das campanhas lançadas
	viper.SetDefault("CAMPAIGN_STATUS_SYNC_CRON", "0 */6 * * *")        // A cada 6 horas
	viper.SetDefault("CAMPAIGN_STATUS_SYNC_LOOKBACK_DAYS", 30)          // Sincroniza lançamentos dos últimos 30 dias
	viper.SetDefault("CAMPAIGN_STATUS_SYNC_REQUEST_DELAY_SECONDS", 2)   // 2 segundos entre requisições
	viper.SetDefault("CAMPAIGN_STATUS_SYNC_ENABLED", false)

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

	// Em produção os segredos vivem no secret store do Render e
	// sobrescrevem o que não veio do ambiente
	if config.Render.ServiceID != "" {
		renderClient := NewRenderClient(config)

		secretsByCode, err := renderClient.ListSecrets(config.Render.ServiceID)
		if err != nil {
			logrus.Error("Erro ao obter secrets do Render:", err)
			return nil, err
		}

		if token, ok := secretsByCode["meta_access_token"]; ok && config.Meta.AccessToken == "" {
			config.Meta.AccessToken = token
		}

		if key, ok := secretsByCode["together_api_key"]; ok && config.Together.APIKey == "" {
			config.Together.APIKey = key
		}
	}

	config.Meta.URL = fmt.Sprintf("%s/%s", config.Meta.BaseURL, config.Meta.Version)

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
		logrus.Info("Tentando carregar .env de:", location)
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
