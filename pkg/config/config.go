package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App      AppConfig
	HTTP     HTTPConfig
	AI       AIConfig
	Advisory AdvisoryConfig
	Sheets   SheetsConfig
	Metrics  MetricsConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string // trace, debug, info, warn, error
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host        string
	Port        int
	BodyLimitMB int  // tamaño máximo de carga (importación de archivos)
	DocsEnabled bool // Swagger UI en /docs
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// BodyLimit tamaño máximo del cuerpo en bytes.
func (c HTTPConfig) BodyLimit() int {
	return c.BodyLimitMB * 1024 * 1024
}

// AIConfig proveedor de IA del asesor.
type AIConfig struct {
	Provider        string // gemini | anthropic
	GeminiAPIKey    string
	GeminiModel     string
	AnthropicAPIKey string
	AnthropicModel  string
}

// AdvisoryConfig políticas del asesor.
type AdvisoryConfig struct {
	Timeout      time.Duration
	RefreshEvery int    // refrescar recomendaciones cada N movimientos; 0 o negativo deshabilita
	RefreshCron  string // expresión cron (robfig/cron); vacío deshabilita
}

// SheetsConfig integración con Google Sheets.
type SheetsConfig struct {
	CredentialsPath string // JSON de cuenta de servicio; vacío deshabilita la importación remota
	DefaultRange    string
}

// MetricsConfig exposición de métricas Prometheus.
type MetricsConfig struct {
	Enabled bool
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, HTTP_PORT, GEMINI_API_KEY, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	return build(v)
}

func build(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "kitchen-stores"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		HTTP: HTTPConfig{
			Host:        getString(v, "HTTP_HOST", "0.0.0.0"),
			Port:        getInt(v, "HTTP_PORT", 8080),
			BodyLimitMB: getInt(v, "HTTP_BODY_LIMIT_MB", 10),
			DocsEnabled: getBool(v, "HTTP_DOCS_ENABLED", true),
		},
		AI: AIConfig{
			Provider:        strings.ToLower(getString(v, "AI_PROVIDER", "gemini")),
			GeminiAPIKey:    getString(v, "GEMINI_API_KEY", ""),
			GeminiModel:     getString(v, "GEMINI_MODEL", "gemini-2.0-flash"),
			AnthropicAPIKey: getString(v, "ANTHROPIC_API_KEY", ""),
			AnthropicModel:  getString(v, "ANTHROPIC_MODEL", "claude-3-5-haiku-20241022"),
		},
		Advisory: AdvisoryConfig{
			Timeout:      time.Duration(getInt(v, "ADVISORY_TIMEOUT_SECONDS", 20)) * time.Second,
			RefreshEvery: getInt(v, "ADVISORY_REFRESH_EVERY", 5),
			RefreshCron:  getString(v, "ADVISORY_REFRESH_CRON", "0 */6 * * *"),
		},
		Sheets: SheetsConfig{
			CredentialsPath: getString(v, "SHEETS_CREDENTIALS_PATH", ""),
			DefaultRange:    getString(v, "SHEETS_DEFAULT_RANGE", "A:Z"),
		},
		Metrics: MetricsConfig{
			Enabled: getBool(v, "METRICS_ENABLED", true),
		},
	}

	switch cfg.AI.Provider {
	case "gemini", "anthropic":
	default:
		return nil, fmt.Errorf("config: AI_PROVIDER %q no soportado (gemini, anthropic)", cfg.AI.Provider)
	}
	if cfg.HTTP.Port <= 0 || cfg.HTTP.Port > 65535 {
		return nil, fmt.Errorf("config: HTTP_PORT %d fuera de rango", cfg.HTTP.Port)
	}
	if cfg.HTTP.BodyLimitMB <= 0 {
		cfg.HTTP.BodyLimitMB = 10
	}
	if cfg.Advisory.Timeout <= 0 {
		cfg.Advisory.Timeout = 20 * time.Second
	}
	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, err := strconv.Atoi(strings.TrimSpace(v.GetString(key)))
			if err != nil {
				return def
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}

func getBool(v *viper.Viper, key string, def bool) bool {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case bool:
			return v.GetBool(key)
		case string:
			b, err := strconv.ParseBool(strings.TrimSpace(v.GetString(key)))
			if err != nil {
				return def
			}
			return b
		default:
			return v.GetBool(key)
		}
	}
	return def
}
