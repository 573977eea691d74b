package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env
// y opcionalmente archivo).
type Config struct {
	App    AppConfig
	API    APIConfig
	Media  MediaConfig
	Search SearchConfig
	Stub   StubConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// APIConfig ubicación del backend y de las credenciales locales.
type APIConfig struct {
	BaseURL string
	// CredentialsPath archivo JSON con la sesión persistida. Vacío usa
	// <config-dir>/admin-revendedores/session.json.
	CredentialsPath string
}

// CredentialsFile devuelve la ruta efectiva del archivo de sesión.
func (c APIConfig) CredentialsFile() string {
	if c.CredentialsPath != "" {
		return c.CredentialsPath
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = "."
	}
	return filepath.Join(dir, "admin-revendedores", "session.json")
}

// MediaConfig servicio externo de subida de videos.
type MediaConfig struct {
	UploadURL    string
	UploadPreset string
}

// SearchConfig comportamiento de la búsqueda de productos.
type SearchConfig struct {
	DebounceMS int
}

// Debounce devuelve el intervalo de espera de la búsqueda mientras se escribe.
func (c SearchConfig) Debounce() time.Duration {
	return time.Duration(c.DebounceMS) * time.Millisecond
}

// StubConfig backend de desarrollo en memoria (cmd/stubapi).
type StubConfig struct {
	Host       string
	Port       int
	JWTSecret  string
	JWTIssuer  string
	Expiration int // minutos
}

// Addr devuelve la dirección de escucha (host:port).
func (c StubConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde
// archivo). Las env vars tienen prioridad. Nombres esperados: APP_ENV,
// API_BASE_URL, MEDIA_UPLOAD_URL, JWT_SECRET, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	// También intenta config.env
	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig() // ignoramos error si no existe

	// Bind de variables de entorno (Viper las lee automáticamente si
	// AutomaticEnv está activo)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "admin-revendedores"),
		},
		API: APIConfig{
			BaseURL:         getString(v, "API_BASE_URL", "http://localhost:8080"),
			CredentialsPath: getString(v, "CREDENTIALS_PATH", ""),
		},
		Media: MediaConfig{
			UploadURL:    getString(v, "MEDIA_UPLOAD_URL", ""),
			UploadPreset: getString(v, "MEDIA_UPLOAD_PRESET", "reseller_videos"),
		},
		Search: SearchConfig{
			DebounceMS: getInt(v, "SEARCH_DEBOUNCE_MS", 500),
		},
		Stub: StubConfig{
			Host:       getString(v, "STUB_HOST", "0.0.0.0"),
			Port:       getInt(v, "STUB_PORT", 8080),
			JWTSecret:  getString(v, "JWT_SECRET", "stub-secret"),
			JWTIssuer:  getString(v, "JWT_ISSUER", "admin-revendedores"),
			Expiration: getInt(v, "JWT_EXPIRATION_MINUTES", 480),
		},
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
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
