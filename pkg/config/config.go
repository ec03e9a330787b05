package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde
// env y opcionalmente archivo .env).
type Config struct {
	App   AppConfig
	HTTP  HTTPConfig
	JWT   JWTConfig
	API   APIConfig
	Store StoreConfig
	Admin AdminConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// JWTConfig configuración de los tokens de sesión.
type JWTConfig struct {
	Secret     string
	Expiration int // minutos
	Issuer     string
}

// APIConfig pass-through opcional al backend remoto.
// BaseURL vacío = modo mock (todo en memoria).
type APIConfig struct {
	BaseURL string
}

// StoreConfig snapshot local clave-valor. Driver "file" usa un archivo JSON
// en Path; "redis" usa RedisAddr.
type StoreConfig struct {
	Driver    string
	Path      string
	RedisAddr string
}

// AdminConfig identidad reservada del administrador (ruta mock de
// credenciales; no registrable vía storefront).
type AdminConfig struct {
	Username string
	Email    string
	Password string
}

// Load lee la configuración desde variables de entorno y opcionalmente desde
// un archivo .env en el directorio de trabajo. Las env vars tienen prioridad.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "cafeteria-soma"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		JWT: JWTConfig{
			Secret:     getString(v, "JWT_SECRET", "soma-dev-secret"),
			Expiration: getInt(v, "JWT_EXPIRATION_MINUTES", 120),
			Issuer:     getString(v, "JWT_ISSUER", "cafeteria-soma"),
		},
		API: APIConfig{
			BaseURL: getString(v, "API_BASE_URL", ""),
		},
		Store: StoreConfig{
			Driver:    getString(v, "STORE_DRIVER", "file"),
			Path:      getString(v, "STORE_PATH", "data/localstore.json"),
			RedisAddr: getString(v, "REDIS_ADDR", "localhost:6379"),
		},
		Admin: AdminConfig{
			Username: getString(v, "ADMIN_USERNAME", "admin"),
			Email:    getString(v, "ADMIN_EMAIL", "admin@cafeteriasoma.com"),
			Password: getString(v, "ADMIN_PASSWORD", "admin123"),
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
		case string:
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
