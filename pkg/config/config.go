package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App      AppConfig
	DB       DBConfig
	LowStock LowStockConfig
	CSV      CSVConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, production
	Name     string
	LogLevel string // trace, debug, info, warn, error
}

// DBConfig configuración de la base SQLite embebida.
type DBConfig struct {
	Path          string // archivo .db; con InMemory es solo el nombre de la base compartida
	InMemory      bool   // base efímera en memoria (DB_PATH=":memory:" o tests)
	BusyTimeoutMS int
}

// DefaultDBPath archivo de base por defecto.
const DefaultDBPath = "inventario.db"

// DSN devuelve el DSN para el driver SQLite con llaves foráneas activas.
// La ruta se escapa por segmento: '#', '?' y '%' son sintaxis de URI en "file:".
func (c DBConfig) DSN() string {
	q := url.Values{}
	q.Set("_foreign_keys", "on")
	if c.BusyTimeoutMS > 0 {
		q.Set("_busy_timeout", strconv.Itoa(c.BusyTimeoutMS))
	}
	if c.InMemory {
		q.Set("mode", "memory")
		q.Set("cache", "shared")
	}
	path := c.Path
	if path == "" {
		path = DefaultDBPath
	}
	return fmt.Sprintf("file:%s?%s", escapePath(path), q.Encode())
}

func escapePath(path string) string {
	segments := strings.Split(path, "/")
	for i, s := range segments {
		segments[i] = url.PathEscape(s)
	}
	return strings.Join(segments, "/")
}

// LowStockConfig intervalo del aviso periódico de stock bajo.
type LowStockConfig struct {
	Interval time.Duration
}

// CSVConfig opciones de importación/exportación.
type CSVConfig struct {
	Encoding string // utf-8, latin1, windows-1252 (solo importación)
}

// Load lee la configuración desde variables de entorno y opcionalmente desde archivos.
// Prioridad: env vars, luego .env, luego config.{yaml,json,toml,env,...} en . o ./config.
// Nombres esperados: APP_ENV, DB_PATH, LOW_STOCK_INTERVAL, CSV_ENCODING, etc.
func Load() (*Config, error) {
	v := viper.New()

	// el tipo sale de la extensión del archivo encontrado
	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("leer archivo de configuración: %w", err)
		}
	}

	dotenv := viper.New()
	dotenv.SetConfigFile(".env")
	dotenv.SetConfigType("env")
	if err := dotenv.ReadInConfig(); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("leer .env: %w", err)
		}
	} else if err := v.MergeConfigMap(dotenv.AllSettings()); err != nil {
		return nil, fmt.Errorf("combinar .env: %w", err)
	}

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "inventario-local"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		DB: DBConfig{
			Path:          getString(v, "DB_PATH", DefaultDBPath),
			BusyTimeoutMS: getInt(v, "DB_BUSY_TIMEOUT_MS", 5000),
		},
		CSV: CSVConfig{
			Encoding: strings.ToLower(getString(v, "CSV_ENCODING", "utf-8")),
		},
	}

	interval, err := getDuration(v, "LOW_STOCK_INTERVAL", 5*time.Minute)
	if err != nil {
		return nil, err
	}
	cfg.LowStock.Interval = interval

	if cfg.DB.Path == ":memory:" {
		cfg.DB.Path = cfg.App.Name
		cfg.DB.InMemory = true
	}

	if cfg.LowStock.Interval <= 0 {
		return nil, fmt.Errorf("LOW_STOCK_INTERVAL debe ser positivo: %s", cfg.LowStock.Interval)
	}
	switch cfg.CSV.Encoding {
	case "utf-8", "utf8", "latin1", "iso-8859-1", "windows-1252":
	default:
		return nil, fmt.Errorf("CSV_ENCODING no soportado: %q", cfg.CSV.Encoding)
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
			n, err := strconv.Atoi(v.GetString(key))
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

// getDuration exige unidad (30s, 5m); un valor mal formado es error, no el default.
func getDuration(v *viper.Viper, key string, def time.Duration) (time.Duration, error) {
	if !v.IsSet(key) {
		return def, nil
	}
	d, err := time.ParseDuration(v.GetString(key))
	if err != nil {
		return 0, fmt.Errorf("%s inválido %q: %w", key, v.GetString(key), err)
	}
	return d, nil
}
