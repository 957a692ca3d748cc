package config

import (
	"fmt"
	"os"
)

// Backends de datos soportados.
const (
	BackendREST     = "rest"
	BackendPostgres = "postgres"
)

type StoreConfig struct {
	URL        string
	ServiceKey string
	AnonKey    string
}

// Key devuelve la clave con la que firmar las peticiones: la service key
// si está configurada, si no la anónima.
func (s StoreConfig) Key() string {
	if s.ServiceKey != "" {
		return s.ServiceKey
	}
	return s.AnonKey
}

type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

func (d DBConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		d.Host, d.User, d.Password, d.Name, d.Port,
	)
}

type Config struct {
	Port    string
	Backend string
	Store   StoreConfig
	DB      DBConfig
}

// Load lee la configuración desde variables de entorno.
func Load() (*Config, error) {
	cfg := &Config{
		Port:    os.Getenv("PORT"),
		Backend: os.Getenv("STORE_BACKEND"),
		Store: StoreConfig{
			URL:        os.Getenv("STORE_URL"),
			ServiceKey: os.Getenv("STORE_SERVICE_KEY"),
			AnonKey:    os.Getenv("STORE_ANON_KEY"),
		},
		DB: DBConfig{
			Host:     os.Getenv("DB_HOST"),
			Port:     os.Getenv("DB_PORT"),
			User:     os.Getenv("DB_USER"),
			Password: os.Getenv("DB_PASSWORD"),
			Name:     os.Getenv("DB_NAME"),
		},
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.Backend == "" {
		cfg.Backend = BackendREST
	}

	switch cfg.Backend {
	case BackendREST:
		if cfg.Store.URL == "" {
			return nil, fmt.Errorf("STORE_URL es obligatoria con STORE_BACKEND=%s", BackendREST)
		}
		if cfg.Store.Key() == "" {
			return nil, fmt.Errorf("se necesita STORE_SERVICE_KEY o STORE_ANON_KEY con STORE_BACKEND=%s", BackendREST)
		}
	case BackendPostgres:
		if cfg.DB.Host == "" || cfg.DB.Name == "" {
			return nil, fmt.Errorf("DB_HOST y DB_NAME son obligatorias con STORE_BACKEND=%s", BackendPostgres)
		}
	default:
		return nil, fmt.Errorf("STORE_BACKEND desconocido: %q", cfg.Backend)
	}

	return cfg, nil
}
