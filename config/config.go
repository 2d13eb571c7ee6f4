// Package config carrega a configuração do processo a partir de variáveis de
// ambiente (e de um .env opcional no diretório atual).
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

type Configuration struct {
	Server struct {
		ListenAddr        string        `env:"LISTEN_ADDR" envDefault:":8080"`
		ReadHeaderTimeout time.Duration `env:"READ_HEADER_TIMEOUT" envDefault:"10s"`
		ShutdownTimeout   time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
		ClientKeyHeader   string        `env:"CLIENT_KEY_HEADER"`
		TrustXFF          bool          `env:"TRUST_XFF" envDefault:"false"`
	}
	ViaCEP struct {
		BaseURL string `env:"VIACEP_BASE_URL" envDefault:"https://viacep.com.br/ws"`
		// 0 mantém o padrão do transporte (sem timeout próprio).
		Timeout time.Duration `env:"VIACEP_TIMEOUT" envDefault:"0s"`
	}
	Stats struct {
		Enabled       bool          `env:"CEP_STATS_ENABLED" envDefault:"false"`
		Backend       string        `env:"CEP_STATS_BACKEND" envDefault:"memory"`
		RedisAddr     string        `env:"CEP_STATS_REDIS_ADDR"`
		RedisPassword string        `env:"CEP_STATS_REDIS_PASSWORD"`
		RedisDB       int           `env:"CEP_STATS_REDIS_DB" envDefault:"0"`
		Prefix        string        `env:"CEP_STATS_PREFIX" envDefault:"cep:stats"`
		TTL           time.Duration `env:"CEP_STATS_TTL" envDefault:"24h"`
		Bucket        string        `env:"CEP_STATS_BUCKET" envDefault:"minute"`
		TrackCodes    bool          `env:"CEP_STATS_TRACK_CODES" envDefault:"false"`
	}

	Debug bool `env:"DEBUG" envDefault:"false"`
}

const (
	BackendMemory = "memory"
	BackendRedis  = "redis"
)

// Load lê o .env (se existir), faz o parse do ambiente e valida o resultado.
func Load() (Configuration, error) {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.WithError(err).Warn("Error loading .env file")
	}

	var cfg Configuration
	if err := env.Parse(&cfg); err != nil {
		return Configuration{}, fmt.Errorf("parse environment: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Configuration{}, err
	}
	return cfg, nil
}

func (c *Configuration) validate() error {
	if strings.TrimSpace(c.ViaCEP.BaseURL) == "" {
		return errors.New("VIACEP_BASE_URL must not be empty")
	}
	if c.ViaCEP.Timeout < 0 {
		return errors.New("VIACEP_TIMEOUT must be >= 0")
	}

	c.Stats.Backend = strings.ToLower(strings.TrimSpace(c.Stats.Backend))
	if !c.Stats.Enabled {
		return nil
	}
	switch c.Stats.Backend {
	case BackendMemory:
	case BackendRedis:
		if strings.TrimSpace(c.Stats.RedisAddr) == "" {
			return errors.New("CEP_STATS_REDIS_ADDR is required when CEP_STATS_BACKEND=redis")
		}
	default:
		return fmt.Errorf("CEP_STATS_BACKEND must be %q or %q, got %q", BackendMemory, BackendRedis, c.Stats.Backend)
	}
	return nil
}

// ApplyLogging ajusta o logrus conforme Debug.
func (c Configuration) ApplyLogging() {
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	if c.Debug {
		log.SetLevel(log.DebugLevel)
		log.Warn("DEBUG MODE ENABLED")
		return
	}
	log.SetLevel(log.InfoLevel)
}
