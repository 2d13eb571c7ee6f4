package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"

	"consulta-cep/cep/application"
	"consulta-cep/cep/domain"
	"consulta-cep/cep/infra"
	"consulta-cep/config"
)

// app holds the wired dependencies shared by subcommands.
type app struct {
	Service application.Service
	Stats   domain.StatsReader

	closers []func() error
}

func newApp(ctx context.Context, cfg config.Configuration) (*app, error) {
	client := infra.NewViaCEPClient(cfg.ViaCEP.BaseURL, infra.WithTimeout(cfg.ViaCEP.Timeout))
	a := &app{Service: application.Service{Lookup: client}}

	if !cfg.Stats.Enabled {
		return a, nil
	}

	switch cfg.Stats.Backend {
	case config.BackendRedis:
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Stats.RedisAddr,
			Password: cfg.Stats.RedisPassword,
			DB:       cfg.Stats.RedisDB,
		})
		a.closers = append(a.closers, rdb.Close)

		pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
		err := rdb.Ping(pingCtx).Err()
		cancel()
		if err != nil {
			a.Close()
			return nil, fmt.Errorf("redis stats ping: %w", err)
		}

		store := infra.NewRedisStatsStore(
			rdb,
			infra.WithStatsPrefix(cfg.Stats.Prefix),
			infra.WithStatsTTL(cfg.Stats.TTL),
			infra.WithStatsBucket(cfg.Stats.Bucket),
			infra.WithStatsTrackCodes(cfg.Stats.TrackCodes),
		)
		a.Service.Stats = store
		a.Stats = store
	default:
		store := infra.NewMemoryStatsStore(infra.WithTrackCodes(cfg.Stats.TrackCodes))
		a.Service.Stats = store
		a.Stats = store
	}
	return a, nil
}

func (a *app) Close() {
	for _, c := range a.closers {
		if err := c(); err != nil {
			log.WithError(err).Warn("close failed")
		}
	}
	a.closers = nil
}
