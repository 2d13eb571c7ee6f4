package commands

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"consulta-cep/cep"
)

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the CEP lookup web form",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd)
		},
	}
	cmd.Flags().String("addr", "", "listen address (overrides LISTEN_ADDR)")
	return cmd
}

func runServe(cmd *cobra.Command) error {
	addr := cfg.Server.ListenAddr
	if f := cmd.Flags().Lookup("addr"); f != nil && f.Value.String() != "" {
		addr = f.Value.String()
	}

	if cfg.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	h := cep.NewRouter(cep.Options{
		Service:            appCtx.Service,
		Stats:              appCtx.Stats,
		KeyHeader:          cfg.Server.ClientKeyHeader,
		TrustXForwardedFor: cfg.Server.TrustXFF,
	})

	srv := &http.Server{
		Addr:              addr,
		Handler:           h,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		ReadTimeout:       30 * time.Second,
		IdleTimeout:       90 * time.Second,
	}

	ctx := cmd.Context()
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	log.WithFields(log.Fields{
		"addr":   addr,
		"viacep": cfg.ViaCEP.BaseURL,
	}).Info("consulta-cep listening")
	log.WithFields(log.Fields{
		"enabled":    cfg.Stats.Enabled,
		"backend":    cfg.Stats.Backend,
		"bucket":     cfg.Stats.Bucket,
		"ttl":        cfg.Stats.TTL.String(),
		"trackCodes": cfg.Stats.TrackCodes,
	}).Info("cep stats")

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
