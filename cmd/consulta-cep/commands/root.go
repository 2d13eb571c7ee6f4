package commands

import (
	"context"
	"errors"
	"os/signal"
	"syscall"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"consulta-cep/config"
)

var (
	cfg    config.Configuration
	appCtx *app
)

// errOutcome marks a lookup that finished with an error outcome; the message
// was already printed.
var errOutcome = errors.New("lookup failed")

func Execute() error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	return execute(ctx, newRootCmd())
}

func execute(ctx context.Context, root *cobra.Command) error {
	err := root.ExecuteContext(ctx)
	if appCtx != nil {
		appCtx.Close()
		appCtx = nil
	}
	if err != nil && !errors.Is(err, errOutcome) {
		log.WithError(err).Error("consulta-cep failed")
	}
	return err
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "consulta-cep",
		Short:         "Brazilian postal code (CEP) lookup via ViaCEP",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.Load()
			if err != nil {
				return err
			}
			cfg.ApplyLogging()

			appCtx, err = newApp(cmd.Context(), cfg)
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd)
		},
	}

	root.AddCommand(serveCmd(), lookupCmd())
	return root
}
