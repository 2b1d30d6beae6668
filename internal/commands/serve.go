package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"evalgo.org/simfabric/internal/api"
	"evalgo.org/simfabric/internal/compiler"
	"evalgo.org/simfabric/internal/engine"
)

var serveCmd = &cobra.Command{
	Use:   "serve [file]",
	Short: "Serve a compiled platform over the inspection API",
	Long: `Compile a platform document and expose the resulting topology
read-only over HTTP: zone tree, hosts, filesystems, summary and
fingerprint.

Example:
  simfabric serve datacenter.json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	doc, path, err := loadDocument(args)
	if err != nil {
		return err
	}

	e := engine.New()
	if err := e.LoadPlatform(cmd.Context(), compiler.New(doc)); err != nil {
		return err
	}

	server := api.New(cfg, e)

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	log.Info().
		Str("document", path).
		Str("addr", fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)).
		Msg("inspection server started")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case <-sigCh:
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	return server.Shutdown(ctx)
}
