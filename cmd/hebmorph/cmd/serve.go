package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/code972/hebmorph/internal/adapters/web"
	"github.com/code972/hebmorph/internal/plugin"
	"github.com/code972/hebmorph/internal/ports"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the dictionary diagnostics API",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()

	p, err := plugin.New(plugin.Config{DictPath: cfg.DictPath})
	if err != nil {
		return err
	}
	analyzer, err := p.Analyzer("hebrew", ports.Settings{})
	if err != nil {
		return err
	}

	srv := web.NewServer(p.Dictionary(), analyzer)
	if err := srv.Start(cfg.Listen); err != nil {
		return err
	}
	fmt.Printf("diagnostics server listening on %s\n", srv.Addr())

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	fmt.Println("shutting down")
	srv.Stop()
	return nil
}
