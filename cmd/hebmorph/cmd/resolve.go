package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/code972/hebmorph/internal/plugin"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Resolve and load the dictionary, then report what was found",
	RunE:  runResolve,
}

func runResolve(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()

	p, err := plugin.New(plugin.Config{DictPath: cfg.DictPath})
	if err != nil {
		return err
	}

	d := p.Dictionary()
	fmt.Printf("dictionary: %s\n", d.Name())
	fmt.Printf("source:     %s\n", d.SourcePath())
	fmt.Printf("entries:    %d\n", d.Len())
	return nil
}
