package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/code972/hebmorph/internal/plugin"
	"github.com/code972/hebmorph/internal/ports"
)

var analyzerName string

var analyzeCmd = &cobra.Command{
	Use:   "analyze [TEXT]",
	Short: "Run an analyzer over text and print the token stream",
	RunE:  runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzerName, "analyzer", "hebrew",
		"analyzer to run (hebrew, hebrew_query, hebrew_query_light, hebrew_exact)")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()

	p, err := plugin.New(plugin.Config{DictPath: cfg.DictPath})
	if err != nil {
		return err
	}
	analyzer, err := p.Analyzer(analyzerName, ports.Settings{})
	if err != nil {
		return err
	}

	var text string
	if len(args) > 0 {
		text = strings.Join(args, " ")
	} else {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return err
		}
		text = string(data)
	}

	for _, tok := range analyzer.Analyze(text) {
		marker := " "
		if tok.Lemma {
			marker = "*"
		}
		fmt.Printf("%3d %s %s\n", tok.Position, marker, tok.Text)
	}
	return nil
}
