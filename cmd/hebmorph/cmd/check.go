package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/spf13/cobra"

	"github.com/code972/hebmorph/internal/dict"
	"github.com/code972/hebmorph/internal/plugin"
)

var (
	checkFile        string
	checkConcurrency int
)

var checkCmd = &cobra.Command{
	Use:   "check [WORD...]",
	Short: "Check words against the loaded dictionary",
	RunE:  runCheck,
}

func init() {
	checkCmd.Flags().StringVar(&checkFile, "file", "", "check newline-separated words from a file")
	checkCmd.Flags().IntVar(&checkConcurrency, "concurrency", 4, "worker pool size for --file")
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()

	p, err := plugin.New(plugin.Config{DictPath: cfg.DictPath})
	if err != nil {
		return err
	}
	d := p.Dictionary()

	if checkFile == "" {
		if len(args) == 0 {
			return fmt.Errorf("no words given (pass words or --file)")
		}
		for _, word := range args {
			fmt.Println(checkLine(d, word))
		}
		return nil
	}

	f, err := os.Open(checkFile)
	if err != nil {
		return err
	}
	defer f.Close()

	pool, err := ants.NewPool(checkConcurrency)
	if err != nil {
		return fmt.Errorf("pool: %w", err)
	}
	defer pool.Release()

	var wg sync.WaitGroup
	var mu sync.Mutex // serializes output lines

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		word := strings.TrimSpace(sc.Text())
		if word == "" {
			continue
		}
		wg.Add(1)
		if err := pool.Submit(func() {
			defer wg.Done()
			line := checkLine(d, word)
			mu.Lock()
			fmt.Println(line)
			mu.Unlock()
		}); err != nil {
			wg.Done()
			return fmt.Errorf("submit: %w", err)
		}
	}
	wg.Wait()
	return sc.Err()
}

func checkLine(d *dict.Dictionary, word string) string {
	lemmas, ok := d.Lookup(word)
	if !ok {
		return fmt.Sprintf("%s\tNOT FOUND", word)
	}
	texts := make([]string, 0, len(lemmas))
	for _, lm := range lemmas {
		texts = append(texts, lm.Text)
	}
	return fmt.Sprintf("%s\t%s", word, strings.Join(texts, " "))
}
