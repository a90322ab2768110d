// Command corpusfix re-derives the verdict of every bundled example record
// and patches drifted category labels in place. It always exits 0: missing
// or malformed collections are logged and skipped, never fatal, so a partial
// corpus does not block repairing the rest.
package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/phishwise/phishwise/internal/config"
	"github.com/phishwise/phishwise/internal/corpus"
	"github.com/phishwise/phishwise/internal/domain/classify"
)

func main() {
	cfg := config.Load()
	dir := cfg.CorpusDir

	root := &cobra.Command{
		Use:   "corpusfix",
		Short: "Reconcile stored example categories with the classifier",
		Run: func(cmd *cobra.Command, args []string) {
			log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
			m := corpus.NewMaintainer(classify.New(), log)
			m.Run(dir)
		},
	}
	root.Flags().StringVar(&dir, "dir", dir, "directory holding the corpus collections")

	// errors surface through the logger; the repair pass never fails the process
	_ = root.Execute()
}
