package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"evalgo.org/simfabric/internal/compiler"
	"evalgo.org/simfabric/internal/engine"
	"evalgo.org/simfabric/internal/summary"
)

var summaryCmd = &cobra.Command{
	Use:   "summary [file]",
	Short: "Print a human-readable summary of a compiled platform",
	Long: `Compile a platform document and print its zone hierarchy, host
population and disk population.

Examples:
  simfabric summary datacenter.json
  simfabric summary`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSummary,
}

func runSummary(cmd *cobra.Command, args []string) error {
	doc, _, err := loadDocument(args)
	if err != nil {
		return err
	}

	e := engine.New()
	if err := e.LoadPlatform(cmd.Context(), compiler.New(doc)); err != nil {
		return err
	}

	fmt.Print(summary.Summarize(e.Root()))
	return nil
}
