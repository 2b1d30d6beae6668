package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"evalgo.org/simfabric/internal/compiler"
	"evalgo.org/simfabric/internal/engine"
	"evalgo.org/simfabric/internal/platform"
	"evalgo.org/simfabric/internal/topology"
	"evalgo.org/simfabric/models"
)

var compileCheckOnly bool

var compileCmd = &cobra.Command{
	Use:   "compile [file]",
	Short: "Compile a platform document into a topology",
	Long: `Compile a platform document and print what was built.

The document is looked up in this order: the file argument, the
--platform-config override (or SF_PLATFORM_CONFIG), a default
platform_config.json beside the executable, then the working
directory.

Examples:
  simfabric compile datacenter.json
  simfabric compile --check datacenter.yaml
  SF_PLATFORM_CONFIG=/opt/dc.json simfabric compile`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCompile,
}

func init() {
	compileCmd.Flags().BoolVar(&compileCheckOnly, "check", false, "validate the document without compiling")
}

func runCompile(cmd *cobra.Command, args []string) error {
	doc, path, err := loadDocument(args)
	if err != nil {
		return err
	}

	comp := compiler.New(doc)
	if compileCheckOnly {
		if result := comp.Validate(); !result.Valid {
			return fmt.Errorf("%s", result.Error())
		}
		fmt.Printf("%s: document is valid\n", path)
		return nil
	}

	e := engine.New()
	if err := e.LoadPlatform(cmd.Context(), comp); err != nil {
		return err
	}

	zones, links, routes := 0, 0, 0
	disks := 0
	topology.Walk(e.Root(), func(z *topology.Zone) bool {
		zones++
		links += len(z.Links())
		routes += len(z.Routes())
		for _, h := range z.Hosts() {
			disks += len(h.Disks())
		}
		return true
	})

	fmt.Printf("%s: compiled %d zones, %d hosts, %d disks, %d links, %d routes, %d filesystems\n",
		path, zones-1, len(e.AllHosts()), disks, links, routes, len(e.AllFilesystems()))
	return nil
}

// loadDocument resolves and parses the platform document from the
// optional positional argument, falling back to the configured
// override and the default resolution order.
func loadDocument(args []string) (*models.Platform, string, error) {
	override := cfg.Platform.Config
	if len(args) > 0 {
		override = args[0]
	}
	return platform.Resolve(override)
}
