// Package cmd provides the crdpmap CLI commands.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/crdptools/crdpmap/version"
)

// NewRootCommand creates the root command for the crdpmap CLI.
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "crdpmap",
		Version: version.Version(),
		Short:   "Generate protocol mapping declarations from a CRDP schema",
		Long: `crdpmap extracts the event and command structure of a remote debugging
protocol declaration file and generates a mapping declaration consumed for
compile-time validation of protocol message handling.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output")

	return cmd
}
