package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/crdptools/crdpmap/config"
	"github.com/crdptools/crdpmap/extract"
	"github.com/crdptools/crdpmap/render"
	"github.com/crdptools/crdpmap/tsparse"
)

// NewGenerateCommand creates the generate command.
func NewGenerateCommand() *cobra.Command {
	var cfgPath string
	var input, output string

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate the protocol mapping declaration file",
		Long: `Generate parses the protocol declaration file, extracts every domain's
events and commands, and writes the mapping declaration. The output file is
only written after the whole mapping has been extracted and rendered.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			verbose, _ := cmd.Flags().GetBool("verbose")

			cfg := config.Default()
			if cfgPath != "" {
				loaded, err := config.Load(cfgPath)
				if err != nil {
					return err
				}
				cfg = loaded
			}
			if input != "" {
				cfg.Input = input
			}
			if output != "" {
				cfg.Output = output
			}

			return runGenerate(context.Background(), cfg, verbose, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVarP(&cfgPath, "config", "c", "", "Path to generator configuration file")
	cmd.Flags().StringVarP(&input, "input", "i", "", "Path to the protocol declaration file")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Path to write the generated mapping to")

	return cmd
}

// runGenerate drives one generation run: parse, extract, render, persist.
func runGenerate(ctx context.Context, cfg config.Config, verbose bool, out io.Writer) error {
	parser := tsparse.NewParser()
	tree, err := parser.ParseFile(ctx, cfg.Input)
	if err != nil {
		return fmt.Errorf("parse %s: %w", cfg.Input, err)
	}

	mapping, err := extract.Extract(tree, extract.Options{
		RootClient:   cfg.RootClient,
		AsyncWrapper: cfg.AsyncWrapper,
	})
	if err != nil {
		return fmt.Errorf("extract protocol mapping: %w", err)
	}

	if verbose {
		_, _ = fmt.Fprintf(out, "extracted %d events and %d commands\n",
			len(mapping.Events()), len(mapping.Commands()))
	}

	text := render.Mapping(mapping)
	if err := os.WriteFile(cfg.Output, []byte(text), 0644); err != nil {
		return fmt.Errorf("write %s: %w", cfg.Output, err)
	}

	_, _ = fmt.Fprintf(out, "Wrote protocol mapping to %s\n", cfg.Output)
	return nil
}
