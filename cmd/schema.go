package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"

	"github.com/rschubkegel/rschubkegel.com/internal/schema"
)

var schemaFormat string

// schemaCmd represents the schema command
var schemaCmd = &cobra.Command{
	Use:   "schema [collection...]",
	Short: "Prints the field declarations of the content collections",
	Args: func(cmd *cobra.Command, args []string) error {
		for _, name := range args {
			if _, ok := schema.Collections.Lookup(name); !ok {
				return fmt.Errorf("unknown collection %q", name)
			}
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			args = schema.Collections.Names()
		}
		descriptions := make([]schema.Description, 0, len(args))
		for _, name := range args {
			s, _ := schema.Collections.Lookup(name)
			descriptions = append(descriptions, s.Describe())
		}
		return writeDescriptions(cmd.OutOrStdout(), schemaFormat, descriptions)
	},
}

func writeDescriptions(out io.Writer, format string, d []schema.Description) error {
	switch format {
	case "yaml":
		b, err := yaml.Marshal(d)
		if err != nil {
			return fmt.Errorf("failed to encode schemas as yaml: %w", err)
		}
		_, err = out.Write(b)
		return err
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(d)
	default:
		return fmt.Errorf("unsupported format %q (want yaml or json)", format)
	}
}

func init() {
	schemaCmd.Flags().StringVarP(&schemaFormat, "format", "f", "yaml", "Output format: yaml or json")
	rootCmd.AddCommand(schemaCmd)
}
