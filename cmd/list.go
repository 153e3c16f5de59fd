package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/rschubkegel/rschubkegel.com/internal/content"
	"github.com/rschubkegel/rschubkegel.com/internal/logger"
	"github.com/rschubkegel/rschubkegel.com/internal/model"
	"github.com/rschubkegel/rschubkegel.com/internal/schema"
)

var (
	listAll bool
	listTag string
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list <collection>",
	Short: "Lists the entries of a collection, newest first",
	Long: `The list command loads and validates all content, then prints the entries
of one collection newest first. Hidden slides are left out unless --all is set.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		if _, ok := schema.Collections.Lookup(name); !ok {
			return fmt.Errorf("unknown collection %q (known: %s)", name, strings.Join(schema.Collections.Names(), ", "))
		}

		site, err := content.NewLoader(appConfig.ContentDir, schema.Collections, logger.Log).Load(cmd.Context())
		if err != nil {
			return err
		}

		entries := site.Collection(name)
		if !listAll {
			entries = model.Visible(entries)
		}
		if listTag != "" {
			entries = model.ByTag(entries)[listTag]
		}
		printEntries(cmd.OutOrStdout(), name, entries)
		return nil
	},
}

func printEntries(out io.Writer, collection string, entries []*model.Entry) {
	titleCaser := cases.Title(language.English)
	fmt.Fprintf(out, "%s (%d)\n", titleCaser.String(collection), len(entries))
	for _, e := range entries {
		marker := ""
		if e.Data.IsHidden() {
			marker = " [hidden]"
		}
		fmt.Fprintf(out, "  %s  %s  %s%s\n", e.Data.Published.Format("2006-01-02"), e.Slug, e.Data.Title, marker)
		if len(e.Data.Tags) > 0 {
			fmt.Fprintf(out, "              tags: %s\n", strings.Join(e.Data.Tags, ", "))
		}
	}
}

func init() {
	listCmd.Flags().BoolVarP(&listAll, "all", "a", false, "Include hidden entries")
	listCmd.Flags().StringVarP(&listTag, "tag", "t", "", "Only list entries with this tag")
	rootCmd.AddCommand(listCmd)
}
