package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/rschubkegel/rschubkegel.com/internal/config"
	"github.com/rschubkegel/rschubkegel.com/internal/content"
	"github.com/rschubkegel/rschubkegel.com/internal/logger"
	"github.com/rschubkegel/rschubkegel.com/internal/schema"
)

var watchContent bool

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validates every content entry against its collection schema",
	Long: `The check command reads every Markdown file under the content directory,
validates its front matter against the schema of the collection it lives in
(blog or slides) and reports every invalid field of every file at once.
With --watch it keeps running and re-validates whenever content changes.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		err := runCheck(ctx, appConfig, cmd.OutOrStdout())
		if !watchContent {
			return err
		}
		if err != nil {
			logger.Sugar.Errorw("content check failed", "error", err)
		}

		logger.Sugar.Infow("watching for changes", "dir", appConfig.ContentDir)
		return content.Watch(ctx, appConfig.ContentDir, content.DefaultDebounce, logger.Log, func() {
			logger.Sugar.Infow("re-validating content due to changes")
			if err := runCheck(ctx, appConfig, cmd.OutOrStdout()); err != nil {
				logger.Sugar.Errorw("content check failed", "error", err)
			}
		})
	},
}

func runCheck(ctx context.Context, cfg config.Config, out io.Writer) error {
	loader := content.NewLoader(cfg.ContentDir, schema.Collections, logger.Log)
	site, err := loader.Load(ctx)
	if err != nil {
		var loadErr *content.LoadError
		if errors.As(err, &loadErr) {
			printLoadError(out, loadErr)
			return fmt.Errorf("%d invalid content file(s)", len(loadErr.Files))
		}
		return err
	}

	for _, name := range schema.Collections.Names() {
		fmt.Fprintf(out, "%s: %d entries\n", name, len(site.Collection(name)))
	}
	fmt.Fprintln(out, "All content is valid.")
	return nil
}

func printLoadError(out io.Writer, loadErr *content.LoadError) {
	for _, f := range loadErr.Files {
		var verr *schema.ValidationError
		if !errors.As(f.Err, &verr) {
			fmt.Fprintf(out, "%s\n  %v\n", f.Path, f.Err)
			continue
		}
		fmt.Fprintf(out, "%s (%s)\n", f.Path, verr.Collection)
		for _, issue := range verr.Issues {
			fmt.Fprintf(out, "  - %s [%s]: %s\n", issue.Path, issue.Code, issue.Message)
		}
	}
}

func init() {
	checkCmd.Flags().BoolVarP(&watchContent, "watch", "w", false, "Keep running and re-validate on changes")
	rootCmd.AddCommand(checkCmd)
}
