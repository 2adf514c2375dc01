// Command shortify shortens a URL the way the shortify page does: it loads the page, fills the
// form, submits it and prints the short URL, optionally copying it to the clipboard.
package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/go-resty/resty/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/danilovkiri/dk_go_shortify/internal/frontend"
	"github.com/danilovkiri/dk_go_shortify/internal/logger"
	"github.com/danilovkiri/dk_go_shortify/internal/page"
)

var errNotShortened = errors.New("the page did not return a short URL")

type options struct {
	server     string
	timeout    time.Duration
	copyResult bool
	logLevel   string
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := options{}
	cmd := &cobra.Command{
		Use:          "shortify <url>",
		Short:        "Shorten a URL through the shortify page",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := logger.NewLogger(opts.logLevel)
			if err != nil {
				return err
			}
			defer log.Sync()
			ctx, cancel := context.WithTimeout(cmd.Context(), opts.timeout)
			defer cancel()
			return run(ctx, cmd.OutOrStdout(), resty.New(), frontend.SystemClipboard{}, opts, args[0], log)
		},
	}
	cmd.Flags().StringVarP(&opts.server, "server", "s", "http://localhost:8080/", "address of the shortify page")
	cmd.Flags().DurationVarP(&opts.timeout, "timeout", "t", 10*time.Second, "time limit for the whole run")
	cmd.Flags().BoolVarP(&opts.copyResult, "copy", "c", false, "copy the short URL to the clipboard")
	cmd.Flags().StringVarP(&opts.logLevel, "log-level", "l", "warn", "log level")
	return cmd
}

func run(ctx context.Context, out io.Writer, client *resty.Client, cb frontend.Clipboard, opts options, link string, log *zap.SugaredLogger) error {
	res, err := client.R().SetContext(ctx).Get(opts.server)
	if err != nil {
		return err
	}
	if res.IsError() {
		return fmt.Errorf("loading %s: %s", opts.server, res.Status())
	}
	doc, err := page.Parse(bytes.NewReader(res.Body()), res.RawResponse.Request.URL)
	if err != nil {
		return err
	}
	p := frontend.NewPage(frontend.Bind(doc), frontend.NewSubmitter(client, log), frontend.NewCopier(cb, clock.New(), log))
	defer p.Close()

	p.Ready()
	if p.View.Input == nil {
		return fmt.Errorf("no %s input on %s", frontend.InputSelector, opts.server)
	}
	p.View.Input.SetValue(strings.TrimSpace(link))
	if !p.Submit(ctx) || p.View.ResultHeading == nil {
		return errNotShortened
	}
	fmt.Fprintln(out, p.View.ResultHeading.Text())

	if !opts.copyResult {
		return nil
	}
	if err := p.CopyClicked(ctx); err != nil {
		return fmt.Errorf("copying to clipboard: %w", err)
	}
	if p.View.CopyButton != nil {
		log.Infow("Copy button", "label", p.View.CopyButton.Text())
	}
	return nil
}
