package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/gategrid/pkg/errors"
	"github.com/matzehuels/gategrid/pkg/replay"
)

// replayCommand creates the command replaying a gesture script.
func (c *CLI) replayCommand() *cobra.Command {
	var (
		opts  editorOpts
		watch bool
	)

	cmd := &cobra.Command{
		Use:   "replay [script.toml]",
		Short: "Replay a gesture script and print the resulting grid",
		Long: `Replay a gesture script against an empty grid.

Each [[step]] table is one gesture: drop, drag, expand, collapse or toggle.
Steps may declare the error or diagnostic code they expect; the command fails
when any step produces something else.

With --watch the script is replayed again whenever it or the catalog file
changes, until interrupted.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if watch {
				return c.watchReplay(cmd.Context(), args[0], opts)
			}
			return c.runReplay(cmd.Context(), args[0], opts)
		},
	}

	opts.register(cmd)
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "replay again when the script or catalog changes")
	return cmd
}

// watchReplay replays path once, then again on every change until ctx is
// cancelled. Failed replays are reported but do not stop the loop.
func (c *CLI) watchReplay(ctx context.Context, path string, opts editorOpts) error {
	logger := loggerFromContext(ctx)

	w, err := replay.NewWatcher(c.watchedFiles(path, opts)...)
	if err != nil {
		return err
	}
	defer w.Close()

	if err := c.runReplay(ctx, path, opts); err != nil {
		printError("%s", errors.UserMessage(err))
	}
	printInfo("Watching %s for changes", path)

	for {
		select {
		case <-ctx.Done():
			return nil
		case name, ok := <-w.Events:
			if !ok {
				return nil
			}
			printNewline()
			printInfo("%s changed", name)
			if err := c.runReplay(ctx, path, opts); err != nil {
				printError("%s", errors.UserMessage(err))
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch failed", "err", err)
		}
	}
}

// watchedFiles lists the script and the catalog file the replay loads.
func (c *CLI) watchedFiles(script string, opts editorOpts) []string {
	files := []string{script}
	if cat := c.catalogPath(opts.catalog); cat != "" {
		files = append(files, cat)
	}
	return files
}

func (c *CLI) runReplay(ctx context.Context, path string, opts editorOpts) error {
	logger := loggerFromContext(ctx)

	script, err := replay.LoadFile(path)
	if err != nil {
		return err
	}
	ed, err := c.newEditor(logger, opts)
	if err != nil {
		return err
	}

	prog := newProgress(logger)
	rep := replay.NewRunner(ed, logger).Run(script)
	prog.done(fmt.Sprintf("Replayed %d steps", len(rep.Results)))

	if script.Description != "" {
		fmt.Println(StyleTitle.Render(script.Description))
	}
	for i, res := range rep.Results {
		printResult(i+1, res)
	}

	printNewline()
	fmt.Println(gridView(rep.Layout, ed.Catalog(), ed.Spec()))
	printNewline()
	printKeyValue("tiles", StyleNumber.Render(fmt.Sprint(rep.Layout.Len())))
	printKeyValue("expansion", rep.Expansion.String())

	if n := rep.Mismatches(); n > 0 {
		return errors.New(errors.ErrCodeInvalidScript, "%d of %d steps did not match their expectation", n, len(rep.Results))
	}
	return nil
}

func printResult(n int, res replay.Result) {
	var codes []string
	for _, code := range res.Codes() {
		codes = append(codes, string(code))
	}
	line := fmt.Sprintf("%2d %s", n, res.Step)
	if len(codes) > 0 {
		line += " " + StyleDim.Render(strings.Join(codes, ","))
	}

	switch {
	case res.Failed():
		printError("%s: %s", line, errors.UserMessage(res.Err))
	case res.Mismatch:
		printError("%s %s", line, StyleWarning.Render("expected "+expectation(res.Step.Expect)))
	case res.Err != nil:
		printWarning("%s: %s", line, errors.UserMessage(res.Err))
	default:
		printSuccess("%s", line)
	}
	for _, d := range res.Outcome.Diagnostics {
		printDetail("%s", d)
	}
}

func expectation(code errors.Code) string {
	if code == "" {
		return "success"
	}
	return string(code)
}
