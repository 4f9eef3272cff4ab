package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"searchbox/internal/domain"
	"searchbox/internal/history"
	"searchbox/internal/textutil"
)

func newHistoryCommand(opts *options) *cobra.Command {
	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "Inspect or clear the selection history",
	}

	var asJSON bool
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "Print the selection history, oldest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withTracker(cmd, opts, func(tracker *history.Tracker) error {
				items, err := tracker.Load()
				if errors.Is(err, history.ErrMalformed) {
					printWarn(cmd.ErrOrStderr(), err.Error())
				} else if err != nil {
					return err
				}
				if asJSON {
					return printHistoryJSON(cmd.OutOrStdout(), items)
				}
				printHistoryTable(cmd.OutOrStdout(), items)
				return nil
			})
		},
	}
	listCmd.Flags().BoolVar(&asJSON, "json", false, "Print the stored JSON array")

	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove the stored selection history",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withTracker(cmd, opts, func(tracker *history.Tracker) error {
				if err := tracker.Clear(); err != nil {
					return err
				}
				printOK(cmd.OutOrStdout(), "History cleared")
				return nil
			})
		},
	}

	historyCmd.AddCommand(listCmd, clearCmd)
	return historyCmd
}

// withTracker opens storage for the duration of fn
func withTracker(cmd *cobra.Command, opts *options, fn func(*history.Tracker) error) error {
	cfg, err := opts.loadConfig(cmd)
	if err != nil {
		return err
	}
	store, err := openStorage(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	return fn(history.NewTracker(store, cfg.Storage.HistoryKey))
}

func printHistoryTable(w io.Writer, items []domain.ResultItem) {
	if len(items) == 0 {
		fmt.Fprintln(w, "No history yet.")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tID\tTITLE\tSUBTITLE")
	for i, item := range items {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n",
			i+1,
			textutil.SingleLine(string(item.ID)),
			textutil.Truncate(textutil.SingleLine(item.DisplayTitle()), 48),
			textutil.Truncate(textutil.SingleLine(item.Subtitle), 40),
		)
	}
	_ = tw.Flush()
}

func printHistoryJSON(w io.Writer, items []domain.ResultItem) error {
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode history: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
