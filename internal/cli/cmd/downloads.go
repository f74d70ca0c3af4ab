package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/chanomhub/desktop/internal/cli/model"
	"github.com/chanomhub/desktop/internal/domain/entity"
	"github.com/chanomhub/desktop/internal/domain/repository"
)

var errNoJournal = errors.New("download journal is not available")

var (
	historySince   string
	historyOutcome string
	historyLimit   int
	historyJSON    bool
	pruneOlderThan string
)

var downloadsCmd = &cobra.Command{
	Use:   "downloads",
	Short: "Inspect finished downloads",
}

var downloadsHistoryCmd = &cobra.Command{
	Use:   "history",
	Short: "Show the download outcome journal",
	Long: `Show every download that reached a terminal state, newest first.

--since accepts a duration ("48h") or a date in most common formats
("2024-05-01", "May 1 2024", "01/05/2024 10:00").`,
	Example: `  chanomhub downloads history --since 48h
  chanomhub downloads history --outcome failed --json`,
	Args: cobra.NoArgs,
	RunE: runDownloadsHistory,
}

var downloadsPruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Delete old journal entries",
	Args:  cobra.NoArgs,
	RunE:  runDownloadsPrune,
}

func init() {
	rootCmd.AddCommand(downloadsCmd)
	downloadsCmd.AddCommand(downloadsHistoryCmd, downloadsPruneCmd)

	f := downloadsHistoryCmd.Flags()
	f.StringVar(&historySince, "since", "", "only show downloads finished after this time or duration")
	f.StringVar(&historyOutcome, "outcome", "", "filter by outcome (completed, cancelled, failed)")
	f.IntVarP(&historyLimit, "limit", "n", 50, "maximum number of entries (0 for all)")
	f.BoolVar(&historyJSON, "json", false, "print as JSON")

	downloadsPruneCmd.Flags().StringVar(&pruneOlderThan, "older-than", "720h", "delete entries finished before this time or duration")
}

func runDownloadsHistory(cmd *cobra.Command, _ []string) error {
	filter, err := historyFilter(time.Now())
	if err != nil {
		return err
	}

	a, err := openApp(cmd.Context(), nil)
	if err != nil {
		return err
	}
	if a.Journal == nil {
		return errNoJournal
	}

	if historyJSON {
		records, err := a.Journal.List(a.Context(), filter)
		if err != nil {
			return err
		}
		if records == nil {
			records = []*entity.DownloadRecord{}
		}
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(records)
	}

	m := model.NewHistoryModel(a.Context(), a.Theme, a.Journal, filter)
	final, err := tea.NewProgram(m, tea.WithOutput(cmd.OutOrStdout())).Run()
	if err != nil {
		return fmt.Errorf("history view: %w", err)
	}
	if hm, ok := final.(model.HistoryModel); ok && hm.Err() != nil {
		return hm.Err()
	}
	return nil
}

func runDownloadsPrune(cmd *cobra.Command, _ []string) error {
	cutoff, err := parseSince(pruneOlderThan, time.Now())
	if err != nil {
		return err
	}

	a, err := openApp(cmd.Context(), nil)
	if err != nil {
		return err
	}
	if a.Journal == nil {
		return errNoJournal
	}

	n, err := a.Journal.Prune(a.Context(), cutoff)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "removed %d entries finished before %s\n", n, cutoff.Format(time.DateTime))
	return nil
}

func historyFilter(now time.Time) (repository.JournalFilter, error) {
	filter := repository.JournalFilter{Limit: historyLimit}

	if historySince != "" {
		since, err := parseSince(historySince, now)
		if err != nil {
			return filter, err
		}
		filter.Since = since
	}

	if historyOutcome != "" {
		outcome, err := parseOutcome(historyOutcome)
		if err != nil {
			return filter, err
		}
		filter.Outcome = outcome
	}

	if filter.Limit < 0 {
		return filter, fmt.Errorf("--limit must not be negative")
	}
	return filter, nil
}

// parseSince reads a duration relative to now, or an absolute date.
func parseSince(value string, now time.Time) (time.Time, error) {
	value = strings.TrimSpace(value)
	if d, err := time.ParseDuration(value); err == nil {
		return now.Add(-d), nil
	}
	t, err := dateparse.ParseLocal(value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time %q: %w", value, err)
	}
	return t, nil
}

func parseOutcome(value string) (entity.DownloadOutcome, error) {
	switch o := entity.DownloadOutcome(strings.ToLower(strings.TrimSpace(value))); o {
	case entity.DownloadOutcomeCompleted, entity.DownloadOutcomeCancelled, entity.DownloadOutcomeFailed:
		return o, nil
	default:
		return "", fmt.Errorf("unknown outcome %q (want completed, cancelled or failed)", value)
	}
}
