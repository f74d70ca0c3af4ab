package cmd

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/chanomhub/desktop/internal/application/port"
	"github.com/chanomhub/desktop/internal/application/usecase"
	"github.com/chanomhub/desktop/internal/bootstrap"
	"github.com/chanomhub/desktop/internal/cli/model"
	"github.com/chanomhub/desktop/internal/domain/entity"
	"github.com/chanomhub/desktop/internal/infrastructure/filesystem"
	"github.com/chanomhub/desktop/internal/logging"
)

var (
	fetchDir   string
	fetchName  string
	fetchPlain bool
)

var fetchCmd = &cobra.Command{
	Use:   "fetch <url>...",
	Short: "Download files without opening the window",
	Long: `Download one or more URLs through the same download manager the
window uses. Press p to pause or resume, q to cancel.

Every finished download is recorded in the journal
(see 'chanomhub downloads history').`,
	Example: `  chanomhub fetch https://example.com/game.zip
  chanomhub fetch --dir ~/Games https://example.com/a.zip https://example.com/b.zip`,
	Args: cobra.MinimumNArgs(1),
	RunE: runFetch,
}

func init() {
	rootCmd.AddCommand(fetchCmd)
	fetchCmd.Flags().StringVarP(&fetchDir, "dir", "d", "", "save into this directory instead of the configured one")
	fetchCmd.Flags().StringVarP(&fetchName, "output", "o", "", "file name to save as (single URL only)")
	fetchCmd.Flags().BoolVar(&fetchPlain, "plain", false, "print one line per finished download instead of the progress view")
}

func runFetch(cmd *cobra.Command, urls []string) error {
	if fetchName != "" && len(urls) > 1 {
		return fmt.Errorf("--output needs exactly one URL")
	}

	// Buffered so OnDone never waits for the view.
	results := make(chan model.FetchResult, len(urls))
	a, err := openApp(cmd.Context(), func(o *bootstrap.Options) {
		o.WrapRegistrar = func(next port.TransferRegistrar) port.TransferRegistrar {
			return &resultRegistrar{next: next, results: results}
		}
	})
	if err != nil {
		return err
	}
	ctx := a.Context()

	if fetchDir != "" {
		if err := filesystem.New().EnsureDir(ctx, fetchDir); err != nil {
			return err
		}
		a.Tracker.SetDownloadPath(fetchDir)
	}

	events, unsubscribe := a.Events.Subscribe(16)
	defer unsubscribe()

	started := 0
	for _, u := range urls {
		if _, err := a.Engine.Start(ctx, u, fetchName); err != nil {
			fmt.Fprintln(cmd.ErrOrStderr(), a.Theme.ErrorStyle.Render(fmt.Sprintf("%s: %v", u, err)))
			continue
		}
		started++
	}
	if started == 0 {
		return fmt.Errorf("no download could be started")
	}

	var finished []model.FetchResult
	if fetchPlain {
		finished = collectPlain(ctx, cmd.OutOrStdout(), results, started, a.Tracker)
	} else {
		m := model.NewFetchModel(ctx, a.Theme, a.Tracker, events, results, a.Tracker.DownloadPath(), started)
		final, err := tea.NewProgram(m, tea.WithOutput(cmd.OutOrStdout()), tea.WithContext(ctx)).Run()
		if err != nil {
			cancelAll(ctx, a.Tracker)
			a.Engine.Wait()
			return fmt.Errorf("fetch view: %w", err)
		}
		if fm, ok := final.(model.FetchModel); ok {
			finished = fm.Results()
		}
	}

	a.Engine.Wait()

	failed := len(urls) - started
	for _, r := range finished {
		if !r.Outcome.Succeeded() {
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d downloads did not complete", failed, len(urls))
	}
	return nil
}

type downloadLister interface {
	List() []entity.Download
	Cancel(ctx context.Context, id string)
}

func collectPlain(ctx context.Context, w io.Writer, results <-chan model.FetchResult, expected int, tracker downloadLister) []model.FetchResult {
	var out []model.FetchResult
	for len(out) < expected {
		select {
		case r := <-results:
			out = append(out, r)
			fmt.Fprintf(w, "%s\t%s\t%s\n", r.Outcome, r.URL, r.SavePath)
		case <-ctx.Done():
			cancelAll(ctx, tracker)
			ctx = context.WithoutCancel(ctx)
		}
	}
	return out
}

func cancelAll(ctx context.Context, tracker downloadLister) {
	for _, d := range tracker.List() {
		tracker.Cancel(ctx, d.ID)
	}
}

// resultRegistrar forwards every transfer to the tracker and reports its
// terminal state on results.
type resultRegistrar struct {
	next    port.TransferRegistrar
	results chan<- model.FetchResult
}

func (r *resultRegistrar) RegisterTransfer(ctx context.Context, handle port.TransferHandle) port.TransferObserver {
	return &resultObserver{
		next:    r.next.RegisterTransfer(ctx, handle),
		handle:  handle,
		results: r.results,
	}
}

type resultObserver struct {
	next    port.TransferObserver
	handle  port.TransferHandle
	results chan<- model.FetchResult
}

func (o *resultObserver) OnUpdated(ctx context.Context, state port.TransferState) {
	o.next.OnUpdated(ctx, state)
}

func (o *resultObserver) OnDone(ctx context.Context, state port.TransferState) {
	o.next.OnDone(ctx, state)

	res := model.FetchResult{
		URL:           o.handle.URL(),
		SavePath:      o.handle.SavePath(),
		Outcome:       usecase.OutcomeFor(state),
		ReceivedBytes: o.handle.ReceivedBytes(),
		TotalBytes:    o.handle.TotalBytes(),
	}
	res.Name = baseName(res.SavePath, o.handle.SuggestedFilename())

	select {
	case o.results <- res:
	default:
		logging.FromContext(ctx).Warn().Str("url", res.URL).Msg("fetch result dropped")
	}
}

func baseName(savePath, suggested string) string {
	if savePath != "" {
		return filepath.Base(savePath)
	}
	return suggested
}
