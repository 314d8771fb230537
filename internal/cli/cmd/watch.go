package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/signal"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/sys/unix"

	"github.com/bnema/dockyard/internal/application/usecase"
	"github.com/bnema/dockyard/internal/cli"
	"github.com/bnema/dockyard/internal/cli/model"
	"github.com/bnema/dockyard/internal/cli/styles"
	"github.com/bnema/dockyard/internal/domain/entity"
	"github.com/bnema/dockyard/internal/infrastructure/config"
	"github.com/bnema/dockyard/internal/infrastructure/filewatch"
	"github.com/bnema/dockyard/internal/infrastructure/snapshot"
	"github.com/bnema/dockyard/internal/logging"
)

var (
	watchSaveAs   string
	watchInterval time.Duration
	watchPlain    bool
)

var watchCmd = &cobra.Command{
	Use:   "watch <file>",
	Short: "Re-check a layout file every time it changes",
	Long: `Watch a layout file and show its normalized tree after every save.

Invalid edits are reported and the last good layout is kept. With --save-as
the last good layout is also stored under that name, a moment after the
last change and once more on exit.

The interactive view hides log output; --plain prints one block per change
instead, for pipes and terminals without cursor control.

Examples:
  dockyard watch layout.yaml
  dockyard watch layout.json --save-as work
  dockyard watch layout.toml --plain | tee watch.log`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
	watchCmd.Flags().StringVar(&watchSaveAs, "save-as", "", "store the last good layout under this name")
	watchCmd.Flags().DurationVar(&watchInterval, "save-interval", 2*time.Second, "delay between the last change and the store write")
	watchCmd.Flags().BoolVar(&watchPlain, "plain", false, "print changes line by line instead of the interactive view")
}

// watchedLayout serializes access to a layout manager shared by the file
// watcher, the config watcher and the autosave timer.
type watchedLayout struct {
	mu sync.Mutex
	lm *usecase.LayoutManager
}

func (w *watchedLayout) Snapshot() *entity.LayoutDocument {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.lm.Snapshot()
}

func (w *watchedLayout) configure(cfg *config.Config) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.lm.SetInsertPolicy(cfg.Layout.InsertPolicy)
	w.lm.SetPlaceholder(cfg.Layout.Placeholder)
	w.lm.SetFloatSize(cfg.Layout.FloatSize())
}

func runWatch(cmd *cobra.Command, args []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(logging.WithComponent(app.Ctx(), "watch"), unix.SIGINT, unix.SIGTERM)
	defer stop()
	if !watchPlain {
		// The interactive view owns the terminal.
		ctx = logging.WithContext(ctx, logging.FromContext(ctx).Output(io.Discard))
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	log := logging.FromContext(ctx)

	watcher, err := filewatch.New(args[0], app.Config.Watch.Debounce())
	if err != nil {
		return err
	}

	layout := &watchedLayout{lm: app.NewLayoutManager()}
	events := make(chan tea.Msg, 16)
	send := func(msg tea.Msg) {
		select {
		case events <- msg:
		case <-ctx.Done():
		}
	}

	var autosave *snapshot.Service
	if watchSaveAs != "" {
		autosave = snapshot.NewService(app.Layouts, layout, watchSaveAs, watchInterval)
		autosave.OnSaved(func(err error) {
			send(model.LayoutSavedMsg{Name: watchSaveAs, At: time.Now(), Err: err})
		})
		autosave.Start(ctx)
	}

	if app.ConfigManager != nil && app.ConfigManager.GetConfigFile() != "" {
		app.ConfigManager.OnConfigChange(func(cfg *config.Config) {
			layout.configure(cfg)
			log.Info().Msg("configuration reloaded")
			send(model.ConfigReloadedMsg{At: time.Now()})
		})
		if err := app.ConfigManager.Watch(ctx); err != nil {
			log.Warn().Err(err).Msg("config changes will not be picked up")
		}
	}

	onChange := func(ctx context.Context) {
		msg := reloadWatched(ctx, app, layout, watcher.Path())
		if msg.OK && autosave != nil {
			autosave.MarkDirty()
		}
		send(msg)
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		onChange(ctx)
		log.Info().Str("path", watcher.Path()).Msg("watching layout")
		send(model.WatchStoppedMsg{Err: watcher.Run(ctx, onChange)})
	}()

	var runErr error
	if watchPlain {
		runErr = printWatchEvents(ctx, cmd.OutOrStdout(), app.Theme, events)
	} else {
		runErr = runWatchView(ctx, app, watcher.Path(), events)
	}
	cancel()
	<-done

	if autosave != nil {
		// ctx is cancelled by now; the final save gets its own.
		if err := autosave.Stop(app.Ctx()); err != nil {
			logging.FromContext(app.Ctx()).Error().Err(err).Str("name", watchSaveAs).Msg("final layout save failed")
			if runErr == nil {
				runErr = err
			}
		}
	}
	return runErr
}

func runWatchView(ctx context.Context, app *cli.App, path string, events <-chan tea.Msg) error {
	m := model.NewWatchModel(app.Theme, path, watchSaveAs, events)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	final, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	if err != nil {
		return err
	}
	if wm, ok := final.(model.WatchModel); ok {
		return wm.Err()
	}
	return nil
}

// printWatchEvents writes one block per event until the watcher stops or ctx
// is done.
func printWatchEvents(ctx context.Context, out io.Writer, theme *styles.Theme, events <-chan tea.Msg) error {
	for {
		var msg tea.Msg
		select {
		case <-ctx.Done():
			return nil
		case msg = <-events:
		}

		switch msg := msg.(type) {
		case model.LayoutReloadedMsg:
			fmt.Fprintf(out, "%s\n%s\n", theme.Subtle.Render(msg.At.Format(time.TimeOnly)), msg.View)
		case model.LayoutSavedMsg:
			stamp := theme.Subtle.Render(msg.At.Format(time.TimeOnly))
			if msg.Err != nil {
				fmt.Fprintf(out, "%s %s\n", stamp, theme.ErrorStyle.Render(fmt.Sprintf("save to %q failed: %v", msg.Name, msg.Err)))
			} else {
				fmt.Fprintf(out, "%s saved as %q\n", stamp, msg.Name)
			}
		case model.ConfigReloadedMsg:
			fmt.Fprintf(out, "%s configuration reloaded\n", theme.Subtle.Render(msg.At.Format(time.TimeOnly)))
		case model.WatchStoppedMsg:
			return msg.Err
		}
	}
}

// reloadWatched validates path and applies it when it is sound.
func reloadWatched(ctx context.Context, app *cli.App, layout *watchedLayout, path string) model.LayoutReloadedMsg {
	msg := model.LayoutReloadedMsg{At: time.Now()}

	result := validateFile(ctx, app, path)
	if !result.OK() {
		msg.View = styles.NewReportRenderer(app.Theme).Render([]styles.ValidationResult{result})
		return msg
	}

	doc, err := app.ReadLayout(path)
	if err != nil {
		msg.View = app.Theme.ErrorStyle.Render(err.Error())
		return msg
	}

	layout.mu.Lock()
	err = layout.lm.ApplyLayout(ctx, doc)
	if err == nil {
		commitLayout(ctx, layout.lm)
		doc = layout.lm.Snapshot()
	}
	layout.mu.Unlock()
	if err != nil {
		msg.View = app.Theme.ErrorStyle.Render(err.Error())
		return msg
	}

	msg.OK = true
	msg.View = styles.NewTreeRenderer(app.Theme).Render(doc)
	return msg
}
