// Package cli wires dockyard's use cases for the command line.
package cli

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/bnema/dockyard/internal/application/port"
	"github.com/bnema/dockyard/internal/application/usecase"
	"github.com/bnema/dockyard/internal/cli/styles"
	"github.com/bnema/dockyard/internal/domain/build"
	"github.com/bnema/dockyard/internal/domain/entity"
	"github.com/bnema/dockyard/internal/infrastructure/cache"
	"github.com/bnema/dockyard/internal/infrastructure/codec"
	"github.com/bnema/dockyard/internal/infrastructure/config"
	"github.com/bnema/dockyard/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/dockyard/internal/infrastructure/window"
	"github.com/bnema/dockyard/internal/infrastructure/xdg"
	"github.com/bnema/dockyard/internal/logging"
)

const layoutFilePerm = 0o644

// Options tune NewApp.
type Options struct {
	// ConfigPath replaces the XDG config file when set.
	ConfigPath string
	// LogLevel overrides logging.level when set.
	LogLevel string
}

// App holds CLI dependencies.
type App struct {
	Config        *config.Config
	ConfigManager *config.Manager
	Theme         *styles.Theme
	BuildInfo     build.Info
	Dirs          port.XDGPaths

	db *sqlite.LazyDB

	// Use cases
	Layouts   *usecase.ManageLayoutsUseCase
	Validator *usecase.ValidateLayoutUseCase

	// Documents memoizes decoding of layout files.
	Documents *cache.DocumentCache
	// Screens bound the headless windows used to build layouts.
	Screens []entity.Rect

	ctx context.Context
}

// NewApp creates a new CLI application with all dependencies. The layout
// store is opened on first use.
func NewApp(opts Options) (*App, error) {
	mgr, cfg, cfgErr := loadConfig(opts.ConfigPath)

	level := cfg.Logging.Level
	if opts.LogLevel != "" {
		level = opts.LogLevel
	}
	logger := logging.NewFromConfigValues(level, cfg.Logging.Format)
	if cfgErr != nil && opts.LogLevel == "" {
		// Without a readable config the environment decides.
		logger = logging.NewFromEnv()
	}
	ctx := logging.WithContext(context.Background(), logger)
	if cfgErr != nil {
		logger.Warn().Err(cfgErr).Msg("using default configuration")
	}

	storeCodec, err := codec.ByName(cfg.Layout.DefaultFormat)
	if err != nil {
		return nil, fmt.Errorf("layout.default_format: %w", err)
	}

	db := sqlite.NewLazyDB(cfg.Database.Path)
	layoutRepo := sqlite.NewLazyLayoutRepository(db, storeCodec)

	app := &App{
		Config:        cfg,
		ConfigManager: mgr,
		Theme:         styles.NewTheme(),
		Dirs:          xdg.New(),
		db:            db,
		Layouts:       usecase.NewManageLayoutsUseCase(layoutRepo, storeCodec),
		Documents:     cache.NewDocumentCache(cache.DefaultDocumentCapacity),
		Screens:       []entity.Rect{window.DefaultScreen},
		ctx:           ctx,
	}
	app.Validator = usecase.NewValidateLayoutUseCase(app.newFactory(), nil)

	logger.Debug().
		Str("db_path", cfg.Database.Path).
		Str("format", storeCodec.Name()).
		Msg("cli initialized")
	return app, nil
}

// loadConfig falls back to the defaults when the config cannot be loaded.
func loadConfig(path string) (*config.Manager, *config.Config, error) {
	var (
		mgr *config.Manager
		err error
	)
	if path != "" {
		mgr, err = config.NewManagerForFile(path)
	} else {
		mgr, err = config.NewManager()
	}
	if err == nil {
		err = mgr.Load()
	}
	if err != nil {
		cfg := config.DefaultConfig()
		if dbPath, dbErr := config.GetDatabaseFile(); dbErr == nil {
			cfg.Database.Path = dbPath
		}
		return mgr, cfg, err
	}
	return mgr, mgr.Get(), nil
}

// Close releases all resources.
func (a *App) Close() error {
	if a.db != nil {
		return a.db.Close()
	}
	return nil
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return logging.FromContext(a.ctx)
}

func (a *App) newFactory() port.WindowFactory {
	return window.NewFactory(a.Screens...)
}

// CodecFor picks the codec for path from its extension, falling back to
// layout.default_format.
func (a *App) CodecFor(path string) (port.LayoutCodec, error) {
	return codec.ForPathOr(path, a.Config.Layout.DefaultFormat)
}

// ReadLayout decodes the layout file at path. "-" reads stdin with the
// default format.
func (a *App) ReadLayout(path string) (*entity.LayoutDocument, error) {
	layoutCodec, err := a.CodecFor(path)
	if err != nil {
		return nil, err
	}

	var data []byte
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	doc, hit, err := a.Documents.Decode(layoutCodec, data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	a.Logger().Debug().Str("path", path).Bool("cache_hit", hit).Msg("layout read")
	return doc, nil
}

// WriteLayout encodes doc into path, replacing it atomically. "-" writes
// stdout.
func (a *App) WriteLayout(path string, doc *entity.LayoutDocument) error {
	layoutCodec, err := a.CodecFor(path)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := layoutCodec.Encode(&buf, doc); err != nil {
		return err
	}
	if path == "-" {
		_, err := os.Stdout.Write(buf.Bytes())
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := os.Chmod(tmp.Name(), layoutFilePerm); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	a.Logger().Debug().Str("path", path).Str("format", layoutCodec.Name()).Msg("layout written")
	return nil
}

// NewLayoutManager creates an empty layout configured from the app config.
func (a *App) NewLayoutManager() *usecase.LayoutManager {
	storeCodec, err := codec.ByName(a.Config.Layout.DefaultFormat)
	if err != nil {
		storeCodec = codec.JSON{}
	}
	lm := usecase.NewLayoutManager(usecase.NewWindowManager(a.newFactory()), storeCodec, nil, a.Config.Layout.PanelIDs()...)
	lm.SetInsertPolicy(a.Config.Layout.InsertPolicy)
	lm.SetPlaceholder(a.Config.Layout.Placeholder)
	lm.SetFloatSize(a.Config.Layout.FloatSize())
	return lm
}

// OpenLayout reads path into a new layout manager.
func (a *App) OpenLayout(path string) (*usecase.LayoutManager, error) {
	doc, err := a.ReadLayout(path)
	if err != nil {
		return nil, err
	}
	lm := a.NewLayoutManager()
	if err := lm.ApplyLayout(a.ctx, doc); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return lm, nil
}
