package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/nikbrunner/lcl/internal/catalog"
	"github.com/nikbrunner/lcl/internal/config"
	"github.com/nikbrunner/lcl/internal/i18n"
	"github.com/nikbrunner/lcl/internal/logging"
	"github.com/nikbrunner/lcl/internal/render"
	"github.com/nikbrunner/lcl/internal/route"
	"github.com/nikbrunner/lcl/internal/storage"
	"github.com/nikbrunner/lcl/internal/tui"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		stop()
		os.Exit(1)
	}
}

// run executes the command line in args. Cobra reports errors on errOut.
func run(ctx context.Context, args []string, out, errOut io.Writer) error {
	c := &cli{}
	defer c.close()

	root := c.rootCmd()
	root.SetArgs(args)
	root.SetOut(out)
	root.SetErr(errOut)
	return root.ExecuteContext(ctx)
}

// cli holds the flags and the resources opened for one invocation.
type cli struct {
	configPath string
	verbose    bool

	cfg       *config.Config
	logger    *zap.Logger
	catalog   *catalog.Catalog
	store     storage.BookmarkStore
	localizer *i18n.Localizer
}

func (c *cli) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "lcl",
		Short: "Offline Linux command reference",
		Long: `lcl browses an offline library of Linux commands, basics and tips.

Without arguments it opens the interactive browser on the commands screen
with the search field focused.`,
		Args:              cobra.NoArgs,
		SilenceUsage:      true,
		PersistentPreRunE: c.setup,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runTUI(cmd.Context(), nil)
		},
	}

	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default ~/.config/lcl/config.json)")
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "log at debug level")

	root.AddCommand(
		c.openCmd(),
		c.showCmd(),
		c.searchCmd(),
		c.basicsCmd(),
		c.tipsCmd(),
		c.bookmarkCmd(),
		c.importCmd(),
		c.exportCmd(),
	)
	return root
}

// setup loads config and opens the catalog and the bookmark store.
func (c *cli) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return err
	}
	c.cfg = cfg

	logger, err := logging.New(cfg.Log.Path, c.verbose)
	if err != nil {
		return err
	}
	c.logger = logger

	ctx := cmd.Context()
	c.catalog, err = catalog.Open(ctx, cfg.Catalog.Path, logger)
	if err != nil {
		return err
	}

	c.store, err = storage.Open(storage.Options{
		Backend:        cfg.Storage.Backend,
		SQLitePath:     cfg.Storage.Path,
		JSONPath:       cfg.Storage.JSONPath,
		InstallationID: cfg.InstallationID,
	}, logger)
	if err != nil {
		return err
	}

	locale := cfg.Locale
	if locale == "" {
		locale = i18n.DetectLocale()
	}
	c.localizer, err = i18n.New(locale)
	if err != nil {
		return err
	}

	logger.Debug("lcl started",
		zap.String("command", cmd.CommandPath()),
		zap.String("locale", c.localizer.Tag().String()),
		zap.String("catalog", c.catalog.Path()),
		zap.String("bookmarks", c.store.Path()))
	return nil
}

func (c *cli) close() {
	if c.store != nil {
		if err := c.store.Close(); err != nil {
			c.logger.Warn("close bookmark store", zap.Error(err))
		}
	}
	if c.catalog != nil {
		if err := c.catalog.Close(); err != nil {
			c.logger.Warn("close catalog", zap.Error(err))
		}
	}
	if c.logger != nil {
		_ = c.logger.Sync()
	}
}

func (c *cli) renderer(width int) (*render.Renderer, error) {
	if width <= 0 {
		width = c.cfg.Render.Width
	}
	return render.New(c.cfg.Render.Style, width)
}

// runTUI runs the full interactive browser starting at start.
func (c *cli) runTUI(ctx context.Context, start *route.Destination) error {
	renderer, err := c.renderer(0)
	if err != nil {
		return err
	}

	concurrency := 0
	if c.cfg.Probe.Enabled {
		concurrency = c.cfg.Probe.Concurrency
	}

	app := tui.NewApp(tui.AppParams{
		Context:          ctx,
		Catalog:          c.catalog,
		Store:            c.store,
		Localizer:        c.localizer,
		Renderer:         renderer,
		Logger:           c.logger,
		Start:            start,
		ProbeConcurrency: concurrency,
	})

	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run app: %w", err)
	}
	return nil
}
