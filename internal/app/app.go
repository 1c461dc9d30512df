package app

import (
	"context"
	"fmt"

	"github.com/kmies/bestiary/internal/browse"
	"github.com/kmies/bestiary/internal/config"
	"github.com/kmies/bestiary/internal/pokeapi"
	"github.com/kmies/bestiary/internal/prefs"
	"github.com/kmies/bestiary/internal/state"
	"github.com/kmies/bestiary/internal/ui"
)

// Options configure the bestiary application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/bestiary/prefs.toml
	APIURL     string // overrides the configured endpoint
	PageSize   int    // overrides the configured page size
}

// Run boots the bestiary TUI until the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if opts.APIURL != "" {
		cfg.APIURL = opts.APIURL
	}
	if opts.PageSize > 0 {
		cfg.PageSize = opts.PageSize
	}

	userPrefs := prefs.Load(opts.PrefsPath)

	logger, closeLog := openLogger(cfg.LogPath)
	defer closeLog()

	client, err := pokeapi.NewClient(cfg.APIURL, cfg.RequestTimeout)
	if err != nil {
		return fmt.Errorf("init catalog client: %w", err)
	}

	store := state.NewStore(cfg.PageSize)
	lister := browse.NewLister(client, store, cfg.PageSize, logger)
	detailer := browse.NewDetailer(client, store, logger)

	logger.Info("starting", "api", cfg.APIURL, "page_size", cfg.PageSize)

	uiOpts := ui.Options{
		Context:   ctx,
		Store:     store,
		Lister:    lister,
		Detailer:  detailer,
		ThemeName: userPrefs.Theme,
		PrefsPath: opts.PrefsPath,
		LogPath:   cfg.LogPath,
	}
	return ui.Run(uiOpts)
}
