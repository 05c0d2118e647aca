package gallery

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/gradients/internal/filter"
	"github.com/alexisbeaulieu97/gradients/internal/gradient"
	"github.com/alexisbeaulieu97/gradients/internal/logger"
)

// Options configures a gallery.
type Options struct {
	Strategy    Strategy
	Logger      *logger.Logger
	SwatchWidth int
	UseUnicode  bool
}

// Model is the gallery composition root. It owns the filter store for its
// whole lifetime and wires the tag selector and the filtered list to it.
type Model struct {
	// Core data
	dataset *gradient.Dataset
	store   *filter.Store
	layout  *layout
	unmount func()
	detach  func()

	// UI state
	keys     keyMap
	help     help.Model
	showHelp bool

	// Dimensions
	width  int
	height int

	// Configuration
	strategy Strategy
	log      *logger.Logger
}

// New mounts a gallery for ds. The filter starts at "all". Call Close when
// the program exits to detach the components and unmount the scope.
func New(ctx context.Context, ds *gradient.Dataset, opts Options) Model {
	if ctx == nil {
		ctx = context.Background()
	}
	if ds == nil {
		ds = gradient.NewDataset(nil)
	}
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	strategy := opts.Strategy
	if strategy == "" {
		strategy = StrategyContext
	}

	store := filter.NewStore(log)
	swatch := NewSwatchRenderer(opts.SwatchWidth, opts.UseUnicode)

	m := Model{
		dataset:  ds,
		store:    store,
		unmount:  func() {},
		keys:     defaultKeyMap(),
		help:     help.New(),
		width:    80,
		height:   24,
		strategy: strategy,
		log:      log.With("component", "gallery"),
	}

	switch strategy {
	case StrategyExplicit:
		m.layout = newThreadedLayout(store, ds, swatch)
	default:
		scoped, unmount := filter.Mount(ctx, store)
		m.unmount = unmount
		m.layout = newScopedLayout(scoped, ds, swatch)
	}

	m.detach = store.Subscribe(func(f filter.Filter) {
		m.log.WithFields(map[string]any{
			"filter":  f.String(),
			"visible": len(m.layout.list.visible),
		}).Debug("gallery filter applied")
	})

	m.log.WithFields(map[string]any{
		"strategy":  strategy.String(),
		"gradients": ds.Len(),
		"tags":      len(ds.UniqueTags()),
	}).Info("gallery mounted")

	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Close detaches both components from the store and unmounts the scope.
func (m Model) Close() {
	m.detach()
	m.layout.close()
	m.unmount()
	m.log.Info("gallery unmounted")
}

// Active returns the current filter.
func (m Model) Active() filter.Filter {
	return m.store.Active()
}

// Selector exposes the tag selector.
func (m Model) Selector() *TagSelector {
	return m.layout.selector
}

// List exposes the filtered list.
func (m Model) List() *FilteredList {
	return m.layout.list
}

// Strategy returns how the store was distributed.
func (m Model) Strategy() Strategy {
	return m.strategy
}
