package tui

import (
	"context"
	"errors"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/nikbrunner/lcl/internal/bookmark"
	"github.com/nikbrunner/lcl/internal/catalog"
	"github.com/nikbrunner/lcl/internal/i18n"
	"github.com/nikbrunner/lcl/internal/model"
	"github.com/nikbrunner/lcl/internal/probe"
	"github.com/nikbrunner/lcl/internal/render"
	"github.com/nikbrunner/lcl/internal/route"
	"github.com/nikbrunner/lcl/internal/search"
	"github.com/nikbrunner/lcl/internal/tui/layout"
)

// Catalog is the part of the command catalog the App reads.
type Catalog interface {
	route.BasicsSource
	GetCommands(ctx context.Context) ([]model.Command, error)
	GetPage(ctx context.Context, name string) (*model.CommandPage, error)
	GetBasicGroups(ctx context.Context, categoryID int64) ([]model.BasicGroup, error)
	GetTips(ctx context.Context) ([]model.Tip, error)
	Counts(ctx context.Context) (catalog.Counts, error)
}

// BookmarkStore is the part of the bookmark store the App uses.
type BookmarkStore interface {
	bookmark.Store
	Bookmarks(ctx context.Context) ([]model.Bookmark, error)
}

// App is the main bubbletea model for the command library.
type App struct {
	ctx       context.Context
	catalog   Catalog
	store     BookmarkStore
	localizer *i18n.Localizer
	renderer  *render.Renderer
	logger    *zap.Logger
	clipboard func(string) error

	keys         KeyMap
	styles       Styles
	layoutConfig layout.LayoutConfig

	router   *route.Router
	resolver *route.TitleResolver
	search   SearchBar
	mode     Mode
	title    string // resolved title of the current destination

	commands         []model.Command
	bookmarked       map[int64]bool
	installed        map[string]string
	probeConcurrency int
	counts           catalog.Counts

	// List screens
	cursor  int
	items   []Item
	cursors map[route.Kind]int // remembered cursor per list screen

	// Document screens
	toggle   *bookmark.Toggle // nil unless a known command is shown
	page     *model.CommandPage
	markdown string
	viewport viewport.Model

	message string
	err     error

	// For gg command
	lastKeyWasG bool

	// Window dimensions
	width  int
	height int
}

// AppParams holds parameters for creating a new App.
type AppParams struct {
	Context          context.Context // optional, uses Background if nil
	Catalog          Catalog
	Store            BookmarkStore
	Localizer        *i18n.Localizer      // optional, English if nil
	Renderer         *render.Renderer     // optional, auto style if nil
	Logger           *zap.Logger          // optional
	Start            *route.Destination   // optional, commands screen if nil
	ProbeConcurrency int                  // 0 disables the installed probe
	Clipboard        func(string) error   // optional, system clipboard if nil
	Keys             *KeyMap              // optional, uses default if nil
	Styles           *Styles              // optional, uses default if nil
	LayoutConfig     *layout.LayoutConfig // optional, uses default if nil
}

// installedMsg carries the result of the installed-command probe.
type installedMsg struct {
	found map[string]string
	err   error
}

// NewApp creates a new App with the given parameters.
func NewApp(params AppParams) App {
	ctx := params.Context
	if ctx == nil {
		ctx = context.Background()
	}

	logger := params.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	localizer := params.Localizer
	if localizer == nil {
		localizer = i18n.MustNew("en")
	}

	keys := DefaultKeyMap()
	if params.Keys != nil {
		keys = *params.Keys
	}

	styles := DefaultStyles()
	if params.Styles != nil {
		styles = *params.Styles
	}

	layoutCfg := layout.DefaultConfig()
	if params.LayoutConfig != nil {
		layoutCfg = *params.LayoutConfig
	}

	copyFn := params.Clipboard
	if copyFn == nil {
		copyFn = clipboard.WriteAll
	}

	app := App{
		ctx:              ctx,
		catalog:          params.Catalog,
		store:            params.Store,
		localizer:        localizer,
		renderer:         params.Renderer,
		logger:           logger,
		clipboard:        copyFn,
		keys:             keys,
		styles:           styles,
		layoutConfig:     layoutCfg,
		router:           route.NewRouter(route.Commands()),
		resolver:         route.NewTitleResolver(params.Catalog, localizer, logger),
		search:           NewSearchBar(layoutCfg.Input, localizer.T(i18n.SearchPlaceholder)),
		bookmarked:       map[int64]bool{},
		installed:        map[string]string{},
		probeConcurrency: params.ProbeConcurrency,
		cursors:          map[route.Kind]int{},
		width:            80,
		height:           24,
	}

	if app.renderer == nil {
		r, err := render.New(render.StyleAuto, app.contentWidth())
		if err != nil {
			logger.Warn("create renderer", zap.Error(err))
		}
		app.renderer = r
	}
	app.viewport = viewport.New(app.contentWidth(), app.contentHeight())

	// The search field is open when the app starts.
	app.search.Activate()

	app.loadCommands()
	app.start(params.Start)
	return app
}

// start places dest on the router above the root screen it belongs to.
func (a *App) start(dest *route.Destination) {
	switch dest.Kind() {
	case route.KindBasics, route.KindTips:
		a.switchRoot(dest)
		return
	case route.KindCommand:
		a.router.Push(dest)
	case route.KindBasicGroups:
		a.router.Reset(route.Basics())
		a.router.Push(dest)
		a.search.Back()
	}
	a.enter()
}

// loadCommands reads the command list and the bookmarked IDs.
func (a *App) loadCommands() {
	commands, err := a.catalog.GetCommands(a.ctx)
	if err != nil {
		a.setError("load commands", err)
		return
	}
	a.commands = commands

	bookmarks, err := a.store.Bookmarks(a.ctx)
	if err != nil {
		a.setError("load bookmarks", err)
		return
	}
	for _, b := range bookmarks {
		a.bookmarked[b.CommandID] = true
	}
}

func (a *App) setError(action string, err error) {
	a.logger.Warn(action, zap.Error(err))
	a.err = err
	a.message = ""
}

func (a *App) setMessage(text string) {
	a.message = text
	a.err = nil
}

// Cursor returns the current cursor position.
func (a App) Cursor() int {
	return a.cursor
}

// Items returns the current list of items.
func (a App) Items() []Item {
	return a.items
}

// Current returns the destination on screen.
func (a App) Current() *route.Destination {
	return a.router.Current()
}

// Depth returns the navigation stack depth.
func (a App) Depth() int {
	return a.router.Depth()
}

// Search returns the search bar state.
func (a App) Search() SearchBar {
	return a.search
}

// Mode returns the active overlay.
func (a App) Mode() Mode {
	return a.mode
}

// Message returns the status line text.
func (a App) Message() string {
	return a.message
}

// Err returns the last error shown in the status line.
func (a App) Err() error {
	return a.err
}

// Page returns the shown command page, nil when none.
func (a App) Page() *model.CommandPage {
	return a.page
}

// WithDimensions returns a copy of the app sized to width x height.
func (a App) WithDimensions(width, height int) App {
	a.width = width
	a.height = height
	a.resize()
	return a
}

// TopBar returns the top bar for the current destination.
func (a App) TopBar() TopBar {
	return NewTopBar(a.router.Current(), a.title, a.search, a.toggle)
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink}
	if a.probeConcurrency > 0 && len(a.commands) > 0 {
		cmds = append(cmds, a.probeInstalled())
	}
	return tea.Batch(cmds...)
}

func (a App) probeInstalled() tea.Cmd {
	ctx := a.ctx
	concurrency := a.probeConcurrency
	names := make([]string, len(a.commands))
	for i, c := range a.commands {
		names[i] = c.Name
	}
	return func() tea.Msg {
		found, err := probe.Installed(ctx, names, concurrency, nil)
		return installedMsg{found: found, err: err}
	}
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.resize()
		return a, nil

	case installedMsg:
		if msg.err != nil && !errors.Is(msg.err, context.Canceled) {
			a.logger.Warn("probe installed commands", zap.Error(msg.err))
		}
		if msg.found != nil {
			a.installed = msg.found
		}
		a.logger.Debug("probed installed commands", zap.Int("found", len(a.installed)))
		if a.onCommandList() {
			a.refreshCommandItems()
		}
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)
	}

	// Cursor blink and other input messages.
	cmd := a.search.Update(msg)
	return a, cmd
}

// View implements tea.Model.
func (a App) View() string {
	return a.renderView()
}

func (a App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return a, tea.Quit
	}

	switch a.mode {
	case ModeHelp:
		if key.Matches(msg, a.keys.Help, a.keys.Close, a.keys.Quit) {
			a.mode = ModeNormal
		}
		return a, nil
	case ModeInfo:
		if key.Matches(msg, a.keys.Info, a.keys.Close, a.keys.Quit, a.keys.Open) {
			a.mode = ModeNormal
		}
		return a, nil
	}

	if a.onCommandList() && a.search.Active() {
		return a.handleSearchKey(msg)
	}
	return a.handleNormalKey(msg)
}

// handleSearchKey handles keys while the search field has focus.
func (a App) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		a.search.Close()
		a.refreshCommandItems()
		return a, nil
	case tea.KeyEnter:
		a.openSelected()
		return a, nil
	case tea.KeyUp, tea.KeyCtrlP:
		a.moveCursor(-1)
		return a, nil
	case tea.KeyDown, tea.KeyCtrlN:
		a.moveCursor(1)
		return a, nil
	}

	// The back arrow of the bar: ctrl+b, or left with the cursor at the start.
	if key.Matches(msg, a.keys.SearchBack) || (msg.Type == tea.KeyLeft && a.search.AtStart()) {
		a.search.Back()
		a.refreshCommandItems()
		return a, nil
	}

	before := a.search.Query()
	cmd := a.search.Update(msg)
	if a.search.Query() != before {
		a.cursor = 0
		a.refreshCommandItems()
	}
	return a, cmd
}

func (a App) handleNormalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Handle gg sequence
	if key.Matches(msg, a.keys.Top) {
		if a.lastKeyWasG {
			a.lastKeyWasG = false
			a.goTop()
			return a, nil
		}
		a.lastKeyWasG = true
		return a, nil
	}
	a.lastKeyWasG = false

	switch {
	case key.Matches(msg, a.keys.Quit):
		return a, tea.Quit

	case key.Matches(msg, a.keys.Help):
		a.mode = ModeHelp

	case key.Matches(msg, a.keys.TabCommands):
		a.switchRoot(route.Commands())

	case key.Matches(msg, a.keys.TabBasics):
		a.switchRoot(route.Basics())

	case key.Matches(msg, a.keys.TabTips):
		a.switchRoot(route.Tips())

	case key.Matches(msg, a.keys.Search):
		if !a.onCommandList() {
			a.switchRoot(route.Commands())
		}
		cmd := a.search.Activate()
		a.cursor = 0
		a.refreshCommandItems()
		return a, cmd

	case key.Matches(msg, a.keys.Close), key.Matches(msg, a.keys.Back):
		a.goBack()

	case key.Matches(msg, a.keys.Down):
		a.move(1)

	case key.Matches(msg, a.keys.Up):
		a.move(-1)

	case key.Matches(msg, a.keys.Bottom):
		a.goBottom()

	case key.Matches(msg, a.keys.Open):
		a.openSelected()

	case key.Matches(msg, a.keys.Bookmark):
		a.flipBookmark()

	case key.Matches(msg, a.keys.Yank):
		a.yank()

	case key.Matches(msg, a.keys.Info):
		if a.router.Current().Kind() == route.KindBasics {
			a.openInfo()
		}
	}

	return a, nil
}

func (a *App) onCommandList() bool {
	return a.router.Current().Kind() == route.KindCommands
}

func (a *App) onList() bool {
	switch a.router.Current().Kind() {
	case route.KindCommands, route.KindBasics:
		return true
	}
	return false
}

// switchRoot makes root the only destination on the stack.
func (a *App) switchRoot(root *route.Destination) {
	if a.onList() {
		a.cursors[a.router.Current().Kind()] = a.cursor
	}
	if root.Kind() != route.KindCommands && a.search.Active() {
		a.search.Back()
	}
	a.router.Reset(root)
	a.enter()
}

func (a *App) push(dest *route.Destination) {
	if a.onList() {
		a.cursors[a.router.Current().Kind()] = a.cursor
	}
	a.router.Push(dest)
	a.enter()
}

func (a *App) goBack() {
	if a.router.Pop() == nil {
		return
	}
	a.enter()
}

// enter loads the screen of the current destination.
func (a *App) enter() {
	dest := a.router.Current()
	a.title = a.resolver.Title(a.ctx, dest)
	a.toggle = nil
	a.page = nil
	a.markdown = ""
	a.items = nil
	a.viewport.GotoTop()

	switch dest.Kind() {
	case route.KindCommands:
		a.cursor = a.cursors[route.KindCommands]
		a.refreshCommandItems()
	case route.KindBasics:
		a.cursor = a.cursors[route.KindBasics]
		a.loadBasics()
	case route.KindCommand:
		a.loadCommandPage(dest.Arg(route.ArgCommandName))
	case route.KindBasicGroups:
		a.loadBasicGroups(dest)
	case route.KindTips:
		a.loadTips()
	}
}

// refreshCommandItems rebuilds the command rows. With a query the rows are
// the fuzzy matches; without one bookmarked commands come first, each part
// in catalog order.
func (a *App) refreshCommandItems() {
	items := []Item{}

	if query := a.search.Query(); a.search.Active() && query != "" {
		for _, r := range search.FuzzySearchCommands(a.commands, query) {
			item := a.commandItem(r.Command)
			item.MatchedIndexes = r.MatchedIndexes
			items = append(items, item)
		}
	} else {
		var rest []Item
		for i := range a.commands {
			item := a.commandItem(&a.commands[i])
			if item.Bookmarked {
				items = append(items, item)
			} else {
				rest = append(rest, item)
			}
		}
		items = append(items, rest...)
	}

	a.items = items
	a.clampCursor()
}

func (a *App) commandItem(cmd *model.Command) Item {
	return Item{
		Kind:          ItemCommand,
		Command:       cmd,
		Bookmarked:    a.bookmarked[cmd.ID],
		InstalledPath: a.installed[cmd.Name],
	}
}

func (a *App) loadBasics() {
	categories, err := a.catalog.GetBasics(a.ctx)
	if err != nil {
		a.setError("load basics", err)
		return
	}
	items := make([]Item, len(categories))
	for i := range categories {
		items[i] = Item{Kind: ItemCategory, Category: &categories[i]}
	}
	a.items = items
	a.clampCursor()
}

func (a *App) loadCommandPage(name string) {
	page, err := a.catalog.GetPage(a.ctx, name)
	if err != nil {
		a.setError("load command page", err)
		return
	}
	if page == nil {
		a.showMarkdown("")
		return
	}
	a.page = page

	toggle, err := bookmark.New(a.ctx, a.store, page.Command.ID)
	if err != nil {
		a.setError("load bookmark", err)
	} else {
		a.toggle = toggle
	}

	a.showMarkdown(render.CommandMarkdown(*page))
}

func (a *App) loadBasicGroups(dest *route.Destination) {
	category := a.resolver.Category(a.ctx, dest)
	if category == nil {
		a.showMarkdown("")
		return
	}
	groups, err := a.catalog.GetBasicGroups(a.ctx, category.ID)
	if err != nil {
		a.setError("load basic groups", err)
		return
	}
	a.showMarkdown(render.BasicGroupsMarkdown(category.Title, groups))
}

func (a *App) loadTips() {
	tips, err := a.catalog.GetTips(a.ctx)
	if err != nil {
		a.setError("load tips", err)
		return
	}
	a.showMarkdown(render.TipsMarkdown(tips))
}

// showMarkdown renders md into the viewport.
func (a *App) showMarkdown(md string) {
	a.markdown = md
	a.viewport.SetContent(a.renderMarkdown(md))
}

func (a *App) renderMarkdown(md string) string {
	if md == "" {
		return a.styles.Empty.Render(a.localizer.T(i18n.TitleNotFound))
	}
	if a.renderer == nil {
		return md
	}
	out, err := a.renderer.Render(md)
	if err != nil {
		a.logger.Warn("render markdown", zap.Error(err))
		return md
	}
	return out
}

func (a *App) resize() {
	a.viewport.Width = a.contentWidth()
	a.viewport.Height = a.contentHeight()

	if a.renderer != nil && a.renderer.Width() != a.contentWidth() {
		r, err := a.renderer.WithWidth(a.contentWidth())
		if err != nil {
			a.logger.Warn("resize renderer", zap.Error(err))
		} else {
			a.renderer = r
		}
	}
	if !a.onList() {
		offset := a.viewport.YOffset
		a.viewport.SetContent(a.renderMarkdown(a.markdown))
		a.viewport.SetYOffset(offset)
	}
}

func (a App) contentWidth() int {
	return layout.CalculateContentWidth(a.width, a.layoutConfig.Screen)
}

func (a App) contentHeight() int {
	return layout.CalculateContentHeight(a.height, a.layoutConfig.Screen)
}

func (a *App) clampCursor() {
	if a.cursor >= len(a.items) {
		a.cursor = len(a.items) - 1
	}
	if a.cursor < 0 {
		a.cursor = 0
	}
}

func (a *App) moveCursor(delta int) {
	a.cursor += delta
	a.clampCursor()
}

// move moves the cursor on lists and scrolls documents.
func (a *App) move(delta int) {
	if a.onList() {
		a.moveCursor(delta)
		return
	}
	if delta > 0 {
		a.viewport.LineDown(delta)
	} else {
		a.viewport.LineUp(-delta)
	}
}

func (a *App) goTop() {
	if a.onList() {
		a.cursor = 0
		return
	}
	a.viewport.GotoTop()
}

func (a *App) goBottom() {
	if a.onList() {
		if len(a.items) > 0 {
			a.cursor = len(a.items) - 1
		}
		return
	}
	a.viewport.GotoBottom()
}

func (a *App) selected() *Item {
	if !a.onList() || a.cursor < 0 || a.cursor >= len(a.items) {
		return nil
	}
	return &a.items[a.cursor]
}

func (a *App) openSelected() {
	item := a.selected()
	if item == nil {
		return
	}
	if item.IsCommand() {
		a.push(route.Command(item.Command.ID, item.Command.Name))
		return
	}
	a.push(route.BasicGroups(item.Category.ID, item.Category.Title))
}

// flipBookmark toggles the bookmark of the shown command. A failed write
// reverts the presented state.
func (a *App) flipBookmark() {
	if a.toggle == nil || a.page == nil {
		return
	}

	change, err := a.toggle.Flip(a.ctx)
	if err != nil {
		a.toggle.Revert(change)
		a.setError("toggle bookmark", err)
		return
	}

	name := a.page.Command.Name
	if change.Bookmarked {
		a.bookmarked[change.CommandID] = true
		a.setMessage(a.localizer.T(i18n.MessageBookmarkAdd, name))
	} else {
		delete(a.bookmarked, change.CommandID)
		a.setMessage(a.localizer.T(i18n.MessageBookmarkDrop, name))
	}
	a.logger.Debug("bookmark toggled",
		zap.Int64("command_id", change.CommandID),
		zap.Bool("bookmarked", change.Bookmarked))
}

// yank copies the shown or selected command name.
func (a *App) yank() {
	var name string
	switch {
	case a.page != nil:
		name = a.page.Command.Name
	case a.selected() != nil && a.selected().IsCommand():
		name = a.selected().Command.Name
	default:
		return
	}

	if err := a.clipboard(name); err != nil {
		a.setError("copy to clipboard", err)
		return
	}
	a.setMessage(a.localizer.T(i18n.MessageCopied, name))
}

func (a *App) openInfo() {
	counts, err := a.catalog.Counts(a.ctx)
	if err != nil {
		a.setError("count catalog", err)
		return
	}
	a.counts = counts
	a.mode = ModeInfo
}
