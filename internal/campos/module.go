package campos

import (
	"editorcampos/internal/core"
	"editorcampos/internal/editor"
	"editorcampos/internal/logging"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/rs/zerolog"
)

const (
	toolBarHook    = "CameraSpeed"
	toolBarSection = "CameraPosition"
	optionsMenu    = "LevelEditor.LevelViewportToolBar.Options"
	optionsSection = "LevelViewportViewportOptions2"
	menuEntryName  = "ToggleEditorCameraPosition"
)

// Host is what the module needs from the editor.
type Host interface {
	RunMode() core.RunMode
	IsUIInitialized() bool
	Ticker() *core.Ticker
	CoreDelegates() *core.CoreDelegates
	Commands() *editor.Commands
	LoadLevelEditor() *editor.LevelEditor
	ToolMenus() *editor.ToolMenus
	Viewports() *editor.Viewports
	CurrentViewTransform() (editor.ViewTransform, bool)
	ConfigStore() editor.ConfigStore
	Clipboard() editor.Clipboard
}

// Module shows the focused viewport's camera location in the viewport
// toolbar and lets the user edit, copy and paste it.
//
// There is one Module per editor process. All methods run on the main thread.
type Module struct {
	host Host
	log  zerolog.Logger

	camPos rl.Vector3

	started        bool
	commandNames   []string
	tickerHandle   core.Handle
	postInitHandle core.Handle
	preExitHandle  core.Handle
	focusHandle    core.Handle

	// Installed UI, removed again on shutdown
	extender    *editor.Extender
	levelEditor *editor.LevelEditor
	menuSection *editor.MenuSection
}

func New(host Host) *Module {
	return &Module{
		host: host,
		log:  logging.Component("campos"),
	}
}

// Startup registers the toggle command and the per-frame tick, and defers UI
// installation until the engine has finished initializing.
func (m *Module) Startup() {
	if m.started {
		return
	}
	m.started = true

	names, err := registerCommands(m.host.Commands())
	if err != nil {
		m.log.Error().Err(err).Msg("failed to register commands")
	}
	m.commandNames = names

	m.postInitHandle = m.host.CoreDelegates().OnPostEngineInit.Add(m.onPostEngineInit)
	m.preExitHandle = m.host.CoreDelegates().OnPreExit.Add(m.removeUI)
	m.focusHandle = m.host.Viewports().OnFocusChanged.Add(m.onViewportFocused)
	m.tickerHandle = m.host.Ticker().AddTicker(m.Tick, 0)
	m.log.Debug().Msg("started")
}

// Shutdown undoes Startup. No tick fires after it returns.
func (m *Module) Shutdown() {
	if !m.started {
		return
	}
	m.started = false

	m.host.Ticker().RemoveTicker(m.tickerHandle)
	m.tickerHandle = 0
	m.host.CoreDelegates().OnPostEngineInit.Remove(m.postInitHandle)
	m.host.CoreDelegates().OnPreExit.Remove(m.preExitHandle)
	m.host.Viewports().OnFocusChanged.Remove(m.focusHandle)
	m.postInitHandle, m.preExitHandle, m.focusHandle = 0, 0, 0

	m.removeUI()

	for _, name := range m.commandNames {
		m.host.Commands().Unregister(name)
	}
	m.commandNames = nil
	m.log.Debug().Msg("shut down")
}

func (m *Module) onPostEngineInit() {
	mode := m.host.RunMode()
	if mode.IsRunningCommandlet() || mode.IsRunningGame() || !m.host.IsUIInitialized() {
		m.log.Debug().Stringer("mode", mode).Msg("no editor UI, skipping toolbar")
		return
	}
	levelEditor := m.host.LoadLevelEditor()
	if levelEditor == nil {
		m.log.Debug().Msg("level editor not loaded, skipping toolbar")
		return
	}
	m.addViewportToolBarExtension(levelEditor)
	m.addViewportOptionsExtension()
}

// removeUI takes the toolbar widget and menu entry out of the editor. It runs
// before exit so no widget outlives the module.
func (m *Module) removeUI() {
	if m.levelEditor != nil {
		m.levelEditor.GetToolBarExtensibilityManager().RemoveExtender(m.extender)
		m.levelEditor, m.extender = nil, nil
	}
	if m.menuSection != nil {
		m.menuSection.RemoveMenuEntry(menuEntryName)
		m.menuSection = nil
	}
}

// Widget builds a toolbar widget bound to the module.
func (m *Module) Widget() *Widget {
	return NewWidget(m)
}

func (m *Module) addViewportToolBarExtension(levelEditor *editor.LevelEditor) {
	widget := m.Widget()
	ext := editor.NewExtender()
	ext.AddToolBarExtension(toolBarHook, editor.HookAfter, func(b *editor.ToolBarBuilder) {
		b.AddSeparator()
		b.BeginSection(toolBarSection)
		b.AddWidget(widget)
		b.EndSection()
	})
	levelEditor.GetToolBarExtensibilityManager().AddExtender(ext)
	m.extender = ext
	m.levelEditor = levelEditor
}

func (m *Module) addViewportOptionsExtension() {
	menu := m.host.ToolMenus().ExtendMenu(optionsMenu)
	if menu == nil {
		m.log.Debug().Str("menu", optionsMenu).Msg("menu not found, skipping toggle entry")
		return
	}
	cmd, ok := m.host.Commands().Get(ToggleCommandName)
	if !ok {
		m.log.Warn().Str("command", ToggleCommandName).Msg("toggle command not registered")
		return
	}

	section := menu.FindOrAddSection(optionsSection)
	action := editor.ToolUIAction{
		Execute: func(editor.ToolMenuContext) {
			m.ToggleToolbarVisibility()
		},
		GetCheckState: func(editor.ToolMenuContext) editor.CheckBoxState {
			if m.IsToolbarVisible() {
				return editor.Checked
			}
			return editor.Unchecked
		},
	}
	section.AddMenuEntry(menuEntryName, cmd.Label, cmd.Description, cmd.Icon, action, cmd.UIType)
	m.menuSection = section
}

// Tick copies the focused viewport's camera location into the cache. With
// no focused viewport the last known location is kept.
func (m *Module) Tick(deltaTime float32) bool {
	if vt, ok := m.host.CurrentViewTransform(); ok {
		m.camPos = vt.Location()
	}
	return true
}

// onViewportFocused picks up a newly focused viewport's location without
// waiting for the next tick.
func (m *Module) onViewportFocused(vc *editor.ViewportClient) {
	if vc == nil || vc.ViewTransform() == nil {
		return
	}
	m.camPos = vc.ViewTransform().Location()
}

// refreshViewportLocation pushes the cache to the focused viewport, if any.
func (m *Module) refreshViewportLocation() {
	if vt, ok := m.host.CurrentViewTransform(); ok {
		vt.SetLocation(m.camPos)
	}
}

func (m *Module) Location() rl.Vector3 { return m.camPos }

func (m *Module) X() float32 { return m.camPos.X }
func (m *Module) Y() float32 { return m.camPos.Y }
func (m *Module) Z() float32 { return m.camPos.Z }

func (m *Module) SetX(v float32) {
	m.camPos.X = v
	m.refreshViewportLocation()
}

func (m *Module) SetY(v float32) {
	m.camPos.Y = v
	m.refreshViewportLocation()
}

func (m *Module) SetZ(v float32) {
	m.camPos.Z = v
	m.refreshViewportLocation()
}

// Copy puts the cached location on the clipboard.
func (m *Module) Copy() {
	text := FormatPosition(m.camPos)
	if text == "" {
		return
	}
	m.host.Clipboard().Copy(text)
}

// Paste replaces the cached location with the clipboard's, if it parses,
// and moves the viewport camera there. Anything else is ignored.
func (m *Module) Paste() {
	text := m.host.Clipboard().Paste()
	pos, ok := ParsePosition(text)
	if !ok {
		m.log.Debug().Str("text", text).Msg("clipboard does not hold a position")
		return
	}
	m.camPos = pos
	m.refreshViewportLocation()
}
