package editor

import (
	"editorcampos/internal/core"

	"github.com/rs/zerolog"
)

// LevelEditor is the level editor module. It owns the viewport toolbar.
type LevelEditor struct {
	toolBarExtensibility *ExtensibilityManager
	ToolBar              *ToolBar
}

func NewLevelEditor(log zerolog.Logger) *LevelEditor {
	m := &ExtensibilityManager{}
	return &LevelEditor{
		toolBarExtensibility: m,
		ToolBar:              NewToolBar(m, log),
	}
}

func (l *LevelEditor) GetToolBarExtensibilityManager() *ExtensibilityManager {
	return l.toolBarExtensibility
}

// ConfigStore is the editor's per-user settings file.
type ConfigStore interface {
	GetBool(section, key string) (bool, bool)
	SetBool(section, key string, value bool)
	Flush() error
}

// Host bundles the services the editor offers to extensions. Every method
// must be called from the main thread.
type Host struct {
	Mode          core.RunMode
	UIInitialized bool

	ticker      *core.Ticker
	delegates   *core.CoreDelegates
	commands    *Commands
	menus       *ToolMenus
	viewports   *Viewports
	levelEditor *LevelEditor
	config      ConfigStore
	clipboard   Clipboard
}

// HostOptions are the pieces of a Host that callers supply. A nil
// LevelEditor means the level editor module is not loaded.
type HostOptions struct {
	Mode          core.RunMode
	UIInitialized bool
	LevelEditor   *LevelEditor
	Config        ConfigStore
	Clipboard     Clipboard
}

func NewHost(opts HostOptions) *Host {
	clip := opts.Clipboard
	if clip == nil {
		clip = &MemoryClipboard{}
	}
	return &Host{
		Mode:          opts.Mode,
		UIInitialized: opts.UIInitialized,
		ticker:        core.NewTicker(),
		delegates:     &core.CoreDelegates{},
		commands:      NewCommands(),
		menus:         NewToolMenus(),
		viewports:     &Viewports{},
		levelEditor:   opts.LevelEditor,
		config:        opts.Config,
		clipboard:     clip,
	}
}

func (h *Host) RunMode() core.RunMode              { return h.Mode }
func (h *Host) IsUIInitialized() bool              { return h.UIInitialized }
func (h *Host) Ticker() *core.Ticker               { return h.ticker }
func (h *Host) CoreDelegates() *core.CoreDelegates { return h.delegates }
func (h *Host) Commands() *Commands                { return h.commands }
func (h *Host) ToolMenus() *ToolMenus              { return h.menus }
func (h *Host) Viewports() *Viewports              { return h.viewports }
func (h *Host) ConfigStore() ConfigStore           { return h.config }
func (h *Host) Clipboard() Clipboard               { return h.clipboard }

// LoadLevelEditor returns the level editor module, or nil if it is not loaded.
func (h *Host) LoadLevelEditor() *LevelEditor { return h.levelEditor }

// CurrentViewTransform returns the focused viewport's camera, if any.
func (h *Host) CurrentViewTransform() (ViewTransform, bool) {
	vc := h.viewports.Current()
	if vc == nil || vc.ViewTransform() == nil {
		return nil, false
	}
	return vc.ViewTransform(), true
}
