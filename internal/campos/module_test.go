package campos

import (
	"errors"
	"path/filepath"
	"testing"

	"editorcampos/internal/camera"
	"editorcampos/internal/config"
	"editorcampos/internal/core"
	"editorcampos/internal/editor"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memStore is an in-memory editor.ConfigStore that counts flushes.
type memStore struct {
	values   map[string]bool
	flushes  int
	flushErr error
}

func newMemStore() *memStore {
	return &memStore{values: make(map[string]bool)}
}

func (s *memStore) GetBool(section, key string) (bool, bool) {
	v, ok := s.values[section+"/"+key]
	return v, ok
}

func (s *memStore) SetBool(section, key string, value bool) {
	s.values[section+"/"+key] = value
}

func (s *memStore) Flush() error {
	s.flushes++
	return s.flushErr
}

// recordingTransform remembers every location pushed to it.
type recordingTransform struct {
	loc    rl.Vector3
	pushes []rl.Vector3
}

func (t *recordingTransform) Location() rl.Vector3 { return t.loc }

func (t *recordingTransform) SetLocation(loc rl.Vector3) {
	t.loc = loc
	t.pushes = append(t.pushes, loc)
}

type fixture struct {
	host      *editor.Host
	store     *memStore
	clipboard *editor.MemoryClipboard
	viewport  *recordingTransform
	level     *editor.LevelEditor
	module    *Module
}

func newFixture(t *testing.T, mode core.RunMode) *fixture {
	t.Helper()
	f := &fixture{
		store:     newMemStore(),
		clipboard: &editor.MemoryClipboard{},
		viewport:  &recordingTransform{},
		level:     editor.NewLevelEditor(zerolog.Nop()),
	}
	f.level.ToolBar.AddAnchor("Transform", nil)
	f.level.ToolBar.AddAnchor(toolBarHook, nil)

	f.host = editor.NewHost(editor.HostOptions{
		Mode:          mode,
		UIInitialized: true,
		LevelEditor:   f.level,
		Config:        f.store,
		Clipboard:     f.clipboard,
	})
	f.host.ToolMenus().RegisterMenu(optionsMenu, "Options")
	f.host.Viewports().SetCurrent(editor.NewViewportClient("Perspective", f.viewport))
	f.module = New(f.host)
	return f
}

func (f *fixture) clearViewport() {
	f.host.Viewports().SetCurrent(nil)
}

func (f *fixture) widgets() []editor.Widget {
	var out []editor.Widget
	for _, el := range f.level.ToolBar.Build() {
		if el.Kind == editor.ElementWidget {
			out = append(out, el.Widget)
		}
	}
	return out
}

func TestTickCopiesViewportLocation(t *testing.T) {
	f := newFixture(t, core.ModeEditor)
	f.viewport.loc = rl.Vector3{X: 1, Y: 2, Z: 3}

	assert.True(t, f.module.Tick(0.016))
	assert.Equal(t, rl.Vector3{X: 1, Y: 2, Z: 3}, f.module.Location())
	assert.Empty(t, f.viewport.pushes, "tick must not write to the viewport")
}

func TestTickWithoutViewportKeepsStaleValue(t *testing.T) {
	f := newFixture(t, core.ModeEditor)
	f.viewport.loc = rl.Vector3{X: 4, Y: 5, Z: 6}
	f.module.Tick(0.016)

	f.clearViewport()
	assert.True(t, f.module.Tick(0.016))

	assert.Equal(t, rl.Vector3{X: 4, Y: 5, Z: 6}, f.module.Location())
}

func TestSetAxisPushesWholeLocation(t *testing.T) {
	f := newFixture(t, core.ModeEditor)
	f.viewport.loc = rl.Vector3{X: 0, Y: 1, Z: 2}
	f.module.Tick(0.016)

	f.module.SetX(5)

	require.Len(t, f.viewport.pushes, 1)
	assert.Equal(t, rl.Vector3{X: 5, Y: 1, Z: 2}, f.viewport.pushes[0])
	assert.Equal(t, float32(1), f.module.Y())
	assert.Equal(t, float32(2), f.module.Z())
}

func TestEachAxisEditPushesOnce(t *testing.T) {
	f := newFixture(t, core.ModeEditor)

	f.module.SetX(1)
	f.module.SetY(2)
	f.module.SetZ(3)

	assert.Equal(t, []rl.Vector3{
		{X: 1},
		{X: 1, Y: 2},
		{X: 1, Y: 2, Z: 3},
	}, f.viewport.pushes)
	assert.Equal(t, float32(1), f.module.X())
}

func TestSetAxisWithoutViewportOnlyUpdatesCache(t *testing.T) {
	f := newFixture(t, core.ModeEditor)
	f.clearViewport()

	f.module.SetZ(-7.5)

	assert.Equal(t, rl.Vector3{Z: -7.5}, f.module.Location())
	assert.Empty(t, f.viewport.pushes)
}

func TestCopyPasteRoundTrip(t *testing.T) {
	positions := []rl.Vector3{
		{X: 0, Y: 0, Z: 0},
		{X: 1.5, Y: -2.25, Z: 1000},
		{X: 123.456, Y: -9876.543, Z: 0.000001},
		{X: 1e6, Y: -1e6, Z: 42},
	}
	for _, pos := range positions {
		f := newFixture(t, core.ModeEditor)
		f.viewport.loc = pos
		f.module.Tick(0)
		f.module.Copy()

		f.viewport.loc = rl.Vector3{}
		f.module.Tick(0)
		f.module.Paste()

		got := f.module.Location()
		assert.InDelta(t, pos.X, got.X, 1e-3, "x of %v", pos)
		assert.InDelta(t, pos.Y, got.Y, 1e-3, "y of %v", pos)
		assert.InDelta(t, pos.Z, got.Z, 1e-3, "z of %v", pos)
		require.Len(t, f.viewport.pushes, 1)
		assert.Equal(t, got, f.viewport.pushes[0])
	}
}

func TestCopyWritesFormattedText(t *testing.T) {
	f := newFixture(t, core.ModeEditor)
	f.viewport.loc = rl.Vector3{X: 1, Y: -2.5, Z: 3.25}
	f.module.Tick(0)

	f.module.Copy()

	assert.Equal(t, "(X=1.000000,Y=-2.500000,Z=3.250000)", f.clipboard.Paste())
}

func TestPasteMalformedIsNoOp(t *testing.T) {
	for _, text := range []string{
		"",
		"hello",
		"(X=1.0,Y=2.0)",
		"(X=abc,Y=2,Z=3)",
		"(X=,Y=2,Z=3)",
	} {
		f := newFixture(t, core.ModeEditor)
		f.viewport.loc = rl.Vector3{X: 9, Y: 8, Z: 7}
		f.module.Tick(0)
		f.clipboard.Copy(text)

		f.module.Paste()
		f.module.Paste()

		assert.Equal(t, rl.Vector3{X: 9, Y: 8, Z: 7}, f.module.Location(), "paste %q", text)
		assert.Empty(t, f.viewport.pushes, "paste %q", text)
	}
}

func TestPasteWithoutViewportUpdatesCache(t *testing.T) {
	f := newFixture(t, core.ModeEditor)
	f.clearViewport()
	f.clipboard.Copy("(X=1,Y=2,Z=3)")

	f.module.Paste()

	assert.Equal(t, rl.Vector3{X: 1, Y: 2, Z: 3}, f.module.Location())
}

func TestVisibilityDefaultsHidden(t *testing.T) {
	f := newFixture(t, core.ModeEditor)
	assert.False(t, f.module.IsToolbarVisible())
	assert.Equal(t, Collapsed, f.module.ToolbarVisibility())
}

func TestToggleVisibilityTwiceRestores(t *testing.T) {
	for _, start := range []bool{false, true} {
		f := newFixture(t, core.ModeEditor)
		f.module.SetToolbarVisible(start)

		f.module.ToggleToolbarVisibility()
		assert.Equal(t, !start, f.module.IsToolbarVisible())
		f.module.ToggleToolbarVisibility()
		assert.Equal(t, start, f.module.IsToolbarVisible())
	}
}

func TestSetVisibilityFlushesEveryWrite(t *testing.T) {
	f := newFixture(t, core.ModeEditor)

	f.module.SetToolbarVisible(true)
	f.module.ToggleToolbarVisibility()

	assert.Equal(t, 2, f.store.flushes)
	v, ok := f.store.GetBool(configSection, configKey)
	assert.True(t, ok)
	assert.False(t, v)
}

func TestSetVisibilityFlushErrorIsNotFatal(t *testing.T) {
	f := newFixture(t, core.ModeEditor)
	f.store.flushErr = errors.New("disk full")

	f.module.SetToolbarVisible(true)

	assert.True(t, f.module.IsToolbarVisible())
}

func TestVisibilityWithoutConfigStore(t *testing.T) {
	host := editor.NewHost(editor.HostOptions{})
	m := New(host)

	m.ToggleToolbarVisibility()
	assert.False(t, m.IsToolbarVisible())
}

func TestVisibilityPersistsThroughConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "EditorPerProjectUserSettings.yaml")
	store, err := config.Open(path)
	require.NoError(t, err)

	m := New(editor.NewHost(editor.HostOptions{Config: store}))
	m.SetToolbarVisible(true)

	reopened, err := config.Open(path)
	require.NoError(t, err)
	m2 := New(editor.NewHost(editor.HostOptions{Config: reopened}))
	assert.True(t, m2.IsToolbarVisible())
}

func TestStartupRegistersTickAndCommand(t *testing.T) {
	f := newFixture(t, core.ModeEditor)
	f.module.Startup()
	f.module.Startup()

	assert.Equal(t, 1, f.host.Ticker().Len())
	_, ok := f.host.Commands().Get(ToggleCommandName)
	assert.True(t, ok)

	f.viewport.loc = rl.Vector3{X: 3}
	f.host.Ticker().Tick(0.016)
	assert.Equal(t, rl.Vector3{X: 3}, f.module.Location())
}

func TestShutdownStopsTicks(t *testing.T) {
	f := newFixture(t, core.ModeEditor)
	f.module.Startup()
	f.viewport.loc = rl.Vector3{X: 1}
	f.host.Ticker().Tick(0.016)

	f.module.Shutdown()
	f.viewport.loc = rl.Vector3{X: 2}
	f.host.Ticker().Tick(0.016)
	f.host.Ticker().Tick(0.016)

	assert.Equal(t, rl.Vector3{X: 1}, f.module.Location())
	assert.Equal(t, 0, f.host.Ticker().Len())
	assert.Equal(t, 0, f.host.CoreDelegates().OnPostEngineInit.Len())
	assert.Equal(t, 0, f.host.CoreDelegates().OnPreExit.Len())
	assert.Equal(t, 0, f.host.Viewports().OnFocusChanged.Len())
	_, ok := f.host.Commands().Get(ToggleCommandName)
	assert.False(t, ok)

	f.module.Shutdown()
}

func TestPostEngineInitInstallsUI(t *testing.T) {
	f := newFixture(t, core.ModeEditor)
	f.module.Startup()
	f.host.CoreDelegates().OnPostEngineInit.Broadcast()

	widgets := f.widgets()
	require.Len(t, widgets, 1)
	assert.False(t, widgets[0].Visible())

	entries := f.host.ToolMenus().ExtendMenu(optionsMenu).Entries()
	require.Len(t, entries, 1)
	entry := entries[0]
	assert.Equal(t, menuEntryName, entry.Name)
	assert.Equal(t, "Show Camera Position", entry.Label)
	assert.Equal(t, editor.UICheck, entry.UIType)

	ctx := editor.ToolMenuContext{Menu: optionsMenu}
	assert.Equal(t, editor.Unchecked, entry.CheckState(ctx))
	entry.Execute(ctx)
	assert.Equal(t, editor.Checked, entry.CheckState(ctx))
	assert.True(t, widgets[0].Visible())
}

func TestShutdownRemovesUI(t *testing.T) {
	f := newFixture(t, core.ModeEditor)
	f.module.Startup()
	f.host.CoreDelegates().OnPostEngineInit.Broadcast()
	require.Len(t, f.widgets(), 1)

	f.module.Shutdown()

	assert.Empty(t, f.widgets())
	assert.Empty(t, f.host.ToolMenus().ExtendMenu(optionsMenu).Entries())
}

func TestPreExitRemovesUI(t *testing.T) {
	f := newFixture(t, core.ModeEditor)
	f.module.Startup()
	f.host.CoreDelegates().OnPostEngineInit.Broadcast()
	require.Len(t, f.widgets(), 1)

	f.host.CoreDelegates().OnPreExit.Broadcast()

	assert.Empty(t, f.widgets())
	assert.Empty(t, f.host.ToolMenus().ExtendMenu(optionsMenu).Entries())
	f.module.Shutdown()
}

func TestShutdownDuringPostEngineInitInstallsNothing(t *testing.T) {
	f := newFixture(t, core.ModeEditor)
	f.host.CoreDelegates().OnPostEngineInit.Add(f.module.Shutdown)
	f.module.Startup()

	f.host.CoreDelegates().OnPostEngineInit.Broadcast()

	assert.Empty(t, f.widgets())
	assert.Empty(t, f.host.ToolMenus().ExtendMenu(optionsMenu).Entries())
}

func TestFocusChangePicksUpLocation(t *testing.T) {
	f := newFixture(t, core.ModeEditor)
	f.module.Startup()
	f.clearViewport()

	other := &recordingTransform{loc: rl.Vector3{X: 7, Y: 8, Z: 9}}
	f.host.Viewports().SetCurrent(editor.NewViewportClient("Side", other))

	assert.Equal(t, rl.Vector3{X: 7, Y: 8, Z: 9}, f.module.Location())
	assert.Empty(t, other.pushes)
}

func TestPostEngineInitSkipsWithoutEditorUI(t *testing.T) {
	for _, mode := range []core.RunMode{core.ModeGame, core.ModeCommandlet} {
		f := newFixture(t, mode)
		f.module.Startup()
		f.host.CoreDelegates().OnPostEngineInit.Broadcast()

		assert.Empty(t, f.widgets(), mode.String())
		assert.Empty(t, f.host.ToolMenus().ExtendMenu(optionsMenu).Entries(), mode.String())
		// The tick still runs
		assert.Equal(t, 1, f.host.Ticker().Len())
	}
}

func TestPostEngineInitSkipsWhenUINotInitialized(t *testing.T) {
	f := newFixture(t, core.ModeEditor)
	f.host.UIInitialized = false
	f.module.Startup()
	f.host.CoreDelegates().OnPostEngineInit.Broadcast()

	assert.Empty(t, f.widgets())
}

func TestPostEngineInitWithoutLevelEditor(t *testing.T) {
	host := editor.NewHost(editor.HostOptions{Mode: core.ModeEditor, UIInitialized: true})
	host.ToolMenus().RegisterMenu(optionsMenu, "Options")
	m := New(host)
	m.Startup()

	host.CoreDelegates().OnPostEngineInit.Broadcast()

	assert.Empty(t, host.ToolMenus().ExtendMenu(optionsMenu).Entries())
	m.Shutdown()
}

func TestPostEngineInitWithoutOptionsMenu(t *testing.T) {
	level := editor.NewLevelEditor(zerolog.Nop())
	level.ToolBar.AddAnchor(toolBarHook, nil)
	host := editor.NewHost(editor.HostOptions{
		Mode:          core.ModeEditor,
		UIInitialized: true,
		LevelEditor:   level,
	})
	m := New(host)
	m.Startup()

	host.CoreDelegates().OnPostEngineInit.Broadcast()

	assert.Nil(t, host.ToolMenus().ExtendMenu(optionsMenu))
	assert.Equal(t, 1, level.GetToolBarExtensibilityManager().Len(), "toolbar still installed")
}

func TestModuleDrivesEditorCamera(t *testing.T) {
	cam := camera.New(rl.Vector3{X: 10, Y: 10, Z: 10})
	host := editor.NewHost(editor.HostOptions{Mode: core.ModeEditor})
	host.Viewports().SetCurrent(editor.NewViewportClient("Perspective", &cam.Transform))
	m := New(host)
	m.Startup()

	host.Ticker().Tick(0.016)
	assert.Equal(t, float32(10), m.Y())

	m.SetY(25)
	assert.Equal(t, rl.Vector3{X: 10, Y: 25, Z: 10}, cam.Transform.Location())
}
