package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"editorcampos/internal/camera"
	"editorcampos/internal/campos"
	"editorcampos/internal/config"
	"editorcampos/internal/core"
	"editorcampos/internal/editor"
	"editorcampos/internal/logging"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/rs/zerolog"
)

const optionsMenuName = "LevelEditor.LevelViewportToolBar.Options"

func main() {
	settingsPath := flag.String("settings", "campos.yaml", "host settings file")
	gameMode := flag.Bool("game", false, "run in game mode (no editor UI)")
	noViewport := flag.Bool("no-viewport", false, "start with no focused viewport")
	flag.Parse()

	// Run next to the executable for deployed builds, but not under "go run"
	if execPath, err := os.Executable(); err == nil {
		execDir := filepath.Dir(execPath)
		if !strings.Contains(execDir, "go-build") {
			_ = os.Chdir(execDir)
		}
	}

	settings, err := config.LoadSettings(*settingsPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "campos-editor: %v\n", err)
		os.Exit(1)
	}
	logging.Setup(settings.LogLevel)
	log := logging.Component("host")
	configLog := logging.Component("config")

	store, err := config.Open(settings.EditorConfig)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open editor config")
	}

	mode := core.ModeEditor
	if *gameMode {
		mode = core.ModeGame
	}

	rl.SetConfigFlags(rl.FlagWindowHighdpi | rl.FlagWindowResizable)
	rl.InitWindow(settings.WindowWidth, settings.WindowHeight, "Editor Camera Position")
	defer rl.CloseWindow()
	rl.SetTargetFPS(settings.TargetFPS)
	rl.SetExitKey(0)
	editor.InitStyle()

	clip, err := editor.NewClipboard(settings.Clipboard)
	if err != nil {
		log.Warn().Err(err).Msg("clipboard backend unavailable, using window clipboard")
		if clip == nil {
			clip = editor.WindowClipboard{}
		}
	}

	cam := camera.New(rl.Vector3{X: 10, Y: 10, Z: 10})
	levelEditor := editor.NewLevelEditor(logging.Component("toolbar"))
	levelEditor.ToolBar.AddAnchor("Transform", nil)
	levelEditor.ToolBar.AddAnchor("CameraSpeed", &cameraSpeedWidget{cam: cam})

	host := editor.NewHost(editor.HostOptions{
		Mode:          mode,
		UIInitialized: true,
		LevelEditor:   levelEditor,
		Config:        store,
		Clipboard:     clip,
	})
	optionsButton := &editor.MenuButton{Menu: host.ToolMenus().RegisterMenu(optionsMenuName, "Options")}
	viewport := editor.NewViewportClient("Perspective", &cam.Transform)
	if !*noViewport {
		host.Viewports().SetCurrent(viewport)
	}

	watcher := startWatcher(settings, store, configLog)
	if watcher != nil {
		defer watcher.Close()
	}

	module := campos.New(host)
	module.Startup()
	host.CoreDelegates().OnPostEngineInit.Broadcast()
	log.Info().Stringer("mode", mode).Str("config", store.Path()).Msg("editor ready")

	for !rl.WindowShouldClose() {
		dt := rl.GetFrameTime()

		if watcher != nil {
			if watcher.Changed() {
				if err := store.Reload(); err != nil {
					log.Warn().Err(err).Msg("failed to reload editor config")
				}
			}
			if err := watcher.Err(); err != nil {
				configLog.Warn().Err(err).Msg("config watcher error")
			}
		}

		// F1 toggles viewport focus so the no-viewport path can be exercised
		if rl.IsKeyPressed(rl.KeyF1) {
			if host.Viewports().Current() == nil {
				host.Viewports().SetCurrent(viewport)
			} else {
				host.Viewports().SetCurrent(nil)
			}
		}

		host.Ticker().Tick(dt)
		cam.Update(dt)

		rl.BeginDrawing()
		rl.ClearBackground(editor.ColorBgDark)

		rl.BeginMode3D(cam.GetRaylibCamera())
		rl.DrawGrid(40, 1)
		rl.DrawCube(rl.Vector3{}, 1, 1, 1, editor.ColorAccent)
		rl.DrawCubeWires(rl.Vector3{}, 1, 1, 1, editor.ColorAccentLight)
		rl.EndMode3D()

		width := float32(rl.GetScreenWidth())
		editor.DrawToolBar(levelEditor.ToolBar.Build(), 90, 0, width-90)
		optionsButton.Draw(rl.Rectangle{X: 6, Y: 3, Width: 78, Height: editor.ToolBarHeight - 6})

		status := "viewport: focused (F1)"
		if host.Viewports().Current() == nil {
			status = "viewport: none (F1)"
		}
		rl.DrawText(status, 10, int32(rl.GetScreenHeight())-24, 14, editor.ColorTextMuted)
		rl.EndDrawing()
	}

	host.CoreDelegates().OnPreExit.Broadcast()
	module.Shutdown()
}

func startWatcher(settings config.Settings, store *config.Store, log zerolog.Logger) *config.Watcher {
	if !settings.WatchConfig {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(store.Path()), 0755); err != nil {
		log.Warn().Err(err).Msg("cannot create config dir, not watching")
		return nil
	}
	w, err := config.NewWatcher(store.Path())
	if err != nil {
		log.Warn().Err(err).Msg("cannot watch editor config")
		return nil
	}
	return w
}

// cameraSpeedWidget is the host's own toolbar control at the CameraSpeed anchor.
type cameraSpeedWidget struct {
	cam *camera.EditorCamera
}

func (w *cameraSpeedWidget) Visible() bool  { return true }
func (w *cameraSpeedWidget) Width() float32 { return 80 }

func (w *cameraSpeedWidget) Draw(bounds rl.Rectangle) {
	text := fmt.Sprintf("Speed %.0f", w.cam.MoveSpeed)
	rl.DrawText(text, int32(bounds.X), int32(bounds.Y+(bounds.Height-14)/2), 14, editor.ColorTextSecondary)
}
