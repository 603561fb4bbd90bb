package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/spf13/viper"
)

// Settings configure the demo editor host.
type Settings struct {
	LogLevel     string `mapstructure:"logLevel"`
	WindowWidth  int32  `mapstructure:"windowWidth"`
	WindowHeight int32  `mapstructure:"windowHeight"`
	TargetFPS    int32  `mapstructure:"targetFPS"`

	// Clipboard selects the backend: "system", "window" or "memory".
	Clipboard string `mapstructure:"clipboard"`

	// EditorConfig is the path of the per-user editor settings store.
	EditorConfig string `mapstructure:"editorConfig"`
	WatchConfig  bool   `mapstructure:"watchConfig"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logLevel", "info")
	v.SetDefault("windowWidth", 1280)
	v.SetDefault("windowHeight", 720)
	v.SetDefault("targetFPS", 120)
	v.SetDefault("clipboard", "system")
	v.SetDefault("editorConfig", "Saved/Config/EditorPerProjectUserSettings.yaml")
	v.SetDefault("watchConfig", true)
}

// LoadSettings reads host settings from path, falling back to defaults when
// the file does not exist. Environment variables prefixed CAMPOS_ override.
func LoadSettings(path string) (Settings, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix("campos")
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.Is(err, fs.ErrNotExist) && !errors.As(err, &notFound) {
				return Settings{}, fmt.Errorf("error reading settings file: %w", err)
			}
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("decode settings: %w", err)
	}
	return s, nil
}
