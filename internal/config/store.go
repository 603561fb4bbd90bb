package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Store is a sectioned key-value file in the editor's config directory.
// Values live in memory until Flush writes them back.
type Store struct {
	path string
	v    *viper.Viper
}

// Open loads the store at path. A missing file yields an empty store.
func Open(path string) (*Store, error) {
	s := &Store{path: path}
	if err := s.Reload(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) Path() string { return s.path }

// Reload discards in-memory values and re-reads the file.
func (s *Store) Reload() error {
	v := viper.New()
	v.SetConfigFile(s.path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.Is(err, fs.ErrNotExist) && !errors.As(err, &notFound) {
			return fmt.Errorf("error reading config file %s: %w", s.path, err)
		}
	}
	s.v = v
	return nil
}

// GetBool reports the value stored under section/key and whether it was set.
func (s *Store) GetBool(section, key string) (bool, bool) {
	k := storeKey(section, key)
	if !s.v.IsSet(k) {
		return false, false
	}
	return s.v.GetBool(k), true
}

func (s *Store) SetBool(section, key string, value bool) {
	s.v.Set(storeKey(section, key), value)
}

// Flush writes every value back to the file, creating its directory.
func (s *Store) Flush() error {
	if dir := filepath.Dir(s.path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create config dir: %w", err)
		}
	}
	if err := s.v.WriteConfigAs(s.path); err != nil {
		return fmt.Errorf("write config file %s: %w", s.path, err)
	}
	return nil
}

func storeKey(section, key string) string {
	return section + "." + key
}
