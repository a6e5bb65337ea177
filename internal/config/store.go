package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/CodexForgeBR/sysupdate/internal/logging"
)

// Store loads and saves a Config file and caches the last load in memory.
// It is not safe for concurrent use.
type Store struct {
	path  string
	cache Config
}

// NewStore returns a Store backed by the file at path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// DefaultPath returns $XDG_CONFIG_HOME/sysupdate/config, falling back to
// ~/.config/sysupdate/config.
func DefaultPath() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "sysupdate", "config"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, ".config", "sysupdate", "config"), nil
}

// Path returns the file the store reads and writes.
func (s *Store) Path() string {
	return s.path
}

// ParseLine splits a KEY=VALUE line.
//
// Lines are processed according to these rules:
//   - Empty lines and lines starting with # are rejected.
//   - Lines without an = sign, or with an empty key, are rejected.
//   - Leading and trailing whitespace is trimmed from both key and value.
//   - A value wrapped in matching single or double quotes is unquoted.
func ParseLine(line string) (key, value string, ok bool) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return "", "", false
	}

	// Split on first '=' only.
	idx := strings.Index(line, "=")
	if idx < 0 {
		return "", "", false
	}

	key = strings.TrimSpace(line[:idx])
	if key == "" {
		return "", "", false
	}
	return key, unquote(strings.TrimSpace(line[idx+1:])), true
}

func unquote(v string) string {
	if len(v) >= 2 {
		first, last := v[0], v[len(v)-1]
		if (first == '"' || first == '\'') && first == last {
			return v[1 : len(v)-1]
		}
	}
	return v
}

// Load returns the effective configuration.
//
// A cached result is reused unless forceReload is set. Otherwise the default
// table is overlaid with the file's values: typed keys whose value fails
// Validate keep their default, and unknown keys are copied as-is. A missing
// or unreadable file yields the defaults. The caller always receives its own
// copy.
func (s *Store) Load(forceReload bool) Config {
	if s.cache != nil && !forceReload {
		return s.cache.Clone()
	}

	cfg := Defaults()
	values, err := readFile(s.path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			logging.Debugf("config: using defaults: %v", err)
		}
	}
	for key, value := range values {
		if err := Validate(key, value); err != nil {
			logging.Debugf("config: %v; keeping default %q", err, cfg[key])
			continue
		}
		cfg[key] = value
	}

	s.cache = cfg.Clone()
	return cfg
}

func readFile(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	result := make(map[string]string)
	for _, line := range strings.Split(string(data), "\n") {
		key, value, ok := ParseLine(line)
		if !ok {
			continue
		}
		result[key] = value
	}
	return result, nil
}

// Save writes cfg to the store's file, keeping the existing layout.
//
// Comment, blank and unparseable lines are kept where they are. A KEY= line
// is rewritten in place when cfg has the key and dropped when it does not.
// Keys not yet in the file are appended, known keys first in table order,
// then the rest sorted. On success the cache is invalidated so the next Load
// re-reads the file. Entries that would not read back as written are
// rejected before anything is touched.
func (s *Store) Save(cfg Config) error {
	for _, key := range cfg.Keys() {
		if err := checkEntry(key, cfg[key]); err != nil {
			return err
		}
	}

	var existing []string
	data, err := os.ReadFile(s.path)
	switch {
	case err == nil:
		if text := strings.TrimRight(string(data), "\n"); text != "" {
			existing = strings.Split(text, "\n")
		}
	case !errors.Is(err, os.ErrNotExist):
		return fmt.Errorf("read config file: %w", err)
	}

	written := make(map[string]bool, len(cfg))
	lines := make([]string, 0, len(existing)+len(cfg))
	for _, line := range existing {
		key, _, ok := ParseLine(line)
		if !ok {
			lines = append(lines, line)
			continue
		}
		value, keep := cfg[key]
		if !keep || written[key] {
			continue
		}
		lines = append(lines, formatLine(key, value))
		written[key] = true
	}

	for _, key := range appendOrder(cfg, written) {
		lines = append(lines, formatLine(key, cfg[key]))
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	if err := os.WriteFile(s.path, []byte(strings.Join(lines, "\n")+"\n"), 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}

	s.cache = nil
	return nil
}

// appendOrder lists the keys of cfg not yet written, in Keys order.
func appendOrder(cfg Config, written map[string]bool) []string {
	var keys []string
	for _, key := range cfg.Keys() {
		if !written[key] {
			keys = append(keys, key)
		}
	}
	return keys
}

// checkEntry rejects keys and values that ParseLine could not read back.
func checkEntry(key, value string) error {
	switch {
	case key == "":
		return errors.New("config key must not be empty")
	case key != strings.TrimSpace(key), strings.HasPrefix(key, "#"), strings.ContainsAny(key, "=\r\n"):
		return fmt.Errorf("config key %q cannot be written", key)
	case strings.ContainsAny(value, "\r\n"):
		return fmt.Errorf("value of %s must be a single line", key)
	}
	return nil
}

// checkKey applies the stricter naming rule for keys added through Set.
func checkKey(key string) error {
	if key == "" {
		return errors.New("config key must not be empty")
	}
	if strings.ContainsAny(key, "= \t\r\n#'\"") {
		return fmt.Errorf("config key %q contains a reserved character", key)
	}
	return nil
}

func formatLine(key, value string) string {
	if !strings.ContainsAny(value, " \t#'\"") {
		return key + "=" + value
	}
	if strings.Contains(value, `"`) {
		return key + "='" + value + "'"
	}
	return key + `="` + value + `"`
}

// Get returns the effective value of key, or fallback when it is unset.
func (s *Store) Get(key, fallback string) string {
	if v, ok := s.Load(false)[key]; ok {
		return v
	}
	return fallback
}

// Bool reports whether key holds the literal "true".
func (s *Store) Bool(key string) bool {
	return s.Get(key, "") == "true"
}

// Set stores value under key and saves the whole configuration.
// Keys are limited to names without whitespace, quotes, '=' or '#'.
func (s *Store) Set(key, value string) error {
	if err := checkKey(key); err != nil {
		return err
	}
	cfg := s.Load(false)
	cfg[key] = value
	return s.Save(cfg)
}
