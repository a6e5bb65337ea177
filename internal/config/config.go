// Package config defines the sysupdate settings table and the store that
// persists it.
//
// Settings live in a flat KEY=VALUE file shared with the wrapped update
// script. The effective configuration is always the default table overlaid
// with whatever the file provides: every default key is present, typed keys
// that fail validation keep their default, and keys the table does not know
// about pass through untouched.
package config

import (
	"fmt"
	"sort"
	"strconv"
)

// Kind is the type constraint attached to a setting.
type Kind int

const (
	KindString Kind = iota
	KindBool
	KindInt
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case KindBool:
		return "boolean"
	case KindInt:
		return "integer"
	default:
		return "string"
	}
}

// Entry describes one known setting.
type Entry struct {
	Key     string
	Default string
	Kind    Kind
	// Enforce rejects file values that do not satisfy Kind on load.
	Enforce bool
}

// KeyRepo overrides the repository queried for new releases. It is not part
// of the default table and is never validated.
const KeyRepo = "GITHUB_REPO"

// Setting keys with defaults.
const (
	KeySystemUpdate  = "ENABLE_SYSTEM_UPDATE"
	KeyAURUpdate     = "ENABLE_AUR_UPDATE"
	KeyCacheClean    = "ENABLE_CACHE_CLEAN"
	KeyOrphanRemoval = "ENABLE_ORPHAN_REMOVAL"
	KeyNotifications = "ENABLE_NOTIFICATIONS"
	KeyAURHelper     = "AUR_HELPER"
	KeyLanguage      = "GUI_LANGUAGE"
	KeyTheme         = "GUI_THEME"
	KeyLogDir        = "LOG_DIR"
	KeyMaxLogFiles   = "MAX_LOG_FILES"
)

// Entries is the default table, in the order keys are written to a fresh file.
var Entries = []Entry{
	{Key: KeySystemUpdate, Default: "true", Kind: KindBool, Enforce: true},
	{Key: KeyAURUpdate, Default: "true", Kind: KindBool, Enforce: true},
	{Key: KeyCacheClean, Default: "true", Kind: KindBool, Enforce: true},
	{Key: KeyOrphanRemoval, Default: "false", Kind: KindBool, Enforce: true},
	{Key: KeyNotifications, Default: "true", Kind: KindBool, Enforce: true},
	{Key: KeyAURHelper, Default: "auto", Kind: KindString},
	{Key: KeyLanguage, Default: "auto", Kind: KindString},
	{Key: KeyTheme, Default: "auto", Kind: KindString},
	{Key: KeyLogDir, Default: "", Kind: KindString},
	{Key: KeyMaxLogFiles, Default: "10", Kind: KindInt, Enforce: true},
}

// entrySet is a precomputed lookup table keyed by setting name.
var entrySet map[string]Entry

func init() {
	entrySet = make(map[string]Entry, len(Entries))
	for _, e := range Entries {
		entrySet[e.Key] = e
	}
}

// Config maps setting keys to their raw string values.
type Config map[string]string

// Clone returns an independent copy of c.
func (c Config) Clone() Config {
	out := make(Config, len(c))
	for k, v := range c {
		out[k] = v
	}
	return out
}

// Keys lists the keys of c: table keys first in table order, then any
// others sorted by name.
func (c Config) Keys() []string {
	keys := make([]string, 0, len(c))
	for _, e := range Entries {
		if _, ok := c[e.Key]; ok {
			keys = append(keys, e.Key)
		}
	}
	var extra []string
	for key := range c {
		if _, known := entrySet[key]; !known {
			extra = append(extra, key)
		}
	}
	sort.Strings(extra)
	return append(keys, extra...)
}

// Defaults returns a fresh Config holding every default value.
func Defaults() Config {
	cfg := make(Config, len(Entries))
	for _, e := range Entries {
		cfg[e.Key] = e.Default
	}
	return cfg
}

// Lookup returns the table entry for key.
func Lookup(key string) (Entry, bool) {
	e, ok := entrySet[key]
	return e, ok
}

// Validate checks value against the type constraint of key. Keys outside the
// table, string keys and unenforced entries always pass.
//
// Booleans are strict: only the literals "true" and "false" are accepted.
func Validate(key, value string) error {
	e, ok := entrySet[key]
	if !ok || !e.Enforce {
		return nil
	}
	switch e.Kind {
	case KindBool:
		if value != "true" && value != "false" {
			return fmt.Errorf("%s must be true or false, got %q", key, value)
		}
	case KindInt:
		if _, err := strconv.Atoi(value); err != nil {
			return fmt.Errorf("%s must be an integer, got %q", key, value)
		}
	}
	return nil
}
