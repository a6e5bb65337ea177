// Package locale resolves the GUI_LANGUAGE setting to a supported language.
package locale

import (
	"os"
	"strings"

	"golang.org/x/text/language"
)

// Source reports the user's locale in POSIX form, e.g. "de_DE.UTF-8".
type Source func() string

// EnvSource reads LC_ALL, LC_MESSAGES and LANG, in that order.
func EnvSource() string {
	for _, name := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		if v := os.Getenv(name); v != "" {
			return v
		}
	}
	return ""
}

// Fixed returns a Source that always reports tag.
func Fixed(tag string) Source {
	return func() string { return tag }
}

// Supported lists the languages the front-end ships translations for. The
// first entry is the fallback.
var Supported = []language.Tag{
	language.English,
	language.SimplifiedChinese,
	language.German,
	language.Spanish,
	language.French,
}

var matcher = language.NewMatcher(Supported)

// Resolve maps a GUI_LANGUAGE value to one of Supported. "auto" or an empty
// setting consults src; anything unparseable resolves to English.
func Resolve(setting string, src Source) language.Tag {
	setting = strings.TrimSpace(setting)
	if setting == "" || strings.EqualFold(setting, "auto") {
		setting = ""
		if src != nil {
			setting = src()
		}
	}

	tag, err := language.Parse(normalize(setting))
	if err != nil {
		return Supported[0]
	}
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return Supported[0]
	}
	return Supported[idx]
}

// normalize turns "zh_CN.UTF-8@pinyin" into "zh-CN". The C and POSIX
// locales carry no language.
func normalize(posix string) string {
	if i := strings.IndexAny(posix, ".@"); i >= 0 {
		posix = posix[:i]
	}
	if posix == "C" || posix == "POSIX" {
		return ""
	}
	return strings.ReplaceAll(posix, "_", "-")
}
