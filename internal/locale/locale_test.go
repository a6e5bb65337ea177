package locale

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name    string
		setting string
		env     string
		want    language.Tag
	}{
		{"auto chinese locale", "auto", "zh_CN.UTF-8", language.SimplifiedChinese},
		{"auto german locale", "auto", "de_DE.UTF-8", language.German},
		{"auto with modifier", "AUTO", "fr_FR@euro", language.French},
		{"empty setting uses locale", "", "es_ES.UTF-8", language.Spanish},
		{"auto C locale", "auto", "C", language.English},
		{"auto unset locale", "auto", "", language.English},
		{"explicit overrides locale", "de", "zh_CN.UTF-8", language.German},
		{"explicit posix form", "zh_CN", "en_US.UTF-8", language.SimplifiedChinese},
		{"unsupported language", "ja_JP", "", language.English},
		{"garbage", "not a language", "", language.English},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Resolve(tt.setting, Fixed(tt.env)))
		})
	}
}

func TestResolveNilSource(t *testing.T) {
	assert.Equal(t, language.English, Resolve("auto", nil))
}

func TestEnvSourceOrder(t *testing.T) {
	t.Setenv("LC_ALL", "")
	t.Setenv("LC_MESSAGES", "")
	t.Setenv("LANG", "de_DE.UTF-8")
	assert.Equal(t, "de_DE.UTF-8", EnvSource())

	t.Setenv("LC_MESSAGES", "fr_FR.UTF-8")
	assert.Equal(t, "fr_FR.UTF-8", EnvSource())

	t.Setenv("LC_ALL", "zh_CN.UTF-8")
	assert.Equal(t, "zh_CN.UTF-8", EnvSource())
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "zh-CN", normalize("zh_CN.UTF-8@pinyin"))
	assert.Equal(t, "", normalize("POSIX"))
	assert.Equal(t, "en", normalize("en"))
}
