package lang

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/6112/ciel"
)

const iniDefinition = `
name: ini
rules:
  - pattern: '\[[^\]]*\]'
    class: keyword
  - pattern: '%\{'
    end: '\}'
    class: value
keywords: [include]
double_quoted: true
comment: ";"
`

func TestParseYAML(t *testing.T) {
	sp, e := ParseYAML("ini.yaml", []byte(iniDefinition))
	require.NoError(t, e)

	assert.Equal(t, "ini", sp.Name)
	require.Len(t, sp.Extra, 2)
	assert.Equal(t, ExtraRule{Pattern: `\[[^\]]*\]`, Class: ClassKeyword}, sp.Extra[0])
	assert.Equal(t, `\}`, sp.Extra[1].End)
	assert.Equal(t, []string{"include"}, sp.Keywords)
	assert.True(t, sp.DoubleQuoted)
	assert.False(t, sp.SingleQuoted)
	assert.Equal(t, ";", sp.Comment)
}

func TestParseYAMLErrors(t *testing.T) {
	samples := []struct {
		src  string
		code int
	}{
		{"{not yaml", ErrBadDefinition},
		{"keywords: [a]", ErrNoName},
		{"name: x\nrules:\n  - class: keyword", ErrEmptyPattern},
	}
	for i, s := range samples {
		_, e := ParseYAML("bad.yaml", []byte(s.src))
		require.Error(t, e, "sample #%d", i)
		ce := &ciel.Error{}
		require.ErrorAs(t, e, &ce, "sample #%d", i)
		assert.Equal(t, s.code, ce.Code, "sample #%d", i)
	}
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ini.yaml"), []byte(iniDefinition), 0o666))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "min.yml"), []byte("name: min"), 0o666))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ignored.txt"), []byte("not a definition"), 0o666))

	specs, e := LoadDir(dir)
	require.NoError(t, e)
	require.Len(t, specs, 2)

	names := []string{specs[0].Name, specs[1].Name}
	assert.ElementsMatch(t, []string{"ini", "min"}, names)
}

func TestLoadDirMissing(t *testing.T) {
	_, e := LoadDir(filepath.Join(t.TempDir(), "nope"))
	require.Error(t, e)
	ce := &ciel.Error{}
	require.ErrorAs(t, e, &ce)
	assert.Equal(t, ErrBadDefinition, ce.Code)
}

func TestByExtension(t *testing.T) {
	samples := []struct {
		file, name string
	}{
		{"main.go", "go"},
		{"app.JS", "javascript"},
		{"style.css", "css"},
		{"page.html", "html"},
		{"script.rb", "ruby"},
		{"run.sh", "sh"},
		{"README", ""},
		{"data.bin", ""},
	}
	for i, s := range samples {
		assert.Equal(t, s.name, ByExtension(s.file), "sample #%d: %q", i, s.file)
	}
}
