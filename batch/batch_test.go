package batch

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nguyenyou/scala-js-ts-importer/config"
	"github.com/nguyenyou/scala-js-ts-importer/errors"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	v := viper.New()
	config.SetDefaults(v)
	cfg, err := config.LoadWithViper(v)
	require.NoError(t, err)
	return cfg
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestPackageName(t *testing.T) {
	tests := []struct {
		name     string
		relPath  string
		expected string
	}{
		{"flat file", "lib.d.ts", "lib"},
		{"nested file", "three/core.d.ts", "three.core"},
		{"hyphen becomes underscore", "some-lib/index.d.ts", "some_lib.index"},
		{"dotted name kept", "jquery.ui.d.ts", "jquery.ui"},
		{"space becomes underscore", "my lib.d.ts", "my_lib"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, PackageName(tt.relPath, ".d.ts"))
		})
	}
}

func TestConvertFile(t *testing.T) {
	cfg := testConfig(t)
	in := t.TempDir()
	out := t.TempDir()

	src := filepath.Join(in, "sub", "point.d.ts")
	writeFile(t, src, "interface Point { x: number; }\n")

	outPath, err := ConvertFile(src, in, out, cfg)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(out, "sub", "point.scala"), outPath)

	content, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Contains(t, string(content), "package sub.point {")
	assert.Contains(t, string(content), "trait Point extends js.Object {")
	assert.Contains(t, string(content), "var x: Double = js.native")
}

func TestConvertFileRejectsWrongSuffix(t *testing.T) {
	cfg := testConfig(t)
	dir := t.TempDir()
	src := filepath.Join(dir, "not-a-declaration.ts")
	writeFile(t, src, "interface A {}\n")

	_, err := ConvertFile(src, dir, dir, cfg)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrNotDeclarationFile))
}

func TestConvertFileParseFailure(t *testing.T) {
	cfg := testConfig(t)
	in := t.TempDir()
	out := t.TempDir()

	src := filepath.Join(in, "broken.d.ts")
	writeFile(t, src, "declare class {{{\n")

	_, err := ConvertFile(src, in, out, cfg)
	require.Error(t, err)
	assert.True(t, errors.IsParseError(err))
	// No partial output.
	_, statErr := os.Stat(filepath.Join(out, "broken.scala"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestRunWalksTree(t *testing.T) {
	cfg := testConfig(t)
	in := t.TempDir()
	out := t.TempDir()

	writeFile(t, filepath.Join(in, "a.d.ts"), "declare var x: number;\n")
	writeFile(t, filepath.Join(in, "deep", "b.d.ts"), "interface B {}\n")
	writeFile(t, filepath.Join(in, "ignored.ts"), "not a declaration file\n")
	writeFile(t, filepath.Join(in, "broken.d.ts"), "declare enum {{{\n")

	result, err := Run(in, out, cfg)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Converted)
	assert.Equal(t, 1, result.Failed)
	require.Len(t, result.Failures, 1)
	assert.True(t, strings.HasSuffix(result.Failures[0].Path, "broken.d.ts"))

	_, err = os.Stat(filepath.Join(out, "a.scala"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(out, "deep", "b.scala"))
	assert.NoError(t, err)
}

func TestRunAppliesPackagePrefix(t *testing.T) {
	cfg := testConfig(t)
	cfg.Output.PackagePrefix = "typings"
	in := t.TempDir()
	out := t.TempDir()

	writeFile(t, filepath.Join(in, "lib.d.ts"), "interface L {}\n")

	_, err := Run(in, out, cfg)
	require.NoError(t, err)

	content, err := os.ReadFile(filepath.Join(out, "lib.scala"))
	require.NoError(t, err)
	assert.Contains(t, string(content), "package typings.lib {")
}
