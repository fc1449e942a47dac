package domain_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"mapwright.dev/pkg/mapwright/internal/adapter"
	adaptermocks "mapwright.dev/pkg/mapwright/internal/adapter/mocks"
	"mapwright.dev/pkg/mapwright/internal/domain"
	m "mapwright.dev/pkg/mapwright/internal/model"
)

func collectScripts(scripts <-chan m.Script, errs <-chan error) ([]m.Script, error) {
	var out []m.Script
	for script := range scripts {
		out = append(out, script)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Path < out[j].Path })

	return out, <-errs
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()

	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestScriptStreamer_Get(t *testing.T) {
	// Arrange
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "app.js"), "console.log(1);\n//# sourceMappingURL=app.js.map\n")
	writeFile(t, filepath.Join(root, "lib", "util.mjs"), "export {};\n")
	writeFile(t, filepath.Join(root, "mod.wasm"), "\x00asm")
	writeFile(t, filepath.Join(root, "README.md"), "# docs\n")

	streamer := domain.NewScriptStreamer(adapter.NewLocalSourceFSAdapter())

	// Act
	scripts, err := collectScripts(streamer.Get(context.Background(), []m.Path{m.Path(root + "/...")}, nil, 2))

	// Assert
	require.NoError(t, err)
	require.Len(t, scripts, 3)

	app, util, wasm := scripts[0], scripts[1], scripts[2]

	assert.Equal(t, m.Path(filepath.Join(root, "app.js")), app.Path)
	assert.Equal(t, m.KindGenerated, app.Kind)
	assert.Equal(t, "app.js.map", app.SourceMappingURL)
	assert.NotEmpty(t, app.Hash)
	assert.Empty(t, app.SourceMapHash)

	assert.Equal(t, m.Path(filepath.Join(root, "lib", "util.mjs")), util.Path)
	assert.Empty(t, util.SourceMappingURL)

	assert.Equal(t, m.KindWasm, wasm.Kind)
	assert.Empty(t, wasm.Content)
	assert.NotEmpty(t, wasm.Hash)
}

func TestScriptStreamer_Get_Exclude(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "app.js"), "1;\n")
	writeFile(t, filepath.Join(root, "vendor", "big.js"), "2;\n")

	streamer := domain.NewScriptStreamer(adapter.NewLocalSourceFSAdapter())

	scripts, err := collectScripts(streamer.Get(context.Background(), []m.Path{m.Path(root + "/...")}, []string{"vendor"}, 0))

	require.NoError(t, err)
	require.Len(t, scripts, 1)
	assert.Equal(t, m.Path(filepath.Join(root, "app.js")), scripts[0].Path)
}

func TestScriptStreamer_Get_HashesMapFile(t *testing.T) {
	// Arrange
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "app.js"), "1;\n//# sourceMappingURL=maps/app.js.map\n")
	writeFile(t, filepath.Join(root, "maps", "app.js.map"), `{"version":3,"sources":["a.ts"],"mappings":""}`)

	streamer := domain.NewScriptStreamer(adapter.NewLocalSourceFSAdapter())
	paths := []m.Path{m.Path(root + "/...")}

	before, err := collectScripts(streamer.Get(context.Background(), paths, nil, 1))
	require.NoError(t, err)
	require.Len(t, before, 1)

	// Act
	writeFile(t, filepath.Join(root, "maps", "app.js.map"), `{"version":3,"sourceRoot":"src/","sources":["a.ts"],"mappings":""}`)
	after, err := collectScripts(streamer.Get(context.Background(), paths, nil, 1))

	// Assert
	require.NoError(t, err)
	require.Len(t, after, 1)
	assert.NotEmpty(t, before[0].SourceMapHash)
	assert.NotEmpty(t, after[0].SourceMapHash)
	assert.Equal(t, before[0].Hash, after[0].Hash)
	assert.NotEqual(t, before[0].SourceMapHash, after[0].SourceMapHash)
}

func TestScriptStreamer_Get_DiscoveryError(t *testing.T) {
	// Arrange
	paths := []m.Path{"./dist"}
	fsAdapter := adaptermocks.NewMockSourceFSAdapter(t)
	fsAdapter.EXPECT().Get(mock.Anything, paths).Return(nil, errors.New("permission denied")).Once()

	streamer := domain.NewScriptStreamer(fsAdapter)

	// Act
	scripts, err := collectScripts(streamer.Get(context.Background(), paths, nil, 1))

	// Assert
	assert.Empty(t, scripts)
	assert.ErrorContains(t, err, "discover scripts: permission denied")
}

func TestScriptStreamer_Get_ReadError(t *testing.T) {
	// Arrange
	paths := []m.Path{"/dist/app.js"}
	fsAdapter := adaptermocks.NewMockSourceFSAdapter(t)
	fsAdapter.EXPECT().Get(mock.Anything, paths).Return(paths, nil).Once()
	fsAdapter.EXPECT().HashFile(mock.Anything, m.Path("/dist/app.js")).Return("abc", nil).Once()
	fsAdapter.EXPECT().ReadFile(mock.Anything, m.Path("/dist/app.js")).Return(nil, os.ErrNotExist).Once()

	streamer := domain.NewScriptStreamer(fsAdapter)

	// Act
	scripts, err := collectScripts(streamer.Get(context.Background(), paths, nil, 1))

	// Assert
	assert.Empty(t, scripts)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
