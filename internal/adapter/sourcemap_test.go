package adapter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "mapwright.dev/pkg/mapwright/internal/model"
)

const testMapURL = "file:///dist/app.js.map"

// Line 0: columns 0 and 4 map to a.ts 0:0 and 0:4. Line 1: column 0 maps to a.ts 1:4.
const testMapJSON = `{
	"version": 3,
	"file": "app.js",
	"sources": ["a.ts"],
	"sourcesContent": ["const a = 1;\nconst b = 2;\n"],
	"names": [],
	"mappings": "AAAA,IAAI;AACA"
}`

func parseTestMap(t *testing.T) *SourceMap {
	t.Helper()

	sm, err := ParseSourceMap([]byte(testMapJSON), testMapURL)
	require.NoError(t, err)

	return sm
}

func TestParseSourceMap_ResolvesSources(t *testing.T) {
	sm := parseTestMap(t)

	assert.Equal(t, testMapURL, sm.URL())
	assert.Equal(t, []string{"file:///dist/a.ts"}, sm.Sources())

	content, ok := sm.SourceContentFor("file:///dist/a.ts")
	require.True(t, ok)
	assert.Equal(t, "const a = 1;\nconst b = 2;\n", content)

	_, ok = sm.SourceContentFor("file:///dist/missing.ts")
	assert.False(t, ok)
}

func TestParseSourceMap_SourceRoot(t *testing.T) {
	data := `{"version":3,"sourceRoot":"src/","sources":["a.ts","https://cdn.example.com/b.ts"],"mappings":""}`

	sm, err := ParseSourceMap([]byte(data), testMapURL)
	require.NoError(t, err)

	assert.Equal(t, []string{"file:///dist/src/a.ts", "https://cdn.example.com/b.ts"}, sm.Sources())
}

func TestParseSourceMap_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"invalid json", "{"},
		{"unsupported version", `{"version":2,"sources":[],"mappings":""}`},
		{"invalid segment", `{"version":3,"sources":["a.ts"],"mappings":"AA"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseSourceMap([]byte(tt.data), testMapURL)
			assert.Error(t, err)
		})
	}

	_, err := ParseSourceMap([]byte(`{"version":2,"sources":[],"mappings":""}`), testMapURL)
	assert.ErrorIs(t, err, ErrUnsupportedMapVersion)
}

func TestSourceMap_OriginalPositionFor(t *testing.T) {
	sm := parseTestMap(t)
	source := "file:///dist/a.ts"

	tests := []struct {
		name   string
		pos    m.Position
		bias   m.Bias
		want   m.Position
		wantOK bool
	}{
		{"exact glb", m.Position{Line: 0, Column: 4}, m.GreatestLowerBound, m.Position{Line: 0, Column: 4}, true},
		{"between glb", m.Position{Line: 0, Column: 2}, m.GreatestLowerBound, m.Position{Line: 0, Column: 0}, true},
		{"between lub", m.Position{Line: 0, Column: 2}, m.LeastUpperBound, m.Position{Line: 0, Column: 4}, true},
		{"past end glb", m.Position{Line: 0, Column: 20}, m.GreatestLowerBound, m.Position{Line: 0, Column: 4}, true},
		{"past end lub", m.Position{Line: 0, Column: 20}, m.LeastUpperBound, m.Position{}, false},
		{"second line", m.Position{Line: 1, Column: 3}, m.GreatestLowerBound, m.Position{Line: 1, Column: 4}, true},
		{"unmapped line", m.Position{Line: 7, Column: 0}, m.GreatestLowerBound, m.Position{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := sm.OriginalPositionFor(tt.pos, tt.bias)

			require.Equal(t, tt.wantOK, ok)

			if tt.wantOK {
				assert.Equal(t, source, got.URL)
				assert.Equal(t, tt.want, got.Position)
			}
		})
	}
}

func TestSourceMap_GeneratedPositionsFor(t *testing.T) {
	sm := parseTestMap(t)
	source := "file:///dist/a.ts"

	assert.Equal(t, []m.Position{{Line: 0, Column: 4}}, sm.GeneratedPositionsFor(source, m.Position{Line: 0, Column: 4}))
	// No entry at column 1, the next column on the line is used.
	assert.Equal(t, []m.Position{{Line: 0, Column: 4}}, sm.GeneratedPositionsFor(source, m.Position{Line: 0, Column: 1}))
	assert.Equal(t, []m.Position{{Line: 1, Column: 0}}, sm.GeneratedPositionsFor(source, m.Position{Line: 1, Column: 0}))
	assert.Nil(t, sm.GeneratedPositionsFor(source, m.Position{Line: 2, Column: 0}))
	assert.Nil(t, sm.GeneratedPositionsFor("file:///dist/other.ts", m.Position{}))
}

func TestSourceMap_Names(t *testing.T) {
	data := `{"version":3,"sources":["a.ts"],"names":["foo","bar"],"mappings":"AAAAA,EAAEA,EAAEC"}`

	sm, err := ParseSourceMap([]byte(data), testMapURL)
	require.NoError(t, err)

	var names []string

	sm.EachMapping(func(mapping Mapping) bool {
		names = append(names, mapping.Name)
		return true
	})

	assert.Equal(t, []string{"foo", "foo", "bar"}, names)
}

func TestSourceMap_EachMappingStops(t *testing.T) {
	sm := parseTestMap(t)

	count := 0

	sm.EachMapping(func(Mapping) bool {
		count++
		return false
	})

	assert.Equal(t, 1, count)
}

func TestParseSourceMap_IndexedSections(t *testing.T) {
	data := `{
		"version": 3,
		"sections": [
			{"offset": {"line": 0, "column": 0}, "map": {"version":3,"sources":["a.ts"],"mappings":"AAAA"}},
			{"offset": {"line": 2, "column": 10}, "map": {"version":3,"sources":["b.ts"],"mappings":"AAAA"}}
		]
	}`

	sm, err := ParseSourceMap([]byte(data), testMapURL)
	require.NoError(t, err)

	assert.Equal(t, []string{"file:///dist/a.ts", "file:///dist/b.ts"}, sm.Sources())

	got, ok := sm.OriginalPositionFor(m.Position{Line: 2, Column: 12}, m.GreatestLowerBound)
	require.True(t, ok)
	assert.Equal(t, "file:///dist/b.ts", got.URL)
	assert.Equal(t, m.Position{}, got.Position)

	_, ok = sm.OriginalPositionFor(m.Position{Line: 2, Column: 5}, m.GreatestLowerBound)
	assert.False(t, ok)
}

func TestCompleteURL(t *testing.T) {
	tests := []struct {
		base string
		ref  string
		want string
	}{
		{"file:///dist/app.js", "app.js.map", "file:///dist/app.js.map"},
		{"file:///dist/js/app.js", "../maps/app.js.map", "file:///dist/maps/app.js.map"},
		{"http://localhost:8080/app.js", "/maps/app.js.map", "http://localhost:8080/maps/app.js.map"},
		{"file:///dist/app.js", "https://cdn.example.com/app.js.map", "https://cdn.example.com/app.js.map"},
	}

	for _, tt := range tests {
		t.Run(tt.ref, func(t *testing.T) {
			assert.Equal(t, tt.want, CompleteURL(tt.base, tt.ref))
		})
	}
}

func TestParseSourceMappingURL(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"line comment", "var a = 1;\n//# sourceMappingURL=app.js.map\n", "app.js.map"},
		{"legacy marker", "var a = 1;\n//@ sourceMappingURL=old.js.map", "old.js.map"},
		{"css comment", "a{}\n/*# sourceMappingURL=style.css.map */", "style.css.map"},
		{"data uri", "x\n//# sourceMappingURL=data:application/json;base64,e30=", "data:application/json;base64,e30="},
		{"last wins", "//# sourceMappingURL=first.map\n//# sourceMappingURL=second.map", "second.map"},
		{"none", "var a = 1;\n", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseSourceMappingURL(tt.content))
		})
	}
}

func TestIsDataURI(t *testing.T) {
	assert.True(t, IsDataURI("data:application/json,{}"))
	assert.True(t, IsDataURI("DATA:text/plain,x"))
	assert.False(t, IsDataURI("file:///data/app.js"))
}

func TestLocalMapPath(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		want   m.Path
		wantOK bool
	}{
		{name: "relative", raw: "app.js.map", want: "/dist/app.js.map", wantOK: true},
		{name: "parent", raw: "../maps/app.js.map?v=2", want: "/maps/app.js.map", wantOK: true},
		{name: "file url", raw: "file:///other/app.js.map", want: "/other/app.js.map", wantOK: true},
		{name: "remote", raw: "https://cdn.example.com/app.js.map"},
		{name: "data uri", raw: "data:application/json;base64,e30="},
		{name: "empty"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := LocalMapPath("/dist/app.js", tt.raw)

			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
