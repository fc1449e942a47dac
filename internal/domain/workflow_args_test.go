package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	adaptermocks "mapwright.dev/pkg/mapwright/internal/adapter/mocks"
	m "mapwright.dev/pkg/mapwright/internal/model"
)

func TestWorkflowPipeline_AddSourceArgs_CacheKey(t *testing.T) {
	tests := []struct {
		name    string
		script  m.Script
		wantURL string
		wantKey string
	}{
		{
			name: "map file keyed on its own hash",
			script: m.Script{
				Path: "/dist/app.js", Hash: "script-hash",
				SourceMappingURL: "app.js.map", SourceMapHash: "map-hash",
			},
			wantURL: "file:///dist/app.js.map",
			wantKey: "map-hash",
		},
		{
			name:    "unhashed map file is not persisted",
			script:  m.Script{Path: "/dist/app.js", Hash: "script-hash", SourceMappingURL: "https://cdn.example.com/app.js.map"},
			wantURL: "https://cdn.example.com/app.js.map",
		},
		{
			name:    "inline map keyed on the script hash",
			script:  m.Script{Path: "/dist/app.js", Hash: "script-hash", SourceMappingURL: "data:application/json;base64,e30="},
			wantURL: "data:application/json;base64,e30=",
			wantKey: "script-hash",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolver := adaptermocks.NewMockPathResolver(t)
			resolver.EXPECT().FileURL(tt.script.Path).Return("file:///dist/app.js").Once()
			w := &workflowPipeline{resolver: resolver}

			args := w.addSourceArgs(tt.script)

			require.NotNil(t, args.SourceMap)
			assert.Equal(t, tt.wantURL, args.SourceMap.SourceMapURL)
			assert.Equal(t, tt.wantKey, args.SourceMap.CacheKey)
			assert.Equal(t, tt.script.Path, args.SourceMap.CompiledPath)
		})
	}
}
