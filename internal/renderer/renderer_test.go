package renderer_test

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/demoreel/demoreel/internal/domain/entity"
	"github.com/demoreel/demoreel/internal/renderer"
)

func TestTerminalAddress(t *testing.T) {
	tests := []struct {
		name     string
		pane     entity.PaneSpec
		expected string
	}{
		{
			name:     "command pane",
			pane:     entity.PaneSpec{ContentRef: "npm run dev"},
			expected: "ws://mux:7681/cmd:npm%20run%20dev",
		},
		{
			name:     "named session",
			pane:     entity.PaneSpec{SessionID: "build-42"},
			expected: "ws://mux:7681/build-42",
		},
		{
			name:     "plain shell",
			pane:     entity.PaneSpec{},
			expected: "ws://mux:7681/shell",
		},
		{
			name:     "command wins over session",
			pane:     entity.PaneSpec{ContentRef: "htop", SessionID: "build-42"},
			expected: "ws://mux:7681/cmd:htop",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, renderer.TerminalAddress("ws://mux:7681", tt.pane))
		})
	}
}

func TestTerminalAddress_TrailingSlash(t *testing.T) {
	addr := renderer.TerminalAddress("ws://mux:7681/", entity.PaneSpec{})
	assert.Equal(t, "ws://mux:7681/shell", addr)
}

func TestTerminalRenderer_NoBaseURLYieldsPlaceholder(t *testing.T) {
	r := renderer.NewTerminalRenderer(zerolog.Nop())
	pane := entity.PaneSpec{Index: 1, Kind: entity.PaneTerminal, Title: "Server"}

	content := r.Render(pane, &entity.Scenario{})

	require.Error(t, content.Err())
	assert.Equal(t, "placeholder", content.Kind())
	assert.Equal(t, "Server", content.Title())
}

func TestTerminalRenderer_ResolvesAddress(t *testing.T) {
	r := renderer.NewTerminalRenderer(zerolog.Nop())
	pane := entity.PaneSpec{Kind: entity.PaneTerminal, ContentRef: "htop"}
	scenario := &entity.Scenario{TerminalBaseURL: "ws://mux:7681"}

	content := r.Render(pane, scenario)

	term, ok := content.(*renderer.TerminalContent)
	require.True(t, ok)
	assert.Equal(t, "ws://mux:7681/cmd:htop", term.Address())
	assert.NoError(t, content.Err())
}

func TestBrowserRenderer_NoURLYieldsPlaceholder(t *testing.T) {
	r := renderer.NewBrowserRenderer(renderer.NewBrowserDriver(), zerolog.Nop())
	pane := entity.PaneSpec{Index: 0, Kind: entity.PaneBrowser}

	content := r.Render(pane, &entity.Scenario{})

	require.Error(t, content.Err())
	assert.Equal(t, "placeholder", content.Kind())
}

func TestRegistry_UnknownKindYieldsPlaceholder(t *testing.T) {
	reg := renderer.NewRegistry(zerolog.Nop())
	pane := entity.PaneSpec{Index: 3, Kind: entity.PaneKind("hologram")}

	content := reg.Render(pane, &entity.Scenario{})

	require.Error(t, content.Err())
	assert.Equal(t, "placeholder", content.Kind())
}
