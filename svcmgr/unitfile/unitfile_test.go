package unitfile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderIncludesCoreDirectives(t *testing.T) {
	content, err := Render(Options{
		Description: "Test service description",
		ExecStart:   "/usr/bin/helloworld service 127.0.0.1:53165",
		WantedBy:    "multi-user.target",
	})
	require.NoError(t, err)

	assert.Contains(t, content, "Description=Test service description")
	assert.Contains(t, content, "ExecStart=/usr/bin/helloworld service 127.0.0.1:53165")
	assert.Contains(t, content, "WantedBy=multi-user.target")
	assert.NotContains(t, content, "Restart=always")
}

func TestRenderOmitsRestartWhenNotRequested(t *testing.T) {
	content, err := Render(Options{Description: "d", ExecStart: "/bin/true"})
	require.NoError(t, err)
	assert.NotContains(t, content, "Restart=")
}

func TestRenderIncludesRestartAlwaysWhenRequested(t *testing.T) {
	content, err := Render(Options{Description: "d", ExecStart: "/bin/true", RestartAlways: true})
	require.NoError(t, err)
	assert.Contains(t, content, "Restart=always")
}
