package plist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderIncludesLabelAndArguments(t *testing.T) {
	content, err := Render(Options{
		Label:            "com.example.hello_world",
		ProgramArguments: []string{"/usr/bin/helloworld", "service", "127.0.0.1:53165"},
		RunAtLoad:        true,
	})
	require.NoError(t, err)

	assert.Contains(t, content, "<key>Label</key>")
	assert.Contains(t, content, "<string>com.example.hello_world</string>")
	assert.Contains(t, content, "<string>/usr/bin/helloworld</string>")
	assert.Contains(t, content, "<string>service</string>")
	assert.Contains(t, content, "<key>KeepAlive</key>\n\t<false/>")
}

func TestRenderRunAtLoadFlag(t *testing.T) {
	withLoad, err := Render(Options{Label: "l", RunAtLoad: true})
	require.NoError(t, err)
	assert.Contains(t, withLoad, "<key>RunAtLoad</key>\n\t<true/>")

	withoutLoad, err := Render(Options{Label: "l", RunAtLoad: false})
	require.NoError(t, err)
	assert.Contains(t, withoutLoad, "<key>RunAtLoad</key>\n\t<false/>")
}

func TestRenderEscapesSpecialCharacters(t *testing.T) {
	content, err := Render(Options{Label: "a & b", ProgramArguments: []string{"<x>"}})
	require.NoError(t, err)

	assert.Contains(t, content, "a &amp; b")
	assert.Contains(t, content, "&lt;x&gt;")
}
