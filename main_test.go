package main

import (
	"bytes"
	"encoding/json"
	"io/fs"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AydinTheFirst/n8n-chat-widget/internal/landing"
)

func TestWidgetConfigCommand(t *testing.T) {
	t.Setenv("N8N_WEBHOOK_URL", "https://n8n.example.com/webhook/abc/chat")

	var out, errOut bytes.Buffer
	root := newRootCommand()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs([]string{"widget-config", "--pretty"})
	require.NoError(t, root.Execute())

	var payload map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &payload))
	assert.Equal(t, "https://n8n.example.com/webhook/abc/chat", payload["webhookUrl"])
	assert.Equal(t, "window", payload["mode"])
	assert.Contains(t, out.String(), "\n  \"")
}

func TestStaticAssets(t *testing.T) {
	assets, err := staticAssets()
	require.NoError(t, err)

	for _, name := range []string{"styles.css", "chat-styles.css", "js/landing.js"} {
		_, err := fs.Stat(assets, name)
		assert.NoError(t, err, name)
	}
}

func TestLandingScript_RevealMatchesServerThreshold(t *testing.T) {
	assets, err := staticAssets()
	require.NoError(t, err)

	src, err := fs.ReadFile(assets, "js/landing.js")
	require.NoError(t, err)
	script := string(src)

	threshold := strconv.FormatFloat(landing.DefaultRevealThreshold, 'f', -1, 64)
	assert.Contains(t, script, "const revealThreshold = "+threshold+";")
	assert.Contains(t, script, "entry.intersectionRatio < revealThreshold) continue;",
		"sections below the threshold stay observed")
}
