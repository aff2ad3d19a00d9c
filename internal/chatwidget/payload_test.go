package chatwidget

import (
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AydinTheFirst/n8n-chat-widget/internal/config"
)

func testChatConfig() config.ChatConfig {
	return config.ChatConfig{
		WebhookURL:          "https://n8n.example.com/webhook/abc/chat",
		ScriptURL:           "https://cdn.example.com/chat.bundle.es.js",
		StyleURL:            "https://cdn.example.com/style.css",
		LoadPreviousSession: true,
	}
}

func TestDefaultPayload_JSONShape(t *testing.T) {
	data, err := json.Marshal(DefaultPayload(testChatConfig()))
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(data, &got))

	assert.Equal(t, "window", got["mode"])
	assert.Equal(t, true, got["showWelcomeScreen"])
	assert.Equal(t, "en", got["defaultLanguage"])
	assert.Len(t, got["initialMessages"], 7)
	assert.Equal(t, true, got["loadPreviousSession"])
	assert.Equal(t, false, got["enableStreaming"])
	assert.Equal(t, "https://n8n.example.com/webhook/abc/chat", got["webhookUrl"])
	assert.Equal(t, map[string]any{"source": "website", "page": "landing", "version": "1.0"}, got["metadata"])

	bundle := got["i18n"].(map[string]any)["en"].(map[string]any)
	for _, key := range []string{"title", "subtitle", "closeButtonTooltip", "footer",
		"inputPlaceholder", "getStarted", "welcomeTitle", "welcomeMessage"} {
		assert.NotEmpty(t, bundle[key], key)
	}
}

func TestPayload_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(p *Payload)
		wantErr bool
	}{
		{"default", func(p *Payload) {}, false},
		{"empty webhook is accepted", func(p *Payload) { p.WebhookURL = "" }, false},
		{"missing mode", func(p *Payload) { p.Mode = "" }, true},
		{"malformed default language", func(p *Payload) { p.DefaultLanguage = "not a tag!" }, true},
		{"no bundle for default language", func(p *Payload) { p.DefaultLanguage = "de" }, true},
		{"malformed bundle locale", func(p *Payload) { p.I18n["??"] = Bundle{} }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := DefaultPayload(testChatConfig())
			tt.mutate(&p)
			err := p.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNewBootstrapper_RejectsInvalidPayload(t *testing.T) {
	p := DefaultPayload(testChatConfig())
	p.DefaultLanguage = "fr"
	_, err := newBootstrapper(testChatConfig(), p, slog.Default())
	assert.ErrorIs(t, err, ErrMissingBundle)
}
