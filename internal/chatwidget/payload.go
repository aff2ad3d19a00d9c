// Package chatwidget builds the configuration handed to the external n8n chat
// widget and guarantees it is bootstrapped once per page view.
package chatwidget

import (
	"errors"
	"fmt"

	"golang.org/x/text/language"

	"github.com/AydinTheFirst/n8n-chat-widget/internal/config"
)

// Bundle is one localization bundle of the widget.
type Bundle struct {
	Title              string `json:"title"`
	Subtitle           string `json:"subtitle"`
	CloseButtonTooltip string `json:"closeButtonTooltip"`
	Footer             string `json:"footer"`
	InputPlaceholder   string `json:"inputPlaceholder"`
	GetStarted         string `json:"getStarted"`
	WelcomeTitle       string `json:"welcomeTitle"`
	WelcomeMessage     string `json:"welcomeMessage"`
}

// Payload is the argument of createChat. Field names match the widget's
// options.
type Payload struct {
	Mode                string            `json:"mode"`
	ShowWelcomeScreen   bool              `json:"showWelcomeScreen"`
	DefaultLanguage     string            `json:"defaultLanguage"`
	InitialMessages     []string          `json:"initialMessages"`
	I18n                map[string]Bundle `json:"i18n"`
	Metadata            map[string]string `json:"metadata"`
	LoadPreviousSession bool              `json:"loadPreviousSession"`
	EnableStreaming     bool              `json:"enableStreaming"`
	WebhookURL          string            `json:"webhookUrl"`
}

const ModeWindow = "window"

var ErrMissingBundle = errors.New("no i18n bundle for default language")

// DefaultPayload is the landing page's widget configuration. The bundle is
// Turkish copy registered under "en", which is what the widget is asked to
// use as its default language.
func DefaultPayload(cfg config.ChatConfig) Payload {
	return Payload{
		Mode:              ModeWindow,
		ShowWelcomeScreen: true,
		DefaultLanguage:   "en",
		InitialMessages: []string{
			"Merhaba! Ben ChatAI asistanınızım. 👋",
			"Size nasıl yardımcı olabilirim?",
			"Aşağıdaki konularda yardım edebilirim:",
			"• 🔧 Ürün özellikleri ve entegrasyon",
			"• 💰 Fiyatlandırma ve planlar",
			"• 🚀 Teknik destek",
			"• ❓ Genel sorularınız",
		},
		I18n: map[string]Bundle{
			"en": {
				Title:              "ChatAI Asistanı 🤖",
				Subtitle:           "AI destekli müşteri desteği",
				CloseButtonTooltip: "Sohbeti kapat",
				Footer:             "ChatAI tarafından desteklenmektedir",
				InputPlaceholder:   "Mesajınızı buraya yazın...",
				GetStarted:         "Yeni konuşma başlat",
				WelcomeTitle:       "ChatAI'ya Hoş Geldiniz! 🚀",
				WelcomeMessage:     "Merhaba! Size nasıl yardımcı olabilirim? Herhangi bir sorunuz varsa çekinmeden sorun!",
			},
		},
		Metadata: map[string]string{
			"source":  "website",
			"page":    "landing",
			"version": "1.0",
		},
		LoadPreviousSession: cfg.LoadPreviousSession,
		EnableStreaming:     cfg.EnableStreaming,
		WebhookURL:          cfg.WebhookURL,
	}
}

// Validate checks the mode and locale keys. The webhook URL is left to the
// widget.
func (p Payload) Validate() error {
	if p.Mode == "" {
		return errors.New("chat widget mode is required")
	}
	if _, err := language.Parse(p.DefaultLanguage); err != nil {
		return fmt.Errorf("default language %q: %w", p.DefaultLanguage, err)
	}
	for locale := range p.I18n {
		if _, err := language.Parse(locale); err != nil {
			return fmt.Errorf("i18n locale %q: %w", locale, err)
		}
	}
	if _, ok := p.I18n[p.DefaultLanguage]; !ok {
		return fmt.Errorf("%w %q", ErrMissingBundle, p.DefaultLanguage)
	}
	return nil
}
