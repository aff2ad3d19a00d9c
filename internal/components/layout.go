package components

import (
	"encoding/json"
	"fmt"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/AydinTheFirst/n8n-chat-widget/internal/chatwidget"
)

type PageConfig struct {
	Title       string
	Description string
	// ViewID ties client interactions to the server-side page view.
	ViewID string
}

func Layout(config PageConfig, chat *chatwidget.Embed, content ...g.Node) g.Node {
	if config.Title == "" {
		config.Title = "ChatAI - AI Asistanınız, Her Yerde"
	}

	if config.Description == "" {
		config.Description = "@n8n/chat ile akıllı chatbotunuzu dakikalar içinde web sitenize entegre edin."
	}

	return g.Group([]g.Node{
		g.Raw("<!DOCTYPE html>"),
		HTML(
			Lang("en"),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1.0")),
				TitleEl(g.Text(config.Title)),
				Meta(Name("description"), Content(config.Description)),

				Meta(g.Attr("property", "og:title"), Content(config.Title)),
				Meta(g.Attr("property", "og:description"), Content(config.Description)),
				Meta(g.Attr("property", "og:type"), Content("website")),

				Script(Src("https://cdn.tailwindcss.com")),
				Script(Src("https://code.iconify.design/1/1.0.7/iconify.min.js")),
				Link(Rel("stylesheet"), Href("/static/styles.css")),
				chatStyle(chat),
			),
			Body(
				Class("min-h-screen bg-white"),
				g.Attr("data-view-id", config.ViewID),
				g.Group(content),

				Script(Type("module"), Src("/static/js/landing.js")),
				ChatWidget(chat),
			),
		),
	})
}

func chatStyle(chat *chatwidget.Embed) g.Node {
	if chat == nil {
		return g.Group(nil)
	}
	return g.Group([]g.Node{
		g.If(chat.StyleURL != "", Link(Rel("stylesheet"), Href(chat.StyleURL))),
		Link(Rel("stylesheet"), Href("/static/chat-styles.css")),
	})
}

// ChatWidget starts the external chat widget. It renders nothing for a nil
// embed, which is what every render after the first one of a view gets.
func ChatWidget(chat *chatwidget.Embed) g.Node {
	if chat == nil {
		return g.Group(nil)
	}

	src, err := json.Marshal(chat.ScriptURL)
	if err != nil {
		return g.Group(nil)
	}
	return Script(
		Type("module"),
		g.Raw(fmt.Sprintf("import { createChat } from %s;\ncreateChat(%s);", src, chat.Config)),
	)
}
