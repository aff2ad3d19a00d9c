package components

import (
	g "maragu.dev/gomponents"

	"github.com/AydinTheFirst/n8n-chat-widget/internal/chatwidget"
	"github.com/AydinTheFirst/n8n-chat-widget/internal/pageview"
)

// LandingPage is the full document for a freshly mounted view. chat is nil
// unless this render is the view's one chat bootstrap.
func LandingPage(view *pageview.View, chat *chatwidget.Embed) g.Node {
	return Layout(
		PageConfig{
			Title:       "ChatAI - AI Asistanınız, Her Yerde",
			Description: "@n8n/chat ile akıllı chatbotunuzu dakikalar içinde web sitenize entegre edin. Müşteri etkileşimini artırın ve desteği otomatikleştirin.",
			ViewID:      view.ID,
		},
		chat,
		SiteHeader(view),
		Hero(view),
		Features(view),
		Demo(view),
		Pricing(view),
		Testimonials(view),
		CTA(view),
		PageFooter(),
	)
}
