package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/AydinTheFirst/n8n-chat-widget/internal/pageview"
)

var customizations = []string{
	"Tamamen özelleştirilmiş CSS override",
	"Modern gradient tasarım",
	"Türkçe dil desteği",
	"Responsive mobil uyumluluk",
	"Smooth animasyonlar",
	"Dark mode desteği",
}

const integrationSnippet = `import { createChat } from '@n8n/chat';
import '@n8n/chat/style.css';

// Widget'ı oluştur
createChat({
  mode: 'window',
  showWelcomeScreen: true,
  i18n: {
    tr: {
      title: 'ChatAI Asistanı',
      inputPlaceholder: 'Mesajınızı yazın...',
      welcomeMessage: 'Size nasıl yardımcı olabilirim?'
    }
  },
  webhookUrl: 'YOUR_N8N_WEBHOOK_URL'
});

/* CSS ile stilleri override edin */
.n8n-chat .n8n-chat-launcher {
  background: linear-gradient(135deg, #4F46E5, #6366F1) !important;
  border-radius: 50% !important;
  box-shadow: 0 10px 25px rgba(79, 70, 229, 0.3) !important;
}`

func Demo(view *pageview.View) g.Node {
	return Section(
		ID("demo"),
		Class(sectionClass(view, "demo", "py-16 lg:py-24")),
		Div(
			Class("container mx-auto px-4"),
			Div(
				Class("text-center mb-16"),
				H2(Class("text-3xl lg:text-5xl font-bold text-gray-900 mb-6"), g.Text("AI Asistanımızı Deneyin")),
				P(
					Class("text-xl text-gray-600 max-w-3xl mx-auto"),
					g.Text("@n8n/chat ile güçlendirilmiş AI chatbotumuzun gücünü deneyimleyin. Sohbet simgesine tıklayarak konuşmaya başlayın!"),
				),
			),
			Div(
				Class("max-w-6xl mx-auto grid lg:grid-cols-2 gap-8 items-center"),
				Div(
					Class("bg-gradient-to-br from-indigo-50 to-blue-50 rounded-2xl p-8"),
					Div(
						Class("bg-white rounded-xl shadow-lg p-8 text-center"),
						Icon("lucide--message-square w-16 h-16 text-indigo-600 mx-auto mb-6", ""),
						H3(Class("text-2xl font-bold text-gray-900 mb-4"), g.Text("Canlı Chat Demo")),
						P(
							Class("text-gray-600 mb-6"),
							g.Text("@n8n/chat widget'ı bu sayfada aktif! Sağ alt köşedeki sohbet simgesine tıklayarak AI asistanımızla konuşmaya başlayın."),
						),
						Div(
							Class("inline-flex items-center space-x-2 text-indigo-600 font-medium mb-4"),
							Span(g.Text("Chat widget'ı çalışıyor")),
							Div(Class("w-2 h-2 bg-green-400 rounded-full animate-pulse")),
						),
						Div(
							Class("bg-indigo-50 rounded-lg p-4 text-left"),
							H4(Class("font-semibold text-gray-900 mb-2"), g.Text("Özelleştirmeler:")),
							Ul(
								Class("text-sm text-gray-600 space-y-1"),
								g.Group(g.Map(customizations, func(item string) g.Node {
									return Li(g.Text("✓ " + item))
								})),
							),
						),
					),
				),
				Div(
					Class("bg-gray-900 rounded-2xl p-8 text-white"),
					H3(
						Class("text-xl font-bold mb-4 flex items-center"),
						Icon("lucide--code w-6 h-6 mr-2", ""),
						g.Text("Entegrasyon Kodu"),
					),
					Div(
						Class("bg-gray-800 rounded-lg p-4 overflow-x-auto"),
						Pre(Class("text-sm text-green-400"), Code(g.Text(integrationSnippet))),
					),
					P(
						Class("text-gray-400 text-sm mt-4"),
						g.Text("CSS ile tüm widget stillerini override edin ve markanıza uygun hale getirin!"),
					),
				),
			),
		),
	)
}
