package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/AydinTheFirst/n8n-chat-widget/internal/pageview"
)

type mockMessage struct {
	FromBot bool
	Text    string
	Time    string
}

var heroConversation = []mockMessage{
	{true, "Merhaba! Ben ChatAI asistanınızım. Size nasıl yardımcı olabilirim? 🤖", "14:32"},
	{false, "Fiyatlandırma hakkında bilgi alabilir miyim?", "14:33"},
	{true, "Tabii ki! 3 farklı planımız var: Basic (29$/ay), Pro (89$/ay) ve Enterprise (299$/ay). Hangi plan size uygun olabilir? 💡", "14:33"},
}

var quickReplies = []string{"Basic Plan", "Pro Plan", "Demo İste"}

func Hero(view *pageview.View) g.Node {
	return Section(
		ID("hero"),
		Class(sectionClass(view, "hero", "pt-24 pb-16 lg:pt-32 lg:pb-24")),
		Div(
			Class("container mx-auto px-4"),
			Div(
				Class("grid lg:grid-cols-2 gap-12 items-center"),
				Div(
					H1(
						Class("text-4xl lg:text-6xl font-bold text-gray-900 mb-6 leading-tight"),
						g.Text("AI Asistanınız, "),
						Span(Class("text-indigo-600"), g.Text("Her Yerde.")),
					),
					P(
						Class("text-xl text-gray-600 mb-8 leading-relaxed"),
						g.Text("@n8n/chat ile akıllı chatbotunuzu dakikalar içinde web sitenize entegre edin. Müşteri etkileşimini artırın ve güçlü AI çözümümüzle desteği otomatikleştirin."),
					),
					Div(
						Class("flex flex-col sm:flex-row gap-4"),
						A(Href("#demo"), Class("rounded-md bg-indigo-600 hover:bg-indigo-700 text-white text-lg px-8 py-4 text-center"), g.Text("Şimdi Deneyin")),
						A(Href("#demo"), Class("rounded-md border border-gray-300 hover:bg-gray-50 text-lg px-8 py-4 text-center"), g.Text("Demo İzleyin")),
					),
					Div(
						Class("mt-12"),
						P(Class("text-sm text-gray-500 mb-4"), g.Text("500+ şirket tarafından güvenilir")),
						Div(
							Class("flex items-center space-x-1"),
							Stars(5, "w-5 h-5"),
							Span(Class("ml-2 text-sm text-gray-600"), g.Text("200+ değerlendirmeden 4.9/5 puan")),
						),
					),
				),
				chatMockup(),
			),
		),
	)
}

func chatMockup() g.Node {
	return Div(
		Class("relative"),
		Div(
			Class("bg-gradient-to-br from-indigo-50 to-blue-50 rounded-2xl p-8"),
			Div(
				Class("bg-white rounded-xl shadow-2xl overflow-hidden border border-gray-100"),
				Div(
					Class("bg-indigo-600 text-white p-4 flex items-center justify-between"),
					Div(
						Class("flex items-center space-x-3"),
						Div(Class("w-10 h-10 bg-white/20 rounded-full flex items-center justify-center"), Icon("lucide--message-square w-5 h-5", "")),
						Div(
							P(Class("font-semibold"), g.Text("ChatAI Asistanı")),
							Div(
								Class("flex items-center space-x-1"),
								Div(Class("w-2 h-2 bg-green-400 rounded-full animate-pulse")),
								P(Class("text-sm text-indigo-200"), g.Text("Çevrimiçi")),
							),
						),
					),
					Icon("lucide--x w-5 h-5 text-white/70", ""),
				),
				Div(
					Class("p-4 h-72 overflow-y-auto bg-gray-50 space-y-4"),
					g.Group(g.Map(heroConversation, mockBubble)),
					Div(
						Class("flex flex-wrap gap-2 mt-4"),
						g.Group(g.Map(quickReplies, func(label string) g.Node {
							return Span(Class("bg-indigo-100 text-indigo-700 px-3 py-1 rounded-full text-xs"), g.Text(label))
						})),
					),
				),
				Div(
					Class("p-4 border-t border-gray-100 bg-white flex items-center space-x-2"),
					Div(Class("flex-1 bg-gray-100 rounded-full px-4 py-2"), P(Class("text-sm text-gray-500"), g.Text("Mesajınızı yazın..."))),
					Span(Class("bg-indigo-600 text-white p-2 rounded-full"), Icon("lucide--send w-4 h-4", "")),
				),
			),
		),
	)
}

func mockBubble(m mockMessage) g.Node {
	if m.FromBot {
		return Div(
			Class("flex items-start space-x-2"),
			Div(Class("w-8 h-8 bg-indigo-100 rounded-full flex items-center justify-center flex-shrink-0"), Icon("lucide--message-square w-4 h-4 text-indigo-600", "")),
			Div(
				Class("bg-white rounded-2xl rounded-tl-md p-3 max-w-xs shadow-sm border"),
				P(Class("text-sm text-gray-800"), g.Text(m.Text)),
				P(Class("text-xs text-gray-500 mt-1"), g.Text(m.Time)),
			),
		)
	}
	return Div(
		Class("flex items-start space-x-2 justify-end"),
		Div(
			Class("bg-indigo-600 text-white rounded-2xl rounded-tr-md p-3 max-w-xs shadow-sm"),
			P(Class("text-sm"), g.Text(m.Text)),
			P(Class("text-xs text-indigo-200 mt-1"), g.Text(m.Time)),
		),
	)
}
