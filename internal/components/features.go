package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/AydinTheFirst/n8n-chat-widget/internal/landing"
	"github.com/AydinTheFirst/n8n-chat-widget/internal/pageview"
)

func Features(view *pageview.View) g.Node {
	return Section(
		ID("features"),
		Class(sectionClass(view, "features", "py-16 lg:py-24 bg-gray-50")),
		Div(
			Class("container mx-auto px-4"),
			Div(
				Class("text-center mb-16"),
				H2(Class("text-3xl lg:text-5xl font-bold text-gray-900 mb-6"), g.Text("Neden @n8n/chat AI Chatbotu?")),
				P(
					Class("text-xl text-gray-600 max-w-3xl mx-auto"),
					g.Text("En son AI teknolojisi ile geliştirilmiş ve modern işletmeler için tasarlanmış. Günler değil, dakikalar içinde başlayın."),
				),
			),
			Div(
				Class("grid md:grid-cols-2 lg:grid-cols-4 gap-8"),
				g.Group(g.Map(landing.Features(), func(f landing.Feature) g.Node {
					return Div(
						Class("rounded-lg border bg-white p-6 text-center hover:shadow-lg transition-shadow"),
						Div(Class("flex justify-center mb-4"), Icon(f.Icon+" w-8 h-8 text-indigo-600", "")),
						H3(Class("text-xl font-semibold text-gray-900 mb-3"), g.Text(f.Title)),
						P(Class("text-gray-600 leading-relaxed"), g.Text(f.Description)),
					)
				})),
			),
		),
	)
}
