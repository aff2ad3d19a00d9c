package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/AydinTheFirst/n8n-chat-widget/internal/pageview"
)

func CTA(view *pageview.View) g.Node {
	return Section(
		ID("cta"),
		Class(sectionClass(view, "cta", "py-16 lg:py-24 bg-indigo-600")),
		Div(
			Class("container mx-auto px-4 text-center"),
			H2(Class("text-3xl lg:text-5xl font-bold text-white mb-6"), g.Text("Ready to Get Started?")),
			P(
				Class("text-xl text-indigo-200 max-w-3xl mx-auto mb-8"),
				g.Text("Join thousands of businesses using our AI chatbot to improve customer experience and boost sales."),
			),
			Div(
				Class("flex flex-col sm:flex-row gap-4 justify-center"),
				A(Href("#pricing"), Class("rounded-md bg-white text-indigo-600 hover:bg-gray-100 text-lg px-8 py-4"), g.Text("Start Free Trial")),
				A(Href("#demo"), Class("rounded-md border border-white text-white hover:bg-white hover:text-indigo-600 text-lg px-8 py-4"), g.Text("Schedule Demo")),
			),
		),
	)
}
