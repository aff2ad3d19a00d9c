package components

import (
	"fmt"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

type footerColumn struct {
	Title string
	Links []navLink
}

var footerColumns = []footerColumn{
	{"Product", []navLink{{"#features", "Features"}, {"#pricing", "Pricing"}, {"#demo", "Demo"}, {"#", "Documentation"}}},
	{"Company", []navLink{{"#", "About"}, {"#", "Blog"}, {"#", "Careers"}, {"#", "Contact"}}},
	{"Support", []navLink{{"#", "Help Center"}, {"#", "API Reference"}, {"#", "Status"}, {"#", "Security"}}},
}

func PageFooter() g.Node {
	currentYear := "2025"

	return Footer(
		ID("contact"),
		Class("bg-gray-900 text-white py-16"),
		Div(
			Class("container mx-auto px-4"),
			Div(
				Class("grid md:grid-cols-4 gap-8 mb-8"),
				Div(
					Class("md:col-span-1"),
					Div(Class("mb-4"), Logo("text-white")),
					P(
						Class("text-gray-400 mb-4"),
						g.Text("The most advanced AI chatbot solution for modern businesses. Powered by @n8n/chat."),
					),
					Div(
						Class("flex space-x-4"),
						A(Class("text-gray-400 hover:text-white transition-colors"), Href("#"), Icon("lucide--twitter w-6 h-6", "Twitter")),
						A(Class("text-gray-400 hover:text-white transition-colors"), Href("#"), Icon("lucide--facebook w-6 h-6", "Facebook")),
						A(Class("text-gray-400 hover:text-white transition-colors"), Href("#"), Icon("lucide--linkedin w-6 h-6", "LinkedIn")),
					),
				),
				g.Group(g.Map(footerColumns, func(col footerColumn) g.Node {
					return Div(
						H4(Class("text-lg font-semibold mb-4"), g.Text(col.Title)),
						Ul(
							Class("space-y-2"),
							g.Group(g.Map(col.Links, func(l navLink) g.Node {
								return Li(A(Href(l.Href), Class("text-gray-400 hover:text-white transition-colors"), g.Text(l.Label)))
							})),
						),
					)
				})),
			),
			Div(
				Class("border-t border-gray-800 pt-8 text-center"),
				P(Class("text-gray-400"), g.Text(fmt.Sprintf("© %s ChatAI. All rights reserved. Powered by @n8n/chat", currentYear))),
			),
		),
	)
}
