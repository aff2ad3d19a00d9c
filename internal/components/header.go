package components

import (
	g "maragu.dev/gomponents"
	c "maragu.dev/gomponents/components"
	. "maragu.dev/gomponents/html"

	"github.com/AydinTheFirst/n8n-chat-widget/internal/pageview"
)

const mobileMenuID = "mobile-nav"

func SiteHeader(view *pageview.View) g.Node {
	return Header(
		Class("fixed top-0 w-full bg-white/95 backdrop-blur-md z-50 border-b border-gray-100"),
		Div(
			Class("container mx-auto px-4 py-4"),
			Div(
				Class("flex items-center justify-between"),
				Logo("text-gray-900"),

				Nav(
					Class("hidden md:flex items-center space-x-8"),
					g.Group(g.Map(sectionLinks, func(l navLink) g.Node {
						return A(Href(l.Href), Class("text-gray-600 hover:text-indigo-600 transition-colors"), g.Text(l.Label))
					})),
				),

				Div(
					Class("hidden md:block"),
					A(Href("#pricing"), Class("inline-flex items-center rounded-md bg-indigo-600 hover:bg-indigo-700 px-4 py-2 text-sm font-medium text-white"), g.Text("Start Free Trial")),
				),

				MobileMenu(view.Menu.IsOpen()),
			),
		),
	)
}

// MobileMenu is the menu toggle and, when open, the overlay below the
// header. Following a link does not close it.
func MobileMenu(open bool) g.Node {
	icon, label := "lucide--menu w-6 h-6", "Open menu"
	if open {
		icon, label = "lucide--x w-6 h-6", "Close menu"
	}

	return Div(
		ID(mobileMenuID),
		Class("md:hidden"),
		g.Attr("data-open", boolAttr(open)),
		actionButton("/menu/toggle", mobileMenuID,
			c.Classes{"p-1": true, "text-indigo-600": open},
			g.Attr("aria-expanded", boolAttr(open)),
			Icon(icon, label),
		),
		g.If(open, Div(
			Class("md:hidden absolute top-full left-0 w-full bg-white border-b border-gray-100 py-4"),
			Nav(
				Class("flex flex-col space-y-4 px-4"),
				g.Group(g.Map(sectionLinks, func(l navLink) g.Node {
					return A(Href(l.Href), Class("text-gray-600 hover:text-indigo-600 transition-colors"), g.Text(l.Label))
				})),
				A(Href("#pricing"), Class("w-full rounded-md bg-indigo-600 hover:bg-indigo-700 px-4 py-2 text-center text-sm font-medium text-white"), g.Text("Start Free Trial")),
			),
		)),
	)
}

func boolAttr(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
