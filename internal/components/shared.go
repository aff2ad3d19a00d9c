package components

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/AydinTheFirst/n8n-chat-widget/internal/pageview"
)

func Logo(textClass string) g.Node {
	return Div(
		Class("flex items-center space-x-2"),
		Icon("lucide--message-square w-8 h-8 text-indigo-600", ""),
		Span(Class("text-xl font-bold "+textClass), g.Text("ChatAI")),
	)
}

func convertIconName(iconClass string) string {
	parts := strings.Fields(iconClass)
	return strings.Replace(parts[0], "--", ":", 1)
}

func extractSizeClasses(iconClass string) string {
	parts := strings.Fields(iconClass)
	if len(parts) > 1 {
		return strings.Join(parts[1:], " ")
	}
	return ""
}

// Icon renders an iconify icon. iconClass is "set--name" followed by any
// extra classes, e.g. "lucide--star w-5 h-5".
func Icon(iconClass, ariaLabel string) g.Node {
	classes := "iconify inline-block"
	if size := extractSizeClasses(iconClass); size != "" {
		classes = fmt.Sprintf("iconify inline-block %s", size)
	}

	if ariaLabel != "" {
		return Span(
			Class(classes),
			g.Attr("data-icon", convertIconName(iconClass)),
			g.Attr("role", "img"),
			g.Attr("aria-label", ariaLabel),
		)
	}

	return Span(
		Class(classes),
		g.Attr("data-icon", convertIconName(iconClass)),
		g.Attr("aria-hidden", "true"),
	)
}

// Stars renders a row of n filled rating stars.
func Stars(n int, size string) g.Node {
	return g.Group(lo.Times(n, func(int) g.Node {
		return Icon("lucide--star "+size+" text-yellow-400 fill-current", "")
	}))
}

// sectionClass marks a section for scroll reveal and keeps it revealed
// across re-renders once the view has seen it.
func sectionClass(view *pageview.View, section, base string) string {
	classes := base + " fade-in-section"
	if view != nil && view.Reveal.Revealed(section) {
		classes += " animate-fadeIn"
	}
	return classes
}

// actionButton posts action to the current view and swaps the element with
// id target for the response.
func actionButton(action, target string, children ...g.Node) g.Node {
	return Button(
		Type("button"),
		g.Attr("data-action", action),
		g.Attr("data-swap", target),
		g.Group(children),
	)
}

type navLink struct {
	Href  string
	Label string
}

var sectionLinks = []navLink{
	{"#features", "Features"},
	{"#pricing", "Pricing"},
	{"#demo", "Demo"},
	{"#contact", "Contact"},
}
