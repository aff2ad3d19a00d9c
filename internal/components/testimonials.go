package components

import (
	"strconv"

	g "maragu.dev/gomponents"
	c "maragu.dev/gomponents/components"
	. "maragu.dev/gomponents/html"

	"github.com/AydinTheFirst/n8n-chat-widget/internal/landing"
	"github.com/AydinTheFirst/n8n-chat-widget/internal/pageview"
)

const testimonialCardID = "testimonial-card"

func Testimonials(view *pageview.View) g.Node {
	return Section(
		ID("testimonials"),
		Class(sectionClass(view, "testimonials", "py-16 lg:py-24")),
		Div(
			Class("container mx-auto px-4"),
			Div(
				Class("text-center mb-16"),
				H2(Class("text-3xl lg:text-5xl font-bold text-gray-900 mb-6"), g.Text("What Our Customers Say")),
				P(
					Class("text-xl text-gray-600 max-w-3xl mx-auto"),
					g.Text("Join thousands of satisfied customers who have transformed their business with our AI chatbot."),
				),
			),
			Div(
				Class("max-w-4xl mx-auto"),
				TestimonialCard(view.Carousel),
			),
		),
	)
}

// TestimonialCard shows the carousel's current testimonial with its
// navigation buttons and one indicator per testimonial.
func TestimonialCard(carousel landing.Carousel) g.Node {
	current := carousel.Index()
	t := landing.TestimonialAt(current)

	return Div(
		ID(testimonialCardID),
		Class("rounded-lg border bg-white p-8 lg:p-12 relative"),
		g.Attr("data-index", strconv.Itoa(current)),
		Div(
			Class("flex justify-between items-center mb-8"),
			actionButton("/testimonials/previous", testimonialCardID,
				Class("p-2 rounded-full bg-gray-100 hover:bg-gray-200 transition-colors"),
				Icon("lucide--chevron-left w-6 h-6 text-gray-600", "Previous testimonial"),
			),
			actionButton("/testimonials/next", testimonialCardID,
				Class("p-2 rounded-full bg-gray-100 hover:bg-gray-200 transition-colors"),
				Icon("lucide--chevron-right w-6 h-6 text-gray-600", "Next testimonial"),
			),
		),
		Div(
			Class("text-center"),
			Div(Class("flex justify-center mb-6"), Stars(5, "w-6 h-6")),
			BlockQuote(
				Class("text-xl lg:text-2xl text-gray-900 mb-8 leading-relaxed"),
				g.Text(`"`+t.Text+`"`),
			),
			Div(
				Class("flex items-center justify-center"),
				Img(Src(t.AvatarURL), Alt(t.Name), Class("w-12 h-12 rounded-full mr-4")),
				Div(
					Class("text-left"),
					P(Class("font-semibold text-gray-900"), g.Text(t.Name)),
					P(Class("text-gray-600"), g.Text(t.Role)),
				),
			),
		),
		Div(
			Class("flex justify-center mt-8 space-x-2"),
			g.Group(g.Map(indexes(carousel.Len()), func(i int) g.Node {
				return actionButton("/testimonials/"+strconv.Itoa(i), testimonialCardID,
					c.Classes{
						"w-2 h-2 rounded-full transition-colors": true,
						"bg-indigo-600": i == current,
						"bg-gray-300":   i != current,
					},
					g.Attr("aria-label", "Show testimonial "+strconv.Itoa(i+1)),
					g.Attr("aria-current", boolAttr(i == current)),
				)
			})),
		),
	)
}

func indexes(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}
