package components

import (
	"strconv"

	g "maragu.dev/gomponents"
	c "maragu.dev/gomponents/components"
	. "maragu.dev/gomponents/html"

	"github.com/AydinTheFirst/n8n-chat-widget/internal/landing"
	"github.com/AydinTheFirst/n8n-chat-widget/internal/pageview"
)

const pricingContentID = "pricing-content"

func Pricing(view *pageview.View) g.Node {
	return Section(
		ID("pricing"),
		Class(sectionClass(view, "pricing", "py-16 lg:py-24 bg-gray-50")),
		Div(
			Class("container mx-auto px-4"),
			Div(
				Class("text-center mb-8"),
				H2(Class("text-3xl lg:text-5xl font-bold text-gray-900 mb-6"), g.Text("Simple, Transparent Pricing")),
				P(
					Class("text-xl text-gray-600 max-w-3xl mx-auto"),
					g.Text("Choose the plan that's right for your business. Start with our free trial."),
				),
			),
			PricingContent(view.Billing),
		),
	)
}

// PricingContent is the billing switch and the plan cards. Both depend on
// the billing period, so they are swapped together.
func PricingContent(billing landing.PricingToggle) g.Node {
	yearly := billing.IsYearly()

	return Div(
		ID(pricingContentID),
		g.Attr("data-billing", billing.Period().String()),
		Div(
			Class("flex items-center justify-center space-x-4 mb-16"),
			Span(c.Classes{"text-sm font-medium": true, "text-gray-900": !yearly, "text-gray-500": yearly}, g.Text("Monthly")),
			actionButton("/pricing/toggle", pricingContentID,
				Class("relative inline-flex h-6 w-11 items-center rounded-full bg-gray-200 transition-colors focus:outline-none focus:ring-2 focus:ring-indigo-600 focus:ring-offset-2"),
				g.Attr("role", "switch"),
				g.Attr("aria-checked", boolAttr(yearly)),
				g.Attr("aria-label", "Toggle yearly billing"),
				Span(c.Classes{
					"inline-block h-4 w-4 transform rounded-full bg-white transition-transform": true,
					"translate-x-6": yearly,
					"translate-x-1": !yearly,
				}),
			),
			Span(
				c.Classes{"text-sm font-medium": true, "text-gray-900": yearly, "text-gray-500": !yearly},
				g.Text("Yearly"),
				Span(Class("ml-1 text-xs text-green-600 font-bold"), g.Text("(-20%)")),
			),
		),
		Div(
			Class("grid md:grid-cols-3 gap-8 max-w-5xl mx-auto"),
			g.Group(g.Map(landing.Plans(), func(p landing.Plan) g.Node {
				return planCard(billing, p)
			})),
		),
	)
}

func planCard(billing landing.PricingToggle, plan landing.Plan) g.Node {
	savings, showSavings := billing.Savings(plan)

	cta, ctaClass := "Start Free Trial", "bg-gray-100 hover:bg-gray-200 text-gray-900"
	if plan.Popular {
		ctaClass = "bg-indigo-600 hover:bg-indigo-700 text-white"
	}
	if plan.Name == "Enterprise" {
		cta = "Contact Sales"
	}

	return Div(
		c.Classes{
			"rounded-lg border bg-white p-8 relative": true,
			"ring-2 ring-indigo-600 scale-105":        plan.Popular,
		},
		g.Attr("data-plan", plan.Name),
		g.If(plan.Popular, Div(
			Class("absolute -top-3 left-1/2 transform -translate-x-1/2"),
			Span(Class("bg-indigo-600 text-white px-4 py-1 rounded-full text-sm font-medium"), g.Text("Most Popular")),
		)),
		Div(
			Class("text-center mb-8"),
			H3(Class("text-2xl font-bold text-gray-900 mb-2"), g.Text(plan.Name)),
			Div(
				Class("text-4xl font-bold text-gray-900 mb-2"),
				g.Text("$"+strconv.Itoa(billing.DisplayPrice(plan))),
				Span(Class("text-lg text-gray-500 font-normal"), g.Text("/"+billing.PeriodUnit())),
			),
			g.If(showSavings, P(Class("text-sm text-green-600 font-medium"), g.Text("Save $"+strconv.Itoa(savings)))),
		),
		Ul(
			Class("space-y-4 mb-8"),
			g.Group(g.Map(plan.Features, func(feature string) g.Node {
				return Li(
					Class("flex items-center"),
					Icon("lucide--check-circle w-5 h-5 text-green-500 mr-3 flex-shrink-0", ""),
					Span(Class("text-gray-600"), g.Text(feature)),
				)
			})),
		),
		A(Href("#contact"), Class("block w-full rounded-md px-4 py-2 text-center font-medium "+ctaClass), g.Text(cta)),
	)
}
