package components

import (
	"encoding/json"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"

	"github.com/AydinTheFirst/n8n-chat-widget/internal/chatwidget"
	"github.com/AydinTheFirst/n8n-chat-widget/internal/landing"
	"github.com/AydinTheFirst/n8n-chat-widget/internal/pageview"
)

const bootstrapScript = `<script type="module">import { createChat }`

func render(t *testing.T, n g.Node) string {
	t.Helper()
	var b strings.Builder
	require.NoError(t, n.Render(&b))
	return b.String()
}

func testView() *pageview.View {
	reveal := landing.NewRevealObserver(landing.DefaultRevealThreshold)
	reveal.Observe(landing.Sections()...)
	return &pageview.View{
		ID:       "view-1",
		Carousel: landing.NewCarousel(landing.TestimonialCount()),
		Reveal:   reveal,
	}
}

func testEmbed() *chatwidget.Embed {
	cfg, _ := json.Marshal(map[string]string{"webhookUrl": "https://n8n.example.com/webhook/1"})
	return &chatwidget.Embed{
		ScriptURL: "https://cdn.example.com/chat.bundle.es.js",
		StyleURL:  "https://cdn.example.com/style.css",
		Config:    cfg,
	}
}

func TestLandingPage_BootstrapsChatOnce(t *testing.T) {
	html := render(t, LandingPage(testView(), testEmbed()))

	assert.Equal(t, 1, strings.Count(html, bootstrapScript))
	assert.Contains(t, html, `import { createChat } from "https://cdn.example.com/chat.bundle.es.js";`)
	assert.Contains(t, html, `createChat({"webhookUrl":"https://n8n.example.com/webhook/1"});`)
	assert.Contains(t, html, `href="https://cdn.example.com/style.css"`)
	assert.Contains(t, html, `data-view-id="view-1"`)
}

func TestLandingPage_WithoutEmbed(t *testing.T) {
	html := render(t, LandingPage(testView(), nil))

	assert.NotContains(t, html, bootstrapScript)
	assert.NotContains(t, html, "chat-styles.css")
}

func TestLandingPage_ChatThemeWithoutWidgetStylesheet(t *testing.T) {
	embed := testEmbed()
	embed.StyleURL = ""

	html := render(t, LandingPage(testView(), embed))
	assert.Contains(t, html, `href="/static/chat-styles.css"`)
	assert.NotContains(t, html, "cdn.example.com/style.css")
	assert.NotContains(t, html, `<link rel="stylesheet" href="">`)
}

func TestLayout_OpenGraph(t *testing.T) {
	html := render(t, Layout(PageConfig{Title: "T", Description: "D", ViewID: "v"}, nil))

	assert.Contains(t, html, `<meta property="og:title" content="T">`)
	assert.Contains(t, html, `<meta property="og:description" content="D">`)
	assert.NotContains(t, html, "og:image")
}

func TestLandingPage_Sections(t *testing.T) {
	html := render(t, LandingPage(testView(), nil))

	for _, s := range landing.Sections() {
		assert.Contains(t, html, `id="`+s+`"`, s)
	}
	assert.Contains(t, html, `id="contact"`)
	assert.Contains(t, html, "Sarah Johnson")
	assert.Contains(t, html, "© 2025 ChatAI")
}

func TestFragments_NeverBootstrapChat(t *testing.T) {
	v := testView()
	for name, n := range map[string]g.Node{
		"testimonial": TestimonialCard(v.Carousel),
		"pricing":     PricingContent(v.Billing),
		"menu":        MobileMenu(true),
	} {
		assert.NotContains(t, render(t, n), bootstrapScript, name)
	}
}

func TestTestimonialCard(t *testing.T) {
	v := testView()
	v.Carousel.Next()

	html := render(t, TestimonialCard(v.Carousel))
	assert.Contains(t, html, `id="testimonial-card"`)
	assert.Contains(t, html, "Mike Chen")
	assert.NotContains(t, html, "Sarah Johnson")
	assert.Contains(t, html, `data-action="/testimonials/next"`)
	assert.Contains(t, html, `data-action="/testimonials/previous"`)
	for i := 0; i < landing.TestimonialCount(); i++ {
		assert.Contains(t, html, `data-action="/testimonials/`+strconv.Itoa(i)+`"`)
	}
	assert.Equal(t, 1, strings.Count(html, `aria-current="true"`))
}

func TestPricingContent(t *testing.T) {
	var billing landing.PricingToggle

	html := render(t, PricingContent(billing))
	assert.Contains(t, html, `data-billing="monthly"`)
	assert.Contains(t, html, "$29")
	assert.Contains(t, html, "/month")
	assert.NotContains(t, html, "Save $")

	billing.Toggle()
	html = render(t, PricingContent(billing))
	assert.Contains(t, html, `data-billing="yearly"`)
	assert.Contains(t, html, "$290")
	assert.Contains(t, html, "/year")
	assert.Contains(t, html, "Save $58")
	assert.Contains(t, html, "Save $178")
	assert.Contains(t, html, "Save $598")
	assert.Contains(t, html, "Most Popular")
	assert.Contains(t, html, "Contact Sales")
}

func TestMobileMenu(t *testing.T) {
	closed := render(t, MobileMenu(false))
	assert.Contains(t, closed, `data-open="false"`)
	assert.Contains(t, closed, `aria-label="Open menu"`)
	assert.NotContains(t, closed, "<nav")

	open := render(t, MobileMenu(true))
	assert.Contains(t, open, `data-open="true"`)
	assert.Contains(t, open, `aria-label="Close menu"`)
	assert.Contains(t, open, `href="#pricing"`)
}

func TestSectionClass_Revealed(t *testing.T) {
	v := testView()
	assert.Equal(t, "py-16 fade-in-section", sectionClass(v, "features", "py-16"))

	v.Reveal.Intersect("features", 0.5)
	assert.Equal(t, "py-16 fade-in-section animate-fadeIn", sectionClass(v, "features", "py-16"))
	assert.Equal(t, "py-16 fade-in-section", sectionClass(v, "pricing", "py-16"))
}
