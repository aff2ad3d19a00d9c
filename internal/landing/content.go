// Package landing holds the landing page content and the per-view UI state
// islands: the testimonial carousel, the billing toggle, the mobile menu and
// the scroll-reveal observer.
package landing

import "slices"

// Testimonial is one customer quote shown in the carousel.
type Testimonial struct {
	Name      string
	Role      string
	AvatarURL string
	Text      string
}

// Plan is a pricing tier. Prices are whole dollars.
type Plan struct {
	Name         string
	PriceMonthly int
	PriceYearly  int
	Features     []string
	Popular      bool
}

// Feature is a marketing card in the features grid.
type Feature struct {
	Icon        string
	Title       string
	Description string
}

var testimonials = []Testimonial{
	{
		Name:      "Sarah Johnson",
		Role:      "CEO, TechCorp",
		AvatarURL: "https://images.unsplash.com/photo-1494790108755-2616b612b786?w=60&h=60&fit=crop&crop=face",
		Text:      "The @n8n/chat integration was seamless. Our customer support efficiency increased by 300%!",
	},
	{
		Name:      "Mike Chen",
		Role:      "Product Manager, StartupXYZ",
		AvatarURL: "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?w=60&h=60&fit=crop&crop=face",
		Text:      "Best chatbot solution we've tried. The customization options are incredible and setup took minutes.",
	},
	{
		Name:      "Emily Davis",
		Role:      "Marketing Director, WebCo",
		AvatarURL: "https://images.unsplash.com/photo-1438761681033-6461ffad8d80?w=60&h=60&fit=crop&crop=face",
		Text:      "Our lead generation improved by 250% after implementing the AI chatbot. Highly recommended!",
	},
}

var plans = []Plan{
	{
		Name:         "Basic",
		PriceMonthly: 29,
		PriceYearly:  290,
		Features: []string{
			"Up to 1,000 messages/month",
			"Basic customization",
			"Email support",
			"Web integration",
			"Analytics dashboard",
		},
	},
	{
		Name:         "Pro",
		PriceMonthly: 89,
		PriceYearly:  890,
		Features: []string{
			"Up to 10,000 messages/month",
			"Advanced customization",
			"Priority support",
			"Multi-platform (Web + WhatsApp)",
			"Advanced analytics",
			"Custom branding",
		},
		Popular: true,
	},
	{
		Name:         "Enterprise",
		PriceMonthly: 299,
		PriceYearly:  2990,
		Features: []string{
			"Unlimited messages",
			"Full customization",
			"24/7 dedicated support",
			"All platforms",
			"Advanced analytics + Reports",
			"White-label solution",
			"API access",
		},
	},
}

var features = []Feature{
	{"lucide--zap", "Kolay Entegrasyon", "@n8n/chat ile AI chatbotunuzu dakikalar içinde gömün. Karmaşık kurulum gerektirmez, sadece birkaç satır kod!"},
	{"lucide--code", "Tamamen Özelleştirilebilir", "Chatbotun görünümünü, davranışını ve yanıtlarını markanıza göre özelleştirin. Tema, renkler ve dil desteği dahil."},
	{"lucide--smartphone", "Çok Platform Desteği", "Web, mobil ve WhatsApp'ta sorunsuz çalışır. Müşterilerinize nerede olurlarsa olsunlar ulaşın."},
	{"lucide--shield", "Güvenli & Hızlı", "Kurumsal düzeyde güvenlik ve yıldırım hızında yanıtlar. Verileriniz her zaman korumalı ve güvende."},
}

// sections are the page sections watched by the reveal observer, in page order.
var sections = []string{"hero", "features", "demo", "pricing", "testimonials", "cta"}

// Testimonials returns a copy of the testimonial sequence.
func Testimonials() []Testimonial {
	return slices.Clone(testimonials)
}

// TestimonialCount is the fixed carousel length.
func TestimonialCount() int {
	return len(testimonials)
}

// TestimonialAt returns the testimonial at i. i must be in [0, TestimonialCount()).
func TestimonialAt(i int) Testimonial {
	return testimonials[i]
}

// Plans returns a copy of the pricing plans.
func Plans() []Plan {
	out := make([]Plan, len(plans))
	for i, p := range plans {
		p.Features = slices.Clone(p.Features)
		out[i] = p
	}
	return out
}

func Features() []Feature {
	return slices.Clone(features)
}

func Sections() []string {
	return slices.Clone(sections)
}

// IsSection reports whether name is one of the observed page sections.
func IsSection(name string) bool {
	return slices.Contains(sections, name)
}
