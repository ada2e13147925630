package content

// Page copy is built fresh on every call, so callers may keep and modify
// what they get.

// Services (about) page.

// AboutHero is the services page hero.
func AboutHero() Hero {
	return Hero{
		Emoji: "📱",
		Badge: "ABOUT",
		Headline: []string{
			"GROW YOUR BRAND WITH",
			"GROWGROOVE'S DIGITAL",
			"MARKETING EXPERTISE",
		},
		Photos: []string{"Social media marketing", "Content creation", "Digital strategy"},
	}
}

func ServicesHeading() Heading {
	return Heading{
		Emoji: "🎯",
		Badge: "SERVICES",
		Lines: []string{"SOCIAL MEDIA,", "CONTENT, AND STRATEGY"},
		Body:  "Creative campaigns, engaging content, and data-driven strategies to elevate your brand.",
	}
}

func Services() []Card {
	return []Card{
		{Emoji: "📱", Title: "SOCIAL MEDIA", Body: "ENGAGING SOCIAL CAMPAIGNS"},
		{Emoji: "✍️", Title: "CONTENT", Body: "CREATIVE CONTENT CREATION"},
		{Emoji: "📊", Title: "STRATEGY", Body: "DATA-DRIVEN MARKETING"},
	}
}

func Stats() []Stat {
	return []Stat{
		{Label: "Experience", Value: "10+ YEARS"},
		{Label: "Clients", Value: "500+"},
		{Label: "Growth", Value: "300%+"},
	}
}

func FAQHeading() Heading {
	return Heading{
		Emoji: "❓",
		Badge: "FAQ",
		Lines: []string{"KNOW BEFORE", "YOU GROW"},
	}
}

// Packages (agenda) page.

func PackagesHeading() Heading {
	return Heading{
		Emoji: "📦",
		Badge: "PACKAGES",
		Lines: []string{"CHOOSE YOUR", "GROWTH PACKAGE"},
		Body:  "Flexible plans designed to fit your budget and business goals",
	}
}

func WhyHeading() Heading {
	return Heading{
		Emoji: "⭐",
		Badge: "WHY GROWGROOVE",
		Lines: []string{"WHAT SETS US APART"},
	}
}

func Highlights() []Card {
	return []Card{
		{Emoji: "🎯", Title: "Data-Driven Results", Body: "Every strategy backed by analytics and real metrics to ensure ROI"},
		{Emoji: "👥", Title: "Expert Team", Body: "Certified specialists in social media, content, and digital marketing"},
		{Emoji: "⚡", Title: "Fast Turnaround", Body: "Quick delivery without compromising on quality or creativity"},
		{Emoji: "🤝", Title: "Dedicated Support", Body: "Your success is our priority with responsive 24/7 support"},
	}
}

// Package card button labels.
const (
	LearnMore  = "LEARN MORE"
	GetStarted = "GET STARTED"
)

// Contact (tickets) page.

func ContactHero() Hero {
	return Hero{
		Emoji:    "📞",
		Badge:    "CONTACT",
		Headline: []string{"LET'S GROW", "YOUR BRAND", "TOGETHER"},
		Tagline:  "Ready to transform your digital presence? Get a free consultation with our team today!",
		Photos:   []string{"Team collaboration", "Strategy session", "Success celebration"},
	}
}

func PricingHeading() Heading {
	return Heading{
		Emoji: "✉️",
		Badge: "GET IN TOUCH",
		Lines: []string{"READY TO", "START GROWING?"},
	}
}

func Offers() []Offer {
	return []Offer{
		{
			Title: "📋 Free Consultation",
			Price: "$0",
			Items: []string{
				"📊 Brand audit & analysis",
				"🎯 Strategy recommendations",
				"💡 Custom action plan",
				"⏱️ 60-minute session",
			},
			CTA: "📅 Book Now",
		},
		{
			Title: "🚀 Premium Package",
			Price: "$999",
			Items: []string{
				"✅ Everything in Starter",
				"📱 4 Platform Management",
				"🎬 Professional video content",
				"📊 Advanced analytics",
				"⚡ Priority support",
				"🎁 Free strategy review",
			},
			CTA:      "🚀 Get Started",
			Featured: "🔥 POPULAR",
		},
	}
}

const DirectContactTitle = "DIRECT CONTACT"

func Channels() []Channel {
	return []Channel{
		{Emoji: "📧", Label: "Email", Value: "hello@growgroove.com"},
		{Emoji: "📱", Label: "Phone", Value: "+1 (555) 123-4567"},
		{Emoji: "💬", Label: "Social", Value: "@growgroove"},
	}
}

