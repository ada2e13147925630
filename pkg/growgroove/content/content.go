// Package content holds the static copy of the Growgroove site.
//
// Every table is a literal. Accessors return copies so callers cannot
// change what other sections render.
package content

import (
	"errors"
	"fmt"
)

// ErrUnknownPackage is returned when a service package id does not exist.
var ErrUnknownPackage = errors.New("unknown service package")

// ErrUnknownFAQ is returned when an FAQ id does not exist.
var ErrUnknownFAQ = errors.New("unknown faq entry")

// FAQEntry is one accordion item.
type FAQEntry struct {
	ID       int
	Question string
	Answer   string
}

// ServicePackage is a pricing tier on the packages page.
type ServicePackage struct {
	ID          int
	Name        string
	Description string
	Features    []string
	Price       string
}

// Hero is the heading block at the top of a page.
type Hero struct {
	Emoji    string
	Badge    string
	Headline []string
	Tagline  string
	// Photos are the captions of the stacked polaroids under the headline.
	Photos []string
}

// Card is an emoji card with a title and a one-line blurb.
type Card struct {
	Emoji string
	Title string
	Body  string
}

// Stat is one figure in the statistic strip.
type Stat struct {
	Label string
	Value string
}

// Offer is a pricing card on the contact page.
type Offer struct {
	Title    string
	Price    string
	Items    []string
	CTA      string
	Featured string
}

// Channel is a direct contact method.
type Channel struct {
	Emoji string
	Label string
	Value string
}

// Heading is a badge plus a multi-line title.
type Heading struct {
	Emoji string
	Badge string
	Lines []string
	Body  string
}

var faqs = []FAQEntry{
	{
		ID:       1,
		Question: "What digital marketing services does Growgroove offer?",
		Answer:   "We specialize in social media marketing, content creation, SEO optimization, paid advertising, brand strategy, and analytics. Our team creates comprehensive digital campaigns tailored to your business goals.",
	},
	{
		ID:       2,
		Question: "How long does it take to see results?",
		Answer:   "Results vary by service. Social media engagement can show improvements within 4-6 weeks, while SEO typically takes 3-6 months. We provide regular reports to track progress and ROI.",
	},
	{
		ID:       3,
		Question: "Do you work with small businesses?",
		Answer:   "Absolutely! We work with businesses of all sizes, from startups to established brands. We customize our services to fit your budget and growth stage.",
	},
	{
		ID:       4,
		Question: "What platforms do you specialize in?",
		Answer:   "We create content and manage campaigns across Instagram, TikTok, Facebook, LinkedIn, YouTube, and Twitter. We also optimize your website and email marketing strategies.",
	},
	{
		ID:       5,
		Question: "Can you help with content creation?",
		Answer:   "Yes! Our creative team produces high-quality photos, videos, graphics, and copy. We handle everything from concept to final delivery, ensuring brand consistency.",
	},
	{
		ID:       6,
		Question: "How do you measure marketing success?",
		Answer:   "We track KPIs like engagement rates, conversion rates, ROI, reach, and follower growth. Monthly reports show exactly how your investment is performing.",
	},
	{
		ID:       7,
		Question: "Do you offer ongoing support?",
		Answer:   "Yes! We offer flexible packages from one-time campaigns to ongoing monthly management. You'll have a dedicated account manager for your business.",
	},
	{
		ID:       8,
		Question: "How do I get started with Growgroove?",
		Answer:   "Simply reach out for a free consultation. We'll discuss your goals, analyze your current presence, and create a customized strategy that fits your needs and budget.",
	},
}

var packages = []ServicePackage{
	{
		ID:          1,
		Name:        "STARTER",
		Description: "Perfect for new brands",
		Features: []string{
			"Social Media Strategy",
			"2 Platforms Management",
			"4 Posts Per Week",
			"Basic Analytics",
			"Monthly Report",
		},
		Price: "$499/mo",
	},
	{
		ID:          2,
		Name:        "GROWTH",
		Description: "For scaling businesses",
		Features: []string{
			"Full Social Strategy",
			"4 Platforms Management",
			"Daily Content Posting",
			"Content Creation (Photos/Videos)",
			"Engagement Management",
			"Weekly Analytics",
			"Paid Ads Management",
		},
		Price: "$999/mo",
	},
	{
		ID:          3,
		Name:        "ENTERPRISE",
		Description: "Complete digital transformation",
		Features: []string{
			"Dedicated Account Manager",
			"All Platforms Management",
			"Custom Content Calendar",
			"Professional Video Production",
			"Influencer Partnerships",
			"SEO Optimization",
			"Real-time Analytics Dashboard",
			"Quarterly Strategy Reviews",
		},
		Price: "Custom",
	},
}

// FAQs returns the accordion entries in display order.
func FAQs() []FAQEntry {
	out := make([]FAQEntry, len(faqs))
	copy(out, faqs)
	return out
}

// FAQByID returns the entry with the given id.
func FAQByID(id int) (FAQEntry, error) {
	for _, f := range faqs {
		if f.ID == id {
			return f, nil
		}
	}
	return FAQEntry{}, fmt.Errorf("%w: %d", ErrUnknownFAQ, id)
}

// Packages returns the service packages in display order.
func Packages() []ServicePackage {
	out := make([]ServicePackage, len(packages))
	for i, p := range packages {
		out[i] = p.clone()
	}
	return out
}

// PackageByID returns the package with the given id.
func PackageByID(id int) (ServicePackage, error) {
	for _, p := range packages {
		if p.ID == id {
			return p.clone(), nil
		}
	}
	return ServicePackage{}, fmt.Errorf("%w: %d", ErrUnknownPackage, id)
}

func (p ServicePackage) clone() ServicePackage {
	p.Features = append([]string(nil), p.Features...)
	return p
}
