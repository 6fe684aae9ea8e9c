package claims

import "regexp"

// Claim category identifiers, shared with the comparison mapping.
const (
	ClaimUserAccounts      = "USER_ACCOUNTS"
	ClaimSearch            = "SEARCH"
	ClaimEcommerce         = "ECOMMERCE"
	ClaimContactSupport    = "CONTACT_SUPPORT"
	ClaimNewsletter        = "NEWSLETTER"
	ClaimFreeTrial         = "FREE_TRIAL"
	ClaimDemoBooking       = "DEMO_BOOKING"
	ClaimAPIDevelopers     = "API_DEVELOPERS"
	ClaimMobileApp         = "MOBILE_APP"
	ClaimBlogContent       = "BLOG_CONTENT"
	ClaimPricingTiers      = "PRICING_TIERS"
	ClaimAnalytics         = "ANALYTICS"
	ClaimSocialLogin       = "SOCIAL_LOGIN"
	ClaimChatSupport       = "CHAT_SUPPORT"
	ClaimTeamCollaboration = "TEAM_COLLABORATION"
)

// Category is one claim category with its keyword patterns.
// Each distinct pattern that matches the homepage corpus contributes one
// hit; confidence is min(hits*25, 100).
type Category struct {
	ID       string
	Label    string
	Keywords []*regexp.Regexp
}

func kw(expr string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)` + expr)
}

// categories is the fixed claim catalog, built once and never mutated.
var categories = []Category{
	{
		ID:    ClaimUserAccounts,
		Label: "User accounts",
		Keywords: []*regexp.Regexp{
			kw(`\b(log ?in|sign ?in)\b`),
			kw(`\bsign ?up\b`),
			kw(`\bcreate (an |your |a )?account\b`),
			kw(`\b(my|your) account\b`),
		},
	},
	{
		ID:    ClaimSearch,
		Label: "Search",
		Keywords: []*regexp.Regexp{
			kw(`\bsearch\b`),
			kw(`\bfind (anything|exactly what)\b`),
		},
	},
	{
		ID:    ClaimEcommerce,
		Label: "Online shopping",
		Keywords: []*regexp.Regexp{
			kw(`\b(shop|buy) now\b`),
			kw(`\badd to (cart|bag|basket)\b`),
			kw(`\bcheckout\b`),
			kw(`\bfree shipping\b`),
		},
	},
	{
		ID:    ClaimContactSupport,
		Label: "Contact & support",
		Keywords: []*regexp.Regexp{
			kw(`\bcontact us\b`),
			kw(`\b24/7 support\b`),
			kw(`\bcustomer (support|service)\b`),
			kw(`\bget in touch\b`),
			kw(`\bhelp center\b`),
		},
	},
	{
		ID:    ClaimNewsletter,
		Label: "Newsletter",
		Keywords: []*regexp.Regexp{
			kw(`\bnewsletter\b`),
			kw(`\bsubscribe\b`),
			kw(`\b(mailing|email) list\b`),
		},
	},
	{
		ID:    ClaimFreeTrial,
		Label: "Free trial",
		Keywords: []*regexp.Regexp{
			kw(`\bfree trial\b`),
			kw(`\btry (it |for )?free\b`),
			kw(`\bno credit card\b`),
		},
	},
	{
		ID:    ClaimDemoBooking,
		Label: "Demo booking",
		Keywords: []*regexp.Regexp{
			kw(`\b(book|request|schedule) a demo\b`),
			kw(`\bget a demo\b`),
		},
	},
	{
		ID:    ClaimAPIDevelopers,
		Label: "API & developers",
		Keywords: []*regexp.Regexp{
			kw(`\bapi\b`),
			kw(`\bdevelopers?\b`),
			kw(`\bsdk\b`),
			kw(`\bdocumentation\b`),
		},
	},
	{
		ID:    ClaimMobileApp,
		Label: "Mobile app",
		Keywords: []*regexp.Regexp{
			kw(`\b(mobile|ios|android) app\b`),
			kw(`\bapp store\b`),
			kw(`\bgoogle play\b`),
			kw(`\bdownload (the|our) app\b`),
		},
	},
	{
		ID:    ClaimBlogContent,
		Label: "Blog & content",
		Keywords: []*regexp.Regexp{
			kw(`\bblog\b`),
			kw(`\barticles\b`),
			kw(`\bcase stud(y|ies)\b`),
		},
	},
	{
		ID:    ClaimPricingTiers,
		Label: "Pricing tiers",
		Keywords: []*regexp.Regexp{
			kw(`\bpricing\b`),
			kw(`\bplans\b`),
			kw(`\bper (month|user|seat)\b`),
			kw(`\bfree (plan|tier)\b`),
		},
	},
	{
		ID:    ClaimAnalytics,
		Label: "Analytics",
		Keywords: []*regexp.Regexp{
			kw(`\banalytics\b`),
			kw(`\bdashboards?\b`),
			kw(`\binsights\b`),
			kw(`\breal[- ]time (metrics|data|reports)\b`),
		},
	},
	{
		ID:    ClaimSocialLogin,
		Label: "Social login",
		Keywords: []*regexp.Regexp{
			kw(`\b(continue|sign ?in|log ?in) with (google|facebook|github|apple|microsoft)\b`),
			kw(`\bsingle sign[- ]?on\b`),
			kw(`\bsso\b`),
		},
	},
	{
		ID:    ClaimChatSupport,
		Label: "Chat support",
		Keywords: []*regexp.Regexp{
			kw(`\blive chat\b`),
			kw(`\bchat with (us|our team)\b`),
			kw(`\binstant messaging\b`),
		},
	},
	{
		ID:    ClaimTeamCollaboration,
		Label: "Team collaboration",
		Keywords: []*regexp.Regexp{
			kw(`\bcollaborat(e|ion|ive)\b`),
			kw(`\bfor teams\b`),
			kw(`\binvite your team\b`),
			kw(`\bworkspaces?\b`),
		},
	},
}

// Categories returns the fixed claim-category catalog.
// Callers must treat the returned slice as read-only.
func Categories() []Category {
	return categories
}

// ctaAction is one named call-to-action phrase.
type ctaAction struct {
	// name is the canonical lowercase action name; the extractor renders
	// it in title case for display.
	name    string
	pattern *regexp.Regexp
}

// ctaCatalog is tested against button and link text only, never body
// text: a CTA is an actionable control, not a mention.
var ctaCatalog = []ctaAction{
	{name: "get started", pattern: kw(`\bget started\b`)},
	{name: "sign up", pattern: kw(`\bsign ?up\b`)},
	{name: "log in", pattern: kw(`\b(log ?in|sign ?in)\b`)},
	{name: "start free trial", pattern: kw(`\b(start( your)? free trial|try (it |for )?free)\b`)},
	{name: "book a demo", pattern: kw(`\b(book|request|schedule|get) a demo\b`)},
	{name: "contact us", pattern: kw(`\b(contact us|get in touch)\b`)},
	{name: "subscribe", pattern: kw(`\bsubscribe\b`)},
	{name: "learn more", pattern: kw(`\blearn more\b`)},
	{name: "buy now", pattern: kw(`\b(buy now|shop now|add to cart)\b`)},
	{name: "download", pattern: kw(`\bdownload\b`)},
	{name: "join now", pattern: kw(`\bjoin (now|us|today)\b`)},
}
