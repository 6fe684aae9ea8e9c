package classify

import "github.com/short-int-ali/PageLens/internal/model"

// Pattern catalog identifiers, shared with the comparison mapping.
const (
	PatternAuthentication     = "authentication"
	PatternRegistration       = "registration"
	PatternSearch             = "search"
	PatternEcommerce          = "ecommerce"
	PatternContactForm        = "contact_form"
	PatternNewsletterSignup   = "newsletter_signup"
	PatternPricingPage        = "pricing_page"
	PatternBlog               = "blog"
	PatternAPIDocs            = "api_docs"
	PatternFileUpload         = "file_upload"
	PatternChatWidget         = "chat_widget"
	PatternSocialLogin        = "social_login"
	PatternDemoBooking        = "demo_booking"
	PatternFreeTrial          = "free_trial"
	PatternMobileApp          = "mobile_app"
	PatternAnalyticsDashboard = "analytics_dashboard"
	PatternTeamCollaboration  = "team_collaboration"
)

// catalog is the fixed pattern table, built once at init and never
// mutated, so it is safe to share across concurrent runs.
//
// Weights encode how diagnostic a signal is for its pattern: a password
// input is near-proof of an authentication page (30), while a generic
// "submit" button barely hints at a contact form (15).
//
// One deliberate asymmetry: patterns for claims that live in marketing
// copy (support, chat) carry no visible-text signals. Claims read the
// marketing text; detection reads functional structure. A page that only
// *talks about* live chat must not score as *having* live chat.
var catalog = []Pattern{
	{
		ID:          PatternAuthentication,
		Name:        "User authentication",
		Description: "Login form with credential inputs",
		Signals: []Signal{
			{Kind: model.SignalInputType, Matcher: Exact("password"), Weight: 30},
			{Kind: model.SignalInputType, Matcher: Exact("email"), Weight: 15},
			{Kind: model.SignalButtonText, Matcher: Regex(`\b(log ?in|sign ?in)\b`), Weight: 25},
			{Kind: model.SignalURL, Matcher: Regex(`/(log[-_]?in|sign[-_]?in|auth)\b`), Weight: 20},
			{Kind: model.SignalInputName, Matcher: Regex(`\b(user(name)?|login)\b`), Weight: 10},
		},
	},
	{
		ID:          PatternRegistration,
		Name:        "Account registration",
		Description: "Sign-up flow for new accounts",
		Signals: []Signal{
			{Kind: model.SignalButtonText, Matcher: Regex(`\b(sign ?up|register|create (an |your |my )?account)\b`), Weight: 25},
			{Kind: model.SignalURL, Matcher: Regex(`/(sign[-_]?up|register|join)\b`), Weight: 25},
			{Kind: model.SignalInputPlaceholder, Matcher: Regex(`confirm password`), Weight: 20},
			{Kind: model.SignalLinkText, Matcher: Regex(`\b(sign ?up|create (an |your )?account)\b`), Weight: 15},
		},
	},
	{
		ID:          PatternSearch,
		Name:        "Site search",
		Description: "Search input for querying site content",
		Signals: []Signal{
			{Kind: model.SignalInputType, Matcher: Exact("search"), Weight: 30},
			{Kind: model.SignalInputPlaceholder, Matcher: Regex(`\bsearch\b`), Weight: 20},
			{Kind: model.SignalInputName, Matcher: Regex(`^(q|query|s|search)$`), Weight: 15},
			{Kind: model.SignalURL, Matcher: Regex(`/search\b`), Weight: 15},
			{Kind: model.SignalButtonText, Matcher: Regex(`\bsearch\b`), Weight: 10},
		},
	},
	{
		ID:          PatternEcommerce,
		Name:        "E-commerce",
		Description: "Shopping cart and checkout flow",
		Signals: []Signal{
			{Kind: model.SignalButtonText, Matcher: Regex(`\b(add to (cart|bag|basket)|buy now|checkout)\b`), Weight: 30},
			{Kind: model.SignalLinkHref, Matcher: Regex(`/(cart|checkout|basket|shop|store|products?)\b`), Weight: 25},
			{Kind: model.SignalLinkText, Matcher: Regex(`\b(cart|checkout|shop now)\b`), Weight: 15},
			{Kind: model.SignalVisibleText, Matcher: Regex(`[$€£]\s?\d+(\.\d{2})?`), Weight: 10},
		},
	},
	{
		ID:          PatternContactForm,
		Name:        "Contact form",
		Description: "Form for reaching the site operators",
		Signals: []Signal{
			{Kind: model.SignalURL, Matcher: Regex(`/contact(-us)?\b`), Weight: 30},
			{Kind: model.SignalInputName, Matcher: Regex(`\b(message|subject|inquiry)\b`), Weight: 20},
			{Kind: model.SignalInputType, Matcher: Exact("textarea"), Weight: 15},
			{Kind: model.SignalButtonText, Matcher: Regex(`\bsend( message)?\b`), Weight: 15},
		},
	},
	{
		ID:          PatternNewsletterSignup,
		Name:        "Newsletter signup",
		Description: "Email capture for a mailing list",
		Signals: []Signal{
			{Kind: model.SignalInputPlaceholder, Matcher: Regex(`\b(newsletter|subscribe|your email)\b`), Weight: 25},
			{Kind: model.SignalButtonText, Matcher: Regex(`\b(subscribe|sign me up)\b`), Weight: 25},
			{Kind: model.SignalURL, Matcher: Regex(`/newsletter\b`), Weight: 15},
		},
	},
	{
		ID:          PatternPricingPage,
		Name:        "Pricing tiers",
		Description: "Plan and pricing information",
		Signals: []Signal{
			{Kind: model.SignalURL, Matcher: Regex(`/(pricing|plans)\b`), Weight: 30},
			{Kind: model.SignalLinkText, Matcher: Regex(`\b(pricing|plans)\b`), Weight: 20},
			{Kind: model.SignalVisibleText, Matcher: Regex(`\b(per (month|user|seat)|/mo(nth)?)\b`), Weight: 15},
		},
	},
	{
		ID:          PatternBlog,
		Name:        "Blog",
		Description: "Editorial content section",
		Signals: []Signal{
			{Kind: model.SignalURL, Matcher: Regex(`/(blog|news|articles)\b`), Weight: 30},
			{Kind: model.SignalLinkText, Matcher: Regex(`\b(blog|articles|read more)\b`), Weight: 20},
			{Kind: model.SignalVisibleText, Matcher: Regex(`\b(posted (on|by)|min read)\b`), Weight: 15},
		},
	},
	{
		ID:          PatternAPIDocs,
		Name:        "API & developer docs",
		Description: "Developer-facing API surface",
		Signals: []Signal{
			{Kind: model.SignalURL, Matcher: Regex(`/(docs|documentation|developers?|api)\b`), Weight: 30},
			{Kind: model.SignalLinkText, Matcher: Regex(`\b(api|documentation|developers?)\b`), Weight: 20},
			{Kind: model.SignalVisibleText, Matcher: Regex(`\b(api key|endpoint|sdk)\b`), Weight: 15},
		},
	},
	{
		ID:          PatternFileUpload,
		Name:        "File upload",
		Description: "File intake control",
		Signals: []Signal{
			{Kind: model.SignalInputType, Matcher: Exact("file"), Weight: 35},
			{Kind: model.SignalButtonText, Matcher: Regex(`\bupload\b`), Weight: 20},
			{Kind: model.SignalVisibleText, Matcher: Regex(`drag (and|&) drop`), Weight: 15},
		},
	},
	{
		ID:          PatternChatWidget,
		Name:        "Live chat",
		Description: "Embedded chat or messaging entry point",
		Signals: []Signal{
			{Kind: model.SignalLinkHref, Matcher: Regex(`(intercom|crisp\.chat|tawk\.to|livechat|drift\.com|zendesk)`), Weight: 30},
			{Kind: model.SignalButtonText, Matcher: Regex(`\b(chat|message us)\b`), Weight: 25},
			{Kind: model.SignalLinkText, Matcher: Regex(`\b(chat with us|live chat)\b`), Weight: 15},
		},
	},
	{
		ID:          PatternSocialLogin,
		Name:        "Social login",
		Description: "Third-party identity sign-in",
		Signals: []Signal{
			{Kind: model.SignalButtonText, Matcher: Regex(`\b(continue|sign ?in|log ?in) with (google|facebook|github|apple|microsoft)\b`), Weight: 30},
			{Kind: model.SignalLinkHref, Matcher: Regex(`(oauth|auth/(google|facebook|github|apple))`), Weight: 20},
		},
	},
	{
		ID:          PatternDemoBooking,
		Name:        "Demo booking",
		Description: "Scheduled product demo flow",
		Signals: []Signal{
			{Kind: model.SignalButtonText, Matcher: Regex(`\b(book|request|schedule) a demo\b`), Weight: 30},
			{Kind: model.SignalURL, Matcher: Regex(`/(demo|book-demo)\b`), Weight: 20},
			{Kind: model.SignalLinkText, Matcher: Regex(`\b(book|request) a demo\b`), Weight: 15},
		},
	},
	{
		ID:          PatternFreeTrial,
		Name:        "Free trial",
		Description: "Self-serve trial entry point",
		Signals: []Signal{
			{Kind: model.SignalButtonText, Matcher: Regex(`\b(start( your)? free trial|try (it |for )?free)\b`), Weight: 30},
			{Kind: model.SignalURL, Matcher: Regex(`/(trial|try)\b`), Weight: 15},
			{Kind: model.SignalVisibleText, Matcher: Regex(`no credit card required`), Weight: 15},
		},
	},
	{
		ID:          PatternMobileApp,
		Name:        "Mobile app",
		Description: "Native app distribution links",
		Signals: []Signal{
			{Kind: model.SignalLinkHref, Matcher: Regex(`(play\.google\.com|apps\.apple\.com|itunes\.apple\.com)`), Weight: 35},
			{Kind: model.SignalLinkText, Matcher: Regex(`\b(app store|google play|download the app)\b`), Weight: 20},
		},
	},
	{
		ID:          PatternAnalyticsDashboard,
		Name:        "Analytics dashboard",
		Description: "Metrics and reporting surface",
		Signals: []Signal{
			{Kind: model.SignalURL, Matcher: Regex(`/(dashboard|analytics|insights|reports)\b`), Weight: 25},
			{Kind: model.SignalLinkText, Matcher: Regex(`\b(dashboard|analytics)\b`), Weight: 20},
			{Kind: model.SignalVisibleText, Matcher: Regex(`\breal[- ]time (metrics|data|reports)\b`), Weight: 10},
		},
	},
	{
		ID:          PatternTeamCollaboration,
		Name:        "Team collaboration",
		Description: "Multi-user workspace features",
		Signals: []Signal{
			{Kind: model.SignalButtonText, Matcher: Regex(`\b(invite (your )?team|add members?)\b`), Weight: 25},
			{Kind: model.SignalURL, Matcher: Regex(`/(teams?|workspaces?|members)\b`), Weight: 20},
			{Kind: model.SignalLinkText, Matcher: Regex(`\b(for teams|workspaces?)\b`), Weight: 15},
		},
	},
}

// Catalog returns the fixed pattern catalog.
// Callers must treat the returned slice as read-only.
func Catalog() []Pattern {
	return catalog
}
