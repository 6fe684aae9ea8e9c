package compare

import (
	"github.com/short-int-ali/PageLens/internal/claims"
	"github.com/short-int-ali/PageLens/internal/classify"
)

// claimPatterns relates each claim category to the detection patterns
// that could substantiate it. The relation is many-to-many: a login
// claim is satisfied by a login form, a sign-up flow, or a social
// identity button, and the authentication pattern in turn backs both
// the accounts claim and the social-login claim.
//
// Slice order matters: when two related patterns tie on confidence, the
// first listed wins.
var claimPatterns = map[string][]string{
	claims.ClaimUserAccounts: {
		classify.PatternAuthentication,
		classify.PatternRegistration,
		classify.PatternSocialLogin,
	},
	claims.ClaimSearch: {
		classify.PatternSearch,
	},
	claims.ClaimEcommerce: {
		classify.PatternEcommerce,
	},
	claims.ClaimContactSupport: {
		classify.PatternContactForm,
		classify.PatternChatWidget,
	},
	claims.ClaimNewsletter: {
		classify.PatternNewsletterSignup,
	},
	claims.ClaimFreeTrial: {
		classify.PatternFreeTrial,
		classify.PatternRegistration,
	},
	claims.ClaimDemoBooking: {
		classify.PatternDemoBooking,
		classify.PatternContactForm,
	},
	claims.ClaimAPIDevelopers: {
		classify.PatternAPIDocs,
	},
	claims.ClaimMobileApp: {
		classify.PatternMobileApp,
	},
	claims.ClaimBlogContent: {
		classify.PatternBlog,
	},
	claims.ClaimPricingTiers: {
		classify.PatternPricingPage,
		classify.PatternEcommerce,
	},
	claims.ClaimAnalytics: {
		classify.PatternAnalyticsDashboard,
	},
	claims.ClaimSocialLogin: {
		classify.PatternSocialLogin,
		classify.PatternAuthentication,
	},
	claims.ClaimChatSupport: {
		classify.PatternChatWidget,
		classify.PatternContactForm,
	},
	claims.ClaimTeamCollaboration: {
		classify.PatternTeamCollaboration,
	},
}

// ClaimPatterns returns the static claim-to-pattern relation.
// Callers must treat the returned map as read-only.
func ClaimPatterns() map[string][]string {
	return claimPatterns
}
