package compare

import (
	"fmt"
	"sort"
	"strings"

	"github.com/short-int-ali/PageLens/internal/model"
)

const (
	// strongThreshold is the confidence at or above which a claim counts
	// as matched and produces no finding.
	strongThreshold = 50

	// weakThreshold is the confidence at or above which a detection is
	// considered real, if underwhelming. Below it, a claim is treated as
	// undetected and an unclaimed feature as noise.
	weakThreshold = 25
)

// Engine reconciles homepage claims against aggregated detections.
// It holds only the static claim-to-pattern relation and is safe for
// concurrent use.
type Engine struct {
	mapping map[string][]string
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithMapping replaces the built-in claim-to-pattern relation.
// Tests use this to reconcile hand-built claims and patterns.
func WithMapping(mapping map[string][]string) EngineOption {
	return func(e *Engine) {
		e.mapping = mapping
	}
}

// NewEngine creates an Engine over the built-in relation.
func NewEngine(opts ...EngineOption) *Engine {
	e := &Engine{mapping: ClaimPatterns()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Compare reconciles the extracted claims against the aggregated
// features and returns ranked findings, counts, and a summary.
//
// Every pattern related to any extracted claim is treated as claimed
// when looking for underpromoted features, whether or not the claim was
// satisfied. A feature already reported as missing or weak must not be
// reported a second time as unclaimed.
func (e *Engine) Compare(homepage *model.HomepageClaims, features []model.AggregatedFeature) model.Comparison {
	byPattern := make(map[string]*model.AggregatedFeature, len(features))
	for i := range features {
		byPattern[features[i].PatternID] = &features[i]
	}

	findings := make([]model.Finding, 0)
	analysis := model.ComparisonAnalysis{}
	claimedPatterns := make(map[string]bool)

	var extracted []model.Claim
	if homepage != nil {
		extracted = homepage.Claims
	}
	analysis.ClaimedCount = len(extracted)

	var missing, weak []string
	for _, claim := range extracted {
		related := e.mapping[claim.ID]
		for _, id := range related {
			claimedPatterns[id] = true
		}

		best := bestFeature(related, byPattern)
		switch {
		case best == nil:
			analysis.MissingCount++
			missing = append(missing, claim.Label)
			findings = append(findings, model.Finding{
				Type:          model.FindingClaimedNotDetected,
				Feature:       claim.Label,
				Confidence:    0,
				EvidencePages: []string{},
				Explanation:   fmt.Sprintf("The homepage claims %q but no crawled page shows functional evidence for it.", claim.Label),
			})
		case best.MaxConfidence >= strongThreshold:
			analysis.MatchedCount++
		case best.MaxConfidence >= weakThreshold:
			analysis.WeakCount++
			weak = append(weak, claim.Label)
			findings = append(findings, model.Finding{
				Type:          model.FindingWeakDetection,
				Feature:       claim.Label,
				Confidence:    best.MaxConfidence,
				EvidencePages: pageURLs(best),
				Explanation:   fmt.Sprintf("The claimed feature %q was detected, but with confidence %d, below the strong-match threshold of %d.", claim.Label, best.MaxConfidence, strongThreshold),
			})
		default:
			analysis.MissingCount++
			missing = append(missing, claim.Label)
			findings = append(findings, model.Finding{
				Type:          model.FindingClaimedNotDetected,
				Feature:       claim.Label,
				Confidence:    best.MaxConfidence,
				EvidencePages: pageURLs(best),
				Explanation:   fmt.Sprintf("The homepage claims %q but only trace evidence (confidence %d) was found.", claim.Label, best.MaxConfidence),
			})
		}
	}

	var unclaimed []string
	for i := range features {
		feat := &features[i]
		if claimedPatterns[feat.PatternID] || feat.MaxConfidence < weakThreshold {
			continue
		}
		analysis.UnclaimedCount++
		unclaimed = append(unclaimed, feat.PatternName)
		findings = append(findings, model.Finding{
			Type:          model.FindingDetectedNotClaimed,
			Feature:       feat.PatternName,
			Confidence:    feat.MaxConfidence,
			EvidencePages: pageURLs(feat),
			Explanation:   fmt.Sprintf("Crawled pages exhibit %q (confidence %d) but the homepage does not claim it.", feat.PatternName, feat.MaxConfidence),
		})
	}

	sort.SliceStable(findings, func(i, j int) bool {
		return findings[i].Type.Rank() < findings[j].Type.Rank()
	})

	if analysis.ClaimedCount > 0 {
		analysis.MatchRate = float64(analysis.MatchedCount) / float64(analysis.ClaimedCount)
	}

	return model.Comparison{
		Summary:  summarize(analysis, missing, weak, unclaimed),
		Findings: findings,
		Analysis: analysis,
	}
}

// bestFeature selects the related pattern with the highest observed
// confidence. Ties keep the first pattern in relation order.
func bestFeature(related []string, byPattern map[string]*model.AggregatedFeature) *model.AggregatedFeature {
	var best *model.AggregatedFeature
	for _, id := range related {
		feat, ok := byPattern[id]
		if !ok {
			continue
		}
		if best == nil || feat.MaxConfidence > best.MaxConfidence {
			best = feat
		}
	}
	return best
}

// pageURLs lists the URLs backing a feature's evidence.
func pageURLs(feat *model.AggregatedFeature) []string {
	urls := make([]string, 0, len(feat.EvidencePages))
	for _, p := range feat.EvidencePages {
		urls = append(urls, p.URL)
	}
	return urls
}

// summarize assembles the natural-language account of the reconciliation.
// Each feature-name segment appears only when its count is nonzero, and
// an empty claim set overrides the match-rate line entirely.
func summarize(a model.ComparisonAnalysis, missing, weak, unclaimed []string) string {
	if a.ClaimedCount == 0 {
		return "No clear feature claims could be extracted from the homepage."
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%d of %d homepage claims matched detected functionality (%.0f%% match rate).",
		a.MatchedCount, a.ClaimedCount, a.MatchRate*100)
	if len(missing) > 0 {
		fmt.Fprintf(&sb, " Claimed but not detected: %s.", strings.Join(missing, ", "))
	}
	if len(weak) > 0 {
		fmt.Fprintf(&sb, " Weakly supported: %s.", strings.Join(weak, ", "))
	}
	if len(unclaimed) > 0 {
		fmt.Fprintf(&sb, " Detected but not claimed: %s.", strings.Join(unclaimed, ", "))
	}
	return sb.String()
}
