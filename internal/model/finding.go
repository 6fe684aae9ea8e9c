package model

// FindingType categorizes a reconciliation discrepancy between what the
// homepage claims and what the crawl detected.
type FindingType string

const (
	// FindingClaimedNotDetected means the homepage claims a feature but
	// the crawl found little or no supporting evidence.
	FindingClaimedNotDetected FindingType = "claimed_not_detected"

	// FindingWeakDetection means a claimed feature was detected, but with
	// confidence below the strong-match threshold.
	FindingWeakDetection FindingType = "weak_detection"

	// FindingDetectedNotClaimed means the crawl detected a feature the
	// homepage never claims - an underpromoted feature.
	FindingDetectedNotClaimed FindingType = "detected_not_claimed"
)

// Rank returns the severity rank used to order findings in reports.
// Lower ranks sort first: a claim with no evidence behind it is a more
// serious discrepancy than an underpromoted feature.
func (t FindingType) Rank() int {
	switch t {
	case FindingClaimedNotDetected:
		return 0
	case FindingWeakDetection:
		return 1
	case FindingDetectedNotClaimed:
		return 2
	default:
		return 3
	}
}

// Finding is one reconciliation discrepancy.
type Finding struct {
	// Type is the discrepancy category.
	Type FindingType `json:"type"`

	// Feature is the claim or pattern name the finding is about.
	Feature string `json:"feature"`

	// Confidence is the detection confidence behind the finding.
	// Zero for claims with no supporting evidence at all.
	Confidence int `json:"confidence"`

	// EvidencePages lists the URLs where supporting evidence was seen.
	EvidencePages []string `json:"evidence_pages"`

	// Explanation is a human-readable account of the discrepancy.
	Explanation string `json:"explanation"`
}
