// Package critical analyzes claims for reliability and scans content
// for cognitive biases and logical fallacies.
//
// Both analysis kinds are single-shot records: each call produces a
// new, immutable-after-creation record. The keyword heuristics are
// shallow by design — substring matching, no language understanding.
package critical

import "time"

// SourceType classifies where a claim comes from.
type SourceType string

const (
	SourceAcademic     SourceType = "academic"
	SourceNewsMedia    SourceType = "news media"
	SourceSocialMedia  SourceType = "social media"
	SourcePersonalBlog SourceType = "personal blog"
	SourceGovernment   SourceType = "government"
	SourceCorporate    SourceType = "corporate"
	SourceUnknown      SourceType = "unknown"
)

// Reliability is the overall trust level assigned to a claim.
type Reliability string

const (
	ReliabilityHigh    Reliability = "high"
	ReliabilityMedium  Reliability = "medium"
	ReliabilityLow     Reliability = "low"
	ReliabilityUnknown Reliability = "unknown"
)

// BiasType is a closed set of detectable cognitive biases.
type BiasType string

const (
	BiasConfirmation BiasType = "confirmation bias"
	BiasAuthority    BiasType = "appeal to authority"
	BiasBandwagon    BiasType = "bandwagon effect"
)

// ClaimAnalysis is the stored result of critical_analyze_claim.
type ClaimAnalysis struct {
	ID          string
	Claim       string
	Source      string
	SourceType  SourceType
	Reliability Reliability
	Strengths   []string
	Weaknesses  []string
	Questions   []string
	AnalyzedAt  time.Time
}

// BiasFinding pairs a detected bias with its explanation.
type BiasFinding struct {
	Bias        BiasType
	Explanation string
}

// BiasAnalysis is the stored result of critical_identify_bias.
type BiasAnalysis struct {
	ID              string
	Content         string
	Biases          []BiasFinding
	Fallacies       []string
	Recommendations []string
	AnalyzedAt      time.Time
}
