package critical

import "strings"

// classifySource buckets a source string by domain/keyword hints.
func classifySource(source string) SourceType {
	if source == "" {
		return SourceUnknown
	}
	s := strings.ToLower(source)
	switch {
	case containsAny(s, ".edu", "ac.jp", "arxiv", "pubmed", "journal"):
		return SourceAcademic
	case containsAny(s, "twitter", "facebook", "instagram", "tiktok", "reddit"):
		return SourceSocialMedia
	case containsAny(s, ".gov", "government", "ministry"):
		return SourceGovernment
	case containsAny(s, "news", "times", "post", "herald", "tribune"):
		return SourceNewsMedia
	case containsAny(s, "blog", "medium.com", "substack"):
		return SourcePersonalBlog
	default:
		return SourceCorporate
	}
}

// analyzeClaim fills strengths, weaknesses, and standing questions.
func analyzeClaim(a *ClaimAnalysis) {
	claim := strings.ToLower(a.Claim)

	if containsAny(claim, "research", "data", "statistic", "study") {
		a.Strengths = append(a.Strengths, "Appears to be grounded in research or data")
	}
	if containsAny(claim, "expert", "professor", "scientist") {
		a.Strengths = append(a.Strengths, "Presented as expert opinion")
	}

	if containsAny(claim, "everyone", "anyone", "always", "never") {
		a.Weaknesses = append(a.Weaknesses, "Possible overgeneralization")
	}
	if containsAny(claim, "absolutely", "definitely", "without doubt", "certainly") {
		a.Weaknesses = append(a.Weaknesses, "Overly assertive phrasing")
	}
	if containsAny(claim, "i think", "i feel", "i believe") {
		a.Weaknesses = append(a.Weaknesses, "Grounded in subjective opinion")
	}

	a.Questions = append(a.Questions,
		"What data or evidence backs this claim?",
		"Do opposing views or alternative interpretations exist?",
		"What background or interests does the claimant have?",
		"Can this claim be confirmed by other trustworthy sources?",
	)
}

// assessReliability scores the claim: source type sets the base, then
// strengths add and weaknesses subtract one point each.
func assessReliability(a *ClaimAnalysis) Reliability {
	score := 0
	switch a.SourceType {
	case SourceAcademic:
		score += 3
	case SourceGovernment:
		score += 2
	case SourceNewsMedia:
		score++
	case SourceSocialMedia:
		score--
	}
	score += len(a.Strengths)
	score -= len(a.Weaknesses)

	switch {
	case score >= 3:
		return ReliabilityHigh
	case score >= 1:
		return ReliabilityMedium
	default:
		return ReliabilityLow
	}
}

// identifyBiases scans content for the closed bias tag set.
func identifyBiases(a *BiasAnalysis) {
	content := strings.ToLower(a.Content)

	if containsAny(content, "obviously", "of course", "as expected", "just as i thought") {
		a.Biases = append(a.Biases, BiasFinding{
			Bias:        BiasConfirmation,
			Explanation: "Weighs only information that supports an existing belief",
		})
	}
	if containsAny(content, "experts say", "because an expert", "a famous") {
		a.Biases = append(a.Biases, BiasFinding{
			Bias:        BiasAuthority,
			Explanation: "Accepts an authority's opinion without scrutiny",
		})
	}
	if containsAny(content, "everyone is", "everybody is", "trending", "popular opinion") {
		a.Biases = append(a.Biases, BiasFinding{
			Bias:        BiasBandwagon,
			Explanation: "Follows the majority view because it is the majority",
		})
	}
}

// identifyFallacies scans content for logical fallacy patterns.
func identifyFallacies(a *BiasAnalysis) {
	content := strings.ToLower(a.Content)

	if containsAny(content, "only two options", "either with us or", "black or white") {
		a.Fallacies = append(a.Fallacies, "False dilemma: more options exist than the two presented")
	}
	if strings.Contains(content, "therefore all") ||
		(strings.Contains(content, "so all") && strings.Contains(content, "must")) {
		a.Fallacies = append(a.Fallacies, "Hasty generalization: judging the whole from limited cases")
	}
}

// recommend fills the recommendations block based on findings.
func recommend(a *BiasAnalysis) {
	if len(a.Biases) > 0 || len(a.Fallacies) > 0 {
		a.Recommendations = append(a.Recommendations,
			"Actively look for opposing views",
			"Collect information from multiple sources",
			"Suspend judgment while emotions run high",
			"Prefer statistics and objective evidence",
		)
		return
	}
	a.Recommendations = append(a.Recommendations,
		"The content reads reasonably balanced as written",
	)
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
