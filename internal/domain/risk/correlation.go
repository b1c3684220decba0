package risk

// CorrelationDetail is the correlation analyzer's output.
type CorrelationDetail struct {
	Bonus   float64  `json:"bonus"`
	Factors []string `json:"factors,omitempty"`
}

// CorrelationAnalyzer rewards cross-signal reinforcement the independent
// extractors cannot see: each rule is additive and fires independently.
type CorrelationAnalyzer struct{}

// NewCorrelationAnalyzer builds the analyzer.
func NewCorrelationAnalyzer() *CorrelationAnalyzer {
	return &CorrelationAnalyzer{}
}

// Analyze computes the correlation bonus from the four primary component
// scores.
func (a *CorrelationAnalyzer) Analyze(eventScore, pepScore, geoScore, relScore float64) CorrelationDetail {
	var detail CorrelationDetail

	if eventScore > 70 && pepScore > 50 {
		detail.Bonus += 15
		detail.Factors = append(detail.Factors, "pep_with_severe_events")
	}
	if geoScore > 50 && relScore > 40 {
		detail.Bonus += 10
		detail.Factors = append(detail.Factors, "high_risk_geography_network")
	}

	midBand := 0
	for _, s := range []float64{eventScore, pepScore, geoScore, relScore} {
		if s >= 30 && s <= 60 {
			midBand++
		}
	}
	if midBand >= 3 {
		detail.Bonus += 8
		detail.Factors = append(detail.Factors, "broad_moderate_signals")
	}
	return detail
}
