package quality

import "github.com/yusufkaraaslan/Skill-Seekers-sub008/internal/document"

// Quality tier boundaries: high >= 7, medium [4, 7), low < 4.
const (
	highTierMin   = 7.0
	mediumTierMin = 4.0
)

// Aggregate computes document-level statistics over the code spans actually
// retained in the given pages, so reported averages reflect what a consumer
// of the report will see.
func Aggregate(pages []document.Page) document.QualityStatistics {
	var stats document.QualityStatistics

	total := 0
	var qualitySum, confidenceSum float64
	for i := range pages {
		for _, span := range pages[i].CodeSpans {
			total++
			qualitySum += span.QualityScore
			confidenceSum += span.Confidence

			if span.IsValid {
				stats.ValidCodeBlocks++
			} else {
				stats.InvalidCodeBlocks++
			}

			switch {
			case span.QualityScore >= highTierMin:
				stats.HighQualityBlocks++
			case span.QualityScore >= mediumTierMin:
				stats.MediumQualityBlocks++
			default:
				stats.LowQualityBlocks++
			}
		}
	}

	if total > 0 {
		stats.AverageQuality = qualitySum / float64(total)
		stats.AverageConfidence = confidenceSum / float64(total)
		stats.ValidationRate = float64(stats.ValidCodeBlocks) / float64(total)
	}
	return stats
}
