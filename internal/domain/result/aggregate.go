// internal/domain/result/aggregate.go
package result

// Aggregate summarizes the counted subjects of a lookup.
// Average and Tier are nil when no subject was counted.
type Aggregate struct {
	TotalPercentage float64
	SubjectsCounted int
	Average         *float64
	Tier            *Tier
}

// AggregateResults sums the percentages of counted subjects, averages them over the
// count and classifies the average with tiers.
func AggregateResults(results []SubjectResult, tiers TierTable) Aggregate {
	var agg Aggregate
	for _, r := range results {
		if !r.Counted() {
			continue
		}
		agg.TotalPercentage += r.Percentage
		agg.SubjectsCounted++
	}
	if agg.SubjectsCounted == 0 {
		return agg
	}

	agg.TotalPercentage = Round1(agg.TotalPercentage)
	avg := agg.TotalPercentage / float64(agg.SubjectsCounted)
	tier := tiers.Classify(avg)
	agg.Average = &avg
	agg.Tier = &tier
	return agg
}
