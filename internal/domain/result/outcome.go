// internal/domain/result/outcome.go
package result

// OutcomeKind is the closed set of per-subject lookup outcomes.
type OutcomeKind string

const (
	OutcomePercentage        OutcomeKind = "PERCENTAGE"
	OutcomeNotTaken          OutcomeKind = "NOT_TAKEN"
	OutcomeSourceUnavailable OutcomeKind = "SOURCE_UNAVAILABLE"
	OutcomeSchemaInvalid     OutcomeKind = "SCHEMA_INVALID"
	OutcomeScoreInvalid      OutcomeKind = "SCORE_INVALID"
)

// OutcomeKinds lists every kind in display order.
func OutcomeKinds() []OutcomeKind {
	return []OutcomeKind{
		OutcomePercentage,
		OutcomeNotTaken,
		OutcomeSourceUnavailable,
		OutcomeSchemaInvalid,
		OutcomeScoreInvalid,
	}
}

// SubjectResult is the resolved outcome for one subject.
// Percentage is meaningful only when Kind is OutcomePercentage.
type SubjectResult struct {
	SubjectID  string      `json:"subject"`
	Kind       OutcomeKind `json:"outcome"`
	Percentage float64     `json:"percentage"`
	RawScore   string      `json:"raw_score,omitempty"` // offending token for OutcomeScoreInvalid
}

func Percentage(subjectID string, value float64) SubjectResult {
	return SubjectResult{SubjectID: subjectID, Kind: OutcomePercentage, Percentage: value}
}

func NotTaken(subjectID string) SubjectResult {
	return SubjectResult{SubjectID: subjectID, Kind: OutcomeNotTaken}
}

func SourceUnavailable(subjectID string) SubjectResult {
	return SubjectResult{SubjectID: subjectID, Kind: OutcomeSourceUnavailable}
}

func SchemaInvalid(subjectID string) SubjectResult {
	return SubjectResult{SubjectID: subjectID, Kind: OutcomeSchemaInvalid}
}

func ScoreInvalid(subjectID, raw string) SubjectResult {
	return SubjectResult{SubjectID: subjectID, Kind: OutcomeScoreInvalid, RawScore: raw}
}

// Counted reports whether the result contributes to the aggregate.
func (r SubjectResult) Counted() bool {
	return r.Kind == OutcomePercentage
}
