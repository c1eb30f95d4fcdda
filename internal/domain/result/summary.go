// internal/domain/result/summary.go
package result

// LookupSummary is the structured answer to one phone lookup. It is built fresh per
// query and holds one SubjectResult per resolved subject, in configured order.
type LookupSummary struct {
	Phone           string          `json:"phone"`
	Stream          string          `json:"stream,omitempty"`
	StudentName     string          `json:"student_name,omitempty"`
	Subjects        []SubjectResult `json:"subjects"`
	TotalPercentage float64         `json:"total_percentage"`
	SubjectsCounted int             `json:"subjects_counted"`
	Average         *float64        `json:"average,omitempty"`
	Tier            *Tier           `json:"tier,omitempty"`
	Diagnostics     []string        `json:"diagnostics"`
}

// HasStudent reports whether any subject yielded a student name.
func (s *LookupSummary) HasStudent() bool {
	return s.StudentName != ""
}

// HasResults reports whether the aggregate block applies.
func (s *LookupSummary) HasResults() bool {
	return s.SubjectsCounted > 0
}

// Result returns the outcome for subjectID.
func (s *LookupSummary) Result(subjectID string) (SubjectResult, bool) {
	for _, r := range s.Subjects {
		if r.SubjectID == subjectID {
			return r, true
		}
	}
	return SubjectResult{}, false
}

// PerSubject returns the outcomes keyed by subject id.
func (s *LookupSummary) PerSubject() map[string]SubjectResult {
	m := make(map[string]SubjectResult, len(s.Subjects))
	for _, r := range s.Subjects {
		m[r.SubjectID] = r
	}
	return m
}
