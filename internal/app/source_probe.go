// internal/app/source_probe.go
package app

import (
	"context"
	"errors"

	"exam_results_bot/internal/domain/source"
)

// SourceStatus is the result of reading one subject's source once.
type SourceStatus struct {
	SubjectID string `json:"subject"`
	Source    string `json:"source"`
	Up        bool   `json:"up"`
	Records   int    `json:"records"`
	Error     string `json:"error,omitempty"`
}

// ProbeSources reads every catalog subject's source and reports availability.
// Nothing read is retained.
func (s *LookupService) ProbeSources(ctx context.Context) []SourceStatus {
	subjects := s.catalog.Subjects()
	fetched := s.fetchAll(ctx, subjects)

	statuses := make([]SourceStatus, 0, len(subjects))
	for i, subj := range subjects {
		st := SourceStatus{SubjectID: subj.ID, Records: len(fetched[i].records)}
		if src, ok := s.sources[subj.ID]; ok && src != nil {
			st.Source = src.Describe()
		}
		if err := fetched[i].err; err != nil {
			var schemaErr *source.SchemaError
			if errors.As(err, &schemaErr) {
				st.Error = "schema invalid: " + schemaErr.Error()
			} else {
				st.Error = err.Error()
			}
		} else {
			st.Up = true
		}
		s.metrics.SetSourceUp(subj.ID, st.Up)
		if st.Up {
			s.logger.WithField("subject", subj.ID).WithField("records", st.Records).Debug("Source probe ok")
		} else {
			s.logger.WithField("subject", subj.ID).WithField("error", st.Error).Warn("Source probe failed")
		}
		statuses = append(statuses, st)
	}
	return statuses
}

// AllUp reports whether every probed source was readable.
func AllUp(statuses []SourceStatus) bool {
	for _, st := range statuses {
		if !st.Up {
			return false
		}
	}
	return true
}
