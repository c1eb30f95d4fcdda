// internal/app/lookup_service.go
package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"exam_results_bot/internal/domain/phone"
	"exam_results_bot/internal/domain/result"
	"exam_results_bot/internal/domain/source"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// Lookup statuses reported to the Recorder.
const (
	LookupStatusOK           = "ok"
	LookupStatusInvalidPhone = "invalid_phone"
	LookupStatusError        = "error"
)

var errNoSource = errors.New("no data source configured")

// Recorder receives lookup metrics. NopRecorder discards them.
type Recorder interface {
	ObserveLookup(status string, elapsed time.Duration)
	ObserveSubject(subjectID string, kind result.OutcomeKind)
	SetSourceUp(subjectID string, up bool)
}

type NopRecorder struct{}

func (NopRecorder) ObserveLookup(string, time.Duration)       {}
func (NopRecorder) ObserveSubject(string, result.OutcomeKind) {}
func (NopRecorder) SetSourceUp(string, bool)                  {}

// Resolution is the per-subject outcome of scanning every source for one phone.
type Resolution struct {
	StudentName string
	Results     []result.SubjectResult
	Diagnostics []string
}

// LookupService resolves a phone against every configured subject source and
// aggregates the outcome. It holds no per-query state and is safe for concurrent use.
type LookupService struct {
	catalog          *result.Catalog
	sources          map[string]source.Source
	metrics          Recorder
	logger           *logrus.Entry
	fetchConcurrency int
}

func NewLookupService(
	catalog *result.Catalog,
	sources map[string]source.Source, // keyed by subject id
	metrics Recorder,
	logger *logrus.Entry,
	fetchConcurrency int,
) *LookupService {
	if metrics == nil {
		metrics = NopRecorder{}
	}
	if fetchConcurrency < 1 {
		fetchConcurrency = 1
	}
	srcs := make(map[string]source.Source, len(sources))
	for id, src := range sources {
		srcs[id] = src
	}
	return &LookupService{
		catalog:          catalog,
		sources:          srcs,
		metrics:          metrics,
		logger:           logger.WithField("component", "lookup_service"),
		fetchConcurrency: fetchConcurrency,
	}
}

type lookupOptions struct {
	stream string
}

// LookupOption narrows a lookup.
type LookupOption func(*lookupOptions)

// WithStream limits the lookup to the subjects of one stream, in stream order.
func WithStream(streamID string) LookupOption {
	return func(o *lookupOptions) { o.stream = streamID }
}

// Catalog returns the subject table the service resolves against.
func (s *LookupService) Catalog() *result.Catalog {
	return s.catalog
}

// Lookup validates rawPhone, resolves it against the selected subjects and returns
// the aggregated summary. It fails with phone.ErrInvalidPhone before touching any
// source, with result.ErrUnknownStream for an unknown stream, or with the context error
// if ctx ends while sources are read. Per-subject failures never fail the lookup.
func (s *LookupService) Lookup(ctx context.Context, rawPhone string, opts ...LookupOption) (*result.LookupSummary, error) {
	start := time.Now()
	var o lookupOptions
	for _, opt := range opts {
		opt(&o)
	}

	canonical, err := phone.Validate(rawPhone)
	if err != nil {
		s.metrics.ObserveLookup(LookupStatusInvalidPhone, time.Since(start))
		return nil, err
	}

	logCtx := s.logger.WithFields(logrus.Fields{
		"lookup_id": uuid.NewString(),
		"phone":     phone.Mask(canonical),
		"stream":    o.stream,
	})

	subjects, err := s.catalog.SubjectsFor(o.stream)
	if err != nil {
		s.metrics.ObserveLookup(LookupStatusError, time.Since(start))
		return nil, err
	}

	res, err := s.Resolve(ctx, canonical, subjects)
	if err != nil {
		logCtx.WithError(err).Warn("Lookup aborted")
		s.metrics.ObserveLookup(LookupStatusError, time.Since(start))
		return nil, err
	}

	agg := result.AggregateResults(res.Results, s.catalog.Tiers())
	summary := &result.LookupSummary{
		Phone:           canonical,
		Stream:          o.stream,
		StudentName:     res.StudentName,
		Subjects:        res.Results,
		TotalPercentage: agg.TotalPercentage,
		SubjectsCounted: agg.SubjectsCounted,
		Average:         agg.Average,
		Tier:            agg.Tier,
		Diagnostics:     res.Diagnostics,
	}

	for _, r := range res.Results {
		s.metrics.ObserveSubject(r.SubjectID, r.Kind)
	}
	elapsed := time.Since(start)
	s.metrics.ObserveLookup(LookupStatusOK, elapsed)

	fields := logrus.Fields{
		"subjects_counted": summary.SubjectsCounted,
		"diagnostics":      len(summary.Diagnostics),
		"elapsed_ms":       elapsed.Milliseconds(),
	}
	if summary.Tier != nil {
		fields["tier"] = *summary.Tier
	}
	logCtx.WithFields(fields).Info("Lookup completed")
	return summary, nil
}

type fetchResult struct {
	records []source.RawRecord
	err     error
}

// Resolve reads every subject's source and extracts the canonical phone's record.
// Outcomes and diagnostics follow the order of subjects. Only an empty canonical phone
// or an ended ctx is an error.
func (s *LookupService) Resolve(ctx context.Context, canonical string, subjects []result.SubjectConfig) (*Resolution, error) {
	if canonical == "" {
		return nil, phone.ErrInvalidPhone
	}

	fetched := s.fetchAll(ctx, subjects)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	res := &Resolution{
		Results:     make([]result.SubjectResult, 0, len(subjects)),
		Diagnostics: []string{},
	}
	for i, subj := range subjects {
		outcome, name, diag := s.resolveSubject(subj, fetched[i], canonical)
		res.Results = append(res.Results, outcome)
		if diag != "" {
			res.Diagnostics = append(res.Diagnostics, diag)
		}
		if res.StudentName == "" && name != "" {
			res.StudentName = name
		}
	}
	return res, nil
}

// fetchAll reads sources with bounded concurrency. Each read owns one slot of the
// returned slice and a failed read never cancels the others.
func (s *LookupService) fetchAll(ctx context.Context, subjects []result.SubjectConfig) []fetchResult {
	out := make([]fetchResult, len(subjects))
	var g errgroup.Group
	g.SetLimit(s.fetchConcurrency)
	for i, subj := range subjects {
		src, ok := s.sources[subj.ID]
		if !ok || src == nil {
			out[i].err = errNoSource
			continue
		}
		i := i
		g.Go(func() error {
			records, err := src.ReadAll(ctx)
			out[i] = fetchResult{records: records, err: err}
			return nil
		})
	}
	_ = g.Wait()
	return out
}

func (s *LookupService) resolveSubject(subj result.SubjectConfig, f fetchResult, canonical string) (result.SubjectResult, string, string) {
	logCtx := s.logger.WithField("subject", subj.ID)

	if f.err != nil {
		var schemaErr *source.SchemaError
		switch {
		case errors.As(f.err, &schemaErr):
			logCtx.WithField("missing", schemaErr.Missing).Warn("Source schema invalid")
			return result.SchemaInvalid(subj.ID), "", fmt.Sprintf("%s: %s", subj.ID, capitalize(schemaErr.Error()))
		case errors.Is(f.err, errNoSource):
			logCtx.Warn("No source configured for subject")
			return result.SourceUnavailable(subj.ID), "", fmt.Sprintf("%s: No data source configured", subj.ID)
		case errors.Is(f.err, source.ErrSourceNotFound):
			logCtx.WithError(f.err).Warn("Source not found")
			return result.SourceUnavailable(subj.ID), "", fmt.Sprintf("%s: Source not found", subj.ID)
		default:
			logCtx.WithError(f.err).Warn("Source unavailable")
			return result.SourceUnavailable(subj.ID), "", fmt.Sprintf("%s: Could not access source - %v", subj.ID, f.err)
		}
	}

	var match *source.RawRecord
	for i := range f.records {
		if phone.Canonicalize(f.records[i].Phone) == canonical {
			match = &f.records[i]
			break
		}
	}
	if match == nil {
		logCtx.WithField("records", len(f.records)).Debug("No record for phone")
		return result.NotTaken(subj.ID), "", ""
	}

	pct, err := result.Normalize(match.Score, subj.MaxScore)
	if err != nil {
		logCtx.WithField("raw_score", match.Score).Warn("Score could not be normalized")
		return result.ScoreInvalid(subj.ID, match.Score), match.Name, fmt.Sprintf("%s: Could not process score '%s'", subj.ID, match.Score)
	}
	return result.Percentage(subj.ID, pct), match.Name, ""
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	if c := s[0]; c >= 'a' && c <= 'z' {
		return string(c-'a'+'A') + s[1:]
	}
	return s
}
