package app

import (
	"context"
	"io"
	"sync"
	"sync/atomic"
	"time"

	"exam_results_bot/internal/domain/result"
	"exam_results_bot/internal/domain/source"

	"github.com/sirupsen/logrus"
)

type fakeSource struct {
	name    string
	records []source.RawRecord
	err     error
	delay   time.Duration
	calls   atomic.Int32
}

func (f *fakeSource) ReadAll(ctx context.Context) ([]source.RawRecord, error) {
	f.calls.Add(1)
	if f.delay > 0 {
		select {
		case <-time.After(f.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if f.err != nil {
		return nil, f.err
	}
	return append([]source.RawRecord(nil), f.records...), nil
}

func (f *fakeSource) Describe() string {
	return "fake:" + f.name
}

// gateSource tracks how many reads overlap.
type gateSource struct {
	mu      *sync.Mutex
	active  *int
	peak    *int
	release time.Duration
}

func (g *gateSource) ReadAll(ctx context.Context) ([]source.RawRecord, error) {
	g.mu.Lock()
	*g.active++
	if *g.active > *g.peak {
		*g.peak = *g.active
	}
	g.mu.Unlock()

	time.Sleep(g.release)

	g.mu.Lock()
	*g.active--
	g.mu.Unlock()
	return nil, nil
}

func (g *gateSource) Describe() string { return "gate" }

type recordedLookup struct {
	status string
}

type fakeRecorder struct {
	mu       sync.Mutex
	lookups  []recordedLookup
	subjects map[string]result.OutcomeKind
	up       map[string]bool
}

func newFakeRecorder() *fakeRecorder {
	return &fakeRecorder{subjects: map[string]result.OutcomeKind{}, up: map[string]bool{}}
}

func (r *fakeRecorder) ObserveLookup(status string, _ time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lookups = append(r.lookups, recordedLookup{status: status})
}

func (r *fakeRecorder) ObserveSubject(id string, kind result.OutcomeKind) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.subjects[id] = kind
}

func (r *fakeRecorder) SetSourceUp(id string, up bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.up[id] = up
}

func testLogger() *logrus.Entry {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return logrus.NewEntry(l)
}
