package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"exam_results_bot/internal/app"
	"exam_results_bot/internal/domain/result"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ app.Recorder = (*Prometheus)(nil)

func TestPrometheus_Records(t *testing.T) {
	p := NewPrometheus()

	p.ObserveLookup(app.LookupStatusOK, 120*time.Millisecond)
	p.ObserveLookup(app.LookupStatusOK, 80*time.Millisecond)
	p.ObserveLookup(app.LookupStatusInvalidPhone, time.Millisecond)
	p.ObserveSubject("English", result.OutcomePercentage)
	p.ObserveSubject("English", result.OutcomeNotTaken)
	p.ObserveSubject("English", result.OutcomePercentage)
	p.SetSourceUp("English", true)
	p.SetSourceUp("Physics", false)

	assert.Equal(t, 2.0, testutil.ToFloat64(p.lookups.WithLabelValues(app.LookupStatusOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(p.lookups.WithLabelValues(app.LookupStatusInvalidPhone)))
	assert.Equal(t, 2.0, testutil.ToFloat64(p.outcomes.WithLabelValues("English", string(result.OutcomePercentage))))
	assert.Equal(t, 1.0, testutil.ToFloat64(p.sourceUp.WithLabelValues("English")))
	assert.Equal(t, 0.0, testutil.ToFloat64(p.sourceUp.WithLabelValues("Physics")))
	assert.Equal(t, 1, testutil.CollectAndCount(p.lookupDuration))
}

func TestPrometheus_Handler(t *testing.T) {
	p := NewPrometheus()
	p.ObserveLookup(app.LookupStatusOK, time.Second)

	rec := httptest.NewRecorder()
	p.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(body), `results_lookups_total{status="ok"} 1`))
	assert.Contains(t, string(body), "go_goroutines")
}
