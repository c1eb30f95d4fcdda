package sources

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"exam_results_bot/internal/domain/source"
)

const maxSheetBytes = 32 << 20

// HTTPSheetSource downloads a subject's records as CSV, e.g. a published spreadsheet export.
type HTTPSheetSource struct {
	url     string
	columns source.Columns
	client  *http.Client
	timeout time.Duration
}

func NewHTTPSheetSource(url string, columns source.Columns, client *http.Client, timeout time.Duration) *HTTPSheetSource {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPSheetSource{url: url, columns: columns.WithDefaults(), client: client, timeout: timeout}
}

func (s *HTTPSheetSource) Describe() string {
	return "http_csv:" + s.url
}

func (s *HTTPSheetSource) ReadAll(ctx context.Context) ([]source.RawRecord, error) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid sheet url: %v", source.ErrSourceUnavailable, err)
	}
	req.Header.Set("Accept", "text/csv")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: error fetching sheet: %v", source.ErrSourceUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, fmt.Errorf("sheet %s: %w", s.url, source.ErrSourceNotFound)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return nil, fmt.Errorf("%w: sheet returned status %d", source.ErrSourceUnavailable, resp.StatusCode)
	}

	return readCSV(io.LimitReader(resp.Body, maxSheetBytes), s.columns, s.url)
}
