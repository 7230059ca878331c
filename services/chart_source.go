package services

import (
	"errors"
	"fmt"
	"sync"
)

// Chart IDs the dashboard exposes and the BI report embeds. They name
// the dashboard sections, not any particular charting library.
const (
	ChartFinancialEvolution = "financial-evolution"
	ChartStatusBreakdown    = "status-breakdown"
	ChartTopProgress        = "top-progress"
)

// ErrChartUnavailable is returned when no snapshot exists for the
// requested chart. The BI renderer treats it as a partial-asset
// failure: the image slot is skipped, the narrative still renders.
var ErrChartUnavailable = errors.New("chart snapshot unavailable")

// ChartSource supplies rasterized chart images (PNG bytes) for report
// embedding.
type ChartSource interface {
	Capture(chartID string) ([]byte, error)
}

// ChartStore is an in-memory ChartSource fed by the dashboard: the
// browser renders the charts and POSTs PNG snapshots here before
// requesting the report. Safe for concurrent use.
type ChartStore struct {
	mu     sync.RWMutex
	images map[string][]byte
}

// NewChartStore returns an empty store accepting the known chart IDs.
func NewChartStore() *ChartStore {
	return &ChartStore{images: make(map[string][]byte)}
}

// knownChartID reports whether id is one of the dashboard's charts.
func knownChartID(id string) bool {
	switch id {
	case ChartFinancialEvolution, ChartStatusBreakdown, ChartTopProgress:
		return true
	}
	return false
}

// Put stores a PNG snapshot for the given chart. Unknown IDs and empty
// payloads are rejected.
func (s *ChartStore) Put(chartID string, png []byte) error {
	if !knownChartID(chartID) {
		return fmt.Errorf("unknown chart id %q", chartID)
	}
	if len(png) == 0 {
		return errors.New("empty chart image")
	}
	cp := make([]byte, len(png))
	copy(cp, png)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.images[chartID] = cp
	return nil
}

// Capture implements ChartSource.
func (s *ChartStore) Capture(chartID string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	img, ok := s.images[chartID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrChartUnavailable, chartID)
	}
	return img, nil
}
