package handlers

import (
	"io"
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase/core"

	"geoportal/services"
)

// maxChartUpload bounds a single chart snapshot payload (PNG).
const maxChartUpload = 4 << 20

// HandleChartSnapshot stores one rasterized chart PNG posted by the
// dashboard. The BI report embeds whatever snapshots are present at
// generation time.
func HandleChartSnapshot(store *services.ChartStore) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		chartID := e.Request.PathValue("chartId")
		if chartID == "" {
			return e.String(http.StatusBadRequest, "Missing chart ID")
		}

		body, err := io.ReadAll(io.LimitReader(e.Request.Body, maxChartUpload+1))
		if err != nil {
			log.Printf("charts: read snapshot %s: %v", chartID, err)
			return e.String(http.StatusBadRequest, "Failed to read chart image")
		}
		if len(body) > maxChartUpload {
			return e.String(http.StatusRequestEntityTooLarge, "Chart image too large")
		}

		if err := store.Put(chartID, body); err != nil {
			log.Printf("charts: store snapshot %s: %v", chartID, err)
			return e.String(http.StatusBadRequest, "Invalid chart snapshot")
		}

		return e.NoContent(http.StatusNoContent)
	}
}
