// ABOUTME: Manifest import endpoint accepting XLSX spreadsheet uploads
// ABOUTME: Parses rows into cargo items and returns a classified manifest

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/twaldron/airlift-planner/manifest"
	"github.com/twaldron/airlift-planner/models"
)

type importResponse struct {
	Manifest    models.ClassifiedManifest `json:"manifest"`
	ItemCount   int                       `json:"item_count"`
	SkippedRows []manifest.SkippedRow     `json:"skipped_rows"`
	TotalRows   int                       `json:"total_rows"`
}

// ImportManifest accepts a multipart upload in the "file" field, parses
// it as an XLSX deployment manifest, and classifies the rows. Rows the
// parser cannot use come back with per-row reasons instead of failing
// the whole upload.
func (h *Handler) ImportManifest(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	maxBytes := int64(5 << 20)
	if h.cfg != nil && h.cfg.MaxImportBytes > 0 {
		maxBytes = h.cfg.MaxImportBytes
	}
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes)

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, `Upload a spreadsheet in the "file" form field`, http.StatusBadRequest)
		return
	}
	defer file.Close()

	imported, err := manifest.ImportXLSX(file)
	if err != nil {
		writeError(w, "Could not read spreadsheet: "+err.Error(), http.StatusBadRequest)
		return
	}

	slog.Info("Manifest imported",
		"file", header.Filename,
		"items", len(imported.Items),
		"skipped", len(imported.Skipped),
	)

	writeJSON(w, http.StatusOK, importResponse{
		Manifest:    manifest.Classify(imported.Items),
		ItemCount:   len(imported.Items),
		SkippedRows: imported.Skipped,
		TotalRows:   imported.Total,
	})
}
