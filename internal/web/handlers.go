package web

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/multisheets/multisheets/internal/logging"
	"github.com/multisheets/multisheets/internal/sheet"
)

const (
	// workbookContentType is the xlsx media type.
	workbookContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

	// workbookFilename is the attachment name suggested for encoded workbooks.
	workbookFilename = "archivo_multisheets.xlsx"
)

// Version identifies the running build. Release builds override it with
// -ldflags "-X github.com/multisheets/multisheets/internal/web.Version=...".
var Version = "dev"

// workbookPayload is the JSON shape shared by the encode request body and the
// decode response body, so the two operations compose.
type workbookPayload struct {
	Sheets []sheet.Sheet `json:"sheets"`
}

// handleHealth reports service liveness and the running build.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{"status": "ok", "version": Version})
}

// handleEncodeWorkbook builds an xlsx workbook from the JSON body and streams
// it back as an attachment.
func (s *Server) handleEncodeWorkbook(w http.ResponseWriter, r *http.Request) {
	conversionID := uuid.NewString()
	logger := logging.WithFields(r.Context(), "conversion_id", conversionID)

	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.Convert.MaxBodySize)

	var payload workbookPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		s.respondError(w, r, fmt.Errorf("invalid request body: %w", err), http.StatusBadRequest)
		return
	}

	if len(payload.Sheets) > s.cfg.Convert.MaxSheets {
		s.respondError(w, r, fmt.Errorf("too many sheets: %d exceeds the limit of %d",
			len(payload.Sheets), s.cfg.Convert.MaxSheets), http.StatusBadRequest)
		return
	}

	data, err := sheet.Encode(payload.Sheets)
	if err != nil {
		s.respondError(w, r, err, statusFor(err))
		return
	}

	logger.Info("workbook encoded", "sheets", len(payload.Sheets), "bytes", len(data))

	w.Header().Set("Content-Type", workbookContentType)
	w.Header().Set("Content-Disposition", "attachment; filename="+workbookFilename)
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.Header().Set("X-Conversion-Id", conversionID)
	if _, err := w.Write(data); err != nil {
		logger.Error("writing workbook response", "error", err)
	}
}

// handleDecodeWorkbook parses an uploaded workbook and returns the equivalent
// JSON description.
func (s *Server) handleDecodeWorkbook(w http.ResponseWriter, r *http.Request) {
	conversionID := uuid.NewString()
	logger := logging.WithFields(r.Context(), "conversion_id", conversionID)

	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.Convert.MaxUploadSize)

	if err := r.ParseMultipartForm(s.cfg.Convert.MaxUploadSize); err != nil {
		s.respondError(w, r, fmt.Errorf("invalid multipart form: %w", err), http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		s.respondError(w, r, errors.New("no file provided"), http.StatusBadRequest)
		return
	}
	defer file.Close()

	if !hasWorkbookExtension(header.Filename) {
		s.respondError(w, r,
			fmt.Errorf("unsupported file extension %q", filepath.Ext(header.Filename)),
			http.StatusBadRequest)
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		s.respondError(w, r, fmt.Errorf("reading upload: %w", err), http.StatusInternalServerError)
		return
	}

	sheets, err := sheet.Decode(data)
	if err != nil {
		s.respondError(w, r, err, statusFor(err))
		return
	}

	logger.Info("workbook decoded", "file", header.Filename, "sheets", len(sheets))

	w.Header().Set("X-Conversion-Id", conversionID)
	writeJSON(w, workbookPayload{Sheets: sheets})
}

// hasWorkbookExtension reports whether the filename ends in a supported
// workbook extension.
func hasWorkbookExtension(filename string) bool {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xlsx", ".xlsm":
		return true
	default:
		return false
	}
}
