package services

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"despacho/internal/utils"
)

// ExportResult mirrors what the front desk expects from a save request.
type ExportResult struct {
	OK      bool   `json:"ok"`
	Message string `json:"message,omitempty"`
	Path    string `json:"path,omitempty"`
}

// ExportService persists rendered PDFs under a configured directory.
// Saving is best effort: a failure comes back as {ok:false, message}
// and never interrupts the caller's flow.
type ExportService struct {
	Dir       string
	RequestID string
}

func (s ExportService) dir() string {
	if strings.TrimSpace(s.Dir) != "" {
		return s.Dir
	}
	return "exports"
}

// SavePDF writes the document with a sanitized filename; an existing
// file with the same name gets a timestamp suffix instead of being
// overwritten.
func (s ExportService) SavePDF(data []byte, suggested string) ExportResult {
	if len(data) == 0 {
		return ExportResult{OK: false, Message: "documento vacío"}
	}

	name := strings.TrimSpace(suggested)
	if name == "" {
		name = "documento.pdf"
	}
	if !strings.HasSuffix(strings.ToLower(name), ".pdf") {
		name += ".pdf"
	}
	base := utils.SafeFilenamePart(strings.TrimSuffix(name, ".pdf"))

	if err := os.MkdirAll(s.dir(), 0o755); err != nil {
		utils.LogEvent(s.RequestID, "export", "mkdir_error", err.Error())
		return ExportResult{OK: false, Message: "no se pudo crear el directorio de exportación: " + err.Error()}
	}

	path := filepath.Join(s.dir(), base+".pdf")
	if _, err := os.Stat(path); err == nil {
		path = filepath.Join(s.dir(), fmt.Sprintf("%s_%s.pdf", base, time.Now().Format("150405")))
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		utils.LogEvent(s.RequestID, "export", "write_error", err.Error())
		return ExportResult{OK: false, Message: "no se pudo guardar el PDF: " + err.Error()}
	}

	utils.LogEvent(s.RequestID, "export", "pdf_guardado", path)
	return ExportResult{OK: true, Path: path}
}
