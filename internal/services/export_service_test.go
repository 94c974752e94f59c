package services

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestExportServiceSavePDF(t *testing.T) {
	dir := t.TempDir()
	svc := ExportService{Dir: dir}

	res := svc.SavePDF([]byte("%PDF-1.4 contenido"), "DESPACHO_10_03_2026.pdf")
	if !res.OK {
		t.Fatalf("save failed: %s", res.Message)
	}
	if filepath.Dir(res.Path) != dir {
		t.Fatalf("saved outside export dir: %s", res.Path)
	}
	if _, err := os.Stat(res.Path); err != nil {
		t.Fatalf("saved file missing: %v", err)
	}
}

func TestExportServiceEmptyDocument(t *testing.T) {
	svc := ExportService{Dir: t.TempDir()}

	res := svc.SavePDF(nil, "vacio.pdf")
	if res.OK {
		t.Fatalf("empty document must not save")
	}
	if res.Message == "" {
		t.Fatalf("failure should carry a message")
	}
}

func TestExportServiceCollisionGetsSuffix(t *testing.T) {
	dir := t.TempDir()
	svc := ExportService{Dir: dir}

	first := svc.SavePDF([]byte("uno"), "BOLETO_PAS-1.pdf")
	second := svc.SavePDF([]byte("dos"), "BOLETO_PAS-1.pdf")
	if !first.OK || !second.OK {
		t.Fatalf("both saves should succeed: %+v %+v", first, second)
	}
	if first.Path == second.Path {
		t.Fatalf("collision should produce a distinct filename, both were %s", first.Path)
	}
}

func TestExportServiceSanitizesName(t *testing.T) {
	dir := t.TempDir()
	svc := ExportService{Dir: dir}

	res := svc.SavePDF([]byte("datos"), `boleto raro/09:30*.pdf`)
	if !res.OK {
		t.Fatalf("save failed: %s", res.Message)
	}
	base := filepath.Base(res.Path)
	for _, c := range []string{":", "*", " "} {
		if strings.Contains(base, c) {
			t.Fatalf("sanitized name %q still contains %q", base, c)
		}
	}
}
