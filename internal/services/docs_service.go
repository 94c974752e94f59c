package services

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"despacho/internal/domain/models"
	"despacho/internal/repositories"
	"despacho/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// DocsService genera los documentos imprimibles: boleto térmico por
// pasajero, guía de paquetería por duplicado y reporte de despacho
// tamaño carta.
type DocsService struct {
	PasajeroRepo repositories.PasajeroRepository
	PaqueteRepo  repositories.PaqueteRepository
	CorridasRepo repositories.CorridasRepository
	RequestID    string
	LoadBoleto   func(int64) (boletoData, error)
	LoadGuia     func(int64) (guiaData, error)
	Now          func() time.Time
}

type boletoData struct {
	Pasajero models.Pasajero
	Corrida  models.Corrida
}

type guiaData struct {
	Paquete models.Paquete
	Corrida models.Corrida
}

// BoletoOptions controls the thermal-printer page geometry.
type BoletoOptions struct {
	WidthMm  float64
	MarginMm float64
	Escala   float64
}

func (o BoletoOptions) normalized() BoletoOptions {
	if o.WidthMm <= 0 {
		o.WidthMm = 58
	}
	if o.MarginMm < 0 || o.MarginMm*2 >= o.WidthMm {
		o.MarginMm = 4
	}
	if o.Escala <= 0 {
		o.Escala = 1
	}
	return o
}

func (s DocsService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return utils.NowLocal()
}

func (s DocsService) GenerarBoleto(pasajeroID int64, opts BoletoOptions) ([]byte, string, error) {
	d, err := s.loadBoleto(pasajeroID)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "docs", "generar_boleto", fmt.Sprintf("pasajero_id=%d", pasajeroID))
	return buildBoletoPDF(d, opts, s.now())
}

func (s DocsService) GenerarGuia(paqueteID int64) ([]byte, string, error) {
	d, err := s.loadGuia(paqueteID)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "docs", "generar_guia", fmt.Sprintf("paquete_id=%d", paqueteID))
	return buildGuiaPDF(d, s.now())
}

func (s DocsService) GenerarReporteDespacho(rep models.ReporteDespacho, observaciones string) ([]byte, string, error) {
	utils.LogEvent(s.RequestID, "docs", "generar_reporte", fmt.Sprintf("corridas=%d", len(rep.Corridas)))
	return buildReportePDF(rep, observaciones)
}

func (s DocsService) loadBoleto(pasajeroID int64) (boletoData, error) {
	if s.LoadBoleto != nil {
		return s.LoadBoleto(pasajeroID)
	}
	var out boletoData
	p, err := s.PasajeroRepo.GetByID(pasajeroID)
	if err != nil {
		return out, err
	}
	out.Pasajero = p
	if p.CorridaID > 0 {
		if c, err := s.CorridasRepo.GetByID(p.CorridaID); err == nil {
			out.Corrida = c
		}
	}
	return out, nil
}

func (s DocsService) loadGuia(paqueteID int64) (guiaData, error) {
	if s.LoadGuia != nil {
		return s.LoadGuia(paqueteID)
	}
	var out guiaData
	q, err := s.PaqueteRepo.GetByID(paqueteID)
	if err != nil {
		return out, err
	}
	out.Paquete = q
	if q.CorridaID > 0 {
		if c, err := s.CorridasRepo.GetByID(q.CorridaID); err == nil {
			out.Corrida = c
		}
	}
	return out, nil
}

// ==============================
// Boleto (ticket térmico)
// ==============================

func buildBoletoPDF(d boletoData, opts BoletoOptions, now time.Time) ([]byte, string, error) {
	opts = opts.normalized()

	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "mm",
		Size:           gofpdf.SizeType{Wd: opts.WidthMm, Ht: 160},
	})
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle("Boleto", true)
	pdf.SetMargins(opts.MarginMm, opts.MarginMm, opts.MarginMm)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	usable := opts.WidthMm - 2*opts.MarginMm
	line := 4.2 * opts.Escala

	pdf.SetFont("Helvetica", "B", 9*opts.Escala)
	pdf.CellFormat(usable, line+1, tr("TRANSPORTES TUXTLA-YAJALÓN"), "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 7*opts.Escala)
	pdf.CellFormat(usable, line, tr("BOLETO DE PASAJE"), "", 1, "C", false, 0, "")
	pdf.Ln(1.5)

	origen, destino := DisplayRoute(d.Corrida, d.Pasajero.FormaPago)
	lugarPago := CashTerminalLabel(d.Corrida, d.Pasajero.Importe, d.Pasajero.FormaPago)

	rows := [][2]string{
		{"Folio", utils.FirstNonEmpty(d.Pasajero.Folio, "-")},
		{"Pasajero", d.Pasajero.NombreCompleto()},
		{"Asiento", fmt.Sprintf("%d", d.Pasajero.Asiento)},
		{"Origen", utils.FirstNonEmpty(origen, "-")},
		{"Destino", utils.FirstNonEmpty(destino, "-")},
		{"Pagado en", lugarPago},
		{"Importe", utils.FormatPesos(d.Pasajero.Importe)},
		{"Fecha venta", utils.FormatFecha(now)},
	}

	labelW := usable * 0.42
	pdf.SetFont("Helvetica", "", 7*opts.Escala)
	for _, r := range rows {
		pdf.CellFormat(labelW, line, tr(r[0]+":"), "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "B", 7*opts.Escala)
		pdf.CellFormat(usable-labelW, line, tr(r[1]), "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 7*opts.Escala)
	}

	pdf.Ln(2)
	pdf.SetFont("Helvetica", "I", 6*opts.Escala)
	pdf.MultiCell(usable, line-1, tr("Conserve su boleto durante el viaje. Válido únicamente para la corrida indicada."), "", "C", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}
	filename := fmt.Sprintf("BOLETO_%s.pdf", utils.SafeFilenamePart(d.Pasajero.Folio))
	return buf.Bytes(), filename, nil
}

// ==============================
// Guía de paquetería (duplicado)
// ==============================

func buildGuiaPDF(d guiaData, now time.Time) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "Letter", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle("Guía de paquetería", true)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	// la misma guía se imprime dos veces en la misma hoja: una copia se
	// queda en oficina y la otra viaja con el paquete
	drawGuiaBlock(pdf, tr, d, now, 12, "COPIA OFICINA")
	pdf.SetLineWidth(0.2)
	pdf.SetDashPattern([]float64{2, 2}, 0)
	pdf.Line(10, 138, 206, 138)
	pdf.SetDashPattern([]float64{}, 0)
	drawGuiaBlock(pdf, tr, d, now, 144, "COPIA VIAJE")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}
	filename := fmt.Sprintf("GUIA_%s.pdf", utils.SafeFilenamePart(d.Paquete.Folio))
	return buf.Bytes(), filename, nil
}

func drawGuiaBlock(pdf *gofpdf.Fpdf, tr func(string) string, d guiaData, now time.Time, y float64, copia string) {
	left := 14.0
	width := 188.0

	pdf.SetXY(left, y)
	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(width*0.7, 7, tr("TRANSPORTES TUXTLA-YAJALÓN"), "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 8)
	pdf.CellFormat(width*0.3, 7, tr(copia), "", 1, "R", false, 0, "")

	pdf.SetX(left)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(width*0.7, 6, tr("GUÍA DE PAQUETERÍA"), "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(width*0.3, 6, tr("Folio: "+d.Paquete.Folio), "", 1, "R", false, 0, "")
	pdf.Ln(2)

	// banda de cobro: POR COBRAR contra PAGADO, bien visible
	banner := "PAGADO"
	if d.Paquete.PorCobrar {
		banner = "POR COBRAR"
		pdf.SetFillColor(60, 60, 60)
		pdf.SetTextColor(255, 255, 255)
	} else {
		pdf.SetFillColor(225, 225, 225)
		pdf.SetTextColor(0, 0, 0)
	}
	pdf.SetX(left)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(width, 8, tr(banner), "1", 1, "C", true, 0, "")
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(2)

	rows := [][2]string{
		{"Remitente", d.Paquete.Remitente},
		{"Destinatario", d.Paquete.Destinatario},
		{"Contenido", d.Paquete.Contenido},
		{"Origen", d.Corrida.Origen},
		{"Destino", d.Corrida.Destino},
		{"Importe", utils.FormatPesos(d.Paquete.Importe)},
		{"Fecha", utils.FormatFecha(now)},
	}

	pdf.SetFont("Helvetica", "", 10)
	for _, r := range rows {
		pdf.SetX(left)
		pdf.CellFormat(width*0.25, 6, tr(r[0]+":"), "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(width*0.75, 6, tr(r[1]), "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
	}

	pdf.Ln(3)
	pdf.SetX(left)
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(width/2, 6, tr("________________________"), "", 0, "C", false, 0, "")
	pdf.CellFormat(width/2, 6, tr("________________________"), "", 1, "C", false, 0, "")
	pdf.SetX(left)
	pdf.CellFormat(width/2, 5, tr("Entrega"), "", 0, "C", false, 0, "")
	pdf.CellFormat(width/2, 5, tr("Recibe"), "", 1, "C", false, 0, "")
}

// ==============================
// Reporte de despacho (carta)
// ==============================

type resumenLinea struct {
	Etiqueta string
	Importe  float64
}

// resumenLineas lists the report summary in its fixed printing order.
func resumenLineas(rep models.ReporteDespacho) []resumenLinea {
	return []resumenLinea{
		{"Ingreso por pasaje", rep.IngresoPasaje},
		{"Ingreso por paquetería", rep.IngresoPaqueteria},
		{"Comisión", rep.Comision},
		{"Por cobrar a la llegada", rep.PorCobrarLlegada},
		{"Pagado en Tuxtla", rep.PagadoTuxtla},
		{"Pagado en Yajalón", rep.PagadoYajalon},
		{"Pagado en Ocosingo", rep.PagadoOcosingo},
		{"Otros descuentos", rep.TotalDescuentos},
		{"TOTAL", rep.TotalNeto},
	}
}

// incluirObservaciones decides whether the free-text section prints at
// all; whitespace-only input is dropped entirely (no empty heading).
func incluirObservaciones(observaciones string) bool {
	return strings.TrimSpace(observaciones) != ""
}

func buildReportePDF(rep models.ReporteDespacho, observaciones string) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "Letter", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle("Despacho diario", true)

	pdf.SetHeaderFunc(func() {
		pdf.SetFont("Helvetica", "B", 14)
		pdf.CellFormat(0, 8, tr("TRANSPORTES TUXTLA-YAJALÓN"), "", 1, "C", false, 0, "")
		pdf.SetFont("Helvetica", "", 11)
		pdf.CellFormat(0, 6, tr("DESPACHO DIARIO "+rep.FechaReporte), "", 1, "C", false, 0, "")
		pdf.Ln(4)
	})

	// el pie necesita el total de páginas; gofpdf lo resuelve en dos
	// pasadas: acomoda el contenido y al cerrar sustituye {nb}
	pdf.AliasNbPages("")
	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont("Helvetica", "I", 8)
		pdf.CellFormat(0, 10, tr(fmt.Sprintf("Página %d de {nb}", pdf.PageNo())), "", 0, "C", false, 0, "")
	})

	pdf.SetAutoPageBreak(true, 20)
	pdf.AddPage()

	// tabla de corridas incluidas
	cols := []struct {
		title string
		width float64
		align string
	}{
		{"Folio", 34, "L"},
		{"Origen", 34, "L"},
		{"Destino", 34, "L"},
		{"Pasaje", 30, "R"},
		{"Paquetería", 30, "R"},
		{"Comisión", 26, "R"},
	}

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(235, 235, 235)
	for _, col := range cols {
		pdf.CellFormat(col.width, 7, tr(col.title), "1", 0, col.align, true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	for _, c := range rep.Corridas {
		cells := []string{
			c.Folio,
			c.Origen,
			c.Destino,
			utils.FormatMoney(c.IngresoPasaje),
			utils.FormatMoney(c.IngresoPaqueteria),
			utils.FormatMoney(c.Comision),
		}
		for i, col := range cols {
			pdf.CellFormat(col.width, 6, tr(cells[i]), "1", 0, col.align, false, 0, "")
		}
		pdf.Ln(-1)
	}
	if len(rep.Corridas) == 0 {
		pdf.CellFormat(188, 6, tr("Sin corridas en el periodo"), "1", 1, "C", false, 0, "")
	}
	pdf.Ln(6)

	// resumen en orden fijo
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(0, 6, tr("RESUMEN"), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	for _, l := range resumenLineas(rep) {
		if l.Etiqueta == "TOTAL" {
			pdf.SetFont("Helvetica", "B", 10)
		}
		pdf.CellFormat(120, 6, tr(l.Etiqueta), "", 0, "L", false, 0, "")
		pdf.CellFormat(40, 6, utils.FormatMoney(l.Importe), "", 1, "R", false, 0, "")
	}
	pdf.SetFont("Helvetica", "", 10)

	if len(rep.Descuentos) > 0 {
		pdf.Ln(3)
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(0, 6, tr("DESCUENTOS"), "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 9)
		for _, d := range rep.Descuentos {
			label := d.Concepto
			if strings.TrimSpace(d.Descripcion) != "" {
				label += " - " + d.Descripcion
			}
			pdf.CellFormat(120, 5, tr(label), "", 0, "L", false, 0, "")
			pdf.CellFormat(40, 5, utils.FormatMoney(d.Importe), "", 1, "R", false, 0, "")
		}
	}

	if incluirObservaciones(observaciones) {
		pdf.Ln(4)
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(0, 6, tr("OBSERVACIONES"), "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 9)
		pdf.MultiCell(188, 5, tr(strings.TrimSpace(observaciones)), "", "L", false)
	}

	pdf.Ln(5)
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(0, 5, tr("Corte desde: "+rep.FechaCorte), "", 1, "L", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}
	filename := fmt.Sprintf("DESPACHO_%s.pdf", utils.SafeFilenamePart(rep.FechaReporte))
	return buf.Bytes(), filename, nil
}
