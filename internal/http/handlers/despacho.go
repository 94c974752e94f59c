package handlers

import (
	"net/http"
	"strings"
	"time"

	intconfig "despacho/internal/config"
	"despacho/internal/domain/models"
	"despacho/internal/http/middleware"
	"despacho/internal/repositories"
	"despacho/internal/services"
	"despacho/internal/utils"

	"github.com/gin-gonic/gin"
)

// reporteRequest is the despacho request the taquilla sends. Descuentos
// travel in the payload and are never persisted.
type reporteRequest struct {
	CorridaID     int64              `json:"corridaId"`
	Terminal      string             `json:"terminal"`
	Desde         string             `json:"desde"`
	Descuentos    []models.Descuento `json:"descuentos"`
	Observaciones string             `json:"observaciones"`
}

func (r reporteRequest) scope() (services.ReporteScope, error) {
	scope := services.ReporteScope{
		CorridaID: r.CorridaID,
		Terminal:  r.Terminal,
	}
	if strings.TrimSpace(r.Desde) != "" {
		desde, err := utils.ParseDate(r.Desde)
		if err != nil {
			return scope, err
		}
		scope.Desde = desde
	}
	return scope, nil
}

func newSettlementService(c *gin.Context) services.SettlementService {
	return services.SettlementService{
		CorridasRepo: repositories.CorridasRepository{},
		RequestID:    middleware.GetRequestID(c),
	}
}

// POST /api/despacho/reporte
func PostReporteDespacho(c *gin.Context) {
	var req reporteRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	scope, err := req.scope()
	if err != nil {
		RespondError(c, http.StatusBadRequest, "fecha desde no válida, use AAAA-MM-DD", err)
		return
	}

	rep, err := newSettlementService(c).BuildReporte(scope, req.Descuentos)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, rep)
}

// POST /api/despacho/reporte/pdf
//
// Renders the despacho as a letter-size PDF. With ?guardar=1 the file
// also lands in the export directory; a failed save never blocks the
// download, it only surfaces in the X-Export headers.
func PostReporteDespachoPDF(c *gin.Context) {
	var req reporteRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	scope, err := req.scope()
	if err != nil {
		RespondError(c, http.StatusBadRequest, "fecha desde no válida, use AAAA-MM-DD", err)
		return
	}

	rep, err := newSettlementService(c).BuildReporte(scope, req.Descuentos)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	docs := services.DocsService{RequestID: middleware.GetRequestID(c)}
	pdfBytes, filename, err := docs.GenerarReporteDespacho(rep, req.Observaciones)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "no se pudo generar el PDF del despacho", err)
		return
	}

	if c.Query("guardar") == "1" {
		exp := services.ExportService{
			Dir:       intconfig.CurrentEnv().ExportDir,
			RequestID: middleware.GetRequestID(c),
		}
		result := exp.SavePDF(pdfBytes, filename)
		if result.OK {
			c.Header("X-Export-Path", result.Path)
		} else {
			c.Header("X-Export-Error", result.Message)
		}
	}

	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Disposition", `inline; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}

// GET /api/despacho/corte
//
// Convenience endpoint: the default rolling window for a terminal,
// starting yesterday at 00:00 local time.
func GetCorteDefault(c *gin.Context) {
	terminal := c.Query("terminal")
	if utils.MatchTerminal(terminal) == "" {
		RespondError(c, http.StatusBadRequest, "terminal desconocida", nil)
		return
	}

	desde := utils.StartOfYesterday(utils.NowLocal())
	c.JSON(http.StatusOK, gin.H{
		"terminal":      terminal,
		"terminalLabel": utils.TerminalLabel(utils.MatchTerminal(terminal)),
		"desde":         desde.Format(time.DateOnly),
	})
}
