package handlers

import (
	"net/http"
	"strconv"

	intconfig "despacho/internal/config"
	"despacho/internal/http/middleware"
	"despacho/internal/repositories"
	"despacho/internal/services"

	"github.com/gin-gonic/gin"
)

func newDocsService(c *gin.Context) services.DocsService {
	return services.DocsService{
		PasajeroRepo: repositories.PasajeroRepository{},
		PaqueteRepo:  repositories.PaqueteRepository{},
		CorridasRepo: repositories.CorridasRepository{},
		RequestID:    middleware.GetRequestID(c),
	}
}

// queryFloat returns -1 when the parameter is absent or malformed so
// the service falls back to its printer defaults.
func queryFloat(c *gin.Context, name string) float64 {
	v, err := strconv.ParseFloat(c.Query(name), 64)
	if err != nil {
		return -1
	}
	return v
}

func streamPDF(c *gin.Context, pdfBytes []byte, filename string) {
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

// GetPasajeroBoletoPDF returns the thermal ticket for one passenger.
// Page geometry is adjustable per printer: ?ancho=58&margen=4&escala=1.
func GetPasajeroBoletoPDF(c *gin.Context) {
	pid, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || pid <= 0 {
		respondError(c, http.StatusBadRequest, "invalid_pasajero_id", "id de pasajero no válido", err)
		return
	}

	opts := services.BoletoOptions{
		WidthMm:  queryFloat(c, "ancho"),
		MarginMm: queryFloat(c, "margen"),
		Escala:   queryFloat(c, "escala"),
	}

	pdfBytes, filename, err := newDocsService(c).GenerarBoleto(pid, opts)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	streamPDF(c, pdfBytes, filename)
}

// GetPaqueteGuiaPDF returns the duplicated waybill for one parcel.
func GetPaqueteGuiaPDF(c *gin.Context) {
	qid, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || qid <= 0 {
		respondError(c, http.StatusBadRequest, "invalid_paquete_id", "id de paquete no válido", err)
		return
	}

	pdfBytes, filename, err := newDocsService(c).GenerarGuia(qid)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	streamPDF(c, pdfBytes, filename)
}
