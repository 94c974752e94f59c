package services

import (
	"fmt"
	"strings"
	"time"

	"despacho/internal/domain"
	"despacho/internal/domain/models"
	"despacho/internal/repositories"
	"despacho/internal/utils"
)

// ReporteScope selects which corridas enter the daily settlement.
// CorridaID > 0 closes out a single trip; otherwise Terminal picks all
// outbound corridas of that terminal departing at Desde or later.
type ReporteScope struct {
	CorridaID int64
	Terminal  string
	Desde     time.Time
}

// SettlementService computes the despacho diario on demand.
type SettlementService struct {
	CorridasRepo repositories.CorridasRepository
	RequestID    string
	Loader       func() ([]models.Corrida, error)
	Now          func() time.Time
}

func (s SettlementService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return utils.NowLocal()
}

// BuildReporte loads the current corridas and folds them into a report.
func (s SettlementService) BuildReporte(scope ReporteScope, descuentos []models.Descuento) (models.ReporteDespacho, error) {
	corridas, err := s.loadCorridas()
	if err != nil {
		return models.ReporteDespacho{}, err
	}
	if scope.CorridaID <= 0 && utils.MatchTerminal(scope.Terminal) == "" {
		return models.ReporteDespacho{}, domain.ValidationError{Field: "terminal", Msg: "terminal desconocida"}
	}
	utils.LogEvent(s.RequestID, "despacho", "build_reporte",
		fmt.Sprintf("corrida_id=%d terminal=%s corridas=%d", scope.CorridaID, scope.Terminal, len(corridas)))
	return BuildReporte(corridas, descuentos, scope, s.now()), nil
}

func (s SettlementService) loadCorridas() ([]models.Corrida, error) {
	if s.Loader != nil {
		return s.Loader()
	}
	return s.CorridasRepo.List()
}

// BuildReporte is a pure fold: same inputs, bit-identical report. It
// never mutates the corridas and accumulates in slice order, so repeated
// calls agree to the last bit.
func BuildReporte(corridas []models.Corrida, descuentos []models.Descuento, scope ReporteScope, now time.Time) models.ReporteDespacho {
	desde := scope.Desde
	if desde.IsZero() {
		desde = utils.StartOfYesterday(now)
	}

	rep := models.ReporteDespacho{
		FechaReporte: utils.FormatFecha(now),
		FechaCorte:   utils.FormatFecha(desde),
		Corridas:     []models.CorridaResumen{},
		Descuentos:   []models.Descuento{},
	}

	for _, c := range corridas {
		if !inScope(c, scope, desde) {
			continue
		}
		res := foldCorrida(&rep, c)
		rep.Corridas = append(rep.Corridas, res)
	}

	for _, d := range descuentos {
		rep.Descuentos = append(rep.Descuentos, d)
		rep.TotalDescuentos += d.Importe
	}

	// El neto es el efectivo que queda por cuadrar en esta terminal:
	// del ingreso bruto se resta todo lo ya cobrado en otro punto o
	// pendiente de cobrar a la llegada. Puede quedar negativo y se
	// muestra tal cual.
	rep.TotalNeto = rep.IngresoPasaje + rep.IngresoPaqueteria -
		rep.Comision - rep.TotalDescuentos -
		rep.PagadoTuxtla - rep.PagadoYajalon - rep.PagadoOcosingo -
		rep.PorCobrarLlegada

	return rep
}

func inScope(c models.Corrida, scope ReporteScope, desde time.Time) bool {
	if scope.CorridaID > 0 {
		return c.ID == scope.CorridaID
	}
	if utils.MatchTerminal(c.Origen) != utils.MatchTerminal(scope.Terminal) {
		return false
	}
	salida, err := utils.ParseDateTime(c.FechaSalida)
	if err != nil {
		// fecha ilegible: la corrida no entra en la ventana, no se aborta
		return false
	}
	return !salida.Before(desde)
}

func foldCorrida(rep *models.ReporteDespacho, c models.Corrida) models.CorridaResumen {
	res := models.CorridaResumen{
		CorridaID: c.ID,
		Folio:     c.Folio,
		Origen:    c.Origen,
		Destino:   c.Destino,
		Comision:  c.Comision,
	}

	for _, p := range c.Pasajeros {
		res.IngresoPasaje += p.Importe
		rep.IngresoPasaje += p.Importe
		if strings.TrimSpace(p.FormaPago) == models.PagoOcosingo {
			rep.PagadoOcosingo += p.Importe
			continue
		}
		split := AttributeCash(c, p.Importe, p.FormaPago)
		rep.PagadoTuxtla += split.Tuxtla
		rep.PagadoYajalon += split.Yajalon
	}

	for _, q := range c.Paquetes {
		res.IngresoPaqueteria += q.Importe
		rep.IngresoPaqueteria += q.Importe
		if q.PorCobrar {
			rep.PorCobrarLlegada += q.Importe
			continue
		}
		split := AttributeParcelCash(c, q)
		rep.PagadoTuxtla += split.Tuxtla
		rep.PagadoYajalon += split.Yajalon
	}

	// comisión precalculada río arriba; ausente cuenta como 0
	rep.Comision += c.Comision

	return res
}
