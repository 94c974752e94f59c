package services

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"despacho/internal/domain"
	"despacho/internal/domain/models"
)

func fixedNow() time.Time {
	return time.Date(2026, 3, 10, 14, 30, 0, 0, time.Local)
}

func corridaCompleta() models.Corrida {
	return models.Corrida{
		ID:          7,
		Folio:       "COR-7",
		Origen:      "Tuxtla Gutiérrez",
		Destino:     "Yajalón",
		FechaSalida: "2026-03-10 08:00:00",
		Comision:    50,
		Pasajeros: []models.Pasajero{
			{ID: 1, Importe: 150, FormaPago: models.PagoOrigen},
			{ID: 2, Importe: 200, FormaPago: models.PagoDestino},
			{ID: 3, Importe: 100, FormaPago: models.PagoOcosingo},
		},
		Paquetes: []models.Paquete{
			{ID: 1, Importe: 80},
			{ID: 2, Importe: 120, PorCobrar: true},
		},
	}
}

func TestBuildReporteSingleCorrida(t *testing.T) {
	corridas := []models.Corrida{corridaCompleta()}
	descuentos := []models.Descuento{{Concepto: "Combustible", Importe: 30}}

	rep := BuildReporte(corridas, descuentos, ReporteScope{CorridaID: 7}, fixedNow())

	if len(rep.Corridas) != 1 {
		t.Fatalf("expected 1 corrida in report, got %d", len(rep.Corridas))
	}
	if rep.IngresoPasaje != 450 {
		t.Fatalf("IngresoPasaje = %v, want 450", rep.IngresoPasaje)
	}
	if rep.IngresoPaqueteria != 200 {
		t.Fatalf("IngresoPaqueteria = %v, want 200", rep.IngresoPaqueteria)
	}
	if rep.PagadoTuxtla != 230 {
		t.Fatalf("PagadoTuxtla = %v, want 230 (150 fare + 80 parcel)", rep.PagadoTuxtla)
	}
	if rep.PagadoYajalon != 200 {
		t.Fatalf("PagadoYajalon = %v, want 200", rep.PagadoYajalon)
	}
	if rep.PagadoOcosingo != 100 {
		t.Fatalf("PagadoOcosingo = %v, want 100", rep.PagadoOcosingo)
	}
	if rep.PorCobrarLlegada != 120 {
		t.Fatalf("PorCobrarLlegada = %v, want 120", rep.PorCobrarLlegada)
	}
	if rep.Comision != 50 {
		t.Fatalf("Comision = %v, want 50", rep.Comision)
	}
	if rep.TotalDescuentos != 30 {
		t.Fatalf("TotalDescuentos = %v, want 30", rep.TotalDescuentos)
	}

	// 650 - 50 - 30 - 230 - 200 - 100 - 120; negative is reported as is
	if rep.TotalNeto != -80 {
		t.Fatalf("TotalNeto = %v, want -80", rep.TotalNeto)
	}
}

func TestBuildReporteNetoConRutaNoUbicable(t *testing.T) {
	// cash on an unmatched leg stays out of every drawer bucket, so the
	// net is what the office still has to collect
	corridas := []models.Corrida{{
		ID:          9,
		Folio:       "COR-9",
		Origen:      "Tuxtla Gutiérrez",
		Destino:     "Comitán",
		FechaSalida: "2026-03-10 09:00:00",
		Comision:    60,
		Pasajeros: []models.Pasajero{
			{ID: 1, Importe: 400, FormaPago: models.PagoDestino},
		},
	}}
	descuentos := []models.Descuento{{Concepto: "Maniobras", Importe: 40}}

	rep := BuildReporte(corridas, descuentos, ReporteScope{CorridaID: 9}, fixedNow())

	if rep.PagadoTuxtla != 0 || rep.PagadoYajalon != 0 || rep.PagadoOcosingo != 0 {
		t.Fatalf("no drawer should hold the cash, got T=%v Y=%v O=%v",
			rep.PagadoTuxtla, rep.PagadoYajalon, rep.PagadoOcosingo)
	}
	if rep.TotalNeto != 300 {
		t.Fatalf("TotalNeto = %v, want 300", rep.TotalNeto)
	}
}

func TestBuildReporteEmpty(t *testing.T) {
	rep := BuildReporte(nil, nil, ReporteScope{Terminal: "Tuxtla"}, fixedNow())

	if len(rep.Corridas) != 0 {
		t.Fatalf("expected no corridas, got %d", len(rep.Corridas))
	}
	if rep.IngresoPasaje != 0 || rep.IngresoPaqueteria != 0 || rep.TotalNeto != 0 {
		t.Fatalf("empty input must yield zero totals, got %+v", rep)
	}
	if rep.Corridas == nil || rep.Descuentos == nil {
		t.Fatalf("slices must be non-nil for JSON rendering")
	}
}

func TestBuildReporteIdempotent(t *testing.T) {
	corridas := []models.Corrida{corridaCompleta()}
	descuentos := []models.Descuento{{Concepto: "Caseta", Importe: 12.5}}
	scope := ReporteScope{CorridaID: 7}

	first := BuildReporte(corridas, descuentos, scope, fixedNow())
	second := BuildReporte(corridas, descuentos, scope, fixedNow())

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("same inputs produced different reports:\n%+v\n%+v", first, second)
	}
}

func TestBuildReporteRollingWindow(t *testing.T) {
	ayer := corridaCompleta()
	ayer.ID = 10
	ayer.FechaSalida = "2026-03-09 00:00:00" // exactly at the cutoff

	vieja := corridaCompleta()
	vieja.ID = 11
	vieja.FechaSalida = "2026-03-08 23:59:59"

	otraTerminal := corridaCompleta()
	otraTerminal.ID = 12
	otraTerminal.Origen = "Yajalón"
	otraTerminal.Destino = "Tuxtla Gutiérrez"

	ilegible := corridaCompleta()
	ilegible.ID = 13
	ilegible.FechaSalida = "hoy temprano"

	rep := BuildReporte(
		[]models.Corrida{ayer, vieja, otraTerminal, ilegible},
		nil,
		ReporteScope{Terminal: "tuxtla"},
		fixedNow(),
	)

	if len(rep.Corridas) != 1 {
		t.Fatalf("expected only the in-window corrida, got %d", len(rep.Corridas))
	}
	if rep.Corridas[0].CorridaID != 10 {
		t.Fatalf("wrong corrida selected: %d", rep.Corridas[0].CorridaID)
	}
}

func TestBuildReporteExplicitDesde(t *testing.T) {
	reciente := corridaCompleta()
	reciente.ID = 20
	reciente.FechaSalida = "2026-03-10 08:00:00"

	anterior := corridaCompleta()
	anterior.ID = 21
	anterior.FechaSalida = "2026-03-09 08:00:00"

	desde := time.Date(2026, 3, 10, 0, 0, 0, 0, time.Local)
	rep := BuildReporte(
		[]models.Corrida{reciente, anterior},
		nil,
		ReporteScope{Terminal: "Tuxtla Gutiérrez", Desde: desde},
		fixedNow(),
	)

	if len(rep.Corridas) != 1 || rep.Corridas[0].CorridaID != 20 {
		t.Fatalf("explicit desde not honored: %+v", rep.Corridas)
	}
	if rep.FechaCorte != "10/03/2026" {
		t.Fatalf("FechaCorte = %q, want 10/03/2026", rep.FechaCorte)
	}
}

func TestSettlementServiceUnknownTerminal(t *testing.T) {
	svc := SettlementService{
		Loader: func() ([]models.Corrida, error) { return nil, nil },
		Now:    fixedNow,
	}

	_, err := svc.BuildReporte(ReporteScope{Terminal: "Palenque"}, nil)
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestSettlementServiceLoaderError(t *testing.T) {
	svc := SettlementService{
		Loader: func() ([]models.Corrida, error) { return nil, errors.New("db caída") },
		Now:    fixedNow,
	}

	_, err := svc.BuildReporte(ReporteScope{CorridaID: 7}, nil)
	if err == nil {
		t.Fatalf("expected loader error to surface")
	}
}

func TestSettlementServiceSingleTrip(t *testing.T) {
	svc := SettlementService{
		Loader: func() ([]models.Corrida, error) {
			return []models.Corrida{corridaCompleta()}, nil
		},
		Now: fixedNow,
	}

	rep, err := svc.BuildReporte(ReporteScope{CorridaID: 7}, nil)
	if err != nil {
		t.Fatalf("BuildReporte returned error: %v", err)
	}
	if len(rep.Corridas) != 1 || rep.Corridas[0].Folio != "COR-7" {
		t.Fatalf("unexpected report corridas: %+v", rep.Corridas)
	}
}
