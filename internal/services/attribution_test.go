package services

import (
	"testing"

	"despacho/internal/domain/models"
	"despacho/internal/utils"
)

func corridaTuxtlaYajalon() models.Corrida {
	return models.Corrida{
		ID:      1,
		Folio:   "COR-1",
		Origen:  "Tuxtla Gutiérrez",
		Destino: "Yajalón",
	}
}

func corridaYajalonTuxtla() models.Corrida {
	return models.Corrida{
		ID:      2,
		Folio:   "COR-2",
		Origen:  "Yajalón",
		Destino: "Tuxtla Gutiérrez",
	}
}

func TestAttributeCashPagoOrigen(t *testing.T) {
	split := AttributeCash(corridaTuxtlaYajalon(), 150, models.PagoOrigen)
	if split.Tuxtla != 150 || split.Yajalon != 0 {
		t.Fatalf("expected 150 in Tuxtla, got %+v", split)
	}

	split = AttributeCash(corridaYajalonTuxtla(), 150, models.PagoOrigen)
	if split.Tuxtla != 0 || split.Yajalon != 150 {
		t.Fatalf("expected 150 in Yajalon, got %+v", split)
	}
}

func TestAttributeCashPagoDestino(t *testing.T) {
	split := AttributeCash(corridaTuxtlaYajalon(), 200, models.PagoDestino)
	if split.Tuxtla != 0 || split.Yajalon != 200 {
		t.Fatalf("expected 200 in Yajalon, got %+v", split)
	}

	split = AttributeCash(corridaYajalonTuxtla(), 200, models.PagoDestino)
	if split.Tuxtla != 200 || split.Yajalon != 0 {
		t.Fatalf("expected 200 in Tuxtla, got %+v", split)
	}
}

func TestAttributeCashOcosingoAlwaysYajalon(t *testing.T) {
	// waypoint money lands in Yajalon no matter the trip direction
	for _, c := range []models.Corrida{corridaTuxtlaYajalon(), corridaYajalonTuxtla()} {
		split := AttributeCash(c, 100, models.PagoOcosingo)
		if split.Tuxtla != 0 || split.Yajalon != 100 {
			t.Fatalf("corrida %s: expected 100 in Yajalon, got %+v", c.Folio, split)
		}
	}
}

func TestAttributeCashUnknownMethodDefaultsToOrigin(t *testing.T) {
	split := AttributeCash(corridaTuxtlaYajalon(), 99, "tarjeta")
	if split.Tuxtla != 99 || split.Yajalon != 0 {
		t.Fatalf("unknown method should pay at origin, got %+v", split)
	}

	split = AttributeCash(corridaTuxtlaYajalon(), 99, "")
	if split.Tuxtla != 99 || split.Yajalon != 0 {
		t.Fatalf("empty method should pay at origin, got %+v", split)
	}
}

func TestAttributeCashUnmatchedRouteIsZeroZero(t *testing.T) {
	c := models.Corrida{Origen: "San Cristóbal", Destino: "Comitán"}
	split := AttributeCash(c, 500, models.PagoOrigen)
	if split.Tuxtla != 0 || split.Yajalon != 0 {
		t.Fatalf("unmatched route must not place cash, got %+v", split)
	}
}

func TestAttributeParcelCash(t *testing.T) {
	c := corridaTuxtlaYajalon()

	split := AttributeParcelCash(c, models.Paquete{Importe: 80})
	if split.Tuxtla != 80 || split.Yajalon != 0 {
		t.Fatalf("prepaid parcel should sit at origin, got %+v", split)
	}

	split = AttributeParcelCash(c, models.Paquete{Importe: 120, PorCobrar: true})
	if split.Tuxtla != 0 || split.Yajalon != 0 {
		t.Fatalf("collect-on-delivery parcel must not place cash, got %+v", split)
	}
}

func TestCashTerminalLabel(t *testing.T) {
	c := corridaTuxtlaYajalon()

	if got := CashTerminalLabel(c, 150, models.PagoOrigen); got != utils.LabelTuxtla {
		t.Fatalf("expected %q, got %q", utils.LabelTuxtla, got)
	}
	if got := CashTerminalLabel(c, 150, models.PagoDestino); got != utils.LabelYajalon {
		t.Fatalf("expected %q, got %q", utils.LabelYajalon, got)
	}
	if got := CashTerminalLabel(c, 100, models.PagoOcosingo); got != utils.LabelYajalon {
		t.Fatalf("waypoint money labels as Yajalon, got %q", got)
	}

	sinRuta := models.Corrida{Origen: "X", Destino: "Y"}
	if got := CashTerminalLabel(sinRuta, 100, models.PagoOrigen); got != "-" {
		t.Fatalf("unplaceable cash should label as dash, got %q", got)
	}
}

func TestDisplayRouteOcosingoSubstitution(t *testing.T) {
	origen, destino := DisplayRoute(corridaTuxtlaYajalon(), models.PagoOcosingo)
	if origen != "Tuxtla Gutiérrez" || destino != utils.LabelOcosingo {
		t.Fatalf("expected Tuxtla->Ocosingo, got %s -> %s", origen, destino)
	}

	origen, destino = DisplayRoute(corridaYajalonTuxtla(), models.PagoOcosingo)
	if origen != utils.LabelOcosingo || destino != "Tuxtla Gutiérrez" {
		t.Fatalf("expected Ocosingo->Tuxtla, got %s -> %s", origen, destino)
	}

	// non-waypoint payment leaves the route untouched
	origen, destino = DisplayRoute(corridaTuxtlaYajalon(), models.PagoOrigen)
	if origen != "Tuxtla Gutiérrez" || destino != "Yajalón" {
		t.Fatalf("route should be unchanged, got %s -> %s", origen, destino)
	}
}
