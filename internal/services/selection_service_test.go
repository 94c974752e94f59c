package services

import (
	"errors"
	"testing"

	"despacho/internal/domain"
	"despacho/internal/domain/models"
	"despacho/internal/utils"
)

func corridaConUnidad() models.Corrida {
	c := corridaTuxtlaYajalon()
	c.Unidad = models.Unidad{ID: 3, Numero: "12", Capacidad: 14}
	c.Pasajeros = []models.Pasajero{
		{ID: 1, Asiento: 1},
		{ID: 2, Asiento: 5},
		{ID: 3, Asiento: 5}, // duplicate row in data; occupied set dedupes
		{ID: 4, Asiento: 0}, // no seat assigned yet
	}
	return c
}

func TestSelectTripOccupiedSeats(t *testing.T) {
	sel := SelectTrip(corridaConUnidad())

	if sel.Capacidad != 14 {
		t.Fatalf("Capacidad = %d, want 14", sel.Capacidad)
	}
	if len(sel.Asientos) != 2 {
		t.Fatalf("expected 2 occupied seats, got %v", sel.Asientos)
	}
	if !sel.Ocupados[1] || !sel.Ocupados[5] {
		t.Fatalf("seats 1 and 5 should be occupied: %v", sel.Ocupados)
	}
	if sel.Ocupados[0] {
		t.Fatalf("seat 0 must never be occupied")
	}
}

func TestSelectTripPaymentOptionsFlipWithDirection(t *testing.T) {
	ida := SelectTrip(corridaTuxtlaYajalon())
	if len(ida.Opciones) != 3 {
		t.Fatalf("expected exactly 3 options, got %d", len(ida.Opciones))
	}
	if ida.Opciones[0].Label != utils.LabelTuxtla || ida.Opciones[0].Value != models.PagoOrigen {
		t.Fatalf("outbound: Tuxtla should be pago_origen, got %+v", ida.Opciones[0])
	}
	if ida.Opciones[1].Label != utils.LabelYajalon || ida.Opciones[1].Value != models.PagoDestino {
		t.Fatalf("outbound: Yajalon should be pago_destino, got %+v", ida.Opciones[1])
	}
	if ida.Opciones[2].Label != utils.LabelOcosingo || ida.Opciones[2].Value != models.PagoOcosingo {
		t.Fatalf("Ocosingo option malformed: %+v", ida.Opciones[2])
	}

	vuelta := SelectTrip(corridaYajalonTuxtla())
	if vuelta.Opciones[0].Label != utils.LabelTuxtla || vuelta.Opciones[0].Value != models.PagoDestino {
		t.Fatalf("return: Tuxtla should be pago_destino, got %+v", vuelta.Opciones[0])
	}
	if vuelta.Opciones[1].Label != utils.LabelYajalon || vuelta.Opciones[1].Value != models.PagoOrigen {
		t.Fatalf("return: Yajalon should be pago_origen, got %+v", vuelta.Opciones[1])
	}

	if ida.FormaPagoDefault != models.PagoOrigen || vuelta.FormaPagoDefault != models.PagoOrigen {
		t.Fatalf("default payment must be pago_origen")
	}
}

func TestAssignSeat(t *testing.T) {
	sel := SelectTrip(corridaConUnidad())

	if err := sel.AssignSeat(3); err != nil {
		t.Fatalf("free seat rejected: %v", err)
	}
	if !sel.Ocupados[3] {
		t.Fatalf("seat 3 should now be occupied")
	}

	if err := sel.AssignSeat(3); !domain.IsValidation(err) {
		t.Fatalf("double assignment should be a validation error, got %v", err)
	}
	if err := sel.AssignSeat(0); !domain.IsValidation(err) {
		t.Fatalf("seat 0 should be rejected, got %v", err)
	}
	if err := sel.AssignSeat(-2); !domain.IsValidation(err) {
		t.Fatalf("negative seat should be rejected, got %v", err)
	}
	if err := sel.AssignSeat(15); !domain.IsValidation(err) {
		t.Fatalf("seat over capacity should be rejected, got %v", err)
	}
}

func TestSnapshotStoreStaleRefreshDiscarded(t *testing.T) {
	var store SnapshotStore

	viejo := store.Begin()
	nuevo := store.Begin()

	if ok := store.Complete(nuevo, []models.Corrida{{ID: 2}}, nil); !ok {
		t.Fatalf("fresh refresh should install")
	}
	if ok := store.Complete(viejo, []models.Corrida{{ID: 1}}, nil); ok {
		t.Fatalf("stale refresh must be discarded")
	}

	corridas, ok := store.Current()
	if !ok || len(corridas) != 1 || corridas[0].ID != 2 {
		t.Fatalf("snapshot should hold the newer result, got %v ok=%v", corridas, ok)
	}
}

func TestSnapshotStoreFailedRefreshKeepsPrevious(t *testing.T) {
	var store SnapshotStore

	if _, ok := store.Current(); ok {
		t.Fatalf("empty store should report no snapshot")
	}

	token := store.Begin()
	if ok := store.Complete(token, []models.Corrida{{ID: 5}}, nil); !ok {
		t.Fatalf("first refresh should install")
	}

	token = store.Begin()
	if ok := store.Complete(token, nil, errors.New("timeout")); ok {
		t.Fatalf("errored refresh must not install")
	}

	corridas, ok := store.Current()
	if !ok || len(corridas) != 1 || corridas[0].ID != 5 {
		t.Fatalf("previous snapshot should survive a failed refresh, got %v ok=%v", corridas, ok)
	}
}
