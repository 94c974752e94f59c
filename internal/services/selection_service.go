package services

import (
	"fmt"
	"sync"

	"despacho/internal/domain"
	"despacho/internal/domain/models"
	"despacho/internal/utils"
)

// FormaPagoOption pairs the UI label with the underlying payment code.
type FormaPagoOption struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// TripSelection is the booking-panel state for one selected corrida.
type TripSelection struct {
	CorridaID        int64             `json:"corridaId"`
	Capacidad        int               `json:"capacidad"`
	Ocupados         map[int]bool      `json:"-"`
	Asientos         []int             `json:"asientosOcupados"`
	Opciones         []FormaPagoOption `json:"formasPago"`
	FormaPagoDefault string            `json:"formaPagoDefault"`
}

// SelectTrip builds a fresh selection state from the corrida snapshot.
//
// The three options always carry the Tuxtla, Yajalón and Ocosingo labels
// in that order, but the payment code behind the two terminal labels
// flips with the trip direction: the label matching the corrida's origen
// means "pay now". The same label can therefore map to pago_origen on
// one corrida and pago_destino on the next. This asymmetry is how the
// counter works; keep it.
func SelectTrip(c models.Corrida) TripSelection {
	sel := TripSelection{
		CorridaID:        c.ID,
		Capacidad:        c.Unidad.Capacidad,
		Ocupados:         map[int]bool{},
		Asientos:         []int{},
		FormaPagoDefault: models.PagoOrigen,
	}

	for _, p := range c.Pasajeros {
		if p.Asiento > 0 && !sel.Ocupados[p.Asiento] {
			sel.Ocupados[p.Asiento] = true
			sel.Asientos = append(sel.Asientos, p.Asiento)
		}
	}

	tuxtlaValue := models.PagoOrigen
	yajalonValue := models.PagoDestino
	if utils.MatchTerminal(c.Origen) == utils.TerminalYajalon {
		tuxtlaValue, yajalonValue = yajalonValue, tuxtlaValue
	}
	sel.Opciones = []FormaPagoOption{
		{Label: utils.LabelTuxtla, Value: tuxtlaValue},
		{Label: utils.LabelYajalon, Value: yajalonValue},
		{Label: utils.LabelOcosingo, Value: models.PagoOcosingo},
	}

	return sel
}

// AssignSeat validates and occupies seat n. Rejections surface as
// ValidationError and leave the selection untouched.
func (s *TripSelection) AssignSeat(n int) error {
	if n < 1 {
		return domain.ValidationError{Field: "asiento", Msg: "el asiento debe ser mayor a cero"}
	}
	if s.Capacidad > 0 && n > s.Capacidad {
		return domain.ValidationError{Field: "asiento", Msg: fmt.Sprintf("el asiento %d excede la capacidad de la unidad (%d)", n, s.Capacidad)}
	}
	if s.Ocupados[n] {
		return domain.ValidationError{Field: "asiento", Msg: fmt.Sprintf("el asiento %d ya está ocupado", n)}
	}
	s.Ocupados[n] = true
	s.Asientos = append(s.Asientos, n)
	return nil
}

// SnapshotStore keeps the last valid corridas snapshot plus a generation
// counter. A refresh that resolves after a newer one began is discarded,
// so a slow response can never clobber fresher state; a failed refresh
// keeps the previous snapshot instead of clearing it.
type SnapshotStore struct {
	mu       sync.Mutex
	gen      uint64
	corridas []models.Corrida
	loaded   bool
}

// Begin marks the start of a refresh and returns its generation token.
func (s *SnapshotStore) Begin() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gen++
	return s.gen
}

// Complete installs the refresh result. It reports false (and changes
// nothing) when the token is stale or the refresh errored.
func (s *SnapshotStore) Complete(token uint64, corridas []models.Corrida, err error) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil || token != s.gen {
		return false
	}
	s.corridas = corridas
	s.loaded = true
	return true
}

// Current returns the last valid snapshot and whether one exists.
func (s *SnapshotStore) Current() ([]models.Corrida, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.corridas, s.loaded
}
