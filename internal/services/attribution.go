package services

import (
	"despacho/internal/domain/models"
	"despacho/internal/utils"
)

// CashSplit says which terminal's drawer physically holds an amount.
type CashSplit struct {
	Tuxtla  float64
	Yajalon float64
}

// AttributeCash decides where the cash for one fare sits right now.
//
// pago_ocosingo always lands in Yajalón: the waypoint is anchored to the
// terminal nearest it no matter which way the corrida runs. Do not derive
// this from origen/destino; it is a fixed business mapping.
//
// An unrecognized forma de pago is treated as pago_origen. When the route
// string matches neither terminal keyword the split is zero/zero: the
// record still counts as revenue, it just cannot be placed in a drawer.
func AttributeCash(c models.Corrida, importe float64, formaPago string) CashSplit {
	switch formaPago {
	case models.PagoOcosingo:
		return CashSplit{Yajalon: importe}
	case models.PagoDestino:
		return splitAt(utils.MatchTerminal(c.Destino), importe)
	default:
		return splitAt(utils.MatchTerminal(c.Origen), importe)
	}
}

// AttributeParcelCash places a parcel's money. Parcels only know two
// states: prepaid at the origin terminal, or collect on delivery (no
// drawer holds it yet, so the split is empty).
func AttributeParcelCash(c models.Corrida, p models.Paquete) CashSplit {
	if p.PorCobrar {
		return CashSplit{}
	}
	return splitAt(utils.MatchTerminal(c.Origen), p.Importe)
}

func splitAt(terminal string, importe float64) CashSplit {
	switch terminal {
	case utils.TerminalTuxtla:
		return CashSplit{Tuxtla: importe}
	case utils.TerminalYajalon:
		return CashSplit{Yajalon: importe}
	default:
		return CashSplit{}
	}
}

// CashTerminalLabel is the human-readable drawer name printed on the
// ticket. Derived from AttributeCash so documents and the daily report
// can never disagree.
func CashTerminalLabel(c models.Corrida, importe float64, formaPago string) string {
	split := AttributeCash(c, importe, formaPago)
	switch {
	case split.Tuxtla > 0:
		return utils.LabelTuxtla
	case split.Yajalon > 0:
		return utils.LabelYajalon
	default:
		return "-"
	}
}

// DisplayRoute returns the origen/destino pair to print on documents.
// For waypoint-paid records the Ocosingo label replaces the side that
// sits toward the waypoint (the Yajalón side when it matches, otherwise
// the side opposite the Tuxtla match).
func DisplayRoute(c models.Corrida, formaPago string) (string, string) {
	if formaPago != models.PagoOcosingo {
		return c.Origen, c.Destino
	}
	switch {
	case utils.MatchTerminal(c.Destino) == utils.TerminalYajalon:
		return c.Origen, utils.LabelOcosingo
	case utils.MatchTerminal(c.Origen) == utils.TerminalYajalon:
		return utils.LabelOcosingo, c.Destino
	case utils.MatchTerminal(c.Origen) == utils.TerminalTuxtla:
		return c.Origen, utils.LabelOcosingo
	case utils.MatchTerminal(c.Destino) == utils.TerminalTuxtla:
		return utils.LabelOcosingo, c.Destino
	default:
		return c.Origen, c.Destino
	}
}
