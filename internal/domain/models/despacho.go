package models

// Descuento is an ad-hoc deduction captured while preparing the daily
// report. The list lives only in the report request; nothing is persisted.
type Descuento struct {
	Concepto    string  `json:"concepto"`
	Descripcion string  `json:"descripcion"`
	Importe     float64 `json:"importe"`
}

// CorridaResumen is one row of the daily report's trip table.
type CorridaResumen struct {
	CorridaID         int64   `json:"corridaId"`
	Folio             string  `json:"folio"`
	Origen            string  `json:"origen"`
	Destino           string  `json:"destino"`
	IngresoPasaje     float64 `json:"ingresoPasaje"`
	IngresoPaqueteria float64 `json:"ingresoPaqueteria"`
	Comision          float64 `json:"comision"`
}

// ReporteDespacho is the derived daily settlement. It is recomputed on
// demand from the corridas in scope plus the request's descuentos and is
// never cached or stored.
//
// PagadoTuxtla / PagadoYajalon / PagadoOcosingo are mutually exclusive
// buckets: money a passenger or shipper already handed over at that
// point. TotalNeto subtracts everything already collected elsewhere or
// still owed on arrival, leaving the cash to reconcile at the terminal
// producing the report.
type ReporteDespacho struct {
	FechaReporte      string           `json:"fechaReporte"`
	FechaCorte        string           `json:"fechaCorte"`
	Corridas          []CorridaResumen `json:"corridas"`
	IngresoPasaje     float64          `json:"ingresoPasaje"`
	IngresoPaqueteria float64          `json:"ingresoPaqueteria"`
	Comision          float64          `json:"comision"`
	PorCobrarLlegada  float64          `json:"porCobrarLlegada"`
	PagadoTuxtla      float64          `json:"pagadoTuxtla"`
	PagadoYajalon     float64          `json:"pagadoYajalon"`
	PagadoOcosingo    float64          `json:"pagadoOcosingo"`
	Descuentos        []Descuento      `json:"descuentos"`
	TotalDescuentos   float64          `json:"totalDescuentos"`
	TotalNeto         float64          `json:"totalNeto"`
}
