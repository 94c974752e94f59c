package models

// Tarifa classes sold at the counter.
const (
	TarifaAdulto = "adulto"
	TarifaNino   = "nino"
	TarifaInapam = "inapam"
)

// Forma de pago declares where the passenger hands over the cash.
// pago_ocosingo money is reconciled in Yajalón (fixed business rule).
const (
	PagoOrigen   = "pago_origen"
	PagoDestino  = "pago_destino"
	PagoOcosingo = "pago_ocosingo"
)

type Pasajero struct {
	ID         int64   `json:"id"`
	Folio      string  `json:"folio"`
	Nombre     string  `json:"nombre"`
	Apellidos  string  `json:"apellidos"`
	TarifaTipo string  `json:"tarifaTipo"`
	FormaPago  string  `json:"formaPago"`
	Asiento    int     `json:"asiento"`
	Importe    float64 `json:"importe"`
	CorridaID  int64   `json:"corridaId"`
	CreatedAt  string  `json:"createdAt"`
}

// NombreCompleto joins name parts for printed documents.
func (p Pasajero) NombreCompleto() string {
	if p.Apellidos == "" {
		return p.Nombre
	}
	if p.Nombre == "" {
		return p.Apellidos
	}
	return p.Nombre + " " + p.Apellidos
}
