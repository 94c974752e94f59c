package models

// Paquete is a parcel. CorridaID == 0 means "pendiente": registered at
// the counter but not yet assigned to a departure.
type Paquete struct {
	ID           int64   `json:"id"`
	Folio        string  `json:"folio"`
	Remitente    string  `json:"remitente"`
	Destinatario string  `json:"destinatario"`
	Contenido    string  `json:"contenido"`
	Importe      float64 `json:"importe"`
	PorCobrar    bool    `json:"porCobrar"`
	CorridaID    int64   `json:"corridaId"`
	CreatedAt    string  `json:"createdAt"`
}

// Pendiente reports whether the parcel still needs a corrida.
func (p Paquete) Pendiente() bool { return p.CorridaID <= 0 }
