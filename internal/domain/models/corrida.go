package models

// Unidad is the bus assigned to a corrida; Capacidad bounds seat numbers.
type Unidad struct {
	ID        int64  `json:"id"`
	Numero    string `json:"numero"`
	Placas    string `json:"placas"`
	Capacidad int    `json:"capacidad"`
	TurnoID   int64  `json:"turnoId"`
}

// Corrida is one scheduled departure. Origen/Destino are free-text route
// names; terminal identity is inferred by keyword (utils.MatchTerminal).
// FechaSalida is stored as "YYYY-MM-DD HH:MM:SS" local time.
type Corrida struct {
	ID          int64      `json:"id"`
	Folio       string     `json:"folio"`
	Origen      string     `json:"origen"`
	Destino     string     `json:"destino"`
	FechaSalida string     `json:"fechaSalida"`
	Comision    float64    `json:"comision"`
	Unidad      Unidad     `json:"unidad"`
	Pasajeros   []Pasajero `json:"pasajeros"`
	Paquetes    []Paquete  `json:"paquetes"`
}
