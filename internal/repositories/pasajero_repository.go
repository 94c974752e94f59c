package repositories

import (
	"database/sql"

	intconfig "despacho/internal/config"
	"despacho/internal/domain"
	"despacho/internal/domain/models"
)

type PasajeroRepository struct {
	DB *sql.DB
}

func (r PasajeroRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const pasajeroSelect = `
	SELECT
		id,
		COALESCE(folio, ''),
		COALESCE(nombre, ''),
		COALESCE(apellidos, ''),
		COALESCE(tarifa_tipo, ''),
		COALESCE(forma_pago, ''),
		COALESCE(asiento, 0),
		COALESCE(importe, 0),
		COALESCE(corrida_id, 0),
		COALESCE(DATE_FORMAT(created_at, '%Y-%m-%d %H:%i:%s'), '')
	FROM pasajeros
`

func scanPasajero(row rowScanner) (models.Pasajero, error) {
	var p models.Pasajero
	err := row.Scan(
		&p.ID,
		&p.Folio,
		&p.Nombre,
		&p.Apellidos,
		&p.TarifaTipo,
		&p.FormaPago,
		&p.Asiento,
		&p.Importe,
		&p.CorridaID,
		&p.CreatedAt,
	)
	return p, err
}

func (r PasajeroRepository) GetByID(id int64) (models.Pasajero, error) {
	row := r.db().QueryRow(pasajeroSelect+` WHERE id = ?`, id)
	p, err := scanPasajero(row)
	if err == sql.ErrNoRows {
		return p, domain.NotFoundError{Resource: "pasajero"}
	}
	return p, err
}

func (r PasajeroRepository) ListByCorrida(corridaID int64) ([]models.Pasajero, error) {
	rows, err := r.db().Query(pasajeroSelect+` WHERE corrida_id = ? ORDER BY asiento ASC, id ASC`, corridaID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Pasajero{}
	for rows.Next() {
		p, err := scanPasajero(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
