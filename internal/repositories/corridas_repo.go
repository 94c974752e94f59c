package repositories

import (
	"database/sql"

	intconfig "despacho/internal/config"
	"despacho/internal/domain"
	"despacho/internal/domain/models"
)

type CorridasRepository struct {
	DB *sql.DB
}

func (r CorridasRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const corridaSelect = `
	SELECT
		c.id,
		COALESCE(c.folio, ''),
		COALESCE(c.origen, ''),
		COALESCE(c.destino, ''),
		COALESCE(DATE_FORMAT(c.fecha_salida, '%Y-%m-%d %H:%i:%s'), ''),
		COALESCE(c.comision, 0),
		COALESCE(u.id, 0),
		COALESCE(u.numero, ''),
		COALESCE(u.placas, ''),
		COALESCE(u.capacidad, 0),
		COALESCE(u.turno_id, 0)
	FROM corridas c
	LEFT JOIN unidades u ON u.id = c.unidad_id
`

// List returns every corrida with its unidad, pasajeros and paquetes
// embedded, the frozen snapshot the settlement fold works on.
func (r CorridasRepository) List() ([]models.Corrida, error) {
	db := r.db()
	rows, err := db.Query(corridaSelect + ` ORDER BY c.fecha_salida DESC, c.id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Corrida{}
	index := map[int64]int{}
	for rows.Next() {
		c, err := scanCorrida(rows)
		if err != nil {
			return nil, err
		}
		index[c.ID] = len(out)
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return out, nil
	}

	if err := r.attachPasajeros(db, out, index); err != nil {
		return nil, err
	}
	if err := r.attachPaquetes(db, out, index); err != nil {
		return nil, err
	}
	return out, nil
}

func (r CorridasRepository) GetByID(id int64) (models.Corrida, error) {
	db := r.db()
	row := db.QueryRow(corridaSelect+` WHERE c.id = ?`, id)
	c, err := scanCorrida(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return c, domain.NotFoundError{Resource: "corrida"}
		}
		return c, err
	}

	list := []models.Corrida{c}
	index := map[int64]int{c.ID: 0}
	if err := r.attachPasajeros(db, list, index); err != nil {
		return c, err
	}
	if err := r.attachPaquetes(db, list, index); err != nil {
		return c, err
	}
	return list[0], nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCorrida(row rowScanner) (models.Corrida, error) {
	var c models.Corrida
	err := row.Scan(
		&c.ID,
		&c.Folio,
		&c.Origen,
		&c.Destino,
		&c.FechaSalida,
		&c.Comision,
		&c.Unidad.ID,
		&c.Unidad.Numero,
		&c.Unidad.Placas,
		&c.Unidad.Capacidad,
		&c.Unidad.TurnoID,
	)
	c.Pasajeros = []models.Pasajero{}
	c.Paquetes = []models.Paquete{}
	return c, err
}

func (r CorridasRepository) attachPasajeros(db *sql.DB, corridas []models.Corrida, index map[int64]int) error {
	rows, err := db.Query(pasajeroSelect + ` WHERE corrida_id > 0 ORDER BY id ASC`)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		p, err := scanPasajero(rows)
		if err != nil {
			return err
		}
		if i, ok := index[p.CorridaID]; ok {
			corridas[i].Pasajeros = append(corridas[i].Pasajeros, p)
		}
	}
	return rows.Err()
}

func (r CorridasRepository) attachPaquetes(db *sql.DB, corridas []models.Corrida, index map[int64]int) error {
	rows, err := db.Query(paqueteSelect + ` WHERE COALESCE(corrida_id, 0) > 0 ORDER BY id ASC`)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		q, err := scanPaquete(rows)
		if err != nil {
			return err
		}
		if i, ok := index[q.CorridaID]; ok {
			corridas[i].Paquetes = append(corridas[i].Paquetes, q)
		}
	}
	return rows.Err()
}
