package repositories

import (
	"database/sql"

	intconfig "despacho/internal/config"
	"despacho/internal/domain"
	"despacho/internal/domain/models"
)

type PaqueteRepository struct {
	DB *sql.DB
}

func (r PaqueteRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const paqueteSelect = `
	SELECT
		id,
		COALESCE(folio, ''),
		COALESCE(remitente, ''),
		COALESCE(destinatario, ''),
		COALESCE(contenido, ''),
		COALESCE(importe, 0),
		COALESCE(por_cobrar, 0),
		COALESCE(corrida_id, 0),
		COALESCE(DATE_FORMAT(created_at, '%Y-%m-%d %H:%i:%s'), '')
	FROM paquetes
`

func scanPaquete(row rowScanner) (models.Paquete, error) {
	var q models.Paquete
	var porCobrar int
	err := row.Scan(
		&q.ID,
		&q.Folio,
		&q.Remitente,
		&q.Destinatario,
		&q.Contenido,
		&q.Importe,
		&porCobrar,
		&q.CorridaID,
		&q.CreatedAt,
	)
	q.PorCobrar = porCobrar != 0
	return q, err
}

func (r PaqueteRepository) GetByID(id int64) (models.Paquete, error) {
	row := r.db().QueryRow(paqueteSelect+` WHERE id = ?`, id)
	q, err := scanPaquete(row)
	if err == sql.ErrNoRows {
		return q, domain.NotFoundError{Resource: "paquete"}
	}
	return q, err
}

// ListPendientes returns parcels registered without a corrida yet.
func (r PaqueteRepository) ListPendientes() ([]models.Paquete, error) {
	rows, err := r.db().Query(paqueteSelect + ` WHERE COALESCE(corrida_id, 0) = 0 ORDER BY id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Paquete{}
	for rows.Next() {
		q, err := scanPaquete(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, q)
	}
	return out, rows.Err()
}

// AssignToCorrida binds a pending parcel to a corrida. Assigning an
// already-assigned parcel is a conflict, not a silent rebind.
func (r PaqueteRepository) AssignToCorrida(id, corridaID int64) error {
	q, err := r.GetByID(id)
	if err != nil {
		return err
	}
	if !q.Pendiente() {
		return domain.ConflictError{Resource: "paquete", Msg: "el paquete ya está asignado a una corrida"}
	}

	res, err := r.db().Exec(`UPDATE paquetes SET corrida_id = ? WHERE id = ? AND COALESCE(corrida_id, 0) = 0`, corridaID, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return domain.ConflictError{Resource: "paquete", Msg: "el paquete ya está asignado a una corrida"}
	}
	return nil
}
