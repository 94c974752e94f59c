package handlers

import (
	"net/http"
	"strconv"

	intconfig "despacho/internal/config"
	"despacho/internal/domain"
	"despacho/internal/domain/models"
	"despacho/internal/repositories"
	"despacho/internal/services"
	"despacho/internal/utils"

	"github.com/gin-gonic/gin"
)

type pasajeroInput struct {
	Folio      string  `json:"folio"`
	Nombre     string  `json:"nombre"`
	Apellidos  string  `json:"apellidos"`
	TarifaTipo string  `json:"tarifaTipo"`
	FormaPago  string  `json:"formaPago"`
	Asiento    int     `json:"asiento"`
	Importe    float64 `json:"importe"`
	CorridaID  int64   `json:"corridaId"`
}

func (in *pasajeroInput) validar() error {
	in.Nombre = utils.TrimOrEmpty(in.Nombre)
	in.Apellidos = utils.TrimOrEmpty(in.Apellidos)
	if in.Nombre == "" {
		return domain.ValidationError{Field: "nombre", Msg: "el nombre es obligatorio"}
	}
	if in.CorridaID <= 0 {
		return domain.ValidationError{Field: "corridaId", Msg: "la corrida es obligatoria"}
	}
	switch in.TarifaTipo {
	case models.TarifaAdulto, models.TarifaNino, models.TarifaInapam, "":
	default:
		return domain.ValidationError{Field: "tarifaTipo", Msg: "tarifa desconocida"}
	}
	if in.Importe < 0 {
		return domain.ValidationError{Field: "importe", Msg: "el importe no puede ser negativo"}
	}
	return nil
}

// GET /api/pasajeros?corridaId=N
func GetPasajeros(c *gin.Context) {
	repo := repositories.PasajeroRepository{}

	if raw := c.Query("corridaId"); raw != "" {
		corridaID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || corridaID <= 0 {
			RespondError(c, http.StatusBadRequest, "corridaId no válido", err)
			return
		}
		pasajeros, err := repo.ListByCorrida(corridaID)
		if err != nil {
			RespondError(c, http.StatusInternalServerError, "no se pudieron obtener los pasajeros", err)
			return
		}
		c.JSON(http.StatusOK, pasajeros)
		return
	}

	rows, err := intconfig.DB.Query(`
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
		ORDER BY id DESC
	`)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "no se pudieron obtener los pasajeros", err)
		return
	}
	defer rows.Close()

	pasajeros := []models.Pasajero{}
	for rows.Next() {
		var p models.Pasajero
		if err := rows.Scan(
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
		); err != nil {
			RespondError(c, http.StatusInternalServerError, "no se pudieron leer los pasajeros", err)
			return
		}
		pasajeros = append(pasajeros, p)
	}
	if err := rows.Err(); err != nil {
		RespondError(c, http.StatusInternalServerError, "no se pudieron leer los pasajeros", err)
		return
	}

	c.JSON(http.StatusOK, pasajeros)
}

// POST /api/pasajeros
func CreatePasajero(c *gin.Context) {
	var input pasajeroInput
	if !BindJSONOrError(c, &input) {
		return
	}
	if err := input.validar(); err != nil {
		RespondDomainError(c, err)
		return
	}

	corridasRepo := repositories.CorridasRepository{}
	corrida, err := corridasRepo.GetByID(input.CorridaID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	// el asiento se valida contra el estado actual de la corrida antes
	// de tocar la base: capacidad de la unidad y asientos ya vendidos
	sel := services.SelectTrip(corrida)
	if err := sel.AssignSeat(input.Asiento); err != nil {
		RespondDomainError(c, err)
		return
	}

	if input.Folio == "" {
		input.Folio = utils.NewFolio("PAS")
	}
	if input.TarifaTipo == "" {
		input.TarifaTipo = models.TarifaAdulto
	}
	if input.FormaPago == "" {
		input.FormaPago = sel.FormaPagoDefault
	}

	res, err := intconfig.DB.Exec(`
		INSERT INTO pasajeros (folio, nombre, apellidos, tarifa_tipo, forma_pago, asiento, importe, corrida_id, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, NOW())
	`,
		input.Folio,
		input.Nombre,
		input.Apellidos,
		input.TarifaTipo,
		input.FormaPago,
		input.Asiento,
		input.Importe,
		input.CorridaID,
	)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "no se pudo registrar el pasajero", err)
		return
	}

	id, _ := res.LastInsertId()
	repo := repositories.PasajeroRepository{}
	pasajero, err := repo.GetByID(id)
	if err != nil {
		c.JSON(http.StatusCreated, gin.H{"id": id, "folio": input.Folio})
		return
	}
	c.JSON(http.StatusCreated, pasajero)
}

// PUT /api/pasajeros/:id
func UpdatePasajero(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		RespondError(c, http.StatusBadRequest, "id no válido", err)
		return
	}

	var input pasajeroInput
	if !BindJSONOrError(c, &input) {
		return
	}
	if err := input.validar(); err != nil {
		RespondDomainError(c, err)
		return
	}

	repo := repositories.PasajeroRepository{}
	actual, err := repo.GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	// si cambia de asiento o de corrida, revalidar contra la ocupación,
	// descontando el asiento que este mismo pasajero tiene hoy
	if input.Asiento != actual.Asiento || input.CorridaID != actual.CorridaID {
		corridasRepo := repositories.CorridasRepository{}
		corrida, err := corridasRepo.GetByID(input.CorridaID)
		if err != nil {
			RespondDomainError(c, err)
			return
		}
		sel := services.SelectTrip(corrida)
		if input.CorridaID == actual.CorridaID {
			delete(sel.Ocupados, actual.Asiento)
		}
		if err := sel.AssignSeat(input.Asiento); err != nil {
			RespondDomainError(c, err)
			return
		}
	}

	if _, err = intconfig.DB.Exec(`
		UPDATE pasajeros
		SET
			nombre      = ?,
			apellidos   = ?,
			tarifa_tipo = ?,
			forma_pago  = ?,
			asiento     = ?,
			importe     = ?,
			corrida_id  = ?
		WHERE id = ?
	`,
		input.Nombre,
		input.Apellidos,
		input.TarifaTipo,
		input.FormaPago,
		input.Asiento,
		input.Importe,
		input.CorridaID,
		id,
	); err != nil {
		RespondError(c, http.StatusInternalServerError, "no se pudo actualizar el pasajero", err)
		return
	}

	pasajero, err := repo.GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, pasajero)
}

// DELETE /api/pasajeros/:id
func DeletePasajero(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		RespondError(c, http.StatusBadRequest, "id no válido", err)
		return
	}

	res, err := intconfig.DB.Exec(`DELETE FROM pasajeros WHERE id = ?`, id)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "no se pudo eliminar el pasajero", err)
		return
	}

	rows, _ := res.RowsAffected()
	if rows == 0 {
		RespondError(c, http.StatusNotFound, "pasajero no encontrado", nil)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "pasajero eliminado"})
}
