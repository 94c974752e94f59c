package handlers

import (
	"net/http"
	"strconv"

	intconfig "despacho/internal/config"
	intdb "despacho/internal/db"
	"despacho/internal/domain"
	"despacho/internal/domain/models"
	"despacho/internal/repositories"
	"despacho/internal/utils"

	"github.com/gin-gonic/gin"
)

type paqueteInput struct {
	Folio        string  `json:"folio"`
	Remitente    string  `json:"remitente"`
	Destinatario string  `json:"destinatario"`
	Contenido    string  `json:"contenido"`
	Importe      float64 `json:"importe"`
	PorCobrar    bool    `json:"porCobrar"`
	CorridaID    int64   `json:"corridaId"`
}

func (in *paqueteInput) validar() error {
	in.Remitente = utils.TrimOrEmpty(in.Remitente)
	in.Destinatario = utils.TrimOrEmpty(in.Destinatario)
	in.Contenido = utils.TrimOrEmpty(in.Contenido)
	if in.Remitente == "" {
		return domain.ValidationError{Field: "remitente", Msg: "el remitente es obligatorio"}
	}
	if in.Destinatario == "" {
		return domain.ValidationError{Field: "destinatario", Msg: "el destinatario es obligatorio"}
	}
	if in.Importe < 0 {
		return domain.ValidationError{Field: "importe", Msg: "el importe no puede ser negativo"}
	}
	return nil
}

// GET /api/paquetes
func GetPaquetes(c *gin.Context) {
	rows, err := intconfig.DB.Query(`
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
		ORDER BY id DESC
	`)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "no se pudieron obtener los paquetes", err)
		return
	}
	defer rows.Close()

	paquetes := []models.Paquete{}
	for rows.Next() {
		var q models.Paquete
		var porCobrar int
		if err := rows.Scan(
			&q.ID,
			&q.Folio,
			&q.Remitente,
			&q.Destinatario,
			&q.Contenido,
			&q.Importe,
			&porCobrar,
			&q.CorridaID,
			&q.CreatedAt,
		); err != nil {
			RespondError(c, http.StatusInternalServerError, "no se pudieron leer los paquetes", err)
			return
		}
		q.PorCobrar = porCobrar != 0
		paquetes = append(paquetes, q)
	}
	if err := rows.Err(); err != nil {
		RespondError(c, http.StatusInternalServerError, "no se pudieron leer los paquetes", err)
		return
	}

	c.JSON(http.StatusOK, paquetes)
}

// GET /api/paquetes/pendientes
func GetPaquetesPendientes(c *gin.Context) {
	repo := repositories.PaqueteRepository{}
	paquetes, err := repo.ListPendientes()
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "no se pudieron obtener los paquetes pendientes", err)
		return
	}
	c.JSON(http.StatusOK, paquetes)
}

// POST /api/paquetes
func CreatePaquete(c *gin.Context) {
	var input paqueteInput
	if !BindJSONOrError(c, &input) {
		return
	}
	if err := input.validar(); err != nil {
		RespondDomainError(c, err)
		return
	}
	if input.Folio == "" {
		input.Folio = utils.NewFolio("PAQ")
	}

	porCobrar := 0
	if input.PorCobrar {
		porCobrar = 1
	}

	res, err := intconfig.DB.Exec(`
		INSERT INTO paquetes (folio, remitente, destinatario, contenido, importe, por_cobrar, corrida_id, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, NOW())
	`,
		input.Folio,
		input.Remitente,
		input.Destinatario,
		input.Contenido,
		input.Importe,
		porCobrar,
		intdb.NullIfZero(input.CorridaID),
	)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "no se pudo registrar el paquete", err)
		return
	}

	id, _ := res.LastInsertId()
	repo := repositories.PaqueteRepository{}
	paquete, err := repo.GetByID(id)
	if err != nil {
		c.JSON(http.StatusCreated, gin.H{"id": id, "folio": input.Folio})
		return
	}
	c.JSON(http.StatusCreated, paquete)
}

// PUT /api/paquetes/:id
func UpdatePaquete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		RespondError(c, http.StatusBadRequest, "id no válido", err)
		return
	}

	var input paqueteInput
	if !BindJSONOrError(c, &input) {
		return
	}
	if err := input.validar(); err != nil {
		RespondDomainError(c, err)
		return
	}

	porCobrar := 0
	if input.PorCobrar {
		porCobrar = 1
	}

	if _, err = intconfig.DB.Exec(`
		UPDATE paquetes
		SET
			remitente    = ?,
			destinatario = ?,
			contenido    = ?,
			importe      = ?,
			por_cobrar   = ?,
			corrida_id   = ?
		WHERE id = ?
	`,
		input.Remitente,
		input.Destinatario,
		input.Contenido,
		input.Importe,
		porCobrar,
		intdb.NullIfZero(input.CorridaID),
		id,
	); err != nil {
		RespondError(c, http.StatusInternalServerError, "no se pudo actualizar el paquete", err)
		return
	}

	repo := repositories.PaqueteRepository{}
	paquete, err := repo.GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, paquete)
}

// PUT /api/paquetes/:id/asignar
func AsignarPaquete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		RespondError(c, http.StatusBadRequest, "id no válido", err)
		return
	}

	var input struct {
		CorridaID int64 `json:"corridaId"`
	}
	if !BindJSONOrError(c, &input) {
		return
	}
	if input.CorridaID <= 0 {
		RespondError(c, http.StatusBadRequest, "corridaId no válido", nil)
		return
	}

	corridasRepo := repositories.CorridasRepository{}
	if _, err := corridasRepo.GetByID(input.CorridaID); err != nil {
		RespondDomainError(c, err)
		return
	}

	repo := repositories.PaqueteRepository{}
	if err := repo.AssignToCorrida(id, input.CorridaID); err != nil {
		RespondDomainError(c, err)
		return
	}

	paquete, err := repo.GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, paquete)
}

// DELETE /api/paquetes/:id
func DeletePaquete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		RespondError(c, http.StatusBadRequest, "id no válido", err)
		return
	}

	res, err := intconfig.DB.Exec(`DELETE FROM paquetes WHERE id = ?`, id)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "no se pudo eliminar el paquete", err)
		return
	}

	rows, _ := res.RowsAffected()
	if rows == 0 {
		RespondError(c, http.StatusNotFound, "paquete no encontrado", nil)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "paquete eliminado"})
}
