package handlers

import (
	"net/http"
	"strconv"

	intconfig "despacho/internal/config"
	intdb "despacho/internal/db"
	"despacho/internal/domain/models"

	"github.com/gin-gonic/gin"
)

// GET /api/unidades
func GetUnidades(c *gin.Context) {
	rows, err := intconfig.DB.Query(`
		SELECT
			id,
			COALESCE(numero, ''),
			COALESCE(placas, ''),
			COALESCE(capacidad, 0),
			COALESCE(turno_id, 0)
		FROM unidades
		ORDER BY id DESC
	`)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "no se pudieron obtener las unidades", err)
		return
	}
	defer rows.Close()

	unidades := []models.Unidad{}
	for rows.Next() {
		var u models.Unidad
		if err := rows.Scan(&u.ID, &u.Numero, &u.Placas, &u.Capacidad, &u.TurnoID); err != nil {
			RespondError(c, http.StatusInternalServerError, "no se pudieron leer las unidades", err)
			return
		}
		unidades = append(unidades, u)
	}
	if err := rows.Err(); err != nil {
		RespondError(c, http.StatusInternalServerError, "no se pudieron leer las unidades", err)
		return
	}

	c.JSON(http.StatusOK, unidades)
}

// POST /api/unidades
func CreateUnidad(c *gin.Context) {
	var input models.Unidad
	if !BindJSONOrError(c, &input) {
		return
	}
	if input.Capacidad <= 0 {
		RespondError(c, http.StatusBadRequest, "la capacidad debe ser mayor a cero", nil)
		return
	}

	res, err := intconfig.DB.Exec(`
		INSERT INTO unidades (numero, placas, capacidad, turno_id)
		VALUES (?, ?, ?, ?)
	`, input.Numero, input.Placas, input.Capacidad, intdb.NullIfZero(input.TurnoID))
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "no se pudo crear la unidad", err)
		return
	}

	id, _ := res.LastInsertId()
	input.ID = id
	c.JSON(http.StatusCreated, input)
}

// PUT /api/unidades/:id
func UpdateUnidad(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		RespondError(c, http.StatusBadRequest, "id no válido", err)
		return
	}

	var input models.Unidad
	if !BindJSONOrError(c, &input) {
		return
	}
	if input.Capacidad <= 0 {
		RespondError(c, http.StatusBadRequest, "la capacidad debe ser mayor a cero", nil)
		return
	}

	if _, err = intconfig.DB.Exec(`
		UPDATE unidades
		SET
			numero    = ?,
			placas    = ?,
			capacidad = ?,
			turno_id  = ?
		WHERE id = ?
	`, input.Numero, input.Placas, input.Capacidad, intdb.NullIfZero(input.TurnoID), id); err != nil {
		RespondError(c, http.StatusInternalServerError, "no se pudo actualizar la unidad", err)
		return
	}

	input.ID = id
	c.JSON(http.StatusOK, input)
}

// DELETE /api/unidades/:id
func DeleteUnidad(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		RespondError(c, http.StatusBadRequest, "id no válido", err)
		return
	}

	res, err := intconfig.DB.Exec(`DELETE FROM unidades WHERE id = ?`, id)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "no se pudo eliminar la unidad", err)
		return
	}

	rows, _ := res.RowsAffected()
	if rows == 0 {
		RespondError(c, http.StatusNotFound, "unidad no encontrada", nil)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "unidad eliminada"})
}
