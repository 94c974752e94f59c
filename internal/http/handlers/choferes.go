package handlers

import (
	"net/http"
	"strconv"

	intconfig "despacho/internal/config"
	intdb "despacho/internal/db"

	"github.com/gin-gonic/gin"
)

type Chofer struct {
	ID       int64  `json:"id"`
	Nombre   string `json:"nombre"`
	Licencia string `json:"licencia"`
	Telefono string `json:"telefono"`
	Activo   bool   `json:"activo"`
}

// GET /api/choferes
func GetChoferes(c *gin.Context) {
	rows, err := intconfig.DB.Query(`
		SELECT
			id,
			COALESCE(nombre, ''),
			COALESCE(licencia, ''),
			COALESCE(telefono, ''),
			COALESCE(activo, 1)
		FROM choferes
		ORDER BY id DESC
	`)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "no se pudieron obtener los choferes", err)
		return
	}
	defer rows.Close()

	choferes := []Chofer{}
	for rows.Next() {
		var ch Chofer
		var activo int
		if err := rows.Scan(&ch.ID, &ch.Nombre, &ch.Licencia, &ch.Telefono, &activo); err != nil {
			RespondError(c, http.StatusInternalServerError, "no se pudieron leer los choferes", err)
			return
		}
		ch.Activo = activo != 0
		choferes = append(choferes, ch)
	}
	if err := rows.Err(); err != nil {
		RespondError(c, http.StatusInternalServerError, "no se pudieron leer los choferes", err)
		return
	}

	c.JSON(http.StatusOK, choferes)
}

// POST /api/choferes
func CreateChofer(c *gin.Context) {
	var input Chofer
	if !BindJSONOrError(c, &input) {
		return
	}

	activo := 0
	if input.Activo {
		activo = 1
	}

	res, err := intconfig.DB.Exec(`
		INSERT INTO choferes (nombre, licencia, telefono, activo)
		VALUES (?, ?, ?, ?)
	`, input.Nombre, intdb.NullIfEmpty(input.Licencia), intdb.NullIfEmpty(input.Telefono), activo)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "no se pudo crear el chofer", err)
		return
	}

	id, _ := res.LastInsertId()
	input.ID = id
	c.JSON(http.StatusCreated, input)
}

// PUT /api/choferes/:id
func UpdateChofer(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		RespondError(c, http.StatusBadRequest, "id no válido", err)
		return
	}

	var input Chofer
	if !BindJSONOrError(c, &input) {
		return
	}

	activo := 0
	if input.Activo {
		activo = 1
	}

	if _, err = intconfig.DB.Exec(`
		UPDATE choferes
		SET
			nombre   = ?,
			licencia = ?,
			telefono = ?,
			activo   = ?
		WHERE id = ?
	`, input.Nombre, intdb.NullIfEmpty(input.Licencia), intdb.NullIfEmpty(input.Telefono), activo, id); err != nil {
		RespondError(c, http.StatusInternalServerError, "no se pudo actualizar el chofer", err)
		return
	}

	input.ID = id
	c.JSON(http.StatusOK, input)
}

// DELETE /api/choferes/:id
func DeleteChofer(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		RespondError(c, http.StatusBadRequest, "id no válido", err)
		return
	}

	res, err := intconfig.DB.Exec(`DELETE FROM choferes WHERE id = ?`, id)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "no se pudo eliminar el chofer", err)
		return
	}

	rows, _ := res.RowsAffected()
	if rows == 0 {
		RespondError(c, http.StatusNotFound, "chofer no encontrado", nil)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "chofer eliminado"})
}
