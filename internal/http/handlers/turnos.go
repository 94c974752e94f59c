package handlers

import (
	"net/http"
	"strconv"

	intconfig "despacho/internal/config"
	"despacho/internal/utils"

	"github.com/gin-gonic/gin"
)

type Turno struct {
	ID         int64  `json:"id"`
	Nombre     string `json:"nombre"`
	HoraSalida string `json:"horaSalida"`
	Terminal   string `json:"terminal"`
}

// GET /api/turnos
func GetTurnos(c *gin.Context) {
	rows, err := intconfig.DB.Query(`
		SELECT
			id,
			COALESCE(nombre, ''),
			COALESCE(hora_salida, ''),
			COALESCE(terminal, '')
		FROM turnos
		ORDER BY hora_salida ASC, id ASC
	`)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "no se pudieron obtener los turnos", err)
		return
	}
	defer rows.Close()

	turnos := []Turno{}
	for rows.Next() {
		var t Turno
		if err := rows.Scan(&t.ID, &t.Nombre, &t.HoraSalida, &t.Terminal); err != nil {
			RespondError(c, http.StatusInternalServerError, "no se pudieron leer los turnos", err)
			return
		}
		turnos = append(turnos, t)
	}
	if err := rows.Err(); err != nil {
		RespondError(c, http.StatusInternalServerError, "no se pudieron leer los turnos", err)
		return
	}

	c.JSON(http.StatusOK, turnos)
}

// POST /api/turnos
func CreateTurno(c *gin.Context) {
	var input Turno
	if !BindJSONOrError(c, &input) {
		return
	}
	if utils.MatchTerminal(input.Terminal) == "" {
		RespondError(c, http.StatusBadRequest, "terminal desconocida", nil)
		return
	}

	res, err := intconfig.DB.Exec(`
		INSERT INTO turnos (nombre, hora_salida, terminal)
		VALUES (?, ?, ?)
	`, input.Nombre, input.HoraSalida, input.Terminal)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "no se pudo crear el turno", err)
		return
	}

	id, _ := res.LastInsertId()
	input.ID = id
	c.JSON(http.StatusCreated, input)
}

// PUT /api/turnos/:id
func UpdateTurno(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		RespondError(c, http.StatusBadRequest, "id no válido", err)
		return
	}

	var input Turno
	if !BindJSONOrError(c, &input) {
		return
	}
	if utils.MatchTerminal(input.Terminal) == "" {
		RespondError(c, http.StatusBadRequest, "terminal desconocida", nil)
		return
	}

	if _, err = intconfig.DB.Exec(`
		UPDATE turnos
		SET
			nombre      = ?,
			hora_salida = ?,
			terminal    = ?
		WHERE id = ?
	`, input.Nombre, input.HoraSalida, input.Terminal, id); err != nil {
		RespondError(c, http.StatusInternalServerError, "no se pudo actualizar el turno", err)
		return
	}

	input.ID = id
	c.JSON(http.StatusOK, input)
}

// DELETE /api/turnos/:id
func DeleteTurno(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		RespondError(c, http.StatusBadRequest, "id no válido", err)
		return
	}

	res, err := intconfig.DB.Exec(`DELETE FROM turnos WHERE id = ?`, id)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "no se pudo eliminar el turno", err)
		return
	}

	rows, _ := res.RowsAffected()
	if rows == 0 {
		RespondError(c, http.StatusNotFound, "turno no encontrado", nil)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "turno eliminado"})
}
