package handlers

import (
	"net/http"
	"strconv"

	intconfig "despacho/internal/config"
	intdb "despacho/internal/db"
	"despacho/internal/repositories"
	"despacho/internal/services"
	"despacho/internal/utils"

	"github.com/gin-gonic/gin"
)

// corridasSnapshot keeps the last good corridas listing for the seat
// selection panel. A slow refresh can never overwrite the result of a
// newer one, and a failed refresh keeps the previous snapshot.
var corridasSnapshot services.SnapshotStore

// parseFechaSalida accepts a datetime or a bare date and normalizes to
// the "YYYY-MM-DD HH:MM:SS" storage layout.
func parseFechaSalida(s string) (string, error) {
	if t, err := utils.ParseDateTime(s); err == nil {
		return utils.FormatDateTime(t), nil
	}
	t, err := utils.ParseDate(s)
	if err != nil {
		return "", err
	}
	return utils.FormatDateTime(t), nil
}

type corridaInput struct {
	Folio       string  `json:"folio"`
	Origen      string  `json:"origen"`
	Destino     string  `json:"destino"`
	FechaSalida string  `json:"fechaSalida"`
	Comision    float64 `json:"comision"`
	UnidadID    int64   `json:"unidadId"`
}

// GET /api/corridas
func GetCorridas(c *gin.Context) {
	repo := repositories.CorridasRepository{}
	corridas, err := repo.List()
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "no se pudieron obtener las corridas", err)
		return
	}
	c.JSON(http.StatusOK, corridas)
}

// GET /api/corridas/:id
func GetCorridaByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		RespondError(c, http.StatusBadRequest, "id no válido", err)
		return
	}

	repo := repositories.CorridasRepository{}
	corrida, err := repo.GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, corrida)
}

// POST /api/corridas
func CreateCorrida(c *gin.Context) {
	var input corridaInput
	if !BindJSONOrError(c, &input) {
		return
	}
	if input.Origen == "" || input.Destino == "" || input.FechaSalida == "" {
		RespondError(c, http.StatusBadRequest, "origen, destino y fechaSalida son obligatorios", nil)
		return
	}
	salida, err := parseFechaSalida(input.FechaSalida)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "fechaSalida no válida, use AAAA-MM-DD HH:MM:SS", err)
		return
	}
	input.FechaSalida = salida
	if input.Folio == "" {
		input.Folio = utils.NewFolio("COR")
	}

	res, err := intconfig.DB.Exec(`
		INSERT INTO corridas (folio, origen, destino, fecha_salida, comision, unidad_id)
		VALUES (?, ?, ?, ?, ?, ?)
	`,
		input.Folio,
		input.Origen,
		input.Destino,
		input.FechaSalida,
		input.Comision,
		intdb.NullIfZero(input.UnidadID),
	)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "no se pudo crear la corrida", err)
		return
	}

	id, _ := res.LastInsertId()
	repo := repositories.CorridasRepository{}
	corrida, err := repo.GetByID(id)
	if err != nil {
		c.JSON(http.StatusCreated, gin.H{"id": id, "folio": input.Folio})
		return
	}
	c.JSON(http.StatusCreated, corrida)
}

// PUT /api/corridas/:id
func UpdateCorrida(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		RespondError(c, http.StatusBadRequest, "id no válido", err)
		return
	}

	var input corridaInput
	if !BindJSONOrError(c, &input) {
		return
	}
	salida, err := parseFechaSalida(input.FechaSalida)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "fechaSalida no válida, use AAAA-MM-DD HH:MM:SS", err)
		return
	}
	input.FechaSalida = salida

	if _, err = intconfig.DB.Exec(`
		UPDATE corridas
		SET
			origen       = ?,
			destino      = ?,
			fecha_salida = ?,
			comision     = ?,
			unidad_id    = ?
		WHERE id = ?
	`,
		input.Origen,
		input.Destino,
		input.FechaSalida,
		input.Comision,
		intdb.NullIfZero(input.UnidadID),
		id,
	); err != nil {
		RespondError(c, http.StatusInternalServerError, "no se pudo actualizar la corrida", err)
		return
	}

	repo := repositories.CorridasRepository{}
	corrida, err := repo.GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, corrida)
}

// DELETE /api/corridas/:id
func DeleteCorrida(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		RespondError(c, http.StatusBadRequest, "id no válido", err)
		return
	}

	res, err := intconfig.DB.Exec(`DELETE FROM corridas WHERE id = ?`, id)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "no se pudo eliminar la corrida", err)
		return
	}

	rows, _ := res.RowsAffected()
	if rows == 0 {
		RespondError(c, http.StatusNotFound, "corrida no encontrada", nil)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "corrida eliminada"})
}

// GET /api/corridas/:id/seleccion
//
// Refreshes the corridas snapshot and builds the seat selection state.
// If the refresh fails or loses the race against a newer request, the
// last good snapshot answers instead.
func GetCorridaSeleccion(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		RespondError(c, http.StatusBadRequest, "id no válido", err)
		return
	}

	repo := repositories.CorridasRepository{}
	token := corridasSnapshot.Begin()
	corridas, loadErr := repo.List()
	if !corridasSnapshot.Complete(token, corridas, loadErr) {
		previas, ok := corridasSnapshot.Current()
		if !ok {
			RespondError(c, http.StatusInternalServerError, "no se pudieron obtener las corridas", loadErr)
			return
		}
		corridas = previas
	}

	for _, corrida := range corridas {
		if corrida.ID == id {
			c.JSON(http.StatusOK, services.SelectTrip(corrida))
			return
		}
	}
	RespondError(c, http.StatusNotFound, "corrida no encontrada", nil)
}
