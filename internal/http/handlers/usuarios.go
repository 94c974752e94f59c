package handlers

import (
	"net/http"
	"strconv"

	intconfig "despacho/internal/config"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

type Usuario struct {
	ID      int64  `json:"id"`
	Nombre  string `json:"nombre"`
	Usuario string `json:"usuario"`
	Correo  string `json:"correo"`
	Rol     string `json:"rol"`
	Estatus string `json:"estatus"`
}

type usuarioInput struct {
	Nombre   string `json:"nombre"`
	Usuario  string `json:"usuario"`
	Correo   string `json:"correo"`
	Rol      string `json:"rol"`
	Estatus  string `json:"estatus"`
	Password string `json:"password"`
}

const usuarioSelect = `
	SELECT
		id,
		COALESCE(nombre, ''),
		COALESCE(usuario, ''),
		COALESCE(correo, ''),
		COALESCE(rol, ''),
		COALESCE(estatus, '')
	FROM usuarios
`

// GET /api/usuarios
func GetUsuarios(c *gin.Context) {
	rows, err := intconfig.DB.Query(usuarioSelect + ` ORDER BY id DESC`)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "no se pudieron obtener los usuarios", err)
		return
	}
	defer rows.Close()

	usuarios := []Usuario{}
	for rows.Next() {
		var u Usuario
		if err := rows.Scan(&u.ID, &u.Nombre, &u.Usuario, &u.Correo, &u.Rol, &u.Estatus); err != nil {
			RespondError(c, http.StatusInternalServerError, "no se pudieron leer los usuarios", err)
			return
		}
		usuarios = append(usuarios, u)
	}
	if err := rows.Err(); err != nil {
		RespondError(c, http.StatusInternalServerError, "no se pudieron leer los usuarios", err)
		return
	}

	c.JSON(http.StatusOK, usuarios)
}

// GET /api/usuarios/:id
func GetUsuarioByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		RespondError(c, http.StatusBadRequest, "id no válido", err)
		return
	}

	var u Usuario
	err = intconfig.DB.QueryRow(usuarioSelect+` WHERE id = ?`, id).
		Scan(&u.ID, &u.Nombre, &u.Usuario, &u.Correo, &u.Rol, &u.Estatus)
	if err != nil {
		RespondError(c, http.StatusNotFound, "usuario no encontrado", err)
		return
	}

	c.JSON(http.StatusOK, u)
}

// POST /api/usuarios
func CreateUsuario(c *gin.Context) {
	var input usuarioInput
	if !BindJSONOrError(c, &input) {
		return
	}
	if input.Usuario == "" || input.Password == "" {
		RespondError(c, http.StatusBadRequest, "usuario y password son obligatorios", nil)
		return
	}
	if input.Rol == "" {
		input.Rol = "taquillero"
	}
	if input.Estatus == "" {
		input.Estatus = "activo"
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "no se pudo procesar la contraseña", err)
		return
	}

	res, err := intconfig.DB.Exec(`
		INSERT INTO usuarios (nombre, usuario, correo, password_hash, rol, estatus, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, NOW(), NOW())
	`, input.Nombre, input.Usuario, input.Correo, string(hash), input.Rol, input.Estatus)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "no se pudo crear el usuario", err)
		return
	}

	id, _ := res.LastInsertId()
	c.JSON(http.StatusCreated, Usuario{
		ID:      id,
		Nombre:  input.Nombre,
		Usuario: input.Usuario,
		Correo:  input.Correo,
		Rol:     input.Rol,
		Estatus: input.Estatus,
	})
}

// PUT /api/usuarios/:id
func UpdateUsuario(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		RespondError(c, http.StatusBadRequest, "id no válido", err)
		return
	}

	var input usuarioInput
	if !BindJSONOrError(c, &input) {
		return
	}

	if _, err = intconfig.DB.Exec(`
		UPDATE usuarios
		SET
			nombre     = ?,
			usuario    = ?,
			correo     = ?,
			rol        = ?,
			estatus    = ?,
			updated_at = NOW()
		WHERE id = ?
	`, input.Nombre, input.Usuario, input.Correo, input.Rol, input.Estatus, id); err != nil {
		RespondError(c, http.StatusInternalServerError, "no se pudo actualizar el usuario", err)
		return
	}

	// la contraseña solo cambia cuando viene en el payload
	if input.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
		if err != nil {
			RespondError(c, http.StatusInternalServerError, "no se pudo procesar la contraseña", err)
			return
		}
		if _, err = intconfig.DB.Exec(`UPDATE usuarios SET password_hash = ?, updated_at = NOW() WHERE id = ?`, string(hash), id); err != nil {
			RespondError(c, http.StatusInternalServerError, "no se pudo actualizar la contraseña", err)
			return
		}
	}

	var u Usuario
	err = intconfig.DB.QueryRow(usuarioSelect+` WHERE id = ?`, id).
		Scan(&u.ID, &u.Nombre, &u.Usuario, &u.Correo, &u.Rol, &u.Estatus)
	if err != nil {
		RespondError(c, http.StatusNotFound, "usuario no encontrado", err)
		return
	}
	c.JSON(http.StatusOK, u)
}

// DELETE /api/usuarios/:id
func DeleteUsuario(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		RespondError(c, http.StatusBadRequest, "id no válido", err)
		return
	}

	res, err := intconfig.DB.Exec(`DELETE FROM usuarios WHERE id = ?`, id)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "no se pudo eliminar el usuario", err)
		return
	}

	rows, _ := res.RowsAffected()
	if rows == 0 {
		RespondError(c, http.StatusNotFound, "usuario no encontrado", nil)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "usuario eliminado"})
}
