package handlers

import (
	"database/sql"
	"net/http"
	"time"

	intconfig "despacho/internal/config"
	"despacho/internal/http/middleware"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// AuthUser is the user payload returned on login.
type AuthUser struct {
	ID      int64  `json:"id"`
	Nombre  string `json:"nombre"`
	Usuario string `json:"usuario"`
	Correo  string `json:"correo"`
	Rol     string `json:"rol"`
	Estatus string `json:"estatus"`
}

type loginRequest struct {
	Usuario  string `json:"usuario"`
	Password string `json:"password"`
}

// POST /api/auth/login
func Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "payload no válido"})
		return
	}

	var (
		user         AuthUser
		passwordHash string
	)

	err := intconfig.DB.QueryRow(`
        SELECT id, COALESCE(nombre, ''), COALESCE(usuario, ''), COALESCE(correo, ''),
               COALESCE(password_hash, ''), COALESCE(rol, ''), COALESCE(estatus, '')
        FROM usuarios
        WHERE usuario = ? OR correo = ?
    `, req.Usuario, req.Usuario).Scan(
		&user.ID,
		&user.Nombre,
		&user.Usuario,
		&user.Correo,
		&passwordHash,
		&user.Rol,
		&user.Estatus,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "usuario o contraseña incorrectos"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "falló la consulta de usuario: " + err.Error()})
		}
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "usuario o contraseña incorrectos"})
		return
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": user.ID,
		"rol":     user.Rol,
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
	})

	tokenString, err := token.SignedString(middleware.JWTSecret())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "no se pudo generar el token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": tokenString,
		"user":  user,
	})
}

type registerRequest struct {
	Nombre   string `json:"nombre"`
	Usuario  string `json:"usuario"`
	Correo   string `json:"correo"`
	Password string `json:"password"`
}

// POST /api/auth/register
func Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "payload no válido"})
		return
	}

	var exists int
	err := intconfig.DB.QueryRow(`
        SELECT COUNT(*)
        FROM usuarios
        WHERE usuario = ? OR correo = ?
    `, req.Usuario, req.Correo).Scan(&exists)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "falló la verificación de usuario: " + err.Error()})
		return
	}
	if exists > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "el usuario o correo ya está registrado"})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "no se pudo procesar la contraseña"})
		return
	}

	res, err := intconfig.DB.Exec(`
        INSERT INTO usuarios (nombre, usuario, correo, password_hash, rol, estatus, created_at, updated_at)
        VALUES (?, ?, ?, ?, 'taquillero', 'activo', NOW(), NOW())
    `, req.Nombre, req.Usuario, req.Correo, string(hash))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "no se pudo guardar el usuario: " + err.Error()})
		return
	}

	id, _ := res.LastInsertId()

	c.JSON(http.StatusCreated, gin.H{
		"message": "registro exitoso",
		"user": gin.H{
			"id":      id,
			"nombre":  req.Nombre,
			"usuario": req.Usuario,
			"correo":  req.Correo,
			"rol":     "taquillero",
			"estatus": "activo",
		},
	})
}
