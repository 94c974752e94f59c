package api

import (
	"log"
	stdhttp "net/http"
	"os"
	"strings"
	"time"

	intconfig "despacho/internal/config"
	h "despacho/internal/http/handlers"
	"despacho/internal/http/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func corsConfig() cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowOrigins = []string{
		"http://localhost:3000",
		"http://127.0.0.1:3000",
		"http://localhost:5173",
		"http://127.0.0.1:5173",
	}
	if env := strings.TrimSpace(os.Getenv("CORS_ALLOWED_ORIGINS")); env != "" {
		origins := []string{}
		for _, o := range strings.Split(env, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
		cfg.AllowOrigins = origins
	}
	cfg.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	cfg.AllowHeaders = []string{"Content-Type", "Authorization", "Accept", "Origin", "X-Request-ID"}
	cfg.ExposeHeaders = []string{"X-Request-ID", "X-Export-Path", "X-Export-Error", "Content-Disposition"}
	cfg.AllowCredentials = true
	cfg.MaxAge = 24 * time.Hour
	return cfg
}

func NewRouter(env intconfig.Env) *gin.Engine {
	middleware.SetJWTSecret(env.JWTSecret)

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), cors.New(corsConfig()))

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "ruta no encontrada",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", h.DBCheck)
		api.GET("/routes", h.Routes)

		// Auth
		auth := api.Group("/auth")
		auth.POST("/login", h.Login)
		auth.POST("/register", h.Register)

		priv := api.Group("")
		priv.Use(middleware.Auth())

		// Corridas
		corridas := priv.Group("/corridas")
		corridas.GET("", h.GetCorridas)
		corridas.GET("/:id", h.GetCorridaByID)
		corridas.GET("/:id/seleccion", h.GetCorridaSeleccion)
		corridas.POST("", h.CreateCorrida)
		corridas.PUT("/:id", h.UpdateCorrida)
		corridas.DELETE("/:id", h.DeleteCorrida)

		// Pasajeros
		pasajeros := priv.Group("/pasajeros")
		pasajeros.GET("", h.GetPasajeros)
		pasajeros.POST("", h.CreatePasajero)
		pasajeros.PUT("/:id", h.UpdatePasajero)
		pasajeros.DELETE("/:id", h.DeletePasajero)
		pasajeros.GET("/:id/boleto", h.GetPasajeroBoletoPDF)

		// Paquetes
		paquetes := priv.Group("/paquetes")
		paquetes.GET("", h.GetPaquetes)
		paquetes.GET("/pendientes", h.GetPaquetesPendientes)
		paquetes.POST("", h.CreatePaquete)
		paquetes.PUT("/:id", h.UpdatePaquete)
		paquetes.PUT("/:id/asignar", h.AsignarPaquete)
		paquetes.DELETE("/:id", h.DeletePaquete)
		paquetes.GET("/:id/guia", h.GetPaqueteGuiaPDF)

		// Despacho (corte diario)
		despacho := priv.Group("/despacho")
		despacho.POST("/reporte", h.PostReporteDespacho)
		despacho.POST("/reporte/pdf", h.PostReporteDespachoPDF)
		despacho.GET("/corte", h.GetCorteDefault)

		// Choferes
		choferes := priv.Group("/choferes")
		choferes.GET("", h.GetChoferes)
		choferes.POST("", h.CreateChofer)
		choferes.PUT("/:id", h.UpdateChofer)
		choferes.DELETE("/:id", h.DeleteChofer)

		// Unidades
		unidades := priv.Group("/unidades")
		unidades.GET("", h.GetUnidades)
		unidades.POST("", h.CreateUnidad)
		unidades.PUT("/:id", h.UpdateUnidad)
		unidades.DELETE("/:id", h.DeleteUnidad)

		// Turnos
		turnos := priv.Group("/turnos")
		turnos.GET("", h.GetTurnos)
		turnos.POST("", h.CreateTurno)
		turnos.PUT("/:id", h.UpdateTurno)
		turnos.DELETE("/:id", h.DeleteTurno)

		// Usuarios
		usuarios := priv.Group("/usuarios")
		usuarios.GET("", h.GetUsuarios)
		usuarios.GET("/:id", h.GetUsuarioByID)
		usuarios.POST("", h.CreateUsuario)
		usuarios.PUT("/:id", h.UpdateUsuario)
		usuarios.DELETE("/:id", h.DeleteUsuario)
	}

	h.SetRouter(r)
	return r
}
