package routes

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/genexamen/genexamen-backend/controllers"
	"github.com/genexamen/genexamen-backend/services"
	"github.com/genexamen/genexamen-backend/store"
	"github.com/genexamen/genexamen-backend/utils"
)

// SetupRouter registra todas las rutas del API sobre el engine recibido.
// ping es el chequeo de conectividad del backend de datos activo.
func SetupRouter(r *gin.Engine, s *store.Store, svcs *services.Services, media *utils.MediaStorage, ping func(ctx context.Context) error) *gin.Engine {
	health := controllers.NewHealthController(ping)
	carreras := controllers.NewCarreraController(s)
	asignaturas := controllers.NewAsignaturaController(s)
	partidas := controllers.NewPartidaController(s, svcs.Partidas)
	programas := controllers.NewProgramaController(s, svcs.Numeracion)
	unidades := controllers.NewUnidadController(s, svcs.Generador)
	preguntas := controllers.NewPreguntaController(s)
	opciones := controllers.NewOpcionController(s, media)

	r.GET("/ping", health.Ping)
	r.GET("/health", health.Health)

	api := r.Group("/api")

	c := api.Group("/carreras")
	{
		c.GET("", carreras.List)
		c.GET("/:id", carreras.Get)
		c.POST("", carreras.Create)
		c.PUT("/:id", carreras.Update)
		c.DELETE("/:id", carreras.Delete)
	}

	a := api.Group("/asignaturas")
	{
		a.GET("", asignaturas.List)
		a.GET("/:id", asignaturas.Get)
		a.POST("", asignaturas.Create)
		a.PUT("/:id", asignaturas.Update)
		a.DELETE("/:id", asignaturas.Delete)
	}

	p := api.Group("/partidas")
	{
		p.GET("", partidas.List)
		p.GET("/:id", partidas.Get)
		p.POST("", partidas.Create)
		p.PUT("/:id", partidas.Update)
		p.DELETE("/:id", partidas.Delete)

		// Alta combinada: partida + programa + unidades + preguntas
		p.POST("/completa", partidas.CrearCompleta)
	}

	pr := api.Group("/programas")
	{
		pr.GET("", programas.List)
		pr.GET("/:id", programas.Get)
		pr.POST("", programas.Create)
		pr.PUT("/:id", programas.Update)
		pr.DELETE("/:id", programas.Delete)

		// Renumeración global 1..N del programa
		pr.POST("/:id/renumerar", programas.Renumerar)
	}

	u := api.Group("/unidades")
	{
		u.GET("", unidades.List)
		u.GET("/:id", unidades.Get)
		u.POST("", unidades.Create)
		u.PUT("/:id", unidades.Update)
		u.DELETE("/:id", unidades.Delete)

		u.POST("/:id/generar-preguntas", unidades.GenerarPreguntas)
	}

	q := api.Group("/preguntas")
	{
		q.GET("", preguntas.List)
		q.GET("/:id", preguntas.Get)
		q.POST("", preguntas.Create)
		q.PUT("/:id", preguntas.Update)
		q.DELETE("/:id", preguntas.Delete)
	}

	o := api.Group("/opciones")
	{
		o.GET("", opciones.List)
		o.GET("/:id", opciones.Get)
		o.POST("", opciones.Create)
		o.PUT("/:id", opciones.Update)
		o.DELETE("/:id", opciones.Delete)

		o.POST("/:id/media", opciones.SubirMedia)
	}

	return r
}
