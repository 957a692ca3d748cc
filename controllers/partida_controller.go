package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gosimple/slug"

	"github.com/genexamen/genexamen-backend/models"
	"github.com/genexamen/genexamen-backend/services"
	"github.com/genexamen/genexamen-backend/store"
)

type PartidaController struct {
	store    *store.Store
	partidas *services.PartidaService
}

func NewPartidaController(s *store.Store, partidas *services.PartidaService) *PartidaController {
	return &PartidaController{store: s, partidas: partidas}
}

type CreatePartidaInput struct {
	Descripcion  string `json:"descripcion" binding:"required"`
	AsignaturaID int64  `json:"asignatura_id" binding:"required"`
}

type UpdatePartidaInput struct {
	Descripcion *string `json:"descripcion"`
}

type CrearPartidaCompletaInput struct {
	Descripcion        string                  `json:"descripcion" binding:"required"`
	AsignaturaID       int64                   `json:"asignatura_id" binding:"required"`
	TituloPrograma     string                  `json:"titulo_programa" binding:"required"`
	Contexto           string                  `json:"contexto"`
	NumUnidades        int                     `json:"num_unidades" binding:"required"`
	PreguntasPorUnidad int                     `json:"preguntas_por_unidad"`
	Unidades           []services.UnidadConfig `json:"unidades"`
}

// GET /api/partidas
// Con ?asignatura= filtra por asignatura.
func (ctl *PartidaController) List(c *gin.Context) {
	limit, offset := parsePaginacion(c)

	var asignaturaID *int64
	if v := c.Query("asignatura"); v != "" {
		id, ok := parseQueryID(c, v, "asignatura")
		if !ok {
			return
		}
		asignaturaID = &id
	}

	partidas, err := ctl.store.Partidas.List(c.Request.Context(), asignaturaID, limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"partidas": partidas})
}

// GET /api/partidas/:id
func (ctl *PartidaController) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	partida, err := ctl.store.Partidas.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"partida": partida})
}

// POST /api/partidas
func (ctl *PartidaController) Create(c *gin.Context) {
	var input CreatePartidaInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Descripción y asignatura son obligatorias"})
		return
	}
	partida, err := ctl.store.Partidas.Create(c.Request.Context(), &models.Partida{
		Descripcion:  input.Descripcion,
		Slug:         slug.Make(input.Descripcion),
		AsignaturaID: input.AsignaturaID,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Partida creada", "partida": partida})
}

// PUT /api/partidas/:id
func (ctl *PartidaController) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var input UpdatePartidaInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cuerpo inválido"})
		return
	}
	patch := store.PartidaPatch{Descripcion: input.Descripcion}
	if input.Descripcion != nil {
		nuevoSlug := slug.Make(*input.Descripcion)
		patch.Slug = &nuevoSlug
	}
	partida, err := ctl.store.Partidas.Update(c.Request.Context(), id, patch)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Partida actualizada", "partida": partida})
}

// DELETE /api/partidas/:id
func (ctl *PartidaController) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := ctl.store.Partidas.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Partida eliminada"})
}

// POST /api/partidas/completa
// Crea partida + programa analítico + unidades con preguntas generadas.
func (ctl *PartidaController) CrearCompleta(c *gin.Context) {
	var input CrearPartidaCompletaInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Todos los campos son obligatorios"})
		return
	}

	resultado, err := ctl.partidas.CrearPartidaCompleta(c.Request.Context(), services.CrearPartidaInput{
		Descripcion:        input.Descripcion,
		AsignaturaID:       input.AsignaturaID,
		TituloPrograma:     input.TituloPrograma,
		Contexto:           input.Contexto,
		NumUnidades:        input.NumUnidades,
		PreguntasPorUnidad: input.PreguntasPorUnidad,
		Unidades:           input.Unidades,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Partida creada con programa y unidades",
		"partida":  resultado.Partida,
		"programa": resultado.Programa,
		"unidades": resultado.Unidades,
	})
}
