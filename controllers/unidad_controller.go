package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/genexamen/genexamen-backend/models"
	"github.com/genexamen/genexamen-backend/services"
	"github.com/genexamen/genexamen-backend/store"
)

type UnidadController struct {
	store     *store.Store
	generador *services.GeneradorService
}

func NewUnidadController(s *store.Store, generador *services.GeneradorService) *UnidadController {
	return &UnidadController{store: s, generador: generador}
}

type CreateUnidadInput struct {
	NumeroUnidad        int    `json:"numero_unidad" binding:"required"`
	Descripcion         string `json:"descripcion" binding:"required"`
	NumPreguntas        int    `json:"num_preguntas"`
	ProgramaAnaliticoID int64  `json:"programa_analitico_id" binding:"required"`
}

type UpdateUnidadInput struct {
	NumeroUnidad *int    `json:"numero_unidad"`
	Descripcion  *string `json:"descripcion"`
	NumPreguntas *int    `json:"num_preguntas"`
}

type GenerarPreguntasInput struct {
	Cantidad *int `json:"cantidad"`
}

// GET /api/unidades
// Con ?programa_analitico= filtra por programa.
func (ctl *UnidadController) List(c *gin.Context) {
	limit, offset := parsePaginacion(c)

	var programaID *int64
	if v := c.Query("programa_analitico"); v != "" {
		id, ok := parseQueryID(c, v, "programa_analitico")
		if !ok {
			return
		}
		programaID = &id
	}

	unidades, err := ctl.store.Unidades.List(c.Request.Context(), programaID, limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"unidades": unidades})
}

// GET /api/unidades/:id
func (ctl *UnidadController) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	unidad, err := ctl.store.Unidades.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"unidad": unidad})
}

// POST /api/unidades
// Crea la unidad con su objetivo de preguntas y cero preguntas; la
// población es un paso explícito posterior (generar-preguntas).
func (ctl *UnidadController) Create(c *gin.Context) {
	var input CreateUnidadInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Número, descripción y programa son obligatorios"})
		return
	}
	if input.NumPreguntas < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "num_preguntas no puede ser negativo"})
		return
	}
	unidad, err := ctl.store.Unidades.Create(c.Request.Context(), &models.Unidad{
		NumeroUnidad:        input.NumeroUnidad,
		Descripcion:         input.Descripcion,
		NumPreguntas:        input.NumPreguntas,
		ProgramaAnaliticoID: input.ProgramaAnaliticoID,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Unidad creada", "unidad": unidad})
}

// PUT /api/unidades/:id
func (ctl *UnidadController) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var input UpdateUnidadInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cuerpo inválido"})
		return
	}
	unidad, err := ctl.store.Unidades.Update(c.Request.Context(), id, store.UnidadPatch{
		NumeroUnidad: input.NumeroUnidad,
		Descripcion:  input.Descripcion,
		NumPreguntas: input.NumPreguntas,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Unidad actualizada", "unidad": unidad})
}

// DELETE /api/unidades/:id
func (ctl *UnidadController) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := ctl.store.Unidades.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Unidad eliminada"})
}

// POST /api/unidades/:id/generar-preguntas
// Genera el lote de preguntas de la unidad, numerado a continuación del
// máximo existente en el programa. Si el cuerpo trae "cantidad" se usa ese
// objetivo y se actualiza num_preguntas; si no, se usa el vigente.
func (ctl *UnidadController) GenerarPreguntas(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	input := GenerarPreguntasInput{}
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Cuerpo inválido"})
			return
		}
	}

	preguntas, err := ctl.generador.GenerarParaUnidad(c.Request.Context(), id, input.Cantidad)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message":   "Preguntas generadas",
		"preguntas": preguntas,
	})
}
