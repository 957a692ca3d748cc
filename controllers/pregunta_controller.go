package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/genexamen/genexamen-backend/models"
	"github.com/genexamen/genexamen-backend/store"
)

type PreguntaController struct {
	store *store.Store
}

func NewPreguntaController(s *store.Store) *PreguntaController {
	return &PreguntaController{store: s}
}

type CreatePreguntaInput struct {
	Enunciado   string `json:"enunciado" binding:"required"`
	Numero      int    `json:"numero" binding:"required"`
	Explicacion string `json:"explicacion"`
	UnidadID    int64  `json:"unidad_id" binding:"required"`
}

type UpdatePreguntaInput struct {
	Enunciado   *string `json:"enunciado"`
	Numero      *int    `json:"numero"`
	Explicacion *string `json:"explicacion"`
}

// GET /api/preguntas
// Con ?unidad= filtra por unidad, ordenado por numero ascendente.
func (ctl *PreguntaController) List(c *gin.Context) {
	limit, offset := parsePaginacion(c)

	var unidadID *int64
	if v := c.Query("unidad"); v != "" {
		id, ok := parseQueryID(c, v, "unidad")
		if !ok {
			return
		}
		unidadID = &id
	}

	preguntas, err := ctl.store.Preguntas.List(c.Request.Context(), unidadID, limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"preguntas": preguntas})
}

// GET /api/preguntas/:id
func (ctl *PreguntaController) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	pregunta, err := ctl.store.Preguntas.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"pregunta": pregunta})
}

// POST /api/preguntas
func (ctl *PreguntaController) Create(c *gin.Context) {
	var input CreatePreguntaInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Enunciado, número y unidad son obligatorios"})
		return
	}
	if input.Numero < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "El número de pregunta debe ser mayor o igual a 1"})
		return
	}
	pregunta, err := ctl.store.Preguntas.Create(c.Request.Context(), &models.Pregunta{
		Enunciado:   input.Enunciado,
		Numero:      input.Numero,
		Explicacion: input.Explicacion,
		UnidadID:    input.UnidadID,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Pregunta creada", "pregunta": pregunta})
}

// PUT /api/preguntas/:id
func (ctl *PreguntaController) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var input UpdatePreguntaInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cuerpo inválido"})
		return
	}
	if input.Numero != nil && *input.Numero < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "El número de pregunta debe ser mayor o igual a 1"})
		return
	}
	pregunta, err := ctl.store.Preguntas.Update(c.Request.Context(), id, store.PreguntaPatch{
		Enunciado:   input.Enunciado,
		Numero:      input.Numero,
		Explicacion: input.Explicacion,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Pregunta actualizada", "pregunta": pregunta})
}

// DELETE /api/preguntas/:id
func (ctl *PreguntaController) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := ctl.store.Preguntas.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Pregunta eliminada"})
}
