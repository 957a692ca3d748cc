package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/genexamen/genexamen-backend/models"
	"github.com/genexamen/genexamen-backend/services"
	"github.com/genexamen/genexamen-backend/store"
)

type ProgramaController struct {
	store      *store.Store
	numeracion *services.NumeracionService
}

func NewProgramaController(s *store.Store, numeracion *services.NumeracionService) *ProgramaController {
	return &ProgramaController{store: s, numeracion: numeracion}
}

type CreateProgramaInput struct {
	Titulo       string `json:"titulo" binding:"required"`
	Contexto     string `json:"contexto"`
	AsignaturaID int64  `json:"asignatura_id" binding:"required"`
}

type UpdateProgramaInput struct {
	Titulo   *string `json:"titulo"`
	Contexto *string `json:"contexto"`
}

// GET /api/programas
// Con ?asignatura= lista los programas de esa asignatura.
func (ctl *ProgramaController) List(c *gin.Context) {
	ctx := c.Request.Context()

	if v := c.Query("asignatura"); v != "" {
		id, ok := parseQueryID(c, v, "asignatura")
		if !ok {
			return
		}
		programas, err := ctl.store.Programas.ListByAsignatura(ctx, id, 1000)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"programas": programas})
		return
	}

	limit, offset := parsePaginacion(c)
	programas, err := ctl.store.Programas.List(ctx, limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"programas": programas})
}

// GET /api/programas/:id
func (ctl *ProgramaController) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	programa, err := ctl.store.Programas.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"programa": programa})
}

// POST /api/programas
func (ctl *ProgramaController) Create(c *gin.Context) {
	var input CreateProgramaInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Título y asignatura son obligatorios"})
		return
	}
	programa, err := ctl.store.Programas.Create(c.Request.Context(), &models.ProgramaAnalitico{
		Titulo:       input.Titulo,
		Contexto:     input.Contexto,
		AsignaturaID: input.AsignaturaID,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Programa analítico creado", "programa": programa})
}

// PUT /api/programas/:id
func (ctl *ProgramaController) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var input UpdateProgramaInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cuerpo inválido"})
		return
	}
	programa, err := ctl.store.Programas.Update(c.Request.Context(), id, store.ProgramaAnaliticoPatch{
		Titulo:   input.Titulo,
		Contexto: input.Contexto,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Programa analítico actualizado", "programa": programa})
}

// DELETE /api/programas/:id
func (ctl *ProgramaController) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := ctl.store.Programas.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Programa analítico eliminado"})
}

// POST /api/programas/:id/renumerar
// Restaura la numeración contigua 1..N de todas las preguntas del programa.
func (ctl *ProgramaController) Renumerar(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	total, err := ctl.numeracion.RenumerarPrograma(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":              "Programa renumerado",
		"preguntas_procesadas": total,
	})
}
