package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/genexamen/genexamen-backend/models"
	"github.com/genexamen/genexamen-backend/store"
)

type CarreraController struct {
	store *store.Store
}

func NewCarreraController(s *store.Store) *CarreraController {
	return &CarreraController{store: s}
}

type CreateCarreraInput struct {
	Descripcion string `json:"descripcion" binding:"required"`
}

type UpdateCarreraInput struct {
	Descripcion *string `json:"descripcion"`
}

// GET /api/carreras
func (ctl *CarreraController) List(c *gin.Context) {
	limit, offset := parsePaginacion(c)
	carreras, err := ctl.store.Carreras.List(c.Request.Context(), limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"carreras": carreras})
}

// GET /api/carreras/:id
func (ctl *CarreraController) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	carrera, err := ctl.store.Carreras.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"carrera": carrera})
}

// POST /api/carreras
func (ctl *CarreraController) Create(c *gin.Context) {
	var input CreateCarreraInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "La descripción es obligatoria"})
		return
	}
	carrera, err := ctl.store.Carreras.Create(c.Request.Context(), &models.Carrera{Descripcion: input.Descripcion})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Carrera creada", "carrera": carrera})
}

// PUT /api/carreras/:id
func (ctl *CarreraController) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var input UpdateCarreraInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cuerpo inválido"})
		return
	}
	carrera, err := ctl.store.Carreras.Update(c.Request.Context(), id, store.CarreraPatch{Descripcion: input.Descripcion})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Carrera actualizada", "carrera": carrera})
}

// DELETE /api/carreras/:id
func (ctl *CarreraController) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := ctl.store.Carreras.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Carrera eliminada"})
}
