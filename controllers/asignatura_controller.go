package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/genexamen/genexamen-backend/models"
	"github.com/genexamen/genexamen-backend/store"
)

type AsignaturaController struct {
	store *store.Store
}

func NewAsignaturaController(s *store.Store) *AsignaturaController {
	return &AsignaturaController{store: s}
}

type CreateAsignaturaInput struct {
	Descripcion string `json:"descripcion" binding:"required"`
	CarreraID   *int64 `json:"carrera_id"`
}

type UpdateAsignaturaInput struct {
	Descripcion *string `json:"descripcion"`
	CarreraID   *int64  `json:"carrera_id"`
}

// GET /api/asignaturas
// Con ?buscar= filtra por descripción (coincidencia parcial, sin mayúsculas).
func (ctl *AsignaturaController) List(c *gin.Context) {
	ctx := c.Request.Context()

	if buscar := c.Query("buscar"); buscar != "" {
		asignaturas, err := ctl.store.Asignaturas.FindByDescripcion(ctx, buscar)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"asignaturas": asignaturas})
		return
	}

	limit, offset := parsePaginacion(c)
	asignaturas, err := ctl.store.Asignaturas.List(ctx, limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"asignaturas": asignaturas})
}

// GET /api/asignaturas/:id
func (ctl *AsignaturaController) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	asignatura, err := ctl.store.Asignaturas.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"asignatura": asignatura})
}

// POST /api/asignaturas
func (ctl *AsignaturaController) Create(c *gin.Context) {
	var input CreateAsignaturaInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "La descripción es obligatoria"})
		return
	}
	asignatura, err := ctl.store.Asignaturas.Create(c.Request.Context(), &models.Asignatura{
		Descripcion: input.Descripcion,
		CarreraID:   input.CarreraID,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Asignatura creada", "asignatura": asignatura})
}

// PUT /api/asignaturas/:id
func (ctl *AsignaturaController) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var input UpdateAsignaturaInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cuerpo inválido"})
		return
	}
	asignatura, err := ctl.store.Asignaturas.Update(c.Request.Context(), id, store.AsignaturaPatch{
		Descripcion: input.Descripcion,
		CarreraID:   input.CarreraID,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Asignatura actualizada", "asignatura": asignatura})
}

// DELETE /api/asignaturas/:id
func (ctl *AsignaturaController) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := ctl.store.Asignaturas.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Asignatura eliminada"})
}
