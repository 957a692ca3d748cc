package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/genexamen/genexamen-backend/models"
	"github.com/genexamen/genexamen-backend/store"
	"github.com/genexamen/genexamen-backend/utils"
)

type OpcionController struct {
	store *store.Store
	media *utils.MediaStorage
}

func NewOpcionController(s *store.Store, media *utils.MediaStorage) *OpcionController {
	return &OpcionController{store: s, media: media}
}

type CreateOpcionInput struct {
	Opcion     string `json:"opcion" binding:"required"`
	EsCorrecta bool   `json:"es_correcta"`
	PreguntaID int64  `json:"pregunta_id" binding:"required"`
}

type UpdateOpcionInput struct {
	Opcion     *string `json:"opcion"`
	EsCorrecta *bool   `json:"es_correcta"`
}

// GET /api/opciones
// Con ?pregunta= filtra por pregunta.
func (ctl *OpcionController) List(c *gin.Context) {
	limit, offset := parsePaginacion(c)

	var preguntaID *int64
	if v := c.Query("pregunta"); v != "" {
		id, ok := parseQueryID(c, v, "pregunta")
		if !ok {
			return
		}
		preguntaID = &id
	}

	opciones, err := ctl.store.Opciones.List(c.Request.Context(), preguntaID, limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"opciones": opciones})
}

// GET /api/opciones/:id
func (ctl *OpcionController) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	opcion, err := ctl.store.Opciones.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"opcion": opcion})
}

// POST /api/opciones
func (ctl *OpcionController) Create(c *gin.Context) {
	var input CreateOpcionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Texto de la opción y pregunta son obligatorios"})
		return
	}
	opcion, err := ctl.store.Opciones.Create(c.Request.Context(), &models.Opcion{
		Opcion:     input.Opcion,
		EsCorrecta: input.EsCorrecta,
		PreguntaID: input.PreguntaID,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Opción creada", "opcion": opcion})
}

// PUT /api/opciones/:id
func (ctl *OpcionController) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var input UpdateOpcionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cuerpo inválido"})
		return
	}
	opcion, err := ctl.store.Opciones.Update(c.Request.Context(), id, store.OpcionPatch{
		Opcion:     input.Opcion,
		EsCorrecta: input.EsCorrecta,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Opción actualizada", "opcion": opcion})
}

// DELETE /api/opciones/:id
// Si la opción tiene media asociada se elimina también del Storage; un
// fallo del Storage no bloquea el borrado del registro.
func (ctl *OpcionController) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	opcion, err := ctl.store.Opciones.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	if err := ctl.store.Opciones.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	if opcion.MediaURL != "" {
		_ = ctl.media.EliminarMedia(opcion.MediaURL)
	}
	c.JSON(http.StatusOK, gin.H{"message": "Opción eliminada"})
}

// POST /api/opciones/:id/media
// Sube un archivo adjunto (imagen) al Storage y guarda la URL pública en la
// opción. Reemplaza el adjunto anterior si existía.
func (ctl *OpcionController) SubirMedia(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	opcion, err := ctl.store.Opciones.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Falta el archivo (campo 'file')"})
		return
	}

	fileID := uuid.New().String()
	publicURL, err := ctl.media.SubirMediaOpcion(fileHeader, fileID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo subir el archivo", "detalle": err.Error()})
		return
	}

	anterior := opcion.MediaURL
	actualizada, err := ctl.store.Opciones.Update(c.Request.Context(), id, store.OpcionPatch{
		MediaURL: &publicURL,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	if anterior != "" {
		_ = ctl.media.EliminarMedia(anterior)
	}
	c.JSON(http.StatusOK, gin.H{"message": "Media subida", "opcion": actualizada})
}
