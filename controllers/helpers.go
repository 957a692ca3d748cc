package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/genexamen/genexamen-backend/services"
	"github.com/genexamen/genexamen-backend/store"
)

// parseID lee un id numérico de la ruta. Responde 400 y devuelve false si
// no es un entero positivo.
func parseID(c *gin.Context, nombre string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(nombre), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id inválido"})
		return 0, false
	}
	return id, true
}

// parseQueryID valida un id numérico recibido como parámetro de query.
func parseQueryID(c *gin.Context, valor, nombre string) (int64, bool) {
	id, err := strconv.ParseInt(valor, 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "parámetro " + nombre + " inválido"})
		return 0, false
	}
	return id, true
}

// parsePaginacion lee limit/offset de la query con los defaults del sistema.
func parsePaginacion(c *gin.Context) (int, int) {
	limit := 100
	offset := 0
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}
	if v := c.Query("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			offset = n
		}
	}
	return limit, offset
}

// respondError traduce la taxonomía de errores del motor a códigos HTTP.
func respondError(c *gin.Context, err error) {
	var parcial *services.PartialBatchError
	switch {
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "registro no encontrado"})
	case errors.Is(err, services.ErrInvalidArgument):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.As(err, &parcial):
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":             "la generación falló a mitad del lote; los registros ya creados no se revierten",
			"preguntas_creadas": parcial.Creadas,
			"detalle":           parcial.Err.Error(),
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
