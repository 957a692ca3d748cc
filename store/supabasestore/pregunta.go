package supabasestore

import (
	"context"
	"fmt"
	"net/url"

	"github.com/genexamen/genexamen-backend/models"
	"github.com/genexamen/genexamen-backend/store"
)

type preguntaRepo struct {
	c *Client
}

func (r *preguntaRepo) List(ctx context.Context, unidadID *int64, limit, offset int) ([]models.Pregunta, error) {
	q := url.Values{}
	q.Set("select", "pregunta_id, enunciado, explicacion, numero, unidad_id")
	q.Set("order", "numero.asc")
	if unidadID != nil {
		q.Set("unidad_id", fmt.Sprintf("eq.%d", *unidadID))
	}
	q = withPage(q, limit, offset)

	preguntas := []models.Pregunta{}
	if err := r.c.selectList(ctx, "list", "pregunta", q, &preguntas); err != nil {
		return nil, err
	}
	return preguntas, nil
}

func (r *preguntaRepo) GetByID(ctx context.Context, id int64) (*models.Pregunta, error) {
	var pregunta models.Pregunta
	if err := r.c.selectSingle(ctx, "get", "pregunta", eqID("pregunta_id", id), &pregunta); err != nil {
		return nil, err
	}
	return &pregunta, nil
}

func (r *preguntaRepo) Create(ctx context.Context, pregunta *models.Pregunta) (*models.Pregunta, error) {
	payload := map[string]any{
		"enunciado": pregunta.Enunciado,
		"numero":    pregunta.Numero,
		"unidad_id": pregunta.UnidadID,
	}
	if pregunta.Explicacion != "" {
		payload["explicacion"] = pregunta.Explicacion
	}
	var creada models.Pregunta
	if err := r.c.insert(ctx, "pregunta", payload, &creada); err != nil {
		return nil, err
	}
	return &creada, nil
}

func (r *preguntaRepo) Update(ctx context.Context, id int64, patch store.PreguntaPatch) (*models.Pregunta, error) {
	var pregunta models.Pregunta
	if err := r.c.patch(ctx, "pregunta", eqID("pregunta_id", id), patch, &pregunta); err != nil {
		return nil, err
	}
	return &pregunta, nil
}

func (r *preguntaRepo) Delete(ctx context.Context, id int64) error {
	return r.c.remove(ctx, "pregunta", eqID("pregunta_id", id))
}
