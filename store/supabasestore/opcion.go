package supabasestore

import (
	"context"
	"fmt"
	"net/url"

	"github.com/genexamen/genexamen-backend/models"
	"github.com/genexamen/genexamen-backend/store"
)

type opcionRepo struct {
	c *Client
}

func (r *opcionRepo) List(ctx context.Context, preguntaID *int64, limit, offset int) ([]models.Opcion, error) {
	q := url.Values{}
	q.Set("select", "opcion_id, opcion, media_url, es_correcta, pregunta_id")
	if preguntaID != nil {
		q.Set("pregunta_id", fmt.Sprintf("eq.%d", *preguntaID))
	}
	q = withPage(q, limit, offset)

	opciones := []models.Opcion{}
	if err := r.c.selectList(ctx, "list", "opcion", q, &opciones); err != nil {
		return nil, err
	}
	return opciones, nil
}

func (r *opcionRepo) GetByID(ctx context.Context, id int64) (*models.Opcion, error) {
	var opcion models.Opcion
	if err := r.c.selectSingle(ctx, "get", "opcion", eqID("opcion_id", id), &opcion); err != nil {
		return nil, err
	}
	return &opcion, nil
}

func (r *opcionRepo) Create(ctx context.Context, opcion *models.Opcion) (*models.Opcion, error) {
	payload := map[string]any{
		"opcion":      opcion.Opcion,
		"es_correcta": opcion.EsCorrecta,
		"pregunta_id": opcion.PreguntaID,
	}
	if opcion.MediaURL != "" {
		payload["media_url"] = opcion.MediaURL
	}
	var creada models.Opcion
	if err := r.c.insert(ctx, "opcion", payload, &creada); err != nil {
		return nil, err
	}
	return &creada, nil
}

func (r *opcionRepo) Update(ctx context.Context, id int64, patch store.OpcionPatch) (*models.Opcion, error) {
	var opcion models.Opcion
	if err := r.c.patch(ctx, "opcion", eqID("opcion_id", id), patch, &opcion); err != nil {
		return nil, err
	}
	return &opcion, nil
}

func (r *opcionRepo) Delete(ctx context.Context, id int64) error {
	return r.c.remove(ctx, "opcion", eqID("opcion_id", id))
}
