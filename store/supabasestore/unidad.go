package supabasestore

import (
	"context"
	"fmt"
	"net/url"

	"github.com/genexamen/genexamen-backend/models"
	"github.com/genexamen/genexamen-backend/store"
)

type unidadRepo struct {
	c *Client
}

func (r *unidadRepo) List(ctx context.Context, programaAnaliticoID *int64, limit, offset int) ([]models.Unidad, error) {
	q := url.Values{}
	q.Set("select", "unidad_id, numero_unidad, descripcion, num_preguntas, programa_analitico_id")
	q.Set("order", "numero_unidad.asc")
	if programaAnaliticoID != nil {
		q.Set("programa_analitico_id", fmt.Sprintf("eq.%d", *programaAnaliticoID))
	}
	q = withPage(q, limit, offset)

	unidades := []models.Unidad{}
	if err := r.c.selectList(ctx, "list", "unidad", q, &unidades); err != nil {
		return nil, err
	}
	return unidades, nil
}

func (r *unidadRepo) GetByID(ctx context.Context, id int64) (*models.Unidad, error) {
	var unidad models.Unidad
	if err := r.c.selectSingle(ctx, "get", "unidad", eqID("unidad_id", id), &unidad); err != nil {
		return nil, err
	}
	return &unidad, nil
}

func (r *unidadRepo) Create(ctx context.Context, unidad *models.Unidad) (*models.Unidad, error) {
	payload := map[string]any{
		"numero_unidad":         unidad.NumeroUnidad,
		"descripcion":           unidad.Descripcion,
		"num_preguntas":         unidad.NumPreguntas,
		"programa_analitico_id": unidad.ProgramaAnaliticoID,
	}
	var creada models.Unidad
	if err := r.c.insert(ctx, "unidad", payload, &creada); err != nil {
		return nil, err
	}
	return &creada, nil
}

func (r *unidadRepo) Update(ctx context.Context, id int64, patch store.UnidadPatch) (*models.Unidad, error) {
	var unidad models.Unidad
	if err := r.c.patch(ctx, "unidad", eqID("unidad_id", id), patch, &unidad); err != nil {
		return nil, err
	}
	return &unidad, nil
}

func (r *unidadRepo) Delete(ctx context.Context, id int64) error {
	return r.c.remove(ctx, "unidad", eqID("unidad_id", id))
}
