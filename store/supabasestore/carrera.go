package supabasestore

import (
	"context"
	"net/url"

	"github.com/genexamen/genexamen-backend/models"
	"github.com/genexamen/genexamen-backend/store"
)

type carreraRepo struct {
	c *Client
}

func (r *carreraRepo) List(ctx context.Context, limit, offset int) ([]models.Carrera, error) {
	q := url.Values{}
	q.Set("select", "carrera_id, descripcion")
	q = withPage(q, limit, offset)

	carreras := []models.Carrera{}
	if err := r.c.selectList(ctx, "list", "carrera", q, &carreras); err != nil {
		return nil, err
	}
	return carreras, nil
}

func (r *carreraRepo) GetByID(ctx context.Context, id int64) (*models.Carrera, error) {
	var carrera models.Carrera
	if err := r.c.selectSingle(ctx, "get", "carrera", eqID("carrera_id", id), &carrera); err != nil {
		return nil, err
	}
	return &carrera, nil
}

func (r *carreraRepo) Create(ctx context.Context, carrera *models.Carrera) (*models.Carrera, error) {
	payload := map[string]any{"descripcion": carrera.Descripcion}
	var creada models.Carrera
	if err := r.c.insert(ctx, "carrera", payload, &creada); err != nil {
		return nil, err
	}
	return &creada, nil
}

func (r *carreraRepo) Update(ctx context.Context, id int64, patch store.CarreraPatch) (*models.Carrera, error) {
	var carrera models.Carrera
	if err := r.c.patch(ctx, "carrera", eqID("carrera_id", id), patch, &carrera); err != nil {
		return nil, err
	}
	return &carrera, nil
}

func (r *carreraRepo) Delete(ctx context.Context, id int64) error {
	return r.c.remove(ctx, "carrera", eqID("carrera_id", id))
}
