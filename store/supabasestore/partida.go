package supabasestore

import (
	"context"
	"fmt"
	"net/url"

	"github.com/genexamen/genexamen-backend/models"
	"github.com/genexamen/genexamen-backend/store"
)

type partidaRepo struct {
	c *Client
}

func (r *partidaRepo) List(ctx context.Context, asignaturaID *int64, limit, offset int) ([]models.Partida, error) {
	q := url.Values{}
	q.Set("select", "partida_id, descripcion, slug, asignatura_id")
	if asignaturaID != nil {
		q.Set("asignatura_id", fmt.Sprintf("eq.%d", *asignaturaID))
	}
	q = withPage(q, limit, offset)

	partidas := []models.Partida{}
	if err := r.c.selectList(ctx, "list", "partida", q, &partidas); err != nil {
		return nil, err
	}
	return partidas, nil
}

func (r *partidaRepo) GetByID(ctx context.Context, id int64) (*models.Partida, error) {
	var partida models.Partida
	if err := r.c.selectSingle(ctx, "get", "partida", eqID("partida_id", id), &partida); err != nil {
		return nil, err
	}
	return &partida, nil
}

func (r *partidaRepo) Create(ctx context.Context, partida *models.Partida) (*models.Partida, error) {
	payload := map[string]any{
		"descripcion":   partida.Descripcion,
		"slug":          partida.Slug,
		"asignatura_id": partida.AsignaturaID,
	}
	var creada models.Partida
	if err := r.c.insert(ctx, "partida", payload, &creada); err != nil {
		return nil, err
	}
	return &creada, nil
}

func (r *partidaRepo) Update(ctx context.Context, id int64, patch store.PartidaPatch) (*models.Partida, error) {
	var partida models.Partida
	if err := r.c.patch(ctx, "partida", eqID("partida_id", id), patch, &partida); err != nil {
		return nil, err
	}
	return &partida, nil
}

func (r *partidaRepo) Delete(ctx context.Context, id int64) error {
	return r.c.remove(ctx, "partida", eqID("partida_id", id))
}
