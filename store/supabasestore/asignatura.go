package supabasestore

import (
	"context"
	"net/url"

	"github.com/genexamen/genexamen-backend/models"
	"github.com/genexamen/genexamen-backend/store"
)

type asignaturaRepo struct {
	c *Client
}

func (r *asignaturaRepo) List(ctx context.Context, limit, offset int) ([]models.Asignatura, error) {
	q := url.Values{}
	q.Set("select", "asignatura_id, descripcion, carrera_id")
	q = withPage(q, limit, offset)

	asignaturas := []models.Asignatura{}
	if err := r.c.selectList(ctx, "list", "asignatura", q, &asignaturas); err != nil {
		return nil, err
	}
	return asignaturas, nil
}

func (r *asignaturaRepo) GetByID(ctx context.Context, id int64) (*models.Asignatura, error) {
	var asignatura models.Asignatura
	if err := r.c.selectSingle(ctx, "get", "asignatura", eqID("asignatura_id", id), &asignatura); err != nil {
		return nil, err
	}
	return &asignatura, nil
}

func (r *asignaturaRepo) FindByDescripcion(ctx context.Context, descripcion string) ([]models.Asignatura, error) {
	// El comodín de PostgREST es *, no %.
	q := url.Values{}
	q.Set("descripcion", "ilike.*"+descripcion+"*")

	asignaturas := []models.Asignatura{}
	if err := r.c.selectList(ctx, "list", "asignatura", q, &asignaturas); err != nil {
		return nil, err
	}
	return asignaturas, nil
}

func (r *asignaturaRepo) Create(ctx context.Context, asignatura *models.Asignatura) (*models.Asignatura, error) {
	payload := map[string]any{
		"descripcion": asignatura.Descripcion,
		"carrera_id":  asignatura.CarreraID,
	}
	var creada models.Asignatura
	if err := r.c.insert(ctx, "asignatura", payload, &creada); err != nil {
		return nil, err
	}
	return &creada, nil
}

func (r *asignaturaRepo) Update(ctx context.Context, id int64, patch store.AsignaturaPatch) (*models.Asignatura, error) {
	var asignatura models.Asignatura
	if err := r.c.patch(ctx, "asignatura", eqID("asignatura_id", id), patch, &asignatura); err != nil {
		return nil, err
	}
	return &asignatura, nil
}

func (r *asignaturaRepo) Delete(ctx context.Context, id int64) error {
	return r.c.remove(ctx, "asignatura", eqID("asignatura_id", id))
}
