package supabasestore

import (
	"context"
	"fmt"
	"net/url"

	"github.com/genexamen/genexamen-backend/models"
	"github.com/genexamen/genexamen-backend/store"
)

type programaRepo struct {
	c *Client
}

func (r *programaRepo) List(ctx context.Context, limit, offset int) ([]models.ProgramaAnalitico, error) {
	q := url.Values{}
	q.Set("select", "linea_educativa_id, titulo, contexto, asignatura_id")
	q = withPage(q, limit, offset)

	programas := []models.ProgramaAnalitico{}
	if err := r.c.selectList(ctx, "list", "programaanalitico", q, &programas); err != nil {
		return nil, err
	}
	return programas, nil
}

func (r *programaRepo) GetByID(ctx context.Context, id int64) (*models.ProgramaAnalitico, error) {
	var programa models.ProgramaAnalitico
	if err := r.c.selectSingle(ctx, "get", "programaanalitico", eqID("linea_educativa_id", id), &programa); err != nil {
		return nil, err
	}
	return &programa, nil
}

func (r *programaRepo) ListByAsignatura(ctx context.Context, asignaturaID int64, limit int) ([]models.ProgramaAnalitico, error) {
	q := url.Values{}
	q.Set("select", "linea_educativa_id, titulo, contexto, asignatura_id")
	q.Set("asignatura_id", fmt.Sprintf("eq.%d", asignaturaID))
	q = withPage(q, limit, 0)

	programas := []models.ProgramaAnalitico{}
	if err := r.c.selectList(ctx, "list", "programaanalitico", q, &programas); err != nil {
		return nil, err
	}
	return programas, nil
}

func (r *programaRepo) Create(ctx context.Context, programa *models.ProgramaAnalitico) (*models.ProgramaAnalitico, error) {
	payload := map[string]any{
		"titulo":        programa.Titulo,
		"contexto":      programa.Contexto,
		"asignatura_id": programa.AsignaturaID,
	}
	var creado models.ProgramaAnalitico
	if err := r.c.insert(ctx, "programaanalitico", payload, &creado); err != nil {
		return nil, err
	}
	return &creado, nil
}

func (r *programaRepo) Update(ctx context.Context, id int64, patch store.ProgramaAnaliticoPatch) (*models.ProgramaAnalitico, error) {
	var programa models.ProgramaAnalitico
	if err := r.c.patch(ctx, "programaanalitico", eqID("linea_educativa_id", id), patch, &programa); err != nil {
		return nil, err
	}
	return &programa, nil
}

func (r *programaRepo) Delete(ctx context.Context, id int64) error {
	return r.c.remove(ctx, "programaanalitico", eqID("linea_educativa_id", id))
}
