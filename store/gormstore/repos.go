package gormstore

import (
	"context"

	"gorm.io/gorm"

	"github.com/genexamen/genexamen-backend/models"
	"github.com/genexamen/genexamen-backend/store"
)

// ---------------------------------------------------------------------------
// Carrera

type carreraRepo struct {
	db *gorm.DB
}

func (r *carreraRepo) List(ctx context.Context, limit, offset int) ([]models.Carrera, error) {
	carreras := []models.Carrera{}
	q := paginar(r.db.WithContext(ctx), limit, offset)
	if err := q.Find(&carreras).Error; err != nil {
		return nil, traducir("list", "carrera", err)
	}
	return carreras, nil
}

func (r *carreraRepo) GetByID(ctx context.Context, id int64) (*models.Carrera, error) {
	var carrera models.Carrera
	if err := r.db.WithContext(ctx).First(&carrera, "carrera_id = ?", id).Error; err != nil {
		return nil, traducir("get", "carrera", err)
	}
	return &carrera, nil
}

func (r *carreraRepo) Create(ctx context.Context, carrera *models.Carrera) (*models.Carrera, error) {
	if err := r.db.WithContext(ctx).Create(carrera).Error; err != nil {
		return nil, traducir("create", "carrera", err)
	}
	return carrera, nil
}

func (r *carreraRepo) Update(ctx context.Context, id int64, patch store.CarreraPatch) (*models.Carrera, error) {
	carrera, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	cambios := map[string]any{}
	if patch.Descripcion != nil {
		cambios["descripcion"] = *patch.Descripcion
	}
	if len(cambios) > 0 {
		if err := r.db.WithContext(ctx).Model(carrera).Updates(cambios).Error; err != nil {
			return nil, traducir("update", "carrera", err)
		}
	}
	return carrera, nil
}

func (r *carreraRepo) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&models.Carrera{}, "carrera_id = ?", id)
	if res.Error != nil {
		return traducir("delete", "carrera", res.Error)
	}
	if res.RowsAffected == 0 {
		return store.ErrNotFound
	}
	return nil
}

// ---------------------------------------------------------------------------
// Asignatura

type asignaturaRepo struct {
	db *gorm.DB
}

func (r *asignaturaRepo) List(ctx context.Context, limit, offset int) ([]models.Asignatura, error) {
	asignaturas := []models.Asignatura{}
	q := paginar(r.db.WithContext(ctx), limit, offset)
	if err := q.Find(&asignaturas).Error; err != nil {
		return nil, traducir("list", "asignatura", err)
	}
	return asignaturas, nil
}

func (r *asignaturaRepo) GetByID(ctx context.Context, id int64) (*models.Asignatura, error) {
	var asignatura models.Asignatura
	if err := r.db.WithContext(ctx).First(&asignatura, "asignatura_id = ?", id).Error; err != nil {
		return nil, traducir("get", "asignatura", err)
	}
	return &asignatura, nil
}

func (r *asignaturaRepo) FindByDescripcion(ctx context.Context, descripcion string) ([]models.Asignatura, error) {
	asignaturas := []models.Asignatura{}
	// LOWER() en lugar de ILIKE para que funcione igual en sqlite
	err := r.db.WithContext(ctx).
		Where("LOWER(descripcion) LIKE LOWER(?)", "%"+descripcion+"%").
		Find(&asignaturas).Error
	if err != nil {
		return nil, traducir("list", "asignatura", err)
	}
	return asignaturas, nil
}

func (r *asignaturaRepo) Create(ctx context.Context, asignatura *models.Asignatura) (*models.Asignatura, error) {
	if err := r.db.WithContext(ctx).Create(asignatura).Error; err != nil {
		return nil, traducir("create", "asignatura", err)
	}
	return asignatura, nil
}

func (r *asignaturaRepo) Update(ctx context.Context, id int64, patch store.AsignaturaPatch) (*models.Asignatura, error) {
	asignatura, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	cambios := map[string]any{}
	if patch.Descripcion != nil {
		cambios["descripcion"] = *patch.Descripcion
	}
	if patch.CarreraID != nil {
		cambios["carrera_id"] = *patch.CarreraID
	}
	if len(cambios) > 0 {
		if err := r.db.WithContext(ctx).Model(asignatura).Updates(cambios).Error; err != nil {
			return nil, traducir("update", "asignatura", err)
		}
	}
	return asignatura, nil
}

func (r *asignaturaRepo) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&models.Asignatura{}, "asignatura_id = ?", id)
	if res.Error != nil {
		return traducir("delete", "asignatura", res.Error)
	}
	if res.RowsAffected == 0 {
		return store.ErrNotFound
	}
	return nil
}

// ---------------------------------------------------------------------------
// Partida

type partidaRepo struct {
	db *gorm.DB
}

func (r *partidaRepo) List(ctx context.Context, asignaturaID *int64, limit, offset int) ([]models.Partida, error) {
	partidas := []models.Partida{}
	q := r.db.WithContext(ctx)
	if asignaturaID != nil {
		q = q.Where("asignatura_id = ?", *asignaturaID)
	}
	if err := paginar(q, limit, offset).Find(&partidas).Error; err != nil {
		return nil, traducir("list", "partida", err)
	}
	return partidas, nil
}

func (r *partidaRepo) GetByID(ctx context.Context, id int64) (*models.Partida, error) {
	var partida models.Partida
	if err := r.db.WithContext(ctx).First(&partida, "partida_id = ?", id).Error; err != nil {
		return nil, traducir("get", "partida", err)
	}
	return &partida, nil
}

func (r *partidaRepo) Create(ctx context.Context, partida *models.Partida) (*models.Partida, error) {
	if err := r.db.WithContext(ctx).Create(partida).Error; err != nil {
		return nil, traducir("create", "partida", err)
	}
	return partida, nil
}

func (r *partidaRepo) Update(ctx context.Context, id int64, patch store.PartidaPatch) (*models.Partida, error) {
	partida, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	cambios := map[string]any{}
	if patch.Descripcion != nil {
		cambios["descripcion"] = *patch.Descripcion
	}
	if patch.Slug != nil {
		cambios["slug"] = *patch.Slug
	}
	if len(cambios) > 0 {
		if err := r.db.WithContext(ctx).Model(partida).Updates(cambios).Error; err != nil {
			return nil, traducir("update", "partida", err)
		}
	}
	return partida, nil
}

func (r *partidaRepo) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&models.Partida{}, "partida_id = ?", id)
	if res.Error != nil {
		return traducir("delete", "partida", res.Error)
	}
	if res.RowsAffected == 0 {
		return store.ErrNotFound
	}
	return nil
}

// ---------------------------------------------------------------------------
// ProgramaAnalitico

type programaRepo struct {
	db *gorm.DB
}

func (r *programaRepo) List(ctx context.Context, limit, offset int) ([]models.ProgramaAnalitico, error) {
	programas := []models.ProgramaAnalitico{}
	q := paginar(r.db.WithContext(ctx), limit, offset)
	if err := q.Find(&programas).Error; err != nil {
		return nil, traducir("list", "programaanalitico", err)
	}
	return programas, nil
}

func (r *programaRepo) GetByID(ctx context.Context, id int64) (*models.ProgramaAnalitico, error) {
	var programa models.ProgramaAnalitico
	if err := r.db.WithContext(ctx).First(&programa, "linea_educativa_id = ?", id).Error; err != nil {
		return nil, traducir("get", "programaanalitico", err)
	}
	return &programa, nil
}

func (r *programaRepo) ListByAsignatura(ctx context.Context, asignaturaID int64, limit int) ([]models.ProgramaAnalitico, error) {
	programas := []models.ProgramaAnalitico{}
	q := r.db.WithContext(ctx).Where("asignatura_id = ?", asignaturaID)
	if err := paginar(q, limit, 0).Find(&programas).Error; err != nil {
		return nil, traducir("list", "programaanalitico", err)
	}
	return programas, nil
}

func (r *programaRepo) Create(ctx context.Context, programa *models.ProgramaAnalitico) (*models.ProgramaAnalitico, error) {
	if err := r.db.WithContext(ctx).Create(programa).Error; err != nil {
		return nil, traducir("create", "programaanalitico", err)
	}
	return programa, nil
}

func (r *programaRepo) Update(ctx context.Context, id int64, patch store.ProgramaAnaliticoPatch) (*models.ProgramaAnalitico, error) {
	programa, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	cambios := map[string]any{}
	if patch.Titulo != nil {
		cambios["titulo"] = *patch.Titulo
	}
	if patch.Contexto != nil {
		cambios["contexto"] = *patch.Contexto
	}
	if len(cambios) > 0 {
		if err := r.db.WithContext(ctx).Model(programa).Updates(cambios).Error; err != nil {
			return nil, traducir("update", "programaanalitico", err)
		}
	}
	return programa, nil
}

func (r *programaRepo) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&models.ProgramaAnalitico{}, "linea_educativa_id = ?", id)
	if res.Error != nil {
		return traducir("delete", "programaanalitico", res.Error)
	}
	if res.RowsAffected == 0 {
		return store.ErrNotFound
	}
	return nil
}

// ---------------------------------------------------------------------------
// Unidad

type unidadRepo struct {
	db *gorm.DB
}

func (r *unidadRepo) List(ctx context.Context, programaAnaliticoID *int64, limit, offset int) ([]models.Unidad, error) {
	unidades := []models.Unidad{}
	q := r.db.WithContext(ctx).Order("numero_unidad ASC")
	if programaAnaliticoID != nil {
		q = q.Where("programa_analitico_id = ?", *programaAnaliticoID)
	}
	if err := paginar(q, limit, offset).Find(&unidades).Error; err != nil {
		return nil, traducir("list", "unidad", err)
	}
	return unidades, nil
}

func (r *unidadRepo) GetByID(ctx context.Context, id int64) (*models.Unidad, error) {
	var unidad models.Unidad
	if err := r.db.WithContext(ctx).First(&unidad, "unidad_id = ?", id).Error; err != nil {
		return nil, traducir("get", "unidad", err)
	}
	return &unidad, nil
}

func (r *unidadRepo) Create(ctx context.Context, unidad *models.Unidad) (*models.Unidad, error) {
	if err := r.db.WithContext(ctx).Create(unidad).Error; err != nil {
		return nil, traducir("create", "unidad", err)
	}
	return unidad, nil
}

func (r *unidadRepo) Update(ctx context.Context, id int64, patch store.UnidadPatch) (*models.Unidad, error) {
	unidad, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	cambios := map[string]any{}
	if patch.NumeroUnidad != nil {
		cambios["numero_unidad"] = *patch.NumeroUnidad
	}
	if patch.Descripcion != nil {
		cambios["descripcion"] = *patch.Descripcion
	}
	if patch.NumPreguntas != nil {
		cambios["num_preguntas"] = *patch.NumPreguntas
	}
	if len(cambios) > 0 {
		if err := r.db.WithContext(ctx).Model(unidad).Updates(cambios).Error; err != nil {
			return nil, traducir("update", "unidad", err)
		}
	}
	return unidad, nil
}

func (r *unidadRepo) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&models.Unidad{}, "unidad_id = ?", id)
	if res.Error != nil {
		return traducir("delete", "unidad", res.Error)
	}
	if res.RowsAffected == 0 {
		return store.ErrNotFound
	}
	return nil
}

// ---------------------------------------------------------------------------
// Pregunta

type preguntaRepo struct {
	db *gorm.DB
}

func (r *preguntaRepo) List(ctx context.Context, unidadID *int64, limit, offset int) ([]models.Pregunta, error) {
	preguntas := []models.Pregunta{}
	q := r.db.WithContext(ctx).Order("numero ASC")
	if unidadID != nil {
		q = q.Where("unidad_id = ?", *unidadID)
	}
	if err := paginar(q, limit, offset).Find(&preguntas).Error; err != nil {
		return nil, traducir("list", "pregunta", err)
	}
	return preguntas, nil
}

func (r *preguntaRepo) GetByID(ctx context.Context, id int64) (*models.Pregunta, error) {
	var pregunta models.Pregunta
	if err := r.db.WithContext(ctx).First(&pregunta, "pregunta_id = ?", id).Error; err != nil {
		return nil, traducir("get", "pregunta", err)
	}
	return &pregunta, nil
}

func (r *preguntaRepo) Create(ctx context.Context, pregunta *models.Pregunta) (*models.Pregunta, error) {
	if err := r.db.WithContext(ctx).Create(pregunta).Error; err != nil {
		return nil, traducir("create", "pregunta", err)
	}
	return pregunta, nil
}

func (r *preguntaRepo) Update(ctx context.Context, id int64, patch store.PreguntaPatch) (*models.Pregunta, error) {
	pregunta, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	cambios := map[string]any{}
	if patch.Enunciado != nil {
		cambios["enunciado"] = *patch.Enunciado
	}
	if patch.Numero != nil {
		cambios["numero"] = *patch.Numero
	}
	if patch.Explicacion != nil {
		cambios["explicacion"] = *patch.Explicacion
	}
	if len(cambios) > 0 {
		if err := r.db.WithContext(ctx).Model(pregunta).Updates(cambios).Error; err != nil {
			return nil, traducir("update", "pregunta", err)
		}
	}
	return pregunta, nil
}

func (r *preguntaRepo) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&models.Pregunta{}, "pregunta_id = ?", id)
	if res.Error != nil {
		return traducir("delete", "pregunta", res.Error)
	}
	if res.RowsAffected == 0 {
		return store.ErrNotFound
	}
	return nil
}

// ---------------------------------------------------------------------------
// Opcion

type opcionRepo struct {
	db *gorm.DB
}

func (r *opcionRepo) List(ctx context.Context, preguntaID *int64, limit, offset int) ([]models.Opcion, error) {
	opciones := []models.Opcion{}
	q := r.db.WithContext(ctx)
	if preguntaID != nil {
		q = q.Where("pregunta_id = ?", *preguntaID)
	}
	if err := paginar(q, limit, offset).Find(&opciones).Error; err != nil {
		return nil, traducir("list", "opcion", err)
	}
	return opciones, nil
}

func (r *opcionRepo) GetByID(ctx context.Context, id int64) (*models.Opcion, error) {
	var opcion models.Opcion
	if err := r.db.WithContext(ctx).First(&opcion, "opcion_id = ?", id).Error; err != nil {
		return nil, traducir("get", "opcion", err)
	}
	return &opcion, nil
}

func (r *opcionRepo) Create(ctx context.Context, opcion *models.Opcion) (*models.Opcion, error) {
	if err := r.db.WithContext(ctx).Create(opcion).Error; err != nil {
		return nil, traducir("create", "opcion", err)
	}
	return opcion, nil
}

func (r *opcionRepo) Update(ctx context.Context, id int64, patch store.OpcionPatch) (*models.Opcion, error) {
	opcion, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	cambios := map[string]any{}
	if patch.Opcion != nil {
		cambios["opcion"] = *patch.Opcion
	}
	if patch.EsCorrecta != nil {
		cambios["es_correcta"] = *patch.EsCorrecta
	}
	if patch.MediaURL != nil {
		cambios["media_url"] = *patch.MediaURL
	}
	if len(cambios) > 0 {
		if err := r.db.WithContext(ctx).Model(opcion).Updates(cambios).Error; err != nil {
			return nil, traducir("update", "opcion", err)
		}
	}
	return opcion, nil
}

func (r *opcionRepo) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&models.Opcion{}, "opcion_id = ?", id)
	if res.Error != nil {
		return traducir("delete", "opcion", res.Error)
	}
	if res.RowsAffected == 0 {
		return store.ErrNotFound
	}
	return nil
}
