// Package store define el contrato CRUD que el motor de generación consume.
// Hay dos implementaciones: supabasestore (API REST de Supabase) y
// gormstore (conexión directa a PostgreSQL con GORM).
package store

import (
	"context"

	"github.com/genexamen/genexamen-backend/models"
)

type CarreraRepository interface {
	List(ctx context.Context, limit, offset int) ([]models.Carrera, error)
	GetByID(ctx context.Context, id int64) (*models.Carrera, error)
	Create(ctx context.Context, carrera *models.Carrera) (*models.Carrera, error)
	Update(ctx context.Context, id int64, patch CarreraPatch) (*models.Carrera, error)
	Delete(ctx context.Context, id int64) error
}

type AsignaturaRepository interface {
	List(ctx context.Context, limit, offset int) ([]models.Asignatura, error)
	GetByID(ctx context.Context, id int64) (*models.Asignatura, error)
	// FindByDescripcion busca por coincidencia parcial de descripción sin
	// distinguir mayúsculas. Recibe el término plano; cada implementación
	// aplica su propia sintaxis de comodines.
	FindByDescripcion(ctx context.Context, descripcion string) ([]models.Asignatura, error)
	Create(ctx context.Context, asignatura *models.Asignatura) (*models.Asignatura, error)
	Update(ctx context.Context, id int64, patch AsignaturaPatch) (*models.Asignatura, error)
	Delete(ctx context.Context, id int64) error
}

type PartidaRepository interface {
	List(ctx context.Context, asignaturaID *int64, limit, offset int) ([]models.Partida, error)
	GetByID(ctx context.Context, id int64) (*models.Partida, error)
	Create(ctx context.Context, partida *models.Partida) (*models.Partida, error)
	Update(ctx context.Context, id int64, patch PartidaPatch) (*models.Partida, error)
	Delete(ctx context.Context, id int64) error
}

type ProgramaAnaliticoRepository interface {
	List(ctx context.Context, limit, offset int) ([]models.ProgramaAnalitico, error)
	GetByID(ctx context.Context, id int64) (*models.ProgramaAnalitico, error)
	ListByAsignatura(ctx context.Context, asignaturaID int64, limit int) ([]models.ProgramaAnalitico, error)
	Create(ctx context.Context, programa *models.ProgramaAnalitico) (*models.ProgramaAnalitico, error)
	Update(ctx context.Context, id int64, patch ProgramaAnaliticoPatch) (*models.ProgramaAnalitico, error)
	Delete(ctx context.Context, id int64) error
}

type UnidadRepository interface {
	List(ctx context.Context, programaAnaliticoID *int64, limit, offset int) ([]models.Unidad, error)
	GetByID(ctx context.Context, id int64) (*models.Unidad, error)
	Create(ctx context.Context, unidad *models.Unidad) (*models.Unidad, error)
	Update(ctx context.Context, id int64, patch UnidadPatch) (*models.Unidad, error)
	Delete(ctx context.Context, id int64) error
}

type PreguntaRepository interface {
	List(ctx context.Context, unidadID *int64, limit, offset int) ([]models.Pregunta, error)
	GetByID(ctx context.Context, id int64) (*models.Pregunta, error)
	Create(ctx context.Context, pregunta *models.Pregunta) (*models.Pregunta, error)
	Update(ctx context.Context, id int64, patch PreguntaPatch) (*models.Pregunta, error)
	Delete(ctx context.Context, id int64) error
}

type OpcionRepository interface {
	List(ctx context.Context, preguntaID *int64, limit, offset int) ([]models.Opcion, error)
	GetByID(ctx context.Context, id int64) (*models.Opcion, error)
	Create(ctx context.Context, opcion *models.Opcion) (*models.Opcion, error)
	Update(ctx context.Context, id int64, patch OpcionPatch) (*models.Opcion, error)
	Delete(ctx context.Context, id int64) error
}

// Store agrupa los repositorios de las siete colecciones. Se construye una
// sola vez en el arranque y se inyecta en los servicios y controladores.
type Store struct {
	Carreras    CarreraRepository
	Asignaturas AsignaturaRepository
	Partidas    PartidaRepository
	Programas   ProgramaAnaliticoRepository
	Unidades    UnidadRepository
	Preguntas   PreguntaRepository
	Opciones    OpcionRepository
}

// Los patch usan punteros: solo los campos no nil se envían al store.

type CarreraPatch struct {
	Descripcion *string `json:"descripcion,omitempty"`
}

type AsignaturaPatch struct {
	Descripcion *string `json:"descripcion,omitempty"`
	CarreraID   *int64  `json:"carrera_id,omitempty"`
}

type PartidaPatch struct {
	Descripcion *string `json:"descripcion,omitempty"`
	Slug        *string `json:"slug,omitempty"`
}

type ProgramaAnaliticoPatch struct {
	Titulo   *string `json:"titulo,omitempty"`
	Contexto *string `json:"contexto,omitempty"`
}

type UnidadPatch struct {
	NumeroUnidad *int    `json:"numero_unidad,omitempty"`
	Descripcion  *string `json:"descripcion,omitempty"`
	NumPreguntas *int    `json:"num_preguntas,omitempty"`
}

type PreguntaPatch struct {
	Enunciado   *string `json:"enunciado,omitempty"`
	Numero      *int    `json:"numero,omitempty"`
	Explicacion *string `json:"explicacion,omitempty"`
}

type OpcionPatch struct {
	Opcion     *string `json:"opcion,omitempty"`
	EsCorrecta *bool   `json:"es_correcta,omitempty"`
	MediaURL   *string `json:"media_url,omitempty"`
}
