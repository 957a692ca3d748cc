package services_test

import (
	"context"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/genexamen/genexamen-backend/models"
	"github.com/genexamen/genexamen-backend/store"
	"github.com/genexamen/genexamen-backend/store/gormstore"
)

// newTestStore levanta un store sobre sqlite en memoria.
func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("abrir sqlite en memoria: %v", err)
	}
	if err := gormstore.AutoMigrate(db); err != nil {
		t.Fatalf("migrar esquema: %v", err)
	}
	return gormstore.New(db)
}

func seedAsignatura(t *testing.T, s *store.Store) *models.Asignatura {
	t.Helper()
	ctx := context.Background()
	carrera, err := s.Carreras.Create(ctx, &models.Carrera{Descripcion: "Ingeniería de Sistemas"})
	if err != nil {
		t.Fatalf("crear carrera: %v", err)
	}
	asignatura, err := s.Asignaturas.Create(ctx, &models.Asignatura{
		Descripcion: "Base de Datos II",
		CarreraID:   &carrera.CarreraID,
	})
	if err != nil {
		t.Fatalf("crear asignatura: %v", err)
	}
	return asignatura
}

func seedPrograma(t *testing.T, s *store.Store) *models.ProgramaAnalitico {
	t.Helper()
	asignatura := seedAsignatura(t, s)
	programa, err := s.Programas.Create(context.Background(), &models.ProgramaAnalitico{
		Titulo:       "Programa 2026",
		Contexto:     "Plan vigente",
		AsignaturaID: asignatura.AsignaturaID,
	})
	if err != nil {
		t.Fatalf("crear programa: %v", err)
	}
	return programa
}

func seedUnidad(t *testing.T, s *store.Store, programaID int64, numero, numPreguntas int) *models.Unidad {
	t.Helper()
	unidad, err := s.Unidades.Create(context.Background(), &models.Unidad{
		NumeroUnidad:        numero,
		Descripcion:         "Modelado relacional",
		NumPreguntas:        numPreguntas,
		ProgramaAnaliticoID: programaID,
	})
	if err != nil {
		t.Fatalf("crear unidad: %v", err)
	}
	return unidad
}

func preguntasDe(t *testing.T, s *store.Store, unidadID int64) []models.Pregunta {
	t.Helper()
	preguntas, err := s.Preguntas.List(context.Background(), &unidadID, 1000, 0)
	if err != nil {
		t.Fatalf("listar preguntas de la unidad %d: %v", unidadID, err)
	}
	return preguntas
}

func numerosDe(preguntas []models.Pregunta) []int {
	numeros := make([]int, len(preguntas))
	for i, p := range preguntas {
		numeros[i] = p.Numero
	}
	return numeros
}

func igualesInt(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
