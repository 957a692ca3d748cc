package gormstore

import (
	"context"
	"errors"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/genexamen/genexamen-backend/models"
	"github.com/genexamen/genexamen-backend/store"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("abrir sqlite en memoria: %v", err)
	}
	if err := AutoMigrate(db); err != nil {
		t.Fatalf("migrar esquema: %v", err)
	}
	return New(db)
}

func TestCarreraCRUD(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	creada, err := s.Carreras.Create(ctx, &models.Carrera{Descripcion: "Enfermería"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if creada.CarreraID == 0 {
		t.Fatal("Create no asignó la clave primaria")
	}

	leida, err := s.Carreras.GetByID(ctx, creada.CarreraID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if leida.Descripcion != "Enfermería" {
		t.Errorf("descripcion = %q", leida.Descripcion)
	}

	nueva := "Enfermería y Obstetricia"
	actualizada, err := s.Carreras.Update(ctx, creada.CarreraID, store.CarreraPatch{Descripcion: &nueva})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if actualizada.Descripcion != nueva {
		t.Errorf("tras update: descripcion = %q, quiero %q", actualizada.Descripcion, nueva)
	}

	if err := s.Carreras.Delete(ctx, creada.CarreraID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := s.Carreras.GetByID(ctx, creada.CarreraID); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("tras delete: err = %v, quiero store.ErrNotFound", err)
	}
}

func TestGetByIDInexistenteEsNotFound(t *testing.T) {
	s := newTestStore(t)
	if _, err := s.Carreras.GetByID(context.Background(), 404); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("err = %v, quiero store.ErrNotFound", err)
	}
}

func TestDeleteInexistenteEsNotFound(t *testing.T) {
	s := newTestStore(t)
	if err := s.Unidades.Delete(context.Background(), 404); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("err = %v, quiero store.ErrNotFound", err)
	}
}

func TestUpdateParcialSoloTocaCamposNoNil(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	unidad, err := s.Unidades.Create(ctx, &models.Unidad{
		NumeroUnidad:        1,
		Descripcion:         "Sistemas operativos",
		NumPreguntas:        4,
		ProgramaAnaliticoID: 1,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	objetivo := 7
	actualizada, err := s.Unidades.Update(ctx, unidad.UnidadID, store.UnidadPatch{NumPreguntas: &objetivo})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if actualizada.NumPreguntas != 7 {
		t.Errorf("num_preguntas = %d, quiero 7", actualizada.NumPreguntas)
	}
	if actualizada.Descripcion != "Sistemas operativos" || actualizada.NumeroUnidad != 1 {
		t.Errorf("el patch tocó campos no incluidos: %+v", actualizada)
	}
}

func TestFindByDescripcionIgnoraMayusculas(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	for _, d := range []string{"Cálculo I", "Cálculo II", "Física General"} {
		if _, err := s.Asignaturas.Create(ctx, &models.Asignatura{Descripcion: d}); err != nil {
			t.Fatalf("Create %q: %v", d, err)
		}
	}

	// El término va plano; el comodín lo pone el repositorio.
	encontradas, err := s.Asignaturas.FindByDescripcion(ctx, "cálculo")
	if err != nil {
		t.Fatalf("FindByDescripcion: %v", err)
	}
	if len(encontradas) != 2 {
		t.Errorf("coincidencias = %d, quiero 2", len(encontradas))
	}
}

func TestListPreguntasFiltraYOrdena(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	for _, numero := range []int{3, 1, 2} {
		if _, err := s.Preguntas.Create(ctx, &models.Pregunta{
			Enunciado: "p",
			Numero:    numero,
			UnidadID:  1,
		}); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}
	if _, err := s.Preguntas.Create(ctx, &models.Pregunta{Enunciado: "otra", Numero: 1, UnidadID: 2}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	unidadID := int64(1)
	preguntas, err := s.Preguntas.List(ctx, &unidadID, 100, 0)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(preguntas) != 3 {
		t.Fatalf("preguntas = %d, quiero 3 (solo la unidad 1)", len(preguntas))
	}
	for i, p := range preguntas {
		if p.Numero != i+1 {
			t.Errorf("posición %d: numero = %d, quiero %d (orden ascendente)", i, p.Numero, i+1)
		}
	}
}

func TestListUnidadesOrdenaPorNumero(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	for _, numero := range []int{2, 1} {
		if _, err := s.Unidades.Create(ctx, &models.Unidad{
			NumeroUnidad:        numero,
			Descripcion:         "u",
			ProgramaAnaliticoID: 1,
		}); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	programaID := int64(1)
	unidades, err := s.Unidades.List(ctx, &programaID, 100, 0)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(unidades) != 2 || unidades[0].NumeroUnidad != 1 || unidades[1].NumeroUnidad != 2 {
		t.Errorf("unidades = %+v, quiero orden ascendente por numero_unidad", unidades)
	}
}
