package services_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/genexamen/genexamen-backend/models"
	"github.com/genexamen/genexamen-backend/services"
	"github.com/genexamen/genexamen-backend/store"
)

func TestGenerarPreguntasCreaLoteConOpciones(t *testing.T) {
	s := newTestStore(t)
	svcs := services.New(s)
	ctx := context.Background()
	programa := seedPrograma(t, s)
	unidad := seedUnidad(t, s, programa.LineaEducativaID, 1, 3)

	creadas, err := svcs.Generador.GenerarPreguntas(ctx, unidad.UnidadID, 1, 3, unidad.Descripcion)
	if err != nil {
		t.Fatalf("GenerarPreguntas: %v", err)
	}
	if len(creadas) != 3 {
		t.Fatalf("creadas = %d, quiero 3", len(creadas))
	}

	for i, pregunta := range creadas {
		quieroNumero := i + 1
		if pregunta.Numero != quieroNumero {
			t.Errorf("pregunta %d: numero = %d, quiero %d", i, pregunta.Numero, quieroNumero)
		}
		quieroEnunciado := fmt.Sprintf("Pregunta %d sobre %s. Explique detalladamente.", quieroNumero, unidad.Descripcion)
		if pregunta.Enunciado != quieroEnunciado {
			t.Errorf("pregunta %d: enunciado = %q, quiero %q", i, pregunta.Enunciado, quieroEnunciado)
		}

		preguntaID := pregunta.PreguntaID
		opciones, err := s.Opciones.List(ctx, &preguntaID, 100, 0)
		if err != nil {
			t.Fatalf("listar opciones: %v", err)
		}
		if len(opciones) != 4 {
			t.Fatalf("pregunta %d: opciones = %d, quiero 4", i, len(opciones))
		}

		correctas := 0
		for _, opcion := range opciones {
			if opcion.EsCorrecta {
				correctas++
			}
		}
		if correctas != 1 {
			t.Errorf("pregunta %d: opciones correctas = %d, quiero exactamente 1", i, correctas)
		}
		quieroCorrecta := fmt.Sprintf("Opción correcta para %s", unidad.Descripcion)
		if opciones[0].Opcion != quieroCorrecta || !opciones[0].EsCorrecta {
			t.Errorf("pregunta %d: primera opción = %q (correcta=%v), quiero %q correcta",
				i, opciones[0].Opcion, opciones[0].EsCorrecta, quieroCorrecta)
		}
	}
}

func TestGenerarPreguntasCantidadCero(t *testing.T) {
	s := newTestStore(t)
	svcs := services.New(s)
	programa := seedPrograma(t, s)
	unidad := seedUnidad(t, s, programa.LineaEducativaID, 1, 0)

	creadas, err := svcs.Generador.GenerarPreguntas(context.Background(), unidad.UnidadID, 1, 0, unidad.Descripcion)
	if err != nil {
		t.Fatalf("cantidad 0 debería ser un no-op válido: %v", err)
	}
	if len(creadas) != 0 {
		t.Errorf("creadas = %d, quiero 0", len(creadas))
	}
}

func TestGenerarPreguntasArgumentosInvalidos(t *testing.T) {
	s := newTestStore(t)
	svcs := services.New(s)
	ctx := context.Background()
	programa := seedPrograma(t, s)
	unidad := seedUnidad(t, s, programa.LineaEducativaID, 1, 0)

	if _, err := svcs.Generador.GenerarPreguntas(ctx, unidad.UnidadID, 1, -1, unidad.Descripcion); !errors.Is(err, services.ErrInvalidArgument) {
		t.Errorf("cantidad negativa: err = %v, quiero ErrInvalidArgument", err)
	}
	if _, err := svcs.Generador.GenerarPreguntas(ctx, unidad.UnidadID, 0, 2, unidad.Descripcion); !errors.Is(err, services.ErrInvalidArgument) {
		t.Errorf("inicio 0: err = %v, quiero ErrInvalidArgument", err)
	}
}

func TestGenerarPreguntasUnidadInexistente(t *testing.T) {
	s := newTestStore(t)
	svcs := services.New(s)

	_, err := svcs.Generador.GenerarPreguntas(context.Background(), 9999, 1, 2, "x")
	if !errors.Is(err, store.ErrNotFound) {
		t.Errorf("err = %v, quiero store.ErrNotFound", err)
	}
}

// preguntasConFalla delega en el repositorio real y falla los Create que
// quedan después de agotar la cuota.
type preguntasConFalla struct {
	store.PreguntaRepository
	cuota int
}

func (f *preguntasConFalla) Create(ctx context.Context, pregunta *models.Pregunta) (*models.Pregunta, error) {
	if f.cuota <= 0 {
		return nil, &store.StoreError{Op: "create", Tabla: "pregunta", Err: errors.New("conexión perdida")}
	}
	f.cuota--
	return f.PreguntaRepository.Create(ctx, pregunta)
}

func TestGenerarPreguntasFallaParcial(t *testing.T) {
	s := newTestStore(t)
	programa := seedPrograma(t, s)
	unidad := seedUnidad(t, s, programa.LineaEducativaID, 1, 5)

	// Las dos primeras preguntas entran, la tercera falla.
	s.Preguntas = &preguntasConFalla{PreguntaRepository: s.Preguntas, cuota: 2}
	svcs := services.New(s)

	creadas, err := svcs.Generador.GenerarPreguntas(context.Background(), unidad.UnidadID, 1, 5, unidad.Descripcion)

	var parcial *services.PartialBatchError
	if !errors.As(err, &parcial) {
		t.Fatalf("err = %v, quiero *PartialBatchError", err)
	}
	if parcial.Creadas != 2 {
		t.Errorf("parcial.Creadas = %d, quiero 2", parcial.Creadas)
	}
	if len(creadas) != 2 {
		t.Errorf("prefijo devuelto = %d preguntas, quiero 2", len(creadas))
	}
}

func TestGenerarParaUnidadContinuaLaNumeracion(t *testing.T) {
	s := newTestStore(t)
	svcs := services.New(s)
	ctx := context.Background()
	programa := seedPrograma(t, s)
	u1 := seedUnidad(t, s, programa.LineaEducativaID, 1, 3)
	u2 := seedUnidad(t, s, programa.LineaEducativaID, 2, 2)

	if _, err := svcs.Generador.GenerarParaUnidad(ctx, u1.UnidadID, nil); err != nil {
		t.Fatalf("generar unidad 1: %v", err)
	}
	creadas, err := svcs.Generador.GenerarParaUnidad(ctx, u2.UnidadID, nil)
	if err != nil {
		t.Fatalf("generar unidad 2: %v", err)
	}

	if got := numerosDe(preguntasDe(t, s, u1.UnidadID)); !igualesInt(got, []int{1, 2, 3}) {
		t.Errorf("unidad 1 = %v, quiero [1 2 3]", got)
	}
	numeros := make([]int, len(creadas))
	for i, p := range creadas {
		numeros[i] = p.Numero
	}
	if !igualesInt(numeros, []int{4, 5}) {
		t.Errorf("unidad 2 = %v, quiero [4 5]", numeros)
	}
}

func TestGenerarParaUnidadConCantidadExplicita(t *testing.T) {
	s := newTestStore(t)
	svcs := services.New(s)
	ctx := context.Background()
	programa := seedPrograma(t, s)
	unidad := seedUnidad(t, s, programa.LineaEducativaID, 1, 3)

	cantidad := 5
	creadas, err := svcs.Generador.GenerarParaUnidad(ctx, unidad.UnidadID, &cantidad)
	if err != nil {
		t.Fatalf("GenerarParaUnidad: %v", err)
	}
	if len(creadas) != 5 {
		t.Errorf("creadas = %d, quiero 5", len(creadas))
	}

	actualizada, err := s.Unidades.GetByID(ctx, unidad.UnidadID)
	if err != nil {
		t.Fatalf("releer unidad: %v", err)
	}
	if actualizada.NumPreguntas != 5 {
		t.Errorf("num_preguntas = %d, quiero 5 (objetivo declarado)", actualizada.NumPreguntas)
	}
}

func TestGenerarParaUnidadExcluyeSusPropiosNumeros(t *testing.T) {
	s := newTestStore(t)
	svcs := services.New(s)
	ctx := context.Background()
	programa := seedPrograma(t, s)
	unidad := seedUnidad(t, s, programa.LineaEducativaID, 1, 2)

	if _, err := svcs.Generador.GenerarParaUnidad(ctx, unidad.UnidadID, nil); err != nil {
		t.Fatalf("primer lote: %v", err)
	}
	// Regenerar la misma unidad: sus números viejos no cuentan, el lote
	// nuevo arranca otra vez en 1.
	creadas, err := svcs.Generador.GenerarParaUnidad(ctx, unidad.UnidadID, nil)
	if err != nil {
		t.Fatalf("segundo lote: %v", err)
	}
	if len(creadas) == 0 {
		t.Fatal("el segundo lote no creó preguntas")
	}
	if creadas[0].Numero != 1 {
		t.Errorf("lote regenerado arranca en %d, quiero 1", creadas[0].Numero)
	}
}
