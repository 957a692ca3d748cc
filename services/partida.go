package services

import (
	"context"
	"fmt"

	"github.com/gosimple/slug"

	"github.com/genexamen/genexamen-backend/models"
	"github.com/genexamen/genexamen-backend/store"
)

// PartidaService arma el árbol completo partida + programa analítico +
// unidades + preguntas generadas en una sola operación lógica.
type PartidaService struct {
	store      *store.Store
	numeracion *NumeracionService
	generador  *GeneradorService
	locks      *ProgramaLocks
}

func NewPartidaService(s *store.Store, numeracion *NumeracionService, generador *GeneradorService, locks *ProgramaLocks) *PartidaService {
	return &PartidaService{store: s, numeracion: numeracion, generador: generador, locks: locks}
}

// UnidadConfig personaliza una unidad por índice. Los campos nil caen a los
// valores por defecto (numero = i, descripcion = "Unidad {i}",
// num_preguntas = PreguntasPorUnidad).
type UnidadConfig struct {
	Numero       *int    `json:"numero"`
	Descripcion  *string `json:"descripcion"`
	NumPreguntas *int    `json:"num_preguntas"`
}

type CrearPartidaInput struct {
	Descripcion        string
	AsignaturaID       int64
	TituloPrograma     string
	Contexto           string
	NumUnidades        int
	PreguntasPorUnidad int
	Unidades           []UnidadConfig // opcional, puede ser más corta que NumUnidades
}

type PartidaCompleta struct {
	Partida  *models.Partida           `json:"partida"`
	Programa *models.ProgramaAnalitico `json:"programa"`
	Unidades []*models.Unidad          `json:"unidades"`
}

// CrearPartidaCompleta crea la partida, el programa y las N unidades, y
// puebla cada unidad encadenando la numeración a través del asignador, de
// modo que los números queden globalmente contiguos dentro del programa
// (la primera unidad arranca en 1, la siguiente en max+1, etc.).
//
// No hay rollback: si la generación de una unidad falla, la partida, el
// programa y las unidades anteriores quedan persistidos y el error sube.
func (s *PartidaService) CrearPartidaCompleta(ctx context.Context, input CrearPartidaInput) (*PartidaCompleta, error) {
	if input.NumUnidades < 0 {
		return nil, fmt.Errorf("%w: num_unidades no puede ser negativo (%d)", ErrInvalidArgument, input.NumUnidades)
	}
	if input.PreguntasPorUnidad < 0 {
		return nil, fmt.Errorf("%w: preguntas_por_unidad no puede ser negativo (%d)", ErrInvalidArgument, input.PreguntasPorUnidad)
	}
	if _, err := s.store.Asignaturas.GetByID(ctx, input.AsignaturaID); err != nil {
		return nil, fmt.Errorf("asignatura %d: %w", input.AsignaturaID, err)
	}

	partida, err := s.store.Partidas.Create(ctx, &models.Partida{
		Descripcion:  input.Descripcion,
		Slug:         slug.Make(input.Descripcion),
		AsignaturaID: input.AsignaturaID,
	})
	if err != nil {
		return nil, err
	}

	programa, err := s.store.Programas.Create(ctx, &models.ProgramaAnalitico{
		Titulo:       input.TituloPrograma,
		Contexto:     input.Contexto,
		AsignaturaID: input.AsignaturaID,
	})
	if err != nil {
		return nil, err
	}

	unlock := s.locks.Lock(programa.LineaEducativaID)
	defer unlock()

	unidades := make([]*models.Unidad, 0, input.NumUnidades)
	for i := 1; i <= input.NumUnidades; i++ {
		numero := i
		descripcion := fmt.Sprintf("Unidad %d", i)
		numPreguntas := input.PreguntasPorUnidad

		if len(input.Unidades) >= i {
			cfg := input.Unidades[i-1]
			if cfg.Numero != nil {
				numero = *cfg.Numero
			}
			if cfg.Descripcion != nil {
				descripcion = *cfg.Descripcion
			}
			if cfg.NumPreguntas != nil {
				numPreguntas = *cfg.NumPreguntas
			}
		}
		if numPreguntas < 0 {
			return nil, fmt.Errorf("%w: num_preguntas de la unidad %d no puede ser negativo (%d)", ErrInvalidArgument, i, numPreguntas)
		}

		unidad, err := s.store.Unidades.Create(ctx, &models.Unidad{
			NumeroUnidad:        numero,
			Descripcion:         descripcion,
			NumPreguntas:        numPreguntas,
			ProgramaAnaliticoID: programa.LineaEducativaID,
		})
		if err != nil {
			return nil, fmt.Errorf("crear unidad %d: %w", i, err)
		}
		unidades = append(unidades, unidad)

		inicio, err := s.numeracion.SiguienteNumero(ctx, programa.LineaEducativaID, unidad.UnidadID)
		if err != nil {
			return nil, err
		}
		if _, err := s.generador.GenerarPreguntas(ctx, unidad.UnidadID, inicio, numPreguntas, descripcion); err != nil {
			return nil, fmt.Errorf("generar preguntas de la unidad %d: %w", i, err)
		}
	}

	return &PartidaCompleta{
		Partida:  partida,
		Programa: programa,
		Unidades: unidades,
	}, nil
}
