package services

import (
	"context"
	"fmt"

	"github.com/genexamen/genexamen-backend/models"
	"github.com/genexamen/genexamen-backend/store"
)

// GeneradorService crea lotes deterministas de preguntas con sus opciones
// para una unidad.
type GeneradorService struct {
	store      *store.Store
	numeracion *NumeracionService
	locks      *ProgramaLocks
}

func NewGeneradorService(s *store.Store, numeracion *NumeracionService, locks *ProgramaLocks) *GeneradorService {
	return &GeneradorService{store: s, numeracion: numeracion, locks: locks}
}

// GenerarPreguntas crea cantidad preguntas para la unidad con números
// contiguos [numeroInicio, numeroInicio+cantidad-1]. Cada pregunta recibe 4
// opciones; la primera es la correcta. cantidad = 0 es un no-op válido.
// Ante una falla del store a mitad del lote devuelve *PartialBatchError con
// lo ya creado, sin revertir nada.
func (g *GeneradorService) GenerarPreguntas(ctx context.Context, unidadID int64, numeroInicio, cantidad int, descripcionUnidad string) ([]*models.Pregunta, error) {
	if cantidad < 0 {
		return nil, fmt.Errorf("%w: cantidad no puede ser negativa (%d)", ErrInvalidArgument, cantidad)
	}
	if numeroInicio < 1 {
		return nil, fmt.Errorf("%w: numero_inicio debe ser >= 1 (%d)", ErrInvalidArgument, numeroInicio)
	}
	if _, err := g.store.Unidades.GetByID(ctx, unidadID); err != nil {
		return nil, err
	}

	creadas := make([]*models.Pregunta, 0, cantidad)
	for i := 0; i < cantidad; i++ {
		numero := numeroInicio + i
		pregunta := &models.Pregunta{
			Enunciado: fmt.Sprintf("Pregunta %d sobre %s. Explique detalladamente.", numero, descripcionUnidad),
			Numero:    numero,
			UnidadID:  unidadID,
		}
		pregunta, err := g.store.Preguntas.Create(ctx, pregunta)
		if err != nil {
			return creadas, &PartialBatchError{Creadas: len(creadas), Err: err}
		}

		textos := [4]string{
			fmt.Sprintf("Opción correcta para %s", descripcionUnidad),
			fmt.Sprintf("Opción parcial para %s", descripcionUnidad),
			fmt.Sprintf("Opción incorrecta relacionada con %s", descripcionUnidad),
			fmt.Sprintf("Opción no relacionada con %s", descripcionUnidad),
		}
		for j, texto := range textos {
			opcion := &models.Opcion{
				Opcion:     texto,
				EsCorrecta: j == 0,
				PreguntaID: pregunta.PreguntaID,
			}
			if _, err := g.store.Opciones.Create(ctx, opcion); err != nil {
				return creadas, &PartialBatchError{Creadas: len(creadas), Err: err}
			}
		}
		creadas = append(creadas, pregunta)
	}
	return creadas, nil
}

// GenerarParaUnidad es la operación de alto nivel del endpoint HTTP: ubica
// la unidad, toma el candado de su programa, pide al asignador el número
// inicial (excluyendo la propia unidad) y genera el lote. Si cantidad no es
// nil, se actualiza num_preguntas de la unidad a ese objetivo declarado;
// si es nil se usa el num_preguntas vigente.
func (g *GeneradorService) GenerarParaUnidad(ctx context.Context, unidadID int64, cantidad *int) ([]*models.Pregunta, error) {
	unidad, err := g.store.Unidades.GetByID(ctx, unidadID)
	if err != nil {
		return nil, err
	}

	objetivo := unidad.NumPreguntas
	if cantidad != nil {
		if *cantidad < 0 {
			return nil, fmt.Errorf("%w: cantidad no puede ser negativa (%d)", ErrInvalidArgument, *cantidad)
		}
		objetivo = *cantidad
	}

	unlock := g.locks.Lock(unidad.ProgramaAnaliticoID)
	defer unlock()

	inicio, err := g.numeracion.SiguienteNumero(ctx, unidad.ProgramaAnaliticoID, unidad.UnidadID)
	if err != nil {
		return nil, err
	}

	if cantidad != nil && objetivo != unidad.NumPreguntas {
		if _, err := g.store.Unidades.Update(ctx, unidadID, store.UnidadPatch{NumPreguntas: &objetivo}); err != nil {
			return nil, err
		}
	}

	return g.GenerarPreguntas(ctx, unidadID, inicio, objetivo, unidad.Descripcion)
}
