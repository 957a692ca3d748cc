package services

import (
	"context"
	"fmt"
	"sort"

	"github.com/genexamen/genexamen-backend/models"
	"github.com/genexamen/genexamen-backend/store"
)

// tamPagina es el tamaño de página de los recorridos del motor. Los
// recorridos siguen pidiendo páginas hasta agotar las filas: el cálculo del
// máximo y la renumeración necesitan ver todas las preguntas del programa.
const tamPagina = 1000

// NumeracionService asigna y restaura la numeración secuencial de preguntas
// dentro de un programa analítico.
type NumeracionService struct {
	store *store.Store
	locks *ProgramaLocks
}

func NewNumeracionService(s *store.Store, locks *ProgramaLocks) *NumeracionService {
	return &NumeracionService{store: s, locks: locks}
}

func (s *NumeracionService) unidadesDelPrograma(ctx context.Context, programaID int64) ([]models.Unidad, error) {
	todas := []models.Unidad{}
	for offset := 0; ; offset += tamPagina {
		pagina, err := s.store.Unidades.List(ctx, &programaID, tamPagina, offset)
		if err != nil {
			return nil, err
		}
		todas = append(todas, pagina...)
		if len(pagina) < tamPagina {
			return todas, nil
		}
	}
}

func (s *NumeracionService) preguntasDeUnidad(ctx context.Context, unidadID int64) ([]models.Pregunta, error) {
	todas := []models.Pregunta{}
	for offset := 0; ; offset += tamPagina {
		pagina, err := s.store.Preguntas.List(ctx, &unidadID, tamPagina, offset)
		if err != nil {
			return nil, err
		}
		todas = append(todas, pagina...)
		if len(pagina) < tamPagina {
			return todas, nil
		}
	}
}

// SiguienteNumero calcula el número inicial para un lote nuevo de preguntas:
// max(numero existente en el programa) + 1, o 1 si no hay ninguna. Las
// preguntas de excluirUnidadID no cuentan, para que regenerar una unidad ya
// poblada no se choque con sus propios números viejos. excluirUnidadID = 0
// no excluye nada. Sin efectos secundarios.
func (s *NumeracionService) SiguienteNumero(ctx context.Context, programaID, excluirUnidadID int64) (int, error) {
	unidades, err := s.unidadesDelPrograma(ctx, programaID)
	if err != nil {
		return 0, err
	}

	max := 0
	for _, unidad := range unidades {
		if unidad.UnidadID == excluirUnidadID {
			continue
		}
		preguntas, err := s.preguntasDeUnidad(ctx, unidad.UnidadID)
		if err != nil {
			return 0, err
		}
		for _, pregunta := range preguntas {
			if pregunta.Numero > max {
				max = pregunta.Numero
			}
		}
	}
	return max + 1, nil
}

// RenumerarPrograma reasigna 1..N a todas las preguntas del programa:
// unidades en orden ascendente de numero_unidad y, dentro de cada unidad,
// preguntas en orden ascendente de su número actual (el orden relativo se
// conserva aunque cambien los valores absolutos). Solo se persisten las
// preguntas cuyo número cambia, así que repetirla sin escrituras intermedias
// es idempotente. Devuelve el total de preguntas recorridas.
func (s *NumeracionService) RenumerarPrograma(ctx context.Context, programaID int64) (int, error) {
	if _, err := s.store.Programas.GetByID(ctx, programaID); err != nil {
		return 0, err
	}

	unlock := s.locks.Lock(programaID)
	defer unlock()

	unidades, err := s.unidadesDelPrograma(ctx, programaID)
	if err != nil {
		return 0, err
	}
	sort.SliceStable(unidades, func(i, j int) bool {
		return unidades[i].NumeroUnidad < unidades[j].NumeroUnidad
	})

	contador := 0
	for _, unidad := range unidades {
		preguntas, err := s.preguntasDeUnidad(ctx, unidad.UnidadID)
		if err != nil {
			return contador, err
		}
		sort.SliceStable(preguntas, func(i, j int) bool {
			return preguntas[i].Numero < preguntas[j].Numero
		})

		for _, pregunta := range preguntas {
			contador++
			if pregunta.Numero == contador {
				continue
			}
			nuevo := contador
			_, err := s.store.Preguntas.Update(ctx, pregunta.PreguntaID, store.PreguntaPatch{Numero: &nuevo})
			if err != nil {
				return contador, fmt.Errorf("renumerar pregunta %d: %w", pregunta.PreguntaID, err)
			}
		}
	}
	return contador, nil
}
