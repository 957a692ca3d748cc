package services

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument indica parámetros estructuralmente inválidos
// (cantidades negativas, números de inicio menores a 1, etc.).
var ErrInvalidArgument = errors.New("argumento inválido")

// PartialBatchError describe una operación por lotes que falló a mitad de
// camino. Los registros ya creados NO se revierten: el llamador decide la
// política de reintento o limpieza.
type PartialBatchError struct {
	Creadas int // preguntas completas (con sus 4 opciones) creadas antes de la falla
	Err     error
}

func (e *PartialBatchError) Error() string {
	return fmt.Sprintf("lote interrumpido tras %d preguntas creadas: %v", e.Creadas, e.Err)
}

func (e *PartialBatchError) Unwrap() error {
	return e.Err
}
