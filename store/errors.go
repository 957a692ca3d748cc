package store

import (
	"errors"
	"fmt"
)

// ErrNotFound indica que el id referido no existe en el store.
var ErrNotFound = errors.New("registro no encontrado")

// StoreError envuelve una falla del store (red agotada tras reintentos o
// error no recuperable del lado del servidor).
type StoreError struct {
	Op    string // operación: list, get, create, update, delete
	Tabla string
	Err   error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store: %s %s: %v", e.Op, e.Tabla, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}
