package services

import "sync"

// ProgramaLocks serializa las operaciones de generación y renumeración que
// tocan un mismo programa analítico. Dos llamadas simultáneas sobre el mismo
// programa podrían leer el mismo número máximo y asignar duplicados; el
// candado por programa elimina esa carrera dentro del proceso. Programas
// distintos avanzan en paralelo.
type ProgramaLocks struct {
	mu    sync.Mutex
	locks map[int64]*sync.Mutex
}

func NewProgramaLocks() *ProgramaLocks {
	return &ProgramaLocks{locks: map[int64]*sync.Mutex{}}
}

// Lock bloquea el programa y devuelve la función para liberarlo.
func (p *ProgramaLocks) Lock(programaID int64) func() {
	p.mu.Lock()
	l, ok := p.locks[programaID]
	if !ok {
		l = &sync.Mutex{}
		p.locks[programaID] = l
	}
	p.mu.Unlock()

	l.Lock()
	return l.Unlock
}
