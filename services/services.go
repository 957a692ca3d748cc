// Package services contiene el motor de numeración y generación de
// preguntas. Todos los servicios reciben el store por inyección; los
// candados por programa se comparten entre ellos.
package services

import "github.com/genexamen/genexamen-backend/store"

type Services struct {
	Numeracion *NumeracionService
	Generador  *GeneradorService
	Partidas   *PartidaService
}

func New(s *store.Store) *Services {
	locks := NewProgramaLocks()
	numeracion := NewNumeracionService(s, locks)
	generador := NewGeneradorService(s, numeracion, locks)
	partidas := NewPartidaService(s, numeracion, generador, locks)
	return &Services{
		Numeracion: numeracion,
		Generador:  generador,
		Partidas:   partidas,
	}
}
