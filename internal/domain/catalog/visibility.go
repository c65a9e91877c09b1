package catalog

import (
	"github.com/tu-usuario/tienda-api/internal/domain"
	"github.com/tu-usuario/tienda-api/internal/domain/entity"
)

// StateFilter restricción efectiva de estados. Estados vacío = sin restricción.
type StateFilter struct {
	Estados []string
}

// SinRestriccion indica que todos los estados son visibles.
func (f StateFilter) SinRestriccion() bool {
	return len(f.Estados) == 0
}

// Permite indica si un estado pasa el filtro.
func (f StateFilter) Permite(estado string) bool {
	if f.SinRestriccion() {
		return true
	}
	for _, e := range f.Estados {
		if e == estado {
			return true
		}
	}
	return false
}

// VisibleStates decide la restricción de estados según el rol del caller y el
// estado solicitado explícitamente (cadena vacía = sin filtro solicitado).
//
//   - Invitado o cliente: siempre el conjunto público. Un estado público
//     solicitado estrecha al singleton; uno no público se ignora y se vuelve
//     al conjunto público.
//   - Admin o vendedor: el estado solicitado se respeta tal cual; sin estado,
//     sin restricción.
//
// Un valor de estado que no pertenece al enum se rechaza con ErrInvalidInput
// para cualquier rol, en lugar de pasarlo en silencio al almacén.
func VisibleStates(caller *Caller, estadoSolicitado string) (StateFilter, error) {
	if estadoSolicitado != "" && !entity.EstadoValido(estadoSolicitado) {
		return StateFilter{}, domain.ErrInvalidInput
	}

	if caller.Privilegiado() {
		if estadoSolicitado != "" {
			return StateFilter{Estados: []string{estadoSolicitado}}, nil
		}
		return StateFilter{}, nil
	}

	publicos := entity.EstadosPublicos()
	if estadoSolicitado != "" {
		for _, e := range publicos {
			if e == estadoSolicitado {
				return StateFilter{Estados: []string{estadoSolicitado}}, nil
			}
		}
	}
	return StateFilter{Estados: publicos}, nil
}
