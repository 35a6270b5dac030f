package produccion

import "github.com/jmcastro/textil-api/internal/domain/entity"

// transiciones define el flujo de estados de un registro de producción.
// ANULADO es alcanzable desde cualquier estado no terminal.
var transiciones = map[string][]string{
	entity.EstadoPendiente:    {entity.EstadoCortado, entity.EstadoAnulado},
	entity.EstadoCortado:      {entity.EstadoEnConfeccion, entity.EstadoAnulado},
	entity.EstadoEnConfeccion: {entity.EstadoAcabado, entity.EstadoAnulado},
	entity.EstadoAcabado:      {entity.EstadoEntregado, entity.EstadoAnulado},
	entity.EstadoEntregado:    {},
	entity.EstadoAnulado:      {},
}

// EsEstadoValido verifica que el estado exista en el flujo.
func EsEstadoValido(estado string) bool {
	_, ok := transiciones[estado]
	return ok
}

// PuedeTransicionar verifica que el paso desde -> hacia esté permitido.
func PuedeTransicionar(desde, hacia string) bool {
	for _, s := range transiciones[desde] {
		if s == hacia {
			return true
		}
	}
	return false
}

// EsTerminal verifica si el estado pertenece al conjunto terminal configurado.
func EsTerminal(estado string, terminales []string) bool {
	for _, t := range terminales {
		if t == estado {
			return true
		}
	}
	return false
}
