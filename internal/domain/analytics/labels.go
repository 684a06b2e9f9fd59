package analytics

import "time"

// Claves de etiqueta por defecto. Son claves de traducción, no textos finales:
// la capa de presentación las traduce al idioma del usuario.
const (
	DefaultUnknownSellerKey = "unknownUser"
	DefaultUncategorizedKey = "uncategorized"
)

// Labels etiquetas de respaldo que entrega quien invoca el motor.
type Labels struct {
	UnknownSeller string    // clave para vendedores que no están en el directorio
	Uncategorized string    // clave para productos sin categoría o eliminados
	WeekdayNames  [7]string // nombres de los días indexados por time.Weekday (opcional)
}

// DefaultLabels etiquetas con las claves por defecto y sin tabla de días.
func DefaultLabels() Labels {
	return Labels{
		UnknownSeller: DefaultUnknownSellerKey,
		Uncategorized: DefaultUncategorizedKey,
	}
}

// normalized rellena las claves vacías para que ninguna clave de agrupación quede vacía.
func (l Labels) normalized() Labels {
	if l.UnknownSeller == "" {
		l.UnknownSeller = DefaultUnknownSellerKey
	}
	if l.Uncategorized == "" {
		l.Uncategorized = DefaultUncategorizedKey
	}
	return l
}

// WeekdayName nombre del día según la tabla; vacío si no se entregó tabla.
func (l Labels) WeekdayName(d time.Weekday) string {
	if d < time.Sunday || d > time.Saturday {
		return ""
	}
	return l.WeekdayNames[d]
}
