package entity

import (
	"strings"

	"github.com/jhoicas/pos-analytics/internal/domain"
)

// TimeWindow es el rango de fechas seleccionado en el dashboard.
type TimeWindow string

// Ventanas soportadas.
const (
	WindowAll   TimeWindow = "all"
	WindowToday TimeWindow = "today"
	WindowWeek  TimeWindow = "week"  // últimas 7×24h (ventana móvil)
	WindowMonth TimeWindow = "month" // mismo día del mes anterior
)

// ParseTimeWindow convierte el valor recibido por la API en una TimeWindow.
// Vacío equivale a WindowAll.
func ParseTimeWindow(s string) (TimeWindow, error) {
	switch w := TimeWindow(strings.ToLower(strings.TrimSpace(s))); w {
	case "":
		return WindowAll, nil
	case WindowAll, WindowToday, WindowWeek, WindowMonth:
		return w, nil
	default:
		return "", domain.ErrInvalidWindow
	}
}
