// Package compliance contiene la capa de derivación del portal: porcentajes
// de cumplimiento por usuario/departamento y clasificación de urgencia de
// fechas límite. Todas las funciones son puras sobre (filas en memoria, now);
// no hay cache ni memoización — cada petición recalcula.
package compliance

import (
	"math"
	"time"
)

// Niveles de urgencia de una fecha límite.
const (
	UrgencyOverdue  = "overdue"
	UrgencyToday    = "today"
	UrgencyTomorrow = "tomorrow"
	UrgencyUrgent   = "urgent" // ≤ 5 días
	UrgencySoon     = "soon"   // ≤ 15 días
	UrgencyFuture   = "future"
)

const day = 24 * time.Hour

// DaysLeft devuelve los días restantes hasta due redondeando hacia arriba
// (ceil sobre la diferencia en milisegundos). Una fecha a +26h cuenta como
// 2 días; una fecha exactamente en now cuenta como 0.
func DaysLeft(due, now time.Time) int {
	diff := due.Sub(now)
	return int(math.Ceil(float64(diff) / float64(day)))
}

// Urgency clasifica una fecha límite respecto a now. Una fecha exactamente
// en now es "today", no "overdue"; overdue exige que due sea estrictamente
// anterior a now (aunque sea por un milisegundo).
func Urgency(due, now time.Time) string {
	if due.Before(now) {
		return UrgencyOverdue
	}
	daysLeft := DaysLeft(due, now)
	switch {
	case daysLeft == 0:
		return UrgencyToday
	case daysLeft == 1:
		return UrgencyTomorrow
	case daysLeft <= 5:
		return UrgencyUrgent
	case daysLeft <= 15:
		return UrgencySoon
	default:
		return UrgencyFuture
	}
}
