package service

import (
	"sort"
	"time"
)

// mesesCrecimiento is the trailing window the dashboard charts cover.
const mesesCrecimiento = 6

func inicioVentanaCrecimiento() time.Time {
	return time.Now().AddDate(0, -mesesCrecimiento, 0)
}

type conteoMes struct {
	mes      string // YYYY-MM
	cantidad int
}

// contarPorMes buckets creation timestamps by calendar month, ascending.
// Months without rows are omitted, matching what a GROUP BY would return.
func contarPorMes(fechas []time.Time) []conteoMes {
	porMes := make(map[string]int)
	for _, f := range fechas {
		porMes[f.Format("2006-01")]++
	}

	meses := make([]string, 0, len(porMes))
	for m := range porMes {
		meses = append(meses, m)
	}
	sort.Strings(meses)

	conteos := make([]conteoMes, 0, len(meses))
	for _, m := range meses {
		conteos = append(conteos, conteoMes{mes: m, cantidad: porMes[m]})
	}
	return conteos
}
