package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func fecha(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 10, 0, 0, 0, time.UTC)
}

func TestContarPorMes(t *testing.T) {
	conteos := contarPorMes([]time.Time{
		fecha(2026, time.March, 3),
		fecha(2026, time.March, 28),
		fecha(2026, time.January, 15),
		fecha(2026, time.April, 1),
	})

	assert.Equal(t, []conteoMes{
		{mes: "2026-01", cantidad: 1},
		{mes: "2026-03", cantidad: 2},
		{mes: "2026-04", cantidad: 1},
	}, conteos)
}

func TestContarPorMes_Vacio(t *testing.T) {
	assert.Empty(t, contarPorMes(nil))
}

func TestContarPorMes_CruceDeAño(t *testing.T) {
	// El formato YYYY-MM ordena bien a través del cambio de año
	conteos := contarPorMes([]time.Time{
		fecha(2026, time.January, 2),
		fecha(2025, time.December, 30),
	})
	assert.Equal(t, "2025-12", conteos[0].mes)
	assert.Equal(t, "2026-01", conteos[1].mes)
}
