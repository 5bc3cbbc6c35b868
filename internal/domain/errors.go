// Package domain defines the typed error outcomes of the service layer.
// Handlers translate each kind to a fixed HTTP status; anything that is not
// a *domain.Error surfaces as an opaque 500.
package domain

import "fmt"

type Kind int

const (
	KindValidacion Kind = iota
	KindConflicto
	KindReferenciaInvalida
	KindNoEncontrado
	KindNoAutorizado
)

// Error carries a client-safe Spanish message plus the kind that decides
// its HTTP status.
type Error struct {
	Kind    Kind
	Mensaje string
}

func (e *Error) Error() string { return e.Mensaje }

func Validacion(format string, args ...any) *Error {
	return &Error{Kind: KindValidacion, Mensaje: fmt.Sprintf(format, args...)}
}

func Conflicto(format string, args ...any) *Error {
	return &Error{Kind: KindConflicto, Mensaje: fmt.Sprintf(format, args...)}
}

func ReferenciaInvalida(format string, args ...any) *Error {
	return &Error{Kind: KindReferenciaInvalida, Mensaje: fmt.Sprintf(format, args...)}
}

// NoEncontrado takes the full message ("Categoría no encontrada") so that
// gendered Spanish agreement stays with the caller.
func NoEncontrado(mensaje string) *Error {
	return &Error{Kind: KindNoEncontrado, Mensaje: mensaje}
}

func NoAutorizado(mensaje string) *Error {
	return &Error{Kind: KindNoAutorizado, Mensaje: mensaje}
}
