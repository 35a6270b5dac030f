package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrUserNotFound      = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrUnauthorized      = errors.New("no autorizado")
	ErrForbidden         = errors.New("acceso denegado")
	ErrConflict          = errors.New("conflicto con el estado actual")
	ErrInsufficientStock = errors.New("stock insuficiente")
)

// StockInsuficienteError lleva el detalle solicitado vs disponible para el
// mensaje al operador. Desenvuelve a ErrInsufficientStock para errors.Is.
type StockInsuficienteError struct {
	ArticuloCodigo string
	Solicitada     decimal.Decimal
	Disponible     decimal.Decimal
}

func (e *StockInsuficienteError) Error() string {
	return fmt.Sprintf("stock insuficiente para %s: solicitado %s, disponible %s",
		e.ArticuloCodigo, e.Solicitada.String(), e.Disponible.String())
}

func (e *StockInsuficienteError) Unwrap() error { return ErrInsufficientStock }

// NewStockInsuficiente construye el error con detalle.
func NewStockInsuficiente(codigo string, solicitada, disponible decimal.Decimal) error {
	return &StockInsuficienteError{ArticuloCodigo: codigo, Solicitada: solicitada, Disponible: disponible}
}
