package store

import "errors"

var (
	// ErrNotFound é devolvido por Update/Delete quando o id não existe
	ErrNotFound = errors.New("entity not found")

	// ErrInvalid agrupa falhas de validação de rascunhos e patches
	ErrInvalid = errors.New("invalid entity")
)
