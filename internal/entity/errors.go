package entity

import "errors"

var (
	// ErrNotFound: id ausente da coleção em memória. Nunca vira erro de
	// transporte; handlers traduzem para 404.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicate: violação de unique constraint (23505) no insert.
	ErrDuplicate = errors.New("record already exists")

	// ErrLeadMissing: interaction apontando para lead inexistente (FK 23503).
	ErrLeadMissing = errors.New("referenced lead does not exist")
)
