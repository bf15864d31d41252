package storage

import (
	"errors"
	"fmt"
)

// ErrStorageFailure permite testar qualquer falha do adaptador com errors.Is
var ErrStorageFailure = errors.New("storage failure")

// Error descreve uma falha de leitura/escrita de uma coleção
type Error struct {
	Op  string // read, write, decode, encode, delete
	Key string
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("storage %s %s: %v", e.Op, e.Key, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

func (e *Error) Is(target error) bool {
	return target == ErrStorageFailure
}
