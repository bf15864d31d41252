package store

import (
	"io"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
)

var strict = jsoniter.Config{
	EscapeHTML:             true,
	ValidateJsonRawMessage: true,
	DisallowUnknownFields:  true,
}.Froze()

// Decode lê um rascunho ou patch em JSON recusando campos desconhecidos
func Decode(r io.Reader, v any) error {
	if err := strict.NewDecoder(r).Decode(v); err != nil {
		return errors.Wrap(ErrInvalid, err.Error())
	}
	return nil
}
