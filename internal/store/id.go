package store

import (
	"strconv"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

const idAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// NewID gera <timestamp em base 36><9 caracteres aleatórios>
func NewID(now time.Time) string {
	return strconv.FormatInt(now.UnixMilli(), 36) + gonanoid.MustGenerate(idAlphabet, 9)
}
