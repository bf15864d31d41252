package catalog

import "errors"

// ErrReferenced indica que ainda existem agendamentos apontando para a entidade
var ErrReferenced = errors.New("referenced_entity")
