package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/pulcro-admin/internal/dto"
	"github.com/BruksfildServices01/pulcro-admin/internal/httperr"
	"github.com/BruksfildServices01/pulcro-admin/internal/httpresp"
	"github.com/BruksfildServices01/pulcro-admin/internal/store"
)

type MeHandler struct {
	st *store.Store
}

func NewMeHandler(st *store.Store) *MeHandler {
	return &MeHandler{st: st}
}

// GetMe devolve o usuário do token. Um usuário apagado depois do login
// deixa de ser aceito.
func (h *MeHandler) GetMe(c *gin.Context) {
	user, ok := h.st.Users.Get(currentUserID(c))
	if !ok {
		httperr.Unauthorized(c, "user_not_found", "Usuario no encontrado.")
		return
	}
	httpresp.OK(c, dto.NewUserDTO(user))
}
