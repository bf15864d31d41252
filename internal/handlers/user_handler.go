package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/pulcro-admin/internal/dto"
	"github.com/BruksfildServices01/pulcro-admin/internal/httperr"
	"github.com/BruksfildServices01/pulcro-admin/internal/httpresp"
	"github.com/BruksfildServices01/pulcro-admin/internal/models"
	"github.com/BruksfildServices01/pulcro-admin/internal/store"
	"github.com/BruksfildServices01/pulcro-admin/internal/usecase/account"
)

// UserHandler só é montado atrás do AdminOnly
type UserHandler struct {
	st     *store.Store
	create *account.CreateUser
	update *account.UpdateUser
	remove *account.DeleteUser
}

func NewUserHandler(
	st *store.Store,
	create *account.CreateUser,
	update *account.UpdateUser,
	remove *account.DeleteUser,
) *UserHandler {
	return &UserHandler{st: st, create: create, update: update, remove: remove}
}

func (h *UserHandler) List(c *gin.Context) {
	httpresp.List(c, dto.NewUserDTOs(h.st.Users.List()))
}

func (h *UserHandler) Create(c *gin.Context) {
	var draft models.User
	if err := store.Decode(c.Request.Body, &draft); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	u, err := h.create.Execute(c.Request.Context(), currentUserID(c), draft)
	if err != nil {
		respondError(c, err)
		return
	}
	httpresp.Created(c, dto.NewUserDTO(u))
}

func (h *UserHandler) Update(c *gin.Context) {
	var patch models.UserPatch
	if err := store.Decode(c.Request.Body, &patch); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	u, err := h.update.Execute(c.Request.Context(), currentUserID(c), c.Param("id"), patch)
	if err != nil {
		respondError(c, err)
		return
	}
	httpresp.OK(c, dto.NewUserDTO(u))
}

func (h *UserHandler) Delete(c *gin.Context) {
	if err := h.remove.Execute(c.Request.Context(), currentUserID(c), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	httpresp.NoContent(c)
}
