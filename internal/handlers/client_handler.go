package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/pulcro-admin/internal/httperr"
	"github.com/BruksfildServices01/pulcro-admin/internal/httpresp"
	"github.com/BruksfildServices01/pulcro-admin/internal/models"
	"github.com/BruksfildServices01/pulcro-admin/internal/store"
	"github.com/BruksfildServices01/pulcro-admin/internal/usecase/catalog"
)

type ClientHandler struct {
	st     *store.Store
	create *catalog.CreateClient
	update *catalog.UpdateClient
	remove *catalog.DeleteClient
}

func NewClientHandler(
	st *store.Store,
	create *catalog.CreateClient,
	update *catalog.UpdateClient,
	remove *catalog.DeleteClient,
) *ClientHandler {
	return &ClientHandler{st: st, create: create, update: update, remove: remove}
}

// ======================================================
// LIST CLIENTS
// ======================================================
func (h *ClientHandler) List(c *gin.Context) {
	query := strings.ToLower(strings.TrimSpace(c.Query("query")))

	clients := h.st.Clients.List()
	if query == "" {
		httpresp.List(c, clients)
		return
	}

	out := make([]models.Client, 0, len(clients))
	for _, cl := range clients {
		if strings.Contains(strings.ToLower(cl.Name), query) ||
			strings.Contains(strings.ToLower(cl.Company), query) ||
			strings.Contains(cl.Phone, query) ||
			strings.Contains(strings.ToLower(cl.Email), query) {
			out = append(out, cl)
		}
	}
	httpresp.List(c, out)
}

func (h *ClientHandler) Get(c *gin.Context) {
	cl, ok := h.st.Clients.Get(c.Param("id"))
	if !ok {
		respondError(c, store.ErrNotFound)
		return
	}
	httpresp.OK(c, cl)
}

func (h *ClientHandler) Create(c *gin.Context) {
	var draft models.Client
	if err := store.Decode(c.Request.Body, &draft); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	cl, err := h.create.Execute(c.Request.Context(), currentUserID(c), draft)
	if err != nil {
		respondError(c, err)
		return
	}
	httpresp.Created(c, cl)
}

func (h *ClientHandler) Update(c *gin.Context) {
	var patch models.ClientPatch
	if err := store.Decode(c.Request.Body, &patch); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	cl, err := h.update.Execute(c.Request.Context(), currentUserID(c), c.Param("id"), patch)
	if err != nil {
		respondError(c, err)
		return
	}
	httpresp.OK(c, cl)
}

func (h *ClientHandler) Delete(c *gin.Context) {
	if err := h.remove.Execute(c.Request.Context(), currentUserID(c), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	httpresp.NoContent(c)
}
