package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/pulcro-admin/internal/audit"
	"github.com/BruksfildServices01/pulcro-admin/internal/backup"
	"github.com/BruksfildServices01/pulcro-admin/internal/httperr"
	"github.com/BruksfildServices01/pulcro-admin/internal/httpresp"
	"github.com/BruksfildServices01/pulcro-admin/internal/store"
)

type AdminHandler struct {
	st     *store.Store
	audit  *audit.Dispatcher
	backup *backup.Service
}

// NewAdminHandler aceita backup nil quando não há bucket configurado
func NewAdminHandler(st *store.Store, audit *audit.Dispatcher, backup *backup.Service) *AdminHandler {
	return &AdminHandler{st: st, audit: audit, backup: backup}
}

func (h *AdminHandler) Backup(c *gin.Context) {
	if h.backup == nil {
		httperr.Write(c, http.StatusServiceUnavailable, "backup_disabled", "Backups no configurados.")
		return
	}

	res, err := h.backup.Run(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   currentUserID(c),
		Action:   "backup_uploaded",
		Entity:   "backup",
		Metadata: res,
	})
	httpresp.OK(c, res)
}

// Reset apaga todos os dados e volta ao conjunto inicial
func (h *AdminHandler) Reset(c *gin.Context) {
	if err := h.st.Reset(c.Request.Context()); err != nil {
		respondError(c, err)
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID: currentUserID(c),
		Action: "data_reset",
		Entity: "store",
	})
	httpresp.NoContent(c)
}
