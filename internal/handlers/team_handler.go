package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/pulcro-admin/internal/audit"
	"github.com/BruksfildServices01/pulcro-admin/internal/httperr"
	"github.com/BruksfildServices01/pulcro-admin/internal/httpresp"
	"github.com/BruksfildServices01/pulcro-admin/internal/models"
	"github.com/BruksfildServices01/pulcro-admin/internal/query"
	"github.com/BruksfildServices01/pulcro-admin/internal/store"
	"github.com/BruksfildServices01/pulcro-admin/internal/usecase/catalog"
)

type TeamItem struct {
	models.Team
	Bookings int `json:"totalServicios"`
}

type TeamHandler struct {
	st     *store.Store
	audit  *audit.Dispatcher
	remove *catalog.DeleteTeam
}

func NewTeamHandler(st *store.Store, audit *audit.Dispatcher, remove *catalog.DeleteTeam) *TeamHandler {
	return &TeamHandler{st: st, audit: audit, remove: remove}
}

// List aceita ?activo=true para esconder equipes inativas
func (h *TeamHandler) List(c *gin.Context) {
	usage, _ := query.UsageCount(h.st.Bookings.List())
	onlyActive := c.Query("activo") == "true"

	teams := h.st.Teams.List()
	out := make([]TeamItem, 0, len(teams))
	for _, t := range teams {
		if onlyActive && !t.Active {
			continue
		}
		out = append(out, TeamItem{Team: t, Bookings: usage[t.ID]})
	}
	httpresp.List(c, out)
}

func (h *TeamHandler) Get(c *gin.Context) {
	t, ok := h.st.Teams.Get(c.Param("id"))
	if !ok {
		respondError(c, store.ErrNotFound)
		return
	}
	httpresp.OK(c, t)
}

func (h *TeamHandler) Create(c *gin.Context) {
	var draft models.Team
	if err := store.Decode(c.Request.Body, &draft); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	t, err := h.st.Teams.Create(c.Request.Context(), draft)
	if err != nil {
		respondError(c, err)
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   currentUserID(c),
		Action:   "team_created",
		Entity:   "team",
		EntityID: t.ID,
	})
	httpresp.Created(c, t)
}

func (h *TeamHandler) Update(c *gin.Context) {
	var patch models.TeamPatch
	if err := store.Decode(c.Request.Body, &patch); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	t, err := h.st.Teams.Update(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		respondError(c, err)
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   currentUserID(c),
		Action:   "team_updated",
		Entity:   "team",
		EntityID: t.ID,
		Metadata: patch,
	})
	httpresp.OK(c, t)
}

func (h *TeamHandler) Delete(c *gin.Context) {
	if err := h.remove.Execute(c.Request.Context(), currentUserID(c), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	httpresp.NoContent(c)
}
