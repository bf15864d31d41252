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

// ServiceTypeItem é o tipo de serviço com quantos agendamentos o usam
type ServiceTypeItem struct {
	models.ServiceType
	Bookings int `json:"totalServicios"`
}

type ServiceTypeHandler struct {
	st     *store.Store
	audit  *audit.Dispatcher
	remove *catalog.DeleteServiceType
}

func NewServiceTypeHandler(st *store.Store, audit *audit.Dispatcher, remove *catalog.DeleteServiceType) *ServiceTypeHandler {
	return &ServiceTypeHandler{st: st, audit: audit, remove: remove}
}

func (h *ServiceTypeHandler) List(c *gin.Context) {
	_, usage := query.UsageCount(h.st.Bookings.List())

	types := h.st.ServiceTypes.List()
	out := make([]ServiceTypeItem, 0, len(types))
	for _, s := range types {
		out = append(out, ServiceTypeItem{ServiceType: s, Bookings: usage[s.ID]})
	}
	httpresp.List(c, out)
}

func (h *ServiceTypeHandler) Get(c *gin.Context) {
	s, ok := h.st.ServiceTypes.Get(c.Param("id"))
	if !ok {
		respondError(c, store.ErrNotFound)
		return
	}
	httpresp.OK(c, s)
}

func (h *ServiceTypeHandler) Create(c *gin.Context) {
	var draft models.ServiceType
	if err := store.Decode(c.Request.Body, &draft); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	s, err := h.st.ServiceTypes.Create(c.Request.Context(), draft)
	if err != nil {
		respondError(c, err)
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   currentUserID(c),
		Action:   "service_type_created",
		Entity:   "service_type",
		EntityID: s.ID,
	})
	httpresp.Created(c, s)
}

func (h *ServiceTypeHandler) Update(c *gin.Context) {
	var patch models.ServiceTypePatch
	if err := store.Decode(c.Request.Body, &patch); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	s, err := h.st.ServiceTypes.Update(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		respondError(c, err)
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   currentUserID(c),
		Action:   "service_type_updated",
		Entity:   "service_type",
		EntityID: s.ID,
		Metadata: patch,
	})
	httpresp.OK(c, s)
}

func (h *ServiceTypeHandler) Delete(c *gin.Context) {
	if err := h.remove.Execute(c.Request.Context(), currentUserID(c), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	httpresp.NoContent(c)
}
