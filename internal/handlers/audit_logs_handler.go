package handlers

import (
	"sort"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/pulcro-admin/internal/httperr"
	"github.com/BruksfildServices01/pulcro-admin/internal/models"
	"github.com/BruksfildServices01/pulcro-admin/internal/store"
)

// ======================================================
// HANDLER
// ======================================================

type AuditLogsHandler struct {
	st *store.Store
}

func NewAuditLogsHandler(st *store.Store) *AuditLogsHandler {
	return &AuditLogsHandler{st: st}
}

func (h *AuditLogsHandler) List(c *gin.Context) {
	action := c.Query("action")
	entity := c.Query("entity")
	userID := c.Query("user")
	fromStr := c.Query("from")
	toStr := c.Query("to")

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page <= 0 {
		page = 1
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	// --------------------------------------------------
	// Filtros opcionais
	// --------------------------------------------------

	var from, to time.Time
	if fromStr != "" {
		t, err := time.Parse(models.DateLayout, fromStr)
		if err != nil {
			httperr.BadRequest(c, "invalid_date", "Fecha inválida.")
			return
		}
		from = t
	}
	if toStr != "" {
		t, err := time.Parse(models.DateLayout, toStr)
		if err != nil {
			httperr.BadRequest(c, "invalid_date", "Fecha inválida.")
			return
		}
		to = t.Add(24 * time.Hour)
	}

	all := h.st.AuditLogs.List()
	logs := make([]models.AuditLog, 0, len(all))
	for _, l := range all {
		if action != "" && l.Action != action {
			continue
		}
		if entity != "" && l.Entity != entity {
			continue
		}
		if userID != "" && l.UserID != userID {
			continue
		}
		if !from.IsZero() && l.CreatedAt.Before(from) {
			continue
		}
		if !to.IsZero() && !l.CreatedAt.Before(to) {
			continue
		}
		logs = append(logs, l)
	}

	// mais recentes primeiro
	sort.SliceStable(logs, func(i, j int) bool {
		return logs[i].CreatedAt.After(logs[j].CreatedAt)
	})

	// --------------------------------------------------
	// Paginação
	// --------------------------------------------------

	total := len(logs)
	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	c.JSON(200, gin.H{
		"page":  page,
		"limit": limit,
		"total": total,
		"logs":  logs[start:end],
	})
}
