package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/pulcro-admin/internal/backup"
	"github.com/BruksfildServices01/pulcro-admin/internal/httperr"
	"github.com/BruksfildServices01/pulcro-admin/internal/log"
	"github.com/BruksfildServices01/pulcro-admin/internal/middleware"
	"github.com/BruksfildServices01/pulcro-admin/internal/storage"
	"github.com/BruksfildServices01/pulcro-admin/internal/store"
	"github.com/BruksfildServices01/pulcro-admin/internal/usecase/catalog"
)

var businessMessages = map[string]string{
	"client_not_found":          "Cliente no encontrado.",
	"service_type_not_found":    "Tipo de servicio no encontrado.",
	"team_not_found":            "Equipo no encontrado.",
	"invalid_status":            "Estado inválido.",
	"invalid_status_transition": "Cambio de estado no permitido.",
	"invalid_cuit":              "CUIT inválido.",
	"invalid_credentials":       "Usuario o contraseña incorrectos.",
	"password_required":         "La contraseña es obligatoria.",
	"username_already_exists":   "El nombre de usuario ya existe.",
	"cannot_rename_main_admin":  "No se puede renombrar al administrador principal.",
	"cannot_demote_self":        "No puede quitarse el nivel de administrador.",
	"cannot_delete_self":        "No puede eliminar su propio usuario.",
	"cannot_delete_main_admin":  "No se puede eliminar al administrador principal.",
}

// respondError traduz os erros das camadas de baixo para o corpo {error_code, message}
func respondError(c *gin.Context, err error) {
	code, isBusiness := httperr.BusinessCode(err)

	switch {
	case errors.Is(err, store.ErrNotFound):
		httperr.NotFound(c, "not_found", "Registro no encontrado.")

	case errors.Is(err, catalog.ErrReferenced):
		httperr.Conflict(c, "referenced_entity", "Existen servicios que usan este registro.")

	case errors.Is(err, store.ErrInvalid):
		httperr.BadRequest(c, "invalid_request", err.Error())

	case isBusiness:
		msg := businessMessages[code]
		if code == "invalid_credentials" {
			httperr.Unauthorized(c, code, msg)
			return
		}
		httperr.BadRequest(c, code, msg)

	case errors.Is(err, backup.ErrRunning):
		httperr.Conflict(c, "backup_running", "Ya hay un backup en curso.")

	case errors.Is(err, storage.ErrStorageFailure):
		log.ForContext(c.Request.Context()).WithError(err).Error("storage failure")
		httperr.Internal(c, "storage_failure", "Error al acceder a los datos.")

	default:
		log.ForContext(c.Request.Context()).WithError(err).Error("unexpected error")
		httperr.Internal(c, "internal_error", "Error interno.")
	}
}

func currentUserID(c *gin.Context) string {
	return c.GetString(middleware.ContextUserID)
}
