package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/BruksfildServices01/pulcro-admin/internal/backup"
	"github.com/BruksfildServices01/pulcro-admin/internal/httperr"
	"github.com/BruksfildServices01/pulcro-admin/internal/log"
	"github.com/BruksfildServices01/pulcro-admin/internal/storage"
	"github.com/BruksfildServices01/pulcro-admin/internal/store"
	"github.com/BruksfildServices01/pulcro-admin/internal/usecase/catalog"
)

func TestRespondError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	log.SetOutput(io.Discard)

	cases := []struct {
		err    error
		status int
		code   string
	}{
		{store.ErrNotFound, http.StatusNotFound, "not_found"},
		{fmt.Errorf("%w: team 1 has bookings", catalog.ErrReferenced), http.StatusConflict, "referenced_entity"},
		{fmt.Errorf("%w: nombre", store.ErrInvalid), http.StatusBadRequest, "invalid_request"},
		{httperr.ErrBusiness("team_not_found"), http.StatusBadRequest, "team_not_found"},
		{httperr.ErrBusiness("invalid_credentials"), http.StatusUnauthorized, "invalid_credentials"},
		{backup.ErrRunning, http.StatusConflict, "backup_running"},
		{&storage.Error{Op: "write", Key: "clientes", Err: errors.New("disk full")}, http.StatusInternalServerError, "storage_failure"},
		{errors.New("boom"), http.StatusInternalServerError, "internal_error"},
	}

	for _, tc := range cases {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

		respondError(c, tc.err)

		assert.Equal(t, tc.status, w.Code, tc.err.Error())
		assert.Contains(t, w.Body.String(), `"error_code":"`+tc.code+`"`, tc.err.Error())
	}
}
