package httpresp

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

const ContentTypeText = "text/plain; charset=utf-8"

type ListResponse[T any] struct {
	Data  []T `json:"data"`
	Total int `json:"total"`
}

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

func List[T any](c *gin.Context, data []T) {
	if data == nil {
		data = []T{}
	}
	c.JSON(http.StatusOK, ListResponse[T]{
		Data:  data,
		Total: len(data),
	})
}

// Text responde texto puro (hojas de ruta, relatórios)
func Text(c *gin.Context, body string) {
	c.Data(http.StatusOK, ContentTypeText, []byte(body))
}

// Attachment força o download com o nome informado
func Attachment(c *gin.Context, contentType, filename string, body []byte) {
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, contentType, body)
}
