package httpresp

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ListResponse is the envelope every collection endpoint returns: the rows
// plus their count, so clients never have to length-check the payload.
type ListResponse[T any] struct {
	Data  []T `json:"data"`
	Total int `json:"total"`
}

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

func List[T any](c *gin.Context, data []T) {
	c.JSON(http.StatusOK, ListResponse[T]{
		Data:  data,
		Total: len(data),
	})
}
