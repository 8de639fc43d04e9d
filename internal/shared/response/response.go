package response

import (
	"github.com/gin-gonic/gin"
)

// ListMeta describes a list payload: Total is the size of the unfiltered
// source, Count the number of rows returned.
type ListMeta struct {
	Total int  `json:"total"`
	Count int  `json:"count"`
	Empty bool `json:"empty,omitempty"`
}

func NewListMeta(total, count int) ListMeta {
	return ListMeta{
		Total: total,
		Count: count,
		Empty: count == 0,
	}
}

type ApiEnvelope struct {
	Ok    bool      `json:"ok"`
	Data  any       `json:"data,omitempty"`
	Meta  *ListMeta `json:"meta,omitempty"`
	Error any       `json:"error,omitempty"`
}

func Success(c *gin.Context, status int, data any, meta *ListMeta) {
	c.JSON(status, ApiEnvelope{
		Ok:   true,
		Data: data,
		Meta: meta,
	})
}

func Error(c *gin.Context, status int, errorCode string, message string, details any) {
	c.JSON(status, ApiEnvelope{
		Ok: false,
		Error: map[string]any{
			"code":    errorCode,
			"message": message,
			"details": details,
		},
	})
}

// Abort is Error for middleware: it stops the handler chain.
func Abort(c *gin.Context, status int, errorCode string, message string) {
	c.AbortWithStatusJSON(status, ApiEnvelope{
		Ok: false,
		Error: map[string]any{
			"code":    errorCode,
			"message": message,
		},
	})
}
