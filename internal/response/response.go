package response

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/accelhub-dev/accelhub/internal/apperr"
	"github.com/accelhub-dev/accelhub/internal/pagination"
)

// Envelope is the single canonical response shape used by every endpoint.
type Envelope struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Data    any               `json:"data"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// List is the payload shape for paginated collection endpoints.
type List struct {
	Data any             `json:"data"`
	Meta pagination.Meta `json:"meta"`
}

func OK(ctx *gin.Context, message string, data any) {
	ctx.JSON(http.StatusOK, Envelope{Success: true, Message: message, Data: data})
}

func Created(ctx *gin.Context, message string, data any) {
	ctx.JSON(http.StatusCreated, Envelope{Success: true, Message: message, Data: data})
}

// Error maps any error through the taxonomy and writes the failure envelope.
// Untyped errors are logged with their cause; the client only ever sees the
// generic internal message for those.
func Error(ctx *gin.Context, err error) {
	appErr := apperr.From(err)

	if appErr.Kind == apperr.KindInternal {
		if cause := appErr.Unwrap(); cause != nil {
			log.Printf("internal error on %s %s: %v", ctx.Request.Method, ctx.Request.URL.Path, cause)
		}
	}

	message := appErr.Message
	if appErr.Kind == apperr.KindInternal && gin.Mode() == gin.ReleaseMode {
		message = "Internal server error"
	}

	ctx.AbortWithStatusJSON(appErr.Status, Envelope{
		Success: false,
		Message: message,
		Data:    nil,
		Fields:  appErr.Fields,
	})
}
