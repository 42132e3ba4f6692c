package dto

import (
	"time"

	"github.com/mfreitas/sistema-escolar/internal/pkg/viewmeta"
)

// APIResponse is the standard success envelope. Message carries the declared
// success message of the operation, Warning carries non-error outcomes (e.g.
// an empty prepare-email selection), Redirect the follow-up location.
type APIResponse struct {
	Success   bool           `json:"success" example:"true"`
	Message   string         `json:"message,omitempty" example:"Curso criado com sucesso!"`
	Warning   string         `json:"warning,omitempty"`
	Redirect  string         `json:"redirect,omitempty" example:"/cursos/1"`
	Data      interface{}    `json:"data,omitempty"`
	View      *viewmeta.View `json:"view,omitempty"`
	Timestamp time.Time      `json:"timestamp"`
}

// NewDataResponse creates a success response carrying data and view metadata
func NewDataResponse(data interface{}, view viewmeta.View) APIResponse {
	return APIResponse{
		Success:   true,
		Data:      data,
		View:      &view,
		Timestamp: time.Now(),
	}
}

// NewMessageResponse creates a success response carrying a success message
func NewMessageResponse(data interface{}, message string) APIResponse {
	return APIResponse{
		Success:   true,
		Message:   message,
		Data:      data,
		Timestamp: time.Now(),
	}
}
