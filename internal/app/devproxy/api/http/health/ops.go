package health

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

const Path = "/_proxy/health"

func (h *Handler) healthCheckOp() huma.Operation {
	return huma.Operation{
		OperationID: "proxy-health-check",
		Method:      http.MethodGet,
		Path:        Path,
		Summary:     "Health check endpoint",
		Description: "Returns the health status of the dev proxy",
		Tags:        []string{"health"},
		Middlewares: h.middleware,
	}
}
