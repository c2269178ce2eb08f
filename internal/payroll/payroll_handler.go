package payroll

import (
	"net/http"

	"go-payledger/internal/shared/apperror"
	"go-payledger/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

// Live serves the current-month aggregate. Callers poll this while the live
// view is active; errors after the first successful render are theirs to
// swallow, the handler reports every failure faithfully.
func (h *Handler) Live(c *gin.Context) {
	resp, err := h.service.Live(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

func (h *Handler) Detailed(c *gin.Context) {
	month := c.Param("month")

	resp, err := h.service.Detailed(c.Request.Context(), month)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

func (h *Handler) Months(c *gin.Context) {
	resp, err := h.service.Months(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}
