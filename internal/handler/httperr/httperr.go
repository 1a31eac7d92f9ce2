package httperr

import (
	"net/http"

	"loyalty-engine/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

type DuplicateDetail struct {
	Fields []string `json:"fields"`
}

type IneligibleDetail struct {
	Reason string `json:"reason"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// Handle renders a usecase error with the status its sentinel maps to.
func Handle(c *gin.Context, err error) {
	status, msg, detail := Classify(err)
	AbortWithError(c, status, err, msg, detail)
}

func Classify(err error) (int, string, any) {
	var (
		dup  *errs.DuplicateError
		inel *errs.IneligibleError
	)
	switch {
	case errs.As(err, &dup):
		return http.StatusConflict, "A benefit with the same definition already exists", DuplicateDetail{Fields: dup.Fields}
	case errs.As(err, &inel):
		return http.StatusUnprocessableEntity, "Benefit is not eligible", IneligibleDetail{Reason: inel.Reason}
	case errs.Is(err, errs.ErrInsufficientPoints):
		return http.StatusUnprocessableEntity, "Insufficient points", nil
	case errs.Is(err, errs.ErrValidation):
		return http.StatusBadRequest, "Validation failed", errs.Fields(err)
	case errs.Is(err, errs.ErrOrderAlreadyClosed):
		return http.StatusConflict, "Order is already closed", nil
	case errs.Is(err, errs.ErrIdempotencyMismatch):
		return http.StatusConflict, "Idempotency key was used with a different request", nil
	case errs.Is(err, errs.ErrIdempotencyInProgress):
		return http.StatusConflict, "Request with this idempotency key is being processed", nil
	case errs.Is(err, errs.ErrForbidden):
		return http.StatusForbidden, "Insufficient permissions", nil
	case errs.Is(err, errs.ErrBenefitNotFound):
		return http.StatusNotFound, "Benefit not found", nil
	case errs.Is(err, errs.ErrClientNotFound):
		return http.StatusNotFound, "Client not found", nil
	case errs.Is(err, errs.ErrOrderNotFound):
		return http.StatusNotFound, "Order not found", nil
	case errs.Is(err, errs.ErrProductNotFound):
		return http.StatusNotFound, "Product not found", nil
	default:
		return http.StatusInternalServerError, "Internal server error", nil
	}
}
