package handlers

import (
	"errors"
	"net/http"
	"strings"

	request "panaderia_api/internal/adapter/http/dto/request"
	response "panaderia_api/internal/adapter/http/dto/response"
	"panaderia_api/internal/usecase"
	"panaderia_api/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/multierr"
)

// ShippingHandler serves quotes and the branch/rules catalog.
type ShippingHandler struct {
	usecase usecase.IShippingUseCase
}

func NewShippingHandler(uc usecase.IShippingUseCase) *ShippingHandler {
	return &ShippingHandler{usecase: uc}
}

func (h *ShippingHandler) Quote(c *gin.Context) {
	var payload request.ShippingQuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, bindError("INVALID_QUOTE_INPUT", "Invalid quote payload", err))
		return
	}

	quote, err := h.usecase.Quote(c.Request.Context(), payload.ToLocation())
	if err != nil {
		writeError(c, mapShippingError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromShippingQuote(quote))
}

func (h *ShippingHandler) ListBranches(c *gin.Context) {
	branches, err := h.usecase.ListBranches(c.Request.Context())
	if err != nil {
		writeError(c, mapShippingError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromBranches(branches))
}

func (h *ShippingHandler) GetRules(c *gin.Context) {
	rules, err := h.usecase.GetRules(c.Request.Context())
	if err != nil {
		writeError(c, mapShippingError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromShippingRules(rules))
}

func (h *ShippingHandler) PutRules(c *gin.Context) {
	var payload request.ShippingRulesRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, bindError("INVALID_SHIPPING_RULES", "Invalid shipping rules", err))
		return
	}

	rules, err := h.usecase.PutRules(c.Request.Context(), payload.ToEntity())
	if err != nil {
		writeError(c, mapShippingError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromShippingRules(rules))
}

func (h *ShippingHandler) UpsertBranch(c *gin.Context) {
	var payload request.BranchRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, bindError("INVALID_BRANCH", "Invalid branch", err))
		return
	}

	branch, err := h.usecase.UpsertBranch(c.Request.Context(), payload.ToEntity(c.Param("id")))
	if err != nil {
		writeError(c, mapShippingError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromBranch(branch))
}

func mapShippingError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidBranch):
		return pkg.NewDomainError("INVALID_BRANCH", "Invalid branch", err, http.StatusBadRequest).WithDetails(validationProblems(err))
	case errors.Is(err, usecase.ErrInvalidShippingRules):
		return pkg.NewDomainError("INVALID_SHIPPING_RULES", "Invalid shipping rules", err, http.StatusBadRequest).WithDetails(validationProblems(err))
	default:
		return pkg.NewDomainError(errInternal.Code, errInternal.Message, err, http.StatusInternalServerError)
	}
}

// validationProblems turns an aggregated validation error into field -> problem
// details, e.g. "invalid branch: name is required" becomes {"name": "is required"}.
func validationProblems(err error) map[string]string {
	out := map[string]string{}
	for _, e := range multierr.Errors(err) {
		msg := e.Error()
		if i := strings.Index(msg, ": "); i >= 0 {
			msg = msg[i+2:]
		}
		field, problem, ok := strings.Cut(msg, " ")
		if !ok {
			continue
		}
		out[field] = problem
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
