package httpapi

import (
	"errors"
	"log/slog"
	"net/http"

	"cellar-server/internal/catalog/domain"
	"cellar-server/internal/catalog/httpapi/internal"
	"cellar-server/internal/catalog/usecases"
	"cellar-server/internal/infra/httpserver"
)

const (
	listRequirementsErrMessage = "failed to list requirements"
	setRequirementErrMessage   = "failed to set requirement"
	scopeNotFoundErrMessage    = "scope not found"
)

func NewRequirementController(service usecases.RequirementService) *RequirementController {
	return &RequirementController{
		service: service,
	}
}

var _ httpserver.Controller = &RequirementController{}

type RequirementController struct {
	service usecases.RequirementService
}

func (c *RequirementController) AddRoutes(router *http.ServeMux) {
	router.Handle("GET /v1/requirements", c.listRequirements())
	router.Handle("PUT /v1/requirements", c.setRequirement())
}

func (c *RequirementController) listRequirements() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var (
			rules []domain.RequirementRule
			err   error
		)

		scopeKind := r.URL.Query().Get("scope_kind")
		if scopeKind == "" {
			rules, err = c.service.AllRequirements(r.Context())
		} else {
			scope := domain.Scope{
				Kind: domain.ScopeKind(scopeKind),
				ID:   domain.ID(r.URL.Query().Get("scope_id")),
			}
			if !scope.Kind.IsValid() {
				http.Error(w, "invalid scope kind", http.StatusBadRequest)
				return
			}
			rules, err = c.service.RequirementsByScope(r.Context(), scope)
		}
		if errors.Is(err, usecases.ErrScopeNotFound) {
			http.Error(w, scopeNotFoundErrMessage, http.StatusNotFound)
			return
		}
		if err != nil {
			slog.Error("listing requirements", slog.String("error", err.Error()))
			http.Error(w, listRequirementsErrMessage, http.StatusInternalServerError)
			return
		}

		responses := make([]internal.RequirementResponse, len(rules))
		for i, rule := range rules {
			responses[i] = internal.ToRequirementResponse(rule)
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, responses)
	}
}

func (c *RequirementController) setRequirement() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body internal.RequirementUpsertRequest
		err := httpserver.DecodeJSONBody(r, &body)
		if err != nil {
			slog.Error("decoding set requirement request", slog.String("error", err.Error()))
			http.Error(w, setRequirementErrMessage, http.StatusBadRequest)
			return
		}

		rule := domain.RequirementRule{
			FieldName: body.FieldName,
			Scope: domain.Scope{
				Kind: domain.ScopeKind(body.ScopeKind),
				ID:   domain.ID(body.ScopeID),
			},
			Enabled:  body.Enabled,
			Required: body.Required,
		}

		rule, err = c.service.SetRequirement(r.Context(), rule)
		if errors.Is(err, usecases.ErrFieldNotFound) {
			http.Error(w, fieldNotFoundErrMessage, http.StatusNotFound)
			return
		}
		if errors.Is(err, usecases.ErrScopeNotFound) {
			http.Error(w, scopeNotFoundErrMessage, http.StatusNotFound)
			return
		}
		if err != nil {
			slog.Error("setting requirement", slog.String("error", err.Error()))
			http.Error(w, setRequirementErrMessage, http.StatusInternalServerError)
			return
		}

		response := internal.ToRequirementResponse(rule)
		httpserver.ReplyJSONResponse(w, http.StatusOK, response)
	}
}
