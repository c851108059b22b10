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
	resolveSchemaErrMessage      = "failed to resolve schema"
	validateAttributesErrMessage = "failed to validate attributes"
)

func NewSchemaController(resolver usecases.SchemaResolver, fields usecases.FieldService, validator usecases.BottleValidator) *SchemaController {
	return &SchemaController{
		resolver:  resolver,
		fields:    fields,
		validator: validator,
	}
}

var _ httpserver.Controller = &SchemaController{}

type SchemaController struct {
	resolver  usecases.SchemaResolver
	fields    usecases.FieldService
	validator usecases.BottleValidator
}

func (c *SchemaController) AddRoutes(router *http.ServeMux) {
	router.Handle("GET /v1/schema", c.resolveGlobal())
	router.Handle("GET /v1/schema/snapshot", c.resolveSnapshot())
	router.Handle("GET /v1/schema/{kind}/{id}", c.resolveScoped())
	router.Handle("POST /v1/schema/validation", c.validateAttributes())
}

func (c *SchemaController) resolveGlobal() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c.reply(w, r, domain.GlobalScope())
	}
}

func (c *SchemaController) resolveScoped() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		scope := domain.Scope{
			Kind: domain.ScopeKind(r.PathValue("kind")),
			ID:   domain.ID(r.PathValue("id")),
		}
		if !scope.Kind.IsValid() || scope.Kind == domain.ScopeKindGlobal {
			http.Error(w, "invalid scope kind", http.StatusBadRequest)
			return
		}
		if scope.ID == "" {
			http.Error(w, "scope id is required", http.StatusBadRequest)
			return
		}

		c.reply(w, r, scope)
	}
}

func (c *SchemaController) resolveSnapshot() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snapshot, err := c.resolver.ResolveAll(r.Context())
		if err != nil {
			slog.Error("resolving schema snapshot", slog.String("error", err.Error()))
			http.Error(w, resolveSchemaErrMessage, http.StatusInternalServerError)
			return
		}

		fields, err := c.fields.AllFields(r.Context())
		if err != nil {
			slog.Error("listing fields for schema", slog.String("error", err.Error()))
			http.Error(w, resolveSchemaErrMessage, http.StatusInternalServerError)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToSchemaSnapshotResponse(fields, snapshot))
	}
}

func (c *SchemaController) reply(w http.ResponseWriter, r *http.Request, scope domain.Scope) {
	schema, err := c.resolver.Resolve(r.Context(), scope)
	if errors.Is(err, usecases.ErrScopeNotFound) {
		http.Error(w, scopeNotFoundErrMessage, http.StatusNotFound)
		return
	}
	if err != nil {
		slog.Error("resolving schema", slog.String("error", err.Error()))
		http.Error(w, resolveSchemaErrMessage, http.StatusInternalServerError)
		return
	}

	fields, err := c.fields.AllFields(r.Context())
	if err != nil {
		slog.Error("listing fields for schema", slog.String("error", err.Error()))
		http.Error(w, resolveSchemaErrMessage, http.StatusInternalServerError)
		return
	}

	response := internal.ToResolvedSchemaResponse(scope, fields, schema)
	httpserver.ReplyJSONResponse(w, http.StatusOK, response)
}

func (c *SchemaController) validateAttributes() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body internal.ValidationRequest
		err := httpserver.DecodeJSONBody(r, &body)
		if err != nil {
			slog.Error("decoding validation request", slog.String("error", err.Error()))
			http.Error(w, validateAttributesErrMessage, http.StatusBadRequest)
			return
		}

		scope := domain.SubcategoryScope(domain.ID(body.SubcategoryID))
		if body.SubcategoryID == "" {
			if body.CategoryID == "" {
				http.Error(w, "subcategory_id or category_id is required", http.StatusBadRequest)
				return
			}
			scope = domain.CategoryScope(domain.ID(body.CategoryID))
		}

		err = c.validator.ValidateAttributes(r.Context(), scope, body.Attributes)
		var validationErr *usecases.ValidationError
		if errors.As(err, &validationErr) {
			violations := make([]internal.ValidationViolation, len(validationErr.Violations))
			for i, violation := range validationErr.Violations {
				violations[i] = internal.ValidationViolation{FieldName: violation.FieldName, Label: violation.Label}
			}
			httpserver.ReplyJSONResponse(w, http.StatusUnprocessableEntity, internal.ValidationResponse{Valid: false, Violations: violations})
			return
		}
		if errors.Is(err, usecases.ErrScopeNotFound) || errors.Is(err, usecases.ErrSubcategoryNotFound) {
			http.Error(w, scopeNotFoundErrMessage, http.StatusNotFound)
			return
		}
		if err != nil {
			slog.Error("validating attributes", slog.String("error", err.Error()))
			http.Error(w, validateAttributesErrMessage, http.StatusInternalServerError)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ValidationResponse{Valid: true})
	}
}
