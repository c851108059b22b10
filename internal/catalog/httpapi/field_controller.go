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
	createFieldErrMessage     = "failed to create field"
	listFieldsErrMessage      = "failed to list fields"
	getFieldErrMessage        = "failed to get field"
	updateFieldErrMessage     = "failed to update field"
	deleteFieldErrMessage     = "failed to delete field"
	fieldNotFoundErrMessage   = "field not found"
	fieldDuplicatedErrMessage = "a field with this name already exists"
	builtinFieldErrMessage    = "builtin fields cannot be renamed or deleted"
	atomicRewriteErrMessage   = "field change could not be applied atomically"
)

func NewFieldController(service usecases.FieldService) *FieldController {
	return &FieldController{
		service: service,
	}
}

var _ httpserver.Controller = &FieldController{}

type FieldController struct {
	service usecases.FieldService
}

func (c *FieldController) AddRoutes(router *http.ServeMux) {
	router.Handle("GET /v1/fields", c.listFields())
	router.Handle("POST /v1/fields", c.createField())
	router.Handle("GET /v1/fields/{name}", c.getField())
	router.Handle("PUT /v1/fields/{name}", c.updateField())
	router.Handle("DELETE /v1/fields/{name}", c.deleteField())
}

func (c *FieldController) listFields() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fields, err := c.service.AllFields(r.Context())
		if err != nil {
			slog.Error("listing fields", slog.String("error", err.Error()))
			http.Error(w, listFieldsErrMessage, http.StatusInternalServerError)
			return
		}

		responses := make([]internal.FieldResponse, len(fields))
		for i, field := range fields {
			responses[i] = internal.ToFieldResponse(field)
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, responses)
	}
}

func (c *FieldController) createField() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body internal.FieldCreateRequest
		err := httpserver.DecodeJSONBody(r, &body)
		if err != nil {
			slog.Error("decoding create field request", slog.String("error", err.Error()))
			http.Error(w, createFieldErrMessage, http.StatusBadRequest)
			return
		}

		builder := domain.NewFieldDefinitionBuilder().
			WithLabel(body.Label).
			WithHelpText(body.HelpText).
			WithPlaceholder(body.Placeholder)
		if body.InputKind != "" {
			builder = builder.WithInputKind(domain.InputKind(body.InputKind))
		}
		if body.FormWidth != 0 {
			builder = builder.WithFormWidth(body.FormWidth)
		}

		field, err := builder.Build()
		if err != nil {
			slog.Error("building field definition", slog.String("error", err.Error()))
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		// The initial rule lands at the caller's scope, global by default.
		scope := domain.GlobalScope()
		if body.ScopeKind != "" {
			scope = domain.Scope{Kind: domain.ScopeKind(body.ScopeKind), ID: domain.ID(body.ScopeID)}
			if !scope.Kind.IsValid() {
				http.Error(w, "invalid scope kind", http.StatusBadRequest)
				return
			}
			if !scope.IsGlobal() && scope.ID == "" {
				http.Error(w, "scope id is required", http.StatusBadRequest)
				return
			}
		}

		initial := domain.ResolvedField{Enabled: body.Enabled, Required: body.Required}
		field, err = c.service.CreateField(r.Context(), field, scope, initial)
		if errors.Is(err, usecases.ErrFieldDuplicated) {
			http.Error(w, fieldDuplicatedErrMessage, http.StatusConflict)
			return
		}
		if errors.Is(err, usecases.ErrScopeNotFound) {
			http.Error(w, scopeNotFoundErrMessage, http.StatusNotFound)
			return
		}
		if err != nil {
			slog.Error("creating field", slog.String("error", err.Error()))
			http.Error(w, createFieldErrMessage, http.StatusInternalServerError)
			return
		}

		response := internal.ToFieldResponse(field)
		httpserver.ReplyJSONResponse(w, http.StatusCreated, response)
	}
}

func (c *FieldController) getField() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := r.PathValue("name")
		if name == "" {
			http.Error(w, "field name is required", http.StatusBadRequest)
			return
		}

		field, err := c.service.GetField(r.Context(), name)
		if errors.Is(err, usecases.ErrFieldNotFound) {
			http.Error(w, fieldNotFoundErrMessage, http.StatusNotFound)
			return
		}
		if err != nil {
			slog.Error("getting field", slog.String("error", err.Error()))
			http.Error(w, getFieldErrMessage, http.StatusInternalServerError)
			return
		}

		response := internal.ToFieldResponse(field)
		httpserver.ReplyJSONResponse(w, http.StatusOK, response)
	}
}

func (c *FieldController) updateField() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := r.PathValue("name")
		if name == "" {
			http.Error(w, "field name is required", http.StatusBadRequest)
			return
		}

		var body internal.FieldUpdateRequest
		err := httpserver.DecodeJSONBody(r, &body)
		if err != nil {
			slog.Error("decoding update field request", slog.String("error", err.Error()))
			http.Error(w, updateFieldErrMessage, http.StatusBadRequest)
			return
		}

		update := usecases.FieldUpdate{
			Label:        body.Label,
			HelpText:     body.HelpText,
			Placeholder:  body.Placeholder,
			FormWidth:    body.FormWidth,
			DisplayOrder: body.DisplayOrder,
		}
		if body.InputKind != nil {
			kind := domain.InputKind(*body.InputKind)
			if !kind.IsValid() {
				http.Error(w, "invalid input kind", http.StatusBadRequest)
				return
			}
			update.InputKind = &kind
		}

		field, err := c.service.UpdateField(r.Context(), name, update)
		if errors.Is(err, usecases.ErrFieldNotFound) {
			http.Error(w, fieldNotFoundErrMessage, http.StatusNotFound)
			return
		}
		if errors.Is(err, usecases.ErrBuiltinFieldProtected) {
			http.Error(w, builtinFieldErrMessage, http.StatusConflict)
			return
		}
		if errors.Is(err, usecases.ErrFieldDuplicated) {
			http.Error(w, fieldDuplicatedErrMessage, http.StatusConflict)
			return
		}
		if errors.Is(err, usecases.ErrAtomicRewriteFailed) {
			slog.Error("renaming field", slog.String("error", err.Error()))
			http.Error(w, atomicRewriteErrMessage, http.StatusInternalServerError)
			return
		}
		if err != nil {
			slog.Error("updating field", slog.String("error", err.Error()))
			http.Error(w, updateFieldErrMessage, http.StatusInternalServerError)
			return
		}

		response := internal.ToFieldResponse(field)
		httpserver.ReplyJSONResponse(w, http.StatusOK, response)
	}
}

func (c *FieldController) deleteField() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := r.PathValue("name")
		if name == "" {
			http.Error(w, "field name is required", http.StatusBadRequest)
			return
		}

		err := c.service.DeleteField(r.Context(), name)
		if errors.Is(err, usecases.ErrFieldNotFound) {
			http.Error(w, fieldNotFoundErrMessage, http.StatusNotFound)
			return
		}
		if errors.Is(err, usecases.ErrBuiltinFieldProtected) {
			http.Error(w, builtinFieldErrMessage, http.StatusConflict)
			return
		}
		if errors.Is(err, usecases.ErrAtomicRewriteFailed) {
			slog.Error("deleting field", slog.String("error", err.Error()))
			http.Error(w, atomicRewriteErrMessage, http.StatusInternalServerError)
			return
		}
		if err != nil {
			slog.Error("deleting field", slog.String("error", err.Error()))
			http.Error(w, deleteFieldErrMessage, http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
