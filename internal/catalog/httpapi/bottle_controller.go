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
	createBottleErrMessage   = "failed to create bottle"
	listBottlesErrMessage    = "failed to list bottles"
	getBottleErrMessage      = "failed to get bottle"
	updateBottleErrMessage   = "failed to update bottle"
	deleteBottleErrMessage   = "failed to delete bottle"
	bottleNotFoundErrMessage = "bottle not found"
)

func NewBottleController(service usecases.BottleService) *BottleController {
	return &BottleController{
		service: service,
	}
}

var _ httpserver.Controller = &BottleController{}

type BottleController struct {
	service usecases.BottleService
}

func (c *BottleController) AddRoutes(router *http.ServeMux) {
	router.Handle("GET /v1/bottles", c.listBottles())
	router.Handle("POST /v1/bottles", c.createBottle())
	router.Handle("GET /v1/bottles/{id}", c.getBottle())
	router.Handle("PUT /v1/bottles/{id}", c.updateBottle())
	router.Handle("DELETE /v1/bottles/{id}", c.deleteBottle())
	router.Handle("GET /v1/subcategories/{id}/bottles", c.listBottlesBySubcategory())
}

func (c *BottleController) listBottles() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params := httpserver.ExtractPaginationParams(r)
		pagination := usecases.Pagination{Limit: params.Limit, Offset: (params.Page - 1) * params.Limit}

		bottles, total, err := c.service.AllBottles(r.Context(), pagination)
		if err != nil {
			slog.Error("listing bottles", slog.String("error", err.Error()))
			http.Error(w, listBottlesErrMessage, http.StatusInternalServerError)
			return
		}

		responses := make([]internal.BottleResponse, len(bottles))
		for i, bottle := range bottles {
			responses[i] = internal.ToBottleResponse(bottle)
		}

		httpserver.ReplyWithPaginatedData(w, http.StatusOK, responses, total, params)
	}
}

func (c *BottleController) createBottle() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body internal.BottleCreateRequest
		err := httpserver.DecodeJSONBody(r, &body)
		if err != nil {
			slog.Error("decoding create bottle request", slog.String("error", err.Error()))
			http.Error(w, createBottleErrMessage, http.StatusBadRequest)
			return
		}

		bottle, err := domain.NewBottleBuilder().
			WithName(body.Name).
			WithSubcategoryID(domain.ID(body.SubcategoryID)).
			WithQuantity(body.Quantity).
			WithAttributes(body.Attributes).
			Build()
		if err != nil {
			slog.Error("building bottle", slog.String("error", err.Error()))
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		err = c.service.CreateBottle(r.Context(), bottle)
		if c.replyValidationOutcome(w, err) {
			return
		}
		if errors.Is(err, usecases.ErrSubcategoryNotFound) {
			http.Error(w, subcategoryNotFoundErrMessage, http.StatusNotFound)
			return
		}
		if err != nil {
			slog.Error("creating bottle", slog.String("error", err.Error()))
			http.Error(w, createBottleErrMessage, http.StatusInternalServerError)
			return
		}

		response := internal.ToBottleResponse(bottle)
		httpserver.ReplyJSONResponse(w, http.StatusCreated, response)
	}
}

func (c *BottleController) getBottle() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		if id == "" {
			http.Error(w, "bottle id is required", http.StatusBadRequest)
			return
		}

		bottle, err := c.service.GetBottle(r.Context(), domain.ID(id))
		if errors.Is(err, usecases.ErrBottleNotFound) {
			http.Error(w, bottleNotFoundErrMessage, http.StatusNotFound)
			return
		}
		if err != nil {
			slog.Error("getting bottle", slog.String("error", err.Error()))
			http.Error(w, getBottleErrMessage, http.StatusInternalServerError)
			return
		}

		response := internal.ToBottleResponse(bottle)
		httpserver.ReplyJSONResponse(w, http.StatusOK, response)
	}
}

func (c *BottleController) updateBottle() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		if id == "" {
			http.Error(w, "bottle id is required", http.StatusBadRequest)
			return
		}

		var body internal.BottleUpdateRequest
		err := httpserver.DecodeJSONBody(r, &body)
		if err != nil {
			slog.Error("decoding update bottle request", slog.String("error", err.Error()))
			http.Error(w, updateBottleErrMessage, http.StatusBadRequest)
			return
		}

		bottle := domain.Bottle{
			ID:            domain.ID(id),
			Name:          body.Name,
			SubcategoryID: domain.ID(body.SubcategoryID),
			Quantity:      body.Quantity,
			Attributes:    body.Attributes,
		}

		err = c.service.UpdateBottle(r.Context(), bottle)
		if c.replyValidationOutcome(w, err) {
			return
		}
		if errors.Is(err, usecases.ErrBottleNotFound) {
			http.Error(w, bottleNotFoundErrMessage, http.StatusNotFound)
			return
		}
		if errors.Is(err, usecases.ErrSubcategoryNotFound) {
			http.Error(w, subcategoryNotFoundErrMessage, http.StatusNotFound)
			return
		}
		if err != nil {
			slog.Error("updating bottle", slog.String("error", err.Error()))
			http.Error(w, updateBottleErrMessage, http.StatusInternalServerError)
			return
		}

		bottle, err = c.service.GetBottle(r.Context(), domain.ID(id))
		if err != nil {
			slog.Error("getting updated bottle", slog.String("error", err.Error()))
			http.Error(w, getBottleErrMessage, http.StatusInternalServerError)
			return
		}

		response := internal.ToBottleResponse(bottle)
		httpserver.ReplyJSONResponse(w, http.StatusOK, response)
	}
}

func (c *BottleController) deleteBottle() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		if id == "" {
			http.Error(w, "bottle id is required", http.StatusBadRequest)
			return
		}

		err := c.service.DeleteBottle(r.Context(), domain.ID(id))
		if errors.Is(err, usecases.ErrBottleNotFound) {
			http.Error(w, bottleNotFoundErrMessage, http.StatusNotFound)
			return
		}
		if err != nil {
			slog.Error("deleting bottle", slog.String("error", err.Error()))
			http.Error(w, deleteBottleErrMessage, http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func (c *BottleController) listBottlesBySubcategory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		if id == "" {
			http.Error(w, "subcategory id is required", http.StatusBadRequest)
			return
		}

		bottles, err := c.service.BottlesBySubcategory(r.Context(), domain.ID(id))
		if errors.Is(err, usecases.ErrSubcategoryNotFound) {
			http.Error(w, subcategoryNotFoundErrMessage, http.StatusNotFound)
			return
		}
		if err != nil {
			slog.Error("listing bottles by subcategory", slog.String("error", err.Error()))
			http.Error(w, listBottlesErrMessage, http.StatusInternalServerError)
			return
		}

		responses := make([]internal.BottleResponse, len(bottles))
		for i, bottle := range bottles {
			responses[i] = internal.ToBottleResponse(bottle)
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, responses)
	}
}

// replyValidationOutcome writes a 422 with the missing fields when err is a
// validation error. It reports whether the response was written.
func (c *BottleController) replyValidationOutcome(w http.ResponseWriter, err error) bool {
	var validationErr *usecases.ValidationError
	if !errors.As(err, &validationErr) {
		return false
	}

	violations := make([]internal.ValidationViolation, len(validationErr.Violations))
	for i, violation := range validationErr.Violations {
		violations[i] = internal.ValidationViolation{FieldName: violation.FieldName, Label: violation.Label}
	}
	httpserver.ReplyJSONResponse(w, http.StatusUnprocessableEntity, internal.ValidationResponse{Valid: false, Violations: violations})
	return true
}
