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
	createCategoryErrMessage      = "failed to create category"
	listCategoriesErrMessage      = "failed to list categories"
	getCategoryErrMessage         = "failed to get category"
	deleteCategoryErrMessage      = "failed to delete category"
	categoryNotFoundErrMessage    = "category not found"
	categoryDuplicatedErrMessage  = "category already exists"
	createSubcategoryErrMessage   = "failed to create subcategory"
	deleteSubcategoryErrMessage   = "failed to delete subcategory"
	subcategoryNotFoundErrMessage = "subcategory not found"
)

func NewCategoryController(service usecases.CategoryService) *CategoryController {
	return &CategoryController{
		service: service,
	}
}

var _ httpserver.Controller = &CategoryController{}

type CategoryController struct {
	service usecases.CategoryService
}

func (c *CategoryController) AddRoutes(router *http.ServeMux) {
	router.Handle("GET /v1/categories", c.listCategories())
	router.Handle("POST /v1/categories", c.createCategory())
	router.Handle("GET /v1/categories/{id}", c.getCategory())
	router.Handle("DELETE /v1/categories/{id}", c.deleteCategory())
	router.Handle("POST /v1/categories/{id}/subcategories", c.createSubcategory())
	router.Handle("GET /v1/subcategories/{id}", c.getSubcategory())
	router.Handle("DELETE /v1/subcategories/{id}", c.deleteSubcategory())
}

func (c *CategoryController) listCategories() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categories, err := c.service.AllCategories(r.Context())
		if err != nil {
			slog.Error("listing categories", slog.String("error", err.Error()))
			http.Error(w, listCategoriesErrMessage, http.StatusInternalServerError)
			return
		}

		responses := make([]internal.CategoryResponse, len(categories))
		for i, category := range categories {
			responses[i] = internal.ToCategoryResponse(category)
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, responses)
	}
}

func (c *CategoryController) createCategory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body internal.CategoryCreateRequest
		err := httpserver.DecodeJSONBody(r, &body)
		if err != nil {
			slog.Error("decoding create category request", slog.String("error", err.Error()))
			http.Error(w, createCategoryErrMessage, http.StatusBadRequest)
			return
		}

		category, err := domain.NewCategoryBuilder().
			WithName(body.Name).
			WithDescription(body.Description).
			WithDisplayOrder(body.DisplayOrder).
			Build()
		if err != nil {
			slog.Error("building category", slog.String("error", err.Error()))
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		err = c.service.CreateCategory(r.Context(), category)
		if errors.Is(err, usecases.ErrCategoryDuplicated) {
			http.Error(w, categoryDuplicatedErrMessage, http.StatusConflict)
			return
		}
		if err != nil {
			slog.Error("creating category", slog.String("error", err.Error()))
			http.Error(w, createCategoryErrMessage, http.StatusInternalServerError)
			return
		}

		response := internal.ToCategoryResponse(category)
		httpserver.ReplyJSONResponse(w, http.StatusCreated, response)
	}
}

func (c *CategoryController) getCategory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		if id == "" {
			http.Error(w, "category id is required", http.StatusBadRequest)
			return
		}

		category, err := c.service.GetCategory(r.Context(), domain.ID(id))
		if errors.Is(err, usecases.ErrCategoryNotFound) {
			http.Error(w, categoryNotFoundErrMessage, http.StatusNotFound)
			return
		}
		if err != nil {
			slog.Error("getting category", slog.String("error", err.Error()))
			http.Error(w, getCategoryErrMessage, http.StatusInternalServerError)
			return
		}

		response := internal.ToCategoryResponse(category)
		httpserver.ReplyJSONResponse(w, http.StatusOK, response)
	}
}

func (c *CategoryController) deleteCategory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		if id == "" {
			http.Error(w, "category id is required", http.StatusBadRequest)
			return
		}

		err := c.service.DeleteCategory(r.Context(), domain.ID(id))
		if errors.Is(err, usecases.ErrCategoryNotFound) {
			http.Error(w, categoryNotFoundErrMessage, http.StatusNotFound)
			return
		}
		if err != nil {
			slog.Error("deleting category", slog.String("error", err.Error()))
			http.Error(w, deleteCategoryErrMessage, http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func (c *CategoryController) createSubcategory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categoryID := r.PathValue("id")
		if categoryID == "" {
			http.Error(w, "category id is required", http.StatusBadRequest)
			return
		}

		var body internal.SubcategoryCreateRequest
		err := httpserver.DecodeJSONBody(r, &body)
		if err != nil {
			slog.Error("decoding create subcategory request", slog.String("error", err.Error()))
			http.Error(w, createSubcategoryErrMessage, http.StatusBadRequest)
			return
		}

		builder := domain.NewSubcategoryBuilder().
			WithCategoryID(domain.ID(categoryID)).
			WithName(body.Name).
			WithDescription(body.Description).
			WithDisplayOrder(body.DisplayOrder)
		if body.BadgeBgColor != "" || body.BadgeTextColor != "" {
			builder = builder.WithBadgeColors(body.BadgeBgColor, body.BadgeTextColor)
		}

		subcategory, err := builder.Build()
		if err != nil {
			slog.Error("building subcategory", slog.String("error", err.Error()))
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		err = c.service.CreateSubcategory(r.Context(), subcategory)
		if errors.Is(err, usecases.ErrCategoryNotFound) {
			http.Error(w, categoryNotFoundErrMessage, http.StatusNotFound)
			return
		}
		if errors.Is(err, usecases.ErrCategoryDuplicated) {
			http.Error(w, "subcategory already exists", http.StatusConflict)
			return
		}
		if err != nil {
			slog.Error("creating subcategory", slog.String("error", err.Error()))
			http.Error(w, createSubcategoryErrMessage, http.StatusInternalServerError)
			return
		}

		response := internal.ToSubcategoryResponse(subcategory)
		httpserver.ReplyJSONResponse(w, http.StatusCreated, response)
	}
}

func (c *CategoryController) getSubcategory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		if id == "" {
			http.Error(w, "subcategory id is required", http.StatusBadRequest)
			return
		}

		subcategory, err := c.service.GetSubcategory(r.Context(), domain.ID(id))
		if errors.Is(err, usecases.ErrSubcategoryNotFound) {
			http.Error(w, subcategoryNotFoundErrMessage, http.StatusNotFound)
			return
		}
		if err != nil {
			slog.Error("getting subcategory", slog.String("error", err.Error()))
			http.Error(w, "failed to get subcategory", http.StatusInternalServerError)
			return
		}

		response := internal.ToSubcategoryResponse(subcategory)
		httpserver.ReplyJSONResponse(w, http.StatusOK, response)
	}
}

func (c *CategoryController) deleteSubcategory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		if id == "" {
			http.Error(w, "subcategory id is required", http.StatusBadRequest)
			return
		}

		err := c.service.DeleteSubcategory(r.Context(), domain.ID(id))
		if errors.Is(err, usecases.ErrSubcategoryNotFound) {
			http.Error(w, subcategoryNotFoundErrMessage, http.StatusNotFound)
			return
		}
		if err != nil {
			slog.Error("deleting subcategory", slog.String("error", err.Error()))
			http.Error(w, deleteSubcategoryErrMessage, http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
