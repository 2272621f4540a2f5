// Package rest provides HTTP handlers for product-related operations.
package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	perrors "productcache/internal/errors"
	"productcache/internal/model"
	"productcache/internal/service"
	"productcache/pkg/web"
)

type Handler struct {
	service  service.ProductService
	validate *validator.Validate
	logger   *slog.Logger
}

// NewHandler creates a new instance of Handler with the provided service.
func NewHandler(service service.ProductService, logger *slog.Logger) *Handler {
	return &Handler{
		service:  service,
		validate: validator.New(),
		logger:   logger.With("component", "rest"),
	}
}

// RegisterRoutes registers the HTTP routes for the product service.
func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Route("/api/v1/products", func(r chi.Router) {
		r.Get("/", h.FindAll)
		r.Post("/", h.Create)
		r.Get("/search", h.Search)

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", h.FindByID)
			r.Put("/", h.Update)
			r.Delete("/", h.DeleteByID)
		})
	})

	r.Get("/healthz", h.HealthCheck)
}

// FindByID retrieves a product by its ID.
func (h *Handler) FindByID(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	id, ok := web.ParseID(w, r, mLogger)
	if !ok {
		return
	}

	mLogger.DebugContext(r.Context(), "Received request to find product by ID", "ID", id)
	found, err := h.service.FindByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, perrors.ErrProductNotFound) {
			mLogger.WarnContext(r.Context(), "Product not found", "ID", id)
			web.RespondError(w, mLogger, http.StatusNotFound, fmt.Sprintf("Product with ID %d not found", id))
			return
		}
		h.respondServiceError(w, r, mLogger, err, fmt.Sprintf("Failed to retrieve product with ID %d", id))
		return
	}
	mLogger.DebugContext(r.Context(), "Successfully retrieved product", "ID", found.ID, "Name", found.Name)
	web.RespondJSON(w, mLogger, http.StatusOK, found)
}

// FindAll retrieves a list of all products.
func (h *Handler) FindAll(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	mLogger.DebugContext(r.Context(), "Received request to find all products")
	list, err := h.service.FindAll(r.Context())
	if err != nil {
		h.respondServiceError(w, r, mLogger, err, "Failed to fetch products")
		return
	}
	mLogger.DebugContext(r.Context(), "Successfully retrieved product list", "count", len(list))
	web.RespondJSON(w, mLogger, http.StatusOK, list)
}

// Search retrieves all products whose name contains the "q" query parameter.
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	term := r.URL.Query().Get("q")
	if term == "" {
		web.RespondError(w, mLogger, http.StatusBadRequest, "q url parameter is required")
		return
	}
	mLogger.DebugContext(r.Context(), "Received request to search products", "term", term)
	list, err := h.service.FindByName(r.Context(), term)
	if err != nil {
		h.respondServiceError(w, r, mLogger, err, fmt.Sprintf("Failed to search products by %q", term))
		return
	}
	mLogger.DebugContext(r.Context(), "Successfully searched products", "term", term, "count", len(list))
	web.RespondJSON(w, mLogger, http.StatusOK, list)
}

// Create handles the creation of a new product.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	var productCreateDto service.ProductCreateDto
	if err := json.NewDecoder(r.Body).Decode(&productCreateDto); err != nil {
		mLogger.ErrorContext(r.Context(), "Error decoding request body", "error", err)
		web.RespondError(w, mLogger, http.StatusBadRequest, "Invalid request body")
		return
	}
	mLogger.DebugContext(r.Context(), "Received request to create product", "product", productCreateDto)
	if !h.validateDto(w, r, mLogger, productCreateDto) {
		return
	}

	created, err := h.service.Create(r.Context(), productCreateDto)
	if err != nil {
		h.respondServiceError(w, r, mLogger, err, "Failed to create product")
		return
	}
	mLogger.DebugContext(r.Context(), "Successfully created product", "ID", created.ID)
	web.RespondJSON(w, mLogger, http.StatusCreated, created)
}

// Update handles updating an existing product's name and price.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	id, ok := web.ParseID(w, r, mLogger)
	if !ok {
		return
	}
	var dto service.ProductCreateDto
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		mLogger.ErrorContext(r.Context(), "Error decoding request body", "error", err)
		web.RespondError(w, mLogger, http.StatusBadRequest, "Invalid request body")
		return
	}
	mLogger.DebugContext(r.Context(), "Received request to update product", "ID", id, "product", dto)
	if !h.validateDto(w, r, mLogger, dto) {
		return
	}

	product := model.Product{ID: id, Name: dto.Name, Price: dto.Price}
	if err := h.service.Update(r.Context(), product); err != nil {
		if errors.Is(err, perrors.ErrProductNotFound) {
			mLogger.WarnContext(r.Context(), "Product not found", "ID", id)
			web.RespondError(w, mLogger, http.StatusNotFound, fmt.Sprintf("Product with ID %d not found", id))
			return
		}
		h.respondServiceError(w, r, mLogger, err, fmt.Sprintf("Failed to update product with ID %d", id))
		return
	}
	mLogger.DebugContext(r.Context(), "Successfully updated product", "ID", id)
	web.RespondJSON(w, mLogger, http.StatusOK, product)
}

// DeleteByID handles deleting a product by its ID.
func (h *Handler) DeleteByID(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	id, ok := web.ParseID(w, r, mLogger)
	if !ok {
		return
	}

	mLogger.DebugContext(r.Context(), "Received request to delete product", "ID", id)
	if err := h.service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, perrors.ErrProductNotFound) {
			mLogger.WarnContext(r.Context(), "Product not found", "ID", id)
			web.RespondError(w, mLogger, http.StatusNotFound, fmt.Sprintf("Product with ID %d not found", id))
			return
		}
		h.respondServiceError(w, r, mLogger, err, fmt.Sprintf("Failed to delete product with ID %d", id))
		return
	}
	mLogger.DebugContext(r.Context(), "Successfully deleted product", "ID", id)
	w.WriteHeader(http.StatusNoContent)
}

// HealthCheck responds with a simple status payload.
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	web.RespondJSON(w, h.loggerWithReqID(r), http.StatusOK, map[string]string{"status": "ok"})
}

// validateDto runs struct validation and writes a field-level error response
// on failure. Returns true when the DTO is valid.
func (h *Handler) validateDto(w http.ResponseWriter, r *http.Request, mLogger *slog.Logger, dto service.ProductCreateDto) bool {
	if err := h.validate.Struct(dto); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			// If the error is a validation error, we can extract field-specific errors.
			errorResponse := make(map[string]string)
			for _, fieldErr := range validationErrors {
				// fieldErr.Tag() returns "required", "max", etc.
				errorResponse[fieldErr.Field()] = "failed on rule: " + fieldErr.Tag()
			}
			mLogger.WarnContext(r.Context(), "Validation errors occurred", "errors", errorResponse)
			web.RespondJSON(w, mLogger, http.StatusBadRequest, map[string]any{"validation_errors": errorResponse})
			return false
		}
		mLogger.ErrorContext(r.Context(), "Error validating request body", "error", err)
		web.RespondError(w, mLogger, http.StatusBadRequest, "Invalid request body")
		return false
	}
	return true
}

// respondServiceError maps non-not-found service errors to HTTP statuses:
// a closed session means the store is unreachable for this process (503),
// anything else is a 500.
func (h *Handler) respondServiceError(w http.ResponseWriter, r *http.Request, mLogger *slog.Logger, err error, message string) {
	if errors.Is(err, perrors.ErrSessionNotOpen) {
		mLogger.WarnContext(r.Context(), "Operation attempted without open session", "error", err)
		web.RespondError(w, mLogger, http.StatusServiceUnavailable, "Service session is not open")
		return
	}
	mLogger.ErrorContext(r.Context(), message, "error", err)
	web.RespondError(w, mLogger, http.StatusInternalServerError, message)
}

// loggerWithReqID returns a logger tagged with the request id, if any.
func (h *Handler) loggerWithReqID(r *http.Request) *slog.Logger {
	if reqID, ok := web.GetRequestID(r.Context()); ok {
		return h.logger.With("request_id", reqID)
	}
	return h.logger
}
