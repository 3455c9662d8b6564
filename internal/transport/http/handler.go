package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/light-bringer/catalog-lifecycle/internal/app/catalog/queries/check_hard_delete"
	"github.com/light-bringer/catalog-lifecycle/internal/app/catalog/queries/get_product"
	"github.com/light-bringer/catalog-lifecycle/internal/app/catalog/repo"
	"github.com/light-bringer/catalog-lifecycle/internal/app/catalog/usecases/adjust_stock"
	"github.com/light-bringer/catalog-lifecycle/internal/app/catalog/usecases/hard_delete_product"
	"github.com/light-bringer/catalog-lifecycle/internal/app/catalog/usecases/hard_delete_variant"
	"github.com/light-bringer/catalog-lifecycle/internal/app/catalog/usecases/restore_product"
	"github.com/light-bringer/catalog-lifecycle/internal/app/catalog/usecases/restore_variant"
	"github.com/light-bringer/catalog-lifecycle/internal/app/catalog/usecases/soft_delete_product"
	"github.com/light-bringer/catalog-lifecycle/internal/app/catalog/usecases/soft_delete_variant"
)

// Handler is the admin JSON API. It carries no business rules: request
// decoding, validation, and status mapping only.
type Handler struct {
	softDeleteVariant *soft_delete_variant.Interactor
	restoreVariant    *restore_variant.Interactor
	hardDeleteVariant *hard_delete_variant.Interactor
	softDeleteProduct *soft_delete_product.Interactor
	restoreProduct    *restore_product.Interactor
	hardDeleteProduct *hard_delete_product.Interactor
	adjustStock       *adjust_stock.Interactor
	checkHardDelete   *check_hard_delete.Query
	getProduct        *get_product.Query
	events            *repo.EventsReadModel

	validate *validator.Validate
	logger   *zap.Logger
}

// NewHandler creates the admin API handler.
func NewHandler(
	softDeleteVariant *soft_delete_variant.Interactor,
	restoreVariant *restore_variant.Interactor,
	hardDeleteVariant *hard_delete_variant.Interactor,
	softDeleteProduct *soft_delete_product.Interactor,
	restoreProduct *restore_product.Interactor,
	hardDeleteProduct *hard_delete_product.Interactor,
	adjustStock *adjust_stock.Interactor,
	checkHardDelete *check_hard_delete.Query,
	getProduct *get_product.Query,
	events *repo.EventsReadModel,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		softDeleteVariant: softDeleteVariant,
		restoreVariant:    restoreVariant,
		hardDeleteVariant: hardDeleteVariant,
		softDeleteProduct: softDeleteProduct,
		restoreProduct:    restoreProduct,
		hardDeleteProduct: hardDeleteProduct,
		adjustStock:       adjustStock,
		checkHardDelete:   checkHardDelete,
		getProduct:        getProduct,
		events:            events,
		validate:          validator.New(),
		logger:            logger,
	}
}

// RegisterRoutes mounts the API on the given mux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/v1/products/{id}", h.handleGetProduct)
	mux.HandleFunc("POST /api/v1/products/{id}/hide", h.handleSoftDeleteProduct)
	mux.HandleFunc("POST /api/v1/products/{id}/restore", h.handleRestoreProduct)
	mux.HandleFunc("DELETE /api/v1/products/{id}", h.handleHardDeleteProduct)

	mux.HandleFunc("POST /api/v1/variants/{id}/hide", h.handleSoftDeleteVariant)
	mux.HandleFunc("POST /api/v1/variants/{id}/restore", h.handleRestoreVariant)
	mux.HandleFunc("DELETE /api/v1/variants/{id}", h.handleHardDeleteVariant)
	mux.HandleFunc("GET /api/v1/variants/{id}/hard-delete-check", h.handleCheckHardDelete)
	mux.HandleFunc("POST /api/v1/variants/{id}/stock", h.handleAdjustStock)

	mux.HandleFunc("GET /api/v1/events", h.handleListEvents)
}

func (h *Handler) handleGetProduct(w http.ResponseWriter, r *http.Request) {
	dto, err := h.getProduct.Execute(r.Context(), &get_product.Request{ProductID: r.PathValue("id")})
	if err != nil {
		writeDomainError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, dto)
}

type softDeleteProductResponse struct {
	ProductID        string    `json:"product_id"`
	HiddenAt         time.Time `json:"hidden_at"`
	HiddenVariantIDs []string  `json:"hidden_variant_ids"`
	AlreadyHidden    bool      `json:"already_hidden"`
}

func (h *Handler) handleSoftDeleteProduct(w http.ResponseWriter, r *http.Request) {
	result, err := h.softDeleteProduct.Execute(r.Context(), &soft_delete_product.Request{
		ProductID: r.PathValue("id"),
	})
	if err != nil {
		writeDomainError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, softDeleteProductResponse{
		ProductID:        result.ProductID,
		HiddenAt:         result.HiddenAt,
		HiddenVariantIDs: result.HiddenVariantIDs,
		AlreadyHidden:    result.AlreadyHidden,
	})
}

type restoreProductRequest struct {
	RestoreAllVariants bool `json:"restore_all_variants"`
}

type restoreProductResponse struct {
	ProductID          string   `json:"product_id"`
	RestoredVariantIDs []string `json:"restored_variant_ids"`
	TotalVariants      int      `json:"total_variants"`
	ActiveVariants     int      `json:"active_variants"`
	HiddenVariants     int      `json:"hidden_variants"`
}

func (h *Handler) handleRestoreProduct(w http.ResponseWriter, r *http.Request) {
	var req restoreProductRequest
	if err := decodeBody(r, &req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	result, err := h.restoreProduct.Execute(r.Context(), &restore_product.Request{
		ProductID:          r.PathValue("id"),
		RestoreAllVariants: req.RestoreAllVariants,
	})
	if err != nil {
		writeDomainError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, restoreProductResponse{
		ProductID:          result.ProductID,
		RestoredVariantIDs: result.RestoredVariantIDs,
		TotalVariants:      result.TotalVariants,
		ActiveVariants:     result.ActiveVariants,
		HiddenVariants:     result.HiddenVariants,
	})
}

type hardDeleteProductResponse struct {
	ProductID       string   `json:"product_id"`
	DeletedVariants int      `json:"deleted_variants"`
	Warnings        []string `json:"warnings,omitempty"`
}

func (h *Handler) handleHardDeleteProduct(w http.ResponseWriter, r *http.Request) {
	result, err := h.hardDeleteProduct.Execute(r.Context(), &hard_delete_product.Request{
		ProductID: r.PathValue("id"),
	})
	if err != nil {
		writeDomainError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, hardDeleteProductResponse{
		ProductID:       result.ProductID,
		DeletedVariants: result.DeletedVariants,
		Warnings:        result.Warnings,
	})
}

type softDeleteVariantResponse struct {
	VariantID     string    `json:"variant_id"`
	ProductID     string    `json:"product_id"`
	HiddenAt      time.Time `json:"hidden_at"`
	AlreadyHidden bool      `json:"already_hidden"`
}

func (h *Handler) handleSoftDeleteVariant(w http.ResponseWriter, r *http.Request) {
	result, err := h.softDeleteVariant.Execute(r.Context(), &soft_delete_variant.Request{
		VariantID: r.PathValue("id"),
	})
	if err != nil {
		writeDomainError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, softDeleteVariantResponse{
		VariantID:     result.VariantID,
		ProductID:     result.ProductID,
		HiddenAt:      result.HiddenAt,
		AlreadyHidden: result.AlreadyHidden,
	})
}

type restoreVariantResponse struct {
	VariantID      string `json:"variant_id"`
	ProductID      string `json:"product_id"`
	ParentHidden   bool   `json:"parent_hidden"`
	AlreadyVisible bool   `json:"already_visible"`
}

func (h *Handler) handleRestoreVariant(w http.ResponseWriter, r *http.Request) {
	result, err := h.restoreVariant.Execute(r.Context(), &restore_variant.Request{
		VariantID: r.PathValue("id"),
	})
	if err != nil {
		writeDomainError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, restoreVariantResponse{
		VariantID:      result.VariantID,
		ProductID:      result.ProductID,
		ParentHidden:   result.ParentHidden,
		AlreadyVisible: result.AlreadyVisible,
	})
}

type hardDeleteVariantResponse struct {
	VariantID string `json:"variant_id"`
	ProductID string `json:"product_id"`
}

func (h *Handler) handleHardDeleteVariant(w http.ResponseWriter, r *http.Request) {
	result, err := h.hardDeleteVariant.Execute(r.Context(), &hard_delete_variant.Request{
		VariantID: r.PathValue("id"),
	})
	if err != nil {
		writeDomainError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, hardDeleteVariantResponse{
		VariantID: result.VariantID,
		ProductID: result.ProductID,
	})
}

func (h *Handler) handleCheckHardDelete(w http.ResponseWriter, r *http.Request) {
	verdict, err := h.checkHardDelete.Execute(r.Context(), &check_hard_delete.Request{
		VariantID: r.PathValue("id"),
	})
	if err != nil {
		writeDomainError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, verdict)
}

type adjustStockRequest struct {
	QuantityDelta int64  `json:"quantity_delta" validate:"required"`
	Reason        string `json:"reason" validate:"required,max=255"`
	Actor         string `json:"actor" validate:"max=255"`
}

type adjustStockResponse struct {
	VariantID         string `json:"variant_id"`
	EntryID           string `json:"entry_id"`
	QuantityDelta     int64  `json:"quantity_delta"`
	ResultingQuantity int64  `json:"resulting_quantity"`
}

func (h *Handler) handleAdjustStock(w http.ResponseWriter, r *http.Request) {
	var req adjustStockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	result, err := h.adjustStock.Execute(r.Context(), &adjust_stock.Request{
		VariantID:     r.PathValue("id"),
		QuantityDelta: req.QuantityDelta,
		Reason:        req.Reason,
		Actor:         req.Actor,
	})
	if err != nil {
		writeDomainError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, adjustStockResponse{
		VariantID:         result.VariantID,
		EntryID:           result.EntryID,
		QuantityDelta:     result.QuantityDelta,
		ResultingQuantity: result.ResultingQuantity,
	})
}

// Event represents a domain event in the HTTP response.
type Event struct {
	EventID     string  `json:"event_id"`
	EventType   string  `json:"event_type"`
	AggregateID string  `json:"aggregate_id"`
	Payload     string  `json:"payload"`
	Status      string  `json:"status"`
	CreatedAt   string  `json:"created_at"`
	ProcessedAt *string `json:"processed_at,omitempty"`
}

// ListEventsResponse represents the HTTP response for listing events.
type ListEventsResponse struct {
	Events     []Event `json:"events"`
	TotalCount int     `json:"total_count"`
}

func (h *Handler) handleListEvents(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := &repo.EventsFilter{
		EventType:   query.Get("event_type"),
		AggregateID: query.Get("aggregate_id"),
		Status:      query.Get("status"),
	}
	if limitStr := query.Get("limit"); limitStr != "" {
		if limit, err := strconv.ParseInt(limitStr, 10, 64); err == nil && limit > 0 {
			filter.Limit = limit
		}
	}

	rows, err := h.events.ListEvents(r.Context(), filter)
	if err != nil {
		writeDomainError(w, h.logger, err)
		return
	}

	events := make([]Event, 0, len(rows))
	for _, row := range rows {
		event := Event{
			EventID:     row.EventID,
			EventType:   row.EventType,
			AggregateID: row.AggregateID,
			Status:      row.Status,
			CreatedAt:   row.CreatedAt.Format(time.RFC3339),
		}
		if row.Payload.Valid {
			event.Payload = row.Payload.String()
		}
		if row.ProcessedAt.Valid {
			processedAt := row.ProcessedAt.Time.Format(time.RFC3339)
			event.ProcessedAt = &processedAt
		}
		events = append(events, event)
	}

	writeJSON(w, http.StatusOK, ListEventsResponse{
		Events:     events,
		TotalCount: len(events),
	})
}

// decodeBody decodes an optional JSON body; an empty body leaves the
// destination at its zero value.
func decodeBody(r *http.Request, dst any) error {
	err := json.NewDecoder(r.Body).Decode(dst)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
