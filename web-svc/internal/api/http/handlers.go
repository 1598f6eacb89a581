package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"orderflow/web-svc/internal/domain"
	"orderflow/web-svc/internal/service"

	"github.com/gorilla/mux"
)

type Handler struct {
	Visitors *service.VisitorRegistry
	Menu     service.MenuServiceInterface
	Feedback service.FeedbackServiceInterface
	Sessions service.SessionServiceInterface
	Admin    service.AdminServiceInterface
	QR       service.QRGenerator
	Policy   *service.RoutePolicy
	// Media serves /media/ when set.
	Media    http.Handler

	// BaseContext outlives requests; kitchen pollers run under it.
	BaseContext   context.Context
	SecureCookies bool
}

func NewHandler(visitors *service.VisitorRegistry, menu service.MenuServiceInterface, feedback service.FeedbackServiceInterface,
	sessions service.SessionServiceInterface, admin service.AdminServiceInterface, qr service.QRGenerator, policy *service.RoutePolicy) *Handler {
	return &Handler{
		Visitors:    visitors,
		Menu:        menu,
		Feedback:    feedback,
		Sessions:    sessions,
		Admin:       admin,
		QR:          qr,
		Policy:      policy,
		BaseContext: context.Background(),
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")
	if h.Media != nil {
		r.PathPrefix("/media/").Handler(h.Media).Methods("GET", "HEAD")
	}

	api := r.PathPrefix("/api").Subrouter()
	api.Use(h.visitorMiddleware, h.sessionMiddleware, h.guardMiddleware)

	api.HandleFunc("/menu", h.getMenu).Methods("GET")
	api.HandleFunc("/cart", h.getCart).Methods("GET")
	api.HandleFunc("/cart", h.replaceCart).Methods("PUT")
	api.HandleFunc("/cart/items", h.addToCart).Methods("POST")
	api.HandleFunc("/checkout", h.checkout).Methods("POST")
	api.HandleFunc("/payment", h.selectPayment).Methods("POST")
	api.HandleFunc("/order", h.getOrder).Methods("GET")
	api.HandleFunc("/order", h.abandonOrder).Methods("DELETE")
	api.HandleFunc("/order/submit", h.submitOrder).Methods("POST")
	api.HandleFunc("/order/qrcode", h.getOrderQRCode).Methods("GET")
	api.HandleFunc("/order/review", h.reviewOrder).Methods("POST")
	api.HandleFunc("/feedback", h.submitFeedback).Methods("POST")

	h.registerStaffRoutes(api)
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":    "healthy",
		"service":   "web-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func (h *Handler) getMenu(w http.ResponseWriter, r *http.Request) {
	sections, err := h.Menu.Sections(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sections)
}

type cartView struct {
	Entries []domain.CartEntry `json:"entries"`
	Count   int                `json:"count"`
	Total   domain.Price       `json:"total"`
}

func newCartView(entries []domain.CartEntry) cartView {
	return cartView{
		Entries: entries,
		Count:   len(entries),
		Total:   domain.Price{Decimal: service.ComputeTotal(domain.OrderSnapshot{Items: entries})},
	}
}

func (h *Handler) getCart(w http.ResponseWriter, r *http.Request) {
	visitor := h.Visitors.Get(visitorID(r))
	writeJSON(w, http.StatusOK, newCartView(visitor.Cart.Read()))
}

type cartItemRequest struct {
	ItemID   int `json:"item_id"`
	Quantity int `json:"quantity"`
}

func (h *Handler) addToCart(w http.ResponseWriter, r *http.Request) {
	var req cartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid payload")
		return
	}

	item, err := h.Menu.Item(r.Context(), req.ItemID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	visitor := h.Visitors.Get(visitorID(r))
	visitor.Cart.Add(item, req.Quantity)
	writeJSON(w, http.StatusOK, newCartView(visitor.Cart.Read()))
}

func (h *Handler) replaceCart(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Entries []cartItemRequest `json:"entries"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid payload")
		return
	}

	entries := make([]domain.CartEntry, 0, len(req.Entries))
	for _, incoming := range req.Entries {
		item, err := h.Menu.Item(r.Context(), incoming.ItemID)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		entries = append(entries, domain.CartEntry{Item: item, Quantity: incoming.Quantity})
	}

	visitor := h.Visitors.Get(visitorID(r))
	visitor.Cart.ReplaceAll(entries)
	writeJSON(w, http.StatusOK, newCartView(visitor.Cart.Read()))
}

func (h *Handler) checkout(w http.ResponseWriter, r *http.Request) {
	visitor := h.Visitors.Get(visitorID(r))
	if _, err := visitor.Order.TakeSnapshot(visitor.Cart.Read()); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, visitor.Order.Status())
}

func (h *Handler) selectPayment(w http.ResponseWriter, r *http.Request) {
	var details service.PaymentDetails
	if err := json.NewDecoder(r.Body).Decode(&details); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid payload")
		return
	}

	details.Method = details.Method.Normalize()

	visitor := h.Visitors.Get(visitorID(r))
	if visitor.Order.State() != service.StateSnapshotTaken {
		writeServiceError(w, service.ErrIllegalTransition)
		return
	}
	if err := service.CheckPayment(details); err != nil {
		writeServiceError(w, err)
		return
	}

	response := map[string]string{"status": "accepted", "method": string(details.Method)}
	if details.Method == service.PaymentCard {
		response["card"] = service.MaskCard(details.CardNumber)
	}
	writeJSON(w, http.StatusOK, response)
}

func (h *Handler) submitOrder(w http.ResponseWriter, r *http.Request) {
	visitor := h.Visitors.Get(visitorID(r))
	if _, err := visitor.Order.SubmitOnce(r.Context()); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, visitor.Order.Status())
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	visitor := h.Visitors.Get(visitorID(r))
	writeJSON(w, http.StatusOK, visitor.Order.Status())
}

func (h *Handler) abandonOrder(w http.ResponseWriter, r *http.Request) {
	visitor := h.Visitors.Get(visitorID(r))
	visitor.Order.Abandon()
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) getOrderQRCode(w http.ResponseWriter, r *http.Request) {
	visitor := h.Visitors.Get(visitorID(r))
	snapshot, ok := visitor.Order.Snapshot()
	if !ok || snapshot.OrderNumber == "" {
		writeError(w, http.StatusNotFound, "Order not found")
		return
	}

	png, err := h.QR.ReviewLink(string(snapshot.OrderNumber))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to generate QR code")
		return
	}
	writePNG(w, png)
}

type reviewRequest struct {
	OrderNumber *string `json:"order_number"`
	Rating      int     `json:"rating"`
	Comment     string  `json:"comment"`
}

func (h *Handler) reviewOrder(w http.ResponseWriter, r *http.Request) {
	var req reviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid payload")
		return
	}

	visitor := h.Visitors.Get(visitorID(r))
	if err := visitor.Order.Review(r.Context(), req.Rating, req.Comment); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, visitor.Order.Status())
}

// submitFeedback serves the review link printed on the QR code, where no order flow exists.
func (h *Handler) submitFeedback(w http.ResponseWriter, r *http.Request) {
	var req reviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid payload")
		return
	}

	if err := h.Feedback.Submit(r.Context(), req.OrderNumber, req.Rating, req.Comment); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "submitted"})
}
