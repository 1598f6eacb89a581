package httpapi

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"strconv"

	"orderflow/web-svc/internal/domain"

	"github.com/gorilla/mux"
)

func (h *Handler) registerStaffRoutes(api *mux.Router) {
	api.HandleFunc("/login", h.login).Methods("POST")
	api.HandleFunc("/logout", h.logout).Methods("POST")
	api.HandleFunc("/me", h.me).Methods("GET")

	api.HandleFunc("/admin/categories", h.getCategories).Methods("GET")
	api.HandleFunc("/admin/categories", h.createCategory).Methods("POST")
	api.HandleFunc("/admin/menu-items", h.getMenuItems).Methods("GET")
	api.HandleFunc("/admin/menu-items", h.createMenuItem).Methods("POST")
	api.HandleFunc("/admin/menu-items/{id:[0-9]+}", h.updateMenuItem).Methods("PATCH")
	api.HandleFunc("/admin/menu-items/{id:[0-9]+}", h.deleteMenuItem).Methods("DELETE")
	api.HandleFunc("/admin/orders", h.getOrders).Methods("GET")
	api.HandleFunc("/admin/orders/{number}/status", h.updateOrderStatus).Methods("PATCH")
	api.HandleFunc("/admin/feedback", h.getFeedback).Methods("GET")
	api.HandleFunc("/admin/analytics", h.getDashboard).Methods("GET")
	api.HandleFunc("/admin/qr", h.getTableQRCode).Methods("GET")
	api.HandleFunc("/admin/receipts", h.getReceipts).Methods("GET")

	api.HandleFunc("/kitchen/orders", h.getKitchenOrders).Methods("GET")
	api.HandleFunc("/kitchen/orders/{number}/complete", h.completeKitchenOrder).Methods("POST")
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid payload")
		return
	}

	id := visitorID(r)
	h.Visitors.StopKitchen(id)
	session, err := h.Sessions.Login(r.Context(), id, req.Email, req.Password)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, session)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	id := visitorID(r)
	h.Visitors.StopKitchen(id)
	if err := h.Sessions.Logout(r.Context(), id); err != nil {
		log.Printf("[web-svc] WARNING: failed to clear session, issuing a new visitor: %v", err)
		h.issueVisitor(w)
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "logged_out"})
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, sessionFrom(r))
}

func (h *Handler) getCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.Admin.Categories(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, categories)
}

func (h *Handler) createCategory(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid payload")
		return
	}

	category, err := h.Admin.AddCategory(r.Context(), req.Name)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, category)
}

func (h *Handler) getMenuItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.Admin.MenuItems(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *Handler) createMenuItem(w http.ResponseWriter, r *http.Request) {
	form, ok := readMenuItemForm(w, r)
	if !ok {
		return
	}

	item, err := h.Admin.AddMenuItem(r.Context(), form)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, item)
}

func (h *Handler) updateMenuItem(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	form, ok := readMenuItemForm(w, r)
	if !ok {
		return
	}

	item, err := h.Admin.EditMenuItem(r.Context(), id, form)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *Handler) deleteMenuItem(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	if err := h.Admin.RemoveMenuItem(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

// readMenuItemForm parses the multipart menu item form and writes the error response itself.
func readMenuItemForm(w http.ResponseWriter, r *http.Request) (domain.MenuItemForm, bool) {
	var form domain.MenuItemForm
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		writeError(w, http.StatusBadRequest, "File too large")
		return form, false
	}

	form.Name = r.FormValue("name")
	form.Description = r.FormValue("description")
	form.Price = r.FormValue("price")
	form.CategoryID, _ = strconv.Atoi(r.FormValue("category_id"))
	form.IsAvailable, _ = strconv.ParseBool(r.FormValue("is_available"))

	file, header, err := r.FormFile("image")
	if err == http.ErrMissingFile {
		return form, true
	}
	if err != nil {
		writeError(w, http.StatusBadRequest, "Error retrieving the file")
		return form, false
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if !allowedImageTypes[contentType] {
		writeError(w, http.StatusBadRequest, "Invalid file type. Only JPEG, PNG, GIF, WebP allowed")
		return form, false
	}

	image, err := io.ReadAll(file)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Error retrieving the file")
		return form, false
	}
	form.Image = image
	form.ImageName = header.Filename
	form.ImageType = contentType
	return form, true
}

func (h *Handler) getOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.Admin.Orders(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

func (h *Handler) updateOrderStatus(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Status domain.OrderStatus `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid payload")
		return
	}

	number := mux.Vars(r)["number"]
	if err := h.Admin.SetOrderStatus(r.Context(), number, req.Status); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"order_number": number, "status": string(req.Status)})
}

func (h *Handler) getFeedback(w http.ResponseWriter, r *http.Request) {
	summary, err := h.Admin.Feedback(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

func (h *Handler) getDashboard(w http.ResponseWriter, r *http.Request) {
	dashboard, err := h.Admin.Dashboard(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dashboard)
}

func (h *Handler) getTableQRCode(w http.ResponseWriter, r *http.Request) {
	png, err := h.QR.Table(r.URL.Query().Get("url"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Failed to generate QR code")
		return
	}
	writePNG(w, png)
}

func (h *Handler) getReceipts(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	receipts, err := h.Admin.Receipts(r.Context(), limit)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, receipts)
}

func (h *Handler) getKitchenOrders(w http.ResponseWriter, r *http.Request) {
	id := visitorID(r)
	poller := h.Visitors.Kitchen(id)
	if !poller.Running() {
		if err := poller.Refresh(r.Context()); err != nil {
			writeServiceError(w, err)
			return
		}
		poller.Start(h.BaseContext, sessionFrom(r).Token)
	}

	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	writeJSON(w, http.StatusOK, poller.Page(page))
}

func (h *Handler) completeKitchenOrder(w http.ResponseWriter, r *http.Request) {
	number := mux.Vars(r)["number"]
	poller := h.Visitors.Kitchen(visitorID(r))
	if err := poller.MarkCompleted(r.Context(), number); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"order_number": number, "status": string(domain.OrderCompleted)})
}
