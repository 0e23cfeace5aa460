package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"rik-restaurant/auth"
	"rik-restaurant/restaurant-svc/internal/domain"
	"rik-restaurant/restaurant-svc/internal/service"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	Catalog  service.CatalogServiceInterface
	Carts    service.CartServiceInterface
	Bookings service.BookingServiceInterface
	Orders   service.OrderServiceInterface
	Messages service.MessageServiceInterface
	Users    service.UserServiceInterface
	Admin    service.AdminServiceInterface
	QR       service.QRGenerator
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/menu", h.getMenu).Methods("GET")
	r.HandleFunc("/api/menu/specials", h.getSpecials).Methods("GET")
	r.HandleFunc("/api/menu/{id}", h.getMenuItem).Methods("GET")

	r.HandleFunc("/api/cart", h.getCart).Methods("GET")
	r.HandleFunc("/api/cart", h.clearCart).Methods("DELETE")
	r.HandleFunc("/api/cart/items", h.addCartItem).Methods("POST")
	r.HandleFunc("/api/cart/items/{itemId}", h.updateCartItem).Methods("PUT")
	r.HandleFunc("/api/cart/items/{itemId}", h.removeCartItem).Methods("DELETE")

	r.HandleFunc("/api/bookings/availability", h.checkAvailability).Methods("POST")
	r.HandleFunc("/api/bookings", h.createBooking).Methods("POST")
	r.HandleFunc("/api/bookings/{id}/qrcode", h.getBookingQRCode).Methods("GET")

	r.HandleFunc("/api/orders", h.placeOrder).Methods("POST")
	r.Handle("/api/orders", auth.RequireUser(http.HandlerFunc(h.getMyOrders))).Methods("GET")
	r.HandleFunc("/api/orders/{id}/qrcode", h.getOrderQRCode).Methods("GET")

	r.HandleFunc("/api/contact", h.submitInquiry).Methods("POST")
	r.Handle("/api/contact/mine", auth.RequireUser(http.HandlerFunc(h.getMyInquiries))).Methods("GET")

	r.HandleFunc("/api/users", h.registerUser).Methods("POST")

	admin := r.PathPrefix("/api/admin").Subrouter()
	admin.Use(auth.RequireAdmin)
	admin.HandleFunc("/summary", h.getSummary).Methods("GET")
	admin.HandleFunc("/menu", h.addMenuItem).Methods("POST")
	admin.HandleFunc("/menu/{id}", h.removeMenuItem).Methods("DELETE")
	admin.HandleFunc("/bookings", h.getBookings).Methods("GET")
	admin.HandleFunc("/bookings/{id}", h.deleteBooking).Methods("DELETE")
	admin.HandleFunc("/orders", h.getOrders).Methods("GET")
	admin.HandleFunc("/orders/{id}/status", h.setOrderStatus).Methods("PUT")
	admin.HandleFunc("/messages", h.getInquiries).Methods("GET")
	admin.HandleFunc("/messages/read-all", h.markAllInquiriesRead).Methods("POST")
	admin.HandleFunc("/messages/{id}/read", h.markInquiryRead).Methods("POST")
	admin.HandleFunc("/messages/{id}/reply", h.replyInquiry).Methods("POST")
	admin.HandleFunc("/messages/{id}", h.deleteInquiry).Methods("DELETE")
	admin.HandleFunc("/users", h.getUsers).Methods("GET")
	admin.HandleFunc("/users/{email}", h.deleteUser).Methods("DELETE")
	admin.HandleFunc("/carts", h.getCarts).Methods("GET")
	admin.HandleFunc("/carts/{identity}", h.clearUserCart).Methods("DELETE")
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// writeError maps service errors onto status codes.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	switch {
	case service.IsValidation(err), errors.Is(err, service.ErrEmptyCart):
		status = http.StatusBadRequest
	case errors.Is(err, service.ErrItemNotFound),
		errors.Is(err, service.ErrBookingNotFound),
		errors.Is(err, service.ErrOrderNotFound):
		status = http.StatusNotFound
	case errors.Is(err, service.ErrNoTableAvailable),
		errors.Is(err, service.ErrTableTaken),
		errors.Is(err, service.ErrEmailTaken):
		status = http.StatusConflict
	}
	if status == http.StatusInternalServerError {
		log.Error().Err(err).Str("path", r.URL.Path).Msg("request failed")
	}
	writeJSONError(w, status, err.Error())
}

func decode(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return false
	}
	return true
}

func identity(r *http.Request) string {
	return domain.IdentityOf(auth.PrincipalFrom(r.Context()).Email)
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"service":   "restaurant-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

// Catalog

func (h *Handler) getMenu(w http.ResponseWriter, r *http.Request) {
	items, err := h.Catalog.ListItems(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *Handler) getSpecials(w http.ResponseWriter, r *http.Request) {
	items, err := h.Catalog.ListSpecials(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *Handler) getMenuItem(w http.ResponseWriter, r *http.Request) {
	item, err := h.Catalog.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *Handler) addMenuItem(w http.ResponseWriter, r *http.Request) {
	var draft domain.MenuItem
	if !decode(w, r, &draft) {
		return
	}
	item, err := h.Catalog.AddItem(r.Context(), draft)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, item)
}

func (h *Handler) removeMenuItem(w http.ResponseWriter, r *http.Request) {
	if err := h.Catalog.RemoveItem(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Cart

func (h *Handler) writeCart(w http.ResponseWriter, r *http.Request) {
	summary, err := h.Carts.Summary(r.Context(), identity(r))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

func (h *Handler) getCart(w http.ResponseWriter, r *http.Request) {
	h.writeCart(w, r)
}

func (h *Handler) addCartItem(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ItemID string `json:"itemId"`
	}
	if !decode(w, r, &req) {
		return
	}
	item, err := h.Catalog.Get(r.Context(), req.ItemID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if _, err := h.Carts.AddToCart(r.Context(), identity(r), item); err != nil {
		writeError(w, r, err)
		return
	}
	h.writeCart(w, r)
}

func (h *Handler) updateCartItem(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Quantity int `json:"quantity"`
	}
	if !decode(w, r, &req) {
		return
	}
	if err := h.Carts.SetQuantity(r.Context(), identity(r), mux.Vars(r)["itemId"], req.Quantity); err != nil {
		writeError(w, r, err)
		return
	}
	h.writeCart(w, r)
}

func (h *Handler) removeCartItem(w http.ResponseWriter, r *http.Request) {
	if err := h.Carts.RemoveLine(r.Context(), identity(r), mux.Vars(r)["itemId"]); err != nil {
		writeError(w, r, err)
		return
	}
	h.writeCart(w, r)
}

func (h *Handler) clearCart(w http.ResponseWriter, r *http.Request) {
	if err := h.Carts.Clear(r.Context(), identity(r)); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Bookings

func (h *Handler) checkAvailability(w http.ResponseWriter, r *http.Request) {
	var draft domain.BookingDraft
	if !decode(w, r, &draft) {
		return
	}
	table, err := h.Bookings.CheckAvailability(r.Context(), draft)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"available":   true,
		"tableNumber": table,
	})
}

type bookingRequest struct {
	domain.BookingDraft
	TableNumber int `json:"tableNumber"`
}

// createBooking assigns the first free table when the client did not run an
// availability check first.
func (h *Handler) createBooking(w http.ResponseWriter, r *http.Request) {
	var req bookingRequest
	if !decode(w, r, &req) {
		return
	}
	table := req.TableNumber
	if table == 0 {
		var err error
		if table, err = h.Bookings.CheckAvailability(r.Context(), req.BookingDraft); err != nil {
			writeError(w, r, err)
			return
		}
	}
	booking, err := h.Bookings.ConfirmBooking(r.Context(), identity(r), req.BookingDraft, table)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, booking)
}

func (h *Handler) getBookingQRCode(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if _, err := h.Bookings.Get(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	h.writeQRCode(w, r, service.QRKindBooking, id)
}

func (h *Handler) getBookings(w http.ResponseWriter, r *http.Request) {
	bookings, err := h.Bookings.ListBookings(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, bookings)
}

func (h *Handler) deleteBooking(w http.ResponseWriter, r *http.Request) {
	if err := h.Bookings.DeleteBooking(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Orders

func (h *Handler) placeOrder(w http.ResponseWriter, r *http.Request) {
	order, err := h.Orders.PlaceOrder(r.Context(), identity(r))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, order)
}

func (h *Handler) getMyOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.Orders.ListForUser(r.Context(), identity(r))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

func (h *Handler) getOrderQRCode(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if _, err := h.Orders.Get(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	h.writeQRCode(w, r, service.QRKindOrder, id)
}

func (h *Handler) getOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.Orders.ListOrders(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

func (h *Handler) setOrderStatus(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Status string `json:"status"`
	}
	if !decode(w, r, &req) {
		return
	}
	if err := h.Orders.SetStatus(r.Context(), mux.Vars(r)["id"], req.Status); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) writeQRCode(w http.ResponseWriter, r *http.Request, kind, id string) {
	png, err := h.QR.Generate(kind, id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}

// Messaging

func (h *Handler) submitInquiry(w http.ResponseWriter, r *http.Request) {
	var draft domain.InquiryDraft
	if !decode(w, r, &draft) {
		return
	}
	inquiry, err := h.Messages.Submit(r.Context(), identity(r), draft)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, inquiry)
}

func (h *Handler) getMyInquiries(w http.ResponseWriter, r *http.Request) {
	inquiries, err := h.Messages.ListForUser(r.Context(), identity(r))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"messages":       inquiries,
		"hasUnseenReply": service.HasUnseenReply(inquiries),
	})
}

func (h *Handler) getInquiries(w http.ResponseWriter, r *http.Request) {
	inquiries, err := h.Messages.ListAll(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, inquiries)
}

func (h *Handler) markInquiryRead(w http.ResponseWriter, r *http.Request) {
	if err := h.Messages.MarkRead(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) markAllInquiriesRead(w http.ResponseWriter, r *http.Request) {
	if err := h.Messages.MarkAllRead(r.Context()); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) replyInquiry(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Reply string `json:"reply"`
	}
	if !decode(w, r, &req) {
		return
	}
	if err := h.Messages.Reply(r.Context(), mux.Vars(r)["id"], req.Reply); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) deleteInquiry(w http.ResponseWriter, r *http.Request) {
	if err := h.Messages.Remove(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Users

func (h *Handler) registerUser(w http.ResponseWriter, r *http.Request) {
	var draft domain.User
	if !decode(w, r, &draft) {
		return
	}
	user, err := h.Users.Register(r.Context(), draft)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, user)
}

func (h *Handler) getUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.Users.ListUsers(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, users)
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	if err := h.Users.DeleteUser(r.Context(), mux.Vars(r)["email"]); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Admin dashboard

func (h *Handler) getSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.Admin.Summary(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

func (h *Handler) getCarts(w http.ResponseWriter, r *http.Request) {
	carts, err := h.Admin.ListCarts(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, carts)
}

func (h *Handler) clearUserCart(w http.ResponseWriter, r *http.Request) {
	if err := h.Admin.ClearCart(r.Context(), mux.Vars(r)["identity"]); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
