package httpapi

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"strconv"
	"time"

	"foodapp/food-svc/internal/domain"
	"foodapp/food-svc/internal/service"

	"github.com/gorilla/mux"
)

type Handler struct {
	Auth      service.AuthServiceInterface
	Catalog   service.CatalogServiceInterface
	Orders    service.OrderServiceInterface
	Analytics service.AnalyticsInterface
}

func NewHandler(authSvc service.AuthServiceInterface, catalogSvc service.CatalogServiceInterface, orderSvc service.OrderServiceInterface, analyticsSvc service.AnalyticsInterface) *Handler {
	return &Handler{
		Auth:      authSvc,
		Catalog:   catalogSvc,
		Orders:    orderSvc,
		Analytics: analyticsSvc,
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/auth/signup", h.signup).Methods("POST")
	r.HandleFunc("/api/auth/login", h.login).Methods("POST")

	r.HandleFunc("/api/restaurants", h.getRestaurants).Methods("GET")
	r.HandleFunc("/api/restaurants", h.createRestaurant).Methods("POST")
	r.HandleFunc("/api/restaurants/{id}/menu", h.getMenu).Methods("GET")

	r.HandleFunc("/api/foods", h.createFood).Methods("POST")
	r.HandleFunc("/api/foods/popular", h.getPopularFoods).Methods("GET")

	r.Handle("/api/orders", h.identify(http.HandlerFunc(h.createOrder))).Methods("POST")
	r.Handle("/api/orders/my", h.requireIdentity(http.HandlerFunc(h.getMyOrders))).Methods("GET")
	r.HandleFunc("/api/orders/{id}/qrcode", h.getOrderQRCode).Methods("GET")

	r.HandleFunc("/api/stats/daily", h.getDailyStats).Methods("GET")
	r.HandleFunc("/api/stats/recent", h.getRecentStats).Methods("GET")
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type placeOrderRequest struct {
	Items    []domain.CartItem `json:"items"`
	Customer domain.Customer   `json:"customer"`
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"service":   "food-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	var in service.SignupInput
	if !decodeJSON(w, r, &in) {
		return
	}

	user, err := h.Auth.Register(r.Context(), in)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	token, err := h.Auth.IssueToken(user)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"id": user.ID, "token": token})
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var in loginRequest
	if !decodeJSON(w, r, &in) {
		return
	}

	token, err := h.Auth.Authenticate(r.Context(), in.Email, in.Password)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"token": token})
}

func (h *Handler) getRestaurants(w http.ResponseWriter, r *http.Request) {
	restaurants, err := h.Catalog.ListRestaurants(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, restaurants)
}

func (h *Handler) createRestaurant(w http.ResponseWriter, r *http.Request) {
	var in service.RestaurantInput
	if !decodeJSON(w, r, &in) {
		return
	}

	rest, err := h.Catalog.CreateRestaurant(r.Context(), in)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rest)
}

func (h *Handler) getMenu(w http.ResponseWriter, r *http.Request) {
	restaurantID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid restaurant id")
		return
	}

	foods, err := h.Catalog.ListMenu(r.Context(), restaurantID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, foods)
}

func (h *Handler) createFood(w http.ResponseWriter, r *http.Request) {
	var in service.FoodInput
	if !decodeJSON(w, r, &in) {
		return
	}

	food, err := h.Catalog.AddFood(r.Context(), in)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, food)
}

func (h *Handler) getPopularFoods(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			writeError(w, http.StatusBadRequest, "Invalid limit")
			return
		}
		limit = parsed
	}

	popular, err := h.Catalog.PopularFoods(r.Context(), limit)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, popular)
}

func (h *Handler) getDailyStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Analytics.DailyStats(r.Context(), r.URL.Query().Get("date"))
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func (h *Handler) getRecentStats(w http.ResponseWriter, r *http.Request) {
	days := 0
	if raw := r.URL.Query().Get("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			writeError(w, http.StatusBadRequest, "Invalid days")
			return
		}
		days = parsed
	}

	stats, err := h.Analytics.RecentStats(r.Context(), days)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func (h *Handler) createOrder(w http.ResponseWriter, r *http.Request) {
	var req placeOrderRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	in := service.PlaceOrderInput{Items: req.Items, Customer: req.Customer}
	if claims, ok := ClaimsFromContext(r.Context()); ok {
		userID := claims.UserID
		in.UserID = &userID
	}

	order, err := h.Orders.PlaceOrder(r.Context(), in)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"id": order.ID})
}

func (h *Handler) getMyOrders(w http.ResponseWriter, r *http.Request) {
	claims, ok := ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Missing auth")
		return
	}

	orders, err := h.Orders.MyOrders(r.Context(), claims.UserID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

func (h *Handler) getOrderQRCode(w http.ResponseWriter, r *http.Request) {
	orderID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid order id")
		return
	}

	qrCode, err := h.Orders.QRCode(r.Context(), orderID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	w.Write(qrCode)
}

// decodeJSON treats an empty body as an empty object so that missing
// fields are reported by validation rather than as malformed JSON.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return false
	}
	return true
}

func (h *Handler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	var status int
	switch {
	case errors.Is(err, service.ErrValidation), errors.Is(err, service.ErrConflict):
		status = http.StatusBadRequest
	case errors.Is(err, service.ErrUnauthorized):
		status = http.StatusUnauthorized
	case errors.Is(err, service.ErrNotFound):
		status = http.StatusNotFound
	default:
		log.Printf("[food-svc] request %s failed: %v", RequestIDFromContext(r.Context()), err)
		writeError(w, http.StatusInternalServerError, "Server error")
		return
	}

	message := err.Error()
	var svcErr *service.Error
	if errors.As(err, &svcErr) {
		message = svcErr.Message
	}
	writeError(w, status, message)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
