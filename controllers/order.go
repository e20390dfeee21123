package controllers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"go-storefront/models"
	"go-storefront/repository"

	"github.com/gorilla/mux"
)

// Mailer sends the customer-facing notifications for order events.
type Mailer interface {
	SendOrderReceived(toEmail string, order models.Order) error
	SendOrderStatusUpdate(toEmail string, order models.Order) error
}

// OrderController handles order-related requests
type OrderController struct {
	Repo repository.OrderRepository
	Mail Mailer // optional; nil disables notifications
}

// NewOrderController creates a new OrderController
func NewOrderController(repo repository.OrderRepository, mail Mailer) *OrderController {
	return &OrderController{Repo: repo, Mail: mail}
}

// CreateOrder records a submitted order. Payment is a mobile-money reference
// the customer pasted in; it is reviewed by hand, so the order always starts
// out pending.
func (oc *OrderController) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var order models.Order
	if err := json.NewDecoder(r.Body).Decode(&order); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	if order.Status == "" {
		order.Status = models.StatusPending
	}
	if err := order.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	order.CreatedAt = time.Now().UTC()
	if order.Date == "" {
		order.Date = order.CreatedAt.Format(time.RFC3339)
	}

	if err := oc.Repo.Insert(r.Context(), &order); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to create order")
		return
	}

	if oc.Mail != nil {
		go func(o models.Order) {
			if err := oc.Mail.SendOrderReceived(o.CustomerEmail, o); err != nil {
				slog.Error("order received email failed", "order_id", o.ID.Hex(), "error", err)
			}
		}(order)
	}

	writeJSON(w, http.StatusCreated, order)
}

// ListOrders retrieves every order, newest first. Scoping to a customer
// happens client-side.
func (oc *OrderController) ListOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := oc.Repo.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to fetch orders")
		return
	}

	writeJSON(w, http.StatusOK, orders)
}

// UpdateOrderStatus allows admin to move an order through the status
// vocabulary (pending, confirmed, cancelled, shipped)
func (oc *OrderController) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	params := mux.Vars(r)

	var statusUpdate struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&statusUpdate); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid input")
		return
	}
	if !models.ValidStatus(statusUpdate.Status) {
		writeError(w, http.StatusBadRequest, "Invalid order status")
		return
	}

	if err := oc.Repo.UpdateStatus(r.Context(), params["id"], statusUpdate.Status); err != nil {
		writeError(w, statusForRepoErr(err), "Failed to update order status")
		return
	}

	order, err := oc.Repo.Get(r.Context(), params["id"])
	if err != nil {
		writeError(w, statusForRepoErr(err), "Failed to retrieve updated order")
		return
	}

	if oc.Mail != nil {
		go func(o models.Order) {
			if err := oc.Mail.SendOrderStatusUpdate(o.CustomerEmail, o); err != nil {
				slog.Error("status update email failed", "order_id", o.ID.Hex(), "error", err)
			}
		}(order)
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Order status updated successfully"})
}
