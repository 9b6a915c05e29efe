package httpserver

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/asiedu/ecommerce-cart/internal/logging"
	"github.com/asiedu/ecommerce-cart/internal/mykafka"
	"github.com/asiedu/ecommerce-cart/internal/service"
	"github.com/asiedu/ecommerce-cart/internal/transport"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type CartHandler struct {
	Svc      *service.CartService
	Producer *mykafka.Producer
}

func (h *CartHandler) publish(c echo.Context, event map[string]any) {
	event["event_id"] = uuid.NewString()

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	if err := h.Producer.PublishEvent(ctx, "cart_events", fmt.Sprint(event["user_id"]), event); err != nil {
		logging.FromContext(c.Request().Context()).Error("kafka publish error", "error", err)
	}
}

// AddToCart merges the incoming quantity into the (user, product) line
// item, or creates it on first add.
func (h *CartHandler) AddToCart(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "post.carts")

	var req transport.CartItemPostRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("add_to_cart_error", "status", 400, "error", err)
		return respond(c, http.StatusBadRequest, "invalid body", nil)
	}

	// The decrement path is deliberately not reachable from here.
	if req.Quantity < 1 {
		l.Warn("add_to_cart_error", "status", 400)
		return respond(c, http.StatusBadRequest, "Invalid product quantity.", nil)
	}

	outcome, item, err := h.Svc.AddToCart(ctx, req.UserID, req.ProductID, req.Quantity)
	if err != nil {
		status, _ := classify(err)
		l.Warn("add_to_cart_error", "status", status, "error", err)
		return respondError(c, err)
	}

	var message string
	switch outcome {
	case service.OutcomeCreated:
		message = "Item(s) added to cart successfully."
		l.Info("cart item created", "user_id", req.UserID, "product_id", req.ProductID, "quantity", item.Quantity)
	default:
		message = "Product(s) added to cart successfully."
		l.Info("cart item quantity increased", "user_id", req.UserID, "product_id", req.ProductID, "quantity", item.Quantity)
	}

	h.publish(c, map[string]any{
		"type":       "add_to_cart",
		"outcome":    outcome.String(),
		"user_id":    req.UserID,
		"product_id": req.ProductID,
		"quantity":   item.Quantity,
	})

	return respond(c, http.StatusCreated, message, transport.AddToCartResponse{
		Outcome: outcome.String(),
		Item:    item,
	})
}

// GetCartItem reads the line item for a (user, product) pair.
func (h *CartHandler) GetCartItem(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "get.carts")

	userID, err := parseID(c.Param("userId"))
	if err != nil {
		return respond(c, http.StatusBadRequest, "invalid user id", nil)
	}
	productID, err := parseID(c.Param("productId"))
	if err != nil {
		return respond(c, http.StatusBadRequest, "invalid product id", nil)
	}

	view, err := h.Svc.GetCartItem(ctx, userID, productID)
	if err != nil {
		status, _ := classify(err)
		l.Warn("get_cart_item_error", "status", status, "error", err)
		return respondError(c, err)
	}

	return respond(c, http.StatusOK, "Ok", view)
}

// RemoveFromCart deletes the line item for a (user, product) pair. A
// second removal of the same pair reports not found.
func (h *CartHandler) RemoveFromCart(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "delete.carts")

	userID, err := parseID(c.Param("userId"))
	if err != nil {
		return respond(c, http.StatusBadRequest, "invalid user id", nil)
	}
	productID, err := parseID(c.Param("productId"))
	if err != nil {
		return respond(c, http.StatusBadRequest, "invalid product id", nil)
	}

	if err := h.Svc.RemoveFromCart(ctx, userID, productID); err != nil {
		status, _ := classify(err)
		l.Warn("remove_from_cart_error", "status", status, "error", err)
		return respondError(c, err)
	}

	l.Info("cart item deleted", "user_id", userID, "product_id", productID)
	h.publish(c, map[string]any{
		"type":       "cart_item_deleted",
		"user_id":    userID,
		"product_id": productID,
	})

	return respond(c, http.StatusOK, "Cart item deleted successfully.", nil)
}

func parseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("invalid id %q", raw)
	}
	return uint(id), nil
}
