package httpserver

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/asiedu/ecommerce-cart/internal/logging"
	"github.com/asiedu/ecommerce-cart/internal/pagination"
	"github.com/asiedu/ecommerce-cart/internal/repo"
	"github.com/asiedu/ecommerce-cart/internal/transport"
	"github.com/labstack/echo/v4"
)

// ListCartItems serves the filtered, paginated cart listing. All filters
// are optional and combine with AND.
func (h *CartHandler) ListCartItems(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "get.cartitems")

	filter, page, pageSize, err := parseListQuery(c)
	if err != nil {
		l.Warn("list_cart_items_error", "status", 400, "error", err)
		return respond(c, http.StatusBadRequest, err.Error(), nil)
	}

	pageItems, err := h.Svc.ListCartItems(ctx, filter, page, pageSize)
	if err != nil {
		status, _ := classify(err)
		l.Warn("list_cart_items_error", "status", status, "error", err)
		return respondError(c, err)
	}

	message := fmt.Sprintf("%d cart item(s) found.", len(pageItems.Items))
	l.Info("cart items listed", "total", pageItems.TotalItems, "page", page)
	return respond(c, http.StatusOK, message, pageItems)
}

// GetCartItemByID reads a single line item by identity.
func (h *CartHandler) GetCartItemByID(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "get.cartitems.id")

	id, err := parseID(c.Param("id"))
	if err != nil {
		return respond(c, http.StatusBadRequest, "invalid id", nil)
	}

	view, err := h.Svc.GetCartItemByID(ctx, id)
	if err != nil {
		status, _ := classify(err)
		l.Warn("get_cart_item_error", "status", status, "error", err)
		return respondError(c, err)
	}

	return respond(c, http.StatusOK, "Ok", view)
}

// UpdateCartItem replaces the quantity (and ownership fields) of an
// existing line item identified by id.
func (h *CartHandler) UpdateCartItem(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "put.cartitems")

	id, err := parseID(c.Param("id"))
	if err != nil {
		return respond(c, http.StatusBadRequest, "invalid id", nil)
	}

	var req transport.CartItemPostRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("update_cart_item_error", "status", 400, "error", err)
		return respond(c, http.StatusBadRequest, "invalid body", nil)
	}

	item, err := h.Svc.UpdateCartItem(ctx, id, req.UserID, req.ProductID, req.Quantity)
	if err != nil {
		status, _ := classify(err)
		l.Warn("update_cart_item_error", "status", status, "error", err)
		return respondError(c, err)
	}

	l.Info("cart item updated", "id", id, "quantity", item.Quantity)
	h.publish(c, map[string]any{
		"type":       "cart_item_updated",
		"user_id":    item.UserID,
		"product_id": item.ProductID,
		"quantity":   item.Quantity,
	})

	return respond(c, http.StatusOK, "Cart item updated successfully.", item)
}

// RemoveCartItemByID deletes a line item by identity.
func (h *CartHandler) RemoveCartItemByID(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "delete.cartitems")

	id, err := parseID(c.Param("id"))
	if err != nil {
		return respond(c, http.StatusBadRequest, "invalid id", nil)
	}

	if err := h.Svc.RemoveCartItemByID(ctx, id); err != nil {
		status, _ := classify(err)
		l.Warn("remove_cart_item_error", "status", status, "error", err)
		return respondError(c, err)
	}

	l.Info("cart item deleted", "id", id)
	h.publish(c, map[string]any{
		"type":    "cart_item_deleted",
		"item_id": id,
	})

	return respond(c, http.StatusOK, "Cart item deleted successfully.", nil)
}

func parseListQuery(c echo.Context) (repo.CartItemFilter, int, int, error) {
	var filter repo.CartItemFilter

	filter.PhoneNumber = c.QueryParam("phoneNumber")

	if raw := c.QueryParam("productId"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil || id == 0 {
			return filter, 0, 0, fmt.Errorf("product id must be greater than 0")
		}
		filter.ProductID = uint(id)
	}

	var err error
	if filter.MinQuantity, err = intQueryParam(c, "minQuantity"); err != nil {
		return filter, 0, 0, err
	}
	if filter.MaxQuantity, err = intQueryParam(c, "maxQuantity"); err != nil {
		return filter, 0, 0, err
	}

	if raw := c.QueryParam("from"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return filter, 0, 0, fmt.Errorf("invalid from date %q", raw)
		}
		filter.From = t
	}
	if raw := c.QueryParam("to"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return filter, 0, 0, fmt.Errorf("invalid to date %q", raw)
		}
		filter.To = t
	}

	page, pageSize, err := parsePageQuery(c)
	if err != nil {
		return filter, 0, 0, err
	}
	return filter, page, pageSize, nil
}

func parsePageQuery(c echo.Context) (int, int, error) {
	page := pagination.DefaultPage
	pageSize := pagination.DefaultPageSize

	if raw := c.QueryParam("page"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return 0, 0, fmt.Errorf("invalid page %q", raw)
		}
		page = n
	}
	if raw := c.QueryParam("pageSize"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return 0, 0, fmt.Errorf("invalid page size %q", raw)
		}
		pageSize = n
	}
	return page, pageSize, nil
}

func intQueryParam(c echo.Context, name string) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q", name, raw)
	}
	return n, nil
}
