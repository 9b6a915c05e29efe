package httpserver

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/asiedu/ecommerce-cart/internal/logging"
	"github.com/asiedu/ecommerce-cart/internal/mykafka"
	"github.com/asiedu/ecommerce-cart/internal/service"
	"github.com/asiedu/ecommerce-cart/internal/transport"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type ProductHandler struct {
	Svc      *service.ProductService
	Producer *mykafka.Producer
}

func (h *ProductHandler) publish(c echo.Context, event map[string]any) {
	event["event_id"] = uuid.NewString()

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	if err := h.Producer.PublishEvent(ctx, "product_events", fmt.Sprint(event["product_id"]), event); err != nil {
		logging.FromContext(c.Request().Context()).Error("kafka publish error", "error", err)
	}
}

func (h *ProductHandler) GetProducts(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "get.products")

	page, pageSize, err := parsePageQuery(c)
	if err != nil {
		return respond(c, http.StatusBadRequest, err.Error(), nil)
	}

	pageProducts, err := h.Svc.GetProducts(ctx, page, pageSize)
	if err != nil {
		status, _ := classify(err)
		l.Warn("get_products_error", "status", status, "error", err)
		return respondError(c, err)
	}

	message := fmt.Sprintf("%d product(s) found.", len(pageProducts.Items))
	return respond(c, http.StatusOK, message, pageProducts)
}

func (h *ProductHandler) GetProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "get.products.id")

	id, err := parseID(c.Param("id"))
	if err != nil {
		return respond(c, http.StatusBadRequest, "invalid id", nil)
	}

	product, err := h.Svc.GetProduct(ctx, id)
	if err != nil {
		status, _ := classify(err)
		l.Warn("get_product_error", "status", status, "error", err)
		return respondError(c, err)
	}

	return respond(c, http.StatusOK, "Ok", product)
}

func (h *ProductHandler) CreateProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "post.products")

	var req transport.ProductPostRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("create_product_error", "status", 400, "error", err)
		return respond(c, http.StatusBadRequest, "invalid body", nil)
	}

	product, err := h.Svc.CreateProduct(ctx, req.Name, req.UnitPrice, req.QuantityInStock)
	if err != nil {
		status, _ := classify(err)
		l.Warn("create_product_error", "status", status, "error", err)
		return respondError(c, err)
	}

	l.Info("product created", "id", product.ID)
	h.publish(c, map[string]any{
		"type":       "product_created",
		"product_id": product.ID,
		"name":       product.Name,
	})

	return respond(c, http.StatusCreated, "Product created successfully.", product)
}

func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "put.products")

	id, err := parseID(c.Param("id"))
	if err != nil {
		return respond(c, http.StatusBadRequest, "invalid id", nil)
	}

	var req transport.ProductPostRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("update_product_error", "status", 400, "error", err)
		return respond(c, http.StatusBadRequest, "invalid body", nil)
	}

	product, err := h.Svc.UpdateProduct(ctx, id, req.Name, req.UnitPrice, req.QuantityInStock)
	if err != nil {
		status, _ := classify(err)
		l.Warn("update_product_error", "status", status, "error", err)
		return respondError(c, err)
	}

	l.Info("product updated", "id", id)
	h.publish(c, map[string]any{
		"type":       "product_updated",
		"product_id": id,
	})

	return respond(c, http.StatusOK, "Product updated successfully.", product)
}

func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "delete.products")

	id, err := parseID(c.Param("id"))
	if err != nil {
		return respond(c, http.StatusBadRequest, "invalid id", nil)
	}

	if err := h.Svc.DeleteProduct(ctx, id); err != nil {
		status, _ := classify(err)
		l.Warn("delete_product_error", "status", status, "error", err)
		return respondError(c, err)
	}

	l.Info("product deleted", "id", id)
	h.publish(c, map[string]any{
		"type":       "product_deleted",
		"product_id": id,
	})

	return respond(c, http.StatusOK, "Product deleted successfully.", nil)
}
