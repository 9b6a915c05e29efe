package httpserver

import (
	"fmt"
	"net/http"

	"github.com/asiedu/ecommerce-cart/internal/logging"
	"github.com/asiedu/ecommerce-cart/internal/service"
	"github.com/asiedu/ecommerce-cart/internal/transport"
	"github.com/labstack/echo/v4"
)

type UserHandler struct {
	Svc *service.UserService
}

func (h *UserHandler) GetUsers(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "get.users")

	page, pageSize, err := parsePageQuery(c)
	if err != nil {
		return respond(c, http.StatusBadRequest, err.Error(), nil)
	}

	pageUsers, err := h.Svc.GetUsers(ctx, page, pageSize)
	if err != nil {
		status, _ := classify(err)
		l.Warn("get_users_error", "status", status, "error", err)
		return respondError(c, err)
	}

	message := fmt.Sprintf("%d user(s) found.", len(pageUsers.Items))
	return respond(c, http.StatusOK, message, pageUsers)
}

func (h *UserHandler) GetUser(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "get.users.id")

	id, err := parseID(c.Param("id"))
	if err != nil {
		return respond(c, http.StatusBadRequest, "invalid id", nil)
	}

	user, err := h.Svc.GetUser(ctx, id)
	if err != nil {
		status, _ := classify(err)
		l.Warn("get_user_error", "status", status, "error", err)
		return respondError(c, err)
	}

	return respond(c, http.StatusOK, "Ok", user)
}

func (h *UserHandler) CreateUser(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "post.users")

	var req transport.UserPostRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("create_user_error", "status", 400, "error", err)
		return respond(c, http.StatusBadRequest, "invalid body", nil)
	}

	user, err := h.Svc.CreateUser(ctx, req.Name, req.PhoneNumber)
	if err != nil {
		status, _ := classify(err)
		l.Warn("create_user_error", "status", status, "error", err)
		return respondError(c, err)
	}

	l.Info("user created", "id", user.ID)
	return respond(c, http.StatusCreated, "User created successfully.", user)
}

func (h *UserHandler) UpdateUser(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "put.users")

	id, err := parseID(c.Param("id"))
	if err != nil {
		return respond(c, http.StatusBadRequest, "invalid id", nil)
	}

	var req transport.UserPostRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("update_user_error", "status", 400, "error", err)
		return respond(c, http.StatusBadRequest, "invalid body", nil)
	}

	user, err := h.Svc.UpdateUser(ctx, id, req.Name, req.PhoneNumber)
	if err != nil {
		status, _ := classify(err)
		l.Warn("update_user_error", "status", status, "error", err)
		return respondError(c, err)
	}

	l.Info("user updated", "id", id)
	return respond(c, http.StatusOK, "User updated successfully.", user)
}

func (h *UserHandler) DeleteUser(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "delete.users")

	id, err := parseID(c.Param("id"))
	if err != nil {
		return respond(c, http.StatusBadRequest, "invalid id", nil)
	}

	if err := h.Svc.DeleteUser(ctx, id); err != nil {
		status, _ := classify(err)
		l.Warn("delete_user_error", "status", status, "error", err)
		return respondError(c, err)
	}

	l.Info("user deleted", "id", id)
	return respond(c, http.StatusOK, "User deleted successfully.", nil)
}
