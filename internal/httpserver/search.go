package httpserver

import (
	"net/http"
	"strconv"

	"github.com/asiedu/ecommerce-cart/internal/logging"
	"github.com/asiedu/ecommerce-cart/internal/service/search"
	"github.com/elastic/go-elasticsearch/v9"
	"github.com/labstack/echo/v4"
)

type SearchHandler struct {
	ES    *elasticsearch.Client
	Index string
}

func (h *SearchHandler) Search(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "get.search")

	q := c.QueryParam("q")
	if q == "" {
		return respond(c, http.StatusBadRequest, "query required", nil)
	}

	page, _ := strconv.Atoi(c.QueryParam("page"))
	size, _ := strconv.Atoi(c.QueryParam("size"))
	if page < 1 {
		page = 1
	}
	if size <= 0 || size > 100 {
		size = 10
	}

	total, products, err := search.Search(ctx, h.ES, h.Index, q, (page-1)*size, size)
	if err != nil {
		l.Error("search_error", "status", 500, "error", err)
		return respond(c, http.StatusInternalServerError, "Something went wrong.", nil)
	}

	return respond(c, http.StatusOK, "Ok", echo.Map{"total": total, "products": products})
}
