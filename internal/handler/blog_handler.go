package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/planetnakshatra/api/internal/models"
	"github.com/planetnakshatra/api/internal/repository"
	"gorm.io/gorm"
)

type BlogHandler struct {
	blogs repository.BlogRepository
}

func NewBlogHandler(blogs repository.BlogRepository) *BlogHandler {
	return &BlogHandler{blogs: blogs}
}

func (h *BlogHandler) RegisterRoutes(g *echo.Group) {
	g.GET("", h.ListBlogs)
	g.GET("/:slug", h.GetBlog)
}

// ListBlogs degrades to an empty list when the table is unreachable; the
// insights section is not worth a 500.
func (h *BlogHandler) ListBlogs(c echo.Context) error {
	blogs, err := h.blogs.FindPublished(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusOK, []models.Blog{})
	}
	return c.JSON(http.StatusOK, blogs)
}

func (h *BlogHandler) GetBlog(c echo.Context) error {
	blog, err := h.blogs.FindBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "blog not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, blog)
}
