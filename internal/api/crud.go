package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/Spok95/shopdesk/internal/collection"
	"github.com/Spok95/shopdesk/internal/domain/activities"
	"github.com/Spok95/shopdesk/internal/domain/bookings"
	"github.com/gin-gonic/gin"
)

type crud[T collection.Record[T]] interface {
	List() []T
	Get(id string) (T, error)
	Add(ctx context.Context, v T) (T, error)
	Update(ctx context.Context, id string, v T) (T, error)
	Remove(ctx context.Context, id string) error
}

// mount регистрирует список, создание, чтение, замену и удаление по id.
func mount[T collection.Record[T]](g *gin.RouterGroup, log *slog.Logger, path string, repo crud[T]) {
	r := g.Group(path)

	r.GET("", func(c *gin.Context) {
		c.JSON(http.StatusOK, nonNil(repo.List()))
	})

	r.POST("", func(c *gin.Context) {
		var v T
		if err := c.ShouldBindJSON(&v); err != nil {
			badRequest(c, err)
			return
		}
		created, err := repo.Add(c.Request.Context(), v)
		if err != nil {
			fail(c, log, err)
			return
		}
		c.JSON(http.StatusCreated, created)
	})

	r.GET("/:id", func(c *gin.Context) {
		v, err := repo.Get(c.Param("id"))
		if err != nil {
			fail(c, log, err)
			return
		}
		c.JSON(http.StatusOK, v)
	})

	r.PUT("/:id", func(c *gin.Context) {
		var v T
		if err := c.ShouldBindJSON(&v); err != nil {
			badRequest(c, err)
			return
		}
		updated, err := repo.Update(c.Request.Context(), c.Param("id"), v)
		if err != nil {
			fail(c, log, err)
			return
		}
		c.JSON(http.StatusOK, updated)
	})

	r.DELETE("/:id", func(c *gin.Context) {
		if err := repo.Remove(c.Request.Context(), c.Param("id")); err != nil {
			fail(c, log, err)
			return
		}
		c.Status(http.StatusNoContent)
	})
}

// bookingDesk подменяет Add/Update на Schedule/Reschedule:
// активность подтягивается, цена считается, если не задана.
type bookingDesk struct {
	*bookings.Repo
	acts *activities.Repo
}

func (d bookingDesk) Add(ctx context.Context, b bookings.Booking) (bookings.Booking, error) {
	out, err := d.Schedule(ctx, b, d.acts)
	return out, activityErr(err)
}

func (d bookingDesk) Update(ctx context.Context, id string, b bookings.Booking) (bookings.Booking, error) {
	if _, err := d.Get(id); err != nil {
		return bookings.Booking{}, err
	}
	out, err := d.Reschedule(ctx, id, b, d.acts)
	return out, activityErr(err)
}

// ненайденная активность считается ошибкой ввода
func activityErr(err error) error {
	if errors.Is(err, collection.ErrNotFound) {
		return collection.Invalid("%v", err)
	}
	return err
}
