package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePagination(t *testing.T) {
	tests := []struct {
		name          string
		query         string
		expectedLimit int
		expectedSkip  int
	}{
		{"defaults", "", 20, 0},
		{"explicit", "limit=50&skip=10", 50, 10},
		{"offset alias", "limit=5&offset=15", 5, 15},
		{"skip wins over offset", "skip=3&offset=9", 20, 3},
		{"limit capped", "limit=1000", 100, 0},
		{"negative values", "limit=-1&skip=-5", 20, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			var got Pagination
			app.Get("/", func(c *fiber.Ctx) error {
				got = parsePagination(c)
				return c.SendStatus(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/?"+tt.query, nil)
			_, err := app.Test(req, -1)
			require.NoError(t, err)

			assert.Equal(t, tt.expectedLimit, got.Limit)
			assert.Equal(t, tt.expectedSkip, got.Skip)
		})
	}
}

func TestParseID(t *testing.T) {
	app := fiber.New()
	s := &Server{}
	app.Get("/items/:id", func(c *fiber.Ctx) error {
		id, err := s.parseID(c, "id")
		if err != nil {
			return nil
		}
		return c.JSON(fiber.Map{"id": id})
	})

	t.Run("valid", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/items/42", nil)
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	for _, bad := range []string{"abc", "0", "-3"} {
		t.Run("invalid "+bad, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/items/"+bad, nil)
			resp, err := app.Test(req, -1)
			require.NoError(t, err)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		})
	}
}
