package services

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveYear(t *testing.T) {
	app := fiber.New()
	app.Get("/resolve", func(c *fiber.Ctx) error {
		c.Locals(currentYearKey, "2024-2025")
		return c.SendString(ResolveYear(c, c.Query("academic_year")))
	})

	cases := []struct {
		url  string
		want string
	}{
		{"/resolve", "2024-2025"},                          // falls back to the active year
		{"/resolve?academic_year=2023-2024", "2023-2024"},  // explicit request wins
		{"/resolve?academic_year=" + AllYears, ""},         // "all" lifts the scope entirely
	}
	for _, tc := range cases {
		resp, err := app.Test(httptest.NewRequest("GET", tc.url, nil))
		require.NoError(t, err)
		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.Equal(t, tc.want, string(body), tc.url)
	}
}

func TestCurrentYearLabelWithoutActiveYear(t *testing.T) {
	app := fiber.New()
	app.Get("/label", func(c *fiber.Ctx) error {
		return c.SendString(CurrentYearLabel(c))
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/label", nil))
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "", string(body))
}
