package webui

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/labstack/echo/v4"
)

var errBadID = echo.NewHTTPError(http.StatusNotFound, "registro no encontrado")

// pathID parses the :id path param; a malformed id is a 404, not a 500.
func pathID(ctx echo.Context) (int, error) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil || id <= 0 {
		return 0, errBadID
	}
	return id, nil
}

// formInt reads an integer form value; malformed input comes back as 0 and is
// caught by domain validation.
func formInt(values url.Values, name string) int {
	n, _ := strconv.Atoi(values.Get(name))
	return n
}

func formFloat(values url.Values, name string) float64 {
	f, _ := strconv.ParseFloat(values.Get(name), 64)
	return f
}

// formInts reads a repeated form value (checkbox group) as integers, dropping
// malformed entries.
func formInts(values url.Values, name string) []int {
	raw := values[name]
	ints := make([]int, 0, len(raw))
	for _, v := range raw {
		if n, err := strconv.Atoi(v); err == nil {
			ints = append(ints, n)
		}
	}
	return ints
}

// confirmed reports whether the submit carried the explicit confirmation
// field destructive actions require.
func confirmed(ctx echo.Context) bool {
	return ctx.FormValue("confirmar") == "1"
}
