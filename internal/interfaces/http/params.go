package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/aureum-app/aureum-api/internal/application/dto"
)

// queryFecha lee un query param de fecha en formato 2006-01-02 o RFC3339.
// Devuelve nil si está ausente y error si el formato no se reconoce.
func queryFecha(c *fiber.Ctx, nombre string) (*time.Time, error) {
	raw := c.Query(nombre)
	if raw == "" {
		return nil, nil
	}
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return &t, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return &t, nil
	}
	return nil, c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: nombre + " debe ser una fecha YYYY-MM-DD"})
}

// rangoQuery lee desde/hasta del query string; el rango abierto se completa
// con el último año hasta hoy.
func rangoQuery(c *fiber.Ctx) (time.Time, time.Time, error) {
	desde, respErr := queryFecha(c, "desde")
	if respErr != nil {
		return time.Time{}, time.Time{}, respErr
	}
	hasta, respErr := queryFecha(c, "hasta")
	if respErr != nil {
		return time.Time{}, time.Time{}, respErr
	}
	h := time.Now()
	if hasta != nil {
		h = *hasta
	}
	d := h.AddDate(-1, 0, 0)
	if desde != nil {
		d = *desde
	}
	return d, h, nil
}

// queryPage lee limit/offset del query string con los defaults de PageRequest.
func queryPage(c *fiber.Ctx) dto.PageRequest {
	page := dto.PageRequest{
		Limit:  c.QueryInt("limit"),
		Offset: c.QueryInt("offset"),
	}
	page.DefaultPage()
	return page
}
