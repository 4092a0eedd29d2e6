package http

import (
	"fmt"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aureum-app/aureum-api/internal/domain"
)

func respuestaDe(t *testing.T, err error) (int, string) {
	t.Helper()
	app := fiber.New()
	app.Get("/x", func(c *fiber.Ctx) error {
		return responderError(c, err)
	})
	resp, reqErr := app.Test(httptest.NewRequest("GET", "/x", nil))
	require.NoError(t, reqErr)
	defer resp.Body.Close()
	body, readErr := io.ReadAll(resp.Body)
	require.NoError(t, readErr)
	return resp.StatusCode, string(body)
}

func TestResponderError_NoReconocido_Retorna500Generico(t *testing.T) {
	interno := fmt.Errorf("insert gasto: ERROR: deadlock detected (SQLSTATE 40P01)")
	status, body := respuestaDe(t, interno)

	assert.Equal(t, fiber.StatusInternalServerError, status)
	assert.Contains(t, body, "INTERNAL")
	assert.Contains(t, body, "error interno del servidor")
	// El texto del driver nunca llega al cliente
	assert.NotContains(t, body, "deadlock")
	assert.NotContains(t, body, "SQLSTATE")
}

func TestResponderError_SentinelEnvuelto_ConservaSuCodigo(t *testing.T) {
	envuelto := fmt.Errorf("al retirar: %w", domain.ErrFondosInsuficientes)
	status, body := respuestaDe(t, envuelto)

	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Contains(t, body, "FONDOS_INSUFICIENTES")
}
