package http_test

import (
	"encoding/json"
	"os"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/tu-usuario/concesionario-pro/internal/interfaces/http"
)

// El documento swagger se escribe a mano: este test evita que se quede atrás
// del router. Cada ruta registrada debe estar documentada con su método.
func TestSwaggerDoc_CubreTodasLasRutas(t *testing.T) {
	raw, err := os.ReadFile("../../../docs/swagger.json")
	require.NoError(t, err)

	var doc struct {
		Paths map[string]map[string]any `json:"paths"`
	}
	require.NoError(t, json.Unmarshal(raw, &doc))

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{JWTSecret: testJWTSecret})

	for _, r := range app.GetRoutes(true) {
		if r.Method == fiber.MethodHead || r.Method == "USE" {
			continue
		}
		if !strings.HasPrefix(r.Path, "/api") {
			continue
		}
		docPath := strings.ReplaceAll(r.Path, "//", "/")
		docPath = strings.ReplaceAll(docPath, ":id", "{id}")

		ops, ok := doc.Paths[docPath]
		require.True(t, ok, "ruta sin documentar: %s", docPath)
		_, ok = ops[strings.ToLower(r.Method)]
		assert.True(t, ok, "método sin documentar: %s %s", r.Method, docPath)
	}
}
