package pdf

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/concesionario-pro/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de formato
// ──────────────────────────────────────────────────────────────────────────────

func TestFormatDate_SinFechaDevuelveGuion(t *testing.T) {
	assert.Equal(t, "-", formatDate(nil), "el texto de respaldo es '-' en toda la app")

	d := time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "15/03/2026", formatDate(&d))
}

func TestFormatMoney_PuntosDeMiles(t *testing.T) {
	assert.Equal(t, "950", formatMoney("950"))
	assert.Equal(t, "25.000", formatMoney("25000"))
	assert.Equal(t, "1.000.000", formatMoney("1000000"))
}

func TestNonEmpty(t *testing.T) {
	assert.Equal(t, "ABC-123", nonEmpty("ABC-123", "-"))
	assert.Equal(t, "-", nonEmpty("", "-"))
}

// ──────────────────────────────────────────────────────────────────────────────
// Generación del documento
// ──────────────────────────────────────────────────────────────────────────────

// Una venta con campos opcionales vacíos (sin fecha, DNI ni placa) debe
// generar un PDF válido usando los textos de respaldo.
func TestGenerateReceipt_CamposOpcionalesVacios(t *testing.T) {
	gen := NewMarotoSaleReceipt()

	out, err := gen.GenerateReceipt(context.Background(), &entity.SaleDetail{
		ID:           12,
		Price:        decimal.NewFromInt(15000),
		CustomerName: "Ana García",
		VehicleText:  "Toyota Corolla 2022",
	})
	require.NoError(t, err)
	require.NotEmpty(t, out)
	assert.Equal(t, "%PDF", string(out[:4]))
}
