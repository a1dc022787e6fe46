package dto_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/tu-usuario/concesionario-pro/internal/application/dto"
)

func TestDisplayCode_CincoDigitos(t *testing.T) {
	assert.Equal(t, "00001", dto.DisplayCode(1))
	assert.Equal(t, "00042", dto.DisplayCode(42))
	assert.Equal(t, "12345", dto.DisplayCode(12345))
	// ids de más de cinco dígitos no se truncan
	assert.Equal(t, "123456", dto.DisplayCode(123456))
}

func TestSafeText_GuionParaVacios(t *testing.T) {
	assert.Equal(t, "-", dto.SafeText(""))
	assert.Equal(t, "-", dto.SafeText("   "))
	assert.Equal(t, "Toyota Corolla", dto.SafeText("Toyota Corolla"))
}

func TestFormatPrice_SinCerosSobrantes(t *testing.T) {
	casos := []struct {
		in   string
		want string
	}{
		{"25000.00", "25000"},
		{"25000.50", "25000.5"},
		{"25000.55", "25000.55"},
		{"0.00", "0"},
		{"1000", "1000"},
	}
	for _, c := range casos {
		d, err := decimal.NewFromString(c.in)
		assert.NoError(t, err)
		assert.Equal(t, c.want, dto.FormatPrice(d), "precio=%s", c.in)
	}
}
