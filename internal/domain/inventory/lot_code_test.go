package inventory_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dulceria-lilis/inventario-api/internal/domain/inventory"
)

// Primer lote de un SKU sin lotes previos: arranca en 0001.
func TestNextLotCode_PrimerLote(t *testing.T) {
	assert.Equal(t, "LOT-SKU000001-0001", inventory.NextLotCode("SKU000001", ""))
}

// La secuencia incrementa sobre el último código existente.
func TestNextLotCode_Incrementa(t *testing.T) {
	assert.Equal(t, "LOT-SKU000001-0002", inventory.NextLotCode("SKU000001", "LOT-SKU000001-0001"))
	assert.Equal(t, "LOT-SKU000001-0100", inventory.NextLotCode("SKU000001", "LOT-SKU000001-0099"))
	// Más de 4 dígitos: el padding es mínimo, no trunca.
	assert.Equal(t, "LOT-SKU000001-10000", inventory.NextLotCode("SKU000001", "LOT-SKU000001-9999"))
}

// Sufijo no numérico (código creado a mano): se reinicia en 1 sin fallar.
func TestNextLotCode_SufijoInvalidoReinicia(t *testing.T) {
	assert.Equal(t, "LOT-CHOC01-0001", inventory.NextLotCode("CHOC01", "LOT-CHOC01-ABC"))
}

// N códigos secuenciales producen N códigos distintos 0001..000N.
func TestNextLotCode_SecuenciaDistinta(t *testing.T) {
	last := ""
	seen := make(map[string]bool)
	for i := 1; i <= 25; i++ {
		code := inventory.NextLotCode("SKU000001", last)
		assert.Equal(t, fmt.Sprintf("LOT-SKU000001-%04d", i), code)
		assert.False(t, seen[code], "código repetido: %s", code)
		seen[code] = true
		last = code
	}
}
