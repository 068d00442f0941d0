package inventory

import (
	"fmt"
	"strconv"
	"strings"
)

// LotCodePrefix devuelve el prefijo de los códigos de lote de un SKU.
// Ejemplo: LOT-SKU000001-
func LotCodePrefix(sku string) string {
	return "LOT-" + sku + "-"
}

// NextLotCode genera el siguiente código de lote para un SKU a partir del
// último código existente con ese prefijo ("" si no hay ninguno).
// La secuencia es LOT-<SKU>-0001, LOT-<SKU>-0002, ... Si el sufijo del último
// código no es numérico se reinicia en 1 (fallback no fatal, igual que el
// sistema original).
func NextLotCode(sku, lastCode string) string {
	prefix := LotCodePrefix(sku)
	num := 1
	if lastCode != "" {
		suffix := strings.TrimPrefix(lastCode, prefix)
		if n, err := strconv.Atoi(suffix); err == nil {
			num = n + 1
		}
	}
	return fmt.Sprintf("%s%04d", prefix, num)
}
