// Package excel genera archivos XLSX para exportación de datos.
package excel

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/dulceria-lilis/inventario-api/internal/application/dto"
)

// movementHeader columnas del reporte de movimientos, en el orden de la pantalla.
var movementHeader = []any{
	"Fecha", "Tipo", "SKU", "Producto", "Proveedor", "Cantidad",
	"Bodega Origen", "Bodega Destino", "Lote", "Serie", "Documento Ref.", "Observación", "Usuario",
}

// MovementsWorkbook genera un libro XLSX con el historial de movimientos y lo
// devuelve serializado, listo para enviar como descarga.
func MovementsWorkbook(items []dto.MovementListItem) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())
	if err := f.SetSheetName(sheet, "Movimientos"); err != nil {
		return nil, fmt.Errorf("renombrar hoja: %w", err)
	}
	sheet = "Movimientos"

	if err := f.SetSheetRow(sheet, "A1", &movementHeader); err != nil {
		return nil, fmt.Errorf("escribir encabezado: %w", err)
	}

	for i, it := range items {
		row := []any{
			it.CreatedAt.Format("2006-01-02 15:04"),
			it.Type,
			it.ProductSKU,
			it.ProductName,
			it.SupplierName,
			it.Quantity.InexactFloat64(),
			it.FromWarehouse,
			it.ToWarehouse,
			it.LotCode,
			it.Serial,
			it.ReferenceDoc,
			it.Note,
			it.User,
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, fmt.Errorf("calcular celda: %w", err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, fmt.Errorf("escribir fila: %w", err)
		}
	}

	if err := f.SetColWidth(sheet, "A", "A", 17); err != nil {
		return nil, fmt.Errorf("ajustar columnas: %w", err)
	}
	if err := f.SetColWidth(sheet, "C", "E", 24); err != nil {
		return nil, fmt.Errorf("ajustar columnas: %w", err)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("serializar libro: %w", err)
	}
	return buf.Bytes(), nil
}
