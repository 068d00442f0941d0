package repository

import "github.com/dulceria-lilis/inventario-api/internal/domain/entity"

// ActivityLogRepository define el puerto de persistencia para el registro de
// actividad. Solo inserta y lista; las entradas no se editan.
type ActivityLogRepository interface {
	Create(entry *entity.ActivityLog) error
	ListRecent(limit, offset int) ([]*entity.ActivityLog, error)
}
