package usecase

import (
	"time"

	"github.com/rs/zerolog/log"

	"github.com/dulceria-lilis/inventario-api/internal/application/dto"
	"github.com/dulceria-lilis/inventario-api/internal/domain/entity"
	"github.com/dulceria-lilis/inventario-api/internal/domain/repository"
)

// ActivityRecorder escribe el registro de actividad de forma explícita desde
// los casos de uso, con el usuario pasado como parámetro. Reemplaza los hooks
// globales post-save del sistema anterior: sin estado ambiente y fácil de
// probar. Best-effort: un fallo al registrar solo se loguea.
type ActivityRecorder struct {
	repo repository.ActivityLogRepository
}

// NewActivityRecorder construye el recorder.
func NewActivityRecorder(repo repository.ActivityLogRepository) *ActivityRecorder {
	return &ActivityRecorder{repo: repo}
}

// Record deja una entrada de auditoría. Si no hay usuario no se registra
// (acciones del propio sistema).
func (r *ActivityRecorder) Record(user, model string, objectID int64, description string) {
	if r == nil || r.repo == nil || user == "" {
		return
	}
	entry := &entity.ActivityLog{
		User:        user,
		Description: description,
		Model:       model,
		ObjectID:    &objectID,
		CreatedAt:   time.Now(),
	}
	if err := r.repo.Create(entry); err != nil {
		log.Warn().Err(err).Str("model", model).Int64("object_id", objectID).Msg("registro de actividad falló")
	}
}

// ListRecent devuelve las entradas más recientes del registro de actividad.
func (r *ActivityRecorder) ListRecent(page dto.PageRequest) ([]*entity.ActivityLog, error) {
	page.DefaultPage()
	return r.repo.ListRecent(page.Limit, page.Offset)
}
