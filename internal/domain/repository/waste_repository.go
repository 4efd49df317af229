package repository

import "github.com/jhoicas/Costeo-api/internal/domain/entity"

// WasteRepository define el puerto de persistencia para registros de merma.
type WasteRepository interface {
	Create(waste *entity.WasteLog) error
	// GetByID devuelve nil sin error si el registro no existe.
	GetByID(id string) (*entity.WasteLog, error)
	Update(waste *entity.WasteLog) error
	Delete(id string) error
}
