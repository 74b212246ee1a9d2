// FilePath: internal/repository/postgres/postgres.device.go
package postgres

import (
	"context"
	"database/sql"
	stderrors "errors"
	"strings"

	"github.com/binsight/hub/internal/database"
	"github.com/binsight/hub/internal/errors"
	"github.com/binsight/hub/internal/models"
	"github.com/binsight/hub/internal/repository"
)

type DeviceRepo struct {
	PostgresBaseRepo
}

func NewDeviceRepository(db database.DB) *DeviceRepo {
	return &DeviceRepo{PostgresBaseRepo: PostgresBaseRepo{db: db}}
}

func (r *DeviceRepo) Get(ctx context.Context, id string) (*models.Device, error) {
	if strings.TrimSpace(id) == "" {
		return nil, errors.NewValidationError("device id is required", repository.ErrInvalidInput)
	}

	device := &models.Device{}
	query := `
		SELECT id, name, type, location, status, created_at, updated_at
		FROM devices
		WHERE id = $1`

	err := r.db.GetDB().GetContext(ctx, device, query, id)
	if err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return nil, errors.NewNotFoundError("device not found", repository.ErrNotFound)
		}
		return nil, errors.NewDatabaseError("failed to get device", err)
	}
	return device, nil
}
