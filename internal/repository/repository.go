// FilePath: internal/repository/repository.go
package repository

import (
	"context"
	"errors"

	"github.com/binsight/hub/internal/models"
)

var (
	// ErrNotFound indicates that a requested resource was not found
	ErrNotFound = errors.New("resource not found")
	// ErrInvalidInput indicates that the input data is invalid
	ErrInvalidInput = errors.New("invalid input")
)

// DeviceRepository is the read side of the device registry
type DeviceRepository interface {
	Get(ctx context.Context, id string) (*models.Device, error)
	Ping(ctx context.Context) error
	Close() error
}
