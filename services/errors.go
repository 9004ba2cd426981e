package services

import (
	"errors"

	"github.com/Dosada05/turf-kings/models"
)

// Общие ошибки, используемые в разных сервисах и маппинге HTTP.
var (
	// Ошибки ядра: невалидный ввод и рассогласование с состоянием леджера.
	ErrValidation  = models.ErrValidation
	ErrConsistency = models.ErrConsistency

	// Ошибки матч-сессии
	ErrNoActiveSession      = errors.New("no match in progress")
	ErrSessionAlreadyActive = errors.New("a match is already in progress")

	// Ошибки доступа
	ErrInvalidAccessCode  = errors.New("invalid access code")
	ErrForbiddenOperation = errors.New("operation not allowed for the current role")

	// Ошибки инфраструктуры
	ErrSnapshotSaveFailed    = errors.New("failed to persist tournament snapshot")
	ErrBackupFailed          = errors.New("failed to create backup")
	ErrBackupStorageDisabled = errors.New("backup storage is not configured")
)
