package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/Dosada05/turf-kings/storage"
)

const (
	backupPrefix      = "backups/"
	backupContentType = "application/json"
)

// BackupResult describes one exported snapshot.
type BackupResult struct {
	FileName string `json:"file_name"`
	Location string `json:"location,omitempty"`
	Cleared  bool   `json:"cleared"`
	Data     []byte `json:"-"`
}

type BackupService interface {
	Export(ctx context.Context, clear bool) (*BackupResult, error)
	List(ctx context.Context) ([]storage.StoredObject, error)
}

type backupService struct {
	tournament TournamentService
	uploader   storage.FileUploader
	now        func() time.Time
	logger     *slog.Logger
}

// NewBackupService builds the export service. uploader may be nil; exports
// are then returned to the caller only.
func NewBackupService(tournament TournamentService, uploader storage.FileUploader, logger *slog.Logger) BackupService {
	if logger == nil {
		logger = slog.Default()
	}
	return &backupService{
		tournament: tournament,
		uploader:   uploader,
		now:        time.Now,
		logger:     logger.With(slog.String("service", "backup")),
	}
}

func backupFileName(t time.Time) string {
	return fmt.Sprintf("turfkings-5aside-%s.json", t.Format("20060102-1504"))
}

// Export serializes the full snapshot, uploads it when storage is
// configured and, if clear is set, resets the tournament afterwards.
// Nothing is reset unless the snapshot was captured (and uploaded) first,
// and the clear fails with a ConsistencyError if the tournament moved on
// while the export ran.
func (s *backupService) Export(ctx context.Context, clear bool) (*BackupResult, error) {
	snapshot := s.tournament.State(ctx)
	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBackupFailed, err)
	}

	result := &BackupResult{FileName: backupFileName(s.now()), Data: data}
	if s.uploader != nil {
		uploaded, err := s.uploader.Upload(ctx, backupPrefix+result.FileName, backupContentType, bytes.NewReader(data))
		if err != nil {
			s.logger.Error("backup upload failed", slog.String("file", result.FileName), slog.Any("error", err))
			return nil, fmt.Errorf("%w: %w", ErrBackupFailed, err)
		}
		result.Location = uploaded.Location
	}
	s.logger.Info("backup created",
		slog.String("file", result.FileName),
		slog.Int("bytes", len(data)),
		slog.Bool("uploaded", result.Location != ""),
	)

	if clear {
		// Матч, записанный во время выгрузки, не попал в файл: не сбрасываем.
		if err := s.tournament.ResetIfUnchanged(ctx, snapshot.MatchNo, snapshot.Pairing); err != nil {
			return result, err
		}
		result.Cleared = true
	}
	return result, nil
}

func (s *backupService) List(ctx context.Context) ([]storage.StoredObject, error) {
	if s.uploader == nil {
		return nil, ErrBackupStorageDisabled
	}
	objects, err := s.uploader.List(ctx, backupPrefix)
	if err != nil {
		return nil, fmt.Errorf("failed to list backups: %w", err)
	}
	return objects, nil
}
