package services

import (
	"context"
	"errors"
	"io"
	"sync"

	"github.com/Dosada05/turf-kings/models"
	"github.com/Dosada05/turf-kings/repositories"
	"github.com/Dosada05/turf-kings/storage"
)

type mockSnapshotRepo struct {
	mu      sync.Mutex
	stored  *models.Snapshot
	saves   int
	calls   int
	loadErr error
	saveErr error

	// Если задан, первый Save сообщает в firstSave и ждёт release.
	firstSave chan struct{}
	release   chan struct{}
}

func (m *mockSnapshotRepo) EnsureSchema(ctx context.Context) error { return nil }

func (m *mockSnapshotRepo) Load(ctx context.Context) (*models.Snapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	if m.stored == nil {
		return nil, repositories.ErrSnapshotNotFound
	}
	s := *m.stored
	return &s, nil
}

func (m *mockSnapshotRepo) Save(ctx context.Context, snapshot models.Snapshot) error {
	m.mu.Lock()
	m.calls++
	first := m.calls == 1
	m.mu.Unlock()
	if first && m.release != nil {
		close(m.firstSave)
		<-m.release
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saves++
	m.stored = &snapshot
	return nil
}

type broadcastCall struct {
	messageType string
	payload     interface{}
}

type mockBroadcaster struct {
	mu    sync.Mutex
	calls []broadcastCall
}

func (m *mockBroadcaster) Broadcast(messageType string, payload interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, broadcastCall{messageType: messageType, payload: payload})
}

func (m *mockBroadcaster) types() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.calls))
	for i, c := range m.calls {
		out[i] = c.messageType
	}
	return out
}

type mockUploader struct {
	uploaded  map[string][]byte
	uploadErr error
	objects   []storage.StoredObject

	// Если задан, Upload сообщает в started и ждёт release.
	started chan struct{}
	release chan struct{}
}

func (m *mockUploader) Upload(ctx context.Context, key string, contentType string, reader io.Reader) (*storage.UploadResult, error) {
	if m.release != nil {
		close(m.started)
		<-m.release
	}
	if m.uploadErr != nil {
		return nil, m.uploadErr
	}
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, err
	}
	if m.uploaded == nil {
		m.uploaded = make(map[string][]byte)
	}
	m.uploaded[key] = data
	return &storage.UploadResult{Key: key, Location: m.GetPublicURL(key)}, nil
}

func (m *mockUploader) List(ctx context.Context, prefix string) ([]storage.StoredObject, error) {
	return m.objects, nil
}

func (m *mockUploader) GetPublicURL(key string) string {
	return "https://files.example.com/" + key
}

var errBoom = errors.New("boom")
