package handlers

import (
	"context"
	"net/url"
	"sync"

	"frigdash/internal/logfile"
	"frigdash/internal/models"
	"frigdash/internal/service"

	"github.com/gin-gonic/gin"
)

const testKey = "s3cret"

// ---- Service Mocks ----

type mockLogViewer struct {
	mu       sync.Mutex
	name     string
	nameErr  error
	chunk    models.LogChunk
	chunkErr error
	lastReq  logfile.ChunkRequest
	calls    int
}

func (m *mockLogViewer) LatestLogFile(ctx context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.name, m.nameErr
}

func (m *mockLogViewer) LogChunk(ctx context.Context, req logfile.ChunkRequest) (models.LogChunk, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	m.lastReq = req
	return m.chunk, m.chunkErr
}

func (m *mockLogViewer) setChunk(c models.LogChunk) {
	m.mu.Lock()
	m.chunk = c
	m.mu.Unlock()
}

type mockMonitoring struct {
	res models.StatusResult
}

func (m *mockMonitoring) ServiceStatus(ctx context.Context) models.StatusResult {
	return m.res
}

type mockAccess struct {
	key     string
	lastKey string
}

func (m *mockAccess) Allow(key string) bool {
	m.lastKey = key
	return m.key != "" && key == m.key
}

type mockMemory struct {
	files    []models.MemoryFile
	listErr  error
	content  map[string][]byte
	readErr  error
	lastName string
}

func (m *mockMemory) ListMemories(ctx context.Context) ([]models.MemoryFile, error) {
	return m.files, m.listErr
}

func (m *mockMemory) ReadMemory(ctx context.Context, name string) ([]byte, error) {
	m.lastName = name
	if m.readErr != nil {
		return nil, m.readErr
	}
	return m.content[name], nil
}

type mockAudit struct {
	mu        sync.Mutex
	recorded  []models.AuditEntry
	recordErr error
	recent    []models.AuditEntry
	recentErr error
	lastLimit int
}

func (m *mockAudit) Record(ctx context.Context, e models.AuditEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.recorded = append(m.recorded, e)
	return m.recordErr
}

func (m *mockAudit) Recent(ctx context.Context, limit int) ([]models.AuditEntry, error) {
	m.lastLimit = limit
	return m.recent, m.recentErr
}

func (m *mockAudit) entries() []models.AuditEntry {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]models.AuditEntry(nil), m.recorded...)
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(s, nil)
	return h.InitRoutes()
}

// newTestService fills every sub-service so routes never hit a nil interface.
func newTestService() (*service.Service, *mockLogViewer, *mockMonitoring, *mockMemory, *mockAudit) {
	logs := &mockLogViewer{chunk: logfile.EmptyChunk("")}
	mon := &mockMonitoring{}
	mem := &mockMemory{content: map[string][]byte{}}
	audit := &mockAudit{}
	s := &service.Service{
		LogViewer:  logs,
		Monitoring: mon,
		Access:     &mockAccess{key: testKey},
		Memory:     mem,
		Audit:      audit,
	}
	return s, logs, mon, mem, audit
}

// keyed appends the test key (and extra query pairs) to path.
func keyed(path string, kv ...string) string {
	q := url.Values{}
	q.Set("key", testKey)
	for i := 0; i+1 < len(kv); i += 2 {
		q.Set(kv[i], kv[i+1])
	}
	return path + "?" + q.Encode()
}
