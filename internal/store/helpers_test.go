package store

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-derma-records/internal/config"
	"github.com/MKhiriev/go-derma-records/internal/logger"
	"github.com/MKhiriev/go-derma-records/models"
)

var testEpoch = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

// fakeClock returns a strictly increasing time: every call advances it by
// step.
type fakeClock struct {
	mu   sync.Mutex
	now  time.Time
	step time.Duration
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: testEpoch, step: time.Millisecond}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := c.now
	c.now = c.now.Add(c.step)
	return t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// seqIDs yields id-1, id-2, ...
type seqIDs struct {
	mu sync.Mutex
	n  int
}

func (g *seqIDs) Generate() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.n++
	return fmt.Sprintf("id-%d", g.n)
}

func testContext() context.Context {
	l := zerolog.Nop()
	return l.WithContext(context.Background())
}

// newMockDB returns a sqlite-dialect DB over sqlmock with a fake clock and
// sequential ids.
func newMockDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	db := newDB(conn, config.DriverSQLite, NewSQLiteErrorClassifier(), logger.Nop())
	db.clock = newFakeClock()
	db.ids = &seqIDs{}
	return db, mock
}

// newSQLiteStorages opens an initialized store in a temp-dir SQLite file.
func newSQLiteStorages(t *testing.T) (*Storages, *fakeClock) {
	t.Helper()
	ctx := testContext()

	db, err := NewConnectSQLite(ctx, config.DB{
		Driver: config.DriverSQLite,
		DSN:    filepath.Join(t.TempDir(), "records.db"),
	}, logger.Nop())
	require.NoError(t, err)

	clock := newFakeClock()
	db.clock = clock

	s := NewStoragesFromDB(db)
	require.NoError(t, s.Initialize(ctx))
	t.Cleanup(func() { s.Close() })

	return s, clock
}

func ptr[T any](v T) *T {
	return &v
}

func newAnalysisInput(symptoms string) models.NewAnalysis {
	return models.NewAnalysis{
		ImageData:       ptr("data:image/jpeg;base64,/9j/4AAQ"),
		Symptoms:        ptr(symptoms),
		RiskLevel:       ptr(models.RiskMedium),
		SkinConditions:  []string{},
		Recommendations: []string{},
		AIResponse:      ptr(""),
	}
}

func completedPayload(risk models.RiskLevel) *models.StatusPayload {
	return &models.StatusPayload{
		AIResponse:      ptr("Lesion shows features consistent with eczema."),
		SkinConditions:  []string{"eczema"},
		Recommendations: []string{"Use emollients", "See a dermatologist if it spreads"},
		RiskLevel:       ptr(risk),
	}
}
