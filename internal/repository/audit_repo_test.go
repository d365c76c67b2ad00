package repository

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"testing"
	"time"

	"frigdash/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
)

func testCtx(t *testing.T) context.Context {
	t.Helper()
	c, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	t.Cleanup(cancel)
	return c
}

func TestAuditAppend_Success_WithDefaults(t *testing.T) {
	t.Parallel()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	defer db.Close()

	repo := NewAuditSQLite(db)

	mock.ExpectExec(regexp.QuoteMeta(insertAuditSQL)).
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), "/api/friglogs/chunk", "10.0.0.1", false).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = repo.Append(testCtx(t), models.AuditEntry{
		Path:     "/api/friglogs/chunk",
		RemoteIP: "10.0.0.1",
		Granted:  false,
	})
	if err != nil {
		t.Fatalf("Append: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("mock expectations: %v", err)
	}
}

func TestAuditAppend_KeepsGivenIDAndTime(t *testing.T) {
	t.Parallel()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	defer db.Close()

	at := time.Date(2025, 5, 1, 12, 30, 0, 0, time.FixedZone("X", 2*3600))
	mock.ExpectExec("INSERT INTO access_audit").
		WithArgs("fixed-id", "2025-05-01 10:30:00", "/kissyreport", "::1", true).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = NewAuditSQLite(db).Append(testCtx(t), models.AuditEntry{
		ID:         "fixed-id",
		OccurredAt: at,
		Path:       "/kissyreport",
		RemoteIP:   "::1",
		Granted:    true,
	})
	if err != nil {
		t.Fatalf("Append: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("mock expectations: %v", err)
	}
}

func TestAuditAppend_DBError(t *testing.T) {
	t.Parallel()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("INSERT INTO access_audit").WillReturnError(errors.New("disk full"))

	err = NewAuditSQLite(db).Append(testCtx(t), models.AuditEntry{Path: "/x"})
	if err == nil || !strings.Contains(err.Error(), "disk full") {
		t.Fatalf("expected wrapped error, got %v", err)
	}
}

func TestAuditListRecent(t *testing.T) {
	t.Parallel()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	defer db.Close()

	now := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"id", "occurred_at", "path", "remote_ip", "granted"}).
		AddRow("2", now.Add(time.Minute), "/api/memories", "10.0.0.2", true).
		AddRow("1", now, "/kissyreport", "10.0.0.1", false)

	mock.ExpectQuery(regexp.QuoteMeta(selectRecentAuditSQL)).
		WithArgs(2).
		WillReturnRows(rows)

	got, err := NewAuditSQLite(db).ListRecent(testCtx(t), 2)
	if err != nil {
		t.Fatalf("ListRecent: %v", err)
	}
	if len(got) != 2 || got[0].ID != "2" || !got[0].Granted || got[1].Granted {
		t.Fatalf("unexpected entries: %+v", got)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("mock expectations: %v", err)
	}
}

func TestAuditListRecent_ScanError(t *testing.T) {
	t.Parallel()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id", "occurred_at", "path", "remote_ip", "granted"}).
		AddRow("x", 123, "/p", "ip", true)
	mock.ExpectQuery(regexp.QuoteMeta(selectRecentAuditSQL)).WillReturnRows(rows)

	if _, err := NewAuditSQLite(db).ListRecent(testCtx(t), 10); err == nil {
		t.Fatal("expected scan error, got nil")
	}
}
