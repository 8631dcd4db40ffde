package db_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/mateovidal/streamhaus-backend/pkg/db"
)

func TestIsUniqueViolationPgError(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23505", ConstraintName: "idx_users_email"}
	wrapped := fmt.Errorf("create user: %w", pgErr)

	if !db.IsUniqueViolation(wrapped, "idx_users_email") {
		t.Fatal("expected match on named constraint")
	}
	if !db.IsUniqueViolation(wrapped, "") {
		t.Fatal("empty constraint name should match any unique violation")
	}
	if db.IsUniqueViolation(wrapped, "idx_vod_entries_folder") {
		t.Fatal("different constraint should not match")
	}
}

func TestIsUniqueViolationOtherPgCode(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23503", ConstraintName: "idx_users_email"}
	if db.IsUniqueViolation(pgErr, "idx_users_email") {
		t.Fatal("foreign key violation should not count")
	}
}

func TestIsUniqueViolationStringFallback(t *testing.T) {
	sqliteErr := errors.New("UNIQUE constraint failed: vod_entries.folder")
	if !db.IsUniqueViolation(sqliteErr, "") {
		t.Fatal("sqlite unique error should match")
	}

	named := errors.New(`duplicate key value violates unique constraint "idx_users_email"`)
	if !db.IsUniqueViolation(named, "idx_users_email") {
		t.Fatal("constraint name substring should match")
	}

	if db.IsUniqueViolation(errors.New("connection refused"), "") {
		t.Fatal("unrelated errors should not match")
	}
	if db.IsUniqueViolation(nil, "") {
		t.Fatal("nil error should not match")
	}
}
