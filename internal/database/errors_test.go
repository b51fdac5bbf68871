package database

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

func TestIsNoRows(t *testing.T) {
	if !IsNoRows(pgx.ErrNoRows) || !IsNoRows(sql.ErrNoRows) {
		t.Fatalf("expected driver no-rows errors to be detected")
	}
	if !IsNoRows(fmt.Errorf("get job: %w", pgx.ErrNoRows)) {
		t.Fatalf("expected wrapped no-rows to be detected")
	}
	if IsNoRows(errors.New("boom")) {
		t.Fatalf("unexpected match")
	}
}

func TestIsUniqueViolation(t *testing.T) {
	err := fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"})
	if !IsUniqueViolation(err) {
		t.Fatalf("expected unique violation")
	}
	if IsUniqueViolation(&pgconn.PgError{Code: "23503"}) {
		t.Fatalf("foreign key violation is not a unique violation")
	}
	if IsUniqueViolation(nil) {
		t.Fatalf("nil is not a unique violation")
	}
}
