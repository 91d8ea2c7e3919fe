package sqlerr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/FarzanehSa/LightBnB/internal/errs"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

func TestMapCode(t *testing.T) {
	tests := map[string]Code{
		"23505": UniqueViolation,
		"23503": ForeignKeyViolation,
		"23502": NotNullViolation,
		"23514": CheckViolation,
		"08006": ConnectionFailure,
		"99999": Other,
		"":      Other,
	}
	for state, want := range tests {
		if got := MapCode(state); got != want {
			t.Errorf("MapCode(%q) = %s, want %s", state, got, want)
		}
	}
}

func TestMapSeverity(t *testing.T) {
	if got := MapSeverity("FATAL"); got != SeverityFatal {
		t.Errorf("got %s", got)
	}
	if got := MapSeverity("whatever"); got != SeverityError {
		t.Errorf("unknown severity should map to ERROR, got %s", got)
	}
}

func TestErrCode(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23505", Severity: "ERROR"}
	wrapped := fmt.Errorf("insert: %w", ConvertPgError(pgErr))

	if got := ErrCode(wrapped); got != UniqueViolation {
		t.Errorf("ErrCode = %s", got)
	}
	if got := ErrCode(errors.New("plain")); got != Other {
		t.Errorf("ErrCode(plain) = %s", got)
	}
	if !errors.Is(wrapped, pgErr) {
		t.Error("expected *Error to unwrap to the driver error")
	}
}

func TestSingularAndEntityName(t *testing.T) {
	tests := []struct {
		table, column, want string
	}{
		{"users", "", "User"},
		{"properties", "", "Property"},
		{"property_reviews", "", "Property Review"},
		{"reservations", "guest_id", "Guest"},
		{"", "", "record"},
	}
	for _, tt := range tests {
		if got := getEntityName(tt.table, tt.column); got != tt.want {
			t.Errorf("getEntityName(%q, %q) = %q, want %q", tt.table, tt.column, got, tt.want)
		}
	}

	if got := generateErrorCode("properties", CheckViolation); got != "PROPERTY_INVALID" {
		t.Errorf("generateErrorCode = %q", got)
	}
}

func TestExtractColumnForUniqueViolation(t *testing.T) {
	tests := map[string]string{
		"users_email_key":    "email",
		"unique_users_email": "email",
		"users_pkey":         "",
		"":                   "",
	}
	for constraint, want := range tests {
		if got := extractColumnForUniqueViolation(constraint); got != want {
			t.Errorf("extractColumnForUniqueViolation(%q) = %q, want %q", constraint, got, want)
		}
	}
}

func TestHandleError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		code    string
		message string
	}{
		{
			name:    "duplicate email",
			err:     &pgconn.PgError{Code: "23505", Severity: "ERROR", TableName: "users", ConstraintName: "users_email_key"},
			status:  http.StatusConflict,
			code:    "USER_ALREADY_EXISTS",
			message: "A User with this Email already exists",
		},
		{
			name:    "unknown owner",
			err:     &pgconn.PgError{Code: "23503", TableName: "properties", ColumnName: "owner_id"},
			status:  http.StatusBadRequest,
			code:    "PROPERTY_NOT_FOUND",
			message: "The referenced Owner does not exist",
		},
		{
			name:    "missing title",
			err:     &pgconn.PgError{Code: "23502", TableName: "properties", ColumnName: "title"},
			status:  http.StatusBadRequest,
			code:    "PROPERTY_REQUIRED",
			message: "The Title is required",
		},
		{
			name:    "user not found",
			err:     fmt.Errorf("lookup: %w", NotFound("users")),
			status:  http.StatusNotFound,
			code:    "NOT_FOUND",
			message: "User not found",
		},
		{
			name:    "bare no rows",
			err:     pgx.ErrNoRows,
			status:  http.StatusNotFound,
			code:    "NOT_FOUND",
			message: "Resource not found",
		},
		{
			name:   "unknown",
			err:    errors.New("connection reset"),
			status: http.StatusInternalServerError,
			code:   "INTERNAL_SERVER_ERROR",
		},
		{
			name:    "http error passes through",
			err:     errs.NewUnauthorizedError("no session", false),
			status:  http.StatusUnauthorized,
			code:    "UNAUTHORIZED",
			message: "no session",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var httpErr *errs.HTTPError
			if !errors.As(HandleError(tt.err), &httpErr) {
				t.Fatalf("expected *errs.HTTPError")
			}
			if httpErr.Status != tt.status {
				t.Errorf("status = %d, want %d", httpErr.Status, tt.status)
			}
			if httpErr.Code != tt.code {
				t.Errorf("code = %q, want %q", httpErr.Code, tt.code)
			}
			if tt.message != "" && httpErr.Message != tt.message {
				t.Errorf("message = %q, want %q", httpErr.Message, tt.message)
			}
		})
	}
}
