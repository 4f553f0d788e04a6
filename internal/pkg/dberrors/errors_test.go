package dberrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestClassification(t *testing.T) {
	dup := fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505", ConstraintName: "exams_slug_key"})
	check := &pgconn.PgError{Code: "23514", ConstraintName: "exams_status_check"}

	assert.True(t, IsUniqueViolation(dup))
	assert.False(t, IsCheckViolation(dup))
	assert.Equal(t, "exams_slug_key", ConstraintName(dup))

	assert.True(t, IsCheckViolation(check))
	assert.False(t, IsUniqueViolation(check))

	plain := errors.New("boom")
	assert.False(t, IsUniqueViolation(plain))
	assert.Empty(t, ConstraintName(plain))
}
