package mysql

import (
	"errors"
	"testing"

	"github.com/capopt/platform/internal/database/common"
	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
)

func TestToDSN(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"mysql://root:pw@localhost:3306/capopt", "root:pw@tcp(localhost:3306)/capopt"},
		{"mysql://root:pw@db:3306/capopt?sslmode=disable", "root:pw@tcp(db:3306)/capopt?tls=false"},
		{"root:pw@tcp(localhost:3306)/capopt", "root:pw@tcp(localhost:3306)/capopt"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ToDSN(tt.in), tt.in)
	}
}

func TestClassify(t *testing.T) {
	dup := &mysql.MySQLError{Number: 1062, Message: "Duplicate entry"}
	assert.ErrorIs(t, classify(dup), common.ErrConstraintViolation)

	other := &mysql.MySQLError{Number: 1064, Message: "syntax"}
	assert.False(t, errors.Is(classify(other), common.ErrConstraintViolation))
}
