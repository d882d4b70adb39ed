package iocache

import (
	"testing"

	"github.com/nhollman/breeze/schema"
	"github.com/stretchr/testify/assert"
)

// TestValidateTableName verifies the identifier allow-list.
func TestValidateTableName(t *testing.T) {
	tests := []struct {
		name      string
		tableName string
		expectErr bool
	}{
		{name: "simple", tableName: "breeze_result_cache"},
		{name: "leading underscore", tableName: "_cache"},
		{name: "digits allowed after first", tableName: "cache2"},
		{name: "empty", tableName: "", expectErr: true},
		{name: "leading digit", tableName: "1cache", expectErr: true},
		{name: "quote injection", tableName: `cache"; DROP TABLE users; --`, expectErr: true},
		{name: "spaces", tableName: "my cache", expectErr: true},
		{name: "dash", tableName: "my-cache", expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateTableName(tt.tableName)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

// TestQuoteTableName verifies backend-specific identifier quoting.
func TestQuoteTableName(t *testing.T) {
	assert.Equal(t, "`runs`", quoteTableName("runs", schema.MySQLBackend))
	assert.Equal(t, `"runs"`, quoteTableName("runs", schema.PostgreSQLBackend))
	assert.Equal(t, `"runs"`, quoteTableName("runs", schema.SQLiteBackend))
}

// TestPlaceholder verifies backend-specific parameter placeholders.
func TestPlaceholder(t *testing.T) {
	assert.Equal(t, "$1", placeholder(schema.PostgreSQLBackend))
	assert.Equal(t, "?", placeholder(schema.MySQLBackend))
	assert.Equal(t, "?", placeholder(schema.SQLiteBackend))
}
