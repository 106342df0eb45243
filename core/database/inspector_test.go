package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetTableColumns(t *testing.T) {
	db, err := Connect(Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)

	err = db.Exec("CREATE TABLE mnp_reference (group_name TEXT, number TEXT, network_id TEXT, owner_id TEXT)").Error
	require.NoError(t, err)

	columns, err := GetTableColumns(db, "mnp_reference")
	require.NoError(t, err)
	assert.Len(t, columns, 4)

	colMap := make(map[string]string)
	for _, col := range columns {
		colMap[col.Field] = col.Type
	}
	assert.Equal(t, "text", colMap["group_name"])
	assert.Equal(t, "text", colMap["owner_id"])

	// PRAGMA table_info returns an empty result for a non-existent table
	cols, err := GetTableColumns(db, "non_existent")
	assert.NoError(t, err)
	assert.Empty(t, cols)
}

func TestRequireColumns(t *testing.T) {
	db, err := Connect(Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, db.Exec("CREATE TABLE partial (group_name TEXT, number TEXT)").Error)

	assert.NoError(t, RequireColumns(db, "partial", "group_name", "NUMBER"))

	err = RequireColumns(db, "partial", "group_name", "network_id", "owner_id")
	assert.EqualError(t, err, "table partial is missing columns: network_id, owner_id")

	err = RequireColumns(db, "absent", "number")
	assert.ErrorContains(t, err, "missing columns: number")
}
