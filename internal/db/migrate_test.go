package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrationFiles(t *testing.T) {
	files, err := migrationFiles()
	require.NoError(t, err)

	require.NotEmpty(t, files)
	assert.Equal(t, "0001_volunteering.sql", files[0])
	assert.IsIncreasing(t, files)
}
