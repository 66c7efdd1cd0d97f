package utils

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLog(t *testing.T) {
	dir := t.TempDir() + "/"
	logger := NewLog(dir, "creator")
	logger.Printf("account creator is started")

	content, err := os.ReadFile(dir + "creator.log")
	require.NoError(t, err)
	assert.Contains(t, string(content), "[creator] ")
	assert.Contains(t, string(content), "account creator is started")
}
