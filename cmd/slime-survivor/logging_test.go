package main

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupLogging_DiscardWithoutPath(t *testing.T) {
	defer log.SetOutput(os.Stderr)

	f, err := setupLogging("")
	require.NoError(t, err)
	assert.Nil(t, f)
	assert.Equal(t, io.Discard, log.Writer())
}

func TestSetupLogging_WritesToFile(t *testing.T) {
	defer log.SetOutput(os.Stderr)

	path := filepath.Join(t.TempDir(), "logs", "run.log")
	f, err := setupLogging(path)
	require.NoError(t, err)
	require.NotNil(t, f)
	defer f.Close()

	log.Println("test log message")
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.NotZero(t, info.Size())
}
