package main

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedMigrationsArePaired(t *testing.T) {
	ups, err := fs.Glob(migrations, "migrations/*.up.sql")
	require.NoError(t, err)
	downs, err := fs.Glob(migrations, "migrations/*.down.sql")
	require.NoError(t, err)

	assert.NotEmpty(t, ups)
	assert.Len(t, downs, len(ups))
}

func TestResolveDSN(t *testing.T) {
	t.Setenv(envDSN, "")
	assert.Equal(t, defaultDSN, resolveDSN(""))

	t.Setenv(envDSN, "postgres://env")
	assert.Equal(t, "postgres://env", resolveDSN(""))
	assert.Equal(t, "postgres://flag", resolveDSN("postgres://flag"))
}

func TestCommands(t *testing.T) {
	root := newRootCmd()

	var names []string
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	assert.ElementsMatch(t, []string{"up", "down", "steps", "version", "force"}, names)
}
