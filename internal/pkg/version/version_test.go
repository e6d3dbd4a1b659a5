package version

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGet(t *testing.T) {
	i := Get()
	assert.Equal(t, Version, i.Version)
	assert.NotEmpty(t, i.GoVersion)
	assert.Contains(t, i.Platform, "/")
}

func TestShortCommit(t *testing.T) {
	prev := GitCommit
	t.Cleanup(func() { GitCommit = prev })

	GitCommit = "0123456789abcdef"
	assert.Equal(t, "0123456", ShortCommit())
	assert.True(t, strings.Contains(GetFullVersion(), "commit: 0123456"))

	GitCommit = "unknown"
	assert.Equal(t, "unknown", ShortCommit())
}
