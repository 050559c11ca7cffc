package service_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookit/experience-booking/internal/service"
)

func TestNewRefIDShape(t *testing.T) {
	ref, err := service.NewRefID()
	require.NoError(t, err)
	assert.Len(t, ref, 8)
	for _, r := range ref {
		assert.True(t, strings.ContainsRune("ABCDEFGHJKMNPQRSTUVWXYZ23456789", r), "unexpected character %q", r)
	}
}

func TestNewRefIDUniqueness(t *testing.T) {
	seen := make(map[string]struct{}, 20000)
	for i := 0; i < 20000; i++ {
		ref, err := service.NewRefID()
		require.NoError(t, err)
		_, dup := seen[ref]
		require.False(t, dup, "duplicate reference %s after %d draws", ref, i)
		seen[ref] = struct{}{}
	}
}
