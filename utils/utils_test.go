package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTruncate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		max  int
		want string
	}{
		{in: "short", max: 10, want: "short"},
		{in: "  padded  ", max: 10, want: "padded"},
		{in: "Purifies blood, treats skin conditions", max: 16, want: "Purifies blood…"},
		{in: "Supercalifragilistic", max: 5, want: "Super…"},
		{in: "anything", max: 0, want: "anything"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, Truncate(tc.in, tc.max), "in %q", tc.in)
	}
}

func TestFirstNonEmpty(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "b", FirstNonEmpty("", "  ", "b", "c"))
	assert.Equal(t, "", FirstNonEmpty())
}

func TestParseImageName(t *testing.T) {
	t.Parallel()

	kind, id, err := ParseImageName("Plants-3.PNG")
	require.NoError(t, err)
	assert.Equal(t, "plants", kind)
	assert.Equal(t, "3", id)

	kind, id, err = ParseImageName("doctors-d-1.jpg")
	require.NoError(t, err)
	assert.Equal(t, "doctors", kind)
	assert.Equal(t, "d-1", id)

	for _, bad := range []string{"plants-3.gif", "herbs-1.png", "plants.png", "RO_RO-BE-IT0001-C.PNG"} {
		_, _, err := ParseImageName(bad)
		assert.Error(t, err, bad)
	}
}
