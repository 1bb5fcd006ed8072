package utils

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateID(t *testing.T) {
	id, err := GenerateID()
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^[A-Za-z0-9]{8}$`), id)

	other, err := GenerateID()
	require.NoError(t, err)
	assert.NotEqual(t, id, other)
}

func TestPrettyJson(t *testing.T) {
	out, err := PrettyJson(map[string]int{"rows": 2})
	require.NoError(t, err)
	assert.Equal(t, "{\n\t\"rows\": 2\n}", out)
}
