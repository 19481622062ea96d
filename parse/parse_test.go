package parse_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphplay/parse"
)

func TestText(t *testing.T) {
	in := parse.Text("A B 3\n\nB  C\nD\nC A 1 extra words\r\n")
	assert.Equal(t, [][]string{{"A", "B", "3"}, {"B", "C"}, {"C", "A", "1"}}, in.Edges)
	assert.Equal(t, []string{"D"}, in.Isolated)
	assert.False(t, in.Empty())
}

func TestText_InvalidRowClearsEverything(t *testing.T) {
	in := parse.Text("A B\n   \nC D")
	assert.True(t, in.Empty())
	assert.Nil(t, in.Edges)
	assert.Nil(t, in.Isolated)
}

func TestRead_ReportsLine(t *testing.T) {
	_, err := parse.Read(strings.NewReader("A B\nC\n \n"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, parse.ErrInvalidRow))
	assert.ErrorContains(t, err, "line 3")
}

func TestWords(t *testing.T) {
	tests := []struct {
		row  string
		want []string
	}{
		{"a", []string{"a"}},
		{"  a   b ", []string{"a", "b"}},
		{"a b c d e", []string{"a", "b", "c"}},
		{"a\tb", []string{"a\tb"}},
		{" ", []string{}},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, parse.Words(tc.row), "%q", tc.row)
	}
}

func TestText_Empty(t *testing.T) {
	assert.True(t, parse.Text("").Empty())
	assert.True(t, parse.Text("\n\n").Empty())
}
