package input

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrompter_Text(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader("\n   \nHub, 4 ports\nabcdefghijk\n  Mouse  \n"), &out, 10)

	got, err := p.Text("Name: ")

	require.NoError(t, err)
	assert.Equal(t, "Mouse", got)
	assert.Equal(t, 5, strings.Count(out.String(), "Name: "))
	assert.Equal(t, 4, strings.Count(out.String(), "Error: invalid input"))
}

func TestPrompter_NonNegativeInt(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader("ten\n-1\n2.5\n1000000001\n7\n"), &out, 0)

	got, err := p.NonNegativeInt("Quantity: ")

	require.NoError(t, err)
	assert.Equal(t, 7, got)
	assert.Equal(t, 4, strings.Count(out.String(), "Error: invalid input"))
}

func TestPrompter_NonNegativeFloat(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected float64
		retries  int
	}{
		{name: "valid first", input: "9.99\n", expected: 9.99},
		{name: "zero", input: "0\n", expected: 0},
		{name: "rejects negative and text", input: "-0.5\nabc\n29.5\n", expected: 29.5, retries: 2},
		{name: "rejects NaN and Inf", input: "NaN\nInf\n1\n", expected: 1, retries: 2},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var out bytes.Buffer
			p := NewPrompter(strings.NewReader(tc.input), &out, 0)

			got, err := p.NonNegativeFloat("Price: ")

			require.NoError(t, err)
			assert.Equal(t, tc.expected, got)
			assert.Equal(t, tc.retries, strings.Count(out.String(), "Error: invalid input"))
		})
	}
}

func TestPrompter_IntInRange(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader("5\n-1\n2\n"), &out, 0)

	got, err := p.IntInRange("Index: ", 0, 3)

	require.NoError(t, err)
	assert.Equal(t, 2, got)
}

func TestPrompter_EOF(t *testing.T) {
	p := NewPrompter(strings.NewReader("abc\n"), io.Discard, 0)

	_, err := p.NonNegativeInt("Quantity: ")

	assert.ErrorIs(t, err, io.EOF)
}
