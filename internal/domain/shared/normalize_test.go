package shared_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kevinkickback/fizbanes-forge-sub014/internal/domain/shared"
)

func TestKey(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "already canonical", input: "stealth", expected: "stealth"},
		{name: "mixed case", input: "Stealth", expected: "stealth"},
		{name: "surrounding whitespace", input: "  stealth  ", expected: "stealth"},
		{name: "both", input: " STEALTH\t", expected: "stealth"},
		{name: "empty", input: "", expected: ""},
		{name: "whitespace only", input: "   ", expected: ""},
		{name: "interior whitespace preserved", input: "Animal Handling", expected: "animal handling"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, shared.Key(tt.input))
			// Referentially stable
			assert.Equal(t, shared.Key(tt.input), shared.Key(tt.input))
		})
	}
}

func TestKeysEqual(t *testing.T) {
	assert.True(t, shared.KeysEqual("Stealth", " stealth "))
	assert.True(t, shared.KeysEqual("", "  "))
	assert.False(t, shared.KeysEqual("Stealth", "Perception"))
}
