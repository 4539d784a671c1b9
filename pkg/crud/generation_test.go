package crud

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerationHas(t *testing.T) {
	g := GenerateKey | GenerateOnUpdate
	assert.True(t, g.Has(GenerateKey))
	assert.True(t, g.Has(GenerateOnUpdate))
	assert.False(t, g.Has(GenerateOnInsert))
	assert.False(t, GenerateNone.Has(GenerateKey))
}

func TestGenerationValid(t *testing.T) {
	tests := []struct {
		name  string
		gen   Generation
		valid bool
	}{
		{"none", GenerateNone, true},
		{"key only", GenerateKey, true},
		{"on-insert only", GenerateOnInsert, true},
		{"on-update only", GenerateOnUpdate, true},
		{"key with on-update", GenerateKey | GenerateOnUpdate, true},
		{"on-insert with on-update", GenerateOnInsert | GenerateOnUpdate, true},
		{"key with on-insert", GenerateKey | GenerateOnInsert, false},
		{"all flags", GenerateKey | GenerateOnInsert | GenerateOnUpdate, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, tt.gen.Valid())
		})
	}
}

func TestGenerationString(t *testing.T) {
	assert.Equal(t, "none", GenerateNone.String())
	assert.Equal(t, "key", GenerateKey.String())
	assert.Equal(t, "on-insert|on-update", (GenerateOnInsert | GenerateOnUpdate).String())
}
