//go:build cgo

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func ptr(s string) *string {
	return &s
}

func TestCPFValidateStr(t *testing.T) {
	tests := []struct {
		name           string
		doc            *string
		masked         bool
		ignoreRepeated bool
		want           bool
	}{
		{"bare", ptr("63929247011"), false, false, true},
		{"masked", ptr("639.292.470-11"), true, false, true},
		{"masked without flag", ptr("639.292.470-11"), false, false, false},
		{"wrong check digit", ptr("63929247010"), false, false, false},
		{"repeated", ptr("11111111111"), false, false, false},
		{"repeated ignored", ptr("11111111111"), false, true, true},
		{"empty", ptr(""), false, false, false},
		{"null", nil, false, false, false},
		{"null masked", nil, true, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			valid, intact := callCPF(tt.doc, tt.masked, tt.ignoreRepeated)
			assert.Equal(t, tt.want, valid)
			assert.True(t, intact, "document buffer was modified")
		})
	}
}

func TestCNPJValidateStr(t *testing.T) {
	tests := []struct {
		name   string
		doc    *string
		masked bool
		want   bool
	}{
		{"bare", ptr("05200851000100"), false, true},
		{"masked", ptr("05.200.851/0001-00"), true, true},
		{"bare with masked flag", ptr("05200851000100"), true, false},
		{"wrong check digit", ptr("05200851000101"), false, false},
		{"repeated", ptr("11111111111111"), false, false},
		{"zeros", ptr("00000000000000"), false, false},
		{"cpf", ptr("63929247011"), false, false},
		{"null", nil, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			valid, intact := callCNPJ(tt.doc, tt.masked)
			assert.Equal(t, tt.want, valid)
			assert.True(t, intact, "document buffer was modified")
		})
	}
}

func TestValidateStr_Idempotent(t *testing.T) {
	for i := 0; i < 10; i++ {
		valid, _ := callCPF(ptr("63929247011"), false, false)
		assert.True(t, valid)
		valid, _ = callCNPJ(ptr("05.200.851/0001-00"), true)
		assert.True(t, valid)
	}
}
