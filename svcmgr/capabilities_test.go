package svcmgr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCapabilityHas(t *testing.T) {
	tests := []struct {
		name string
		have Capability
		want Capability
		ok   bool
	}{
		{"single bit set", SupportsDescription, SupportsDescription, true},
		{"single bit unset", SupportsDescription, SupportsDisplayName, false},
		{"combined set contains both", SupportsDescription | SupportsDisplayName, SupportsDisplayName, true},
		{"combined want requires all bits", SupportsDescription, SupportsDescription | SupportsDisplayName, false},
		{"zero capability has nothing", Capability(0), SupportsDescription, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.ok, tc.have.Has(tc.want))
		})
	}
}
