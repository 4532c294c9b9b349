package svcmgr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSpecRejectsEmptyPath(t *testing.T) {
	_, err := NewSpec("").Build()
	require.Error(t, err)
	assert.Equal(t, KindBadServiceSpec, err.(*Error).Kind)
}

func TestSpecBuilderRejectsEmptySetterValues(t *testing.T) {
	tests := []struct {
		name string
		fn   func(s *Spec) *Spec
	}{
		{"empty arg", func(s *Spec) *Spec { return s.Arg("") }},
		{"empty display name", func(s *Spec) *Spec { return s.DisplayName("") }},
		{"empty description", func(s *Spec) *Spec { return s.Description("") }},
		{"empty user", func(s *Spec) *Spec { return s.User("") }},
		{"empty password", func(s *Spec) *Spec { return s.Password("") }},
		{"empty group", func(s *Spec) *Spec { return s.Group("") }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := tc.fn(NewSpec("/usr/bin/true"))
			_, err := s.Build()
			require.Error(t, err)
			assert.Equal(t, KindBadServiceSpec, err.(*Error).Kind)
		})
	}
}

func TestSpecBuilderKeepsFirstError(t *testing.T) {
	s := NewSpec("/usr/bin/true").DisplayName("").Description("")
	_, err := s.Build()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "display name")
}

func TestSpecCommandLineJoinsPathAndArgs(t *testing.T) {
	s, err := NewSpec("/usr/bin/helloworld").Arg("service").Arg("127.0.0.1:53165").Build()
	require.NoError(t, err)
	assert.Equal(t, "/usr/bin/helloworld service 127.0.0.1:53165", s.commandLine())
}

func TestSpecHasCredentials(t *testing.T) {
	plain, err := NewSpec("/usr/bin/true").Build()
	require.NoError(t, err)
	assert.False(t, plain.hasCredentials())

	withUser, err := NewSpec("/usr/bin/true").User("svc").Build()
	require.NoError(t, err)
	assert.True(t, withUser.hasCredentials())
}
