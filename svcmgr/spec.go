package svcmgr

import "strings"

// Spec is an install-time configuration value: the path to the
// executable, its arguments, display metadata, and optional run-as
// credentials. Once built it is read-only; it is consumed exactly once
// by Manager.Install.
type Spec struct {
	path             string
	args             []string
	displayName      string
	description      string
	autostart        bool
	restartOnFailure bool
	user             string
	password         string
	group            string

	err error
}

// NewSpec begins a fluent Spec builder. path must be non-empty; whether
// it refers to an existing file is checked by the backend at install
// time, not here.
func NewSpec(path string) *Spec {
	s := &Spec{}
	if path == "" {
		s.err = newErr(KindBadServiceSpec, "service path must not be empty")
		return s
	}
	s.path = path
	return s
}

func (s *Spec) fail(what string) *Spec {
	if s.err == nil {
		s.err = newErr(KindBadServiceSpec, "%s must not be empty", what)
	}
	return s
}

// Arg appends a single argument to be passed to the executable after
// path. Order is preserved.
func (s *Spec) Arg(a string) *Spec {
	if a == "" {
		return s.fail("argument")
	}
	s.args = append(s.args, a)
	return s
}

func (s *Spec) DisplayName(v string) *Spec {
	if v == "" {
		return s.fail("display name")
	}
	s.displayName = v
	return s
}

func (s *Spec) Description(v string) *Spec {
	if v == "" {
		return s.fail("description")
	}
	s.description = v
	return s
}

func (s *Spec) Autostart(v bool) *Spec {
	s.autostart = v
	return s
}

func (s *Spec) RestartOnFailure(v bool) *Spec {
	s.restartOnFailure = v
	return s
}

func (s *Spec) User(v string) *Spec {
	if v == "" {
		return s.fail("user")
	}
	s.user = v
	return s
}

func (s *Spec) Password(v string) *Spec {
	if v == "" {
		return s.fail("password")
	}
	s.password = v
	return s
}

func (s *Spec) Group(v string) *Spec {
	if v == "" {
		return s.fail("group")
	}
	s.group = v
	return s
}

// Build finalizes the spec, returning the first validation error
// encountered by any setter, if any.
func (s *Spec) Build() (*Spec, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s, nil
}

func (s *Spec) hasCredentials() bool {
	return s.user != "" || s.password != "" || s.group != ""
}

// commandLine joins path and args with single spaces, the form the
// systemd backend writes as ExecStart and the Windows backend passes as
// binPath. The launchd backend does not use it: it writes path and args
// as separate ProgramArguments entries.
func (s *Spec) commandLine() string {
	parts := append([]string{s.path}, s.args...)
	return strings.Join(parts, " ")
}
