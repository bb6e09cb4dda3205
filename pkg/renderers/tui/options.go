package tui

import "io"

// Theme holds the prefixes printed in front of session messages.
type Theme struct {
	NoticePrefix string
	Banner       string
}

// DefaultTheme mirrors the plain output of the interactive finder.
func DefaultTheme() Theme {
	return Theme{
		NoticePrefix: "! ",
		Banner:       "=== Location Finder ===",
	}
}

// Option configures a Session.
type Option func(*Session)

// WithPromptDriver overrides the prompt driver used by the session.
func WithPromptDriver(driver PromptDriver) Option {
	return func(s *Session) {
		if driver != nil {
			s.driver = driver
		}
	}
}

// WithOutput sets where rendered results are written.
func WithOutput(out io.Writer) Option {
	return func(s *Session) {
		if out != nil {
			s.out = out
		}
	}
}

// WithTheme overrides the message prefixes.
func WithTheme(theme Theme) Option {
	return func(s *Session) {
		s.theme = theme
	}
}

// WithRepeat makes Run offer another search after each one.
func WithRepeat(enabled bool) Option {
	return func(s *Session) {
		s.repeat = enabled
	}
}
