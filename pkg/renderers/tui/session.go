package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/goliatone/go-pairfinder/pkg/controller"
)

const (
	regionPrompt       = "Enter the region"
	regionHelp         = "A neighbourhood, town or district, e.g. Downtown Seattle"
	locationTypePrompt = "Enter location type (or press Enter to finish)"
	searchingMessage   = "Searching for closest locations..."
	resultsHeading     = "=== Results ==="
	againPrompt        = "Run another search?"
)

// Session is a terminal surface for the controller. Each location-type prompt
// is preceded by an add-field action, so the terminal grows its field list the
// same way the web page does.
type Session struct {
	driver PromptDriver
	out    io.Writer
	theme  Theme
	repeat bool

	ctx          context.Context
	region       string
	types        []string
	placeholders []string
	loading      bool
	trigger      bool
	notices      []string
	infoErr      error
}

var _ controller.Surface = (*Session)(nil)

// NewSession builds a session. Without WithPromptDriver it prompts through
// survey on the real terminal.
func NewSession(opts ...Option) *Session {
	s := &Session{
		out:     os.Stdout,
		theme:   DefaultTheme(),
		trigger: true,
		ctx:     context.Background(),
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(s)
	}
	if s.driver == nil {
		s.driver = NewSurveyDriver(s.out)
	}
	return s
}

// Prefill sets the form values directly, for non-interactive runs.
func (s *Session) Prefill(region string, types []string) {
	s.region = region
	s.types = append([]string(nil), types...)
	s.placeholders = make([]string, len(types))
	s.infoErr = nil
}

// Run prompts for a region and location types, then submits through ctrl.
// Configuration and validation failures are reported and end the round;
// they are not returned as errors. A failure to write a status line or
// notice is returned once the round completes.
func (s *Session) Run(ctx context.Context, ctrl *controller.Controller) error {
	if ctrl == nil {
		return errors.New("tui: controller is required")
	}
	s.ctx = ctx
	defer func() { s.ctx = context.Background() }()

	if s.theme.Banner != "" {
		if err := s.driver.Info(ctx, s.theme.Banner); err != nil {
			return err
		}
	}

	for {
		s.reset()
		if err := s.collect(ctx, ctrl); err != nil {
			return err
		}
		if err := ctrl.OnSubmit(ctx); err != nil {
			if _, notified := controller.Notification(err); !notified {
				return err
			}
		}
		if s.infoErr != nil {
			return s.infoErr
		}
		if !s.repeat {
			return nil
		}
		again, err := s.driver.Confirm(ctx, ConfirmConfig{Message: againPrompt})
		if err != nil {
			return err
		}
		if !again {
			return nil
		}
	}
}

func (s *Session) collect(ctx context.Context, ctrl *controller.Controller) error {
	region, err := s.driver.Input(ctx, InputConfig{Message: regionPrompt, Help: regionHelp})
	if err != nil {
		return err
	}
	s.region = region

	for {
		ctrl.OnAddField()
		idx := len(s.types) - 1
		value, err := s.driver.Input(ctx, InputConfig{
			Message: locationTypePrompt,
			Help:    s.placeholders[idx],
		})
		if err != nil {
			return err
		}
		if strings.TrimSpace(value) == "" {
			return nil
		}
		s.types[idx] = value
	}
}

func (s *Session) reset() {
	s.region = ""
	s.types = nil
	s.placeholders = nil
	s.notices = nil
	s.infoErr = nil
}

// info writes msg through the driver, keeping the first failure for Err.
func (s *Session) info(msg string) {
	if err := s.driver.Info(s.ctx, msg); err != nil && s.infoErr == nil {
		s.infoErr = err
	}
}

// Err returns the first output failure of the current round.
func (s *Session) Err() error { return s.infoErr }

func (s *Session) Region() string { return s.region }

func (s *Session) LocationTypes() []string {
	return append([]string(nil), s.types...)
}

func (s *Session) AppendLocationType(placeholder string) {
	s.types = append(s.types, "")
	s.placeholders = append(s.placeholders, placeholder)
}

func (s *Session) ClearResults() {}

func (s *Session) SetLoading(visible bool) {
	s.loading = visible
	if visible {
		s.info(searchingMessage)
	}
}

func (s *Session) SetTriggerEnabled(enabled bool) {
	s.trigger = enabled
}

func (s *Session) ShowResults(_ string, content []byte) {
	fmt.Fprintln(s.out, resultsHeading)
	fmt.Fprint(s.out, string(content))
	if len(content) > 0 && content[len(content)-1] != '\n' {
		fmt.Fprintln(s.out)
	}
}

func (s *Session) Notify(message string) {
	s.notices = append(s.notices, message)
	s.info(s.theme.NoticePrefix + message)
}

// Notices returns the notifications shown during the current round.
func (s *Session) Notices() []string {
	return append([]string(nil), s.notices...)
}

// Busy reports whether a search is in flight.
func (s *Session) Busy() bool {
	return s.loading || !s.trigger
}
