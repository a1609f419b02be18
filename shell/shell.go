// Package shell is the interactive console of the station finder. It reads
// menu choices and prompts line by line, resolves list positions to slot
// labels and booking ids, and calls the domain services.
package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/kilianp07/evcs/core/logger"
	"github.com/kilianp07/evcs/core/model"
	"github.com/kilianp07/evcs/core/monitoring"
	"github.com/kilianp07/evcs/core/session"
)

// Catalog is the station lookup used by the shell.
type Catalog interface {
	FindByFilters(location string, fast model.FastChargingFilter) []*model.Station
	FindByID(id string) (*model.Station, error)
}

// Users registers and authenticates accounts.
type Users interface {
	Register(username, password string) (*model.User, error)
	Login(username, password string) (*model.User, error)
}

// Bookings is the booking workflow.
type Bookings interface {
	Book(user *model.User, stationID, slot string) (*model.Booking, error)
	Cancel(user *model.User, bookingID string) (*model.Booking, error)
	Modify(user *model.User, bookingID string) (*model.Station, error)
	Review(stationID, text string, rating float64) error
	JoinWaitlist(stationID string) error
	ReportIssue(user *model.User, stationID, description string)
}

// errExit ends the loop from the login menu.
var errExit = errors.New("exit")

// Shell runs one interactive session over a reader and a writer.
type Shell struct {
	catalog  Catalog
	users    Users
	bookings Bookings
	in       *bufio.Reader
	out      io.Writer
	log      logger.Logger
	monitor  monitoring.Monitor
	session  session.Session
}

// Option customises a Shell.
type Option func(*Shell)

// WithMonitor reports unexpected operation errors to m.
func WithMonitor(m monitoring.Monitor) Option {
	return func(s *Shell) {
		if m != nil {
			s.monitor = m
		}
	}
}

// New creates a shell reading from in and writing to out. A nil logger
// discards output.
func New(c Catalog, u Users, b Bookings, in io.Reader, out io.Writer, log logger.Logger, opts ...Option) *Shell {
	if log == nil {
		log = logger.NopLogger{}
	}
	s := &Shell{
		catalog:  c,
		users:    u,
		bookings: b,
		in:       bufio.NewReader(in),
		out:      out,
		log:      log,
		monitor:  monitoring.NopMonitor{},
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Current returns the logged in user, or nil.
func (s *Shell) Current() *model.User { return s.session.Current() }

// Run shows the login menu or the main menu until the user exits, the
// input ends or ctx is cancelled. Errors of a single menu operation are
// printed and the loop continues; only a failing reader ends the loop
// with an error.
func (s *Shell) Run(ctx context.Context) error {
	for ctx.Err() == nil {
		var err error
		if s.session.Current() == nil {
			err = s.loginMenu()
		} else {
			err = s.mainMenu()
		}
		var rerr *readError
		switch {
		case err == nil:
		case errors.Is(err, errExit), errors.Is(err, io.EOF):
			return nil
		case errors.As(err, &rerr):
			return err
		default:
			s.report(err)
		}
	}
	return nil
}

// readError marks a failure of the input itself, which ends the session.
type readError struct{ err error }

func (e *readError) Error() string { return "read input: " + e.err.Error() }
func (e *readError) Unwrap() error { return e.err }

func (s *Shell) report(err error) {
	s.log.Debugf("menu operation failed: %v", err)
	switch {
	case errors.Is(err, model.ErrInvalidChoice):
		s.println("Invalid option. Please try again.")
	case errors.Is(err, model.ErrUsernameTaken):
		s.println("Username already exists. Please choose a different one.")
	case errors.Is(err, model.ErrInvalidCredentials):
		s.println("Invalid credentials. Please try again.")
	case errors.Is(err, model.ErrInvalidRating):
		s.println("Invalid rating. Please enter a value between 0.0 and 5.0.")
	case errors.Is(err, model.ErrWaitlistUnsupported):
		s.println("The waitlist is not available yet. Please check back later.")
	case isDomainError(err):
		s.printf("Error: %v\n", err)
	default:
		s.log.Errorf("menu operation failed: %v", err)
		s.monitor.CaptureException(err, map[string]string{"component": "shell"})
		s.printf("Error: %v\n", err)
	}
}

func isDomainError(err error) bool {
	for _, target := range []error{
		model.ErrNotFound,
		model.ErrUnknownSlot,
		model.ErrSlotUnavailable,
		model.ErrNoSlotsAvailable,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

func (s *Shell) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(s.out, format, args...)
}

func (s *Shell) println(line string) {
	_, _ = fmt.Fprintln(s.out, line)
}

// readLine prints prompt and returns the next input line without its line
// ending. Lines have no length limit. io.EOF is returned once the input is
// exhausted.
func (s *Shell) readLine(prompt string) (string, error) {
	s.printf("%s", prompt)
	line, err := s.in.ReadString('\n')
	switch {
	case err == nil:
	case errors.Is(err, io.EOF):
		if line == "" {
			return "", io.EOF
		}
	default:
		return "", &readError{err: err}
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// readChoice reads a 1-based position in a list of n entries.
func (s *Shell) readChoice(prompt string, n int) (int, error) {
	line, err := s.readLine(prompt)
	if err != nil {
		return 0, err
	}
	choice, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil || choice < 1 || choice > n {
		return 0, fmt.Errorf("choice %q: %w", line, model.ErrInvalidChoice)
	}
	return choice, nil
}

// readFloat reads a decimal number. Non-numeric input is an invalid choice.
func (s *Shell) readFloat(prompt string) (float64, error) {
	line, err := s.readLine(prompt)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(line), 64)
	if err != nil {
		return 0, fmt.Errorf("number %q: %w", line, model.ErrInvalidChoice)
	}
	return v, nil
}
