// Package menu implements the interactive text front end for a single account.
package menu

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/amirasaad/ledgeredge/pkg/service/account"
	"github.com/fatih/color"
)

const (
	defaultBrand  = "LedgerEdge"
	defaultPrompt = "> "

	optionsLine = "Select an option: (1) Deposit  (2) Withdraw  (3) Change Owner  (4) Deactivate  (5) Reactivate  (6) Exit"
)

// Option configures a Menu.
type Option func(*Menu)

// WithInput sets the reader the menu takes lines from.
func WithInput(r io.Reader) Option { return func(m *Menu) { m.in = r } }

// WithOutput sets the writer for prompts and status lines.
func WithOutput(w io.Writer) Option { return func(m *Menu) { m.out = w } }

// WithErrorOutput sets the writer for error reports.
func WithErrorOutput(w io.Writer) Option { return func(m *Menu) { m.errOut = w } }

// WithLogger sets the logger used for menu diagnostics.
func WithLogger(l *slog.Logger) Option { return func(m *Menu) { m.logger = l } }

// WithColor turns colored output on or off.
func WithColor(enabled bool) Option { return func(m *Menu) { m.color = enabled } }

// WithBrand sets the product name used in the greeting and farewell.
func WithBrand(brand string) Option {
	return func(m *Menu) {
		if brand != "" {
			m.brand = brand
		}
	}
}

// WithPrompt sets the text printed before each menu selection.
func WithPrompt(prompt string) Option {
	return func(m *Menu) { m.prompt = prompt }
}

// Menu reads actions from its input, applies them to the session account and
// reports results. Failures are printed and the loop continues.
type Menu struct {
	svc    *account.Service
	in     io.Reader
	out    io.Writer
	errOut io.Writer
	logger *slog.Logger
	brand  string
	prompt string
	color  bool

	lines   chan string
	readErr error

	header  *color.Color
	success *color.Color
	failure *color.Color
}

// New creates a Menu for svc. It reads from stdin and writes to stdout and
// stderr unless configured otherwise.
func New(svc *account.Service, opts ...Option) *Menu {
	m := &Menu{
		svc:    svc,
		in:     os.Stdin,
		out:    os.Stdout,
		errOut: os.Stderr,
		logger: slog.Default(),
		brand:  defaultBrand,
		prompt: defaultPrompt,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.header = color.New(color.FgCyan, color.Bold)
	m.success = color.New(color.FgGreen)
	m.failure = color.New(color.FgRed)
	for _, c := range []*color.Color{m.header, m.success, m.failure} {
		if m.color {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return m
}

// Run opens the session account with the owner name read from the input and then
// serves actions until the user exits, the input ends or ctx is cancelled.
// It returns ctx.Err() on cancellation and nil on a regular exit.
func (m *Menu) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	m.startReader(ctx)

	name, err := m.ask(ctx, "Enter owner name for new account: ")
	if err != nil {
		return m.finish(err)
	}
	if _, err := m.svc.Open(ctx, strings.TrimSpace(name)); err != nil {
		return err
	}
	m.success.Fprintf(m.out, "Welcome to %s!\n", m.brand)

	for {
		view, err := m.svc.Snapshot(ctx)
		if err != nil {
			return err
		}
		m.printStatus(view)
		fmt.Fprintln(m.out, optionsLine)

		choice, err := m.ask(ctx, m.prompt)
		if err != nil {
			return m.finish(err)
		}
		choice = strings.TrimSpace(choice)
		m.logger.DebugContext(ctx, "Menu selection", "choice", choice)

		exit, err := m.dispatch(ctx, choice)
		if err != nil {
			if errors.Is(err, io.EOF) || ctx.Err() != nil {
				return m.finish(err)
			}
			m.failure.Fprintf(m.errOut, "Error: %v\n", err)
		}
		if exit {
			return nil
		}
		fmt.Fprintln(m.out)
	}
}

func (m *Menu) dispatch(ctx context.Context, choice string) (exit bool, err error) {
	switch choice {
	case "1":
		amount, err := m.askAmount(ctx, "Enter deposit amount: ")
		if err != nil {
			return false, err
		}
		_, err = m.svc.Deposit(ctx, amount)
		return false, err
	case "2":
		amount, err := m.askAmount(ctx, "Enter withdrawal amount: ")
		if err != nil {
			return false, err
		}
		_, err = m.svc.Withdraw(ctx, amount)
		return false, err
	case "3":
		name, err := m.ask(ctx, "Enter new owner name: ")
		if err != nil {
			return false, err
		}
		_, err = m.svc.Rename(ctx, strings.TrimSpace(name))
		return false, err
	case "4":
		if _, err := m.svc.Close(ctx); err != nil {
			return false, err
		}
		m.success.Fprintln(m.out, "Account deactivated.")
		return false, nil
	case "5":
		if _, err := m.svc.Reopen(ctx); err != nil {
			return false, err
		}
		m.success.Fprintln(m.out, "Account reactivated.")
		return false, nil
	case "6":
		m.success.Fprintf(m.out, "Thank you for using %s. Goodbye!\n", m.brand)
		return true, nil
	default:
		fmt.Fprintln(m.out, "Invalid selection, please enter a number from 1 to 6.")
		return false, nil
	}
}

func (m *Menu) printStatus(view account.View) {
	status := fmt.Sprintf("Account #%d (%s) | Balance: $%.2f", view.ID, view.OwnerName, view.Balance)
	if !view.Active {
		status += " [inactive]"
	}
	m.header.Fprintln(m.out, status)
}

func (m *Menu) askAmount(ctx context.Context, prompt string) (float64, error) {
	text, err := m.ask(ctx, prompt)
	if err != nil {
		return 0, err
	}
	return ParseAmount(text)
}

func (m *Menu) ask(ctx context.Context, prompt string) (string, error) {
	fmt.Fprint(m.out, prompt)
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line, ok := <-m.lines:
		if !ok {
			return "", io.EOF
		}
		return line, nil
	}
}

// startReader feeds input lines to m.lines until the input ends or ctx is done.
// Lines have no length limit; a final line without a newline is still delivered.
func (m *Menu) startReader(ctx context.Context) {
	m.lines = make(chan string)
	reader := bufio.NewReader(m.in)
	go func() {
		defer close(m.lines)
		for {
			line, err := reader.ReadString('\n')
			if line != "" {
				select {
				case m.lines <- strings.TrimRight(line, "\r\n"):
				case <-ctx.Done():
					return
				}
			}
			if err != nil {
				if !errors.Is(err, io.EOF) {
					m.readErr = err
				}
				return
			}
		}
	}()
}

// finish maps the error that stopped the loop to the result of Run.
func (m *Menu) finish(err error) error {
	fmt.Fprintln(m.out)
	switch {
	case errors.Is(err, io.EOF):
		if m.readErr != nil {
			return fmt.Errorf("read input: %w", m.readErr)
		}
		m.logger.Debug("Input closed, leaving menu")
		return nil
	default:
		return err
	}
}
