// Package shell implements the interactive text menus operators use to drive the ledger.
// It reads one answer per line and writes prompts and results as plain text.
package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"iter"
	"log/slog"
	"strings"

	"github.com/console-banking-ledger/internal/domain/account"
	"github.com/console-banking-ledger/internal/domain/client"
	"github.com/console-banking-ledger/internal/domain/ledger"
	"github.com/shopspring/decimal"
)

const clearSequence = "\033[H\033[2J"

const mainMenu = "\n1 Create Account\n2 Login\n3 List Clients\n4 Exit\n\n"

// Bank is the ledger API the shell drives
type Bank interface {
	FindClient(id string) (*client.Client, error)
	RegisterClient(id, firstName, lastName, phone string) (*client.Client, bool, error)
	CreateAccount(clientID, accountID, initialBalance string) (*account.Account, error)
	Transfer(source, target *account.Account, amount decimal.Decimal) (*account.Receipt, error)
	ListClients() iter.Seq[ledger.ClientSummary]
}

// Options controls terminal behaviour
type Options struct {
	ClearScreen bool // Emit an ANSI clear sequence before each menu
	Pause       bool // Wait for Enter after every action
}

// Shell is one operator session over a Bank
type Shell struct {
	bank   Bank
	in     *bufio.Reader
	out    io.Writer
	logger *slog.Logger
	opts   Options
}

// New creates a shell reading answers from in and writing to out
func New(bank Bank, in io.Reader, out io.Writer, logger *slog.Logger, opts Options) *Shell {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Shell{
		bank:   bank,
		in:     bufio.NewReader(in),
		out:    out,
		logger: logger.With("component", "shell"),
		opts:   opts,
	}
}

// Run shows the main menu until the operator exits, input ends or ctx is cancelled.
// End of input is a normal exit.
func (s *Shell) Run(ctx context.Context) error {
	s.logger.Info("Session started")

	err := s.mainLoop(ctx)
	if errors.Is(err, io.EOF) {
		s.logger.Info("Input closed, ending session")
		return nil
	}
	if err != nil {
		s.logger.Error("Session ended with error", "error", err)
		return err
	}

	s.logger.Info("Session ended")
	return nil
}

func (s *Shell) mainLoop(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		s.clear()
		s.print(mainMenu)
		choice, err := s.prompt("Choice: ")
		if err != nil {
			return err
		}

		switch choice {
		case "1":
			err = s.createAccount()
		case "2":
			err = s.login(ctx)
		case "3":
			s.listClients()
		case "4":
			s.println("Bye")
			return nil
		default:
			continue
		}
		if err != nil {
			return err
		}

		if err := s.pause(); err != nil {
			return err
		}
	}
}

func (s *Shell) createAccount() error {
	clientID, err := s.prompt("Client CIN: ")
	if err != nil {
		return err
	}

	owner, err := s.bank.FindClient(clientID)
	if err != nil {
		if !errors.Is(err, ledger.ErrClientNotFound{}) {
			s.report(err, "client_id", clientID)
			return nil
		}

		s.println("New client. Enter details:")
		firstName, err := s.prompt("First name: ")
		if err != nil {
			return err
		}
		lastName, err := s.prompt("Last name: ")
		if err != nil {
			return err
		}
		phone, err := s.prompt("Telephone: ")
		if err != nil {
			return err
		}

		owner, _, err = s.bank.RegisterClient(clientID, firstName, lastName, phone)
		if err != nil {
			s.report(err, "client_id", clientID)
			return nil
		}
		s.logger.Info("Client registered", "client_id", owner.ExternalID())
	}

	accountID, err := s.prompt("Account ID: ")
	if err != nil {
		return err
	}
	initialBalance, err := s.prompt("Initial balance (default 0): ")
	if err != nil {
		return err
	}

	acc, err := s.bank.CreateAccount(owner.ExternalID(), accountID, initialBalance)
	if err != nil {
		s.report(err, "client_id", owner.ExternalID(), "account_id", accountID)
		return nil
	}

	s.logger.Info("Account created",
		"client_id", owner.ExternalID(),
		"account_id", acc.ID(),
		"code", acc.Code(),
		"balance", acc.Balance().String(),
	)
	s.printf("Account %s created for %s with %s\n", acc.ID(), owner.ExternalID(), formatAmount(acc.Balance()))
	return nil
}

func (s *Shell) login(ctx context.Context) error {
	clientID, err := s.prompt("Client CIN: ")
	if err != nil {
		return err
	}

	owner, err := s.bank.FindClient(clientID)
	if err != nil {
		s.report(err, "client_id", clientID)
		return nil
	}

	acc, err := s.selectAccount(owner, "Select account number: ")
	if err != nil || acc == nil {
		return err
	}

	s.logger.Info("Logged in", "client_id", owner.ExternalID(), "account_id", acc.ID())
	return s.session(ctx, owner, acc)
}

// selectAccount lists the client's accounts and reads a 1-based choice.
// A nil account with a nil error means nothing usable was selected.
func (s *Shell) selectAccount(owner *client.Client, label string) (*account.Account, error) {
	accounts := owner.Accounts()
	if len(accounts) == 0 {
		s.println("No accounts.")
		return nil, nil
	}

	for i, acc := range accounts {
		s.printf("%d. %s - %s\n", i+1, acc.ID(), formatAmount(acc.Balance()))
	}

	answer, err := s.prompt(label)
	if err != nil {
		return nil, err
	}

	position, err := parseSelection(answer)
	if err != nil {
		s.report(err, "client_id", owner.ExternalID(), "selection", answer)
		return nil, nil
	}
	acc, err := owner.AccountAt(position)
	if err != nil {
		s.report(err, "client_id", owner.ExternalID(), "selection", answer)
		return nil, nil
	}
	return acc, nil
}

func (s *Shell) listClients() {
	listed := 0
	for summary := range s.bank.ListClients() {
		s.printf("%s: %s - %s (%d accounts)\n", summary.ClientID, summary.FullName(), summary.Phone, summary.AccountCount)
		listed++
	}
	if listed == 0 {
		s.println("No clients.")
	}
	s.logger.Debug("Clients listed", "count", listed)
}

func (s *Shell) clear() {
	if s.opts.ClearScreen {
		s.print(clearSequence)
	}
}

func (s *Shell) pause() error {
	if !s.opts.Pause {
		return nil
	}
	_, err := s.prompt("Press Enter to continue...")
	return err
}

// prompt writes label and returns the trimmed answer line
func (s *Shell) prompt(label string) (string, error) {
	s.print(label)

	line, err := s.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (s *Shell) print(text string) {
	fmt.Fprint(s.out, text)
}

func (s *Shell) println(text string) {
	fmt.Fprintln(s.out, text)
}

func (s *Shell) printf(format string, args ...any) {
	fmt.Fprintf(s.out, format, args...)
}
