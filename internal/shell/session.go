package shell

import (
	"context"
	"errors"

	"github.com/console-banking-ledger/internal/domain/account"
	"github.com/console-banking-ledger/internal/domain/client"
	"github.com/console-banking-ledger/internal/domain/ledger"
	"github.com/console-banking-ledger/internal/domain/shared"
)

const sessionMenu = "\n1 Deposit\n2 Withdraw\n3 Transfer\n4 History\n5 Logout\n\n"

// session runs the per-account menu until logout
func (s *Shell) session(ctx context.Context, owner *client.Client, acc *account.Account) error {
	logger := s.logger.With("client_id", owner.ExternalID(), "account_id", acc.ID())

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		s.clear()
		s.print(sessionMenu)
		choice, err := s.prompt("Choice: ")
		if err != nil {
			return err
		}

		switch choice {
		case "1":
			err = s.deposit(acc)
		case "2":
			err = s.withdraw(acc)
		case "3":
			err = s.transfer(owner, acc)
		case "4":
			s.history(acc)
		case "5":
			logger.Info("Logged out")
			s.println("Logged out.")
			return s.pause()
		default:
			s.println("Invalid choice.")
		}
		if err != nil {
			return err
		}

		if err := s.pause(); err != nil {
			return err
		}
	}
}

func (s *Shell) deposit(acc *account.Account) error {
	answer, err := s.prompt("Amount to deposit: ")
	if err != nil {
		return err
	}

	amount, err := shared.ParseAmount(answer)
	if err == nil {
		err = acc.Deposit(amount)
	}
	if err != nil {
		s.report(err, "account_id", acc.ID(), "amount", answer)
		return nil
	}

	s.logger.Info("Deposit applied", "account_id", acc.ID(), "amount", amount.String(), "balance", acc.Balance().String())
	s.printf("New balance: %s\n", formatAmount(acc.Balance()))
	return nil
}

func (s *Shell) withdraw(acc *account.Account) error {
	answer, err := s.prompt("Amount to withdraw: ")
	if err != nil {
		return err
	}

	amount, err := shared.ParseAmount(answer)
	if err == nil {
		err = acc.Withdraw(amount)
	}
	if err != nil {
		s.report(err, "account_id", acc.ID(), "amount", answer)
		return nil
	}

	s.logger.Info("Withdrawal applied", "account_id", acc.ID(), "amount", amount.String(), "balance", acc.Balance().String())
	s.printf("New balance: %s\n", formatAmount(acc.Balance()))
	return nil
}

func (s *Shell) transfer(owner *client.Client, source *account.Account) error {
	targetClientID, err := s.prompt("Target CIN: ")
	if err != nil {
		return err
	}

	targetClient, err := s.bank.FindClient(targetClientID)
	if errors.Is(err, ledger.ErrClientNotFound{}) {
		s.reject("Target client not found.", err, "target_client_id", targetClientID)
		return nil
	}
	if err != nil {
		s.report(err, "target_client_id", targetClientID)
		return nil
	}

	target, err := s.selectAccount(targetClient, "Select target account number: ")
	if err != nil || target == nil {
		return err
	}

	answer, err := s.prompt("Amount to transfer: ")
	if err != nil {
		return err
	}
	amount, err := shared.ParseAmount(answer)
	if err != nil {
		s.report(err, "amount", answer)
		return nil
	}

	receipt, err := s.bank.Transfer(source, target, amount)
	if err != nil {
		s.report(err,
			"source", source.Descriptor(),
			"target", target.Descriptor(),
			"amount", amount.String(),
		)
		return nil
	}

	s.logger.Info("Transfer completed",
		"transfer_id", receipt.TransferID.String(),
		"client_id", owner.ExternalID(),
		"source", receipt.Source,
		"target", receipt.Target,
		"amount", receipt.Amount.String(),
	)
	s.printf("Transferred %s. Source balance: %s\n", formatAmount(receipt.Amount), formatAmount(receipt.SourceBalance))
	return nil
}

func (s *Shell) history(acc *account.Account) {
	s.printf("History for %s:\n", acc.ID())
	for _, line := range acc.History() {
		s.printf("- %s\n", line)
	}
}
