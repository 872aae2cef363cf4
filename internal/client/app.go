// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/MKhiriev/accounts-service/internal/adapter"
	"github.com/MKhiriev/accounts-service/internal/logger"
	"github.com/MKhiriev/accounts-service/models"
)

const usage = `usage: accounts-client [flags] <command> [args]

commands:
  health                     check server liveness
  info                       print service name and version
  list                       list all accounts
  get <id>                   print one account
  create -json <doc|@file>   create an account
  update <id> -json <doc|@file>
                             replace an account
  delete <id>                delete an account
`

type App struct {
	adapter adapter.AccountsAdapter
	out     io.Writer

	logger *logger.Logger
}

func NewApp(accounts adapter.AccountsAdapter, out io.Writer, logger *logger.Logger) (*App, error) {
	if accounts == nil {
		return nil, errors.New("nil accounts adapter")
	}
	if out == nil {
		out = os.Stdout
	}

	return &App{adapter: accounts, out: out, logger: logger}, nil
}

// Usage writes the command summary to w.
func Usage(w io.Writer) {
	_, _ = io.WriteString(w, usage)
}

func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return ErrNoCommand
	}

	command, rest := args[0], args[1:]
	a.logger.Debug().Str("command", command).Strs("args", rest).Msg("running command")

	switch command {
	case "health":
		health, err := a.adapter.Health(ctx)
		if err != nil {
			return err
		}
		return a.print(health)
	case "info":
		info, err := a.adapter.Info(ctx)
		if err != nil {
			return err
		}
		return a.print(info)
	case "list":
		accounts, err := a.adapter.List(ctx)
		if err != nil {
			return err
		}
		return a.print(accounts)
	case "get":
		id, err := parseID(rest)
		if err != nil {
			return err
		}
		account, err := a.adapter.Get(ctx, id)
		if err != nil {
			return err
		}
		return a.print(account)
	case "delete":
		id, err := parseID(rest)
		if err != nil {
			return err
		}
		if err = a.adapter.Delete(ctx, id); err != nil {
			return err
		}
		_, err = fmt.Fprintf(a.out, "account %d deleted\n", id)
		return err
	case "create":
		account, err := parseAccount("create", rest)
		if err != nil {
			return err
		}
		created, location, err := a.adapter.Create(ctx, account)
		if err != nil {
			return err
		}
		a.logger.Info().Str("location", location).Msg("account created")
		return a.print(created)
	case "update":
		id, err := parseID(rest)
		if err != nil {
			return err
		}
		account, err := parseAccount("update", rest[1:])
		if err != nil {
			return err
		}
		updated, err := a.adapter.Update(ctx, id, account)
		if err != nil {
			return err
		}
		return a.print(updated)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownCommand, command)
	}
}

func (a *App) print(v any) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func parseID(args []string) (int64, error) {
	if len(args) == 0 {
		return 0, fmt.Errorf("%w: account id", ErrMissingArgument)
	}

	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidID, args[0])
	}
	return id, nil
}

// parseAccount reads the -json flag. A value starting with @ names a file.
func parseAccount(command string, args []string) (models.Account, error) {
	fs := flag.NewFlagSet(command, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	doc := fs.String("json", "", "account JSON document or @file")

	if err := fs.Parse(args); err != nil {
		return models.Account{}, fmt.Errorf("%w: %w", ErrMissingArgument, err)
	}
	if *doc == "" {
		return models.Account{}, fmt.Errorf("%w: -json", ErrMissingArgument)
	}

	raw := []byte(*doc)
	if path, ok := strings.CutPrefix(*doc, "@"); ok {
		var err error
		if raw, err = os.ReadFile(path); err != nil {
			return models.Account{}, fmt.Errorf("read account file: %w", err)
		}
	}

	var account models.Account
	if err := json.Unmarshal(raw, &account); err != nil {
		return models.Account{}, fmt.Errorf("%w: %w", ErrInvalidAccount, err)
	}
	return account, nil
}
