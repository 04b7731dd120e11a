package main

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/lmsadmin/apps"
	"github.com/trezcool/lmsadmin/core"
	"github.com/trezcool/lmsadmin/testutil"
)

func setup(t *testing.T) (*commandLine, *testutil.Services) {
	svcs := testutil.NewServices()
	validate, translator := testutil.NewValidator()

	// start CLI
	return &commandLine{
		usrSvc:     svcs.Users,
		validate:   validate,
		translator: translator,
	}, svcs
}

type cliTest struct {
	name       string
	args       []string // without program name
	wantErr    error
	wantErrStr string
	extra      interface{}
}

func Test_commandLine_migrate(t *testing.T) {
	cli, _ := setup(t)

	defer func(orig func(context.Context, string, *sql.DB, string, ...string) error) { gooseRunFunc = orig }(gooseRunFunc)
	gooseRunFunc = func(_ context.Context, command string, _ *sql.DB, dir string, args ...string) error {
		if dir != "migrations" {
			return fmt.Errorf("unexpected migrations dir %q", dir)
		}
		switch command {
		case "up", "up-by-one", "down", "redo", "reset", "status", "version": // pass
		case "up-to":
			if len(args) == 0 {
				return fmt.Errorf("up-to must be of form: goose [OPTIONS] DRIVER DBSTRING up-to VERSION")
			}
			if _, err := strconv.ParseInt(args[0], 10, 64); err != nil {
				return fmt.Errorf("version must be a number (got '%s')", args[0])
			}
		case "down-to":
			if len(args) == 0 {
				return fmt.Errorf("down-to must be of form: goose [OPTIONS] DRIVER DBSTRING down-to VERSION")
			}
			if _, err := strconv.ParseInt(args[0], 10, 64); err != nil {
				return fmt.Errorf("version must be a number (got '%s')", args[0])
			}
		default:
			return fmt.Errorf("%q: no such command", command)
		}
		return nil
	}

	tests := []cliTest{
		{name: "no subcommand", args: []string{"migrate"}, wantErr: errHelp},
		{name: "unknown subcommand", args: []string{"migrate", "lol"}, wantErrStr: "\"lol\": no such command"},
		{name: "up-to: no args", args: []string{"migrate", "up-to"}, wantErrStr: "up-to must be of form: goose [OPTIONS] DRIVER DBSTRING up-to VERSION"},
		{name: "up-to: non-int arg", args: []string{"migrate", "up-to", "lol"}, wantErrStr: "version must be a number (got 'lol')"},
		{name: "down-to: no args", args: []string{"migrate", "down-to"}, wantErrStr: "down-to must be of form: goose [OPTIONS] DRIVER DBSTRING down-to VERSION"},
		{name: "down-to: non-int arg", args: []string{"migrate", "down-to", "lol"}, wantErrStr: "version must be a number (got 'lol')"},
		{name: "up", args: []string{"migrate", "up"}},
		{name: "up-by-one", args: []string{"migrate", "up-by-one"}},
		{name: "up-to", args: []string{"migrate", "up-to", "1"}},
		{name: "down", args: []string{"migrate", "down"}},
		{name: "down-to", args: []string{"migrate", "down-to", "0"}},
		{name: "redo", args: []string{"migrate", "redo"}},
		{name: "reset", args: []string{"migrate", "reset"}},
		{name: "status", args: []string{"migrate", "status"}},
		{name: "version", args: []string{"migrate", "version"}},
	}
	for _, tt := range tests {
		args := append([]string{"admin"}, tt.args...)

		t.Run(tt.name, func(t *testing.T) {
			err := cli.run(args)
			switch {
			case tt.wantErr != nil:
				assert.Equal(t, tt.wantErr, err)
			case tt.wantErrStr != "":
				require.Error(t, err)
				assert.Equal(t, tt.wantErrStr, err.Error())
			default:
				assert.NoError(t, err)
			}
		})
	}
}

func Test_commandLine_resetPassword(t *testing.T) {
	cli, svcs := setup(t)

	org := testutil.CreateOrganization(t, svcs, "Acme")
	usr := testutil.CreateUser(t, svcs, org.ID, "Jane Doe", "jane@acme.io")
	orgID := strconv.FormatInt(org.ID, 10)

	defer func(orig func(int) ([]byte, error)) { readPasswordFunc = orig }(readPasswordFunc)

	type extra struct {
		pwd string
	}
	tests := []cliTest{
		{name: "no command", wantErr: errHelp},
		{name: "unknown command", args: []string{"lol"}, wantErr: errHelp},
		{name: "no args", args: []string{"resetpassword"}, wantErr: errHelp},
		{name: "no org", args: []string{"resetpassword", "-email", usr.Email}, extra: extra{pwd: "n3w-passw0rd"}, wantErr: &apps.ArgumentError{}},
		{name: "email but no password", args: []string{"resetpassword", "-org", orgID, "-email", usr.Email}, wantErr: errHelp},
		{name: "user not found", args: []string{"resetpassword", "-org", orgID, "-email", "lol@acme.io"}, extra: extra{pwd: "n3w-passw0rd"}, wantErr: &core.NotFoundError{}},
		{name: "wrong organization", args: []string{"resetpassword", "-org", "999", "-email", usr.Email}, extra: extra{pwd: "n3w-passw0rd"}, wantErr: &core.NotFoundError{}},
		{name: "weak password", args: []string{"resetpassword", "-org", orgID, "-email", usr.Email}, extra: extra{pwd: "12345678"}, wantErr: &apps.ArgumentError{}},
		{name: "reset", args: []string{"resetpassword", "-org", orgID, "-email", usr.Email}, extra: extra{pwd: "n3w-passw0rd"}},
		{name: "reset with mixed case email", args: []string{"resetpassword", "-org", orgID, "-email", "  Jane@Acme.IO "}, extra: extra{pwd: "an0ther-one"}},
	}
	for _, tt := range tests {
		args := append([]string{"admin"}, tt.args...)

		readPasswordFunc = func(fd int) ([]byte, error) {
			if extra, ok := tt.extra.(extra); ok {
				return []byte(extra.pwd), nil
			}
			return nil, nil
		}

		t.Run(tt.name, func(t *testing.T) {
			err := cli.run(args)
			if tt.wantErr != nil {
				require.Error(t, err)
				if tt.wantErr == errHelp {
					assert.Equal(t, errHelp, err)
				} else {
					assert.IsType(t, tt.wantErr, errors.Cause(err))
				}
				return
			}
			require.NoError(t, err)

			refreshed, err := svcs.Users.GetByEmail(context.Background(), org.ID, usr.Email)
			require.NoError(t, err)
			assert.NoError(t, refreshed.CheckPassword(tt.extra.(extra).pwd))
			assert.Error(t, refreshed.CheckPassword(testutil.Password))
			assert.True(t, refreshed.UpdatedAt.After(usr.UpdatedAt))
		})
	}
}
