package main

import (
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"syscall"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"golang.org/x/term"

	"github.com/trezcool/lmsadmin/apps"
	"github.com/trezcool/lmsadmin/core/user"
)

var (
	readPasswordFunc = term.ReadPassword // mockable

	errHelp = errors.New("help provided")
)

type commandLine struct {
	db         *sql.DB
	usrSvc     *user.Service
	validate   *validator.Validate
	translator ut.Translator
}

func (cli *commandLine) printUsage() {
	fmt.Println("Usage:")
	fmt.Println("  migrate COMMAND [ARGS...] - run a goose command (up, up-by-one, up-to, down, down-to, redo, reset, status, version)")
	fmt.Println("  resetpassword -org ORGANIZATION_ID -email EMAIL - reset user's password")
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	resetPasswordCmd := flag.NewFlagSet("resetpassword", flag.ExitOnError)
	resetPasswordOrg := resetPasswordCmd.Int64("org", 0, "The user's organization id.")
	resetPasswordEmail := resetPasswordCmd.String("email", "", "The user's email. The password will be prompted next.")

	switch args[1] {
	case "migrate":
		if len(args) < 3 {
			cli.printUsage()
			return errHelp
		}
		return cli.migrate(args[2:])
	case "resetpassword":
		if err := resetPasswordCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *resetPasswordEmail == "" {
			resetPasswordCmd.Usage()
			return errHelp
		}
		if *resetPasswordOrg <= 0 {
			return apps.NewArgumentError("-org must be a positive organization id")
		}
		fmt.Print("Enter password:")
		pwd, err := readPasswordFunc(int(syscall.Stdin))
		fmt.Println()
		if err != nil {
			return err
		}
		if len(pwd) == 0 {
			resetPasswordCmd.Usage()
			return errHelp
		}
		return cli.resetPassword(*resetPasswordOrg, *resetPasswordEmail, string(pwd))
	default:
		cli.printUsage()
		return errHelp
	}
}
