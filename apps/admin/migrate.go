package main

import (
	"context"

	"github.com/pkg/errors"
	"github.com/pressly/goose/v3"

	appfs "github.com/trezcool/lmsadmin/fs"
)

var gooseRunFunc = goose.RunContext // mockable

func (cli *commandLine) migrate(args []string) error {
	goose.SetBaseFS(appfs.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		return errors.Wrap(err, "setting migration dialect")
	}
	return gooseRunFunc(context.Background(), args[0], cli.db, appfs.MigrationsDir, args[1:]...)
}
