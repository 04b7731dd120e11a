package main

import (
	"context"
	"fmt"
	"os"

	"github.com/trezcool/lmsadmin/core"
	"github.com/trezcool/lmsadmin/core/user"
	logsvc "github.com/trezcool/lmsadmin/services/logger"
	"github.com/trezcool/lmsadmin/storage/database"
	sqlxrepos "github.com/trezcool/lmsadmin/storage/database/sqlx"
)

var logger core.Logger

func main() {
	conf := core.NewConfig()

	rlogger := logsvc.NewRollbarLogger(logsvc.NewZerolog(conf, "admin"), conf)
	rlogger.Enable(!conf.Debug)
	logger = rlogger

	// set up DB
	db, err := database.Open(conf)
	errAndDie(err)
	defer db.Close()
	errAndDie(database.Ping(context.Background(), db))

	validate, translator := newValidator()

	// start CLI
	cli := commandLine{
		db:         db.DB,
		usrSvc:     user.NewService(sqlxrepos.NewUserRepository(db), sqlxrepos.NewOrganizationRepository(db), conf.Password.HashCost),
		validate:   validate,
		translator: translator,
	}
	if err := cli.run(os.Args); err != nil {
		if err != errHelp {
			fmt.Printf("\nerror: %s\n", err)
		}
		os.Exit(1)
	}
}

func errAndDie(err error) {
	if err != nil {
		logger.Fatal(err.Error(), err)
	}
}
