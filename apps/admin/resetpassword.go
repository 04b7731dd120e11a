package main

import (
	"context"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"github.com/trezcool/lmsadmin/apps"
	"github.com/trezcool/lmsadmin/core"
	"github.com/trezcool/lmsadmin/core/user"
)

func (cli *commandLine) resetPassword(orgID int64, email, pwd string) error {
	ctx := context.Background()
	usr, err := cli.usrSvc.GetByEmail(ctx, orgID, email)
	if err != nil {
		return err
	}

	rp := user.ResetPassword{OrganizationID: orgID, Email: email, Password: pwd}
	if err = rp.Validate(cli.validate, usr); err != nil {
		var vErrs validator.ValidationErrors
		if errors.As(err, &vErrs) {
			msgs := make([]string, 0, len(vErrs))
			for _, msg := range core.TranslateErrors(vErrs, cli.translator) {
				msgs = append(msgs, msg)
			}
			sort.Strings(msgs)
			return apps.NewArgumentError(strings.Join(msgs, "; "))
		}
		return err
	}

	if _, err = cli.usrSvc.SetPassword(ctx, usr, pwd); err != nil {
		return err
	}
	return nil
}
