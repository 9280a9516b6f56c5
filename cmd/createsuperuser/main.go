// Command createsuperuser provisions an administrator account.
//
//	createsuperuser -email admin@example.com -password s3cret
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/BruksfildServices01/salon-backend/internal/config"
	dbpkg "github.com/BruksfildServices01/salon-backend/internal/db"
	domain "github.com/BruksfildServices01/salon-backend/internal/domain/account"
	"github.com/BruksfildServices01/salon-backend/internal/infra/repository"
	"github.com/BruksfildServices01/salon-backend/internal/logging"
	ucAccount "github.com/BruksfildServices01/salon-backend/internal/usecase/account"
)

func main() {
	email := flag.String("email", "", "account email (required)")
	password := flag.String("password", "", "account password")
	name := flag.String("name", "", "display name")
	flag.Parse()

	if *email == "" {
		fmt.Fprintln(os.Stderr, "createsuperuser: -email is required")
		flag.Usage()
		os.Exit(2)
	}

	cfg := config.Load()
	log := logging.New(cfg.LogLevel, cfg.LogFormat)

	db, err := dbpkg.NewDB(cfg, log)
	if err != nil {
		log.WithError(err).Fatal("database unavailable")
	}

	acct, err := ucAccount.NewCreateSuperuser(repository.NewSalonGormRepository(db)).
		Execute(context.Background(), domain.NewAccount{
			Email:    *email,
			Password: *password,
			Name:     *name,
		})
	if err != nil {
		log.WithError(err).Fatal("create superuser failed")
	}

	log.WithField("account_id", acct.ID).WithField("email", acct.Email).Info("superuser created")
}
