package start

import (
	"context"
	"os"
	"os/signal"
	"runtime/pprof"
	"syscall"

	"github.com/colima-services/reference-api/api"
	"github.com/colima-services/reference-api/internal/messaging"
	"github.com/colima-services/reference-api/internal/metrics"
	"github.com/colima-services/reference-api/internal/monitor"
	"github.com/colima-services/reference-api/internal/vault"
	"github.com/colima-services/reference-api/pkg/db"
	"github.com/colima-services/reference-api/pkg/env"
	"github.com/colima-services/reference-api/pkg/log"
	"github.com/spf13/cobra"
)

const (
	usage   = "start"
	short   = "Start a reference API instance"
	long    = "This command starts a reference API instance"
	example = "reference-api start"
)

var (
	// Cmd is the start command.
	Cmd = &cobra.Command{
		Use:        usage,
		Short:      short,
		Long:       long,
		Aliases:    []string{"s"},
		SuggestFor: []string{"launch", "boot", "up", "run", "begin"},
		Example:    example,
		RunE:       start,
	}
)

var cancel context.CancelFunc

func start(cmd *cobra.Command, args []string) error {
	signalChan := make(chan os.Signal, 1)

	go func() {
		for s := range signalChan {
			switch s {
			case syscall.SIGUSR1:
				log.Info("dumping stack traces due to SIGUSR1 signal")
				if profile := pprof.Lookup("goroutine"); profile != nil {
					if err := profile.WriteTo(os.Stdout, 1); err != nil {
						log.Error("write goroutine profile", "error", err)
					}
				}
			case syscall.SIGINT:
				log.Info("gracefully shutting down due to SIGINT signal")
				shutdown()
				os.Exit(0)
			}
		}
	}()

	signal.Notify(signalChan, syscall.SIGUSR1, syscall.SIGINT)

	var errs = make(chan error)
	ctx, cancelFunc := context.WithCancel(context.Background())
	cancel = cancelFunc

	vars := env.Variables()

	secrets, err := vault.New(vault.Config{
		Address: vars.VaultAddr,
		Token:   vars.VaultToken,
		Mount:   vars.VaultMount,
		Timeout: vars.VaultTimeout,
	})
	if err != nil {
		log.Fatal("secret store configuration failure", "error", err)
	}

	dsn := vars.DatabaseDSN
	if dsn == "" && vars.DatabaseType == "postgres" {
		if dsn, err = resolveDSN(ctx, secrets, vars); err != nil {
			log.Fatal("database credential resolution failure", "error", err)
		}
	}

	gdb, err := db.Open(dsn)
	if err != nil {
		log.Fatal("database connection failure", "error", err)
	}

	log.Info("migrating database")
	if err = db.Migrate(gdb); err != nil {
		log.Fatal("database migration failure", "error", err)
	}

	metrics.Register()

	sweeper, err := monitor.New(secrets, vars.HealthInterval)
	if err != nil {
		log.Fatal("health monitor configuration failure", "error", err)
	}

	if sweeper.Enabled() {
		go func() {
			log.Info("launching health monitor", "interval", vars.HealthInterval)
			sweeper.Listen(ctx)
		}()
	}

	go func() {
		log.Info("spinning up api")
		errs <- api.Start(api.Options{
			Secrets:   secrets,
			Publisher: messaging.NewOutbox(gdb),
			DB:        gdb,
		})
	}()

	defer shutdown()

	return <-errs
}

func resolveDSN(ctx context.Context, secrets *vault.Client, vars env.Environment) (string, error) {
	user, err := secrets.FetchSecretField(ctx, "postgres", "user")
	if err != nil {
		return "", err
	}

	password, err := secrets.FetchSecretField(ctx, "postgres", "password")
	if err != nil {
		return "", err
	}

	database, err := secrets.FetchSecretField(ctx, "postgres", "database")
	if err != nil {
		return "", err
	}

	creds := db.Credentials{
		User:     user,
		Password: password,
		Database: database,
	}

	return db.DSN(creds, vars.PostgresHost, vars.PostgresPort), nil
}

func shutdown() {
	if cancel != nil {
		cancel()
	}
	if err := api.Shutdown(); err != nil {
		log.Error("api shutdown failure", "error", err)
	}
}
