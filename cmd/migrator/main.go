package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

func main() {
	var dsn, migrationsPath string

	flag.StringVar(&dsn, "dsn", "", "postgres connection string without the scheme")
	flag.StringVar(&migrationsPath, "migrations-path", "migrations", "path to migration files")
	flag.Parse()

	if dsn == "" {
		dsn = os.Getenv("POSTGRES_DSN")
	}
	if dsn == "" {
		panic("postgres dsn is not set")
	}

	m, err := migrate.New("file://"+migrationsPath, "postgres://"+dsn)
	if err != nil {
		panic(err)
	}

	if err = m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			fmt.Println("no pending migrations")
			return
		}
		panic(err)
	}

	fmt.Println("migrations applied")
}
