package main

import (
	"github.com/go-pg/migrations/v8"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli"
	cs "github.com/webtor-io/common-services"
)

func makePGMigrationCMD() cli.Command {
	migrateCMD := cli.Command{
		Name:    "migrate",
		Aliases: []string{"m"},
		Usage:   "Migrates database",
	}
	configurePGMigration(&migrateCMD)
	return migrateCMD
}

func configurePGMigration(c *cli.Command) {
	upCMD := cli.Command{
		Name:    "up",
		Usage:   "Runs all available migrations",
		Aliases: []string{"u"},
		Action: func(c *cli.Context) error {
			return pgMigrate(c, "up")
		},
	}
	downCMD := cli.Command{
		Name:    "down",
		Usage:   "Reverts last migration",
		Aliases: []string{"d"},
		Action: func(c *cli.Context) error {
			return pgMigrate(c, "down")
		},
	}
	resetCMD := cli.Command{
		Name:    "reset",
		Usage:   "Reverts all migrations",
		Aliases: []string{"r"},
		Action: func(c *cli.Context) error {
			return pgMigrate(c, "reset")
		},
	}
	versionCMD := cli.Command{
		Name:    "version",
		Usage:   "Prints current db version",
		Aliases: []string{"v"},
		Action: func(c *cli.Context) error {
			return pgMigrate(c, "version")
		},
	}
	c.Subcommands = []cli.Command{upCMD, downCMD, resetCMD, versionCMD}
	for k := range c.Subcommands {
		c.Subcommands[k].Flags = cs.RegisterPGFlags(c.Subcommands[k].Flags)
	}
}

func pgMigrate(c *cli.Context, a ...string) error {
	pg := cs.NewPG(c)
	defer pg.Close()

	db := pg.Get()
	if db == nil {
		log.Info("db not initialized, skipping migration")
		return nil
	}
	col := migrations.NewCollection()
	if err := col.DiscoverSQLMigrations("migrations"); err != nil {
		return errors.Wrap(err, "failed to discover migrations")
	}
	if _, _, err := col.Run(db, "init"); err != nil {
		return errors.Wrap(err, "failed to init migrations table")
	}
	oldVersion, newVersion, err := col.Run(db, a...)
	if err != nil {
		return errors.Wrapf(err, "failed to migrate from %v to %v", oldVersion, newVersion)
	}
	if newVersion != oldVersion {
		log.Infof("db migrated from version %d to %d", oldVersion, newVersion)
	} else {
		log.Infof("db version is %d", oldVersion)
	}
	return nil
}
