package main

import (
	"fmt"
	"log/slog"
	"os"
	"sync"

	"workorders/cmd"
	"workorders/internal/core/domain/model/identity"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// commandContext lazily loads what the subcommands share.
type commandContext struct {
	envFile *string

	configOnce sync.Once
	config     cmd.Config
	configErr  error

	dbOnce sync.Once
	db     *gorm.DB
	dbErr  error
}

func newCommandContext(envFile *string) *commandContext {
	return &commandContext{envFile: envFile}
}

func (c *commandContext) ensureConfig() (cmd.Config, error) {
	c.configOnce.Do(func() {
		c.config, c.configErr = cmd.LoadConfig(*c.envFile)
	})
	return c.config, c.configErr
}

func (c *commandContext) logger() *slog.Logger {
	cfg, _ := c.ensureConfig()
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))
}

func (c *commandContext) database() (*gorm.DB, error) {
	c.dbOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.dbErr = err
			return
		}
		c.db, c.dbErr = gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
			TranslateError: true,
			Logger:         logger.Default.LogMode(logger.Warn),
		})
		if c.dbErr != nil {
			c.dbErr = fmt.Errorf("connect to database: %w", c.dbErr)
		}
	})
	return c.db, c.dbErr
}

func (c *commandContext) compositionRoot() (cmd.CompositionRoot, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return cmd.CompositionRoot{}, err
	}
	db, err := c.database()
	if err != nil {
		return cmd.CompositionRoot{}, err
	}
	return cmd.NewCompositionRoot(cfg, db, c.logger()), nil
}

// operator is the identity the CLI acts as. It has admin authority.
func operator() (identity.Identity, error) {
	return identity.NewIdentity(identity.Admin, "", "cli")
}
