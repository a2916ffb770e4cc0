package commands

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"

	"github.com/jacentio/propman/internal/lock"
	"github.com/jacentio/propman/secrets"
)

type SecretsCmd struct {
	Get    SecretsGetCmd    `cmd:"" help:"Print one secret, or the whole bundle when no key is given"`
	Set    SecretsSetCmd    `cmd:"" help:"Set one secret"`
	Delete SecretsDeleteCmd `cmd:"" help:"Delete one secret"`
}

type SecretFlags struct {
	Prefix    string `help:"secret name prefix" default:"propman/organizations/" env:"PROPMAN_SECRET_PREFIX"`
	RedisAddr string `help:"redis address used to lock bundles during writes; empty disables locking" env:"PROPMAN_REDIS_ADDR"`
}

func (f SecretFlags) open(ctx context.Context, globals *Globals) (*secrets.Store, error) {
	cfg, err := globals.awsConfig(ctx)
	if err != nil {
		return nil, err
	}

	log := globals.logger()
	opts := []secrets.Option{secrets.WithLogger(log)}
	if f.RedisAddr != "" {
		locker, err := lock.Dial(ctx, f.RedisAddr, lock.DefaultConfig())
		if err != nil {
			return nil, err
		}
		opts = append(opts, secrets.WithLocker(locker))
	}

	sc := secrets.DefaultConfig()
	sc.Prefix = f.Prefix
	return secrets.New(secretsmanager.NewFromConfig(cfg), sc, opts...), nil
}

type SecretsGetCmd struct {
	Flags SecretFlags `embed:""`
	Org   string      `arg:"" help:"organization id"`
	Key   string      `arg:"" optional:"" help:"secret key"`
}

func (c *SecretsGetCmd) Run(ctx context.Context, globals *Globals) error {
	s, err := c.Flags.open(ctx, globals)
	if err != nil {
		return err
	}

	if c.Key == "" {
		bundle, err := s.GetSecrets(ctx, c.Org)
		if err != nil {
			return err
		}
		enc := json.NewEncoder(globals.Out)
		enc.SetIndent("", "  ")
		return enc.Encode(bundle)
	}

	value, ok, err := s.GetSecret(ctx, c.Org, c.Key)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("secret %s not set for organization %s", c.Key, c.Org)
	}
	_, err = fmt.Fprintln(globals.Out, value)
	return err
}

type SecretsSetCmd struct {
	Flags SecretFlags `embed:""`
	Org   string      `arg:"" help:"organization id"`
	Key   string      `arg:"" help:"secret key"`
	Value string      `arg:"" help:"secret value"`
}

func (c *SecretsSetCmd) Run(ctx context.Context, globals *Globals) error {
	s, err := c.Flags.open(ctx, globals)
	if err != nil {
		return err
	}
	return s.SetSecret(ctx, c.Org, c.Key, c.Value)
}

type SecretsDeleteCmd struct {
	Flags SecretFlags `embed:""`
	Org   string      `arg:"" help:"organization id"`
	Key   string      `arg:"" help:"secret key"`
}

func (c *SecretsDeleteCmd) Run(ctx context.Context, globals *Globals) error {
	s, err := c.Flags.open(ctx, globals)
	if err != nil {
		return err
	}
	return s.DeleteSecret(ctx, c.Org, c.Key)
}
