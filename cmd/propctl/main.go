package main

import (
	"context"
	"os"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"

	"github.com/jacentio/propman/cmd/propctl/internal/commands"
)

var (
	version = "dev"
	cli     struct {
		Debug   bool   `help:"Enable debug mode."`
		Table   string `help:"DynamoDB table name" default:"propman" env:"PROPMAN_TABLE"`
		Profile string `help:"AWS shared config profile" env:"AWS_PROFILE"`
		Version kong.VersionFlag
		Schema  commands.SchemaCmd  `cmd:"" help:"Print the key schema registry"`
		Get     commands.GetCmd     `cmd:"" help:"Get one record by primary key"`
		List    commands.ListCmd    `cmd:"" help:"List records through an access pattern"`
		Secrets commands.SecretsCmd `cmd:"" help:"Manage organization secrets"`
	}
)

func main() {
	// .env is optional; real environment variables take precedence.
	_ = godotenv.Load()

	ctx := context.Background()
	cmd := kong.Parse(&cli,
		kong.Vars{
			"version": version,
		},
		kong.BindTo(ctx, (*context.Context)(nil)))
	err := cmd.Run(&commands.Globals{
		Debug:   cli.Debug,
		Version: version,
		Table:   cli.Table,
		Profile: cli.Profile,
		Out:     os.Stdout,
		Err:     os.Stderr,
	})
	cmd.FatalIfErrorf(err)
}
