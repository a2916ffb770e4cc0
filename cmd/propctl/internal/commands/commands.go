package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/rs/zerolog"

	"github.com/jacentio/propman/internal/logger"
	"github.com/jacentio/propman/store"
)

type Globals struct {
	Debug   bool
	Version string
	Table   string
	Profile string
	Out     io.Writer
	Err     io.Writer
}

func (g *Globals) logger() zerolog.Logger {
	return logger.Setup(g.Debug)
}

func (g *Globals) awsConfig(ctx context.Context) (aws.Config, error) {
	var opts []func(*config.LoadOptions) error
	if g.Profile != "" {
		opts = append(opts, config.WithSharedConfigProfile(g.Profile))
	}
	cfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return aws.Config{}, fmt.Errorf("load aws config: %w", err)
	}
	return cfg, nil
}

func (g *Globals) store(ctx context.Context) (*store.Store, error) {
	cfg, err := g.awsConfig(ctx)
	if err != nil {
		return nil, err
	}
	sc := store.DefaultConfig()
	sc.TableName = g.Table
	return store.New(dynamodb.NewFromConfig(cfg), sc, store.WithLogger(g.logger())), nil
}

// printRecord writes a record as one line of JSON.
func printRecord(w io.Writer, raw map[string]types.AttributeValue) error {
	var out map[string]any
	if err := attributevalue.UnmarshalMap(raw, &out); err != nil {
		return err
	}
	return json.NewEncoder(w).Encode(out)
}
