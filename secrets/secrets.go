// Package secrets stores one bundle of string secrets per organization in AWS Secrets
// Manager.
//
// A bundle is a JSON object held in a secret named Prefix + organization id + Suffix.
// Secrets Manager has no upsert, so writes try PutSecretValue and fall back to
// CreateSecret when the secret does not exist yet.
//
// Writes are read-merge-write. Without a Locker two concurrent writers to the same
// organization can lose one of the updates; configure WithLocker to serialize them.
package secrets

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager/types"
	"github.com/rs/zerolog"
)

var (
	// ErrMalformedBundle is returned when a stored bundle is not a JSON object of strings.
	ErrMalformedBundle = errors.New("propman: malformed secret bundle")

	// ErrInvalidOrganization is returned for an empty organization id.
	ErrInvalidOrganization = errors.New("propman: invalid organization id")
)

// API is the subset of *secretsmanager.Client used by the Store.
type API interface {
	GetSecretValue(ctx context.Context, params *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error)
	PutSecretValue(ctx context.Context, params *secretsmanager.PutSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.PutSecretValueOutput, error)
	CreateSecret(ctx context.Context, params *secretsmanager.CreateSecretInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.CreateSecretOutput, error)
}

var _ API = (*secretsmanager.Client)(nil)

// Config holds the secret naming convention.
type Config struct {
	// Prefix is prepended to the organization id.
	// Default: "propman/organizations/"
	Prefix string

	// Suffix is appended to the organization id.
	// Default: "/secrets"
	Suffix string
}

// DefaultConfig returns the naming convention used by the propman services.
func DefaultConfig() Config {
	return Config{
		Prefix: "propman/organizations/",
		Suffix: "/secrets",
	}
}

func (c *Config) validate() {
	if c.Prefix == "" {
		c.Prefix = DefaultConfig().Prefix
	}
	if c.Suffix == "" {
		c.Suffix = DefaultConfig().Suffix
	}
}

// Store manages organization secret bundles.
type Store struct {
	client API
	config Config
	locker Locker
	logger zerolog.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithLocker serializes writes to the same bundle.
func WithLocker(l Locker) Option {
	return func(s *Store) { s.locker = l }
}

// WithLogger sets the logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Store) { s.logger = logger }
}

// New creates a Store.
func New(client API, config Config, opts ...Option) *Store {
	config.validate()
	s := &Store{
		client: client,
		config: config,
		locker: NopLocker{},
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Name returns the secret name of an organization's bundle.
func (s *Store) Name(orgID string) string {
	return s.config.Prefix + orgID + s.config.Suffix
}

// GetSecrets returns an organization's bundle. An organization without a bundle has no
// secrets, which is not an error.
func (s *Store) GetSecrets(ctx context.Context, orgID string) (map[string]string, error) {
	if orgID == "" {
		return nil, ErrInvalidOrganization
	}
	bundle, _, err := s.read(ctx, s.Name(orgID))
	return bundle, err
}

// GetSecret returns one secret. ok is false when the secret is not set.
func (s *Store) GetSecret(ctx context.Context, orgID, key string) (value string, ok bool, err error) {
	bundle, err := s.GetSecrets(ctx, orgID)
	if err != nil {
		return "", false, err
	}
	value, ok = bundle[key]
	return value, ok, nil
}

// SetSecret sets one secret, creating the bundle if needed.
func (s *Store) SetSecret(ctx context.Context, orgID, key, value string) error {
	if orgID == "" {
		return ErrInvalidOrganization
	}
	name := s.Name(orgID)

	unlock, err := s.locker.Lock(ctx, name)
	if err != nil {
		return fmt.Errorf("lock %s: %w", name, err)
	}
	defer s.release(ctx, name, unlock)

	bundle, _, err := s.read(ctx, name)
	if err != nil {
		return err
	}
	bundle[key] = value

	data, err := json.Marshal(bundle)
	if err != nil {
		return err
	}

	_, err = s.client.PutSecretValue(ctx, &secretsmanager.PutSecretValueInput{
		SecretId:     aws.String(name),
		SecretString: aws.String(string(data)),
	})
	if !notFound(err) {
		if err == nil {
			s.logger.Debug().Str("secret", name).Str("key", key).Msg("secret updated")
		}
		return err
	}

	_, err = s.client.CreateSecret(ctx, &secretsmanager.CreateSecretInput{
		Name:         aws.String(name),
		SecretString: aws.String(string(data)),
	})
	var exists *types.ResourceExistsException
	if errors.As(err, &exists) {
		// Another writer created the bundle first; merge into theirs.
		return s.overwrite(ctx, name, key, value)
	}
	if err != nil {
		return err
	}
	s.logger.Debug().Str("secret", name).Str("key", key).Msg("secret bundle created")
	return nil
}

// overwrite merges key into the current bundle and puts it, without a create fallback.
func (s *Store) overwrite(ctx context.Context, name, key, value string) error {
	bundle, _, err := s.read(ctx, name)
	if err != nil {
		return err
	}
	bundle[key] = value

	data, err := json.Marshal(bundle)
	if err != nil {
		return err
	}
	if _, err := s.client.PutSecretValue(ctx, &secretsmanager.PutSecretValueInput{
		SecretId:     aws.String(name),
		SecretString: aws.String(string(data)),
	}); err != nil {
		return err
	}
	s.logger.Debug().Str("secret", name).Str("key", key).Msg("secret updated after concurrent create")
	return nil
}

// DeleteSecret removes one secret. Removing from a missing bundle, or removing a key
// that is not set, does nothing.
func (s *Store) DeleteSecret(ctx context.Context, orgID, key string) error {
	if orgID == "" {
		return ErrInvalidOrganization
	}
	name := s.Name(orgID)

	unlock, err := s.locker.Lock(ctx, name)
	if err != nil {
		return fmt.Errorf("lock %s: %w", name, err)
	}
	defer s.release(ctx, name, unlock)

	bundle, exists, err := s.read(ctx, name)
	if err != nil {
		return err
	}
	if _, ok := bundle[key]; !exists || !ok {
		return nil
	}
	delete(bundle, key)

	data, err := json.Marshal(bundle)
	if err != nil {
		return err
	}
	_, err = s.client.PutSecretValue(ctx, &secretsmanager.PutSecretValueInput{
		SecretId:     aws.String(name),
		SecretString: aws.String(string(data)),
	})
	if notFound(err) {
		return nil
	}
	if err == nil {
		s.logger.Debug().Str("secret", name).Str("key", key).Msg("secret deleted")
	}
	return err
}

// read fetches and parses a bundle. A missing secret yields an empty bundle and
// exists=false.
func (s *Store) read(ctx context.Context, name string) (bundle map[string]string, exists bool, err error) {
	out, err := s.client.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
		SecretId: aws.String(name),
	})
	if notFound(err) {
		return map[string]string{}, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	if out.SecretString == nil {
		return nil, true, fmt.Errorf("%w: %s has no string value", ErrMalformedBundle, name)
	}

	if err := json.Unmarshal([]byte(*out.SecretString), &bundle); err != nil {
		return nil, true, fmt.Errorf("%w: %s: %v", ErrMalformedBundle, name, err)
	}
	if bundle == nil {
		bundle = map[string]string{}
	}
	return bundle, true, nil
}

func (s *Store) release(ctx context.Context, name string, unlock func(context.Context) error) {
	if err := unlock(context.WithoutCancel(ctx)); err != nil {
		s.logger.Warn().Err(err).Str("secret", name).Msg("failed to release secret lock")
	}
}

func notFound(err error) bool {
	var nf *types.ResourceNotFoundException
	return errors.As(err, &nf)
}
