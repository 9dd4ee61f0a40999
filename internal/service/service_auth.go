package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-taxii/internal/config"
	"github.com/MKhiriev/go-taxii/internal/logger"
	"github.com/MKhiriev/go-taxii/internal/store"
	"github.com/MKhiriev/go-taxii/internal/utils"
	"github.com/MKhiriev/go-taxii/models"
)

// authService is the concrete implementation of AuthService.
// It checks credentials against the accounts written by reconciliation and
// issues HS256 JWTs whose subject is the account id.
type authService struct {
	// accounts is the data-access layer used to look up accounts.
	accounts store.AccountRepository

	// hasher verifies candidate passwords against stored hashes.
	hasher utils.PasswordHasher

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// AccountRepository and populated with token parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(accounts store.AccountRepository, hasher utils.PasswordHasher, cfg config.App, log *logger.Logger) AuthService {
	return &authService{
		accounts:      accounts,
		hasher:        hasher,
		tokenSignKey:  cfg.TokenSignKey,
		tokenIssuer:   cfg.TokenIssuer,
		tokenDuration: cfg.TokenDuration,
		logger:        log,
	}
}

// Login verifies credentials and issues a token.
//
// Unknown usernames and wrong passwords both yield ErrWrongPassword so that
// callers cannot tell which accounts exist.
func (a *authService) Login(ctx context.Context, credentials models.Credentials) (models.Token, error) {
	log := logger.FromContext(ctx)

	if credentials.Username == "" || credentials.Password == "" {
		log.Debug().Str("func", "authService.Login").Msg("empty credentials provided")
		return models.Token{}, fmt.Errorf("%w: username and password are required", ErrValidation)
	}

	account, err := a.accounts.GetAccountByUsername(ctx, credentials.Username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Debug().Str("username", credentials.Username).Msg("login for unknown account")
			return models.Token{}, ErrWrongPassword
		}
		log.Err(err).Str("func", "authService.Login").Msg("account lookup failed")
		return models.Token{}, mapStoreError(err)
	}

	if !a.hasher.Verify(account.PasswordHash, credentials.Password) {
		log.Debug().Int64("id", account.ID).Str("username", account.Username).Msg("wrong password")
		return models.Token{}, ErrWrongPassword
	}

	token, err := utils.GenerateJWTToken(a.tokenIssuer, account.ID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		log.Err(err).Str("func", "authService.Login").Msg("token generation failed")
		return models.Token{}, fmt.Errorf("error creating token: %w", err)
	}

	return token, nil
}

// Authenticate resolves a raw bearer token to its account.
//
// Any token failure (expired, wrong issuer, malformed, deleted account) is
// normalised to ErrUnauthenticated wrapping ErrInvalidToken.
func (a *authService) Authenticate(ctx context.Context, tokenString string) (*models.Account, error) {
	log := logger.FromContext(ctx)

	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		log.Debug().Err(err).Msg("token rejected")
		return nil, fmt.Errorf("%w: %w", ErrUnauthenticated, ErrInvalidToken)
	}

	account, err := a.accounts.GetAccountByID(ctx, token.AccountID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Debug().Int64("id", token.AccountID).Msg("token of a removed account")
			return nil, fmt.Errorf("%w: %w", ErrUnauthenticated, ErrInvalidToken)
		}
		log.Err(err).Str("func", "authService.Authenticate").Msg("account lookup failed")
		return nil, mapStoreError(err)
	}

	return &account, nil
}
