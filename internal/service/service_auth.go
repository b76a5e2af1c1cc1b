package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-todo-keeper/internal/config"
	"github.com/MKhiriev/go-todo-keeper/internal/crypto"
	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/internal/store"
	"github.com/MKhiriev/go-todo-keeper/internal/utils"
	"github.com/MKhiriev/go-todo-keeper/internal/validators"
	"github.com/MKhiriev/go-todo-keeper/models"
)

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification and the JWT
// lifecycle on top of a UserRepository and a PasswordHasher.
type authService struct {
	userRepository store.UserRepository
	hasher         crypto.PasswordHasher
	idGenerator    IDGenerator
	validator      validators.Validator

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService. All state is read-only after
// construction, so the service is safe for concurrent use.
func NewAuthService(userRepository store.UserRepository, hasher crypto.PasswordHasher, idGenerator IDGenerator, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		hasher:         hasher,
		idGenerator:    idGenerator,
		validator:      validators.NewUserValidator(),
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

// RegisterUser creates a new account.
//
// FullName, Email and Password must be present. The email is normalized,
// checked for uniqueness and the password is replaced by its digest before
// the user is stored.
//
// Returns the stored user or:
//   - ErrInvalidDataProvided if a required field is missing or the password
//     is too long to hash.
//   - ErrEmailAlreadyInUse if the email is taken, whether the lookup or the
//     unique constraint detected it.
//   - A wrapped error for any other failure.
func (a *authService) RegisterUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, user, validators.SignupFields...); err != nil {
		log.Err(err).Str("email", user.Email).Msg("invalid user data provided")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	user.Email = models.NormalizeEmail(user.Email)

	_, err := a.userRepository.FindUserByEmail(ctx, user.Email)
	switch {
	case err == nil:
		log.Info().Str("email", user.Email).Msg("email is already in use")
		return models.User{}, ErrEmailAlreadyInUse
	case !errors.Is(err, store.ErrNoUserWasFound):
		log.Err(err).Str("email", user.Email).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	passwordHash, err := a.hasher.Hash(user.Password)
	if err != nil {
		if errors.Is(err, crypto.ErrPasswordTooLong) {
			log.Info().Str("email", user.Email).Msg("password is too long")
			return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
		}
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	user.UserID = a.idGenerator.Generate()
	user.PasswordHash = passwordHash
	user.Password = ""

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		if errors.Is(err, store.ErrEmailAlreadyExists) {
			log.Info().Str("email", user.Email).Msg("email was taken concurrently")
			return models.User{}, fmt.Errorf("%w: %w", ErrEmailAlreadyInUse, err)
		}
		log.Err(err).Str("email", user.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an existing user by email and password.
//
// Returns the stored user or:
//   - ErrInvalidDataProvided if Email or Password is missing.
//   - ErrUserNotFound if no account has the email.
//   - ErrInvalidCredentials if the password does not match.
func (a *authService) Login(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, user, validators.LoginFields...); err != nil {
		log.Err(err).Str("email", user.Email).Msg("invalid user data provided")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	email := models.NormalizeEmail(user.Email)

	foundUser, err := a.userRepository.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			log.Info().Str("email", email).Msg("user not found")
			return models.User{}, fmt.Errorf("%w: %w", ErrUserNotFound, err)
		}
		log.Err(err).Str("email", email).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if !a.hasher.Verify(user.Password, foundUser.PasswordHash) {
		log.Info().Str("id", foundUser.UserID).Msg("wrong password")
		return models.User{}, ErrInvalidCredentials
	}

	return foundUser, nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token carries the user id as subject and expires after the
// configured token duration.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.UserID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("id", user.UserID).Msg("token creation failed")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates a raw JWT string and returns the identity it carries.
//
// An expired token yields ErrTokenIsExpired; any other failure (bad
// signature, wrong issuer, malformed input) yields
// ErrTokenIsExpiredOrInvalid. Callers never see low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("token rejected")
		if errors.Is(err, utils.ErrJWTExpired) {
			return models.Token{}, ErrTokenIsExpired
		}
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
