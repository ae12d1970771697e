package auth

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"log/slog"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
)

var (
	ErrEmailTaken         = errors.New("email already in use")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type Service struct {
	store      Store
	secret     []byte
	adminEmail string
	logger     *slog.Logger
}

func NewService(store Store, secret, adminEmail string, logger *slog.Logger) *Service {
	return &Service{
		store:      store,
		secret:     []byte(secret),
		adminEmail: NormalizeEmail(adminEmail),
		logger:     logger,
	}
}

// Register normalizes the draft's email, hashes its cleartext password, and
// persists it. A duplicate email reports ErrEmailTaken whether it is caught
// by the availability check or by the unique constraint at insert.
func (s *Service) Register(ctx context.Context, u *User, password string) (*User, error) {
	normalized := NormalizeEmail(u.Email)

	available, err := IsEmailAvailable(ctx, s.store, u.Email)
	if err != nil {
		s.logger.Error("check email availability", "email", normalized, "err", err)
		return nil, fmt.Errorf("check email availability: %w", err)
	}
	if !available {
		s.logger.Warn("registration rejected, email exists", "email", normalized)
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	u.Email = normalized
	u.PasswordHash = string(hash)
	if err := s.store.Create(ctx, u); err != nil {
		if errors.Is(err, ErrEmailTaken) {
			s.logger.Warn("registration lost insert race", "email", normalized)
			return nil, ErrEmailTaken
		}
		s.logger.Error("create user", "email", normalized, "err", err)
		return nil, fmt.Errorf("create user: %w", err)
	}
	s.logger.Info("user registered", "email", normalized)
	return u, nil
}

// Login verifies the credentials and returns a signed bearer token. Every
// failure collapses to ErrInvalidCredentials so callers cannot enumerate
// accounts. Admins may only sign in as the configured administrator identity.
func (s *Service) Login(ctx context.Context, email, password string) (string, error) {
	normalized := NormalizeEmail(email)
	user, err := s.store.GetByEmail(ctx, normalized)
	if err != nil {
		return "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}
	if user.Role == RoleAdmin && !strings.EqualFold(normalized, s.adminEmail) {
		s.logger.Warn("admin login rejected for non-admin identity", "email", normalized)
		return "", ErrInvalidCredentials
	}
	return s.issueToken(user)
}

// UpdateProfile applies a partial profile patch to the user identified by the
// authenticated subject email.
func (s *Service) UpdateProfile(ctx context.Context, email string, patch ProfileUpdate) (*User, error) {
	user, err := s.store.GetByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		return nil, err
	}
	user.apply(patch)
	if err := s.store.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

type Claims struct {
	Email string `json:"email"`
	Role  Role   `json:"role"`
	jwt.RegisteredClaims
}

func (s *Service) issueToken(user *User) (string, error) {
	now := time.Now().UTC()
	claims := Claims{
		Email: user.Email,
		Role:  user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.Email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(24 * time.Hour)),
		},
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString(s.secret)
}

func (s *Service) ParseToken(tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}

type usersFile struct {
	Users []struct {
		Email    string `yaml:"email"`
		Password string `yaml:"password"`
		Role     Role   `yaml:"role"`
		Name     string `yaml:"name"`
	} `yaml:"users"`
}

// SeedFromFile registers the users listed in a YAML file, skipping rows whose
// email is already taken. Used at boot to provision the administrator account.
func (s *Service) SeedFromFile(ctx context.Context, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var uf usersFile
	if err := yaml.Unmarshal(data, &uf); err != nil {
		return err
	}
	for _, row := range uf.Users {
		if row.Email == "" || row.Password == "" {
			continue
		}
		u := &User{Email: row.Email, Role: row.Role, Name: row.Name}
		if _, err := s.Register(ctx, u, row.Password); err != nil {
			if errors.Is(err, ErrEmailTaken) {
				continue
			}
			return err
		}
	}
	return nil
}
