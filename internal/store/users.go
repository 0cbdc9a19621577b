package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/LingoLeap/LingoLeap-backend/internal/database"
	"github.com/LingoLeap/LingoLeap-backend/internal/logger"
	model "github.com/LingoLeap/LingoLeap-backend/internal/models"
	"github.com/LingoLeap/LingoLeap-backend/internal/scanner"
	"github.com/jackc/pgx/v5"
)

// ErrUserNotFound : aucun utilisateur pour cet email ou ce couple OAuth
var ErrUserNotFound = errors.New("user not found")

// Users est le magasin d'identités : un compte par email, un seul couple
// (provider, subject) OAuth par compte
type Users interface {
	ByEmail(ctx context.Context, email string) (*model.UserProfile, error)
	ByEmailWithPassword(ctx context.Context, email string) (*model.UserProfile, string, error)
	ByOAuth(ctx context.Context, provider, subject string) (*model.UserProfile, error)
	Create(ctx context.Context, user *model.UserProfile, passwordHash string) (*model.UserProfile, error)
	Update(ctx context.Context, user *model.UserProfile) error
	UsernameTaken(ctx context.Context, username string) (bool, error)
	AddBadge(ctx context.Context, email, badge string) error
	SetAvatar(ctx context.Context, email, avatarURL string) error
}

// PostgresUsers implémente Users sur la table users
type PostgresUsers struct{}

func NewPostgresUsers() *PostgresUsers {
	return &PostgresUsers{}
}

const userColumns = `id, email, username, avatar, native_language, target_language, level,
	provider, badges, join_date, created_at, updated_at`

func (s *PostgresUsers) ByEmail(ctx context.Context, email string) (*model.UserProfile, error) {
	row := database.DB.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE email=$1 AND deleted_at IS NULL`,
		email,
	)
	user, err := scanner.ScanUserProfile(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("could not fetch user: %w", err)
	}
	return user, nil
}

func (s *PostgresUsers) ByEmailWithPassword(ctx context.Context, email string) (*model.UserProfile, string, error) {
	row := database.DB.QueryRow(ctx,
		`SELECT `+userColumns+`, COALESCE(password_hash, '')
		 FROM users WHERE email=$1 AND deleted_at IS NULL`,
		email,
	)
	user, hash, err := scanner.ScanUserProfileWithPassword(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, "", ErrUserNotFound
	}
	if err != nil {
		return nil, "", fmt.Errorf("could not fetch user: %w", err)
	}
	return user, hash, nil
}

func (s *PostgresUsers) ByOAuth(ctx context.Context, provider, subject string) (*model.UserProfile, error) {
	row := database.DB.QueryRow(ctx,
		`SELECT `+userColumns+`
		 FROM users WHERE provider=$1 AND oauth_subject=$2 AND deleted_at IS NULL`,
		provider, subject,
	)
	user, err := scanner.ScanUserProfile(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("could not fetch oauth user: %w", err)
	}
	return user, nil
}

func (s *PostgresUsers) Create(ctx context.Context, user *model.UserProfile, passwordHash string) (*model.UserProfile, error) {
	logger.Info("creating user %s via %s", user.Email, user.Provider)

	row := database.DB.QueryRow(ctx,
		`INSERT INTO users(email, username, password_hash, avatar, native_language,
			target_language, level, provider, oauth_subject, join_date, created_at, updated_at)
		 VALUES($1, NULLIF($2, ''), NULLIF($3, ''), $4, $5, $6, $7, $8, NULLIF($9, ''), NOW(), NOW(), NOW())
		 RETURNING `+userColumns,
		user.Email, user.Username, passwordHash, user.Avatar, user.NativeLanguage,
		user.TargetLanguage, user.Level, user.Provider, user.OAuthSubject,
	)
	created, err := scanner.ScanUserProfile(row)
	if err != nil {
		return nil, fmt.Errorf("could not create user: %w", err)
	}
	return created, nil
}

func (s *PostgresUsers) Update(ctx context.Context, user *model.UserProfile) error {
	_, err := database.DB.Exec(ctx,
		`UPDATE users
		 SET username=NULLIF($2, ''), avatar=$3, native_language=$4,
			target_language=$5, level=$6, updated_at=NOW()
		 WHERE email=$1 AND deleted_at IS NULL`,
		user.Email, user.Username, user.Avatar, user.NativeLanguage,
		user.TargetLanguage, user.Level,
	)
	if err != nil {
		return fmt.Errorf("could not update user: %w", err)
	}
	return nil
}

func (s *PostgresUsers) UsernameTaken(ctx context.Context, username string) (bool, error) {
	var taken bool
	err := database.DB.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM users WHERE LOWER(username)=LOWER($1) AND deleted_at IS NULL)`,
		username,
	).Scan(&taken)
	if err != nil {
		return false, fmt.Errorf("could not check username: %w", err)
	}
	return taken, nil
}

func (s *PostgresUsers) AddBadge(ctx context.Context, email, badge string) error {
	_, err := database.DB.Exec(ctx,
		`UPDATE users SET badges = array_append(badges, $2), updated_at=NOW()
		 WHERE email=$1 AND NOT ($2 = ANY(badges)) AND deleted_at IS NULL`,
		email, badge,
	)
	if err != nil {
		return fmt.Errorf("could not add badge: %w", err)
	}
	return nil
}

func (s *PostgresUsers) SetAvatar(ctx context.Context, email, avatarURL string) error {
	_, err := database.DB.Exec(ctx,
		`UPDATE users SET avatar=$2, updated_at=NOW() WHERE email=$1 AND deleted_at IS NULL`,
		email, avatarURL,
	)
	if err != nil {
		return fmt.Errorf("could not update avatar: %w", err)
	}
	return nil
}

// SuggestUsername propose un username libre à partir d'une base : la base
// elle-même, puis base2, base3...
func SuggestUsername(ctx context.Context, users Users, base string) (string, error) {
	base = strings.ToLower(strings.TrimSpace(base))
	if base == "" {
		base = "learner"
	}

	taken, err := users.UsernameTaken(ctx, base)
	if err != nil {
		return "", err
	}
	if !taken {
		return base, nil
	}
	for i := 2; i < 100; i++ {
		candidate := fmt.Sprintf("%s%d", base, i)
		taken, err := users.UsernameTaken(ctx, candidate)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("no free username for base %q", base)
}
