package scanner

import (
	"database/sql"

	model "github.com/LingoLeap/LingoLeap-backend/internal/models"
	"github.com/LingoLeap/LingoLeap-backend/internal/utils"
	"github.com/lib/pq"
)

// ScanUserProfile scanne une ligne SQL vers un UserProfile.
// Convertit les colonnes nullables via les types sql.Null* et le tableau
// badges via pq.Array.
func ScanUserProfile(scanner interface {
	Scan(dest ...interface{}) error
}) (*model.UserProfile, error) {
	var user model.UserProfile
	var username, avatar, native, target, level, provider sql.NullString

	err := scanner.Scan(
		&user.ID, &user.Email, &username, &avatar, &native, &target, &level,
		&provider, pq.Array(&user.Badges),
		&user.JoinDate, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	user.Username = utils.NullStringToString(username)
	user.Avatar = utils.NullStringToString(avatar)
	user.NativeLanguage = utils.NullStringToString(native)
	user.TargetLanguage = utils.NullStringToString(target)
	user.Level = utils.NullStringToString(level)
	user.Provider = utils.NullStringToString(provider)
	if user.Provider == "" {
		user.Provider = "email"
	}

	return &user, nil
}

// ScanUserProfileWithPassword scanne un UserProfile suivi du hash du mot
// de passe (dernière colonne)
func ScanUserProfileWithPassword(scanner interface {
	Scan(dest ...interface{}) error
}) (*model.UserProfile, string, error) {
	var user model.UserProfile
	var username, avatar, native, target, level, provider sql.NullString
	var passwordHash string

	err := scanner.Scan(
		&user.ID, &user.Email, &username, &avatar, &native, &target, &level,
		&provider, pq.Array(&user.Badges),
		&user.JoinDate, &user.CreatedAt, &user.UpdatedAt,
		&passwordHash,
	)
	if err != nil {
		return nil, "", err
	}

	user.Username = utils.NullStringToString(username)
	user.Avatar = utils.NullStringToString(avatar)
	user.NativeLanguage = utils.NullStringToString(native)
	user.TargetLanguage = utils.NullStringToString(target)
	user.Level = utils.NullStringToString(level)
	user.Provider = utils.NullStringToString(provider)
	if user.Provider == "" {
		user.Provider = "email"
	}

	return &user, passwordHash, nil
}

// ScanXPTransaction scanne une ligne SQL vers une XPTransaction
func ScanXPTransaction(scanner interface {
	Scan(dest ...interface{}) error
}) (*model.XPTransaction, error) {
	var tx model.XPTransaction

	err := scanner.Scan(
		&tx.ID, &tx.Email, &tx.Amount, &tx.Source, pq.Array(&tx.Tags), &tx.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &tx, nil
}
