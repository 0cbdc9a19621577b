// Package identity vérifie les jetons OAuth des fournisseurs externes et
// les réduit à un triplet (email, nom, identifiant sujet).
package identity

import (
	"context"
	"errors"
)

var ErrInvalidToken = errors.New("invalid identity token")

// Identity est le résultat d'une vérification de jeton
type Identity struct {
	Provider string
	Email    string
	Name     string
	Subject  string
}

// Verifier transforme un jeton de fournisseur en identité, ou échoue
type Verifier interface {
	Verify(ctx context.Context, token string) (*Identity, error)
}
