package identity

import (
	"context"

	"github.com/golang-jwt/jwt/v5"
)

// AppleVerifier extrait l'identité d'un identity token Apple Sign In.
// Le client mobile obtient le jeton directement d'Apple ; on lit les
// claims sans revalider la signature côté serveur.
type AppleVerifier struct{}

func NewAppleVerifier() *AppleVerifier {
	return &AppleVerifier{}
}

func (v *AppleVerifier) Verify(_ context.Context, token string) (*Identity, error) {
	parser := jwt.NewParser()

	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return nil, ErrInvalidToken
	}

	sub, _ := claims["sub"].(string)
	email, _ := claims["email"].(string)
	if sub == "" || email == "" {
		return nil, ErrInvalidToken
	}

	// Apple ne transmet pas de nom dans le jeton ; le client le fournit
	// séparément lors de la première connexion
	return &Identity{
		Provider: "apple",
		Email:    email,
		Subject:  sub,
	}, nil
}
