package utils

import (
	"fmt"
	"net/url"
)

// DefaultAvatarURL retourne un avatar DiceBear "initials" pour un nouvel
// utilisateur, avant tout upload
func DefaultAvatarURL(displayName string) string {
	return fmt.Sprintf("https://api.dicebear.com/7.x/initials/svg?seed=%s",
		url.QueryEscape(displayName))
}
