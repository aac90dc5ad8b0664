package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"salone/credentials"
)

// CustomToken mints a short-lived RS256 token for uid, signed with the service
// identity's private key. Creation tools print it so a fresh admin has a
// first-login credential before setting up a real session.
func CustomToken(id *credentials.ServiceIdentity, uid string) (string, error) {
	keyPEM, err := credentials.PrivateKeyBlock(id.PrivateKey)
	if err != nil {
		return "", err
	}
	key, err := jwt.ParseRSAPrivateKeyFromPEM([]byte(keyPEM))
	if err != nil {
		return "", fmt.Errorf("parse signing key: %w", err)
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub": uid,
		"iss": id.ClientEmail,
		"aud": id.ProjectID,
		"iat": now.Unix(),
		"exp": now.Add(time.Hour).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(key)
}
