package credentials

import (
	"encoding/pem"
	"errors"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

// Recognized environment keys.
const (
	KeyProjectID    = "PROJECT_ID"
	KeyClientEmail  = "CLIENT_EMAIL"
	KeyPrivateKey   = "PRIVATE_KEY"
	KeyPrivateKeyID = "PRIVATE_KEY_ID"
	KeyClientID     = "CLIENT_ID"
)

const certURLBase = "https://certs.salone.app/x509/"

// ServiceIdentity is the credential bundle a tool authenticates itself with.
// Built once per process, never mutated.
type ServiceIdentity struct {
	ProjectID    string
	ClientEmail  string
	PrivateKey   string // multi-line PEM, cert + key
	PrivateKeyID string
	ClientID     string
	CertURL      string // derived, see CertURL
}

// ConfigError reports every broken required key at once so the operator fixes
// the env file in a single pass.
type ConfigError struct {
	Missing   []string
	Malformed []string
}

func (e *ConfigError) Error() string {
	var parts []string
	if len(e.Missing) > 0 {
		parts = append(parts, "missing: "+strings.Join(e.Missing, ", "))
	}
	if len(e.Malformed) > 0 {
		parts = append(parts, "malformed: "+strings.Join(e.Malformed, ", "))
	}
	return "configuration error: " + strings.Join(parts, "; ")
}

// LoadEnv loads .env.local (falling back to .env) from the working directory
// or its parent, so the tools work both from the project root and from a
// scripts subdirectory. A missing file is fine; the variables may already be
// exported.
func LoadEnv() {
	for _, name := range []string{".env.local", ".env"} {
		for _, dir := range []string{".", ".."} {
			path := filepath.Join(dir, name)
			if _, err := os.Stat(path); err != nil {
				continue
			}
			if err := godotenv.Load(path); err != nil {
				log.Printf("could not load %s: %v", path, err)
				continue
			}
			log.Printf("environment loaded from %s", path)
			return
		}
	}
}

// Resolve assembles a ServiceIdentity from the lookup (normally os.Getenv).
// All required keys are checked before returning so the error names every
// problem, not just the first.
func Resolve(lookup func(string) string) (*ServiceIdentity, error) {
	id := &ServiceIdentity{
		ProjectID:    strings.TrimSpace(lookup(KeyProjectID)),
		ClientEmail:  strings.TrimSpace(lookup(KeyClientEmail)),
		PrivateKey:   ExpandNewlines(lookup(KeyPrivateKey)),
		PrivateKeyID: lookup(KeyPrivateKeyID),
		ClientID:     lookup(KeyClientID),
	}

	cerr := &ConfigError{}
	if id.ProjectID == "" {
		cerr.Missing = append(cerr.Missing, KeyProjectID)
	}
	if id.ClientEmail == "" {
		cerr.Missing = append(cerr.Missing, KeyClientEmail)
	}
	switch {
	case id.PrivateKey == "":
		cerr.Missing = append(cerr.Missing, KeyPrivateKey)
	case !HasPEMDelimiters(id.PrivateKey):
		cerr.Malformed = append(cerr.Malformed, KeyPrivateKey)
	}
	if len(cerr.Missing) > 0 || len(cerr.Malformed) > 0 {
		return nil, cerr
	}

	id.CertURL = CertURL(id.ClientEmail)
	return id, nil
}

// ExpandNewlines turns the literal two-character sequence \n into real line
// breaks. Service keys travel through env files as single-line values and must
// be reconstituted before use.
func ExpandNewlines(s string) string {
	return strings.ReplaceAll(s, `\n`, "\n")
}

// HasPEMDelimiters is a shape check, not a parse; good enough to catch a key
// pasted without its armor.
func HasPEMDelimiters(key string) bool {
	return strings.Contains(key, "-----BEGIN") && strings.Contains(key, "-----END")
}

// CertURL derives the platform certificate-lookup endpoint for an identity by
// percent-encoding the @ in its client email. Pure derivation, no network.
func CertURL(clientEmail string) string {
	return certURLBase + strings.ReplaceAll(clientEmail, "@", "%40")
}

// PrivateKeyBlock returns the PEM block holding the private key. Identity PEMs
// bundle the client certificate and the key in one value; callers that only
// sign need the key block alone.
func PrivateKeyBlock(pemData string) (string, error) {
	rest := []byte(pemData)
	for {
		var block *pem.Block
		block, rest = pem.Decode(rest)
		if block == nil {
			return "", errors.New("no private key block found in PEM data")
		}
		if strings.Contains(block.Type, "PRIVATE KEY") {
			return string(pem.EncodeToMemory(block)), nil
		}
	}
}
