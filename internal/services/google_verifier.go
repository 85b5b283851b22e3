package services

import (
	"context"
	"crypto/rsa"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"math/big"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	xerrors "github.com/yungbote/coursetube-backend/internal/pkg/errors"
)

// ExternalIdentity is what an identity provider asserts about the caller
// after its credential has been verified.
type ExternalIdentity struct {
	Provider      string
	Sub           string
	Email         string
	EmailVerified bool
	Name          string
	Picture       string
}

// IdentityVerifier turns a raw external credential into a verified identity.
// Exactly one implementation is wired per deployment.
type IdentityVerifier interface {
	Verify(ctx context.Context, rawToken string) (*ExternalIdentity, error)
}

const (
	googleJWKSURL = "https://www.googleapis.com/oauth2/v3/certs"
	jwksCacheTTL  = time.Hour
)

var googleIssuers = []string{"accounts.google.com", "https://accounts.google.com"}

type googleVerifier struct {
	httpClient *http.Client
	clientID   string
	jwksURL    string

	mu        sync.Mutex
	keys      map[string]*rsa.PublicKey
	fetchedAt time.Time
}

func NewGoogleVerifier(httpClient *http.Client, clientID string) (IdentityVerifier, error) {
	if strings.TrimSpace(clientID) == "" {
		return nil, fmt.Errorf("GOOGLE_OIDC_CLIENT_ID is required")
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &googleVerifier{
		httpClient: httpClient,
		clientID:   clientID,
		jwksURL:    googleJWKSURL,
	}, nil
}

// NewRejectingVerifier stands in when no OIDC client ID is configured.
// Every credential is refused, which keeps login failing loudly instead of
// crashing the process on a nil verifier.
func NewRejectingVerifier() IdentityVerifier { return rejectingVerifier{} }

type rejectingVerifier struct{}

func (rejectingVerifier) Verify(context.Context, string) (*ExternalIdentity, error) {
	return nil, fmt.Errorf("identity verification is not configured: %w", xerrors.ErrUnauthorized)
}

func (v *googleVerifier) Verify(ctx context.Context, rawToken string) (*ExternalIdentity, error) {
	if strings.TrimSpace(rawToken) == "" {
		return nil, fmt.Errorf("missing id token: %w", xerrors.ErrUnauthorized)
	}

	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{"RS256"}),
		jwt.WithAudience(v.clientID),
		jwt.WithExpirationRequired(),
	)

	claims := jwt.MapClaims{}
	_, err := parser.ParseWithClaims(rawToken, claims, func(t *jwt.Token) (interface{}, error) {
		kid, _ := t.Header["kid"].(string)
		if kid == "" {
			return nil, fmt.Errorf("id token has no kid header")
		}
		return v.keyForKid(ctx, kid)
	})
	if err != nil {
		return nil, fmt.Errorf("google id token rejected: %w: %w", xerrors.ErrUnauthorized, err)
	}

	iss, _ := claims["iss"].(string)
	if !issuerAllowed(iss) {
		return nil, fmt.Errorf("google id token issuer %q not trusted: %w", iss, xerrors.ErrUnauthorized)
	}
	sub, _ := claims["sub"].(string)
	if sub == "" {
		return nil, fmt.Errorf("google id token has no subject: %w", xerrors.ErrUnauthorized)
	}

	out := &ExternalIdentity{
		Provider: "google",
		Sub:      sub,
	}
	out.Email, _ = claims["email"].(string)
	out.Name, _ = claims["name"].(string)
	out.Picture, _ = claims["picture"].(string)
	switch ev := claims["email_verified"].(type) {
	case bool:
		out.EmailVerified = ev
	case string:
		out.EmailVerified = ev == "true"
	}
	return out, nil
}

func issuerAllowed(iss string) bool {
	for _, allowed := range googleIssuers {
		if iss == allowed {
			return true
		}
	}
	return false
}

func (v *googleVerifier) keyForKid(ctx context.Context, kid string) (*rsa.PublicKey, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if key, ok := v.keys[kid]; ok && time.Since(v.fetchedAt) < jwksCacheTTL {
		return key, nil
	}

	keys, err := v.fetchJWKS(ctx)
	if err != nil {
		return nil, err
	}
	v.keys = keys
	v.fetchedAt = time.Now()

	key, ok := v.keys[kid]
	if !ok {
		return nil, fmt.Errorf("no JWKS key for kid %q", kid)
	}
	return key, nil
}

type jwksDocument struct {
	Keys []struct {
		Kty string `json:"kty"`
		Kid string `json:"kid"`
		N   string `json:"n"`
		E   string `json:"e"`
	} `json:"keys"`
}

func (v *googleVerifier) fetchJWKS(ctx context.Context) (map[string]*rsa.PublicKey, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, v.jwksURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build JWKS request: %w", err)
	}
	resp, err := v.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch google JWKS: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("google JWKS status %d", resp.StatusCode)
	}

	var doc jwksDocument
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode google JWKS: %w", err)
	}

	keys := make(map[string]*rsa.PublicKey, len(doc.Keys))
	for _, k := range doc.Keys {
		if k.Kty != "RSA" || k.Kid == "" {
			continue
		}
		pub, err := rsaKeyFromJWK(k.N, k.E)
		if err != nil {
			return nil, fmt.Errorf("parse JWKS key %q: %w", k.Kid, err)
		}
		keys[k.Kid] = pub
	}
	if len(keys) == 0 {
		return nil, fmt.Errorf("google JWKS contained no usable keys")
	}
	return keys, nil
}

func rsaKeyFromJWK(n, e string) (*rsa.PublicKey, error) {
	nb, err := base64.RawURLEncoding.DecodeString(n)
	if err != nil {
		return nil, fmt.Errorf("modulus: %w", err)
	}
	eb, err := base64.RawURLEncoding.DecodeString(e)
	if err != nil {
		return nil, fmt.Errorf("exponent: %w", err)
	}
	return &rsa.PublicKey{
		N: new(big.Int).SetBytes(nb),
		E: int(new(big.Int).SetBytes(eb).Int64()),
	}, nil
}
