package clouddatabases

import (
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/icholy/digest"
	"github.com/juju/errors"
)

const (
	AuthTypeBearerToken = "bearerToken"
	AuthTypeBasic       = "basic"
	AuthTypeNoAuth      = "noAuth"
	AuthTypeIam         = "iam"
	AuthTypeDigest      = "digest"

	DefaultIamURL = "https://iam.cloud.ibm.com"

	iamGrantTypeAPIKey = "urn:ibm:params:oauth:grant-type:apikey"
	// a token is renewed once it is this close to expiring
	iamRefreshWindow = time.Minute
)

// Authenticator adds credentials to outgoing requests.
type Authenticator interface {
	AuthenticationType() string
	Authenticate(req *http.Request) error
	Validate() error
}

// transportWrapper is implemented by authenticators that need to see the
// response, such as digest, and so work as a RoundTripper.
type transportWrapper interface {
	wrapTransport(inner http.RoundTripper) http.RoundTripper
}

type authTransport struct {
	auth  Authenticator
	inner http.RoundTripper
}

func (t *authTransport) RoundTrip(r *http.Request) (*http.Response, error) {
	req := r.Clone(r.Context())
	if err := t.auth.Authenticate(req); err != nil {
		return nil, errors.Trace(err)
	}
	return t.inner.RoundTrip(req)
}

// newAuthTransport puts auth in front of inner.
func newAuthTransport(auth Authenticator, inner http.RoundTripper) http.RoundTripper {
	if w, ok := auth.(transportWrapper); ok {
		return w.wrapTransport(inner)
	}
	return &authTransport{auth: auth, inner: inner}
}

// hasBadChars reports whether a credential still contains template braces or
// quotes, which usually means it was copied from a sample.
func hasBadChars(v string) bool {
	return strings.ContainsAny(v, "{}\"")
}

type BearerTokenAuthenticator struct {
	BearerToken string
}

func NewBearerTokenAuthenticator(token string) (*BearerTokenAuthenticator, error) {
	a := &BearerTokenAuthenticator{BearerToken: token}
	if err := a.Validate(); err != nil {
		return nil, err
	}
	return a, nil
}

func (*BearerTokenAuthenticator) AuthenticationType() string { return AuthTypeBearerToken }

func (a *BearerTokenAuthenticator) Authenticate(req *http.Request) error {
	req.Header.Set("Authorization", "Bearer "+a.BearerToken)
	return nil
}

func (a *BearerTokenAuthenticator) Validate() error {
	if a.BearerToken == "" {
		return &ArgumentError{Name: "bearer_token"}
	}
	return nil
}

type BasicAuthenticator struct {
	Username string
	Password string
}

func NewBasicAuthenticator(username, password string) (*BasicAuthenticator, error) {
	a := &BasicAuthenticator{Username: username, Password: password}
	if err := a.Validate(); err != nil {
		return nil, err
	}
	return a, nil
}

func (*BasicAuthenticator) AuthenticationType() string { return AuthTypeBasic }

func (a *BasicAuthenticator) Authenticate(req *http.Request) error {
	req.SetBasicAuth(a.Username, a.Password)
	return nil
}

func (a *BasicAuthenticator) Validate() error {
	if a.Username == "" {
		return &ArgumentError{Name: "username"}
	}
	if a.Password == "" {
		return &ArgumentError{Name: "password"}
	}
	if hasBadChars(a.Username) {
		return &ArgumentError{Name: "username", Reason: "contains braces or quotes"}
	}
	if hasBadChars(a.Password) {
		return &ArgumentError{Name: "password", Reason: "contains braces or quotes"}
	}
	return nil
}

// NoAuthAuthenticator sends requests as they are.
type NoAuthAuthenticator struct{}

func NewNoAuthAuthenticator() *NoAuthAuthenticator { return &NoAuthAuthenticator{} }

func (*NoAuthAuthenticator) AuthenticationType() string { return AuthTypeNoAuth }

func (*NoAuthAuthenticator) Authenticate(*http.Request) error { return nil }

func (*NoAuthAuthenticator) Validate() error { return nil }

// DigestAuthenticator answers HTTP digest challenges with a key pair.
type DigestAuthenticator struct {
	Username string
	Password string
}

func NewDigestAuthenticator(username, password string) (*DigestAuthenticator, error) {
	a := &DigestAuthenticator{Username: username, Password: password}
	if err := a.Validate(); err != nil {
		return nil, err
	}
	return a, nil
}

func (*DigestAuthenticator) AuthenticationType() string { return AuthTypeDigest }

// Authenticate does nothing; the digest handshake happens in the transport.
func (*DigestAuthenticator) Authenticate(*http.Request) error { return nil }

func (a *DigestAuthenticator) Validate() error {
	if a.Username == "" {
		return &ArgumentError{Name: "username"}
	}
	if a.Password == "" {
		return &ArgumentError{Name: "password"}
	}
	return nil
}

func (a *DigestAuthenticator) wrapTransport(inner http.RoundTripper) http.RoundTripper {
	return &digest.Transport{
		Username:  a.Username,
		Password:  a.Password,
		Transport: inner,
	}
}

// IamTokenResponse is the body returned by the IAM token endpoint.
type IamTokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires_in"`
	Expiration   int64  `json:"expiration"`
}

// IamAuthenticator exchanges an API key for an IAM access token and caches it
// until shortly before it expires.
type IamAuthenticator struct {
	ApiKey string
	URL    string
	// Client is used for token requests. It must not route through this
	// authenticator.
	Client *resty.Client

	mu      sync.Mutex
	token   string
	expires time.Time
	now     func() time.Time
}

func NewIamAuthenticator(apiKey, iamURL string) (*IamAuthenticator, error) {
	a := &IamAuthenticator{ApiKey: apiKey, URL: iamURL}
	if err := a.Validate(); err != nil {
		return nil, err
	}
	return a, nil
}

func (*IamAuthenticator) AuthenticationType() string { return AuthTypeIam }

func (a *IamAuthenticator) Validate() error {
	if a.ApiKey == "" {
		return &ArgumentError{Name: "apikey"}
	}
	if hasBadChars(a.ApiKey) {
		return &ArgumentError{Name: "apikey", Reason: "contains braces or quotes"}
	}
	return nil
}

func (a *IamAuthenticator) Authenticate(req *http.Request) error {
	token, err := a.GetToken(req)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	return nil
}

// GetToken returns the cached token, requesting a new one when none is cached
// or the cached one is about to expire. req only lends its context.
func (a *IamAuthenticator) GetToken(req *http.Request) (string, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	now := time.Now
	if a.now != nil {
		now = a.now
	}
	if a.token != "" && now().Add(iamRefreshWindow).Before(a.expires) {
		return a.token, nil
	}

	client := a.Client
	if client == nil {
		client = resty.New()
	}
	base := a.URL
	if base == "" {
		base = DefaultIamURL
	}

	var tokenResp IamTokenResponse
	r := client.R().
		SetHeader(headerAccept, mimeJSON).
		SetFormData(map[string]string{
			"grant_type": iamGrantTypeAPIKey,
			"apikey":     a.ApiKey,
		}).
		SetResult(&tokenResp)
	if req != nil {
		r.SetContext(req.Context())
	}
	resp, err := r.Post(strings.TrimSuffix(base, "/") + "/identity/token")
	if err != nil {
		return "", errors.Annotate(err, "requesting IAM token")
	}
	if resp.IsError() {
		return "", errors.Errorf("requesting IAM token failed with status %d: %s", resp.StatusCode(), resp.Body())
	}
	if tokenResp.AccessToken == "" {
		return "", errors.New("IAM token response has no access_token")
	}

	a.token = tokenResp.AccessToken
	a.expires = tokenExpiry(tokenResp)
	return a.token, nil
}

// tokenExpiry prefers the exp claim of the access token and falls back to the
// expiration field of the response.
func tokenExpiry(resp IamTokenResponse) time.Time {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(resp.AccessToken, claims); err == nil {
		if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
			return exp.Time
		}
	}
	if resp.Expiration > 0 {
		return time.Unix(resp.Expiration, 0)
	}
	return time.Time{}
}
