package sigv4

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"
)

type clock func() time.Time

func systemClock() clock {
	return func() time.Time {
		return time.Now().UTC()
	}
}

// Credentials holds authentication details.
type Credentials struct {
	Account string
	Secret  string
}

// FromEnvironment reads credentials from the conventional variables.
func FromEnvironment() Credentials {
	return Credentials{
		Account: os.Getenv("AWS_ACCESS_KEY_ID"),
		Secret:  os.Getenv("AWS_SECRET_ACCESS_KEY"),
	}
}

// Complete reports whether both parts of the credentials are present.
func (c Credentials) Complete() bool {
	return len(c.Account) > 0 && len(c.Secret) > 0
}

// Request is the outcome of a signing attempt. Signed reports whether
// Headers carries an authorization; when false the caller should perform an
// unauthenticated request against URL, which is returned untouched.
type Request struct {
	URL     string
	Headers map[string]string
	Signed  bool
}

// Signer authorizes unsigned-payload GET requests against the storage
// service. It holds no mutable state and may be shared across goroutines.
type Signer struct {
	region      string
	credentials Credentials
	time        clock
}

// New returns a Signer scoped to the region. An empty region selects
// DefaultRegion.
func New(region string, credentials Credentials) Signer {
	if len(region) == 0 {
		region = DefaultRegion
	}
	return Signer{
		region:      region,
		credentials: credentials,
		time:        systemClock(),
	}
}

// Sign authorizes a GET of the given object URL. Incomplete credentials are
// not an error: the request comes back unsigned and the caller proceeds
// without authentication.
func (s Signer) Sign(rawURL string) (*Request, error) {
	if !s.credentials.Complete() {
		return &Request{URL: rawURL}, nil
	}

	endpoint, err := ParseEndpoint(rawURL, s.region)
	if err != nil {
		return nil, err
	}

	auth := newAuthorization(s.time(), endpoint)

	return &Request{
		URL: endpoint.URL(),
		Headers: map[string]string{
			header.date:          auth.time,
			header.contentHash:   UnsignedPayload,
			header.authorization: auth.authorize(s.credentials),
			header.requestPayer:  "requester",
		},
		Signed: true,
	}, nil
}

type authHeaders struct {
	signed    string
	canonical string
}

func newAuthHeaders(host, time string) authHeaders {
	names := []string{"host", header.contentHash, header.date, header.requestPayer}
	values := []string{host, UnsignedPayload, time, "requester"}

	var sb strings.Builder
	for i, name := range names {
		sb.WriteString(name)
		sb.WriteRune(':')
		sb.WriteString(values[i])
		sb.WriteRune('\n')
	}
	return authHeaders{strings.Join(names, ";"), sb.String()}
}

type authRequest struct {
	uri     string
	headers authHeaders
}

func (a authRequest) text() string {
	return strings.Join([]string{
		http.MethodGet,
		a.uri,
		"",
		a.headers.canonical,
		a.headers.signed,
		UnsignedPayload,
	}, "\n")
}

func (a authRequest) hash() string {
	return fmt.Sprintf("%x", sha256.Sum256([]byte(a.text())))
}

type authScope struct {
	date   string
	region string
}

func (s authScope) text() string {
	return strings.Join([]string{s.date, s.region, service, requestType}, "/")
}

type authorization struct {
	time    string
	scope   authScope
	request authRequest
}

func newAuthorization(now time.Time, endpoint Endpoint) authorization {
	stamp := now.Format(TimeFormat)
	return authorization{
		time:  stamp,
		scope: authScope{now.Format(DateFormat), endpoint.Region},
		request: authRequest{
			uri:     "/" + endpoint.Key,
			headers: newAuthHeaders(endpoint.Host, stamp),
		},
	}
}

func (a authorization) sign(secret string) string {
	text := strings.Join([]string{
		SignAlgorithm,
		a.time,
		a.scope.text(),
		a.request.hash(),
	}, "\n")

	hmac := []byte("AWS4" + secret)
	hmac = hash(hmac, a.scope.date)
	hmac = hash(hmac, a.scope.region)
	hmac = hash(hmac, service)
	hmac = hash(hmac, requestType)
	return hex.EncodeToString(hash(hmac, text))
}

func (a authorization) authorize(c Credentials) string {
	var sb strings.Builder
	sb.WriteString(SignAlgorithm)
	sb.WriteRune(' ')
	sb.WriteString("Credential=")
	sb.WriteString(c.Account)
	sb.WriteRune('/')
	sb.WriteString(a.scope.text())
	sb.WriteString(", ")
	sb.WriteString("SignedHeaders=")
	sb.WriteString(a.request.headers.signed)
	sb.WriteString(", ")
	sb.WriteString("Signature=")
	sb.WriteString(a.sign(c.Secret))
	return sb.String()
}

func hash(key []byte, data string) []byte {
	hash := hmac.New(sha256.New, key)
	hash.Write([]byte(data))
	return hash.Sum(nil)
}
