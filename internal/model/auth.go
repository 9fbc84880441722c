package model

// AuthType discriminates the authentication variants of a request.
type AuthType string

// The supported authentication variants.
const (
	AuthNone   AuthType = "none"
	AuthBasic  AuthType = "basic"
	AuthBearer AuthType = "bearer"
	AuthAPIKey AuthType = "apikey"
	AuthDigest AuthType = "digest"
	AuthOAuth2 AuthType = "oauth2"
	AuthAWS    AuthType = "aws"
)

// Auth is the authentication configuration of a request.
//
// Exactly one variant payload is meaningful, selected by Type. The payload
// pointers for inactive variants are nil, so a variant's fields cannot be
// read while another variant is active.
//
// The zero value means no authentication.
type Auth struct {
	Type   AuthType    `json:"type,omitempty" toml:"type,omitempty" yaml:"type,omitempty"`
	Basic  *BasicAuth  `json:"basic,omitempty" toml:"basic,omitempty" yaml:"basic,omitempty"`
	Bearer *BearerAuth `json:"bearer,omitempty" toml:"bearer,omitempty" yaml:"bearer,omitempty"`
	APIKey *APIKeyAuth `json:"apikey,omitempty" toml:"apikey,omitempty" yaml:"apikey,omitempty"`
	Digest *DigestAuth `json:"digest,omitempty" toml:"digest,omitempty" yaml:"digest,omitempty"`
	OAuth2 *OAuth2Auth `json:"oauth2,omitempty" toml:"oauth2,omitempty" yaml:"oauth2,omitempty"`
	AWS    *AWSAuth    `json:"aws,omitempty" toml:"aws,omitempty" yaml:"aws,omitempty"`
}

// BasicAuth is the payload for HTTP basic authentication.
type BasicAuth struct {
	Username string `json:"username" toml:"username" yaml:"username"`
	Password string `json:"password" toml:"password" yaml:"password"`
}

// BearerAuth is the payload for bearer token authentication.
type BearerAuth struct {
	Token string `json:"token" toml:"token" yaml:"token"`
}

// APIKeyAuth is the payload for API key authentication.
type APIKeyAuth struct {
	Key   string `json:"key" toml:"key" yaml:"key"`
	Value string `json:"value" toml:"value" yaml:"value"`

	// Placement is where the key is carried, "header" or "query".
	Placement string `json:"placement,omitempty" toml:"placement,omitempty" yaml:"placement,omitempty"`
}

// DigestAuth is the payload for HTTP digest authentication.
type DigestAuth struct {
	Username string `json:"username" toml:"username" yaml:"username"`
	Password string `json:"password" toml:"password" yaml:"password"`
}

// OAuth2Auth is the payload for OAuth2 flows. It is serialised to .http
// text as a group of meta directives rather than as a header.
type OAuth2Auth struct {
	GrantType    string `json:"grantType" toml:"grantType" yaml:"grantType"`
	TokenURL     string `json:"tokenUrl" toml:"tokenUrl" yaml:"tokenUrl"`
	ClientID     string `json:"clientId" toml:"clientId" yaml:"clientId"`
	ClientSecret string `json:"clientSecret,omitempty" toml:"clientSecret,omitempty" yaml:"clientSecret,omitempty"`
	Scope        string `json:"scope,omitempty" toml:"scope,omitempty" yaml:"scope,omitempty"`
}

// AWSAuth is the payload for AWS signature authentication.
type AWSAuth struct {
	AccessKey string `json:"accessKey" toml:"accessKey" yaml:"accessKey"`
	SecretKey string `json:"secretKey" toml:"secretKey" yaml:"secretKey"`
	Region    string `json:"region,omitempty" toml:"region,omitempty" yaml:"region,omitempty"`
	Service   string `json:"service,omitempty" toml:"service,omitempty" yaml:"service,omitempty"`
}
