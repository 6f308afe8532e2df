package clouddatabases

import (
	"fmt"
	"log"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/juju/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/viper"
)

const (
	DefaultServiceURL     = "https://api.us-south.databases.cloud.ibm.com/v5/ibm"
	DefaultRegion         = "us-south"
	DefaultPlatform       = "ibm"
	serviceURLTemplate    = "https://api.%s.databases.cloud.ibm.com/v5/%s"
	credentialsFileEnv    = "IBM_CREDENTIALS_FILE"
	defaultCredentialFile = "ibm-credentials.env"
)

var urlSegment = regexp.MustCompile(`^[a-z0-9][a-z0-9-]*$`)

// Config holds everything needed to build a CloudDatabasesV5.
type Config struct {
	// ServiceURL defaults to DefaultServiceURL.
	ServiceURL    string
	Authenticator Authenticator
	// UserAgent, when set, replaces the User-Agent of every request.
	UserAgent      string
	DefaultHeaders http.Header
	// HTTPClient supplies the base transport and timeout.
	HTTPClient *http.Client
	Logger     resty.Logger
	// Debug logs each request and its payload through Logger.
	Debug bool
	// Registerer, when set, receives request count and duration metrics.
	Registerer prometheus.Registerer
}

// CloudDatabasesV5 is the client of the Cloud Databases v5 API. It is safe for
// concurrent use.
type CloudDatabasesV5 struct {
	serviceURL     string
	authenticator  Authenticator
	defaultHeaders http.Header
	client         *resty.Client
	logger         resty.Logger
	debug          bool
}

func NewCloudDatabasesV5(cfg *Config) (*CloudDatabasesV5, error) {
	if cfg == nil {
		return nil, &ArgumentError{Name: "config", Reason: "cannot be nil"}
	}
	if cfg.Authenticator == nil {
		return nil, &ArgumentError{Name: "authenticator", Reason: "cannot be nil"}
	}
	if err := cfg.Authenticator.Validate(); err != nil {
		return nil, errors.Trace(err)
	}

	serviceURL := cfg.ServiceURL
	if serviceURL == "" {
		serviceURL = DefaultServiceURL
	}
	if _, err := validateServiceURL(serviceURL); err != nil {
		return nil, err
	}

	httpClient := &http.Client{}
	var inner http.RoundTripper = http.DefaultTransport
	if cfg.HTTPClient != nil {
		*httpClient = *cfg.HTTPClient
		if cfg.HTTPClient.Transport != nil {
			inner = cfg.HTTPClient.Transport
		}
	}

	rt := newAuthTransport(cfg.Authenticator, inner)
	if cfg.UserAgent != "" {
		rt = NewTransportWithAgent(rt, cfg.UserAgent)
	}
	if cfg.Registerer != nil {
		var err error
		rt, err = instrumentTransport(cfg.Registerer, rt)
		if err != nil {
			return nil, err
		}
	}
	httpClient.Transport = rt

	logger := cfg.Logger
	if logger == nil {
		logger = newStdLogger()
	}
	client := resty.NewWithClient(httpClient).SetLogger(logger)

	return &CloudDatabasesV5{
		serviceURL:     strings.TrimSuffix(serviceURL, "/"),
		authenticator:  cfg.Authenticator,
		defaultHeaders: cfg.DefaultHeaders.Clone(),
		client:         client,
		logger:         logger,
		debug:          cfg.Debug,
	}, nil
}

func (c *CloudDatabasesV5) GetServiceURL() string {
	return c.serviceURL
}

func (c *CloudDatabasesV5) GetAuthenticator() Authenticator {
	return c.authenticator
}

func validateServiceURL(serviceURL string) (*url.URL, error) {
	u, err := url.ParseRequestURI(serviceURL)
	if err != nil {
		return nil, errors.Annotatef(err, "service URL %q", serviceURL)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, errors.NotValidf("service URL %q", serviceURL)
	}
	return u, nil
}

// ConstructServiceURL returns the service URL of region on platform. Empty
// values take DefaultRegion and DefaultPlatform.
func ConstructServiceURL(region, platform string) (string, error) {
	if region == "" {
		region = DefaultRegion
	}
	if platform == "" {
		platform = DefaultPlatform
	}
	if !urlSegment.MatchString(region) {
		return "", &ArgumentError{Name: "region", Reason: "is not a valid region name"}
	}
	if !urlSegment.MatchString(platform) {
		return "", &ArgumentError{Name: "platform", Reason: "is not a valid platform name"}
	}
	return fmt.Sprintf(serviceURLTemplate, region, platform), nil
}

// ExternalConfig is the configuration of a service read from the environment
// and the credentials file.
type ExternalConfig struct {
	URL         string
	AuthType    string
	ApiKey      string
	BearerToken string
	Username    string
	Password    string
	AuthURL     string
	Region      string
	Platform    string
}

// LoadExternalConfig reads the properties of serviceName, e.g.
// CLOUD_DATABASES_APIKEY for "cloud_databases". Environment variables win
// over the credentials file.
func LoadExternalConfig(serviceName string) (*ExternalConfig, error) {
	if serviceName == "" {
		return nil, &ArgumentError{Name: "service_name"}
	}
	v := viper.New()
	v.AutomaticEnv()

	if file := credentialsFile(); file != "" {
		v.SetConfigFile(file)
		v.SetConfigType("env")
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Annotatef(err, "reading %s", file)
		}
	}

	prefix := strings.ToLower(strings.ReplaceAll(serviceName, "-", "_")) + "_"
	get := func(prop string) string {
		return strings.TrimSpace(v.GetString(prefix + prop))
	}
	return &ExternalConfig{
		URL:         get("url"),
		AuthType:    get("auth_type"),
		ApiKey:      get("apikey"),
		BearerToken: get("bearer_token"),
		Username:    get("username"),
		Password:    get("password"),
		AuthURL:     get("auth_url"),
		Region:      get("region"),
		Platform:    get("platform"),
	}, nil
}

func credentialsFile() string {
	if file := os.Getenv(credentialsFileEnv); file != "" {
		return file
	}
	candidates := []string{defaultCredentialFile}
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, defaultCredentialFile))
	}
	for _, file := range candidates {
		if _, err := os.Stat(file); err == nil {
			return file
		}
	}
	return ""
}

// Authenticator builds the authenticator the configuration describes. Without
// an explicit auth type the first available credential decides.
func (e *ExternalConfig) Authenticator() (Authenticator, error) {
	authType := e.AuthType
	if authType == "" {
		switch {
		case e.ApiKey != "":
			authType = AuthTypeIam
		case e.BearerToken != "":
			authType = AuthTypeBearerToken
		case e.Username != "" || e.Password != "":
			authType = AuthTypeBasic
		default:
			return nil, errors.NotFoundf("credentials")
		}
	}
	switch strings.ToLower(authType) {
	case strings.ToLower(AuthTypeIam):
		return NewIamAuthenticator(e.ApiKey, e.AuthURL)
	case strings.ToLower(AuthTypeBearerToken):
		return NewBearerTokenAuthenticator(e.BearerToken)
	case strings.ToLower(AuthTypeBasic):
		return NewBasicAuthenticator(e.Username, e.Password)
	case strings.ToLower(AuthTypeDigest):
		return NewDigestAuthenticator(e.Username, e.Password)
	case strings.ToLower(AuthTypeNoAuth):
		return NewNoAuthAuthenticator(), nil
	}
	return nil, errors.NotSupportedf("auth type %q", authType)
}

// ServiceURL returns the explicit URL, or the one built from region and
// platform, or DefaultServiceURL.
func (e *ExternalConfig) ServiceURL() (string, error) {
	if e.URL != "" {
		return e.URL, nil
	}
	if e.Region != "" || e.Platform != "" {
		return ConstructServiceURL(e.Region, e.Platform)
	}
	return DefaultServiceURL, nil
}

// NewCloudDatabasesV5UsingExternalConfig builds a client from the external
// configuration of ServiceName. Fields set on cfg take precedence.
func NewCloudDatabasesV5UsingExternalConfig(cfg *Config) (*CloudDatabasesV5, error) {
	var c Config
	if cfg != nil {
		c = *cfg
	}
	ext, err := LoadExternalConfig(ServiceName)
	if err != nil {
		return nil, err
	}
	if c.Authenticator == nil {
		if c.Authenticator, err = ext.Authenticator(); err != nil {
			return nil, err
		}
	}
	if c.ServiceURL == "" {
		if c.ServiceURL, err = ext.ServiceURL(); err != nil {
			return nil, err
		}
	}
	return NewCloudDatabasesV5(&c)
}

// stdLogger is the default resty.Logger.
type stdLogger struct {
	l *log.Logger
}

func newStdLogger() *stdLogger {
	return &stdLogger{l: log.New(os.Stderr, "", log.LstdFlags)}
}

func (s *stdLogger) Errorf(format string, v ...interface{}) {
	s.l.Printf("ERROR "+format, v...)
}

func (s *stdLogger) Warnf(format string, v ...interface{}) {
	s.l.Printf("WARN "+format, v...)
}

func (s *stdLogger) Debugf(format string, v ...interface{}) {
	s.l.Printf("DEBUG "+format, v...)
}
