package config

import (
	"fmt"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github/chapool/cosmos-wallet/internal/util"
	"github/chapool/cosmos-wallet/internal/wallet/store"
)

// SignerURLLocal runs the development signer inside the server process.
const SignerURLLocal = "local"

type EchoServer struct {
	Debug                          bool
	ListenAddress                  string
	HideInternalServerErrorDetails bool
	BaseURL                        string
	EnableCORSMiddleware           bool
	EnableLoggerMiddleware         bool
	EnableRecoverMiddleware        bool
	EnableRequestIDMiddleware      bool
	EnableTrailingSlashMiddleware  bool
}

type LoggerServer struct {
	Level              zerolog.Level
	RequestLevel       zerolog.Level
	LogRequestHeader   bool
	LogResponseHeader  bool
	PrettyPrintConsole bool
}

type ManagementServer struct {
	Secret           string `json:"-"`
	ReadinessTimeout time.Duration
	LivenessTimeout  time.Duration
}

type AuthServer struct {
	JWTSecret string `json:"-"`
	Issuer    string
	TokenTTL  time.Duration
}

type PrometheusServer struct {
	Enabled bool
	Path    string
}

// Wallet configures the signing and broadcast collaborators. BroadcastServiceID
// and ECDSAKey are nil when the variables are absent: they act as init
// arguments on first start and as overrides after a restart.
type Wallet struct {
	BroadcastServiceID     *string
	ECDSAKey               *string
	SignerURL              string
	LocalSignerMnemonic    string `json:"-"`
	LocalSignerPassphrase  string `json:"-"`
	LocalSignerKeystore    string
	DevSignerListenAddress string
}

type Database struct {
	Host             string
	Port             int
	Username         string
	Password         string `json:"-"`
	Database         string
	AdditionalParams map[string]string `json:",omitempty"`
	MaxOpenConns     int
	MaxIdleConns     int
	ConnMaxLifetime  time.Duration
}

// ConnectionString builds a lib/pq key/value DSN.
func (c Database) ConnectionString() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s", c.Host, c.Port, c.Username, c.Password, c.Database))

	keys := make([]string, 0, len(c.AdditionalParams))
	for k := range c.AdditionalParams {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		b.WriteString(fmt.Sprintf(" %s=%s", k, c.AdditionalParams[k]))
	}

	return b.String()
}

// Redacted returns the DSN as a URL without the password, for logs.
func (c Database) Redacted() string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.User(c.Username),
		Host:   fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:   c.Database,
	}

	return u.String()
}

type Store struct {
	Driver   string
	Dir      string
	Postgres Database
}

type Server struct {
	Echo       EchoServer
	Logger     LoggerServer
	Management ManagementServer
	Auth       AuthServer
	Prometheus PrometheusServer
	Wallet     Wallet
	Store      Store
}

// DefaultServiceConfigFromEnv returns the server config as parsed from environment variables
// and their respective defaults defined below.
// We don't expect that ENV_VARs change while we are running our application or our tests
// (and it would be a bad thing to do anyways with parallel testing).
// Do NOT use os.Setenv / os.Unsetenv in tests utilizing DefaultServiceConfigFromEnv()!
func DefaultServiceConfigFromEnv() Server {
	v := newEnv()

	return Server{
		Echo: EchoServer{
			Debug:                          getBool(v, "SERVER_ECHO_DEBUG", false),
			ListenAddress:                  getString(v, "SERVER_ECHO_LISTEN_ADDRESS", ":8080"),
			HideInternalServerErrorDetails: getBool(v, "SERVER_ECHO_HIDE_INTERNAL_SERVER_ERROR_DETAILS", true),
			BaseURL:                        getString(v, "SERVER_ECHO_BASE_URL", "http://localhost:8080"),
			EnableCORSMiddleware:           getBool(v, "SERVER_ECHO_ENABLE_CORS_MIDDLEWARE", true),
			EnableLoggerMiddleware:         getBool(v, "SERVER_ECHO_ENABLE_LOGGER_MIDDLEWARE", true),
			EnableRecoverMiddleware:        getBool(v, "SERVER_ECHO_ENABLE_RECOVER_MIDDLEWARE", true),
			EnableRequestIDMiddleware:      getBool(v, "SERVER_ECHO_ENABLE_REQUEST_ID_MIDDLEWARE", true),
			EnableTrailingSlashMiddleware:  getBool(v, "SERVER_ECHO_ENABLE_TRAILING_SLASH_MIDDLEWARE", true),
		},
		Logger: LoggerServer{
			Level:              util.LogLevelFromString(getString(v, "SERVER_LOGGER_LEVEL", zerolog.DebugLevel.String()), zerolog.DebugLevel),
			RequestLevel:       util.LogLevelFromString(getString(v, "SERVER_LOGGER_REQUEST_LEVEL", zerolog.DebugLevel.String()), zerolog.DebugLevel),
			LogRequestHeader:   getBool(v, "SERVER_LOGGER_LOG_REQUEST_HEADER", false),
			LogResponseHeader:  getBool(v, "SERVER_LOGGER_LOG_RESPONSE_HEADER", false),
			PrettyPrintConsole: getBool(v, "SERVER_LOGGER_PRETTY_PRINT_CONSOLE", false),
		},
		Management: ManagementServer{
			Secret:           getString(v, "SERVER_MANAGEMENT_SECRET", "mgmt-secret"),
			ReadinessTimeout: time.Second * time.Duration(getInt(v, "SERVER_MANAGEMENT_READINESS_TIMEOUT_SEC", 4)),
			LivenessTimeout:  time.Second * time.Duration(getInt(v, "SERVER_MANAGEMENT_LIVENESS_TIMEOUT_SEC", 9)),
		},
		Auth: AuthServer{
			JWTSecret: getString(v, "SERVER_AUTH_JWT_SECRET", "change-me-in-production"),
			Issuer:    getString(v, "SERVER_AUTH_ISSUER", "cosmos-wallet"),
			TokenTTL:  time.Second * time.Duration(getInt(v, "SERVER_AUTH_TOKEN_TTL_SEC", 3600)),
		},
		Prometheus: PrometheusServer{
			Enabled: getBool(v, "SERVER_PROMETHEUS_ENABLED", true),
			Path:    getString(v, "SERVER_PROMETHEUS_PATH", "/metrics"),
		},
		Wallet: Wallet{
			BroadcastServiceID:     getOptionalString(v, "WALLET_BROADCAST_SERVICE_ID"),
			ECDSAKey:               getOptionalString(v, "WALLET_ECDSA_KEY"),
			SignerURL:              getString(v, "WALLET_SIGNER_URL", SignerURLLocal),
			LocalSignerMnemonic:    getString(v, "WALLET_LOCAL_SIGNER_MNEMONIC", ""),
			LocalSignerPassphrase:  getString(v, "WALLET_LOCAL_SIGNER_PASSPHRASE", ""),
			LocalSignerKeystore:    getString(v, "WALLET_LOCAL_SIGNER_KEYSTORE", ""),
			DevSignerListenAddress: getString(v, "WALLET_DEV_SIGNER_LISTEN_ADDRESS", ":8545"),
		},
		Store: Store{
			Driver: getString(v, "WALLET_STORE_DRIVER", store.DriverBadger),
			Dir:    getString(v, "WALLET_STORE_DIR", "/app/data/state"),
			Postgres: Database{
				Host:     getString(v, "PGHOST", "postgres"),
				Port:     getInt(v, "PGPORT", 5432),
				Username: getString(v, "PGUSER", "dbuser"),
				Password: getString(v, "PGPASSWORD", ""),
				Database: getString(v, "PGDATABASE", "wallet"),
				AdditionalParams: map[string]string{
					"sslmode": getString(v, "PGSSLMODE", "disable"),
				},
				MaxOpenConns:    getInt(v, "DB_MAX_OPEN_CONNS", 8),
				MaxIdleConns:    getInt(v, "DB_MAX_IDLE_CONNS", 2),
				ConnMaxLifetime: time.Second * time.Duration(getInt(v, "DB_CONN_MAX_LIFETIME_SEC", 60)),
			},
		},
	}
}
