package config

import (
	"errors"
	"fmt"
	"os"
)

var (
	errEnvVarNotFound error = errors.New("environment variable not found")
	errInvalidBackend error = errors.New("invalid transaction log backend")
)

const (
	apiPortEnvKey      = "API_PORT"
	ethNodeEnvKey      = "ETH_NODE_URL"
	artifactEnvKey     = "CONTRACT_ARTIFACT_PATH"
	txLogBackendEnvKey = "TXLOG_BACKEND"
	txLogPathEnvKey    = "TXLOG_PATH"
	dbConnEnvKey       = "DB_CONNECTION_URL"
)

const (
	BackendBadger   = "badger"
	BackendPostgres = "postgres"

	defaultTxLogPath = "./data/txlog"
)

type App struct {
	Port            string
	NodeURL         string
	ArtifactPath    string
	TxLogBackend    string
	TxLogPath       string
	DBConnectionURL string
}

func NewAppConfig() (App, error) {
	port, ok := os.LookupEnv(apiPortEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, apiPortEnvKey)
	}

	nodeURL, ok := os.LookupEnv(ethNodeEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, ethNodeEnvKey)
	}

	artifactPath, ok := os.LookupEnv(artifactEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, artifactEnvKey)
	}

	backend := lookupEnvOr(txLogBackendEnvKey, BackendBadger)

	app := App{
		Port:         port,
		NodeURL:      nodeURL,
		ArtifactPath: artifactPath,
		TxLogBackend: backend,
		TxLogPath:    lookupEnvOr(txLogPathEnvKey, defaultTxLogPath),
	}

	switch backend {
	case BackendBadger:
	case BackendPostgres:
		dbConn, ok := os.LookupEnv(dbConnEnvKey)
		if !ok {
			return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, dbConnEnvKey)
		}
		app.DBConnectionURL = dbConn
	default:
		return App{}, fmt.Errorf("%w: %q", errInvalidBackend, backend)
	}

	return app, nil
}

func lookupEnvOr(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}
