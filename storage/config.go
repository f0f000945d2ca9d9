package storage

import (
	"net"
	"os"
)

// Fixed addresses used when the environment does not spell out a full target.
// The replica address is deliberately not configurable: deployments name the
// read-only service redis-replica and reads fall back gracefully when no such
// service exists.
const (
	defaultPrimaryHost = "redis-master"
	defaultPrimaryPort = "6379"
	replicaHost        = "redis-replica"
	replicaPort        = "6379"
)

// Config carries the environment-sourced values that select the primary
// store, resolved once at startup and immutable afterwards.
type Config struct {
	Host     string // REDIS_HOST
	Port     string // REDIS_PORT
	Password string // REDIS_PASSWORD

	// MasterServicePort is the service-link variable injected by the
	// orchestrator (REDIS_MASTER_SERVICE_PORT). Its mere presence selects
	// the default primary target.
	MasterServicePort string
}

func ConfigFromEnv() Config {
	return Config{
		Host:              os.Getenv("REDIS_HOST"),
		Port:              os.Getenv("REDIS_PORT"),
		Password:          os.Getenv("REDIS_PASSWORD"),
		MasterServicePort: os.Getenv("REDIS_MASTER_SERVICE_PORT"),
	}
}

// Target identifies one backing store instance.
type Target struct {
	Host     string
	Port     string
	Password string
}

func (t Target) Addr() string {
	return net.JoinHostPort(t.Host, t.Port)
}

// Resolve maps the configuration to the primary's connection target. The
// explicit host/port/password triple wins; the service-link variable alone
// selects the well-known default; anything else resolves to no target at
// all, which is the signal to run on the local fallback store only.
func (c Config) Resolve() (Target, bool) {
	if c.Host != "" && c.Port != "" && c.Password != "" {
		return Target{Host: c.Host, Port: c.Port, Password: c.Password}, true
	}
	if c.MasterServicePort != "" {
		return Target{Host: defaultPrimaryHost, Port: defaultPrimaryPort}, true
	}
	return Target{}, false
}

func replicaTarget() Target {
	return Target{Host: replicaHost, Port: replicaPort}
}
