package config

import (
	"net"
	"strconv"
)

const (
	defaultHost        = "127.0.0.1"
	defaultPort        = 8080
	defaultMonPort     = 8888
	defaultLogLevel    = "info"
	defaultServiceName = "slack-challenge-api"
)

// Settings contains the application config
type Settings struct {
	Host        string `env:"HOST"`
	Port        int    `env:"PORT"`
	MonPort     int    `env:"MON_PORT"`
	EnablePprof bool   `env:"ENABLE_PPROF"`
	LogLevel    string `env:"LOG_LEVEL"`
	ServiceName string `env:"SERVICE_NAME"`
	// LogPayloads logs every received event body at debug level.
	LogPayloads bool `env:"LOG_PAYLOADS"`
}

// ApplyDefaults fills in any setting that was left unset by the environment.
func (s *Settings) ApplyDefaults() {
	if s.Host == "" {
		s.Host = defaultHost
	}
	if s.Port == 0 {
		s.Port = defaultPort
	}
	if s.MonPort == 0 {
		s.MonPort = defaultMonPort
	}
	if s.LogLevel == "" {
		s.LogLevel = defaultLogLevel
	}
	if s.ServiceName == "" {
		s.ServiceName = defaultServiceName
	}
}

// ListenAddr is the address the API server binds to.
func (s *Settings) ListenAddr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// MonitoringAddr is the address the monitoring server binds to.
func (s *Settings) MonitoringAddr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.MonPort))
}
