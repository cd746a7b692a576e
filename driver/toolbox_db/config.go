package toolbox_db

import (
	"fmt"
	"time"
)

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
	// pool settings
	MaxConns       int32
	MinConns       int32
	MaxConnLife    time.Duration
	ConnectTimeout time.Duration
}

func (dc *DatabaseConfig) BuildConnectionString() string {
	sslMode := dc.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	timeout := int(dc.ConnectTimeout.Seconds())
	if timeout <= 0 {
		timeout = 10
	}
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s search_path=public connect_timeout=%d",
		dc.Host, dc.Port, dc.User, dc.Password, dc.DBName, sslMode, timeout,
	)
}
