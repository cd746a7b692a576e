package toolbox_db

import (
	"context"
	"fmt"

	"toolbox/utils/logger"

	"github.com/jackc/pgx/v5/pgxpool"
)

func InitDBConnectionPool(ctx context.Context, dc *DatabaseConfig) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(dc.BuildConnectionString())
	if err != nil {
		return nil, fmt.Errorf("parse database config: %w", err)
	}
	if dc.MaxConns > 0 {
		poolConfig.MaxConns = dc.MaxConns
	}
	if dc.MinConns > 0 {
		poolConfig.MinConns = dc.MinConns
	}
	if dc.MaxConnLife > 0 {
		poolConfig.MaxConnLifetime = dc.MaxConnLife
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		logger.Logger.Error("Failed to create database pool", "error", err)
		return nil, fmt.Errorf("create pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		logger.Logger.Error("Failed to ping database", "error", err)
		return nil, fmt.Errorf("ping database: %w", err)
	}

	logger.Logger.Info("Connected to database",
		"database", dc.DBName,
		"max_conns", poolConfig.MaxConns,
		"min_conns", poolConfig.MinConns)

	return pool, nil
}
