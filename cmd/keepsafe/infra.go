package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/redis"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/keepsafe/internal/config"
)

func openDB(c config.Database) (*dbpg.DB, error) {
	opts := &dbpg.Options{
		MaxOpenConns:    c.MaxOpenConns,
		MaxIdleConns:    c.MaxIdleConns,
		ConnMaxLifetime: c.ConnMaxLifetime,
	}

	slaveDSNs := make([]string, 0, len(c.Slaves))
	for _, s := range c.Slaves {
		slaveDSNs = append(slaveDSNs, s.DSN())
	}

	db, err := dbpg.New(c.Master.DSN(), slaveDSNs, opts)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	return db, nil
}

func closeDB(db *dbpg.DB) {
	if err := db.Master.Close(); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to close master DB")
	}

	for i, s := range db.Slaves {
		if err := s.Close(); err != nil {
			zlog.Logger.Error().Err(err).Int("slave", i).Msg("failed to close slave DB")
		}
	}
}

func openRedis(ctx context.Context, c config.Redis) (*redis.Client, error) {
	dbNum, err := strconv.Atoi(c.Database)
	if err != nil {
		return nil, fmt.Errorf("parse redis database: %w", err)
	}

	rdb := redis.New(c.Address, c.Password, dbNum)
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("connect to redis: %w", err)
	}

	return rdb, nil
}
