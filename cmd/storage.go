package cmd

import (
	"context"
	"fmt"
	"time"

	"movie-graph/internal/data/repository"
	"movie-graph/pkg/database"
	"movie-graph/pkg/utils"

	"go.uber.org/zap"
)

// OpenStorage connects the backend selected by STORAGE_DRIVER and returns
// its repositories with a function that releases the connection.
func OpenStorage(config *utils.Config, logger *zap.Logger) (*repository.Repository, func(), error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	switch config.Storage.Driver {
	case utils.StorageMongo:
		db, err := database.InitMongo(config.Mongo)
		if err != nil {
			return nil, nil, err
		}
		if err := database.EnsureMongoIndexes(ctx, db); err != nil {
			logger.Warn("Failed to ensure mongo indexes", zap.Error(err))
		}
		closeFn := func() {
			if err := db.Client().Disconnect(context.Background()); err != nil {
				logger.Warn("Failed to disconnect mongo", zap.Error(err))
			}
		}
		return repository.NewMongoRepository(db, logger), closeFn, nil

	case utils.StoragePostgres:
		db, err := database.InitDB(config.Database)
		if err != nil {
			return nil, nil, err
		}
		if err := database.EnsureSchema(ctx, db); err != nil {
			db.Close()
			return nil, nil, err
		}
		return repository.NewPostgresRepository(db, logger), db.Close, nil

	case utils.StorageMemory:
		return repository.NewMemoryRepository(logger), func() {}, nil
	}

	return nil, nil, fmt.Errorf("unknown storage driver %q", config.Storage.Driver)
}
