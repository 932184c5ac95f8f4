package database

import (
	"context"
	"fmt"
	"time"

	"github.com/deppfellow/course-apis/internal/config"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// PokemonCollection is the collection backing the pokedex.
const PokemonCollection = "pokemons"

// DocStore holds the MongoDB client and the pokedex database.
type DocStore struct {
	Client   *mongo.Client
	Database *mongo.Database
	log      *zerolog.Logger
}

// NewDocStore connects to MongoDB, pings it and makes sure the pokedex
// unique indexes exist.
func NewDocStore(ctx context.Context, cfg config.MongoConfig, logger *zerolog.Logger) (*DocStore, error) {
	connectCtx, cancel := context.WithTimeout(ctx, DatabasePingTimeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongo: %w", err)
	}

	if err := client.Ping(connectCtx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping mongo: %w", err)
	}

	store := &DocStore{
		Client:   client,
		Database: client.Database(cfg.Database),
		log:      logger,
	}

	if err := store.ensureIndexes(connectCtx); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}

	logger.Info().Str("database", cfg.Database).Msg("connected to mongo")
	return store, nil
}

// ensureIndexes enforces uniqueness of pokemon name and number.
func (s *DocStore) ensureIndexes(ctx context.Context) error {
	_, err := s.Database.Collection(PokemonCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "name", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "no", Value: 1}}, Options: options.Index().SetUnique(true)},
	})
	if err != nil {
		return fmt.Errorf("failed to create pokemon indexes: %w", err)
	}
	return nil
}

// Ping verifies the connection is still usable.
func (s *DocStore) Ping(ctx context.Context) error {
	return s.Client.Ping(ctx, nil)
}

// Close disconnects the client.
func (s *DocStore) Close(ctx context.Context) error {
	s.log.Info().Msg("closing mongo connection")

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return s.Client.Disconnect(ctx)
}
