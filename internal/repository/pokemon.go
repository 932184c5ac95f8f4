package repository

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"github.com/deppfellow/course-apis/internal/database"
	"github.com/deppfellow/course-apis/internal/model/pokemon"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// DuplicateKeyError is returned when a write hits a unique index.
// KeyValue is the offending key as Mongo prints it: { name: "bulbasaur" }.
type DuplicateKeyError struct {
	KeyValue string
	err      error
}

func (e *DuplicateKeyError) Error() string {
	return "duplicate key " + e.KeyValue
}

func (e *DuplicateKeyError) Unwrap() error {
	return e.err
}

var dupKeyRegex = regexp.MustCompile(`dup key: (\{.*\})`)

// duplicateKey converts a Mongo E11000 error into a DuplicateKeyError and
// passes any other error through.
func duplicateKey(err error) error {
	if !mongo.IsDuplicateKeyError(err) {
		return err
	}

	dup := &DuplicateKeyError{err: err}
	if m := dupKeyRegex.FindStringSubmatch(err.Error()); m != nil {
		dup.KeyValue = m[1]
	}
	return dup
}

// PokemonRepository stores pokemon in the "pokemons" collection.
type PokemonRepository struct {
	coll *mongo.Collection
}

func NewPokemonRepository(db *mongo.Database) *PokemonRepository {
	return &PokemonRepository{coll: db.Collection(database.PokemonCollection)}
}

// Create inserts p and sets its ID.
func (r *PokemonRepository) Create(ctx context.Context, p *pokemon.Pokemon) error {
	res, err := r.coll.InsertOne(ctx, p)
	if err != nil {
		return fmt.Errorf("insert pokemon: %w", duplicateKey(err))
	}

	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		p.ID = id
	}
	return nil
}

// FindAll pages through pokemon ordered by number.
func (r *PokemonRepository) FindAll(ctx context.Context, limit, offset int) ([]pokemon.Pokemon, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "no", Value: 1}}).
		SetLimit(int64(limit)).
		SetSkip(int64(offset))

	cur, err := r.coll.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("find pokemon: %w", err)
	}

	list := []pokemon.Pokemon{}
	if err := cur.All(ctx, &list); err != nil {
		return nil, fmt.Errorf("decode pokemon: %w", err)
	}
	return list, nil
}

func (r *PokemonRepository) FindByNo(ctx context.Context, no int) (*pokemon.Pokemon, error) {
	return r.findOne(ctx, bson.D{{Key: "no", Value: no}})
}

func (r *PokemonRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*pokemon.Pokemon, error) {
	return r.findOne(ctx, bson.D{{Key: "_id", Value: id}})
}

func (r *PokemonRepository) FindByName(ctx context.Context, name string) (*pokemon.Pokemon, error) {
	return r.findOne(ctx, bson.D{{Key: "name", Value: name}})
}

func (r *PokemonRepository) findOne(ctx context.Context, filter bson.D) (*pokemon.Pokemon, error) {
	var p pokemon.Pokemon
	if err := r.coll.FindOne(ctx, filter).Decode(&p); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find pokemon: %w", err)
	}
	return &p, nil
}

// Update applies set to the pokemon with id and returns the new document.
func (r *PokemonRepository) Update(ctx context.Context, id primitive.ObjectID, set bson.M) (*pokemon.Pokemon, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var p pokemon.Pokemon
	err := r.coll.FindOneAndUpdate(ctx, bson.D{{Key: "_id", Value: id}}, bson.M{"$set": set}, opts).Decode(&p)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("update pokemon: %w", duplicateKey(err))
	}
	return &p, nil
}

// DeleteByID returns the number of deleted documents.
func (r *PokemonRepository) DeleteByID(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := r.coll.DeleteOne(ctx, bson.D{{Key: "_id", Value: id}})
	if err != nil {
		return 0, fmt.Errorf("delete pokemon: %w", err)
	}
	return res.DeletedCount, nil
}

func (r *PokemonRepository) DeleteAll(ctx context.Context) error {
	if _, err := r.coll.DeleteMany(ctx, bson.D{}); err != nil {
		return fmt.Errorf("delete all pokemon: %w", err)
	}
	return nil
}

// InsertMany writes list in a single ordered batch.
func (r *PokemonRepository) InsertMany(ctx context.Context, list []pokemon.Pokemon) error {
	if len(list) == 0 {
		return nil
	}

	docs := make([]interface{}, len(list))
	for i := range list {
		docs[i] = list[i]
	}

	if _, err := r.coll.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("insert pokemon batch: %w", duplicateKey(err))
	}
	return nil
}
