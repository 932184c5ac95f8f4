package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/deppfellow/course-apis/internal/errs"
	"github.com/deppfellow/course-apis/internal/model/pokemon"
	"github.com/deppfellow/course-apis/internal/repository"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type PokemonService struct {
	store        PokemonStore
	defaultLimit int
	logger       *zerolog.Logger
}

func NewPokemonService(store PokemonStore, defaultLimit int, logger *zerolog.Logger) *PokemonService {
	return &PokemonService{
		store:        store,
		defaultLimit: defaultLimit,
		logger:       logger,
	}
}

// handleExceptions maps duplicate keys to a 400 and logs anything else.
func (s *PokemonService) handleExceptions(err error) error {
	var dup *repository.DuplicateKeyError
	if errors.As(err, &dup) {
		return errs.BadRequest(fmt.Sprintf("Pokemon exists in db %s", dup.KeyValue))
	}

	s.logger.Error().Err(err).Msg("pokemon store failure")
	return errs.NewInternalServerError().WithMessage("Can't process the pokemon - Check server logs")
}

func (s *PokemonService) Create(ctx context.Context, payload *pokemon.CreatePokemonPayload) (*pokemon.Pokemon, error) {
	p := &pokemon.Pokemon{
		Name: payload.Name,
		No:   payload.No,
	}

	if err := s.store.Create(ctx, p); err != nil {
		return nil, s.handleExceptions(err)
	}
	return p, nil
}

// FindAll pages by number; limit defaults to the configured page size.
func (s *PokemonService) FindAll(ctx context.Context, payload *pokemon.ListPokemonPayload) ([]pokemon.Pokemon, error) {
	limit := payload.LimitOr(s.defaultLimit)
	offset := payload.OffsetOrZero()

	return s.store.FindAll(ctx, limit, offset)
}

// FindOne resolves term as a pokedex number, then as an ObjectID, then as
// a name.
func (s *PokemonService) FindOne(ctx context.Context, term string) (*pokemon.Pokemon, error) {
	var (
		p   *pokemon.Pokemon
		err error
	)

	if no, convErr := strconv.Atoi(term); convErr == nil {
		p, err = s.store.FindByNo(ctx, no)
		if err != nil && !errors.Is(err, repository.ErrNotFound) {
			return nil, err
		}
	}

	if p == nil {
		if id, convErr := primitive.ObjectIDFromHex(term); convErr == nil {
			p, err = s.store.FindByID(ctx, id)
			if err != nil && !errors.Is(err, repository.ErrNotFound) {
				return nil, err
			}
		}
	}

	if p == nil {
		p, err = s.store.FindByName(ctx, pokemon.NormalizeName(term))
		if err != nil && !errors.Is(err, repository.ErrNotFound) {
			return nil, err
		}
	}

	if p == nil {
		return nil, errs.NotFound(fmt.Sprintf(`Pokemon with id, name or no "%s" not found`, term))
	}
	return p, nil
}

// Update resolves term like FindOne and returns the merged document.
func (s *PokemonService) Update(ctx context.Context, payload *pokemon.UpdatePokemonPayload) (*pokemon.Pokemon, error) {
	p, err := s.FindOne(ctx, payload.Term)
	if err != nil {
		return nil, err
	}

	set := bson.M{}
	if payload.Name != nil {
		set["name"] = *payload.Name
	}
	if payload.No != nil {
		set["no"] = *payload.No
	}
	if len(set) == 0 {
		return p, nil
	}

	updated, err := s.store.Update(ctx, p.ID, set)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, errs.NotFound(fmt.Sprintf(`Pokemon with id, name or no "%s" not found`, payload.Term))
		}
		return nil, s.handleExceptions(err)
	}
	return updated, nil
}

// Remove deletes by ObjectID in a single round trip.
func (s *PokemonService) Remove(ctx context.Context, payload *pokemon.DeletePokemonPayload) error {
	id, err := primitive.ObjectIDFromHex(payload.ID)
	if err != nil {
		return errs.BadRequest(fmt.Sprintf("%s is not a valid MongoID", payload.ID))
	}

	deleted, err := s.store.DeleteByID(ctx, id)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return errs.BadRequest(fmt.Sprintf(`Pokemon with id "%s" not found`, payload.ID))
	}
	return nil
}
