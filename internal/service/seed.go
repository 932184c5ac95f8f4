package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/deppfellow/course-apis/internal/errs"
	"github.com/deppfellow/course-apis/internal/lib/job"
	"github.com/deppfellow/course-apis/internal/lib/pokeapi"
	"github.com/deppfellow/course-apis/internal/model"
	"github.com/deppfellow/course-apis/internal/model/brand"
	"github.com/deppfellow/course-apis/internal/model/car"
	"github.com/deppfellow/course-apis/internal/model/pokemon"
	"github.com/deppfellow/course-apis/internal/model/product"
	"github.com/deppfellow/course-apis/internal/model/user"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// Seed results, as returned to clients.
const (
	DealershipSeedMessage = "Seed executed"
	PokedexSeedMessage    = "Seed Executed"
	TesloSeedMessage      = "SEED EXECUTED"
)

// seedConcurrency bounds parallel work during the teslo seed.
const seedConcurrency = 4

// PokeListURL builds the PokeAPI listing URL for limit entries.
type PokeListURL func(limit int) string

// SeedService resets each API to its starting dataset.
type SeedService struct {
	cars     *CarService
	brands   *BrandService
	pokemon  PokemonStore
	products ProductStore
	users    UserStore
	jobs     TaskEnqueuer
	http     pokeapi.HTTPAdapter
	listURL  PokeListURL
	limit    int
	logger   *zerolog.Logger
}

// SeedDeps groups SeedService collaborators.
type SeedDeps struct {
	Cars      *CarService
	Brands    *BrandService
	Pokemon   PokemonStore
	Products  ProductStore
	Users     UserStore
	Jobs      TaskEnqueuer
	HTTP      pokeapi.HTTPAdapter
	ListURL   PokeListURL
	SeedLimit int
	Logger    *zerolog.Logger
}

func NewSeedService(deps SeedDeps) *SeedService {
	return &SeedService{
		cars:     deps.Cars,
		brands:   deps.Brands,
		pokemon:  deps.Pokemon,
		products: deps.Products,
		users:    deps.Users,
		jobs:     deps.Jobs,
		http:     deps.HTTP,
		listURL:  deps.ListURL,
		limit:    deps.SeedLimit,
		logger:   deps.Logger,
	}
}

// Dealership replaces cars and brands with their seed data.
func (s *SeedService) Dealership(_ context.Context) string {
	s.cars.FillWithSeed(car.SeedCars())
	s.brands.FillWithSeed(brand.SeedBrands())
	return DealershipSeedMessage
}

// Pokedex wipes the collection and reloads it from PokeAPI. The pokedex
// number comes from the second-to-last segment of each entry URL.
func (s *SeedService) Pokedex(ctx context.Context) (string, error) {
	var resp pokeapi.PokeResponse
	if err := s.http.GetJSON(ctx, s.listURL(s.limit), &resp); err != nil {
		return "", fmt.Errorf("fetch pokemon list: %w", err)
	}

	list := make([]pokemon.Pokemon, 0, len(resp.Results))
	for _, r := range resp.Results {
		no, err := r.Number()
		if err != nil {
			return "", err
		}
		list = append(list, pokemon.Pokemon{Name: pokemon.NormalizeName(r.Name), No: no})
	}

	if err := s.pokemon.DeleteAll(ctx); err != nil {
		return "", err
	}
	if err := s.pokemon.InsertMany(ctx, list); err != nil {
		return "", err
	}

	s.logger.Info().Int("count", len(list)).Msg("pokedex seeded")
	return PokedexSeedMessage, nil
}

// EnqueuePokedex queues the pokedex seed on the worker.
func (s *SeedService) EnqueuePokedex(ctx context.Context) (*pokemon.SeedTaskResponse, error) {
	info, err := s.jobs.Enqueue(ctx, job.NewPokedexSeedTask())
	if errors.Is(err, asynq.ErrDuplicateTask) {
		return nil, errs.NewConflictError("Pokedex seed already queued")
	}
	if err != nil {
		return nil, err
	}
	return &pokemon.SeedTaskResponse{TaskID: info.ID}, nil
}

// HandlePokedexSeedTask is the worker side of EnqueuePokedex.
func (s *SeedService) HandlePokedexSeedTask(ctx context.Context, _ *asynq.Task) error {
	_, err := s.Pokedex(ctx)
	return err
}

// Teslo deletes products and users, then inserts the seed users and the
// seed catalogue owned by the first of them.
func (s *SeedService) Teslo(ctx context.Context) (string, error) {
	if err := s.products.DeleteAll(ctx); err != nil {
		return "", err
	}
	if err := s.users.DeleteAll(ctx); err != nil {
		return "", err
	}

	seedUsers := user.SeedUsers()

	// bcrypt dominates the seed time; hash in parallel.
	hashes := make([]string, len(seedUsers))
	var hashGroup errgroup.Group
	for i, su := range seedUsers {
		hashGroup.Go(func() error {
			hash, err := HashPassword(su.Password)
			hashes[i] = hash
			return err
		})
	}
	if err := hashGroup.Wait(); err != nil {
		return "", err
	}

	users := make([]*user.User, len(seedUsers))
	for i, su := range seedUsers {
		u, err := s.users.Create(ctx, su.Email, hashes[i], su.FullName, su.Roles)
		if err != nil {
			return "", err
		}
		users[i] = u
	}
	owner := users[0]

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(seedConcurrency)
	for _, payload := range product.SeedProducts() {
		g.Go(func() error {
			payload.Normalize()
			p := &product.Product{
				Title:       payload.Title,
				Price:       *payload.Price,
				Description: payload.Description,
				Slug:        *payload.Slug,
				Stock:       *payload.Stock,
				Sizes:       payload.Sizes,
				Gender:      payload.Gender,
				Tags:        payload.Tags,
				Images:      payload.Images,
			}
			_, err := s.products.Create(gctx, p, owner.ID)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return "", err
	}

	return TesloSeedMessage, nil
}

// Message wraps a seed result for JSON responses.
func Message(msg string) *model.MessageResponse {
	return &model.MessageResponse{Message: msg}
}
