package service

import (
	"github.com/deppfellow/course-apis/internal/lib/job"
	"github.com/deppfellow/course-apis/internal/lib/pokeapi"
	"github.com/deppfellow/course-apis/internal/repository"
	"github.com/deppfellow/course-apis/internal/server"
)

type Services struct {
	Car     *CarService
	Brand   *BrandService
	Pokemon *PokemonService
	Product *ProductService
	Auth    *AuthService
	File    *FileService
	Seed    *SeedService
	Job     *job.JobService
}

// NewServices builds every service and registers the job handlers that
// belong to them. It must run before s.StartJobs.
func NewServices(s *server.Server, repos *repository.Repositories) (*Services, error) {
	cfg := s.Config

	carService := NewCarService(repos.Car)
	brandService := NewBrandService(repos.Brand)
	pokeClient := pokeapi.NewClient(cfg.PokeAPI)

	seedService := NewSeedService(SeedDeps{
		Cars:      carService,
		Brands:    brandService,
		Pokemon:   repos.Pokemon,
		Products:  repos.Product,
		Users:     repos.User,
		Jobs:      s.Job,
		HTTP:      pokeClient,
		ListURL:   pokeClient.PokemonListURL,
		SeedLimit: cfg.PokeAPI.SeedLimit,
		Logger:    s.Logger,
	})

	s.Job.Handle(job.TaskSeedPokedex, seedService.HandlePokedexSeedTask)

	return &Services{
		Car:     carService,
		Brand:   brandService,
		Pokemon: NewPokemonService(repos.Pokemon, cfg.Mongo.DefaultLimit, s.Logger),
		Product: NewProductService(repos.Product),
		Auth:    NewAuthService(repos.User, s.Job, cfg.Auth.SecretKey, cfg.Auth.TokenTTL, s.Logger),
		File:    NewFileService(cfg.Files.UploadDir, cfg.Server.HostAPI, cfg.Files.MaxUploadBytes),
		Seed:    seedService,
		Job:     s.Job,
	}, nil
}
