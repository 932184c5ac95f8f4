package service

import (
	"context"

	"github.com/deppfellow/course-apis/internal/model/brand"
	"github.com/deppfellow/course-apis/internal/model/car"
	"github.com/deppfellow/course-apis/internal/model/pokemon"
	"github.com/deppfellow/course-apis/internal/model/product"
	"github.com/deppfellow/course-apis/internal/model/user"
	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Stores consumed by the services. The repository package provides the
// implementations; tests use in-memory fakes.

type CarStore interface {
	FindAll() []car.Car
	FindByID(id uuid.UUID) (car.Car, bool)
	Insert(c car.Car)
	Update(c car.Car) bool
	Delete(id uuid.UUID) bool
	Replace(cars []car.Car)
}

type BrandStore interface {
	FindAll() []brand.Brand
	FindByID(id uuid.UUID) (brand.Brand, bool)
	Insert(b brand.Brand)
	Update(b brand.Brand) bool
	Delete(id uuid.UUID)
	Replace(brands []brand.Brand)
}

type PokemonStore interface {
	Create(ctx context.Context, p *pokemon.Pokemon) error
	FindAll(ctx context.Context, limit, offset int) ([]pokemon.Pokemon, error)
	FindByNo(ctx context.Context, no int) (*pokemon.Pokemon, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*pokemon.Pokemon, error)
	FindByName(ctx context.Context, name string) (*pokemon.Pokemon, error)
	Update(ctx context.Context, id primitive.ObjectID, set bson.M) (*pokemon.Pokemon, error)
	DeleteByID(ctx context.Context, id primitive.ObjectID) (int64, error)
	DeleteAll(ctx context.Context) error
	InsertMany(ctx context.Context, list []pokemon.Pokemon) error
}

type ProductStore interface {
	FindAll(ctx context.Context, limit, offset int) ([]product.Product, error)
	FindByID(ctx context.Context, id uuid.UUID) (*product.Product, error)
	FindByTitleOrSlug(ctx context.Context, term string) (*product.Product, error)
	Create(ctx context.Context, p *product.Product, ownerID uuid.UUID) (*product.Product, error)
	Update(ctx context.Context, p *product.Product, replaceImages bool) (*product.Product, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteAll(ctx context.Context) error
}

type UserStore interface {
	Create(ctx context.Context, email, passwordHash, fullName string, roles []string) (*user.User, error)
	FindByEmail(ctx context.Context, email string) (*user.User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*user.User, error)
	DeleteAll(ctx context.Context) error
}

// TaskEnqueuer pushes background tasks; *job.JobService implements it.
type TaskEnqueuer interface {
	Enqueue(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}
