package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/deppfellow/course-apis/internal/lib/pokeapi"
	"github.com/deppfellow/course-apis/internal/model/pokemon"
	"github.com/deppfellow/course-apis/internal/model/product"
	"github.com/deppfellow/course-apis/internal/model/user"
	"github.com/deppfellow/course-apis/internal/repository"
	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func nopLogger() *zerolog.Logger {
	l := zerolog.Nop()
	return &l
}

// ------------------------------------------------------------

type fakePokemonStore struct {
	mu   sync.Mutex
	docs []pokemon.Pokemon
}

func (f *fakePokemonStore) dupCheck(skip primitive.ObjectID, name string, no int) error {
	for _, d := range f.docs {
		if d.ID == skip {
			continue
		}
		if d.Name == name {
			return &repository.DuplicateKeyError{KeyValue: fmt.Sprintf(`{ name: "%s" }`, name)}
		}
		if d.No == no {
			return &repository.DuplicateKeyError{KeyValue: fmt.Sprintf(`{ no: %d }`, no)}
		}
	}
	return nil
}

func (f *fakePokemonStore) Create(_ context.Context, p *pokemon.Pokemon) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.dupCheck(primitive.NilObjectID, p.Name, p.No); err != nil {
		return err
	}
	p.ID = primitive.NewObjectID()
	f.docs = append(f.docs, *p)
	return nil
}

func (f *fakePokemonStore) FindAll(_ context.Context, limit, offset int) ([]pokemon.Pokemon, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	sorted := append([]pokemon.Pokemon(nil), f.docs...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].No < sorted[j].No })
	if offset > len(sorted) {
		return []pokemon.Pokemon{}, nil
	}
	sorted = sorted[offset:]
	if limit < len(sorted) {
		sorted = sorted[:limit]
	}
	return sorted, nil
}

func (f *fakePokemonStore) find(match func(pokemon.Pokemon) bool) (*pokemon.Pokemon, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, d := range f.docs {
		if match(d) {
			d := d
			return &d, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakePokemonStore) FindByNo(_ context.Context, no int) (*pokemon.Pokemon, error) {
	return f.find(func(p pokemon.Pokemon) bool { return p.No == no })
}

func (f *fakePokemonStore) FindByID(_ context.Context, id primitive.ObjectID) (*pokemon.Pokemon, error) {
	return f.find(func(p pokemon.Pokemon) bool { return p.ID == id })
}

func (f *fakePokemonStore) FindByName(_ context.Context, name string) (*pokemon.Pokemon, error) {
	return f.find(func(p pokemon.Pokemon) bool { return p.Name == name })
}

func (f *fakePokemonStore) Update(_ context.Context, id primitive.ObjectID, set bson.M) (*pokemon.Pokemon, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, d := range f.docs {
		if d.ID != id {
			continue
		}
		if name, ok := set["name"].(string); ok {
			d.Name = name
		}
		if no, ok := set["no"].(int); ok {
			d.No = no
		}
		if err := f.dupCheck(id, d.Name, d.No); err != nil {
			return nil, err
		}
		f.docs[i] = d
		return &d, nil
	}
	return nil, repository.ErrNotFound
}

func (f *fakePokemonStore) DeleteByID(_ context.Context, id primitive.ObjectID) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, d := range f.docs {
		if d.ID == id {
			f.docs = append(f.docs[:i], f.docs[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (f *fakePokemonStore) DeleteAll(_ context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.docs = nil
	return nil
}

func (f *fakePokemonStore) InsertMany(ctx context.Context, list []pokemon.Pokemon) error {
	for i := range list {
		if err := f.Create(ctx, &list[i]); err != nil {
			return err
		}
	}
	return nil
}

// ------------------------------------------------------------

type fakeUserStore struct {
	mu    sync.Mutex
	users []*user.User
}

func (f *fakeUserStore) Create(_ context.Context, email, hash, fullName string, roles []string) (*user.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == email {
			return nil, fmt.Errorf("duplicate email %s", email)
		}
	}
	if len(roles) == 0 {
		roles = []string{string(user.RoleUser)}
	}
	u := &user.User{ID: uuid.New(), Email: email, Password: hash, FullName: fullName, IsActive: true, Roles: roles}
	f.users = append(f.users, u)
	return u, nil
}

func (f *fakeUserStore) FindByEmail(_ context.Context, email string) (*user.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeUserStore) FindByID(_ context.Context, id uuid.UUID) (*user.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeUserStore) DeleteAll(_ context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.users = nil
	return nil
}

// ------------------------------------------------------------

type fakeProductStore struct {
	mu       sync.Mutex
	products []product.Product
	owners   map[uuid.UUID]uuid.UUID

	lastReplaceImages bool
}

func (f *fakeProductStore) FindAll(_ context.Context, limit, offset int) ([]product.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if offset > len(f.products) {
		return []product.Product{}, nil
	}
	list := f.products[offset:]
	if limit < len(list) {
		list = list[:limit]
	}
	return append([]product.Product(nil), list...), nil
}

func (f *fakeProductStore) find(match func(product.Product) bool) (*product.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, p := range f.products {
		if match(p) {
			p := p
			return &p, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeProductStore) FindByID(_ context.Context, id uuid.UUID) (*product.Product, error) {
	return f.find(func(p product.Product) bool { return p.ID == id })
}

func (f *fakeProductStore) FindByTitleOrSlug(_ context.Context, term string) (*product.Product, error) {
	return f.find(func(p product.Product) bool {
		return strings.EqualFold(p.Title, term) || p.Slug == strings.ToLower(term)
	})
}

func (f *fakeProductStore) Create(_ context.Context, p *product.Product, ownerID uuid.UUID) (*product.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p.ID = uuid.New()
	if f.owners == nil {
		f.owners = map[uuid.UUID]uuid.UUID{}
	}
	f.owners[p.ID] = ownerID
	f.products = append(f.products, *p)
	out := *p
	return &out, nil
}

func (f *fakeProductStore) Update(_ context.Context, p *product.Product, replaceImages bool) (*product.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastReplaceImages = replaceImages
	for i := range f.products {
		if f.products[i].ID == p.ID {
			f.products[i] = *p
			out := *p
			return &out, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeProductStore) Delete(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.products {
		if f.products[i].ID == id {
			f.products = append(f.products[:i], f.products[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

func (f *fakeProductStore) DeleteAll(_ context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.products = nil
	return nil
}

// ------------------------------------------------------------

type fakeEnqueuer struct {
	mu    sync.Mutex
	tasks []*asynq.Task
	err   error
}

func (f *fakeEnqueuer) Enqueue(_ context.Context, task *asynq.Task, _ ...asynq.Option) (*asynq.TaskInfo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	f.tasks = append(f.tasks, task)
	return &asynq.TaskInfo{ID: fmt.Sprintf("task-%d", len(f.tasks)), Type: task.Type(), Queue: "default"}, nil
}

// ------------------------------------------------------------

type fakePokeAPI struct {
	resp pokeapi.PokeResponse
	err  error
	urls []string
}

func (f *fakePokeAPI) GetJSON(_ context.Context, url string, out any) error {
	f.urls = append(f.urls, url)
	if f.err != nil {
		return f.err
	}
	*(out.(*pokeapi.PokeResponse)) = f.resp
	return nil
}
