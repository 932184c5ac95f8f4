package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/deppfellow/course-apis/internal/config"
	"github.com/deppfellow/course-apis/internal/errs"
	"github.com/deppfellow/course-apis/internal/logger"
	"github.com/deppfellow/course-apis/internal/middleware"
	"github.com/deppfellow/course-apis/internal/model/car"
	"github.com/deppfellow/course-apis/internal/repository"
	"github.com/deppfellow/course-apis/internal/server"
	"github.com/deppfellow/course-apis/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

func testServer() *server.Server {
	cfg := config.DefaultConfig()
	cfg.Observability = config.DefaultObservabilityConfig()
	log := zerolog.Nop()

	return &server.Server{
		Config:        cfg,
		Logger:        &log,
		LoggerService: &logger.LoggerService{},
	}
}

// dealershipAPI wires the dealership routes over in-memory repositories.
func dealershipAPI() *echo.Echo {
	s := testServer()
	h := NewHandler(s)

	cars := service.NewCarService(repository.NewCarRepository())
	brands := service.NewBrandService(repository.NewBrandRepository())
	seed := service.NewSeedService(service.SeedDeps{Cars: cars, Brands: brands, Logger: s.Logger})

	carHandler := &CarHandler{Handler: h, cars: cars}
	brandHandler := &BrandHandler{Handler: h, brands: brands}
	seedHandler := &SeedHandler{Handler: h, seed: seed}

	e := echo.New()
	e.HTTPErrorHandler = middleware.NewGlobalMiddlewares(s).GlobalErrorHandler

	e.GET("/cars", Handle(carHandler.FindAll, http.StatusOK))
	e.GET("/cars/:id", Handle(carHandler.FindByID, http.StatusOK))
	e.POST("/cars", Handle(carHandler.Create, http.StatusCreated))
	e.PATCH("/cars/:id", Handle(carHandler.Update, http.StatusOK))
	e.DELETE("/cars/:id", Handle(carHandler.Delete, http.StatusOK))
	e.POST("/brands", Handle(brandHandler.Create, http.StatusCreated))
	e.DELETE("/brands/:id", HandleNoContent(brandHandler.Remove, http.StatusNoContent))
	e.POST("/seed", HandleString(seedHandler.Dealership))

	return e
}

func do(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(rec.Body.Bytes(), &v); err != nil {
		t.Fatalf("decode %T: %v (%s)", v, err, rec.Body.String())
	}
	return v
}

func TestCarLifecycle(t *testing.T) {
	e := dealershipAPI()

	rec := do(e, http.MethodPost, "/cars", `{"brand":"Toyota","model":"Corolla"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create status = %d (%s)", rec.Code, rec.Body.String())
	}
	created := decode[car.Car](t, rec)

	rec = do(e, http.MethodGet, "/cars/"+created.ID.String(), "")
	if rec.Code != http.StatusOK || decode[car.Car](t, rec).Model != "Corolla" {
		t.Fatalf("get: %d %s", rec.Code, rec.Body.String())
	}

	rec = do(e, http.MethodPatch, "/cars/"+created.ID.String(), `{"model":"Yaris"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("update status = %d (%s)", rec.Code, rec.Body.String())
	}
	updated := decode[car.Car](t, rec)
	if updated.Brand != "Toyota" || updated.Model != "Yaris" {
		t.Fatalf("unexpected merge: %+v", updated)
	}

	rec = do(e, http.MethodDelete, "/cars/"+created.ID.String(), "")
	if rec.Code != http.StatusOK {
		t.Fatalf("delete status = %d", rec.Code)
	}
	if got := decode[car.DeleteResponse](t, rec); got.Method != "delete" {
		t.Fatalf("delete response = %+v", got)
	}

	rec = do(e, http.MethodGet, "/cars/"+created.ID.String(), "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("get after delete = %d", rec.Code)
	}
	want := "Car with id '" + created.ID.String() + "' not found"
	if got := decode[errs.HTTPError](t, rec).Message; got != want {
		t.Fatalf("message = %q", got)
	}
}

func TestCarRejectsInvalidUUID(t *testing.T) {
	rec := do(dealershipAPI(), http.MethodGet, "/cars/1", "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestCarCreateRequiresFields(t *testing.T) {
	rec := do(dealershipAPI(), http.MethodPost, "/cars", `{"brand":"Toyota"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
	body := decode[errs.HTTPError](t, rec)
	if len(body.Errors) != 1 || body.Errors[0].Field != "model" {
		t.Fatalf("field errors = %+v", body.Errors)
	}
}

func TestCarUpdateRejectsMismatchedBodyID(t *testing.T) {
	e := dealershipAPI()
	created := decode[car.Car](t, do(e, http.MethodPost, "/cars", `{"brand":"Honda","model":"Civic"}`))

	rec := do(e, http.MethodPatch, "/cars/"+created.ID.String(), `{"id":"9f0c2a1b-2c3d-4e5f-8718-64b7f0c2a1b2"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
	if got := decode[errs.HTTPError](t, rec).Message; got != "Car id is not valid inside body" {
		t.Fatalf("message = %q", got)
	}
}

func TestRequestsDoNotShareState(t *testing.T) {
	e := dealershipAPI()
	created := decode[car.Car](t, do(e, http.MethodPost, "/cars", `{"brand":"Jeep","model":"Cherokee"}`))

	do(e, http.MethodPatch, "/cars/"+created.ID.String(), `{"brand":"Ford"}`)
	rec := do(e, http.MethodPatch, "/cars/"+created.ID.String(), `{"model":"Ranger"}`)

	got := decode[car.Car](t, rec)
	if got.Brand != "Ford" || got.Model != "Ranger" {
		t.Fatalf("unexpected car: %+v", got)
	}

	// A second create without model must fail even though the previous
	// create carried one.
	rec = do(e, http.MethodPost, "/cars", `{"brand":"Kia"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestBrandDeleteIsNoContent(t *testing.T) {
	rec := do(dealershipAPI(), http.MethodDelete, "/brands/9f0c2a1b-2c3d-4e5f-8718-64b7f0c2a1b2", "")
	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestDealershipSeedIsPlainText(t *testing.T) {
	e := dealershipAPI()

	rec := do(e, http.MethodPost, "/seed", "")
	if rec.Code != http.StatusOK || rec.Body.String() != "Seed executed" {
		t.Fatalf("seed: %d %q", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get(echo.HeaderContentType); !strings.HasPrefix(ct, echo.MIMETextPlain) {
		t.Fatalf("content type = %q", ct)
	}

	cars := decode[[]car.Car](t, do(e, http.MethodGet, "/cars", ""))
	if len(cars) != len(car.SeedCars()) {
		t.Fatalf("cars after seed = %d", len(cars))
	}
}

func TestHealthWithoutDependencies(t *testing.T) {
	s := testServer()
	e := echo.New()
	e.GET("/status", NewHealthHandler(s).CheckHealth)

	rec := do(e, http.MethodGet, "/status", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if got := decode[map[string]any](t, rec)["status"]; got != "healthy" {
		t.Fatalf("health = %v", got)
	}
}
