package integration_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	pgTestContainers "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"weathersync/weather-sync/internal/db/savedlocation"
	"weathersync/weather-sync/internal/engine"
	"weathersync/weather-sync/internal/location"
	"weathersync/weather-sync/internal/repository"
	"weathersync/weather-sync/internal/search"
	"weathersync/weather-sync/internal/state"
	"weathersync/weather-sync/internal/weatherapi"
)

var (
	postgresContainer *pgTestContainers.PostgresContainer
	sharedDB          *gorm.DB
)

const (
	dbName     = "test_api_database"
	dbUser     = "test_user"
	dbPassword = "test_password"
)

func init() {
	log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
}

func SetupPostgres(t *testing.T) (*gorm.DB, func()) {
	if sharedDB != nil {
		err := sharedDB.Migrator().DropTable(&savedlocation.SavedLocation{})
		require.NoError(t, err)

		err = sharedDB.AutoMigrate(&savedlocation.SavedLocation{})
		require.NoError(t, err)

		return sharedDB, func() {}
	}

	log.Info().Msg("Setting up new PostgreSQL container")

	ctx := context.Background()

	var err error
	postgresContainer, err = pgTestContainers.RunContainer(ctx,
		testcontainers.WithImage("postgres:13.3"),
		pgTestContainers.WithDatabase(dbName),
		pgTestContainers.WithUsername(dbUser),
		pgTestContainers.WithPassword(dbPassword),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(10*time.Second)),
	)
	require.NoError(t, err)

	host, err := postgresContainer.Host(context.Background())
	require.NoError(t, err)

	endpoint, err := postgresContainer.Endpoint(context.Background(), "")
	require.NoError(t, err)

	parts := strings.Split(endpoint, ":")
	port := parts[1]

	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		host, port, dbUser, dbPassword, dbName,
	)

	sharedDB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := sharedDB.DB()
	require.NoError(t, err)

	err = sqlDB.Ping()
	require.NoError(t, err)

	err = sharedDB.AutoMigrate(&savedlocation.SavedLocation{})
	require.NoError(t, err)

	return sharedDB, func() {
		if postgresContainer != nil {
			log.Info().Msg("Terminating PostgreSQL container")
			if err := postgresContainer.Terminate(context.Background()); err != nil {
				log.Error().Err(err).Msg("Failed to terminate PostgreSQL container")
			}
		}
	}
}

// fakeWeatherAPI serves current/forecast/search responses keyed by the q
// parameter. Coordinate queries resolve to Springfield, the current location.
func fakeWeatherAPI() *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query().Get("q")

		name := q
		if strings.Contains(q, ",") {
			name = "Springfield"
		}

		switch r.URL.Path {
		case "/current.json":
			if name == "Nowhere" {
				w.WriteHeader(http.StatusBadRequest)
				return
			}
			json.NewEncoder(w).Encode(map[string]interface{}{
				"location": map[string]interface{}{
					"name":    name,
					"region":  "Illinois",
					"country": "USA",
					"lat":     1.0,
					"lon":     2.0,
				},
				"current": map[string]interface{}{
					"temp_c": 21.0,
					"condition": map[string]interface{}{
						"text": "Sunny",
						"icon": "//cdn.weatherapi.com/icons/sun.png",
						"code": 1000,
					},
				},
			})
		case "/forecast.json":
			json.NewEncoder(w).Encode(map[string]interface{}{
				"location": map[string]interface{}{"name": name},
				"forecast": map[string]interface{}{
					"forecastday": []map[string]interface{}{
						{"date": "2026-08-27", "day": map[string]interface{}{"maxtemp_c": 25.0}},
					},
				},
			})
		case "/search.json":
			json.NewEncoder(w).Encode([]map[string]interface{}{
				{"id": 1, "name": "Shelbyville", "region": "Illinois", "country": "USA", "lat": 3.0, "lon": 4.0},
			})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
}

type fixedLocationProvider struct{}

func (fixedLocationProvider) CurrentLocation(ctx context.Context) (*location.Coordinates, error) {
	return &location.Coordinates{Latitude: 1.0, Longitude: 2.0}, nil
}

type testStack struct {
	engine   *engine.Engine
	searches *search.Controller
	states   *state.Container
	store    *savedlocation.SQLRepository
}

func setupStack(t *testing.T, db *gorm.DB, apiURL string) *testStack {
	store := savedlocation.NewRepository(db)
	apiClient := weatherapi.NewClient("test-key", apiURL)
	cityRepo := repository.NewCityRepository(apiClient, fixedLocationProvider{}, store)

	states := state.NewContainer()
	eng := engine.NewEngine(cityRepo, states, 7)
	searches := search.NewController(cityRepo, states, eng, 50*time.Millisecond, 3)

	t.Cleanup(searches.Close)

	return &testStack{engine: eng, searches: searches, states: states, store: store}
}

func waitForState(t *testing.T, states *state.Container, predicate func(state.AggregatedState) bool) state.AggregatedState {
	require.Eventually(t, func() bool {
		return predicate(states.Get())
	}, 10*time.Second, 20*time.Millisecond)
	return states.Get()
}

func TestEngineSynchronizesSavedLocationsEndToEnd(t *testing.T) {
	db, terminate := SetupPostgres(t)
	defer terminate()

	api := fakeWeatherAPI()
	defer api.Close()

	stack := setupStack(t, db, api.URL)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	stack.engine.Start(ctx)

	// Initial load resolves the device position, publishes Springfield and
	// persists it as a saved location.
	snapshot := waitForState(t, stack.states, func(st state.AggregatedState) bool {
		return st.Phase == state.PhaseReady && len(st.Cities) == 1
	})
	require.Equal(t, "Springfield", snapshot.Cities[0].Location.Name)
	require.True(t, snapshot.Cities[0].IsFromCurrentLocation)

	records, err := stack.store.All(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.Equal(t, "Springfield", records[0].Name)

	// Saving a city flows through the store stream into the published list,
	// behind the current-location entry.
	require.NoError(t, stack.engine.SaveCity(ctx, savedlocation.SavedLocation{
		Name: "Shelbyville", Country: "USA", Latitude: 3.0, Longitude: 4.0,
	}))

	snapshot = waitForState(t, stack.states, func(st state.AggregatedState) bool {
		return len(st.Cities) == 2
	})
	require.Equal(t, "Springfield", snapshot.Cities[0].Location.Name)
	require.True(t, snapshot.Cities[0].IsFromCurrentLocation)
	require.Equal(t, "Shelbyville", snapshot.Cities[1].Location.Name)

	// Deleting it removes it from the published list again.
	require.NoError(t, stack.engine.DeleteCity(ctx, "Shelbyville"))

	snapshot = waitForState(t, stack.states, func(st state.AggregatedState) bool {
		return len(st.Cities) == 1
	})
	require.Equal(t, "Springfield", snapshot.Cities[0].Location.Name)
}

func TestSavedCurrentLocationIsNeverDuplicated(t *testing.T) {
	db, terminate := SetupPostgres(t)
	defer terminate()

	api := fakeWeatherAPI()
	defer api.Close()

	stack := setupStack(t, db, api.URL)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Springfield already exists as a saved record before the engine starts.
	require.NoError(t, stack.store.Save(ctx, savedlocation.SavedLocation{
		Name: "Springfield", Country: "USA", Latitude: 1.0, Longitude: 2.0,
	}))

	stack.engine.Start(ctx)

	snapshot := waitForState(t, stack.states, func(st state.AggregatedState) bool {
		return st.Phase == state.PhaseReady && len(st.Cities) >= 1
	})

	// The saved record collides with the current-location entry by name and
	// is excluded from the tail.
	time.Sleep(200 * time.Millisecond)
	snapshot = stack.states.Get()

	count := 0
	for _, obs := range snapshot.Cities {
		if obs.Location.Name == "Springfield" {
			count++
		}
	}
	require.Equal(t, 1, count)
	require.True(t, snapshot.Cities[0].IsFromCurrentLocation)
}

func TestSearchFlowEndToEnd(t *testing.T) {
	db, terminate := SetupPostgres(t)
	defer terminate()

	api := fakeWeatherAPI()
	defer api.Close()

	stack := setupStack(t, db, api.URL)

	stack.searches.SetQuery("Shel")

	snapshot := waitForState(t, stack.states, func(st state.AggregatedState) bool {
		return len(st.SearchResults) == 1 && !st.Searching
	})
	require.Equal(t, "Shelbyville", snapshot.SearchResults[0].Name)

	stack.searches.SelectResult(context.Background(), snapshot.SearchResults[0])

	snapshot = waitForState(t, stack.states, func(st state.AggregatedState) bool {
		return st.Selected != nil && st.Selected.Location.Name == "Shelbyville"
	})
	require.Empty(t, snapshot.SearchQuery)
	require.Empty(t, snapshot.SearchResults)
	require.NotNil(t, snapshot.Forecast)
}
