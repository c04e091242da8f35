// Package steps provides step definitions for the BDD integration suite.
package steps

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"sync"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	redislib "github.com/redis/go-redis/v9"

	"github.com/expense-segmentation/backend/config"
	"github.com/expense-segmentation/backend/internal/infra/dependency"
	"github.com/expense-segmentation/backend/internal/integration/persistence/model"
	"github.com/expense-segmentation/backend/test/integration/mock"
)

const testJWTSecret = "test-jwt-secret-key-for-testing-purposes"
const defaultPassword = "SecurePass123!"

var apiOnce sync.Once
var apiURL string
var testDB *mock.Db
var testRedis *redislib.Client

// startAPI boots the full application once against the mock database and
// Redis. Every scenario hits the same server; state is reset between
// scenarios by clearing the stores.
func startAPI() {
	apiOnce.Do(func() {
		gin.SetMode(gin.TestMode)
		_ = os.Setenv("ENV", "test")
		_ = os.Setenv("JWT_SECRET", testJWTSecret)

		testDB = mock.NewDb(map[string]any{
			"users":            &model.UserModel{},
			"categories":       &model.CategoryModel{},
			"expenses":         &model.ExpenseModel{},
			"expense_segments": &model.SegmentModel{},
		})
		testRedis = mock.NewRedis()

		cfg := config.Load()
		injector := dependency.NewInjector(cfg, testDB.DbConn, testRedis)
		engine := injector.Router.Setup("test")

		server := httptest.NewServer(engine)
		apiURL = server.URL
	})
}

type testContext struct {
	uri     string
	client  *http.Client
	headers map[string]string

	response *response

	db    *mock.Db
	redis *redislib.Client

	accessToken       string
	currentUserID     uuid.UUID
	currentExpenseID  uuid.UUID
	currentSegmentID  uuid.UUID
	currentCategoryID uuid.UUID
	segmentSeq        int
}

type response struct {
	status int
	body   any
}

// InitializeTestSuite sets up global resources before any scenarios run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		startAPI()
	})
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	startAPI()

	test := &testContext{
		uri:    apiURL,
		client: &http.Client{Timeout: 10 * time.Second},
		db:     testDB,
		redis:  testRedis,
	}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		test.before()
		return ctx, nil
	})

	// Background steps
	ctx.Given(`^the API server is running$`, test.theAPIServerIsRunning)

	// User and auth setup steps
	ctx.Given(`^a user exists with email "([^"]*)"$`, test.aUserExistsWithEmail)
	ctx.Given(`^a user exists with email "([^"]*)" and role "([^"]*)"$`, test.aUserExistsWithEmailAndRole)
	ctx.Given(`^I am logged in as "([^"]*)"$`, test.iAmLoggedInAs)
	ctx.Given(`^I am logged in as "([^"]*)" with role "([^"]*)"$`, test.iAmLoggedInAsWithRole)
	ctx.Given(`^the request is not authenticated$`, test.theRequestIsNotAuthenticated)

	// Category setup steps
	ctx.Given(`^an active category "([^"]*)" exists$`, test.anActiveCategoryExists)
	ctx.Given(`^an inactive category "([^"]*)" exists$`, test.anInactiveCategoryExists)

	// Expense setup steps
	ctx.Given(`^an expense exists with total "([^"]*)"$`, test.anExpenseExistsWithTotal)
	ctx.Given(`^an expense exists with total "([^"]*)" and status "([^"]*)"$`, test.anExpenseExistsWithTotalAndStatus)
	ctx.Given(`^an expense owned by "([^"]*)" exists with total "([^"]*)"$`, test.anExpenseOwnedByExistsWithTotal)

	// Segment setup steps
	ctx.Given(`^the expense has a segment "([^"]*)" with amount "([^"]*)" and percentage "([^"]*)"$`, test.theExpenseHasASegment)

	// Request steps
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)"$`, test.iSendARequestTo)
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, test.iSendARequestToWithBody)

	// Response assertion steps
	ctx.Then(`^the response status should be (\d+)$`, test.theResponseStatusShouldBe)
	ctx.Then(`^the response should contain "([^"]*)"$`, test.theResponseShouldContain)
	ctx.Then(`^the response field "([^"]*)" should be "([^"]*)"$`, test.theResponseFieldShouldBe)
	ctx.Then(`^the response field "([^"]*)" should exist$`, test.theResponseFieldShouldExist)
	ctx.Then(`^the response list "([^"]*)" should have (\d+) items$`, test.theResponseListShouldHaveItems)

	// Database assertion steps
	ctx.Then(`^the db should contain (\d+) objects in the "([^"]*)" table$`, test.theDbShouldContainObjectsInTheTable)
	ctx.Then(`^the db should contain (\d+) objects in "([^"]*)" with the values$`, test.theDbShouldContainObjectsInWithTheValues)
}

func (t *testContext) before() {
	t.headers = make(map[string]string)
	t.response = nil
	t.accessToken = ""
	t.currentUserID = uuid.Nil
	t.currentExpenseID = uuid.Nil
	t.currentSegmentID = uuid.Nil
	t.currentCategoryID = uuid.Nil
	t.segmentSeq = 0

	if t.db != nil {
		_ = t.db.ClearDB()
	}
	if t.redis != nil {
		_ = mock.ClearRedis(t.redis)
	}
}

func (t *testContext) theAPIServerIsRunning() error {
	resp, err := t.client.Get(t.uri + "/health")
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	return nil
}
