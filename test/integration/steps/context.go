// Package steps contains the godog step definitions for the API test suite.
//
// Scenarios run against a real HTTP server wired through the dependency
// injector, backed by the shared in-memory SQLite database from the mock
// package. Every scenario starts from an empty database.
package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lavacar/backend/config"
	"github.com/lavacar/backend/internal/domain/period"
	"github.com/lavacar/backend/internal/infra/dependency"
	"github.com/lavacar/backend/internal/integration/persistence/model"
	"github.com/lavacar/backend/test/integration/mock"
)

type testContext struct {
	db     *mock.Db
	server *httptest.Server
	client *http.Client

	response struct {
		status int
		body   []byte
	}

	customerID uuid.UUID
	washID     uuid.UUID
	expenseID  uuid.UUID
	lastID     string
}

// InitializeTestSuite configures suite-wide state before any scenario runs.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)
	})
}

// InitializeScenario registers every step definition and the per-scenario
// lifecycle hooks.
func InitializeScenario(ctx *godog.ScenarioContext) {
	test := &testContext{
		db: mock.NewDb(map[string]any{
			"clientes":            &model.CustomerModel{},
			"lavagens":            &model.WashModel{},
			"despesas":            &model.ExpenseModel{},
			"fechamentos_diarios": &model.ClosingModel{},
		}),
		client: &http.Client{Timeout: 10 * time.Second},
	}

	ctx.Before(func(c context.Context, _ *godog.Scenario) (context.Context, error) {
		return c, test.before()
	})
	ctx.After(func(c context.Context, _ *godog.Scenario, _ error) (context.Context, error) {
		test.server.Close()
		return c, nil
	})

	ctx.Step(`^a customer "([^"]*)" with plate "([^"]*)" exists$`, test.aCustomerExists)
	ctx.Step(`^a customer "([^"]*)" with plate "([^"]*)" and phone "([^"]*)" exists$`, test.aCustomerWithPhoneExists)
	ctx.Step(`^a wash of type "([^"]*)" for the customer worth "([^"]*)" paid via "([^"]*)" happened on "([^"]*)"$`, test.aWashForTheCustomerExists)
	ctx.Step(`^a walk-in wash of type "([^"]*)" for "([^"]*)" with plate "([^"]*)" worth "([^"]*)" paid via "([^"]*)" happened on "([^"]*)"$`, test.aWalkInWashExists)
	ctx.Step(`^an expense "([^"]*)" of type "([^"]*)" worth "([^"]*)" happened on "([^"]*)"$`, test.anExpenseExists)
	ctx.Step(`^the day "([^"]*)" was closed$`, test.theDayWasClosed)

	ctx.Step(`^I send a "(GET|POST|PUT|DELETE)" request to "([^"]*)"$`, test.iSendARequest)
	ctx.Step(`^I send a "(GET|POST|PUT|DELETE)" request to "([^"]*)" with body:$`, test.iSendARequestWithBody)

	ctx.Step(`^the response status code should be (\d+)$`, test.theResponseStatusCodeShouldBe)
	ctx.Step(`^the response should contain "([^"]*)"$`, test.theResponseShouldContain)
	ctx.Step(`^the response field "([^"]*)" should be "([^"]*)"$`, test.theResponseFieldShouldBe)
	ctx.Step(`^the response field "([^"]*)" should exist$`, test.theResponseFieldShouldExist)
	ctx.Step(`^the response field "([^"]*)" should be null$`, test.theResponseFieldShouldBeNull)
	ctx.Step(`^the response list "([^"]*)" should have (\d+) items$`, test.theResponseListShouldHaveItems)
	ctx.Step(`^the response list should have (\d+) items$`, test.theResponseRootListShouldHaveItems)

	ctx.Step(`^the table "([^"]*)" should have (\d+) rows$`, test.theTableShouldHaveRows)
}

func (t *testContext) before() error {
	t.response.status = 0
	t.response.body = nil
	t.customerID = uuid.Nil
	t.washID = uuid.Nil
	t.expenseID = uuid.Nil
	t.lastID = ""

	if err := t.db.ClearDB(); err != nil {
		return err
	}

	cfg := config.Load()
	injector := dependency.NewInjector(cfg, t.db.DbConn)
	t.server = httptest.NewServer(injector.Router.Setup("test"))
	return nil
}

// Seeding steps insert rows directly so scenarios can focus on the endpoint
// under test instead of chaining API calls.

func (t *testContext) aCustomerExists(name, plate string) error {
	return t.aCustomerWithPhoneExists(name, plate, "")
}

func (t *testContext) aCustomerWithPhoneExists(name, plate, phone string) error {
	now := time.Now()
	customer := &model.CustomerModel{
		ID:        uuid.New(),
		Name:      name,
		Plate:     plate,
		Phone:     phone,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := t.db.DbConn.Create(customer).Error; err != nil {
		return err
	}
	t.customerID = customer.ID
	return nil
}

func (t *testContext) aWashForTheCustomerExists(washType, amount, method, day string) error {
	if t.customerID == uuid.Nil {
		return fmt.Errorf("no customer seeded for wash")
	}

	var customer model.CustomerModel
	if err := t.db.DbConn.First(&customer, "id = ?", t.customerID).Error; err != nil {
		return err
	}
	customerID := t.customerID
	return t.seedWash(&model.WashModel{
		CustomerID:    &customerID,
		WashType:      washType,
		Plate:         customer.Plate,
		PaymentMethod: method,
	}, amount, day)
}

func (t *testContext) aWalkInWashExists(washType, name, plate, amount, method, day string) error {
	return t.seedWash(&model.WashModel{
		WalkInName:    name,
		WashType:      washType,
		Plate:         plate,
		PaymentMethod: method,
	}, amount, day)
}

func (t *testContext) seedWash(wash *model.WashModel, amount, day string) error {
	value, err := decimal.NewFromString(amount)
	if err != nil {
		return fmt.Errorf("invalid wash amount %q: %w", amount, err)
	}
	date, err := t.resolveDate(day)
	if err != nil {
		return err
	}

	now := time.Now()
	wash.ID = uuid.New()
	wash.Date = date
	wash.Amount = value
	wash.CreatedAt = now
	wash.UpdatedAt = now
	if err := t.db.DbConn.Create(wash).Error; err != nil {
		return err
	}
	t.washID = wash.ID
	return nil
}

func (t *testContext) anExpenseExists(description, category, amount, day string) error {
	value, err := decimal.NewFromString(amount)
	if err != nil {
		return fmt.Errorf("invalid expense amount %q: %w", amount, err)
	}
	date, err := t.resolveDate(day)
	if err != nil {
		return err
	}

	now := time.Now()
	expense := &model.ExpenseModel{
		ID:          uuid.New(),
		Date:        date,
		Category:    category,
		Description: description,
		Amount:      value,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := t.db.DbConn.Create(expense).Error; err != nil {
		return err
	}
	t.expenseID = expense.ID
	return nil
}

func (t *testContext) theDayWasClosed(day string) error {
	date, err := t.resolveDate(day)
	if err != nil {
		return err
	}

	closing := &model.ClosingModel{
		ID:              uuid.New(),
		Date:            period.DayKey(date),
		RevenueTotal:    decimal.Zero,
		RevenueCash:     decimal.Zero,
		RevenuePix:      decimal.Zero,
		RevenueCard:     decimal.Zero,
		ExpenseTotal:    decimal.Zero,
		ExpenseStaff:    decimal.Zero,
		ExpenseSupplies: decimal.Zero,
		ExpenseMeals:    decimal.Zero,
		ExpenseOther:    decimal.Zero,
		NetProfit:       decimal.Zero,
		CreatedAt:       time.Now(),
	}
	return t.db.DbConn.Create(closing).Error
}

func (t *testContext) iSendARequest(method, uri string) error {
	return t.doRequest(method, uri, nil)
}

func (t *testContext) iSendARequestWithBody(method, uri string, body *godog.DocString) error {
	payload := []byte(t.replacePlaceholders(body.Content))
	return t.doRequest(method, uri, payload)
}

func (t *testContext) doRequest(method, uri string, payload []byte) error {
	uri = t.replacePlaceholders(uri)

	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}
	request, err := http.NewRequest(method, t.server.URL+uri, body)
	if err != nil {
		return err
	}
	if payload != nil {
		request.Header.Set("Content-Type", "application/json")
	}

	response, err := t.client.Do(request)
	if err != nil {
		return err
	}
	defer response.Body.Close()

	t.response.status = response.StatusCode
	t.response.body, err = io.ReadAll(response.Body)
	if err != nil {
		return err
	}

	t.captureLastID()
	return nil
}

// captureLastID remembers the id of the last created or fetched resource so
// follow-up requests can reference it through the {{id}} placeholder.
func (t *testContext) captureLastID() {
	var parsed map[string]any
	if err := json.Unmarshal(t.response.body, &parsed); err != nil {
		return
	}
	if id, ok := parsed["id"].(string); ok {
		t.lastID = id
	}
}

func (t *testContext) replacePlaceholders(value string) string {
	now := time.Now()
	replacements := map[string]string{
		"{{cliente_id}}": t.customerID.String(),
		"{{lavagem_id}}": t.washID.String(),
		"{{despesa_id}}": t.expenseID.String(),
		"{{id}}":         t.lastID,
		"{{today}}":      period.DayKey(now),
		"{{yesterday}}":  period.DayKey(now.AddDate(0, 0, -1)),
	}
	for placeholder, replacement := range replacements {
		value = strings.ReplaceAll(value, placeholder, replacement)
	}
	return value
}

// resolveDate turns "today", "yesterday" or a YYYY-MM-DD key into a concrete
// instant at midday, keeping seeded rows clear of day-window boundaries.
func (t *testContext) resolveDate(day string) (time.Time, error) {
	switch day {
	case "today":
		return period.Day(time.Now()).Start.Add(12 * time.Hour), nil
	case "yesterday":
		return period.Day(time.Now().AddDate(0, 0, -1)).Start.Add(12 * time.Hour), nil
	default:
		date, err := period.ParseDayKey(day)
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid day %q: %w", day, err)
		}
		return period.Day(date).Start.Add(12 * time.Hour), nil
	}
}

func (t *testContext) theResponseStatusCodeShouldBe(expected int) error {
	if t.response.status != expected {
		return fmt.Errorf("expected status %d, got %d. body: %s", expected, t.response.status, string(t.response.body))
	}
	return nil
}

func (t *testContext) theResponseShouldContain(expected string) error {
	expected = t.replacePlaceholders(expected)
	if !strings.Contains(string(t.response.body), expected) {
		return fmt.Errorf("expected response to contain %q. body: %s", expected, string(t.response.body))
	}
	return nil
}

func (t *testContext) theResponseFieldShouldBe(path, expected string) error {
	expected = t.replacePlaceholders(expected)
	value, err := t.getFieldValue(path)
	if err != nil {
		return err
	}
	actual := formatJSONValue(value)
	if actual != expected {
		return fmt.Errorf("expected field %q to be %q, got %q. body: %s", path, expected, actual, string(t.response.body))
	}
	return nil
}

func (t *testContext) theResponseFieldShouldExist(path string) error {
	if _, err := t.getFieldValue(path); err != nil {
		return err
	}
	return nil
}

func (t *testContext) theResponseFieldShouldBeNull(path string) error {
	value, err := t.getFieldValue(path)
	if err != nil {
		return err
	}
	if value != nil {
		return fmt.Errorf("expected field %q to be null, got %v", path, value)
	}
	return nil
}

func (t *testContext) theResponseListShouldHaveItems(path string, expected int) error {
	value, err := t.getFieldValue(path)
	if err != nil {
		return err
	}
	list, ok := value.([]any)
	if !ok {
		return fmt.Errorf("field %q is not a list. body: %s", path, string(t.response.body))
	}
	if len(list) != expected {
		return fmt.Errorf("expected list %q to have %d items, got %d", path, expected, len(list))
	}
	return nil
}

func (t *testContext) theResponseRootListShouldHaveItems(expected int) error {
	var list []any
	if err := json.Unmarshal(t.response.body, &list); err != nil {
		return fmt.Errorf("response is not a list: %w. body: %s", err, string(t.response.body))
	}
	if len(list) != expected {
		return fmt.Errorf("expected %d items, got %d", expected, len(list))
	}
	return nil
}

func (t *testContext) theTableShouldHaveRows(table string, expected int) error {
	entry, ok := t.db.GetModel(table)
	if !ok {
		return fmt.Errorf("unknown table %q", table)
	}

	slicePointer := reflect.New(reflect.SliceOf(reflect.TypeOf(entry).Elem()))
	if err := t.db.DbConn.Table(table).Find(slicePointer.Interface()).Error; err != nil {
		return err
	}
	rows := slicePointer.Elem().Len()
	if rows != expected {
		return fmt.Errorf("expected table %q to have %d rows, got %d", table, expected, rows)
	}
	return nil
}

// getFieldValue walks a dot-separated path through the response JSON. Numeric
// segments index into arrays, as in "porTipo.0.tipo".
func (t *testContext) getFieldValue(path string) (any, error) {
	var parsed any
	if err := json.Unmarshal(t.response.body, &parsed); err != nil {
		return nil, fmt.Errorf("response is not valid JSON: %w. body: %s", err, string(t.response.body))
	}

	current := parsed
	for _, segment := range strings.Split(path, ".") {
		switch value := current.(type) {
		case map[string]any:
			next, ok := value[segment]
			if !ok {
				return nil, fmt.Errorf("field %q not found in response. body: %s", path, string(t.response.body))
			}
			current = next
		case []any:
			index, err := strconv.Atoi(segment)
			if err != nil {
				return nil, fmt.Errorf("segment %q of %q is not an array index", segment, path)
			}
			if index < 0 || index >= len(value) {
				return nil, fmt.Errorf("index %d of %q out of range (len %d)", index, path, len(value))
			}
			current = value[index]
		default:
			return nil, fmt.Errorf("cannot descend into field %q at segment %q", path, segment)
		}
	}
	return current, nil
}

func formatJSONValue(value any) string {
	switch v := value.(type) {
	case nil:
		return "null"
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", v)
	}
}
