package steps

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/cucumber/godog"

	"github.com/finance-tracker/planner/internal/integration/persistence/model"
)

const testPassword = "Str0ngPassw0rd!"

func registerDataSteps(ctx *godog.ScenarioContext, t *testContext) {
	ctx.Given(`^I am registered and logged in as "([^"]*)"$`, t.iAmRegisteredAndLoggedInAs)
	ctx.Given(`^my monthly income is "([^"]*)"$`, t.myMonthlyIncomeIs)
	ctx.Given(`^I budget (\d+(?:\.\d+)?) percent for "([^"]*)"$`, t.iBudgetPercentFor)
	ctx.Step(`^the budget for "([^"]*)" should have limit "([^"]*)" and spent "([^"]*)"$`, t.theBudgetShouldHave)
	ctx.Step(`^there should be no budget for "([^"]*)"$`, t.thereShouldBeNoBudgetFor)
	ctx.Step(`^my stored dataset should have (\d+) transactions?$`, t.myStoredDatasetShouldHaveTransactions)
	ctx.Step(`^the table "([^"]*)" should have (\d+) rows?$`, t.theTableShouldHaveRows)
	ctx.Step(`^the email queue is processed$`, t.theEmailQueueIsProcessed)
	ctx.Step(`^an email should have been sent to "([^"]*)" with subject containing "([^"]*)"$`, t.anEmailShouldHaveBeenSent)
	ctx.Step(`^(\d+) emails? should have been delivered$`, t.emailsShouldHaveBeenDelivered)
}

func (t *testContext) iAmRegisteredAndLoggedInAs(email string) error {
	body := fmt.Sprintf(`{"email": %q, "name": "Test User", "password": %q, "terms_accepted": true}`, email, testPassword)
	if err := t.send("POST", "/api/v1/auth/register", []byte(body)); err != nil {
		return err
	}
	if err := t.theResponseStatusShouldBe(201); err != nil {
		return err
	}

	accessToken, err := t.responseField("access_token")
	if err != nil {
		return err
	}
	refreshToken, err := t.responseField("refresh_token")
	if err != nil {
		return err
	}
	t.accessToken = fmt.Sprint(accessToken)
	t.refreshToken = fmt.Sprint(refreshToken)
	return nil
}

func (t *testContext) myMonthlyIncomeIs(amount string) error {
	if err := t.send("PUT", "/api/v1/budgets/income", []byte(fmt.Sprintf(`{"amount": %s}`, amount))); err != nil {
		return err
	}
	return t.theResponseStatusShouldBe(200)
}

func (t *testContext) iBudgetPercentFor(percentage, category string) error {
	body := fmt.Sprintf(`{"category": %q, "percentage": %s}`, category, percentage)
	if err := t.send("PUT", "/api/v1/budgets", []byte(body)); err != nil {
		return err
	}
	if t.response.status != 200 && t.response.status != 201 {
		return t.theResponseStatusShouldBe(201)
	}
	return nil
}

// currentBudgets fetches the budget list without replacing the last response.
func (t *testContext) currentBudgets() ([]any, error) {
	previous, previousID := t.response, t.lastID
	defer func() { t.response, t.lastID = previous, previousID }()

	if err := t.send("GET", "/api/v1/budgets", nil); err != nil {
		return nil, err
	}
	if err := t.theResponseStatusShouldBe(200); err != nil {
		return nil, err
	}
	value, err := t.responseField("budgets")
	if err != nil {
		return nil, err
	}
	budgets, ok := value.([]any)
	if !ok {
		return nil, fmt.Errorf("budgets is not a list: %v", value)
	}
	return budgets, nil
}

func (t *testContext) findBudget(category string) (map[string]any, error) {
	budgets, err := t.currentBudgets()
	if err != nil {
		return nil, err
	}
	for _, item := range budgets {
		budget, ok := item.(map[string]any)
		if ok && budget["category"] == category {
			return budget, nil
		}
	}
	return nil, nil
}

func (t *testContext) theBudgetShouldHave(category, limit, spent string) error {
	budget, err := t.findBudget(category)
	if err != nil {
		return err
	}
	if budget == nil {
		return fmt.Errorf("no budget found for %s", category)
	}
	if budget["limit"] != limit {
		return fmt.Errorf("expected %s limit %s, got %v", category, limit, budget["limit"])
	}
	if budget["spent"] != spent {
		return fmt.Errorf("expected %s spent %s, got %v", category, spent, budget["spent"])
	}
	return nil
}

func (t *testContext) thereShouldBeNoBudgetFor(category string) error {
	budget, err := t.findBudget(category)
	if err != nil {
		return err
	}
	if budget != nil {
		return fmt.Errorf("expected no budget for %s, got %v", category, budget)
	}
	return nil
}

func (t *testContext) myStoredDatasetShouldHaveTransactions(count int) error {
	var rows []model.AppDataModel
	if err := t.db.DbConn.Find(&rows).Error; err != nil {
		return err
	}
	if len(rows) != 1 {
		return fmt.Errorf("expected one stored dataset, got %d", len(rows))
	}

	data, err := model.DecodeAppData([]byte(rows[0].Payload))
	if err != nil {
		return err
	}
	if len(data.Transactions) != count {
		return fmt.Errorf("expected %d stored transactions, got %d", count, len(data.Transactions))
	}
	return nil
}

func (t *testContext) theTableShouldHaveRows(table string, count int) error {
	var actual int64
	if err := t.db.DbConn.Table(table).Count(&actual).Error; err != nil {
		return err
	}
	if actual != int64(count) {
		return fmt.Errorf("expected %d rows in %s, got %d", count, table, actual)
	}
	return nil
}

func (t *testContext) theEmailQueueIsProcessed() error {
	t.emailWorker.ProcessNow(context.Background())
	return nil
}

func (t *testContext) anEmailShouldHaveBeenSent(to, subject string) error {
	for index := 0; ; index++ {
		body := t.resendMock.GetRequestBody("POST", "/emails", index)
		if body == nil {
			break
		}
		recipients, _ := json.Marshal(body["to"])
		if strings.Contains(string(recipients), to) && strings.Contains(fmt.Sprint(body["subject"]), subject) {
			return nil
		}
	}
	return fmt.Errorf("no email to %s with subject containing %q was sent", to, subject)
}

func (t *testContext) emailsShouldHaveBeenDelivered(count int) error {
	if got := t.resendMock.RequestCount("POST", "/emails"); got != count {
		return fmt.Errorf("expected %d delivered emails, got %d", count, got)
	}
	return nil
}
