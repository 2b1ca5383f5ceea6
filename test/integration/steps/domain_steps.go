package steps

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"reflect"
	"strings"

	"github.com/cucumber/godog"
	"gorm.io/gorm"
)

func registerDomainSteps(ctx *godog.ScenarioContext, t *TestContext) {
	// User setup steps
	ctx.Step(`^a user exists with:$`, t.aUserExistsWith)

	// Advisor steps
	ctx.Step(`^the advisor responds with "([^"]*)"$`, t.theAdvisorRespondsWith)
	ctx.Step(`^the advisor fails with status (\d+)$`, t.theAdvisorFailsWithStatus)
	ctx.Step(`^the advisor should have received a prompt containing "([^"]*)"$`, t.theAdvisorShouldHaveReceivedAPromptContaining)

	// Job steps
	ctx.Step(`^the "([^"]*)" job runs$`, t.theJobRuns)
	ctx.Step(`^the report file should contain (\d+) lines?$`, t.theReportFileShouldContainLines)
	ctx.Step(`^the last report entry for the user should have "([^"]*)" equal to "([^"]*)"$`, t.theLastReportEntryShouldHave)

	// Database assertion steps
	ctx.Step(`^the db should contain (\d+) objects in the "([^"]*)" table$`, t.theDbShouldContainObjectsInTheTable)
	ctx.Step(`^the db should contain (\d+) objects in "([^"]*)" with the values$`, t.theDbShouldContainObjectsInWithTheValues)
}

func (t *TestContext) aUserExistsWith(body *godog.DocString) error {
	if err := t.iSendARequestToWithBody(http.MethodPost, "/api/users", body); err != nil {
		return err
	}
	if err := t.theResponseStatusShouldBe(http.StatusCreated); err != nil {
		return err
	}
	if t.vars["user_id"] == "" {
		return errors.New("user id missing from create response")
	}
	return nil
}

func (t *TestContext) theAdvisorRespondsWith(text string) error {
	shared.advisorAPI.SetResponse(-1, http.MethodPost, advisorPath, http.StatusOK, map[string]any{
		"generated_text": text,
	})
	return nil
}

func (t *TestContext) theAdvisorFailsWithStatus(status int) error {
	shared.advisorAPI.SetResponse(-1, http.MethodPost, advisorPath, status, map[string]any{
		"error": "Model is currently loading",
	})
	return nil
}

func (t *TestContext) theAdvisorShouldHaveReceivedAPromptContaining(fragment string) error {
	request := shared.advisorAPI.GetRequestBody(http.MethodPost, advisorPath, 0)
	if request == nil {
		return errors.New("advisor received no request")
	}

	prompt, _ := request["inputs"].(string)
	if !strings.Contains(prompt, fragment) {
		return fmt.Errorf("prompt does not contain %q: %s", fragment, prompt)
	}
	return nil
}

func (t *TestContext) theJobRuns(jobID string) error {
	j, ok := shared.injector.Job(jobID)
	if !ok {
		return fmt.Errorf("unknown job %q", jobID)
	}
	if !shared.injector.Scheduler.RunJob(context.Background(), j) {
		return fmt.Errorf("job %q was skipped", jobID)
	}
	return nil
}

func (t *TestContext) reportLines() ([]string, error) {
	f, err := os.Open(shared.reportPath)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	return lines, scanner.Err()
}

func (t *TestContext) theReportFileShouldContainLines(count int) error {
	lines, err := t.reportLines()
	if err != nil {
		return err
	}
	if len(lines) != count {
		return fmt.Errorf("expected %d report lines, got %d", count, len(lines))
	}
	return nil
}

func (t *TestContext) theLastReportEntryShouldHave(field, expected string) error {
	lines, err := t.reportLines()
	if err != nil {
		return err
	}
	if len(lines) == 0 {
		return errors.New("report file is empty")
	}

	var entry map[string]any
	if err := json.Unmarshal([]byte(lines[len(lines)-1]), &entry); err != nil {
		return fmt.Errorf("report line is not JSON: %w", err)
	}

	value := getFieldValue(entry, "user_"+t.vars["user_id"]+"."+field)
	if actual := fmt.Sprintf("%v", value); actual != expected {
		return fmt.Errorf("report field '%s' expected '%s', got '%s'", field, expected, actual)
	}
	return nil
}

func (t *TestContext) theDbShouldContainObjectsInTheTable(quantity int, table string) error {
	return t.countRows(quantity, table, nil)
}

func (t *TestContext) theDbShouldContainObjectsInWithTheValues(quantity int, table string, content *godog.DocString) error {
	var criteria map[string]any
	if err := json.Unmarshal([]byte(t.replacePlaceholders(content.Content)), &criteria); err != nil {
		return err
	}
	return t.countRows(quantity, table, criteria)
}

func (t *TestContext) countRows(quantity int, table string, criteria map[string]any) error {
	entity, ok := shared.db.GetModel(table)
	if !ok {
		return fmt.Errorf("table '%s' not found in models", table)
	}

	entityType := reflect.TypeOf(entity).Elem()
	entitySlicePtr := reflect.New(reflect.SliceOf(entityType))

	query := shared.db.DbConn.Unscoped()
	for key, value := range criteria {
		query = query.Where(fmt.Sprintf("%s = ?", key), value)
	}

	result := query.Find(entitySlicePtr.Interface())
	if result.Error != nil && !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return result.Error
	}

	if count := entitySlicePtr.Elem().Len(); count != quantity {
		return fmt.Errorf("expected %d objects in '%s' with criteria %v, got %d", quantity, table, criteria, count)
	}
	return nil
}
