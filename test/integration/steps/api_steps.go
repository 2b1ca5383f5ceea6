package steps

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/cucumber/godog"
)

func registerAPISteps(ctx *godog.ScenarioContext, t *TestContext) {
	// Background steps
	ctx.Step(`^the API server is running$`, t.theAPIServerIsRunning)

	// Header steps
	ctx.Step(`^the header contains the key "([^"]*)" with "([^"]*)"$`, t.theHeaderContainsTheKeyWith)

	// Request steps
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)"$`, t.iSendARequestTo)
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, t.iSendARequestToWithBody)
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)" with raw body "([^"]*)"$`, t.iSendARequestToWithRawBody)

	// Response assertion steps
	ctx.Step(`^the response status should be (\d+)$`, t.theResponseStatusShouldBe)
	ctx.Step(`^the response should be JSON$`, t.theResponseShouldBeJSON)
	ctx.Step(`^the response should contain "([^"]*)"$`, t.theResponseShouldContain)
	ctx.Step(`^the response field "([^"]*)" should be "([^"]*)"$`, t.theResponseFieldShouldBe)
	ctx.Step(`^the response field "([^"]*)" should exist$`, t.theResponseFieldShouldExist)
	ctx.Step(`^the response field "([^"]*)" should contain "([^"]*)"$`, t.theResponseFieldShouldContain)
	ctx.Step(`^the response should be a list of (\d+) items?$`, t.theResponseShouldBeAListOf)
	ctx.Step(`^I remember the response field "([^"]*)" as "([^"]*)"$`, t.iRememberTheResponseFieldAs)
}

func (t *TestContext) theAPIServerIsRunning() error {
	resp, err := t.client.Get(shared.server.URL + "/health")
	if err != nil {
		return fmt.Errorf("test server is not running: %w", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("health check returned %d", resp.StatusCode)
	}
	return nil
}

func (t *TestContext) theHeaderContainsTheKeyWith(key, value string) error {
	t.headers[key] = value
	return nil
}

func (t *TestContext) iSendARequestTo(method, path string) error {
	return t.executeRequest(method, t.replacePlaceholders(path), nil)
}

func (t *TestContext) iSendARequestToWithBody(method, path string, body *godog.DocString) error {
	var payload []byte
	if body != nil && body.Content != "" {
		payload = []byte(t.replacePlaceholders(body.Content))
	}
	return t.executeRequest(method, t.replacePlaceholders(path), payload)
}

func (t *TestContext) iSendARequestToWithRawBody(method, path, body string) error {
	return t.executeRequest(method, t.replacePlaceholders(path), []byte(body))
}

// replacePlaceholders substitutes {{name}} with remembered values.
func (t *TestContext) replacePlaceholders(content string) string {
	for name, value := range t.vars {
		content = strings.ReplaceAll(content, "{{"+name+"}}", value)
	}
	return content
}

func (t *TestContext) executeRequest(method, path string, payload []byte) error {
	var bodyReader io.Reader
	if payload != nil {
		bodyReader = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, shared.server.URL+path, bodyReader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	for key, value := range t.headers {
		req.Header.Set(key, value)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	t.response = &response{status: resp.StatusCode, raw: string(bodyBytes)}

	var parsed any
	if err := json.Unmarshal(bodyBytes, &parsed); err != nil {
		t.response.body = string(bodyBytes)
		return nil
	}
	t.response.body = parsed

	// Capture the created user so later steps can use {{user_id}}
	if object, ok := parsed.(map[string]any); ok {
		if id, ok := object["user_id"].(string); ok && id != "" {
			t.vars["user_id"] = id
		}
	}
	return nil
}

func (t *TestContext) theResponseStatusShouldBe(expectedStatus int) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if t.response.status != expectedStatus {
		return fmt.Errorf("expected status %d, got %d (body: %s)", expectedStatus, t.response.status, t.response.raw)
	}
	return nil
}

func (t *TestContext) theResponseShouldBeJSON() error {
	if t.response == nil {
		return errors.New("no response received")
	}
	switch t.response.body.(type) {
	case map[string]any, []any:
		return nil
	default:
		return fmt.Errorf("response is not JSON: %s", t.response.raw)
	}
}

func (t *TestContext) theResponseShouldContain(field string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	body, ok := t.response.body.(map[string]any)
	if !ok {
		return fmt.Errorf("response is not a JSON object: %s", t.response.raw)
	}
	if _, exists := body[field]; !exists {
		return fmt.Errorf("response does not contain field '%s': %s", field, t.response.raw)
	}
	return nil
}

func (t *TestContext) theResponseFieldShouldBe(field, expectedValue string) error {
	value, err := t.responseField(field)
	if err != nil {
		return err
	}

	actualValue := fmt.Sprintf("%v", value)
	if actualValue != t.replacePlaceholders(expectedValue) {
		return fmt.Errorf("field '%s' expected '%s', got '%s'", field, expectedValue, actualValue)
	}
	return nil
}

func (t *TestContext) theResponseFieldShouldExist(field string) error {
	_, err := t.responseField(field)
	return err
}

func (t *TestContext) theResponseFieldShouldContain(field, fragment string) error {
	value, err := t.responseField(field)
	if err != nil {
		return err
	}

	if actual := fmt.Sprintf("%v", value); !strings.Contains(actual, fragment) {
		return fmt.Errorf("field '%s' expected to contain '%s', got '%s'", field, fragment, actual)
	}
	return nil
}

func (t *TestContext) theResponseShouldBeAListOf(count int) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	list, ok := t.response.body.([]any)
	if !ok {
		return fmt.Errorf("response is not a JSON list: %s", t.response.raw)
	}
	if len(list) != count {
		return fmt.Errorf("expected %d items, got %d: %s", count, len(list), t.response.raw)
	}
	return nil
}

func (t *TestContext) iRememberTheResponseFieldAs(field, name string) error {
	value, err := t.responseField(field)
	if err != nil {
		return err
	}
	t.vars[name] = fmt.Sprintf("%v", value)
	return nil
}

func (t *TestContext) responseField(field string) (any, error) {
	if t.response == nil {
		return nil, errors.New("no response received")
	}

	value := getFieldValue(t.response.body, field)
	if value == nil {
		return nil, fmt.Errorf("field '%s' not found in response: %s", field, t.response.raw)
	}
	return value, nil
}

// getFieldValue walks a dot separated path; numeric segments index into lists.
func getFieldValue(object any, dotSeparatedField string) any {
	field := object
	for _, currentField := range strings.Split(dotSeparatedField, ".") {
		switch node := field.(type) {
		case []any:
			i, err := strconv.Atoi(currentField)
			if err != nil || i < 0 || i >= len(node) {
				return nil
			}
			field = node[i]
		case map[string]any:
			field = node[currentField]
		default:
			return nil
		}
	}
	return field
}
