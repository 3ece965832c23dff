package steps

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/cucumber/godog"
)

func registerRequestSteps(ctx *godog.ScenarioContext, t *testContext) {
	ctx.Step(`^the header "([^"]*)" is "([^"]*)"$`, t.theHeaderIs)
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)"$`, t.iSendRequest)
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, t.iSendRequestWithBody)
	ctx.Step(`^I remember the response field "([^"]*)" as "([^"]*)"$`, t.iRememberTheResponseField)
	ctx.Step(`^the response status should be (\d+)$`, t.theResponseStatusShouldBe)
	ctx.Step(`^the response field "([^"]*)" should be "([^"]*)"$`, t.theResponseFieldShouldBe)
	ctx.Step(`^the response field "([^"]*)" should be (-?\d+(?:\.\d+)?)$`, t.theResponseFieldShouldBeNumber)
	ctx.Step(`^the response field "([^"]*)" should be (true|false)$`, t.theResponseFieldShouldBeBool)
	ctx.Step(`^the response field "([^"]*)" should exist$`, t.theResponseFieldShouldExist)
	ctx.Step(`^the response field "([^"]*)" should have (\d+) items?$`, t.theResponseFieldShouldHaveItems)
}

func (t *testContext) theHeaderIs(key, value string) error {
	t.headers[key] = t.replacePlaceholders(value)
	return nil
}

func (t *testContext) iSendRequest(method, path string) error {
	return t.send(method, path, nil)
}

func (t *testContext) iSendRequestWithBody(method, path string, body *godog.DocString) error {
	return t.send(method, path, []byte(t.replacePlaceholders(body.Content)))
}

// send performs the request, attaching the session token when one is known.
func (t *testContext) send(method, path string, body []byte) error {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequest(method, t.server.URL+t.replacePlaceholders(path), reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if t.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+t.accessToken)
	}
	for key, value := range t.headers {
		req.Header.Set(key, value)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	t.response = &response{status: resp.StatusCode}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &t.response.body); err != nil {
			return fmt.Errorf("invalid JSON response %q: %w", string(raw), err)
		}
	}

	if id, ok := getFieldValue(t.response.body, "id"); ok {
		t.lastID = fmt.Sprint(id)
	}
	return nil
}

// replacePlaceholders substitutes {access_token}, {refresh_token}, {last_id}
// and any remembered {name}.
func (t *testContext) replacePlaceholders(value string) string {
	replacements := []string{
		"{access_token}", t.accessToken,
		"{refresh_token}", t.refreshToken,
		"{last_id}", t.lastID,
	}
	for name, id := range t.ids {
		replacements = append(replacements, "{"+name+"}", id)
	}
	return strings.NewReplacer(replacements...).Replace(value)
}

func (t *testContext) iRememberTheResponseField(field, name string) error {
	value, err := t.responseField(field)
	if err != nil {
		return err
	}
	t.ids[name] = fmt.Sprint(value)
	return nil
}

func (t *testContext) theResponseStatusShouldBe(status int) error {
	if t.response == nil {
		return fmt.Errorf("no request was sent")
	}
	if t.response.status != status {
		body, _ := json.Marshal(t.response.body)
		return fmt.Errorf("expected status %d, got %d: %s", status, t.response.status, string(body))
	}
	return nil
}

func (t *testContext) theResponseFieldShouldBe(field, expected string) error {
	value, err := t.responseField(field)
	if err != nil {
		return err
	}
	expected = t.replacePlaceholders(expected)
	if fmt.Sprint(value) != expected {
		return fmt.Errorf("expected %s to be %q, got %v", field, expected, value)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldBeNumber(field, expected string) error {
	value, err := t.responseField(field)
	if err != nil {
		return err
	}
	want, err := strconv.ParseFloat(expected, 64)
	if err != nil {
		return err
	}
	got, ok := value.(float64)
	if !ok || got != want {
		return fmt.Errorf("expected %s to be %v, got %v", field, want, value)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldBeBool(field, expected string) error {
	value, err := t.responseField(field)
	if err != nil {
		return err
	}
	if fmt.Sprint(value) != expected {
		return fmt.Errorf("expected %s to be %s, got %v", field, expected, value)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldExist(field string) error {
	_, err := t.responseField(field)
	return err
}

func (t *testContext) theResponseFieldShouldHaveItems(field string, count int) error {
	value, err := t.responseField(field)
	if err != nil {
		return err
	}
	items, ok := value.([]any)
	if !ok {
		return fmt.Errorf("field %s is not a list: %v", field, value)
	}
	if len(items) != count {
		return fmt.Errorf("expected %s to have %d items, got %d", field, count, len(items))
	}
	return nil
}

func (t *testContext) responseField(field string) (any, error) {
	if t.response == nil {
		return nil, fmt.Errorf("no request was sent")
	}
	value, ok := getFieldValue(t.response.body, field)
	if !ok {
		body, _ := json.Marshal(t.response.body)
		return nil, fmt.Errorf("field %s not found in response: %s", field, string(body))
	}
	return value, nil
}

// getFieldValue walks a dot separated path, where numeric segments index lists.
func getFieldValue(data any, path string) (any, bool) {
	current := data
	for _, part := range strings.Split(path, ".") {
		switch node := current.(type) {
		case map[string]any:
			value, ok := node[part]
			if !ok {
				return nil, false
			}
			current = value
		case []any:
			index, err := strconv.Atoi(part)
			if err != nil || index < 0 || index >= len(node) {
				return nil, false
			}
			current = node[index]
		default:
			return nil, false
		}
	}
	return current, true
}
