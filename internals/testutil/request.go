package testutil

import (
	"bytes"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
)

// DoJSON runs one request through the app and decodes the envelope.
func DoJSON(t *testing.T, app *fiber.App, method, path string, body any) (int, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := sonic.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read response: %v", err)
	}
	var out map[string]any
	if len(raw) > 0 {
		if err := sonic.Unmarshal(raw, &out); err != nil {
			t.Fatalf("decode response %q: %v", raw, err)
		}
	}
	return resp.StatusCode, out
}

// FieldErrorMsgs pulls the msg strings out of an aggregated validation error.
func FieldErrorMsgs(t *testing.T, envelope map[string]any) []string {
	t.Helper()

	list, ok := envelope["msg"].([]any)
	if !ok {
		t.Fatalf("msg is not a field-error list: %v", envelope["msg"])
	}
	out := make([]string, 0, len(list))
	for _, item := range list {
		fe, ok := item.(map[string]any)
		if !ok {
			t.Fatalf("field error is not an object: %v", item)
		}
		out = append(out, fe["msg"].(string))
	}
	return out
}
