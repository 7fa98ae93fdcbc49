package economics

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func postJSON(t *testing.T, handler http.HandlerFunc, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest("POST", "/", bytes.NewBufferString(body))
	w := httptest.NewRecorder()
	handler(w, req)
	return w
}

func TestHandleDerive(t *testing.T) {
	w := postJSON(t, HandleDerive, `{"capital_name": "Standard Oven", "price": 15}`)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp DeriveResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Response did not decode: %v", err)
	}
	if len(resp.Records) != 11 {
		t.Errorf("Expected 11 records, got %d", len(resp.Records))
	}
	r := resp.Records[3]
	if r.TotalProduction != 45 || r.TotalProfit != 95 {
		t.Errorf("Labour-3 record wrong: %+v", r)
	}
	// Undefined rates serialize as null, the sentinel comes back on decode.
	if !bytes.Contains(w.Body.Bytes(), []byte(`"marginal_cost":null`)) {
		t.Errorf("Expected null marginal cost for labour 0 in payload")
	}
}

func TestHandleDeriveRejectsBadInput(t *testing.T) {
	if w := postJSON(t, HandleDerive, `{"capital_name": "Standard Oven", "price": 0}`); w.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for non-positive price, got %d", w.Code)
	}
	if w := postJSON(t, HandleDerive, `{"capital_name": "Solar Kiln", "price": 15}`); w.Code != http.StatusNotFound {
		t.Errorf("Expected 404 for unknown capital, got %d", w.Code)
	}
	if w := postJSON(t, HandleDerive, `not json`); w.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for malformed body, got %d", w.Code)
	}
}
