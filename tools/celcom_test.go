package tools

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSendSMSPayloadShape(t *testing.T) {
	var got map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode payload: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"responses":[]}`))
	}))
	defer server.Close()

	cl := CelcomClient{PartnerID: "p1", ApiKey: "k1", SendURL: server.URL}
	result := cl.SendSMS(context.Background(), "hello", []string{" 0700111222 ", "", "0700333444", "0700111222"}, "BELOVEDCHKE")

	if result.Status != "ok" {
		t.Fatalf("status = %s, want ok", result.Status)
	}
	if got["partnerID"] != "p1" || got["apikey"] != "k1" {
		t.Errorf("credentials missing from payload: %v", got)
	}
	if got["shortcode"] != "BELOVEDCHKE" || got["pass_type"] != "plain" {
		t.Errorf("payload = %v", got)
	}
	// trimmed, empties dropped, order preserved, duplicates kept
	if got["mobile"] != "0700111222,0700333444,0700111222" {
		t.Errorf("mobile = %v", got["mobile"])
	}
}

func TestSendSMSValidatesBeforeCalling(t *testing.T) {
	called := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer server.Close()

	cl := CelcomClient{SendURL: server.URL}

	if r := cl.SendSMS(context.Background(), "   ", []string{"0700"}, "X"); r.Status != "error" || r.Message != "Message cannot be empty." {
		t.Errorf("blank message result = %+v", r)
	}
	if r := cl.SendSMS(context.Background(), "hi", []string{" ", ""}, "X"); r.Status != "error" || r.Message != "No valid recipients provided." {
		t.Errorf("blank recipients result = %+v", r)
	}
	if called {
		t.Error("gateway must not be called for invalid input")
	}
}

func TestSendSMSHTTPErrorResult(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":"bad apikey"}`))
	}))
	defer server.Close()

	cl := CelcomClient{SendURL: server.URL}
	result := cl.SendSMS(context.Background(), "hi", []string{"0700"}, "X")

	if result.Status != "error" {
		t.Errorf("status = %s, want error", result.Status)
	}
	if result.HTTPStatus != http.StatusUnauthorized {
		t.Errorf("http status = %d, want 401", result.HTTPStatus)
	}
	if result.Response["error"] != "bad apikey" {
		t.Errorf("response = %v", result.Response)
	}
}

func TestGatewayRawTextFallback(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("Internal Server Error"))
	}))
	defer server.Close()

	cl := CelcomClient{BalanceURL: server.URL}
	result := cl.GetBalance(context.Background())

	if result.Status != "error" {
		t.Errorf("status = %s, want error", result.Status)
	}
	if result.Response["raw"] != "Internal Server Error" {
		t.Errorf("response = %v, want raw fallback", result.Response)
	}
}

func TestGatewayNetworkFailureIsResultNotError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	cl := CelcomClient{SendURL: server.URL, BalanceURL: server.URL}

	if r := cl.SendSMS(context.Background(), "hi", []string{"0700"}, "X"); r.Status != "error" || r.Message == "" {
		t.Errorf("send result = %+v, want error with description", r)
	}
	if r := cl.GetBalance(context.Background()); r.Status != "error" || r.Message == "" {
		t.Errorf("balance result = %+v, want error with description", r)
	}
}
