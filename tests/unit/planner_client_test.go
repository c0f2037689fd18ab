package unit

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/geo3dhub/geo-hub-backend/internal/projects/planner"
)

func TestPlannerClient_Generate(t *testing.T) {
	// Create a test server
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/roadmaps/generate" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if r.Method != http.MethodPost {
			t.Errorf("unexpected method: %s", r.Method)
		}

		var req planner.GenerateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if req.ProjectDescription != "Two-storey office building" {
			t.Errorf("unexpected description: %s", req.ProjectDescription)
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"ok": true, "roadmap": [{"id": "p1", "name": "Planning", "description": "", "milestones": [{"id": "m1", "name": "Survey", "description": "", "status": "Pending"}]}]}`))
	}))
	defer server.Close()

	client := planner.NewClient(server.URL)
	ctx := context.Background()

	resp, err := client.Generate(ctx, planner.GenerateRequest{
		ProjectDescription: "Two-storey office building",
		StartDate:          "2026-09-01T00:00:00Z",
		Deadline:           "2027-03-01T00:00:00Z",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(resp.Roadmap) != 1 {
		t.Fatalf("expected 1 phase, got %d", len(resp.Roadmap))
	}
	if resp.Roadmap[0].Milestones[0].ID != "m1" {
		t.Errorf("unexpected milestone id: %s", resp.Roadmap[0].Milestones[0].ID)
	}
}

func TestPlannerClient_Generate_UpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"ok": false}`))
	}))
	defer server.Close()

	client := planner.NewClient(server.URL)

	_, err := client.Generate(context.Background(), planner.GenerateRequest{ProjectDescription: "x"})
	if err == nil {
		t.Fatal("expected error, got nil")
	}
}

func TestPlannerClient_Generate_NotOK(t *testing.T) {
	// A 200 with ok=false is still a failed generation.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"ok": false, "roadmap": []}`))
	}))
	defer server.Close()

	client := planner.NewClient(server.URL)

	_, err := client.Generate(context.Background(), planner.GenerateRequest{ProjectDescription: "x"})
	if err == nil {
		t.Fatal("expected error, got nil")
	}
}

func TestPlannerClient_Generate_MalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`not json`))
	}))
	defer server.Close()

	client := planner.NewClient(server.URL)

	_, err := client.Generate(context.Background(), planner.GenerateRequest{ProjectDescription: "x"})
	if err == nil {
		t.Fatal("expected error, got nil")
	}
}

func TestPlannerClient_Generate_TransportError(t *testing.T) {
	client := planner.NewClient("http://invalid-url-that-does-not-exist")

	_, err := client.Generate(context.Background(), planner.GenerateRequest{ProjectDescription: "x"})
	if err == nil {
		t.Fatal("expected error, got nil")
	}
}
