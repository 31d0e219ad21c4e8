package health

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func TestCheckWithoutStreakStore(t *testing.T) {
	checker := NewChecker(nil, "test")

	report := checker.Check(context.Background())
	if report.Status != StatusReady {
		t.Errorf("Status = %v, want %v", report.Status, StatusReady)
	}
	if len(report.Checks) != 0 {
		t.Errorf("Checks = %v, want empty", report.Checks)
	}
}

func TestCheckDegradesWhenStreakStoreUnreachable(t *testing.T) {
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"})
	defer client.Close()

	checker := NewChecker(client, "test")

	report := checker.Check(context.Background())
	if report.Status != StatusDegrade {
		t.Errorf("Status = %v, want %v", report.Status, StatusDegrade)
	}

	check, ok := report.Checks["streak_store"]
	if !ok {
		t.Fatalf("Checks missing streak_store entry: %v", report.Checks)
	}
	if check.Status != StatusDegrade || check.Error == "" {
		t.Errorf("streak_store check = %+v, want degraded with error", check)
	}
}

func TestReadyHandlerReportsUnavailable(t *testing.T) {
	gin.SetMode(gin.TestMode)

	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"})
	defer client.Close()

	r := gin.New()
	r.GET("/health/ready", NewChecker(client, "test").ReadyHandler())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health/ready", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want %d", w.Code, http.StatusServiceUnavailable)
	}

	var report Report
	if err := json.Unmarshal(w.Body.Bytes(), &report); err != nil {
		t.Fatalf("decoding report: %v", err)
	}
	if report.Status != StatusDegrade {
		t.Errorf("report status = %v, want %v", report.Status, StatusDegrade)
	}
}

func TestLiveHandlerIgnoresDependencies(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.GET("/health/live", NewChecker(nil, "test").LiveHandler())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health/live", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", w.Code, http.StatusOK)
	}
}
