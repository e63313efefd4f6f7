package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/madworx/shiftsync/pkg/response"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func okHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// ── BodyLimit ──

func TestBodyLimit_Oversize(t *testing.T) {
	r := gin.New()
	r.Use(BodyLimit(16))
	r.POST("/echo", okHandler)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/echo", bytes.NewReader(make([]byte, 64)))
	r.ServeHTTP(w, req)

	if w.Code != http.StatusRequestEntityTooLarge {
		t.Errorf("超限请求体期望 413，实际=%d", w.Code)
	}
	var body response.ErrorBody
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil || body.Error == "" {
		t.Error("错误响应应为 {\"error\": ...}")
	}
}

func TestBodyLimit_WithinLimit(t *testing.T) {
	r := gin.New()
	r.Use(BodyLimit(1 << 20))
	r.POST("/echo", okHandler)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/echo", strings.NewReader(`{"a":1}`))
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("限内请求体期望 200，实际=%d", w.Code)
	}
}

// ── RateLimit ──

// Redis 未配置时限流降级放行，不阻断请求
func TestRateLimit_NilRedisDegrades(t *testing.T) {
	r := gin.New()
	r.Use(RateLimit(nil, 1, time.Minute))
	r.GET("/ping", okHandler)

	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/ping", nil)
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("第 %d 次请求应放行，实际=%d", i+1, w.Code)
		}
	}
}

// ── SecurityHeaders ──

func TestSecurityHeaders(t *testing.T) {
	r := gin.New()
	r.Use(SecurityHeaders())
	r.GET("/ping", okHandler)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/ping", nil)
	r.ServeHTTP(w, req)

	want := map[string]string{
		"X-Frame-Options":        "DENY",
		"X-Content-Type-Options": "nosniff",
		"Referrer-Policy":        "strict-origin-when-cross-origin",
	}
	for k, v := range want {
		if got := w.Header().Get(k); got != v {
			t.Errorf("响应头 %s 期望 %q，实际=%q", k, v, got)
		}
	}
	if w.Header().Get("Content-Security-Policy") == "" {
		t.Error("应设置 Content-Security-Policy")
	}
}

// ── RequestID + Logger ──

func TestRequestID_GeneratedAndEchoed(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/ping", okHandler)

	// 未携带时自动生成
	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/ping", nil)
	r.ServeHTTP(w, req)
	if w.Header().Get("X-Request-ID") == "" {
		t.Error("应生成并回写 X-Request-ID")
	}

	// 携带合法 id 时原样回显
	w = httptest.NewRecorder()
	req = httptest.NewRequest("GET", "/ping", nil)
	req.Header.Set("X-Request-ID", "req-abc")
	r.ServeHTTP(w, req)
	if got := w.Header().Get("X-Request-ID"); got != "req-abc" {
		t.Errorf("应回显传入的 X-Request-ID，实际=%q", got)
	}
}

// 访问日志应携带 RequestID 注入的 request_id 字段
func TestLogger_IncludesRequestID(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	logger := zap.New(core)

	r := gin.New()
	r.Use(RequestID())
	r.Use(Logger(logger))
	r.GET("/ping", okHandler)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/ping", nil)
	req.Header.Set("X-Request-ID", "req-log-1")
	r.ServeHTTP(w, req)

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("期望 1 条访问日志，实际=%d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["request_id"] != "req-log-1" {
		t.Errorf("访问日志应携带 request_id=req-log-1，实际=%v", fields["request_id"])
	}
	if fields["path"] != "/ping" {
		t.Errorf("访问日志 path 不符: %v", fields["path"])
	}
}
