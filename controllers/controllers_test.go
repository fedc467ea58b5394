package controllers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"shopkart/config"
	"shopkart/repositories"
	"shopkart/routes"
)

func newTestServer(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dataDir := t.TempDir()
	staticDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(staticDir, "app.js"), []byte("// asset"), 0o644); err != nil {
		t.Fatalf("Seed static asset: %v", err)
	}
	seed := `[{"id":1,"name":"Widget","category":"Tools","price":10,"stock":3,"image":"/static/img/widget.jpg"}]`
	if err := os.WriteFile(filepath.Join(dataDir, "products.json"), []byte(seed), 0o644); err != nil {
		t.Fatalf("Seed products: %v", err)
	}

	t.Setenv("DATA_DIR", dataDir)
	t.Setenv("STATIC_DIR", staticDir)
	config.LoadConfig()

	router := gin.New()
	routes.SetupRoutes(router, repositories.NewFileStore(dataDir))
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var decoded map[string]any
	if strings.HasPrefix(strings.TrimSpace(w.Body.String()), "{") {
		if err := json.Unmarshal(w.Body.Bytes(), &decoded); err != nil {
			t.Fatalf("Decode %s %s response: %v", method, path, err)
		}
	}
	return w, decoded
}

func TestGetProducts(t *testing.T) {
	router := newTestServer(t)

	w, _ := doJSON(t, router, http.MethodGet, "/api/products", "")
	if w.Code != 200 {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var products []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &products); err != nil {
		t.Fatalf("Decode products: %v", err)
	}
	if len(products) != 1 || products[0]["name"] != "Widget" {
		t.Errorf("Unexpected products payload: %s", w.Body.String())
	}
}

// Full walk through the register/login/order flow over HTTP.
func TestAccountAndOrderFlow(t *testing.T) {
	router := newTestServer(t)

	w, body := doJSON(t, router, http.MethodPost, "/api/register",
		`{"name":"A","email":"A@x.com","password":"p"}`)
	if w.Code != 200 {
		t.Fatalf("Register: expected 200, got %d: %s", w.Code, w.Body.String())
	}
	user, _ := body["user"].(map[string]any)
	if user == nil || user["id"] != float64(1) {
		t.Fatalf("Register: expected user id 1, got %v", body)
	}

	w, body = doJSON(t, router, http.MethodPost, "/api/register",
		`{"name":"B","email":"a@x.com","password":"q"}`)
	if w.Code != 400 {
		t.Fatalf("Duplicate register: expected 400, got %d", w.Code)
	}
	if body["message"] != "Email already registered" {
		t.Errorf("Duplicate register message: %v", body["message"])
	}

	w, body = doJSON(t, router, http.MethodPost, "/api/login",
		`{"email":"a@x.com","password":"p"}`)
	if w.Code != 200 {
		t.Fatalf("Login: expected 200, got %d: %s", w.Code, w.Body.String())
	}
	user, _ = body["user"].(map[string]any)
	if user == nil || user["id"] != float64(1) {
		t.Fatalf("Login: expected user id 1, got %v", body)
	}

	w, body = doJSON(t, router, http.MethodPost, "/api/order",
		`{"userEmail":"a@x.com","name":"A","phone":"1","address":"2","city":"3",
		  "items":[{"id":1,"name":"Widget","price":10,"quantity":2}],"total":20}`)
	if w.Code != 200 {
		t.Fatalf("Order: expected 200, got %d: %s", w.Code, w.Body.String())
	}
	orderID, _ := body["orderId"].(string)
	if orderID == "" {
		t.Fatalf("Order: missing orderId in %v", body)
	}

	w, _ = doJSON(t, router, http.MethodGet, "/api/orders?user=a@x.com", "")
	if w.Code != 200 {
		t.Fatalf("List orders: expected 200, got %d", w.Code)
	}
	var orders []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &orders); err != nil {
		t.Fatalf("Decode orders: %v", err)
	}
	if len(orders) != 1 {
		t.Fatalf("Expected exactly 1 order, got %d", len(orders))
	}
	if orders[0]["id"] != orderID || orders[0]["total"] != float64(20) {
		t.Errorf("Unexpected order payload: %v", orders[0])
	}
}

func TestLoginFailures(t *testing.T) {
	router := newTestServer(t)

	doJSON(t, router, http.MethodPost, "/api/register",
		`{"name":"A","email":"a@x.com","password":"p"}`)

	w, body := doJSON(t, router, http.MethodPost, "/api/login",
		`{"email":"a@x.com","password":"wrong"}`)
	if w.Code != 401 {
		t.Fatalf("Wrong password: expected 401, got %d", w.Code)
	}
	if body["message"] != "Invalid credentials" {
		t.Errorf("Unexpected message: %v", body["message"])
	}

	w, _ = doJSON(t, router, http.MethodPost, "/api/login",
		`{"email":"nobody@x.com","password":"p"}`)
	if w.Code != 401 {
		t.Fatalf("Unknown email: expected 401, got %d", w.Code)
	}
}

func TestRegisterMissingFields(t *testing.T) {
	router := newTestServer(t)

	w, body := doJSON(t, router, http.MethodPost, "/api/register",
		`{"email":"a@x.com","password":"p"}`)
	if w.Code != 400 {
		t.Fatalf("Expected 400, got %d", w.Code)
	}
	if body["message"] != "Missing fields" {
		t.Errorf("Unexpected message: %v", body["message"])
	}
}

func TestPlaceOrderValidation(t *testing.T) {
	router := newTestServer(t)

	w, body := doJSON(t, router, http.MethodPost, "/api/order",
		`{"userEmail":"a@x.com","items":[],"total":0}`)
	if w.Code != 400 {
		t.Fatalf("Empty items: expected 400, got %d", w.Code)
	}
	if body["message"] != "Invalid order" {
		t.Errorf("Unexpected message: %v", body["message"])
	}

	w, body = doJSON(t, router, http.MethodPost, "/api/order",
		`{"userEmail":"a@x.com","items":[{"id":1,"name":"Widget","price":10,"quantity":2}],"total":5}`)
	if w.Code != 400 {
		t.Fatalf("Total mismatch: expected 400, got %d", w.Code)
	}
	if body["message"] != "Order total mismatch" {
		t.Errorf("Unexpected message: %v", body["message"])
	}

	w, _ = doJSON(t, router, http.MethodGet, "/api/orders", "")
	var orders []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &orders); err != nil {
		t.Fatalf("Decode orders: %v", err)
	}
	if len(orders) != 0 {
		t.Errorf("Rejected orders were persisted: %d", len(orders))
	}
}

func TestStaticAssets(t *testing.T) {
	router := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/static/app.js", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != 200 || !strings.Contains(w.Body.String(), "// asset") {
		t.Errorf("Expected asset bytes, got %d: %s", w.Code, w.Body.String())
	}

	req = httptest.NewRequest(http.MethodGet, "/static/missing.js", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != 404 {
		t.Errorf("Expected 404 for missing asset, got %d", w.Code)
	}
}
