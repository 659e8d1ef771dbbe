package controllers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"banyadesk-backend/config"
	"banyadesk-backend/models"
)

func seedUser(t *testing.T, username, password, role string) models.User {
	t.Helper()
	user := models.User{
		Username: username,
		Password: password,
		Name:     username,
		Role:     role,
		IsActive: true,
	}
	if err := config.DB.Create(&user).Error; err != nil {
		t.Fatalf("seed user %s: %v", username, err)
	}
	return user
}

func TestLoginIssuesUsableToken(t *testing.T) {
	r := setupRouter(t)
	seedUser(t, "ona", "banya-pass-1", models.RoleAdmin)

	w := doJSON(t, r, http.MethodPost, "/auth/login", "",
		json.RawMessage(`{"username": "ona", "password": "banya-pass-1"}`))
	if w.Code != http.StatusOK {
		t.Fatalf("login: got %d, body %s", w.Code, w.Body.String())
	}

	var response struct {
		Token string `json:"token"`
		User  struct {
			Username string `json:"username"`
			Role     string `json:"role"`
		} `json:"user"`
	}
	decodeBody(t, w, &response)
	if response.Token == "" {
		t.Fatal("no token in login response")
	}
	if response.User.Role != models.RoleAdmin {
		t.Fatalf("role in response: %s", response.User.Role)
	}

	// The issued token opens protected routes.
	w = doJSON(t, r, http.MethodGet, "/auth/me", response.Token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("me with issued token: got %d", w.Code)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	r := setupRouter(t)
	seedUser(t, "ona", "banya-pass-1", models.RoleAdmin)

	w := doJSON(t, r, http.MethodPost, "/auth/login", "",
		json.RawMessage(`{"username": "ona", "password": "wrong"}`))
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("wrong password: got %d, want 401", w.Code)
	}

	w = doJSON(t, r, http.MethodPost, "/auth/login", "",
		json.RawMessage(`{"username": "nobody", "password": "whatever"}`))
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("unknown user: got %d, want 401", w.Code)
	}
}

func TestRegisterIsBossOnly(t *testing.T) {
	r := setupRouter(t)

	admin := tokenFor(t, models.RoleAdmin)
	w := doJSON(t, r, http.MethodPost, "/auth/register", admin,
		json.RawMessage(`{"username": "newbie", "password": "long-enough-8", "role": "admin"}`))
	if w.Code != http.StatusForbidden {
		t.Fatalf("admin register: got %d, want 403", w.Code)
	}

	boss := tokenFor(t, models.RoleBoss)
	w = doJSON(t, r, http.MethodPost, "/auth/register", boss,
		json.RawMessage(`{"username": "newbie", "password": "long-enough-8", "role": "admin"}`))
	if w.Code != http.StatusCreated {
		t.Fatalf("boss register: got %d, body %s", w.Code, w.Body.String())
	}

	// Unknown roles never enter the store.
	w = doJSON(t, r, http.MethodPost, "/auth/register", boss,
		json.RawMessage(`{"username": "other", "password": "long-enough-8", "role": "owner"}`))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("bad role: got %d, want 400", w.Code)
	}
}
