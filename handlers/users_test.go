// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/danielhkuo/mood-diary/auth"
	"github.com/danielhkuo/mood-diary/db"
	"github.com/danielhkuo/mood-diary/diary"
	"github.com/danielhkuo/mood-diary/models"
	"github.com/danielhkuo/mood-diary/testutil"
)

func TestRegister(t *testing.T) {
	store := setupTestStore(t)
	handler := NewUserHandler(store, testutil.GetTestConfig())

	tests := []struct {
		name           string
		requestBody    interface{}
		expectedStatus int
	}{
		{"valid registration", models.RegisterRequest{Username: "alice", Password: "pw1"}, http.StatusCreated},
		{"duplicate username", models.RegisterRequest{Username: "alice", Password: "pw2"}, http.StatusConflict},
		{"duplicate with spaces", models.RegisterRequest{Username: " alice ", Password: "pw2"}, http.StatusConflict},
		{"empty username", models.RegisterRequest{Username: "", Password: "pw"}, http.StatusBadRequest},
		{"empty password", models.RegisterRequest{Username: "bob", Password: ""}, http.StatusBadRequest},
		{"blank password", models.RegisterRequest{Username: "bob", Password: "   "}, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.MakeRequest("POST", "/users/register", tt.requestBody, nil)
			w := httptest.NewRecorder()
			handler.Register(w, req)

			testutil.AssertStatus(t, w, tt.expectedStatus)

			if tt.expectedStatus == http.StatusCreated {
				var resp models.RegisterResponse
				testutil.AssertJSON(t, w, &resp)
				if resp.UserID <= 0 {
					t.Errorf("Expected positive user_id, got %d", resp.UserID)
				}
			}
		})
	}
}

func TestRegister_BcryptPasswordTooLong(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	t.Cleanup(func() { conn.Close() })
	store := diary.NewStore(conn, db.SQLite, diary.WithPasswordScheme(auth.SchemeBcrypt))
	handler := NewUserHandler(store, testutil.GetTestConfig())

	body := models.RegisterRequest{Username: "alice", Password: strings.Repeat("x", 73)}
	req := testutil.MakeRequest("POST", "/users/register", body, nil)
	w := httptest.NewRecorder()
	handler.Register(w, req)

	testutil.AssertStatus(t, w, http.StatusBadRequest)

	var resp models.ErrorResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Message != "Password is too long" {
		t.Errorf("Expected too-long message, got %q", resp.Message)
	}
}

func TestRegister_InvalidJSON(t *testing.T) {
	store := setupTestStore(t)
	handler := NewUserHandler(store, testutil.GetTestConfig())

	req := httptest.NewRequest("POST", "/users/register", strings.NewReader("{bad"))
	w := httptest.NewRecorder()
	handler.Register(w, req)

	testutil.AssertStatus(t, w, http.StatusBadRequest)
}

func TestRegister_Guard(t *testing.T) {
	store := setupTestStore(t)
	handler := NewUserHandler(store, testutil.GetTestConfig())

	release, ok := handler.beginRegistration()
	if !ok {
		t.Fatal("Expected first registration to claim the guard")
	}

	// A second registration while one is open is refused
	req := testutil.MakeRequest("POST", "/users/register", models.RegisterRequest{Username: "bob", Password: "pw"}, nil)
	w := httptest.NewRecorder()
	handler.Register(w, req)
	testutil.AssertStatus(t, w, http.StatusConflict)

	release()

	req = testutil.MakeRequest("POST", "/users/register", models.RegisterRequest{Username: "bob", Password: "pw"}, nil)
	w = httptest.NewRecorder()
	handler.Register(w, req)
	testutil.AssertStatus(t, w, http.StatusCreated)

	// Guard belongs to the handler instance, not the process
	other := NewUserHandler(store, testutil.GetTestConfig())
	release, ok = handler.beginRegistration()
	if !ok {
		t.Fatal("Expected guard to be free after release")
	}
	defer release()
	if _, ok := other.beginRegistration(); !ok {
		t.Error("Expected a separate handler to have its own guard")
	}
}

func TestLogin(t *testing.T) {
	store := setupTestStore(t)
	cfg := testutil.GetTestConfig()
	handler := NewUserHandler(store, cfg)

	aliceID, err := store.Register(context.Background(), "alice", "pw1")
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name           string
		requestBody    models.LoginRequest
		expectedStatus int
	}{
		{"valid login", models.LoginRequest{Username: "alice", Password: "pw1"}, http.StatusOK},
		{"wrong password", models.LoginRequest{Username: "alice", Password: "wrong"}, http.StatusUnauthorized},
		{"unknown user", models.LoginRequest{Username: "nobody", Password: "pw1"}, http.StatusUnauthorized},
		{"empty username", models.LoginRequest{Username: "", Password: "pw1"}, http.StatusBadRequest},
		{"empty password", models.LoginRequest{Username: "alice", Password: ""}, http.StatusBadRequest},
	}

	var messages []string
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.MakeRequest("POST", "/users/login", tt.requestBody, nil)
			w := httptest.NewRecorder()
			handler.Login(w, req)

			testutil.AssertStatus(t, w, tt.expectedStatus)

			switch tt.expectedStatus {
			case http.StatusOK:
				var resp models.LoginResponse
				testutil.AssertJSON(t, w, &resp)
				if resp.UserID != aliceID {
					t.Errorf("Expected user_id %d, got %d", aliceID, resp.UserID)
				}
				userID, err := auth.ParseSessionToken(resp.Token, cfg.SessionSecret)
				if err != nil || userID != aliceID {
					t.Errorf("Token does not carry user %d: %d, %v", aliceID, userID, err)
				}
			case http.StatusUnauthorized:
				var resp models.ErrorResponse
				testutil.AssertJSON(t, w, &resp)
				messages = append(messages, resp.Message)
			}
		})
	}

	// Unknown user and wrong password must look the same
	if len(messages) == 2 && messages[0] != messages[1] {
		t.Errorf("Expected identical failure messages, got %q and %q", messages[0], messages[1])
	}
}
