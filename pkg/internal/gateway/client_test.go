package gateway

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSignInAnonymousStoresToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/auth/anonymous" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		var data struct {
			DeviceID string `json:"device_id"`
			Username string `json:"username"`
		}
		if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
			t.Fatal(err)
		}
		if data.DeviceID != "device-1" || data.Username != "alice" {
			t.Fatalf("unexpected payload %+v", data)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"token":"tok-123","account":{"id":1,"name":"alice"}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	account, err := client.SignInAnonymous(context.Background(), "device-1", "alice")
	if err != nil {
		t.Fatal(err)
	}
	if account.Name != "alice" || account.ID != 1 {
		t.Fatalf("unexpected account %+v", account)
	}
	if client.Token() != "tok-123" {
		t.Fatalf("expected the session token stored, got %q", client.Token())
	}
}

func TestRequestsCarryBearerToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer tok-123" {
			t.Fatalf("expected bearer token, got %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":1,"name":"alice"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	client.UseToken("tok-123")
	if _, err := client.GetMyAccount(context.Background()); err != nil {
		t.Fatal(err)
	}
}

func TestListPostsDecodesEnvelope(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/posts/" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		if probe := r.URL.Query().Get("probe"); probe != "hello" {
			t.Fatalf("expected probe forwarded, got %q", probe)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"count":2,"data":[
			{"id":2,"content":"newer","author":{"id":1,"name":"alice"}},
			{"id":1,"content":"older","author":{"id":1,"name":"alice"}}
		]}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	posts, err := client.ListPosts(context.Background(), PostQuery{Probe: "hello"})
	if err != nil {
		t.Fatal(err)
	}
	if len(posts) != 2 {
		t.Fatalf("expected 2 posts, got %d", len(posts))
	}
	if posts[0].Author.Name != "alice" {
		t.Fatalf("expected the author joined in, got %+v", posts[0].Author)
	}
}

func TestListMessagesAddressesPeer(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if with := r.URL.Query().Get("with"); with != "bob" {
			t.Fatalf("expected with=bob, got %q", with)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":1,"content":"hi","sender_id":1,"receiver_id":2}]`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	messages, err := client.ListMessages(context.Background(), "bob")
	if err != nil {
		t.Fatal(err)
	}
	if len(messages) != 1 || messages[0].Content != "hi" {
		t.Fatalf("unexpected messages %+v", messages)
	}
}

func TestWriteFailuresReturnErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "post content cannot be empty", http.StatusBadRequest)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	if _, err := client.CreatePost(context.Background(), "", nil); err == nil {
		t.Fatal("expected an error for a rejected write")
	}
}
