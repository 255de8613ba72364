package cli

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/roland/portfolio/internal/client"
	"github.com/roland/portfolio/internal/comment"
	"github.com/roland/portfolio/internal/greeting"
	"github.com/roland/portfolio/internal/login"
)

func TestGreetUsesConfiguredOwner(t *testing.T) {
	isolate(t)
	t.Setenv("PORTFOLIO_OWNER", "Grace")

	out, err := executeCommand("greet")
	if err != nil {
		t.Fatalf("greet: %v", err)
	}
	if !strings.HasSuffix(strings.TrimSpace(out), "My name is Grace") {
		t.Errorf("greet output = %q", out)
	}

	var known bool
	for _, g := range greeting.All() {
		if strings.HasPrefix(out, g.Text) {
			known = true
		}
	}
	if !known {
		t.Errorf("greet output %q does not start with a known greeting", out)
	}
}

func TestGreetOwnerFlagJSON(t *testing.T) {
	isolate(t)

	out, err := executeCommand("greet", "--owner", "", "--format", "json")
	if err != nil {
		t.Fatalf("greet: %v", err)
	}
	var got map[string]string
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("decode %q: %v", out, err)
	}
	if strings.Contains(got["greeting"], "My name is") {
		t.Errorf("empty owner should give the bare greeting, got %q", got["greeting"])
	}
	if got["lang"] == "" {
		t.Error("expected a language tag")
	}
}

func TestCommentsText(t *testing.T) {
	isolate(t)
	b := &testBackend{comments: []comment.Comment{
		{Name: "Ada", Comment: "hello"},
		{Name: "Bob", Comment: "pic", ImageURL: "/serve/1"},
	}}
	srv := newTestBackend(t, b)

	out, err := executeCommand("comments", "--backend", srv.URL, "--max", "7")
	if err != nil {
		t.Fatalf("comments: %v", err)
	}
	for _, want := range []string{"Ada", "hello", "Bob", "image: /serve/1", "Total: 2 comments"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Index(out, "Ada") > strings.Index(out, "Bob") {
		t.Error("comments printed out of backend order")
	}
	if limits := b.seenLimits(); len(limits) != 1 || limits[0] != "7" {
		t.Errorf("limits = %v, want [7]", limits)
	}
}

func TestCommentsClampsAndUsesConfig(t *testing.T) {
	isolate(t)
	b := &testBackend{}
	srv := newTestBackend(t, b)
	t.Setenv("PORTFOLIO_BACKEND_URL", srv.URL)
	t.Setenv("PORTFOLIO_MAX_COMMENTS", "12")

	out, err := executeCommand("comments")
	if err != nil {
		t.Fatalf("comments: %v", err)
	}
	if !strings.Contains(out, "No comments.") {
		t.Errorf("output = %q", out)
	}

	if _, err := executeCommand("comments", "--max", "500"); err != nil {
		t.Fatalf("comments: %v", err)
	}
	if limits := b.seenLimits(); len(limits) != 2 || limits[0] != "12" || limits[1] != "100" {
		t.Errorf("limits = %v, want [12 100]", limits)
	}
}

func TestCommentsJSON(t *testing.T) {
	isolate(t)
	b := &testBackend{comments: []comment.Comment{{Name: "Ada", Comment: "hi"}}}
	srv := newTestBackend(t, b)

	out, err := executeCommand("comments", "--backend", srv.URL, "--format", "json")
	if err != nil {
		t.Fatalf("comments: %v", err)
	}
	var got []comment.Comment
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("decode %q: %v", out, err)
	}
	if len(got) != 1 || got[0].Name != "Ada" {
		t.Errorf("got %+v", got)
	}
}

func TestCommentsUnreachable(t *testing.T) {
	isolate(t)
	srv := newTestBackend(t, &testBackend{})
	url := srv.URL
	srv.Close()

	if _, err := executeCommand("comments", "--backend", url); err == nil {
		t.Fatal("expected error for unreachable backend")
	}
}

func TestDeleteCommentsReloads(t *testing.T) {
	isolate(t)
	b := &testBackend{deleteOK: true, comments: []comment.Comment{{Name: "Ada", Comment: "bye"}}}
	srv := newTestBackend(t, b)

	out, err := executeCommand("delete-comments", "--backend", srv.URL)
	if err != nil {
		t.Fatalf("delete-comments: %v", err)
	}
	if !strings.Contains(out, "Comments deleted.") || !strings.Contains(out, "No comments.") {
		t.Errorf("output = %q", out)
	}
	if deletes, reloads := b.deleteCount(), len(b.seenLimits()); deletes != 1 || reloads != 1 {
		t.Errorf("deletes = %d, reloads = %d, want 1 and 1", deletes, reloads)
	}
}

func TestDeleteCommentsFailureStillReloads(t *testing.T) {
	isolate(t)
	b := &testBackend{comments: []comment.Comment{{Name: "Ada", Comment: "stays"}}}
	srv := newTestBackend(t, b)

	_, err := executeCommand("delete-comments", "--backend", srv.URL)
	if err == nil {
		t.Fatal("expected error when the backend refuses deletion")
	}
	if reloads := len(b.seenLimits()); reloads != 1 {
		t.Errorf("reloads = %d, want 1", reloads)
	}
}

func TestDeleteCommentsReportsBothFailures(t *testing.T) {
	isolate(t)
	b := &testBackend{dataFail: true}
	srv := newTestBackend(t, b)

	_, err := executeCommand("delete-comments", "--backend", srv.URL)
	if err == nil {
		t.Fatal("expected error")
	}
	var se *client.StatusError
	if !errors.As(err, &se) {
		t.Fatalf("expected a backend status error, got %v", err)
	}
	msg := err.Error()
	if !strings.Contains(msg, "deleting comments") || !strings.Contains(msg, "reloading comments") {
		t.Errorf("error should report both failures, got %q", msg)
	}
	if reloads := len(b.seenLimits()); reloads != 1 {
		t.Errorf("reloads = %d, want 1", reloads)
	}
}

func TestRenderZeroLimitFromEnv(t *testing.T) {
	isolate(t)
	b := &testBackend{comments: []comment.Comment{{Name: "Ada", Comment: "hidden"}}}
	srv := newTestBackend(t, b)
	t.Setenv("PORTFOLIO_MAX_COMMENTS", "0")

	out, err := executeCommand("render", "--backend", srv.URL)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if limits := b.seenLimits(); len(limits) != 1 || limits[0] != "0" {
		t.Errorf("limits = %v, want [0]", limits)
	}
	if !strings.Contains(out, `value="0"`) {
		t.Error("expected limit 0 in the rendered numComments input")
	}
}

func TestStatusLoggedIn(t *testing.T) {
	isolate(t)
	b := &testBackend{status: login.Status{IsLoggedIn: true, EmailAddress: "ada@example.com", LogURL: "/logout"}}
	srv := newTestBackend(t, b)

	out, err := executeCommand("status", "--backend", srv.URL, "--cookie", "SACSID=abc")
	if err != nil {
		t.Fatalf("status: %v", err)
	}
	for _, want := range []string{srv.URL, "ada@example.com", "Log out: /logout"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if cookies := b.seenCookies(); len(cookies) != 1 || cookies[0] != "SACSID=abc" {
		t.Errorf("cookies = %v", cookies)
	}
}

func TestStatusLoggedOutJSON(t *testing.T) {
	isolate(t)
	b := &testBackend{status: login.Status{EmailAddress: "none", LogURL: "/login-page"}}
	srv := newTestBackend(t, b)

	out, err := executeCommand("status", "--backend", srv.URL, "--format", "json")
	if err != nil {
		t.Fatalf("status: %v", err)
	}
	var got login.Status
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("decode %q: %v", out, err)
	}
	if got.IsLoggedIn || got.LogURL != "/login-page" {
		t.Errorf("got %+v", got)
	}
}

func TestRenderWritesPage(t *testing.T) {
	isolate(t)
	b := &testBackend{comments: []comment.Comment{{Name: "Ada", Comment: "rendered"}}}
	srv := newTestBackend(t, b)

	out, err := executeCommand("render", "--backend", srv.URL, "--max", "3")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	for _, want := range []string{`id="welcome-note"`, "Ada: rendered", srv.URL + "/_ah/upload/xyz"} {
		if !strings.Contains(out, want) {
			t.Errorf("page missing %q", want)
		}
	}
	if limits := b.seenLimits(); len(limits) != 1 || limits[0] != "3" {
		t.Errorf("limits = %v, want [3]", limits)
	}
}

func TestRenderToFile(t *testing.T) {
	home := isolate(t)
	srv := newTestBackend(t, &testBackend{})
	path := filepath.Join(home, "page.html")

	out, err := executeCommand("render", "--backend", srv.URL, "-o", path)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(out, "Wrote "+path) {
		t.Errorf("output = %q", out)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read page: %v", err)
	}
	if !strings.Contains(string(data), `id="user-comments"`) {
		t.Error("written page missing comment container")
	}
}
