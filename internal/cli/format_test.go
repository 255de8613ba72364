package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/roland/portfolio/internal/comment"
	"github.com/roland/portfolio/internal/login"
)

func TestPrintCommentListEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := printCommentList(&buf, nil); err != nil {
		t.Fatalf("print: %v", err)
	}
	if !strings.Contains(buf.String(), "No comments.") {
		t.Errorf("output = %q", buf.String())
	}
}

func TestPrintLoginStatus(t *testing.T) {
	tests := []struct {
		name   string
		status *login.Status
		want   []string
	}{
		{"logged in", &login.Status{IsLoggedIn: true, EmailAddress: "a@b.c", LogURL: "/out"}, []string{"a@b.c", "Log out: /out"}},
		{"logged out", &login.Status{EmailAddress: "none", LogURL: "/in"}, []string{"logged out", "Log in: /in"}},
		{"unknown", nil, []string{"unknown"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := printLoginStatus(&buf, "http://b", tt.status); err != nil {
				t.Fatalf("print: %v", err)
			}
			out := buf.String()
			for _, w := range tt.want {
				if !strings.Contains(out, w) {
					t.Errorf("output missing %q:\n%s", w, out)
				}
			}
			if strings.Contains(out, "none") {
				t.Error("placeholder email should not be printed")
			}
		})
	}
}

func TestPrintJSONIndents(t *testing.T) {
	var buf bytes.Buffer
	if err := printJSON(&buf, []comment.Comment{{Name: "Ada", Comment: "hi"}}); err != nil {
		t.Fatalf("print: %v", err)
	}
	if !strings.Contains(buf.String(), "\n  {") {
		t.Errorf("expected indented JSON, got %q", buf.String())
	}
}
