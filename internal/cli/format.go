package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/roland/portfolio/internal/comment"
	"github.com/roland/portfolio/internal/login"
)

var (
	nameStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("33"))
	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	okStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	errStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

// printJSON marshals v as indented JSON and writes it to w.
func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// printCommentList prints comments in backend order.
func printCommentList(w io.Writer, comments []comment.Comment) error {
	if len(comments) == 0 {
		_, err := fmt.Fprintln(w, mutedStyle.Render("No comments."))
		return err
	}

	for _, c := range comments {
		if _, err := fmt.Fprintf(w, "%s: %s\n", nameStyle.Render(c.Name), c.Comment); err != nil {
			return err
		}
		if c.HasImage() {
			if _, err := fmt.Fprintf(w, "  %s\n", mutedStyle.Render("image: "+c.ImageURL)); err != nil {
				return err
			}
		}
	}

	_, err := fmt.Fprintf(w, "\nTotal: %d comments\n", len(comments))
	return err
}

// printLoginStatus prints the visitor's session state.
func printLoginStatus(w io.Writer, backend string, s *login.Status) error {
	if _, err := fmt.Fprintf(w, "Backend: %s\n", backend); err != nil {
		return err
	}
	if s == nil {
		_, err := fmt.Fprintf(w, "Status:  %s\n", errStyle.Render("✗ unknown"))
		return err
	}

	if s.IsLoggedIn {
		if _, err := fmt.Fprintf(w, "Status:  %s %s\n", okStyle.Render("✓ logged in as"), s.Email()); err != nil {
			return err
		}
	} else {
		if _, err := fmt.Fprintf(w, "Status:  %s\n", mutedStyle.Render("logged out")); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "%s: %s\n", s.LinkText(), s.LogURL)
	return err
}
