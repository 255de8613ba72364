// Package login models the visitor's session state as reported by the backend.
package login

// noEmail is what the backend sends as the address of a logged-out visitor.
const noEmail = "none"

// Status is the backend's answer to GET /login.
type Status struct {
	IsLoggedIn   bool   `json:"isLoggedIn"`
	EmailAddress string `json:"emailAddress,omitempty"`
	LogURL       string `json:"logUrl"`
}

// Email returns the visitor's address, or "" when there is none.
func (s Status) Email() string {
	if !s.IsLoggedIn || s.EmailAddress == noEmail {
		return ""
	}
	return s.EmailAddress
}

// LinkText is the label for the login or logout link.
func (s Status) LinkText() string {
	if s.IsLoggedIn {
		return "Log out"
	}
	return "Log in"
}
