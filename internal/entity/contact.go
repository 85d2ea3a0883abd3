package entity

// ContactSubmission carries one sanitized contact-form submission.
// It lives for the duration of a single request.
type ContactSubmission struct {
	Name    string
	Email   string
	Message string
}
