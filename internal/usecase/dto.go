package usecase

type ContactIntakeInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

type ContactIntakeOutput struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	RedirectURL string `json:"redirectUrl"`
}

type ConfirmPaymentInput struct {
	SessionID string `json:"session_id"`
}

type ConfirmPaymentOutput struct {
	Email            string `json:"email"`
	VIPStatus        bool   `json:"vipStatus"`
	ContactUpdated   bool   `json:"contactUpdated"`
	WelcomeEmailSent bool   `json:"welcomeEmailSent"`
}
