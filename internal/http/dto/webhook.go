package dto

type WebhookResponse struct {
	Success   bool `json:"success"`
	Duplicate bool `json:"duplicate,omitempty"`
	Pong      bool `json:"pong,omitempty"`
}

type WebhookStatusResponse struct {
	Connected   bool   `json:"connected"`
	WebhookPath string `json:"webhookPath"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
