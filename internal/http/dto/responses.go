package dto

import "github.com/encorefund/backend/internal/models"

// Response is the envelope every endpoint returns. Source marks whether a
// campaign read was served from cache or the database.
type Response struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
	Message string `json:"message,omitempty"`
	Source  string `json:"source,omitempty"`
}

func OK(data any) Response {
	return Response{Success: true, Data: data}
}

func OKWithSource(data any, source string) Response {
	return Response{Success: true, Data: data, Source: source}
}

func OKMessage(message string) Response {
	return Response{Success: true, Message: message}
}

func Fail(err string) Response {
	return Response{Success: false, Error: err}
}

type AuthData struct {
	User  *models.User `json:"user"`
	Token string       `json:"token"`
}

type PledgeData struct {
	Pledge *models.Pledge `json:"pledge"`
	// ClientSecret lets the browser confirm the payment intent.
	ClientSecret string `json:"client_secret,omitempty"`
}
