package response

import "github.com/google/uuid"

type Created struct {
	ID uuid.UUID `json:"id"`
}

type Token struct {
	Token string `json:"token"`
}

type Message struct {
	Message string `json:"message"`
}
