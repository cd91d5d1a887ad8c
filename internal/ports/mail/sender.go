package mail

import "context"

type Message struct {
	To      string
	Subject string
	HTML    string
}

// Sender abstrae el proveedor de mail transaccional.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}
