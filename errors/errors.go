package errors

import "fmt"

var (
	ErrNotFound            = fmt.Errorf("entity not found")
	ErrNotParticipant      = fmt.Errorf("user is not a participant of this chat")
	ErrInvalidTransition   = fmt.Errorf("delivery status cannot move backwards")
	ErrInvalidParticipants = fmt.Errorf("invalid participant set")
	ErrEmptyContent        = fmt.Errorf("message has no content")
	ErrDuplicateChat       = fmt.Errorf("a private chat between these users already exists")
	ErrWorkerPanic         = fmt.Errorf("worker panic")
)
