//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"chat-core/domain"
	"context"
	"reflect"
)

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

type WorkerName string

// Worker doesn't protect itself.
// Supervision (panics, restarts) is the supervisor's job.
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// This is used for logging and supervision purposes during worker
// lifecycle events, avoiding manual naming in the Worker interface.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// NotificationSink receives fan-out notifications. Implementations are
// live connections, projections, or indexes; all must tolerate the
// at-most-once contract and bounded push timeouts.
type NotificationSink interface {
	Push(ctx context.Context, n domain.Notification) error
}

// IRegistry tracks live connections only. Chat membership is durable
// state owned by the chat registry service, not by connections.
type IRegistry interface {
	SinkFor(userID string) (NotificationSink, bool)
	Subscribe(userID string, sink NotificationSink)
	Unsubscribe(userID string)
}
