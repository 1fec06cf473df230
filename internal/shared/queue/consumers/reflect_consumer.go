package consumers

import (
	"context"
	"encoding/json"
	"fmt"
	"reflect"
	"time"

	"github.com/codequal/codequal-api/internal/shared/logutil"
	"github.com/codequal/codequal-api/internal/shared/queue"
	"github.com/pkg/errors"
	redsync "gopkg.in/redsync.v1"
)

// ReflectConsumer adapts a typed handler func(ctx context.Context, m *T) error
// to the Consumer interface: it unmarshals the raw message into T and holds
// a distributed lock on the message's LockID while the handler runs.
type ReflectConsumer struct {
	handler interface{}
	timeout time.Duration
	df      *redsync.Redsync
	log     logutil.Log
}

func NewReflectConsumer(handler interface{}, timeout time.Duration, df *redsync.Redsync, log logutil.Log) (*ReflectConsumer, error) {
	handlerType := reflect.TypeOf(handler)
	if handlerType.Kind() != reflect.Func {
		return nil, fmt.Errorf("handler kind %s is not %s", handlerType.Kind(), reflect.Func)
	}

	if handlerType.NumIn() != 2 {
		return nil, fmt.Errorf("args count %d must be two", handlerType.NumIn())
	}

	contextType := reflect.TypeOf((*context.Context)(nil)).Elem()
	firstArgType := handlerType.In(0)
	if !firstArgType.Implements(contextType) {
		return nil, fmt.Errorf("handler's first arg is not Context, it's %s", firstArgType.Kind())
	}

	secondArgType := handlerType.In(1)
	if secondArgType.Kind() != reflect.Ptr {
		return nil, fmt.Errorf("handler's second arg is not pointer, it's %s", secondArgType.Kind())
	}
	secondArgPointedType := secondArgType.Elem()
	if secondArgPointedType.Kind() != reflect.Struct {
		return nil, fmt.Errorf("handler's second arg's pointer points not to struct but to %s", secondArgPointedType.Kind())
	}

	if handlerType.NumOut() != 1 {
		return nil, fmt.Errorf("invalid output values count %d != 1", handlerType.NumOut())
	}
	retType := handlerType.Out(0)
	err := errors.New("")
	errorType := reflect.TypeOf(&err).Elem()
	if !retType.Implements(errorType) {
		return nil, fmt.Errorf("return type is not error, it's %s", retType.Kind())
	}

	return &ReflectConsumer{
		handler: handler,
		timeout: timeout,
		df:      df,
		log:     log,
	}, nil
}

func (c ReflectConsumer) ConsumeMessage(ctx context.Context, message []byte) error {
	handlerType := reflect.TypeOf(c.handler)
	secondArgPointedType := handlerType.In(1).Elem()
	callArgValue := reflect.New(secondArgPointedType)
	callArg := callArgValue.Interface()

	if err := json.Unmarshal(message, callArg); err != nil {
		return errors.Wrap(errors.Wrap(ErrBadMessage, err.Error()), "json unmarshal failed")
	}

	if qm, ok := callArg.(queue.Message); ok {
		mutex := c.df.NewMutex(qm.LockID())
		if err := mutex.Lock(); err != nil {
			return errors.Wrapf(err, "failed to acquire dist lock %s", qm.LockID())
		}
		defer mutex.Unlock()
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	handler := reflect.ValueOf(c.handler)
	retValues := handler.Call([]reflect.Value{reflect.ValueOf(ctx), callArgValue})
	retVal := retValues[0]
	if retVal.Interface() != nil {
		return retVal.Interface().(error)
	}

	return nil
}

func (c ReflectConsumer) ResultLogger() ResultLogger {
	return func(err error) {
		if err == nil {
			c.log.Infof("Successfully processed queue message")
			return
		}

		switch errors.Cause(err) {
		case ErrBadMessage:
			c.log.Errorf("Dropping malformed queue message: %s", err)
		case ErrPermanent:
			c.log.Warnf("Permanently failed to process queue message: %s", err)
		default:
			c.log.Warnf("Failed to process queue message, will be retried: %s", err)
		}
	}
}
