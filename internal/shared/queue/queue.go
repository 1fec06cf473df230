package queue

// Message is a unit of work put into a queue. LockID must identify the
// job so that concurrent consumers don't process it twice.
type Message interface {
	LockID() string
}
