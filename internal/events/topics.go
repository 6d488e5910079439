package events

const (
	TopicTransactionEvents    = "transaction-events"
	TopicTransactionEventsDLQ = "transaction-events-dlq"

	GroupNotification = "notification-group"
	GroupDeadLetter   = "dlq-handler-group"
)
