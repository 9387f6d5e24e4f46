package mailer

// NotifyJob is the JSON payload put on the RabbitMQ queue when a reviewer
// should be told about new activity (currently: a task submission arrived).
type NotifyJob struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Text    string `json:"text"`
}
