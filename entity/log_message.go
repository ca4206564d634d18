package entity

import "time"

// LogMessage is a structured log record mirrored to the payment_log
// collection when a database is attached to a logger.
type LogMessage struct {
	Time     time.Time `json:"time" bson:"time"`
	Module   string    `json:"module" bson:"module"`
	Level    string    `json:"level" bson:"level"`
	Text     string    `json:"text" bson:"text"`
	ErrorMsg string    `json:"error,omitempty" bson:"error,omitempty"`
}

// DataType marks the record for the database log writer.
func (l *LogMessage) DataType() string {
	return "log"
}
