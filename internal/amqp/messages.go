package amqp

import (
	"encoding/json"
	"time"
)

// ReportRequestMessage asks the worker to (re)compute a dataset's report.
// It carries only the dataset ID and the rolling window; the worker reloads
// the transactions from storage.
type ReportRequestMessage struct {
	DatasetID int64     `json:"dataset_id"`
	Window    int       `json:"window"`
	Timestamp time.Time `json:"timestamp"`
}

// NewReportRequestMessage creates a report request for a stored dataset.
func NewReportRequestMessage(datasetID int64, window int) *ReportRequestMessage {
	return &ReportRequestMessage{
		DatasetID: datasetID,
		Window:    window,
		Timestamp: time.Now(),
	}
}

// ToJSON converts the message to JSON bytes
func (m *ReportRequestMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// ReportRequestMessageFromJSON creates a message from JSON bytes
func ReportRequestMessageFromJSON(data []byte) (*ReportRequestMessage, error) {
	var msg ReportRequestMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
