package entity

import (
	"time"
)

// Agent response process status
const (
	StatusPending    = "PENDING"
	StatusProcessing = "PROCESSING"
	StatusCompleted  = "COMPLETED"
	StatusFailed     = "FAILED"
	StatusSkipped    = "SKIPPED"
)

// AgentResponse is the raw text a travel agent produced for one trip query
type AgentResponse struct {
	ResponseID       string                 `bson:"responseId" json:"responseId"`
	SessionID        string                 `bson:"sessionId" json:"sessionId"`
	Agent            string                 `bson:"agent" json:"agent"`
	Query            TripQuery              `bson:"query" json:"query"`
	Text             string                 `bson:"text" json:"text"`
	ReceivedAt       time.Time              `bson:"receivedAt" json:"receivedAt"`
	ProcessedAt      time.Time              `bson:"processedAt" json:"processedAt,omitempty"`
	ProcessStatus    string                 `bson:"processStatus" json:"processStatus"`
	ProcessorType    string                 `bson:"processorType" json:"processorType,omitempty"`
	ProcessStartedAt time.Time              `bson:"processStartedAt" json:"-"`
	ErrorDetail      string                 `bson:"errorDetail" json:"errorDetail,omitempty"`
	ExtractedData    map[string]interface{} `bson:"extractedData" json:"extractedData,omitempty"`
}
