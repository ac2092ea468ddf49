package processor

import "autodialer/internal/calllog"

const (
	EventTypeStatus  = "status"
	EventTypeError   = "error"
	EventTypeDone    = "done"
	EventTypeCalling = "calling"
	EventTypeResult  = "result"
)

const (
	MessageReceivedPrompt    = "received_prompt"
	MessageCallingPerplexity = "calling_perplexity"
	MessagePerplexityDone    = "perplexity_done"
	MessagePerplexityFailed  = "perplexity_failed"
	MessageNoNumbers         = "no_numbers"
	MessageFinished          = "finished"
	MessagePersistFailed     = "persist_failed"
)

// Event is one line of the progress stream. Each implementation marshals to
// the JSON object sent to the client.
type Event interface {
	EventType() string
}

type PromptReceivedEvent struct {
	Type    string `json:"type"`
	Message string `json:"message"`
	Prompt  string `json:"prompt"`
}

type StatusEvent struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

type NumbersFoundEvent struct {
	Type         string   `json:"type"`
	Message      string   `json:"message"`
	NumbersFound []string `json:"numbers_found"`
}

type ErrorEvent struct {
	Type    string `json:"type"`
	Message string `json:"message"`
	Detail  string `json:"detail"`
}

type CallingEvent struct {
	Type   string `json:"type"`
	Number string `json:"number"`
	Index  int    `json:"index"`
	Total  int    `json:"total"`
}

type ResultEvent struct {
	Type   string  `json:"type"`
	To     string  `json:"to"`
	Sid    string  `json:"sid"`
	Status *string `json:"status"`
	Error  string  `json:"error,omitempty"`
}

type FinishedEvent struct {
	Type       string                `json:"type"`
	Message    string                `json:"message"`
	Results    []calllog.CallAttempt `json:"results"`
	CSVPreview []calllog.Row         `json:"csv_preview"`
	CSVPath    string                `json:"csv_path"`
}

func (e PromptReceivedEvent) EventType() string { return e.Type }
func (e StatusEvent) EventType() string         { return e.Type }
func (e NumbersFoundEvent) EventType() string   { return e.Type }
func (e ErrorEvent) EventType() string          { return e.Type }
func (e CallingEvent) EventType() string        { return e.Type }
func (e ResultEvent) EventType() string         { return e.Type }
func (e FinishedEvent) EventType() string       { return e.Type }

func promptReceived(prompt string) Event {
	return PromptReceivedEvent{Type: EventTypeStatus, Message: MessageReceivedPrompt, Prompt: prompt}
}

func status(message string) Event {
	return StatusEvent{Type: EventTypeStatus, Message: message}
}

func done(message string) Event {
	return StatusEvent{Type: EventTypeDone, Message: message}
}

func numbersFound(numbers []string) Event {
	if numbers == nil {
		numbers = []string{}
	}
	return NumbersFoundEvent{Type: EventTypeStatus, Message: MessagePerplexityDone, NumbersFound: numbers}
}

func failure(message string, err error) Event {
	return ErrorEvent{Type: EventTypeError, Message: message, Detail: err.Error()}
}

func calling(number string, index, total int) Event {
	return CallingEvent{Type: EventTypeCalling, Number: number, Index: index, Total: total}
}

func result(a calllog.CallAttempt) Event {
	return ResultEvent{Type: EventTypeResult, To: a.To, Sid: a.Sid, Status: a.Status, Error: a.Error}
}

func finished(results []calllog.CallAttempt, appended calllog.AppendResult) Event {
	preview := appended.Preview
	if preview == nil {
		preview = []calllog.Row{}
	}
	return FinishedEvent{
		Type:       EventTypeDone,
		Message:    MessageFinished,
		Results:    results,
		CSVPreview: preview,
		CSVPath:    appended.Location,
	}
}
