package twilio

import (
	"autodialer/internal/observability"
	"context"
	"fmt"

	twilioSDK "github.com/twilio/twilio-go"
	openapi "github.com/twilio/twilio-go/rest/api/v2010"
	"github.com/twilio/twilio-go/twiml"
)

// callCreator is the subset of the Twilio REST API used to originate calls.
type callCreator interface {
	CreateCall(params *openapi.CreateCallParams) (*openapi.ApiV2010Call, error)
}

// Call is what Twilio reports right after a call is created. Status is usually
// provisional ("queued", "ringing") and may be absent.
type Call struct {
	Sid    string
	Status *string
}

type Client struct {
	api    callCreator
	from   string
	twiml  string
	logger *observability.Logger
}

// NewClient builds a Twilio REST client that places calls from the given number
// and speaks message once the callee answers.
func NewClient(accountSID, authToken, fromNumber, message string, logger *observability.Logger) (*Client, error) {
	if accountSID == "" || authToken == "" {
		return nil, fmt.Errorf("twilio credentials are required")
	}
	rest := twilioSDK.NewRestClientWithParams(twilioSDK.ClientParams{
		Username: accountSID,
		Password: authToken,
	})
	return newClient(rest.Api, fromNumber, message, logger)
}

func newClient(api callCreator, fromNumber, message string, logger *observability.Logger) (*Client, error) {
	if fromNumber == "" {
		return nil, fmt.Errorf("twilio from number is required")
	}
	payload, err := SayTwiML(message)
	if err != nil {
		return nil, err
	}
	return &Client{api: api, from: fromNumber, twiml: payload, logger: logger}, nil
}

// SayTwiML renders a voice response that reads message aloud.
func SayTwiML(message string) (string, error) {
	say := &twiml.VoiceSay{Message: message}
	payload, err := twiml.Voice([]twiml.Element{say})
	if err != nil {
		return "", fmt.Errorf("failed to render twiml: %w", err)
	}
	return payload, nil
}

// PlaceCall originates one outbound call to the given number. The SDK call is
// not context aware; ctx only carries log fields.
func (c *Client) PlaceCall(ctx context.Context, to string) (Call, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "call_to", Value: to})

	params := &openapi.CreateCallParams{}
	params.SetTo(to)
	params.SetFrom(c.from)
	params.SetTwiml(c.twiml)

	resp, err := c.api.CreateCall(params)
	if err != nil {
		c.logger.Error(ctx, "twilio call creation failed", err)
		return Call{}, err
	}

	call := Call{Status: resp.Status}
	if resp.Sid != nil {
		call.Sid = *resp.Sid
	}
	ctx = observability.WithFields(ctx, observability.Field{Key: "call_sid", Value: call.Sid})
	c.logger.Info(ctx, "twilio call created")
	return call, nil
}
