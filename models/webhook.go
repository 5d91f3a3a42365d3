// File: models/webhook.go
package models

// ToolTag identifies which fulfillment tool the dialogue platform invoked.
type ToolTag string

const (
	TagQuoteTrip            ToolTag = "ConsultarPrecioViaje"
	TagConfirmPaymentAssign ToolTag = "ConfirmarPagoYAsignarConductor"
)

// FulfillmentInfo carries the tag of the tool that fired.
type FulfillmentInfo struct {
	Tag ToolTag `json:"tag"`
}

// SessionInfo is the dialogue session's parameter bag. It is the only
// continuity mechanism between the quote step and the confirmation step.
type SessionInfo struct {
	Parameters map[string]any `json:"parameters"`
}

// WebhookRequest is the inbound Dialogflow CX fulfillment envelope.
type WebhookRequest struct {
	FulfillmentInfo FulfillmentInfo `json:"fulfillmentInfo"`
	SessionInfo     SessionInfo     `json:"sessionInfo"`
}

// FulfillmentText wraps the text lines of a fulfillment message.
type FulfillmentText struct {
	Text []string `json:"text"`
}

// FulfillmentMessage is one message block in the fulfillment response.
type FulfillmentMessage struct {
	Text FulfillmentText `json:"text"`
}

// FulfillmentResponse is the spoken-message part of the webhook reply. The
// agent speaks from the session parameters; this text is a placeholder.
type FulfillmentResponse struct {
	Messages []FulfillmentMessage `json:"messages"`
}

// WebhookResponse is the outbound envelope: the operation result projected
// into session parameters, plus the fulfillment message block.
type WebhookResponse struct {
	FulfillmentResponse FulfillmentResponse `json:"fulfillmentResponse"`
	SessionInfo         SessionInfo         `json:"sessionInfo"`
}
