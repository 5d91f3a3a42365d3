package handlers

import (
	"context"
	"net/http"

	"taxibot/models"
	"taxibot/services/workflow"
	"taxibot/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// toolFunc executes one fulfillment tool against the session parameter bag
// and returns the parameters to hand back to the dialogue platform.
type toolFunc func(ctx context.Context, params map[string]any) (map[string]any, error)

// WebhookHandler dispatches Dialogflow CX tool invocations to the trip
// workflow.
type WebhookHandler struct {
	svc    workflow.WorkflowService
	logger *zap.Logger
	tools  map[models.ToolTag]toolFunc
}

// NewWebhookHandler builds the handler and its dispatch table. The table is
// closed: adding a tool means adding a tag constant in models and an entry
// here, which keeps the set of tools visible in one place.
func NewWebhookHandler(svc workflow.WorkflowService, logger *zap.Logger) *WebhookHandler {
	h := &WebhookHandler{svc: svc, logger: logger}
	h.tools = map[models.ToolTag]toolFunc{
		models.TagQuoteTrip:            h.quoteTrip,
		models.TagConfirmPaymentAssign: h.confirmPaymentAndAssign,
	}
	return h
}

// HandleWebhook is the single fulfillment entry point. Business outcomes
// come back as session parameters with HTTP 200; anything else (malformed
// envelope, unknown tag, missing trip, store failure) fails the whole
// request with a 500 and lets the dialogue platform retry.
func (h *WebhookHandler) HandleWebhook(c *gin.Context) {
	var req models.WebhookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "invalid webhook request: "+err.Error())
		return
	}

	tool, ok := h.tools[req.FulfillmentInfo.Tag]
	if !ok {
		utils.JSONError(c, http.StatusInternalServerError, "unknown tool tag: "+string(req.FulfillmentInfo.Tag))
		return
	}

	params, err := tool(c.Request.Context(), req.SessionInfo.Parameters)
	if err != nil {
		h.logger.Error("tool execution failed",
			zap.String("tag", string(req.FulfillmentInfo.Tag)),
			zap.Error(err),
		)
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, models.WebhookResponse{
		FulfillmentResponse: models.FulfillmentResponse{
			Messages: []models.FulfillmentMessage{
				{Text: models.FulfillmentText{Text: []string{"Procesando..."}}},
			},
		},
		SessionInfo: models.SessionInfo{Parameters: params},
	})
}

func (h *WebhookHandler) quoteTrip(ctx context.Context, params map[string]any) (map[string]any, error) {
	origin, err := stringParam(params, "origen")
	if err != nil {
		return nil, err
	}
	destination, err := stringParam(params, "destino")
	if err != nil {
		return nil, err
	}
	passengers, err := passengersParam(params)
	if err != nil {
		return nil, err
	}

	res, err := h.svc.QuoteTrip(ctx, origin, destination, passengers)
	if err != nil {
		return nil, err
	}

	out := map[string]any{
		"precioBs":     res.PriceLocal,
		"precioUsd":    res.PriceUSD,
		"tipoVehiculo": string(res.VehicleClass),
		"viajeId":      res.TripID,
	}
	if res.ErrorMessage != "" {
		out["error"] = res.ErrorMessage
	}
	return out, nil
}

func (h *WebhookHandler) confirmPaymentAndAssign(ctx context.Context, params map[string]any) (map[string]any, error) {
	tripID, err := stringParam(params, "viajeId")
	if err != nil {
		return nil, err
	}
	paymentRef, err := stringParam(params, "referenciaPago")
	if err != nil {
		return nil, err
	}

	res, err := h.svc.ConfirmPaymentAndAssignDriver(ctx, tripID, paymentRef)
	if err != nil {
		return nil, err
	}

	out := map[string]any{
		"pagoConfirmado": res.PaymentConfirmed,
		"mensajeUsuario": res.UserMessage,
	}
	if res.DriverName != "" {
		out["nombreConductor"] = res.DriverName
		out["telefonoConductor"] = res.DriverPhone
	}
	return out, nil
}
