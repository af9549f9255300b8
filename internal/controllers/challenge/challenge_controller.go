package challenge

import (
	"github.com/DIMO-Network/server-garage/pkg/richerrors"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/slack-go/slack/slackevents"
)

// Controller answers deliveries from the Slack Events API.
type Controller struct {
	logPayloads bool
}

// NewController creates a new Controller. When logPayloads is set every parsed
// request body is written to the request logger at debug level.
func NewController(logPayloads bool) *Controller {
	return &Controller{logPayloads: logPayloads}
}

// HandleEvent godoc
// @Summary      Receive an Events API delivery
// @Description  Echoes the challenge of a URL verification request as {"challenge": "<value>"}. Any other payload, including one whose challenge is null, is acknowledged with the bare JSON string "ok".
// @Tags         Events
// @Accept       json
// @Produce      json
// @Param        request  body      EventPayload       true  "Event payload"
// @Success      200      {object}  ChallengeResponse  "Challenge echo when the payload carries a challenge. Otherwise the body is the bare JSON string \"ok\", not an object."
// @Failure      400      "Invalid request payload"
// @Failure      413      "Request body too large"
// @Failure      415      "Content-Type is not application/json"
// @Router       / [post]
func (ctl *Controller) HandleEvent(c *fiber.Ctx) error {
	if !c.Is("json") {
		return richerrors.Error{
			ExternalMsg: "Content-Type must be application/json",
			Code:        fiber.StatusUnsupportedMediaType,
		}
	}

	var payload EventPayload
	if err := c.BodyParser(&payload); err != nil {
		return richerrors.Error{
			ExternalMsg: "Invalid request payload",
			Err:         err,
			Code:        fiber.StatusBadRequest,
		}
	}

	logger := zerolog.Ctx(c.UserContext())
	if ctl.logPayloads {
		logger.Debug().RawJSON("payload", c.Body()).Msg("Received event payload")
	}

	switch {
	case payload.Challenge != nil:
		logger.Info().Str("eventType", payload.Type).Msg("Answering URL verification challenge")
	case payload.Type == slackevents.URLVerification:
		logger.Warn().Msg("URL verification request without a challenge")
	case payload.Type == slackevents.CallbackEvent:
		logger.Debug().Msg("Acknowledging event callback")
	}

	return c.JSON(Reply(payload))
}

// Reply returns the response body for payload: the challenge echo when the
// payload carries a challenge, even an empty one, and Acknowledgement otherwise.
func Reply(payload EventPayload) any {
	if payload.Challenge != nil {
		return ChallengeResponse{Challenge: *payload.Challenge}
	}
	return Acknowledgement
}
