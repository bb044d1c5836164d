package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/dmatos/portfolio-backend/errs"
)

// mailer is what the contact handler needs from services.Mailer.
type mailer interface {
	Enabled() bool
	Send(subject, body, replyTo string) error
}

type contactHandler struct {
	responder Responder
	logger    zerolog.Logger
	mail      mailer
}

func newContactHandler(mail mailer, production bool) contactHandler {
	logger := log.With().Str("handlerName", "contactHandler").Logger()

	return contactHandler{
		responder: NewResponder(logger, production),
		logger:    logger,
		mail:      mail,
	}
}

// sendMessage relays a visitor message to the site owner.
func (h contactHandler) sendMessage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Name    string `json:"name"`
			Email   string `json:"email"`
			Message string `json:"message"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if body.Name == "" || body.Email == "" || body.Message == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("please add all fields"))
			return
		}

		if !h.mail.Enabled() {
			h.responder.WriteError(w, errs.NewInternalError("contact form is unavailable"))
			return
		}

		subject := fmt.Sprintf("Portfolio contact from %s", body.Name)
		text := fmt.Sprintf("From: %s <%s>\n\n%s", body.Name, body.Email, body.Message)
		if err := h.mail.Send(subject, text, body.Email); err != nil {
			h.logger.Error().Err(err).Msg("failed to relay contact message")
			h.responder.WriteError(w, errs.NewInternalError("failed to send message"))
			return
		}

		h.responder.WriteJSON(w, map[string]string{"message": "message sent"})
	}
}
