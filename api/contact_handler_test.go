package api

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMailer struct {
	enabled bool
	sendErr error

	subject string
	body    string
	replyTo string
}

func (f *fakeMailer) Enabled() bool { return f.enabled }

func (f *fakeMailer) Send(subject, body, replyTo string) error {
	f.subject = subject
	f.body = body
	f.replyTo = replyTo
	return f.sendErr
}

func TestSendMessage(t *testing.T) {
	post := func(mail *fakeMailer, body string) *httptest.ResponseRecorder {
		h := newContactHandler(mail, true)
		rec := httptest.NewRecorder()
		h.sendMessage().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(body)))
		return rec
	}

	t.Run("missing fields rejected", func(t *testing.T) {
		for _, body := range []string{`{}`, `{"name":"A"}`, `{"name":"A","email":"a@x.com"}`} {
			rec := post(&fakeMailer{enabled: true}, body)
			assert.Equal(t, http.StatusBadRequest, rec.Code, "body %s", body)
		}
	})

	t.Run("disabled mailer reported as unavailable", func(t *testing.T) {
		rec := post(&fakeMailer{enabled: false}, `{"name":"A","email":"a@x.com","message":"hi"}`)
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("relay failure surfaces as 500", func(t *testing.T) {
		mail := &fakeMailer{enabled: true, sendErr: errors.New("upstream down")}
		rec := post(mail, `{"name":"A","email":"a@x.com","message":"hi"}`)
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("valid message relayed with reply-to", func(t *testing.T) {
		mail := &fakeMailer{enabled: true}
		rec := post(mail, `{"name":"A","email":"a@x.com","message":"hi there"}`)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "a@x.com", mail.replyTo)
		assert.Contains(t, mail.subject, "A")
		assert.Contains(t, mail.body, "hi there")
	})
}
