package linebot

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	defaultURL     = "https://api.line.me/v2/bot/message/push"
	defaultTimeout = 10 * time.Second

	maxTitleLen = 40
	maxTextLen  = 60
)

var (
	log = logrus.WithField("prefix", "linebot")

	errEmptyToken     = fmt.Errorf("empty channel access token")
	errEmptyRecipient = fmt.Errorf("empty recipient")
)

// ButtonsTemplate - a LINE buttons template message with a single URI action
type ButtonsTemplate struct {
	AltText     string
	Title       string
	Text        string
	ActionLabel string
	ActionURI   string
}

// Client pushes messages to LINE users over the Messaging API
type Client interface {
	PushButtonsTemplate(to string, msg ButtonsTemplate) error
}

type client struct {
	token string
	url   string
	http  *http.Client
}

type uriAction struct {
	Type  string `json:"type"`
	Label string `json:"label"`
	URI   string `json:"uri"`
}

type buttonsPayload struct {
	Type    string      `json:"type"`
	Title   string      `json:"title,omitempty"`
	Text    string      `json:"text"`
	Actions []uriAction `json:"actions"`
}

type templateMessage struct {
	Type     string         `json:"type"`
	AltText  string         `json:"altText"`
	Template buttonsPayload `json:"template"`
}

type pushRequest struct {
	To       string            `json:"to"`
	Messages []templateMessage `json:"messages"`
}

// truncate clips a string to the LINE template field limits, which the
// push endpoint enforces with a 400
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}

func (c client) PushButtonsTemplate(to string, msg ButtonsTemplate) error {
	if c.token == "" {
		return errEmptyToken
	}
	if to == "" {
		return errEmptyRecipient
	}

	payload := pushRequest{
		To: to,
		Messages: []templateMessage{{
			Type:    "template",
			AltText: msg.AltText,
			Template: buttonsPayload{
				Type:  "buttons",
				Title: truncate(msg.Title, maxTitleLen),
				Text:  truncate(msg.Text, maxTextLen),
				Actions: []uriAction{{
					Type:  "uri",
					Label: msg.ActionLabel,
					URI:   msg.ActionURI,
				}},
			},
		}},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequest(http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		d, _ := ioutil.ReadAll(resp.Body)
		log.WithFields(logrus.Fields{
			"status": resp.StatusCode,
			"body":   string(d),
		}).Error("line push rejected")
		return fmt.Errorf("line push response status %d", resp.StatusCode)
	}

	return nil
}

func New(channelToken string, url string) Client {
	u := defaultURL
	if url != "" {
		u = url
	}

	return &client{
		token: channelToken,
		url:   u,
		http:  &http.Client{Timeout: defaultTimeout},
	}
}
