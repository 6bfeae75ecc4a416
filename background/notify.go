package background

import (
	"fmt"
	"net/url"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/solveme-app/solveme-api/external/linebot"
	"github.com/solveme-app/solveme-api/store"
	"github.com/solveme-app/solveme-api/utils"
)

// NotifySolverMatched is a background job to push a LINE message to the
// solver a bubble was just matched with. The message carries a deep link
// into the mini-app chat room.
func (m *BackgroundManager) NotifySolverMatched(solverID, roomID, bubbleID string) error {
	if solverID == "" {
		log.WithField("prefix", "background").Warn("notify solver task without solver id")
		return nil
	}

	loc := utils.NewLocalizer(viper.GetString("i18n.lang"))

	msg := linebot.ButtonsTemplate{
		ActionURI: matchDeepLink(roomID, bubbleID),
	}

	if altText, err := loc.Localize(&i18n.LocalizeConfig{
		MessageID: "notification.match.alt_text",
	}); err == nil {
		msg.AltText = altText
	}
	if label, err := loc.Localize(&i18n.LocalizeConfig{
		MessageID: "notification.match.action_label",
	}); err == nil {
		msg.ActionLabel = label
	}

	// bubble title and description become the message body; the bubble may
	// be gone by the time the task runs, the push still goes out
	bubble, err := m.store.GetBubble(bubbleID)
	if err != nil && err != store.ErrBubbleNotFound {
		return err
	}
	if bubble != nil {
		msg.Title = bubble.Title
		msg.Text = bubble.Description
	}
	if msg.Title == "" {
		if title, err := loc.Localize(&i18n.LocalizeConfig{
			MessageID: "notification.match.title_fallback",
		}); err == nil {
			msg.Title = title
		}
	}
	if msg.Text == "" {
		if text, err := loc.Localize(&i18n.LocalizeConfig{
			MessageID: "notification.match.text_fallback",
		}); err == nil {
			msg.Text = text
		}
	}

	return m.line.PushButtonsTemplate(solverID, msg)
}

// matchDeepLink builds the mini-app URL that opens the matched chat room
func matchDeepLink(roomID, bubbleID string) string {
	return fmt.Sprintf("%s?roomId=%s&bubbleId=%s",
		viper.GetString("line.liff_url"),
		url.QueryEscape(roomID),
		url.QueryEscape(bubbleID),
	)
}
