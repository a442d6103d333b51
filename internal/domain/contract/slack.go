package contract

import "github.com/slack-go/slack"

// SlackClient is the subset of the Slack API used for conflict alerts.
type SlackClient interface {
	PostMessage(channelID string, options ...slack.MsgOption) (string, string, error)
}
