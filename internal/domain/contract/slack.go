package contract

import "github.com/slack-go/slack"

// SlackClient defines the interface for Slack operations used by the bot.
// *slack.Client satisfies it; tests use a mock.
type SlackClient interface {
	// PostMessage sends a message to a Slack channel
	PostMessage(channelID string, options ...slack.MsgOption) (string, string, error)

	// UpdateMessage edits a previously posted message in place
	UpdateMessage(channelID, timestamp string, options ...slack.MsgOption) (string, string, string, error)

	// PostEphemeral sends a message visible only to the given user
	PostEphemeral(channelID, userID string, options ...slack.MsgOption) (string, error)
}
