package room

import (
	"lolpoker-server/pkg/playable"
)

const logMessageLimit = 25

// logsKey is the response key for the hand log
const logsKey = "logs"

// addLogMessages adds log messages, keeping only the most recent
// Note: this must only be called from within the run loop
func (d *Dealer) addLogMessages(messages []*playable.LogMessage) {
	m := append(d.logMessages, messages...)
	count := len(m)
	if count > logMessageLimit {
		m = m[count-logMessageLimit:]
	}

	d.logMessages = m
}

func (d *Dealer) logsResponse() *playable.Response {
	logs := make([]*playable.LogMessage, len(d.logMessages))
	copy(logs, d.logMessages)

	return &playable.Response{
		Key:  logsKey,
		Data: logs,
	}
}
