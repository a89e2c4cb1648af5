package playable

import (
	"fmt"
	"github.com/google/uuid"
	"lolpoker-server/pkg/catalog"
	"time"
)

// Connection is the send side of a connected client
// Send must not block; false means the message was dropped
type Connection interface {
	Send(msg interface{}) bool
}

// LogMessage is the format a table should send log messages in
// If PlayerIDs is empty, assume it's a general statement, otherwise the message will be sent like "{player} did X, Y, Z"
type LogMessage struct {
	UUID      string          `json:"uuid"`
	PlayerIDs []int64         `json:"playerIds"`
	Cards     []*catalog.Card `json:"cards"`
	Message   string          `json:"message"`
	Time      time.Time       `json:"time"`
}

// Response is the envelope for every outbound message
type Response struct {
	Key   string      `json:"key"`
	Value string      `json:"value"`
	Data  interface{} `json:"data"`
}

// PayloadIn is the format we expect from the JS client
type PayloadIn struct {
	Type  string `json:"type"`
	Name  string `json:"name"`
	Raise int    `json:"raise"`
}

// SimpleLogMessage returns a new LogMessage
func SimpleLogMessage(playerID int64, format string, a ...interface{}) *LogMessage {
	var playerIDs []int64
	if playerID > 0 {
		playerIDs = []int64{playerID}
	}

	return &LogMessage{
		UUID:      uuid.New().String(),
		PlayerIDs: playerIDs,
		Message:   fmt.Sprintf(format, a...),
		Time:      time.Now(),
	}
}

// CardsLogMessage returns a LogMessage that reveals cards
func CardsLogMessage(playerID int64, cards []*catalog.Card, format string, a ...interface{}) *LogMessage {
	lm := SimpleLogMessage(playerID, format, a...)
	lm.Cards = cards
	return lm
}
