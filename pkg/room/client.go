package room

import (
	"fmt"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
	"lolpoker-server/pkg/playable"
	"lolpoker-server/pkg/table"
)

// sendBuffer is how many messages can be queued for a client before they are dropped
const sendBuffer = 256

// Client is a client connected to the server via websockets
type Client struct {
	// ID uniquely identifies the connection
	ID string

	// Conn is the underlying websocket connection
	Conn *websocket.Conn

	// send is a channel for sending messages to the client
	send chan interface{}

	// Close is a channel for closing the client
	Close chan string

	// CloseError contains the reason why the connection was closed
	CloseError error

	dealer *Dealer

	// player is only accessed from the dealer's run loop
	player *table.Player
}

// NewClient returns a new client object
func NewClient(conn *websocket.Conn) *Client {
	return &Client{
		ID:    uuid.New().String(),
		send:  make(chan interface{}, sendBuffer),
		Close: make(chan string),
		Conn:  conn,
	}
}

// Send sends a message to the web client
// The message is dropped if the client is not keeping up
func (c *Client) Send(msg interface{}) bool {
	select {
	case c.send <- msg:
		return true
	default:
		logrus.WithField("client", c.String()).Warn("send buffer is full, dropping message")
		return false
	}
}

// SendChan returns a read-only channel
func (c *Client) SendChan() <-chan interface{} {
	return c.send
}

// String returns a traceable identifier for the client and table
func (c *Client) String() string {
	if c.dealer == nil {
		return c.ID
	}

	return fmt.Sprintf("%s:%s", c.ID, c.dealer.table.ID)
}

// ReceivedMessage is called when the server receives a message from a connected client
func (c *Client) ReceivedMessage(msg *playable.PayloadIn) {
	if c.dealer == nil {
		logrus.WithField("msg", msg).Warn("received message, but dealer not found")
		return
	}

	c.dealer.ReceivedMessage(c, msg)
}
