// Package models holds the JSON shapes the dicebox server exchanges with its
// HTTP and websocket clients.
package models

// WsMsg is the envelope for every websocket broadcast.
type WsMsg struct {
	Type string      `json:"type"`
	Data interface{} `json:"data,omitempty"`
}

// Websocket message types.
const (
	MsgRollStart  = "roll.start"  // a roll was triggered
	MsgDieSettled = "die.settled" // one die came to rest
	MsgRollResult = "roll.result" // all dice in a collection roll settled
)

// TableState is a snapshot of the dice set.
type TableState struct {
	Values  []int `json:"values"`
	Sum     int   `json:"sum"`
	Rolling bool  `json:"rolling"`
}

// RollStart announces a triggered roll.
type RollStart struct {
	Kind  string `json:"kind"`            // "all" or "one"
	Index int    `json:"index,omitempty"` // die index for single rolls
}

// DieSettled reports one die's resolved value.
type DieSettled struct {
	Index int `json:"index"`
	Value int `json:"value"`
}

// RollResult is the aggregate result of a collection roll.
type RollResult struct {
	Values []int `json:"values"`
	Sum    int   `json:"sum"`
}

// SetValueRequest forces a single die to a face value.
type SetValueRequest struct {
	Value int `json:"value"`
}

// SetValuesRequest forces every die positionally.
type SetValuesRequest struct {
	Values []int `json:"values"`
}

// ErrorResponse is the JSON error body for rejected requests.
type ErrorResponse struct {
	Error string `json:"error"`
}
