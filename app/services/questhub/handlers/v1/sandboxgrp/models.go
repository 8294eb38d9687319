package sandboxgrp

// AppSend is the payload for a simulated send. The amount is a decimal
// string with at most three fractional digits.
type AppSend struct {
	Amount string `json:"amount"`
	To     string `json:"to"`
}
