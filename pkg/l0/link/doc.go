// Package link moves rover frames over datagram, stream and websocket
// transports. Delivery is best-effort: nothing is acknowledged,
// retried or reordered.
package link
