//go:build zmq

package main

import (
	"context"
	"fmt"
	"syscall"
	"time"

	"github.com/pebbe/zmq4"
	"go.uber.org/zap"
)

const (
	hashblockTopic = "hashblock"

	// zmqRecvTimeout bounds each receive so the listener notices
	// context cancellation between messages.
	zmqRecvTimeout = 1 * time.Second
)

// startBlockSignal subscribes to the node's hashblock notifications
// and pokes the follower loop on every new block. An empty addr
// disables the signal; the follower then relies on its poll interval
// alone.
func startBlockSignal(ctx context.Context, addr string, logger *zap.Logger) (<-chan struct{}, error) {
	if addr == "" {
		return nil, nil
	}

	sub, err := zmq4.NewSocket(zmq4.SUB)
	if err != nil {
		return nil, fmt.Errorf("zmq socket: %w", err)
	}
	if err := sub.SetRcvtimeo(zmqRecvTimeout); err != nil {
		_ = sub.Close()
		return nil, fmt.Errorf("zmq receive timeout: %w", err)
	}
	if err := sub.SetSubscribe(hashblockTopic); err != nil {
		_ = sub.Close()
		return nil, fmt.Errorf("zmq subscribe %q: %w", hashblockTopic, err)
	}
	if err := sub.Connect(addr); err != nil {
		_ = sub.Close()
		return nil, fmt.Errorf("zmq connect %s: %w", addr, err)
	}

	notify := make(chan struct{}, 1)
	go listenHashblock(ctx, sub, notify, logger)
	return notify, nil
}

// listenHashblock forwards hashblock messages as non-blocking pokes on
// notify. A full channel means a poke is already pending and the
// message is dropped; the follower only needs the edge.
func listenHashblock(ctx context.Context, sub *zmq4.Socket, notify chan<- struct{}, logger *zap.Logger) {
	defer sub.Close()
	for ctx.Err() == nil {
		parts, err := sub.RecvMessageBytes(0)
		switch {
		case err == nil:
		case zmq4.AsErrno(err) == zmq4.Errno(syscall.EAGAIN):
			// Receive timeout; loop to re-check the context.
			continue
		default:
			logger.Warn("zmq recv failed", zap.Error(err))
			time.Sleep(time.Second)
			continue
		}
		if len(parts) < 2 {
			logger.Warn("skip malformed zmq message", zap.Int("parts", len(parts)))
			continue
		}
		select {
		case notify <- struct{}{}:
		default:
		}
	}
}
