package arenahandlers

import (
	"github.com/ThreeDotsLabs/watermill/message"
)

// Handlers consumes published arena events.
type Handlers interface {
	HandleGameStarted(msg *message.Message) error
	HandleScoreLogged(msg *message.Message) error
	HandlePrizeClaimed(msg *message.Message) error
	HandleRoundSettled(msg *message.Message) error
	HandlePrizePoolToppedUp(msg *message.Message) error
}
