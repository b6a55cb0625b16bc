package transcript

import (
	"errors"
	"fmt"

	"github.com/arloliu/go-scpikit/verifier"
)

// ErrFailedEvent indicates a transcript holding a transport failure, which a scenario cannot replay.
var ErrFailedEvent = errors.New("transcript contains a failed exchange")

// ToScenario builds a verifier scenario from recorded events: outbound lines become the expected writes and
// inbound lines the canned replies, each in recorded order.
func ToScenario(name string, events []Event) (verifier.Scenario, error) {
	s := verifier.Scenario{
		Name:   name,
		Writes: []string{},
		Reads:  []string{},
	}

	for _, event := range events {
		if event.Failed() {
			return verifier.Scenario{}, fmt.Errorf("%w: event #%d %s: %s", ErrFailedEvent, event.Seq, event.Direction, event.Err)
		}

		switch event.Direction {
		case DirectionOut:
			s.Writes = append(s.Writes, event.Text)
		case DirectionIn:
			s.Reads = append(s.Reads, event.Text)
		default:
			return verifier.Scenario{}, fmt.Errorf("event #%d has an unknown direction %d", event.Seq, event.Direction)
		}
	}

	return s, nil
}
