// Package verification owns the document verification state machine and the
// automated check evaluation that feeds it.
package verification

import (
	"fmt"

	"github.com/finaid-tools/docverifier/constants"
	"github.com/finaid-tools/docverifier/internal/common"
)

// Event is a state-machine input.
type Event string

const (
	EventBeginChecks     Event = "BEGIN_CHECKS"
	EventAutoApprove     Event = "AUTO_APPROVE"
	EventRequireReview   Event = "REQUIRE_REVIEW"
	EventReviewerApprove Event = "REVIEWER_APPROVE"
	EventReviewerReject  Event = "REVIEWER_REJECT"
	EventPromote         Event = "PROMOTE"
	EventExpire          Event = "EXPIRE"
)

// transitions is the closed transition table. Anything absent is illegal:
// the machine never silently clamps a request.
var transitions = map[constants.VerificationStatus]map[Event]constants.VerificationStatus{
	constants.VerificationPending: {
		EventBeginChecks:   constants.VerificationInProgress,
		EventAutoApprove:   constants.VerificationAutoApproved,
		EventRequireReview: constants.VerificationManualReview,
		EventExpire:        constants.VerificationExpired,
	},
	constants.VerificationInProgress: {
		EventAutoApprove:   constants.VerificationAutoApproved,
		EventRequireReview: constants.VerificationManualReview,
		EventExpire:        constants.VerificationExpired,
	},
	constants.VerificationAutoApproved: {
		EventPromote: constants.VerificationApproved,
		EventExpire:  constants.VerificationExpired,
	},
	constants.VerificationManualReview: {
		EventReviewerApprove: constants.VerificationApproved,
		EventReviewerReject:  constants.VerificationRejected,
		EventExpire:          constants.VerificationExpired,
	},
	// approvals can lapse; rejected and expired are dead ends
	constants.VerificationApproved: {
		EventExpire: constants.VerificationExpired,
	},
}

// Transition applies an event to a state, returning the next state or an
// explicit error for an illegal request.
func Transition(current constants.VerificationStatus, event Event) (constants.VerificationStatus, error) {
	if next, ok := transitions[current][event]; ok {
		return next, nil
	}
	return current, fmt.Errorf("%w: %s on %s", common.ErrInvalidTransition, event, current)
}
