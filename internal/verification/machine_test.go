package verification

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finaid-tools/docverifier/constants"
	"github.com/finaid-tools/docverifier/internal/common"
)

func TestTransition_AutoApprovalPath(t *testing.T) {
	s, err := Transition(constants.VerificationPending, EventBeginChecks)
	require.NoError(t, err)
	assert.Equal(t, constants.VerificationInProgress, s)

	s, err = Transition(s, EventAutoApprove)
	require.NoError(t, err)
	assert.Equal(t, constants.VerificationAutoApproved, s)

	s, err = Transition(s, EventPromote)
	require.NoError(t, err)
	assert.Equal(t, constants.VerificationApproved, s)
}

func TestTransition_ManualReviewPath(t *testing.T) {
	s, err := Transition(constants.VerificationInProgress, EventRequireReview)
	require.NoError(t, err)
	assert.Equal(t, constants.VerificationManualReview, s)

	approved, err := Transition(s, EventReviewerApprove)
	require.NoError(t, err)
	assert.Equal(t, constants.VerificationApproved, approved)

	rejected, err := Transition(s, EventReviewerReject)
	require.NoError(t, err)
	assert.Equal(t, constants.VerificationRejected, rejected)
}

func TestTransition_ApprovalCanLapse(t *testing.T) {
	s, err := Transition(constants.VerificationApproved, EventExpire)
	require.NoError(t, err)
	assert.Equal(t, constants.VerificationExpired, s)
}

func TestTransition_IllegalRequestsAreRejected(t *testing.T) {
	illegal := []struct {
		from  constants.VerificationStatus
		event Event
	}{
		{constants.VerificationApproved, EventBeginChecks},
		{constants.VerificationApproved, EventReviewerReject},
		{constants.VerificationPending, EventPromote},
		{constants.VerificationPending, EventReviewerApprove},
		{constants.VerificationInProgress, EventReviewerApprove},
		{constants.VerificationAutoApproved, EventReviewerReject},
	}
	for _, tt := range illegal {
		next, err := Transition(tt.from, tt.event)
		assert.ErrorIs(t, err, common.ErrInvalidTransition, "%s on %s", tt.event, tt.from)
		assert.Equal(t, tt.from, next, "state must be unchanged on an illegal event")
	}
}

func TestTransition_NothingLeavesTerminalStates(t *testing.T) {
	events := []Event{
		EventBeginChecks, EventAutoApprove, EventRequireReview,
		EventReviewerApprove, EventReviewerReject, EventPromote, EventExpire,
	}
	for _, terminal := range []constants.VerificationStatus{
		constants.VerificationRejected,
		constants.VerificationExpired,
	} {
		for _, ev := range events {
			_, err := Transition(terminal, ev)
			assert.ErrorIs(t, err, common.ErrInvalidTransition, "%s on %s", ev, terminal)
		}
	}
}
