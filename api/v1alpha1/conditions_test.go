package v1alpha1

import (
	"testing"

	"github.com/stretchr/testify/assert"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

func TestCurrentPhase(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		status metav1.ConditionStatus
		reason string
		want   Phase
	}{
		{
			name:   "ready",
			status: metav1.ConditionTrue,
			reason: ReasonVirtualServerReady,
			want:   PhaseReady,
		},
		{
			name:   "stopped",
			status: metav1.ConditionFalse,
			reason: ReasonVirtualServerStopped,
			want:   PhaseStopped,
		},
		{
			name:   "terminating",
			status: metav1.ConditionFalse,
			reason: ReasonTerminating,
			want:   PhaseTerminating,
		},
		{
			name:   "unrecognized_reason",
			status: metav1.ConditionTrue,
			reason: "Provisioning",
			want:   PhaseUnknown,
		},
		{
			name:   "ready_reason_with_false_status",
			status: metav1.ConditionFalse,
			reason: ReasonVirtualServerReady,
			want:   PhaseUnknown,
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			vs := &VirtualServer{}
			SetCondition(vs, ConditionReady, tc.status, tc.reason, "")

			assert.Equal(t, tc.want, vs.CurrentPhase())
		})
	}
}

func TestCurrentPhaseNoConditions(t *testing.T) {
	t.Parallel()

	vs := &VirtualServer{}
	assert.Equal(t, PhaseUnknown, vs.CurrentPhase())
}

func TestMatchCondition(t *testing.T) {
	t.Parallel()

	ready := &metav1.Condition{
		Type:   ConditionReady,
		Status: metav1.ConditionTrue,
		Reason: ReasonVirtualServerReady,
	}

	assert.Equal(t, PhaseReady, MatchCondition(ready, PhaseReady))
	assert.Equal(t, PhaseUnknown, MatchCondition(ready, PhaseStopped))
	// Deleted has no condition triple, it only exists for watchers.
	assert.Equal(t, PhaseUnknown, MatchCondition(ready, PhaseDeleted))
	assert.Equal(t, PhaseUnknown, MatchCondition(nil, PhaseReady))
}

func TestSetPhaseRoundTrips(t *testing.T) {
	t.Parallel()

	vs := &VirtualServer{}
	SetPhase(vs, PhaseStopped, "hibernated by operator")

	assert.Equal(t, PhaseStopped, vs.CurrentPhase())
	assert.True(t, IsConditionFalse(vs, ConditionReady))

	SetPhase(vs, PhaseReady, "")
	assert.Equal(t, PhaseReady, vs.CurrentPhase())
	assert.True(t, IsConditionTrue(vs, ConditionReady))

	// Unreportable phases leave the status untouched.
	SetPhase(vs, PhaseDeleted, "")
	assert.Equal(t, PhaseReady, vs.CurrentPhase())
}
