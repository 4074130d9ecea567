package v1alpha1

import (
	"k8s.io/apimachinery/pkg/api/meta"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// ConditionReady is the single condition type the control plane reports on a
// VirtualServer. Its status and reason together encode the lifecycle phase.
const ConditionReady = "Ready"

// Reasons carried by the Ready condition.
const (
	ReasonVirtualServerReady   = "VirtualServerReady"
	ReasonVirtualServerStopped = "VirtualServerStopped"
	ReasonTerminating          = "Terminating"
)

// Phase is the lifecycle phase derived from the Ready condition.
type Phase string

const (
	PhaseReady       Phase = "Ready"
	PhaseStopped     Phase = "Stopped"
	PhaseTerminating Phase = "Terminating"
	// PhaseDeleted is synthesized by watchers when the object disappears;
	// the control plane never reports it as a condition.
	PhaseDeleted Phase = "Deleted"
	PhaseUnknown Phase = ""
)

// phaseConditions maps each reportable phase to the condition triple the
// control plane publishes for it.
var phaseConditions = map[Phase]metav1.Condition{
	PhaseReady:       {Type: ConditionReady, Status: metav1.ConditionTrue, Reason: ReasonVirtualServerReady},
	PhaseStopped:     {Type: ConditionReady, Status: metav1.ConditionFalse, Reason: ReasonVirtualServerStopped},
	PhaseTerminating: {Type: ConditionReady, Status: metav1.ConditionFalse, Reason: ReasonTerminating},
}

// MatchCondition returns want if the condition carries exactly the type,
// status and reason that phase publishes, and PhaseUnknown otherwise.
func MatchCondition(cond *metav1.Condition, want Phase) Phase {
	expected, ok := phaseConditions[want]
	if !ok || cond == nil {
		return PhaseUnknown
	}
	if cond.Type == expected.Type && cond.Status == expected.Status && cond.Reason == expected.Reason {
		return want
	}
	return PhaseUnknown
}

// CurrentPhase classifies the VirtualServer's Ready condition into a phase.
func (vs *VirtualServer) CurrentPhase() Phase {
	cond := GetCondition(vs, ConditionReady)
	if cond == nil {
		return PhaseUnknown
	}
	for phase := range phaseConditions {
		if MatchCondition(cond, phase) == phase {
			return phase
		}
	}
	return PhaseUnknown
}

// SetPhase sets the Ready condition to the triple published for the phase.
func SetPhase(vs *VirtualServer, phase Phase, message string) {
	expected, ok := phaseConditions[phase]
	if !ok {
		return
	}
	SetCondition(vs, expected.Type, expected.Status, expected.Reason, message)
}

// SetCondition sets the specified condition on the VirtualServer status
func SetCondition(vs *VirtualServer, conditionType string, status metav1.ConditionStatus, reason, message string) {
	condition := metav1.Condition{
		Type:               conditionType,
		Status:             status,
		ObservedGeneration: vs.Generation,
		LastTransitionTime: metav1.Now(),
		Reason:             reason,
		Message:            message,
	}
	meta.SetStatusCondition(&vs.Status.Conditions, condition)
}

// GetCondition returns the condition with the specified type
func GetCondition(vs *VirtualServer, conditionType string) *metav1.Condition {
	return meta.FindStatusCondition(vs.Status.Conditions, conditionType)
}

// IsConditionTrue returns true if the condition with the specified type has status True
func IsConditionTrue(vs *VirtualServer, conditionType string) bool {
	return meta.IsStatusConditionTrue(vs.Status.Conditions, conditionType)
}

// IsConditionFalse returns true if the condition with the specified type has status False
func IsConditionFalse(vs *VirtualServer, conditionType string) bool {
	return meta.IsStatusConditionFalse(vs.Status.Conditions, conditionType)
}
