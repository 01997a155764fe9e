// Copyright 2025 Binaek Sarkar
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package value

// ActionKind tags which side effect an Action carries.
type ActionKind uint8

const (
	ActionCreateCase ActionKind = iota
	ActionCreateComment
	ActionSendAuthAdvise
	ActionSetFraudScore
	ActionSetDecision
	ActionCustom
)

func (k ActionKind) String() string {
	switch k {
	case ActionCreateCase:
		return "CreateCase"
	case ActionCreateComment:
		return "CreateComment"
	case ActionSendAuthAdvise:
		return "SendAuthAdvise"
	case ActionSetFraudScore:
		return "SetFraudScore"
	case ActionSetDecision:
		return "SetDecision"
	case ActionCustom:
		return "Custom"
	default:
		return "Unknown"
	}
}

// Decisions accepted by SetDecision (spec §3, validated by the VM at emission).
const (
	DecisionAllow  = "ALLOW"
	DecisionBlock  = "BLOCK"
	DecisionReview = "REVIEW"
)

// Action is a side effect emitted by a rule for the host to carry out.
// Exactly the fields relevant to Kind are populated.
type Action struct {
	Kind ActionKind

	// CreateCase
	Severity string
	Reason   string

	// CreateComment
	Comment string

	// SendAuthAdvise
	Channel  string
	Template string

	// SetFraudScore
	Score float64

	// SetDecision
	Decision string

	// Custom
	Name string
	Args []Value
}

func NewCreateCase(severity, reason string) Action {
	return Action{Kind: ActionCreateCase, Severity: severity, Reason: reason}
}

func NewCreateComment(comment string) Action {
	return Action{Kind: ActionCreateComment, Comment: comment}
}

func NewSendAuthAdvise(channel, template string) Action {
	return Action{Kind: ActionSendAuthAdvise, Channel: channel, Template: template}
}

// NewSetFraudScore clamps score into [0.0, 1.0] silently, per spec §4.4.
func NewSetFraudScore(score float64) Action {
	switch {
	case score < 0:
		score = 0
	case score > 1:
		score = 1
	}
	return Action{Kind: ActionSetFraudScore, Score: score}
}

// IsValidDecision reports whether s is one of the three accepted decisions.
func IsValidDecision(s string) bool {
	switch s {
	case DecisionAllow, DecisionBlock, DecisionReview:
		return true
	default:
		return false
	}
}

func NewSetDecision(decision string) Action {
	return Action{Kind: ActionSetDecision, Decision: decision}
}

func NewCustom(name string, args []Value) Action {
	return Action{Kind: ActionCustom, Name: name, Args: args}
}
