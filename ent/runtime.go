// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/tanmay/acuity/ent/schema"
	"github.com/tanmay/acuity/ent/screeningevent"
	"github.com/tanmay/acuity/ent/submissionevent"
	"github.com/tanmay/acuity/ent/taskevent"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	screeningeventMixin := schema.ScreeningEvent{}.Mixin()
	screeningeventMixinFields0 := screeningeventMixin[0].Fields()
	_ = screeningeventMixinFields0
	screeningeventFields := schema.ScreeningEvent{}.Fields()
	_ = screeningeventFields
	// screeningeventDescTimestamp is the schema descriptor for timestamp field.
	screeningeventDescTimestamp := screeningeventMixinFields0[1].Descriptor()
	// screeningevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	screeningevent.DefaultTimestamp = screeningeventDescTimestamp.Default.(func() time.Time)
	// screeningeventDescScreeningID is the schema descriptor for screening_id field.
	screeningeventDescScreeningID := screeningeventFields[0].Descriptor()
	// screeningevent.ScreeningIDValidator is a validator for the "screening_id" field. It is called by the builders before save.
	screeningevent.ScreeningIDValidator = screeningeventDescScreeningID.Validators[0].(func(string) error)
	// screeningeventDescAction is the schema descriptor for action field.
	screeningeventDescAction := screeningeventFields[1].Descriptor()
	// screeningevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	screeningevent.ActionValidator = screeningeventDescAction.Validators[0].(func(string) error)
	// screeningeventDescWordScore is the schema descriptor for word_score field.
	screeningeventDescWordScore := screeningeventFields[2].Descriptor()
	// screeningevent.DefaultWordScore holds the default value on creation for the word_score field.
	screeningevent.DefaultWordScore = screeningeventDescWordScore.Default.(int)
	// screeningeventDescMemoryScore is the schema descriptor for memory_score field.
	screeningeventDescMemoryScore := screeningeventFields[3].Descriptor()
	// screeningevent.DefaultMemoryScore holds the default value on creation for the memory_score field.
	screeningevent.DefaultMemoryScore = screeningeventDescMemoryScore.Default.(int)
	// screeningeventDescReactionMs is the schema descriptor for reaction_ms field.
	screeningeventDescReactionMs := screeningeventFields[4].Descriptor()
	// screeningevent.DefaultReactionMs holds the default value on creation for the reaction_ms field.
	screeningevent.DefaultReactionMs = screeningeventDescReactionMs.Default.(int)
	// screeningeventDescDurationSecs is the schema descriptor for duration_secs field.
	screeningeventDescDurationSecs := screeningeventFields[5].Descriptor()
	// screeningevent.DefaultDurationSecs holds the default value on creation for the duration_secs field.
	screeningevent.DefaultDurationSecs = screeningeventDescDurationSecs.Default.(int)
	submissioneventMixin := schema.SubmissionEvent{}.Mixin()
	submissioneventMixinFields0 := submissioneventMixin[0].Fields()
	_ = submissioneventMixinFields0
	submissioneventFields := schema.SubmissionEvent{}.Fields()
	_ = submissioneventFields
	// submissioneventDescTimestamp is the schema descriptor for timestamp field.
	submissioneventDescTimestamp := submissioneventMixinFields0[1].Descriptor()
	// submissionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	submissionevent.DefaultTimestamp = submissioneventDescTimestamp.Default.(func() time.Time)
	// submissioneventDescScreeningID is the schema descriptor for screening_id field.
	submissioneventDescScreeningID := submissioneventFields[0].Descriptor()
	// submissionevent.ScreeningIDValidator is a validator for the "screening_id" field. It is called by the builders before save.
	submissionevent.ScreeningIDValidator = submissioneventDescScreeningID.Validators[0].(func(string) error)
	// submissioneventDescSpeechAttached is the schema descriptor for speech_attached field.
	submissioneventDescSpeechAttached := submissioneventFields[4].Descriptor()
	// submissionevent.DefaultSpeechAttached holds the default value on creation for the speech_attached field.
	submissionevent.DefaultSpeechAttached = submissioneventDescSpeechAttached.Default.(bool)
	// submissioneventDescRiskScore is the schema descriptor for risk_score field.
	submissioneventDescRiskScore := submissioneventFields[6].Descriptor()
	// submissionevent.DefaultRiskScore holds the default value on creation for the risk_score field.
	submissionevent.DefaultRiskScore = submissioneventDescRiskScore.Default.(float64)
	// submissioneventDescRiskCategory is the schema descriptor for risk_category field.
	submissioneventDescRiskCategory := submissioneventFields[7].Descriptor()
	// submissionevent.DefaultRiskCategory holds the default value on creation for the risk_category field.
	submissionevent.DefaultRiskCategory = submissioneventDescRiskCategory.Default.(string)
	// submissioneventDescCognitiveRisk is the schema descriptor for cognitive_risk field.
	submissioneventDescCognitiveRisk := submissioneventFields[8].Descriptor()
	// submissionevent.DefaultCognitiveRisk holds the default value on creation for the cognitive_risk field.
	submissionevent.DefaultCognitiveRisk = submissioneventDescCognitiveRisk.Default.(float64)
	// submissioneventDescSpeechAnalyzed is the schema descriptor for speech_analyzed field.
	submissioneventDescSpeechAnalyzed := submissioneventFields[9].Descriptor()
	// submissionevent.DefaultSpeechAnalyzed holds the default value on creation for the speech_analyzed field.
	submissionevent.DefaultSpeechAnalyzed = submissioneventDescSpeechAnalyzed.Default.(bool)
	// submissioneventDescLatencyMs is the schema descriptor for latency_ms field.
	submissioneventDescLatencyMs := submissioneventFields[10].Descriptor()
	// submissionevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	submissionevent.DefaultLatencyMs = submissioneventDescLatencyMs.Default.(int64)
	// submissioneventDescErrorMessage is the schema descriptor for error_message field.
	submissioneventDescErrorMessage := submissioneventFields[11].Descriptor()
	// submissionevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	submissionevent.DefaultErrorMessage = submissioneventDescErrorMessage.Default.(string)
	taskeventMixin := schema.TaskEvent{}.Mixin()
	taskeventMixinFields0 := taskeventMixin[0].Fields()
	_ = taskeventMixinFields0
	taskeventFields := schema.TaskEvent{}.Fields()
	_ = taskeventFields
	// taskeventDescTimestamp is the schema descriptor for timestamp field.
	taskeventDescTimestamp := taskeventMixinFields0[1].Descriptor()
	// taskevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	taskevent.DefaultTimestamp = taskeventDescTimestamp.Default.(func() time.Time)
	// taskeventDescScreeningID is the schema descriptor for screening_id field.
	taskeventDescScreeningID := taskeventFields[0].Descriptor()
	// taskevent.ScreeningIDValidator is a validator for the "screening_id" field. It is called by the builders before save.
	taskevent.ScreeningIDValidator = taskeventDescScreeningID.Validators[0].(func(string) error)
	// taskeventDescTask is the schema descriptor for task field.
	taskeventDescTask := taskeventFields[1].Descriptor()
	// taskevent.TaskValidator is a validator for the "task" field. It is called by the builders before save.
	taskevent.TaskValidator = taskeventDescTask.Validators[0].(func(string) error)
	// taskeventDescDurationMs is the schema descriptor for duration_ms field.
	taskeventDescDurationMs := taskeventFields[3].Descriptor()
	// taskevent.DefaultDurationMs holds the default value on creation for the duration_ms field.
	taskevent.DefaultDurationMs = taskeventDescDurationMs.Default.(int)
}
