// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/oaz/profiler/ent/assessmentsession"
	"github.com/oaz/profiler/ent/llmrequestevent"
	"github.com/oaz/profiler/ent/proficiencysnapshot"
	"github.com/oaz/profiler/ent/responseevent"
	"github.com/oaz/profiler/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	assessmentsessionFields := schema.AssessmentSession{}.Fields()
	_ = assessmentsessionFields
	// assessmentsessionDescSessionID is the schema descriptor for session_id field.
	assessmentsessionDescSessionID := assessmentsessionFields[0].Descriptor()
	// assessmentsession.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	assessmentsession.SessionIDValidator = assessmentsessionDescSessionID.Validators[0].(func(string) error)
	// assessmentsessionDescStatus is the schema descriptor for status field.
	assessmentsessionDescStatus := assessmentsessionFields[2].Descriptor()
	// assessmentsession.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	assessmentsession.StatusValidator = assessmentsessionDescStatus.Validators[0].(func(string) error)
	// assessmentsessionDescMode is the schema descriptor for mode field.
	assessmentsessionDescMode := assessmentsessionFields[3].Descriptor()
	// assessmentsession.ModeValidator is a validator for the "mode" field. It is called by the builders before save.
	assessmentsession.ModeValidator = assessmentsessionDescMode.Validators[0].(func(string) error)
	// assessmentsessionDescStartedAt is the schema descriptor for started_at field.
	assessmentsessionDescStartedAt := assessmentsessionFields[4].Descriptor()
	// assessmentsession.DefaultStartedAt holds the default value on creation for the started_at field.
	assessmentsession.DefaultStartedAt = assessmentsessionDescStartedAt.Default.(func() time.Time)
	// assessmentsessionDescItemsAnswered is the schema descriptor for items_answered field.
	assessmentsessionDescItemsAnswered := assessmentsessionFields[6].Descriptor()
	// assessmentsession.DefaultItemsAnswered holds the default value on creation for the items_answered field.
	assessmentsession.DefaultItemsAnswered = assessmentsessionDescItemsAnswered.Default.(int)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescModel is the schema descriptor for model field.
	llmrequesteventDescModel := llmrequesteventFields[0].Descriptor()
	// llmrequestevent.ModelValidator is a validator for the "model" field. It is called by the builders before save.
	llmrequestevent.ModelValidator = llmrequesteventDescModel.Validators[0].(func(string) error)
	// llmrequesteventDescPurpose is the schema descriptor for purpose field.
	llmrequesteventDescPurpose := llmrequesteventFields[1].Descriptor()
	// llmrequestevent.PurposeValidator is a validator for the "purpose" field. It is called by the builders before save.
	llmrequestevent.PurposeValidator = llmrequesteventDescPurpose.Validators[0].(func(string) error)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[2].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	proficiencysnapshotFields := schema.ProficiencySnapshot{}.Fields()
	_ = proficiencysnapshotFields
	// proficiencysnapshotDescSessionID is the schema descriptor for session_id field.
	proficiencysnapshotDescSessionID := proficiencysnapshotFields[0].Descriptor()
	// proficiencysnapshot.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	proficiencysnapshot.SessionIDValidator = proficiencysnapshotDescSessionID.Validators[0].(func(string) error)
	// proficiencysnapshotDescTakenAt is the schema descriptor for taken_at field.
	proficiencysnapshotDescTakenAt := proficiencysnapshotFields[1].Descriptor()
	// proficiencysnapshot.DefaultTakenAt holds the default value on creation for the taken_at field.
	proficiencysnapshot.DefaultTakenAt = proficiencysnapshotDescTakenAt.Default.(func() time.Time)
	// proficiencysnapshotDescGlobalLevel is the schema descriptor for global_level field.
	proficiencysnapshotDescGlobalLevel := proficiencysnapshotFields[3].Descriptor()
	// proficiencysnapshot.GlobalLevelValidator is a validator for the "global_level" field. It is called by the builders before save.
	proficiencysnapshot.GlobalLevelValidator = proficiencysnapshotDescGlobalLevel.Validators[0].(func(string) error)
	responseeventMixin := schema.ResponseEvent{}.Mixin()
	responseeventMixinFields0 := responseeventMixin[0].Fields()
	_ = responseeventMixinFields0
	responseeventFields := schema.ResponseEvent{}.Fields()
	_ = responseeventFields
	// responseeventDescTimestamp is the schema descriptor for timestamp field.
	responseeventDescTimestamp := responseeventMixinFields0[1].Descriptor()
	// responseevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	responseevent.DefaultTimestamp = responseeventDescTimestamp.Default.(func() time.Time)
	// responseeventDescSessionID is the schema descriptor for session_id field.
	responseeventDescSessionID := responseeventFields[0].Descriptor()
	// responseevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	responseevent.SessionIDValidator = responseeventDescSessionID.Validators[0].(func(string) error)
	// responseeventDescItemID is the schema descriptor for item_id field.
	responseeventDescItemID := responseeventFields[1].Descriptor()
	// responseevent.ItemIDValidator is a validator for the "item_id" field. It is called by the builders before save.
	responseevent.ItemIDValidator = responseeventDescItemID.Validators[0].(func(string) error)
	// responseeventDescItemType is the schema descriptor for item_type field.
	responseeventDescItemType := responseeventFields[2].Descriptor()
	// responseevent.ItemTypeValidator is a validator for the "item_type" field. It is called by the builders before save.
	responseevent.ItemTypeValidator = responseeventDescItemType.Validators[0].(func(string) error)
}
