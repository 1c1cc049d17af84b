// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AssessmentSessionsColumns holds the columns for the "assessment_sessions" table.
	AssessmentSessionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "session_id", Type: field.TypeString, Unique: true},
		{Name: "user_ref", Type: field.TypeString},
		{Name: "status", Type: field.TypeString},
		{Name: "mode", Type: field.TypeString},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "finished_at", Type: field.TypeTime, Nullable: true},
		{Name: "items_answered", Type: field.TypeInt, Default: 0},
	}
	// AssessmentSessionsTable holds the schema information for the "assessment_sessions" table.
	AssessmentSessionsTable = &schema.Table{
		Name:       "assessment_sessions",
		Columns:    AssessmentSessionsColumns,
		PrimaryKey: []*schema.Column{AssessmentSessionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "assessmentsession_user_ref",
				Unique:  false,
				Columns: []*schema.Column{AssessmentSessionsColumns[2]},
			},
			{
				Name:    "assessmentsession_status",
				Unique:  false,
				Columns: []*schema.Column{AssessmentSessionsColumns[3]},
			},
		},
	}
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[2]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[4]},
			},
			{
				Name:    "llmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[8]},
			},
		},
	}
	// ProficiencySnapshotsColumns holds the columns for the "proficiency_snapshots" table.
	ProficiencySnapshotsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "session_id", Type: field.TypeString, Unique: true},
		{Name: "taken_at", Type: field.TypeTime},
		{Name: "global_score", Type: field.TypeFloat64},
		{Name: "global_level", Type: field.TypeString},
		{Name: "competencies", Type: field.TypeJSON},
	}
	// ProficiencySnapshotsTable holds the schema information for the "proficiency_snapshots" table.
	ProficiencySnapshotsTable = &schema.Table{
		Name:       "proficiency_snapshots",
		Columns:    ProficiencySnapshotsColumns,
		PrimaryKey: []*schema.Column{ProficiencySnapshotsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "proficiencysnapshot_taken_at",
				Unique:  false,
				Columns: []*schema.Column{ProficiencySnapshotsColumns[2]},
			},
		},
	}
	// ResponseEventsColumns holds the columns for the "response_events" table.
	ResponseEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "item_id", Type: field.TypeString},
		{Name: "item_type", Type: field.TypeString},
		{Name: "competency", Type: field.TypeString},
		{Name: "raw_answer", Type: field.TypeString},
		{Name: "graded_score", Type: field.TypeFloat64},
		{Name: "latency_ms", Type: field.TypeInt64},
		{Name: "flags", Type: field.TypeJSON, Nullable: true},
		{Name: "theta_after", Type: field.TypeFloat64},
		{Name: "ci_after", Type: field.TypeFloat64},
	}
	// ResponseEventsTable holds the schema information for the "response_events" table.
	ResponseEventsTable = &schema.Table{
		Name:       "response_events",
		Columns:    ResponseEventsColumns,
		PrimaryKey: []*schema.Column{ResponseEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "responseevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{ResponseEventsColumns[1]},
			},
			{
				Name:    "responseevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{ResponseEventsColumns[2]},
			},
			{
				Name:    "responseevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{ResponseEventsColumns[3]},
			},
			{
				Name:    "responseevent_competency",
				Unique:  false,
				Columns: []*schema.Column{ResponseEventsColumns[6]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AssessmentSessionsTable,
		LlmRequestEventsTable,
		ProficiencySnapshotsTable,
		ResponseEventsTable,
	}
)

func init() {
}
