// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ScreeningEventsColumns holds the columns for the "screening_events" table.
	ScreeningEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "screening_id", Type: field.TypeString},
		{Name: "action", Type: field.TypeString},
		{Name: "word_score", Type: field.TypeInt, Default: 0},
		{Name: "memory_score", Type: field.TypeInt, Default: 0},
		{Name: "reaction_ms", Type: field.TypeInt, Default: 0},
		{Name: "duration_secs", Type: field.TypeInt, Default: 0},
	}
	// ScreeningEventsTable holds the schema information for the "screening_events" table.
	ScreeningEventsTable = &schema.Table{
		Name:       "screening_events",
		Columns:    ScreeningEventsColumns,
		PrimaryKey: []*schema.Column{ScreeningEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "screeningevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{ScreeningEventsColumns[1]},
			},
			{
				Name:    "screeningevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{ScreeningEventsColumns[2]},
			},
			{
				Name:    "screeningevent_screening_id",
				Unique:  false,
				Columns: []*schema.Column{ScreeningEventsColumns[3]},
			},
			{
				Name:    "screeningevent_action",
				Unique:  false,
				Columns: []*schema.Column{ScreeningEventsColumns[4]},
			},
		},
	}
	// SubmissionEventsColumns holds the columns for the "submission_events" table.
	SubmissionEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "screening_id", Type: field.TypeString},
		{Name: "word_score", Type: field.TypeInt},
		{Name: "memory_score", Type: field.TypeInt},
		{Name: "reaction_ms", Type: field.TypeInt},
		{Name: "speech_attached", Type: field.TypeBool, Default: false},
		{Name: "success", Type: field.TypeBool},
		{Name: "risk_score", Type: field.TypeFloat64, Default: 0},
		{Name: "risk_category", Type: field.TypeString, Default: ""},
		{Name: "cognitive_risk", Type: field.TypeFloat64, Default: 0},
		{Name: "speech_analyzed", Type: field.TypeBool, Default: false},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "error_message", Type: field.TypeString, Default: ""},
	}
	// SubmissionEventsTable holds the schema information for the "submission_events" table.
	SubmissionEventsTable = &schema.Table{
		Name:       "submission_events",
		Columns:    SubmissionEventsColumns,
		PrimaryKey: []*schema.Column{SubmissionEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "submissionevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{SubmissionEventsColumns[1]},
			},
			{
				Name:    "submissionevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{SubmissionEventsColumns[2]},
			},
			{
				Name:    "submissionevent_screening_id",
				Unique:  false,
				Columns: []*schema.Column{SubmissionEventsColumns[3]},
			},
			{
				Name:    "submissionevent_success",
				Unique:  false,
				Columns: []*schema.Column{SubmissionEventsColumns[8]},
			},
		},
	}
	// TaskEventsColumns holds the columns for the "task_events" table.
	TaskEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "screening_id", Type: field.TypeString},
		{Name: "task", Type: field.TypeString},
		{Name: "score", Type: field.TypeInt},
		{Name: "duration_ms", Type: field.TypeInt, Default: 0},
	}
	// TaskEventsTable holds the schema information for the "task_events" table.
	TaskEventsTable = &schema.Table{
		Name:       "task_events",
		Columns:    TaskEventsColumns,
		PrimaryKey: []*schema.Column{TaskEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "taskevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{TaskEventsColumns[1]},
			},
			{
				Name:    "taskevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{TaskEventsColumns[2]},
			},
			{
				Name:    "taskevent_screening_id",
				Unique:  false,
				Columns: []*schema.Column{TaskEventsColumns[3]},
			},
			{
				Name:    "taskevent_task",
				Unique:  false,
				Columns: []*schema.Column{TaskEventsColumns[4]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ScreeningEventsTable,
		SubmissionEventsTable,
		TaskEventsTable,
	}
)

func init() {
}
