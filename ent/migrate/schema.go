// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// CheckEventsColumns holds the columns for the "check_events" table.
	CheckEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "exercise", Type: field.TypeString},
		{Name: "score", Type: field.TypeInt},
		{Name: "total", Type: field.TypeInt},
		{Name: "created_at", Type: field.TypeTime},
	}
	// CheckEventsTable holds the schema information for the "check_events" table.
	CheckEventsTable = &schema.Table{
		Name:       "check_events",
		Columns:    CheckEventsColumns,
		PrimaryKey: []*schema.Column{CheckEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "checkevent_exercise",
				Unique:  false,
				Columns: []*schema.Column{CheckEventsColumns[1]},
			},
		},
	}
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
		{Name: "created_at", Type: field.TypeTime},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_provider",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[3]},
			},
			{
				Name:    "llmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[7]},
			},
		},
	}
	// ShowEventsColumns holds the columns for the "show_events" table.
	ShowEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "exercise", Type: field.TypeString},
		{Name: "task_id", Type: field.TypeInt},
		{Name: "shown_at", Type: field.TypeTime},
	}
	// ShowEventsTable holds the schema information for the "show_events" table.
	ShowEventsTable = &schema.Table{
		Name:       "show_events",
		Columns:    ShowEventsColumns,
		PrimaryKey: []*schema.Column{ShowEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "showevent_exercise",
				Unique:  false,
				Columns: []*schema.Column{ShowEventsColumns[1]},
			},
			{
				Name:    "showevent_task_id",
				Unique:  false,
				Columns: []*schema.Column{ShowEventsColumns[2]},
			},
		},
	}
	// TasksColumns holds the columns for the "tasks" table.
	TasksColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "exercise", Type: field.TypeString},
		{Name: "payload", Type: field.TypeBytes},
		{Name: "source", Type: field.TypeEnum, Enums: []string{"manual", "generated"}, Default: "manual"},
		{Name: "grammar_topic", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// TasksTable holds the schema information for the "tasks" table.
	TasksTable = &schema.Table{
		Name:       "tasks",
		Columns:    TasksColumns,
		PrimaryKey: []*schema.Column{TasksColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "task_exercise",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[1]},
			},
			{
				Name:    "task_exercise_grammar_topic",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[1], TasksColumns[4]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		CheckEventsTable,
		LlmRequestEventsTable,
		ShowEventsTable,
		TasksTable,
	}
)

func init() {
}
