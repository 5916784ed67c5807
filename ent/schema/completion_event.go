package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// CompletionEvent records one completed study block. The progress
// aggregator derives streaks and completion statistics from these.
type CompletionEvent struct {
	ent.Schema
}

func (CompletionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (CompletionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("block_id").
			NotEmpty().
			Comment("ID of the completed study block"),
		field.String("subject_id").
			NotEmpty().
			Comment("Subject the block belongs to"),
		field.Int("duration_minutes").
			Default(0).
			Comment("Minutes actually studied"),
		field.String("log_date").
			NotEmpty().
			Comment("Calendar date of the completion, YYYY-MM-DD"),
	}
}

func (CompletionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("log_date"),
		index.Fields("subject_id"),
	}
}
