package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Record is a string-keyed JSON blob: student profile, study plan,
// progress data, preferences, theme. Each key is independently
// loadable/savable/removable with last-write-wins semantics.
type Record struct {
	ent.Schema
}

func (Record) Fields() []ent.Field {
	return []ent.Field{
		field.String("key").
			Unique().
			NotEmpty().
			Comment("Storage key, e.g. study_plan"),
		field.JSON("data", map[string]any{}).
			Comment("The stored value as JSON"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now).
			Comment("Last write time"),
	}
}

func (Record) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("key"),
	}
}
