// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/studyplan/ent/completionevent"
	"github.com/abhisek/studyplan/ent/predicate"
)

// CompletionEventUpdate is the builder for updating CompletionEvent entities.
type CompletionEventUpdate struct {
	config
	hooks    []Hook
	mutation *CompletionEventMutation
}

// Where appends a list predicates to the CompletionEventUpdate builder.
func (_u *CompletionEventUpdate) Where(ps ...predicate.CompletionEvent) *CompletionEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetBlockID sets the "block_id" field.
func (_u *CompletionEventUpdate) SetBlockID(v string) *CompletionEventUpdate {
	_u.mutation.SetBlockID(v)
	return _u
}

// SetNillableBlockID sets the "block_id" field if the given value is not nil.
func (_u *CompletionEventUpdate) SetNillableBlockID(v *string) *CompletionEventUpdate {
	if v != nil {
		_u.SetBlockID(*v)
	}
	return _u
}

// SetSubjectID sets the "subject_id" field.
func (_u *CompletionEventUpdate) SetSubjectID(v string) *CompletionEventUpdate {
	_u.mutation.SetSubjectID(v)
	return _u
}

// SetNillableSubjectID sets the "subject_id" field if the given value is not nil.
func (_u *CompletionEventUpdate) SetNillableSubjectID(v *string) *CompletionEventUpdate {
	if v != nil {
		_u.SetSubjectID(*v)
	}
	return _u
}

// SetDurationMinutes sets the "duration_minutes" field.
func (_u *CompletionEventUpdate) SetDurationMinutes(v int) *CompletionEventUpdate {
	_u.mutation.ResetDurationMinutes()
	_u.mutation.SetDurationMinutes(v)
	return _u
}

// SetNillableDurationMinutes sets the "duration_minutes" field if the given value is not nil.
func (_u *CompletionEventUpdate) SetNillableDurationMinutes(v *int) *CompletionEventUpdate {
	if v != nil {
		_u.SetDurationMinutes(*v)
	}
	return _u
}

// AddDurationMinutes adds value to the "duration_minutes" field.
func (_u *CompletionEventUpdate) AddDurationMinutes(v int) *CompletionEventUpdate {
	_u.mutation.AddDurationMinutes(v)
	return _u
}

// SetLogDate sets the "log_date" field.
func (_u *CompletionEventUpdate) SetLogDate(v string) *CompletionEventUpdate {
	_u.mutation.SetLogDate(v)
	return _u
}

// SetNillableLogDate sets the "log_date" field if the given value is not nil.
func (_u *CompletionEventUpdate) SetNillableLogDate(v *string) *CompletionEventUpdate {
	if v != nil {
		_u.SetLogDate(*v)
	}
	return _u
}

// Mutation returns the CompletionEventMutation object of the builder.
func (_u *CompletionEventUpdate) Mutation() *CompletionEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CompletionEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CompletionEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CompletionEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CompletionEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CompletionEventUpdate) check() error {
	if v, ok := _u.mutation.BlockID(); ok {
		if err := completionevent.BlockIDValidator(v); err != nil {
			return &ValidationError{Name: "block_id", err: fmt.Errorf(`ent: validator failed for field "CompletionEvent.block_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SubjectID(); ok {
		if err := completionevent.SubjectIDValidator(v); err != nil {
			return &ValidationError{Name: "subject_id", err: fmt.Errorf(`ent: validator failed for field "CompletionEvent.subject_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LogDate(); ok {
		if err := completionevent.LogDateValidator(v); err != nil {
			return &ValidationError{Name: "log_date", err: fmt.Errorf(`ent: validator failed for field "CompletionEvent.log_date": %w`, err)}
		}
	}
	return nil
}

func (_u *CompletionEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(completionevent.Table, completionevent.Columns, sqlgraph.NewFieldSpec(completionevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.BlockID(); ok {
		_spec.SetField(completionevent.FieldBlockID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SubjectID(); ok {
		_spec.SetField(completionevent.FieldSubjectID, field.TypeString, value)
	}
	if value, ok := _u.mutation.DurationMinutes(); ok {
		_spec.SetField(completionevent.FieldDurationMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationMinutes(); ok {
		_spec.AddField(completionevent.FieldDurationMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LogDate(); ok {
		_spec.SetField(completionevent.FieldLogDate, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{completionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CompletionEventUpdateOne is the builder for updating a single CompletionEvent entity.
type CompletionEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CompletionEventMutation
}

// SetBlockID sets the "block_id" field.
func (_u *CompletionEventUpdateOne) SetBlockID(v string) *CompletionEventUpdateOne {
	_u.mutation.SetBlockID(v)
	return _u
}

// SetNillableBlockID sets the "block_id" field if the given value is not nil.
func (_u *CompletionEventUpdateOne) SetNillableBlockID(v *string) *CompletionEventUpdateOne {
	if v != nil {
		_u.SetBlockID(*v)
	}
	return _u
}

// SetSubjectID sets the "subject_id" field.
func (_u *CompletionEventUpdateOne) SetSubjectID(v string) *CompletionEventUpdateOne {
	_u.mutation.SetSubjectID(v)
	return _u
}

// SetNillableSubjectID sets the "subject_id" field if the given value is not nil.
func (_u *CompletionEventUpdateOne) SetNillableSubjectID(v *string) *CompletionEventUpdateOne {
	if v != nil {
		_u.SetSubjectID(*v)
	}
	return _u
}

// SetDurationMinutes sets the "duration_minutes" field.
func (_u *CompletionEventUpdateOne) SetDurationMinutes(v int) *CompletionEventUpdateOne {
	_u.mutation.ResetDurationMinutes()
	_u.mutation.SetDurationMinutes(v)
	return _u
}

// SetNillableDurationMinutes sets the "duration_minutes" field if the given value is not nil.
func (_u *CompletionEventUpdateOne) SetNillableDurationMinutes(v *int) *CompletionEventUpdateOne {
	if v != nil {
		_u.SetDurationMinutes(*v)
	}
	return _u
}

// AddDurationMinutes adds value to the "duration_minutes" field.
func (_u *CompletionEventUpdateOne) AddDurationMinutes(v int) *CompletionEventUpdateOne {
	_u.mutation.AddDurationMinutes(v)
	return _u
}

// SetLogDate sets the "log_date" field.
func (_u *CompletionEventUpdateOne) SetLogDate(v string) *CompletionEventUpdateOne {
	_u.mutation.SetLogDate(v)
	return _u
}

// SetNillableLogDate sets the "log_date" field if the given value is not nil.
func (_u *CompletionEventUpdateOne) SetNillableLogDate(v *string) *CompletionEventUpdateOne {
	if v != nil {
		_u.SetLogDate(*v)
	}
	return _u
}

// Mutation returns the CompletionEventMutation object of the builder.
func (_u *CompletionEventUpdateOne) Mutation() *CompletionEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the CompletionEventUpdate builder.
func (_u *CompletionEventUpdateOne) Where(ps ...predicate.CompletionEvent) *CompletionEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CompletionEventUpdateOne) Select(field string, fields ...string) *CompletionEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CompletionEvent entity.
func (_u *CompletionEventUpdateOne) Save(ctx context.Context) (*CompletionEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CompletionEventUpdateOne) SaveX(ctx context.Context) *CompletionEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CompletionEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CompletionEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CompletionEventUpdateOne) check() error {
	if v, ok := _u.mutation.BlockID(); ok {
		if err := completionevent.BlockIDValidator(v); err != nil {
			return &ValidationError{Name: "block_id", err: fmt.Errorf(`ent: validator failed for field "CompletionEvent.block_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SubjectID(); ok {
		if err := completionevent.SubjectIDValidator(v); err != nil {
			return &ValidationError{Name: "subject_id", err: fmt.Errorf(`ent: validator failed for field "CompletionEvent.subject_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LogDate(); ok {
		if err := completionevent.LogDateValidator(v); err != nil {
			return &ValidationError{Name: "log_date", err: fmt.Errorf(`ent: validator failed for field "CompletionEvent.log_date": %w`, err)}
		}
	}
	return nil
}

func (_u *CompletionEventUpdateOne) sqlSave(ctx context.Context) (_node *CompletionEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(completionevent.Table, completionevent.Columns, sqlgraph.NewFieldSpec(completionevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CompletionEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, completionevent.FieldID)
		for _, f := range fields {
			if !completionevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != completionevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.BlockID(); ok {
		_spec.SetField(completionevent.FieldBlockID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SubjectID(); ok {
		_spec.SetField(completionevent.FieldSubjectID, field.TypeString, value)
	}
	if value, ok := _u.mutation.DurationMinutes(); ok {
		_spec.SetField(completionevent.FieldDurationMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationMinutes(); ok {
		_spec.AddField(completionevent.FieldDurationMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LogDate(); ok {
		_spec.SetField(completionevent.FieldLogDate, field.TypeString, value)
	}
	_node = &CompletionEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{completionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
