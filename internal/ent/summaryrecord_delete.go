// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/fachebot/chat-tldr-bot/internal/ent/predicate"
	"github.com/fachebot/chat-tldr-bot/internal/ent/summaryrecord"
)

// SummaryRecordDelete is the builder for deleting a SummaryRecord entity.
type SummaryRecordDelete struct {
	config
	hooks    []Hook
	mutation *SummaryRecordMutation
}

// Where appends a list predicates to the SummaryRecordDelete builder.
func (srd *SummaryRecordDelete) Where(ps ...predicate.SummaryRecord) *SummaryRecordDelete {
	srd.mutation.Where(ps...)
	return srd
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (srd *SummaryRecordDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, srd.sqlExec, srd.mutation, srd.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (srd *SummaryRecordDelete) ExecX(ctx context.Context) int {
	n, err := srd.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (srd *SummaryRecordDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(summaryrecord.Table, sqlgraph.NewFieldSpec(summaryrecord.FieldID, field.TypeInt))
	if ps := srd.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, srd.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	srd.mutation.done = true
	return affected, err
}

// SummaryRecordDeleteOne is the builder for deleting a single SummaryRecord entity.
type SummaryRecordDeleteOne struct {
	srd *SummaryRecordDelete
}

// Where appends a list predicates to the SummaryRecordDelete builder.
func (srdo *SummaryRecordDeleteOne) Where(ps ...predicate.SummaryRecord) *SummaryRecordDeleteOne {
	srdo.srd.mutation.Where(ps...)
	return srdo
}

// Exec executes the deletion query.
func (srdo *SummaryRecordDeleteOne) Exec(ctx context.Context) error {
	n, err := srdo.srd.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{summaryrecord.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (srdo *SummaryRecordDeleteOne) ExecX(ctx context.Context) {
	if err := srdo.Exec(ctx); err != nil {
		panic(err)
	}
}
