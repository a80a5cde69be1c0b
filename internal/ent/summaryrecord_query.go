// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/fachebot/chat-tldr-bot/internal/ent/predicate"
	"github.com/fachebot/chat-tldr-bot/internal/ent/summaryrecord"
)

// SummaryRecordQuery is the builder for querying SummaryRecord entities.
type SummaryRecordQuery struct {
	config
	ctx        *QueryContext
	order      []summaryrecord.OrderOption
	inters     []Interceptor
	predicates []predicate.SummaryRecord
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the SummaryRecordQuery builder.
func (srq *SummaryRecordQuery) Where(ps ...predicate.SummaryRecord) *SummaryRecordQuery {
	srq.predicates = append(srq.predicates, ps...)
	return srq
}

// Limit the number of records to be returned by this query.
func (srq *SummaryRecordQuery) Limit(limit int) *SummaryRecordQuery {
	srq.ctx.Limit = &limit
	return srq
}

// Offset to start from.
func (srq *SummaryRecordQuery) Offset(offset int) *SummaryRecordQuery {
	srq.ctx.Offset = &offset
	return srq
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (srq *SummaryRecordQuery) Unique(unique bool) *SummaryRecordQuery {
	srq.ctx.Unique = &unique
	return srq
}

// Order specifies how the records should be ordered.
func (srq *SummaryRecordQuery) Order(o ...summaryrecord.OrderOption) *SummaryRecordQuery {
	srq.order = append(srq.order, o...)
	return srq
}

// First returns the first SummaryRecord entity from the query.
// Returns a *NotFoundError when no SummaryRecord was found.
func (srq *SummaryRecordQuery) First(ctx context.Context) (*SummaryRecord, error) {
	nodes, err := srq.Limit(1).All(setContextOp(ctx, srq.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{summaryrecord.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (srq *SummaryRecordQuery) FirstX(ctx context.Context) *SummaryRecord {
	node, err := srq.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first SummaryRecord ID from the query.
// Returns a *NotFoundError when no SummaryRecord ID was found.
func (srq *SummaryRecordQuery) FirstID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = srq.Limit(1).IDs(setContextOp(ctx, srq.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{summaryrecord.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (srq *SummaryRecordQuery) FirstIDX(ctx context.Context) int {
	id, err := srq.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single SummaryRecord entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one SummaryRecord entity is found.
// Returns a *NotFoundError when no SummaryRecord entities are found.
func (srq *SummaryRecordQuery) Only(ctx context.Context) (*SummaryRecord, error) {
	nodes, err := srq.Limit(2).All(setContextOp(ctx, srq.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{summaryrecord.Label}
	default:
		return nil, &NotSingularError{summaryrecord.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (srq *SummaryRecordQuery) OnlyX(ctx context.Context) *SummaryRecord {
	node, err := srq.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only SummaryRecord ID in the query.
// Returns a *NotSingularError when more than one SummaryRecord ID is found.
// Returns a *NotFoundError when no entities are found.
func (srq *SummaryRecordQuery) OnlyID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = srq.Limit(2).IDs(setContextOp(ctx, srq.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{summaryrecord.Label}
	default:
		err = &NotSingularError{summaryrecord.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (srq *SummaryRecordQuery) OnlyIDX(ctx context.Context) int {
	id, err := srq.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of SummaryRecords.
func (srq *SummaryRecordQuery) All(ctx context.Context) ([]*SummaryRecord, error) {
	ctx = setContextOp(ctx, srq.ctx, ent.OpQueryAll)
	if err := srq.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*SummaryRecord, *SummaryRecordQuery]()
	return withInterceptors[[]*SummaryRecord](ctx, srq, qr, srq.inters)
}

// AllX is like All, but panics if an error occurs.
func (srq *SummaryRecordQuery) AllX(ctx context.Context) []*SummaryRecord {
	nodes, err := srq.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of SummaryRecord IDs.
func (srq *SummaryRecordQuery) IDs(ctx context.Context) (ids []int, err error) {
	if srq.ctx.Unique == nil && srq.path != nil {
		srq.Unique(true)
	}
	ctx = setContextOp(ctx, srq.ctx, ent.OpQueryIDs)
	if err = srq.Select(summaryrecord.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (srq *SummaryRecordQuery) IDsX(ctx context.Context) []int {
	ids, err := srq.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (srq *SummaryRecordQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, srq.ctx, ent.OpQueryCount)
	if err := srq.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, srq, querierCount[*SummaryRecordQuery](), srq.inters)
}

// CountX is like Count, but panics if an error occurs.
func (srq *SummaryRecordQuery) CountX(ctx context.Context) int {
	count, err := srq.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (srq *SummaryRecordQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, srq.ctx, ent.OpQueryExist)
	switch _, err := srq.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (srq *SummaryRecordQuery) ExistX(ctx context.Context) bool {
	exist, err := srq.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the SummaryRecordQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (srq *SummaryRecordQuery) Clone() *SummaryRecordQuery {
	if srq == nil {
		return nil
	}
	return &SummaryRecordQuery{
		config:     srq.config,
		ctx:        srq.ctx.Clone(),
		order:      append([]summaryrecord.OrderOption{}, srq.order...),
		inters:     append([]Interceptor{}, srq.inters...),
		predicates: append([]predicate.SummaryRecord{}, srq.predicates...),
		// clone intermediate query.
		sql:  srq.sql.Clone(),
		path: srq.path,
	}
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		CreateTime time.Time `json:"create_time,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.SummaryRecord.Query().
//		GroupBy(summaryrecord.FieldCreateTime).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (srq *SummaryRecordQuery) GroupBy(field string, fields ...string) *SummaryRecordGroupBy {
	srq.ctx.Fields = append([]string{field}, fields...)
	grbuild := &SummaryRecordGroupBy{build: srq}
	grbuild.flds = &srq.ctx.Fields
	grbuild.label = summaryrecord.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		CreateTime time.Time `json:"create_time,omitempty"`
//	}
//
//	client.SummaryRecord.Query().
//		Select(summaryrecord.FieldCreateTime).
//		Scan(ctx, &v)
func (srq *SummaryRecordQuery) Select(fields ...string) *SummaryRecordSelect {
	srq.ctx.Fields = append(srq.ctx.Fields, fields...)
	sbuild := &SummaryRecordSelect{SummaryRecordQuery: srq}
	sbuild.label = summaryrecord.Label
	sbuild.flds, sbuild.scan = &srq.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a SummaryRecordSelect configured with the given aggregations.
func (srq *SummaryRecordQuery) Aggregate(fns ...AggregateFunc) *SummaryRecordSelect {
	return srq.Select().Aggregate(fns...)
}

func (srq *SummaryRecordQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range srq.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, srq); err != nil {
				return err
			}
		}
	}
	for _, f := range srq.ctx.Fields {
		if !summaryrecord.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if srq.path != nil {
		prev, err := srq.path(ctx)
		if err != nil {
			return err
		}
		srq.sql = prev
	}
	return nil
}

func (srq *SummaryRecordQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*SummaryRecord, error) {
	var (
		nodes = []*SummaryRecord{}
		_spec = srq.querySpec()
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*SummaryRecord).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &SummaryRecord{config: srq.config}
		nodes = append(nodes, node)
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, srq.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	return nodes, nil
}

func (srq *SummaryRecordQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := srq.querySpec()
	_spec.Node.Columns = srq.ctx.Fields
	if len(srq.ctx.Fields) > 0 {
		_spec.Unique = srq.ctx.Unique != nil && *srq.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, srq.driver, _spec)
}

func (srq *SummaryRecordQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(summaryrecord.Table, summaryrecord.Columns, sqlgraph.NewFieldSpec(summaryrecord.FieldID, field.TypeInt))
	_spec.From = srq.sql
	if unique := srq.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if srq.path != nil {
		_spec.Unique = true
	}
	if fields := srq.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, summaryrecord.FieldID)
		for i := range fields {
			if fields[i] != summaryrecord.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
	}
	if ps := srq.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := srq.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := srq.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := srq.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (srq *SummaryRecordQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(srq.driver.Dialect())
	t1 := builder.Table(summaryrecord.Table)
	columns := srq.ctx.Fields
	if len(columns) == 0 {
		columns = summaryrecord.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if srq.sql != nil {
		selector = srq.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if srq.ctx.Unique != nil && *srq.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range srq.predicates {
		p(selector)
	}
	for _, p := range srq.order {
		p(selector)
	}
	if offset := srq.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := srq.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// SummaryRecordGroupBy is the group-by builder for SummaryRecord entities.
type SummaryRecordGroupBy struct {
	selector
	build *SummaryRecordQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (srgb *SummaryRecordGroupBy) Aggregate(fns ...AggregateFunc) *SummaryRecordGroupBy {
	srgb.fns = append(srgb.fns, fns...)
	return srgb
}

// Scan applies the selector query and scans the result into the given value.
func (srgb *SummaryRecordGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, srgb.build.ctx, ent.OpQueryGroupBy)
	if err := srgb.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*SummaryRecordQuery, *SummaryRecordGroupBy](ctx, srgb.build, srgb, srgb.build.inters, v)
}

func (srgb *SummaryRecordGroupBy) sqlScan(ctx context.Context, root *SummaryRecordQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(srgb.fns))
	for _, fn := range srgb.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*srgb.flds)+len(srgb.fns))
		for _, f := range *srgb.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*srgb.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := srgb.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// SummaryRecordSelect is the builder for selecting fields of SummaryRecord entities.
type SummaryRecordSelect struct {
	*SummaryRecordQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (srs *SummaryRecordSelect) Aggregate(fns ...AggregateFunc) *SummaryRecordSelect {
	srs.fns = append(srs.fns, fns...)
	return srs
}

// Scan applies the selector query and scans the result into the given value.
func (srs *SummaryRecordSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, srs.ctx, ent.OpQuerySelect)
	if err := srs.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*SummaryRecordQuery, *SummaryRecordSelect](ctx, srs.SummaryRecordQuery, srs, srs.inters, v)
}

func (srs *SummaryRecordSelect) sqlScan(ctx context.Context, root *SummaryRecordQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(srs.fns))
	for _, fn := range srs.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*srs.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := srs.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
