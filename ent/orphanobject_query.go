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
	"github.com/behark/autoanikw-sub000/ent/orphanobject"
	"github.com/behark/autoanikw-sub000/ent/predicate"
)

// OrphanObjectQuery is the builder for querying OrphanObject entities.
type OrphanObjectQuery struct {
	config
	ctx        *QueryContext
	order      []orphanobject.OrderOption
	inters     []Interceptor
	predicates []predicate.OrphanObject
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the OrphanObjectQuery builder.
func (ooq *OrphanObjectQuery) Where(ps ...predicate.OrphanObject) *OrphanObjectQuery {
	ooq.predicates = append(ooq.predicates, ps...)
	return ooq
}

// Limit the number of records to be returned by this query.
func (ooq *OrphanObjectQuery) Limit(limit int) *OrphanObjectQuery {
	ooq.ctx.Limit = &limit
	return ooq
}

// Offset to start from.
func (ooq *OrphanObjectQuery) Offset(offset int) *OrphanObjectQuery {
	ooq.ctx.Offset = &offset
	return ooq
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (ooq *OrphanObjectQuery) Unique(unique bool) *OrphanObjectQuery {
	ooq.ctx.Unique = &unique
	return ooq
}

// Order specifies how the records should be ordered.
func (ooq *OrphanObjectQuery) Order(o ...orphanobject.OrderOption) *OrphanObjectQuery {
	ooq.order = append(ooq.order, o...)
	return ooq
}

// First returns the first OrphanObject entity from the query.
// Returns a *NotFoundError when no OrphanObject was found.
func (ooq *OrphanObjectQuery) First(ctx context.Context) (*OrphanObject, error) {
	nodes, err := ooq.Limit(1).All(setContextOp(ctx, ooq.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{orphanobject.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (ooq *OrphanObjectQuery) FirstX(ctx context.Context) *OrphanObject {
	node, err := ooq.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first OrphanObject ID from the query.
// Returns a *NotFoundError when no OrphanObject ID was found.
func (ooq *OrphanObjectQuery) FirstID(ctx context.Context) (id uint, err error) {
	var ids []uint
	if ids, err = ooq.Limit(1).IDs(setContextOp(ctx, ooq.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{orphanobject.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (ooq *OrphanObjectQuery) FirstIDX(ctx context.Context) uint {
	id, err := ooq.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single OrphanObject entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one OrphanObject entity is found.
// Returns a *NotFoundError when no OrphanObject entities are found.
func (ooq *OrphanObjectQuery) Only(ctx context.Context) (*OrphanObject, error) {
	nodes, err := ooq.Limit(2).All(setContextOp(ctx, ooq.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{orphanobject.Label}
	default:
		return nil, &NotSingularError{orphanobject.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (ooq *OrphanObjectQuery) OnlyX(ctx context.Context) *OrphanObject {
	node, err := ooq.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only OrphanObject ID in the query.
// Returns a *NotSingularError when more than one OrphanObject ID is found.
// Returns a *NotFoundError when no entities are found.
func (ooq *OrphanObjectQuery) OnlyID(ctx context.Context) (id uint, err error) {
	var ids []uint
	if ids, err = ooq.Limit(2).IDs(setContextOp(ctx, ooq.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{orphanobject.Label}
	default:
		err = &NotSingularError{orphanobject.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (ooq *OrphanObjectQuery) OnlyIDX(ctx context.Context) uint {
	id, err := ooq.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of OrphanObjects.
func (ooq *OrphanObjectQuery) All(ctx context.Context) ([]*OrphanObject, error) {
	ctx = setContextOp(ctx, ooq.ctx, ent.OpQueryAll)
	if err := ooq.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*OrphanObject, *OrphanObjectQuery]()
	return withInterceptors[[]*OrphanObject](ctx, ooq, qr, ooq.inters)
}

// AllX is like All, but panics if an error occurs.
func (ooq *OrphanObjectQuery) AllX(ctx context.Context) []*OrphanObject {
	nodes, err := ooq.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of OrphanObject IDs.
func (ooq *OrphanObjectQuery) IDs(ctx context.Context) (ids []uint, err error) {
	if ooq.ctx.Unique == nil && ooq.path != nil {
		ooq.Unique(true)
	}
	ctx = setContextOp(ctx, ooq.ctx, ent.OpQueryIDs)
	if err = ooq.Select(orphanobject.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (ooq *OrphanObjectQuery) IDsX(ctx context.Context) []uint {
	ids, err := ooq.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (ooq *OrphanObjectQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, ooq.ctx, ent.OpQueryCount)
	if err := ooq.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, ooq, querierCount[*OrphanObjectQuery](), ooq.inters)
}

// CountX is like Count, but panics if an error occurs.
func (ooq *OrphanObjectQuery) CountX(ctx context.Context) int {
	count, err := ooq.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (ooq *OrphanObjectQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, ooq.ctx, ent.OpQueryExist)
	switch _, err := ooq.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (ooq *OrphanObjectQuery) ExistX(ctx context.Context) bool {
	exist, err := ooq.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the OrphanObjectQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (ooq *OrphanObjectQuery) Clone() *OrphanObjectQuery {
	if ooq == nil {
		return nil
	}
	return &OrphanObjectQuery{
		config:     ooq.config,
		ctx:        ooq.ctx.Clone(),
		order:      append([]orphanobject.OrderOption{}, ooq.order...),
		inters:     append([]Interceptor{}, ooq.inters...),
		predicates: append([]predicate.OrphanObject{}, ooq.predicates...),
		// clone intermediate query.
		sql:  ooq.sql.Clone(),
		path: ooq.path,
	}
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		CreatedAt time.Time `json:"created_at,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.OrphanObject.Query().
//		GroupBy(orphanobject.FieldCreatedAt).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (ooq *OrphanObjectQuery) GroupBy(field string, fields ...string) *OrphanObjectGroupBy {
	ooq.ctx.Fields = append([]string{field}, fields...)
	grbuild := &OrphanObjectGroupBy{build: ooq}
	grbuild.flds = &ooq.ctx.Fields
	grbuild.label = orphanobject.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		CreatedAt time.Time `json:"created_at,omitempty"`
//	}
//
//	client.OrphanObject.Query().
//		Select(orphanobject.FieldCreatedAt).
//		Scan(ctx, &v)
func (ooq *OrphanObjectQuery) Select(fields ...string) *OrphanObjectSelect {
	ooq.ctx.Fields = append(ooq.ctx.Fields, fields...)
	sbuild := &OrphanObjectSelect{OrphanObjectQuery: ooq}
	sbuild.label = orphanobject.Label
	sbuild.flds, sbuild.scan = &ooq.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a OrphanObjectSelect configured with the given aggregations.
func (ooq *OrphanObjectQuery) Aggregate(fns ...AggregateFunc) *OrphanObjectSelect {
	return ooq.Select().Aggregate(fns...)
}

func (ooq *OrphanObjectQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range ooq.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, ooq); err != nil {
				return err
			}
		}
	}
	for _, f := range ooq.ctx.Fields {
		if !orphanobject.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if ooq.path != nil {
		prev, err := ooq.path(ctx)
		if err != nil {
			return err
		}
		ooq.sql = prev
	}
	return nil
}

func (ooq *OrphanObjectQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*OrphanObject, error) {
	var (
		nodes = []*OrphanObject{}
		_spec = ooq.querySpec()
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*OrphanObject).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &OrphanObject{config: ooq.config}
		nodes = append(nodes, node)
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, ooq.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	return nodes, nil
}

func (ooq *OrphanObjectQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := ooq.querySpec()
	_spec.Node.Columns = ooq.ctx.Fields
	if len(ooq.ctx.Fields) > 0 {
		_spec.Unique = ooq.ctx.Unique != nil && *ooq.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, ooq.driver, _spec)
}

func (ooq *OrphanObjectQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(orphanobject.Table, orphanobject.Columns, sqlgraph.NewFieldSpec(orphanobject.FieldID, field.TypeUint))
	_spec.From = ooq.sql
	if unique := ooq.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if ooq.path != nil {
		_spec.Unique = true
	}
	if fields := ooq.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, orphanobject.FieldID)
		for i := range fields {
			if fields[i] != orphanobject.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
	}
	if ps := ooq.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := ooq.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := ooq.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := ooq.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (ooq *OrphanObjectQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(ooq.driver.Dialect())
	t1 := builder.Table(orphanobject.Table)
	columns := ooq.ctx.Fields
	if len(columns) == 0 {
		columns = orphanobject.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if ooq.sql != nil {
		selector = ooq.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if ooq.ctx.Unique != nil && *ooq.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range ooq.predicates {
		p(selector)
	}
	for _, p := range ooq.order {
		p(selector)
	}
	if offset := ooq.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := ooq.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// OrphanObjectGroupBy is the group-by builder for OrphanObject entities.
type OrphanObjectGroupBy struct {
	selector
	build *OrphanObjectQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (oogb *OrphanObjectGroupBy) Aggregate(fns ...AggregateFunc) *OrphanObjectGroupBy {
	oogb.fns = append(oogb.fns, fns...)
	return oogb
}

// Scan applies the selector query and scans the result into the given value.
func (oogb *OrphanObjectGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, oogb.build.ctx, ent.OpQueryGroupBy)
	if err := oogb.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*OrphanObjectQuery, *OrphanObjectGroupBy](ctx, oogb.build, oogb, oogb.build.inters, v)
}

func (oogb *OrphanObjectGroupBy) sqlScan(ctx context.Context, root *OrphanObjectQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(oogb.fns))
	for _, fn := range oogb.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*oogb.flds)+len(oogb.fns))
		for _, f := range *oogb.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*oogb.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := oogb.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// OrphanObjectSelect is the builder for selecting fields of OrphanObject entities.
type OrphanObjectSelect struct {
	*OrphanObjectQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (oos *OrphanObjectSelect) Aggregate(fns ...AggregateFunc) *OrphanObjectSelect {
	oos.fns = append(oos.fns, fns...)
	return oos
}

// Scan applies the selector query and scans the result into the given value.
func (oos *OrphanObjectSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, oos.ctx, ent.OpQuerySelect)
	if err := oos.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*OrphanObjectQuery, *OrphanObjectSelect](ctx, oos.OrphanObjectQuery, oos, oos.inters, v)
}

func (oos *OrphanObjectSelect) sqlScan(ctx context.Context, root *OrphanObjectQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(oos.fns))
	for _, fn := range oos.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*oos.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := oos.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
