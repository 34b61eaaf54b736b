// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/finaid-tools/docverifier/gen/ent/migrate"
	"github.com/google/uuid"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/finaid-tools/docverifier/gen/ent/document"
	"github.com/finaid-tools/docverifier/gen/ent/extractionresult"
	"github.com/finaid-tools/docverifier/gen/ent/verificationrecord"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Document is the client for interacting with the Document builders.
	Document *DocumentClient
	// ExtractionResult is the client for interacting with the ExtractionResult builders.
	ExtractionResult *ExtractionResultClient
	// VerificationRecord is the client for interacting with the VerificationRecord builders.
	VerificationRecord *VerificationRecordClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Document = NewDocumentClient(c.config)
	c.ExtractionResult = NewExtractionResultClient(c.config)
	c.VerificationRecord = NewVerificationRecordClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:                ctx,
		config:             cfg,
		Document:           NewDocumentClient(cfg),
		ExtractionResult:   NewExtractionResultClient(cfg),
		VerificationRecord: NewVerificationRecordClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:                ctx,
		config:             cfg,
		Document:           NewDocumentClient(cfg),
		ExtractionResult:   NewExtractionResultClient(cfg),
		VerificationRecord: NewVerificationRecordClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Document.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	c.Document.Use(hooks...)
	c.ExtractionResult.Use(hooks...)
	c.VerificationRecord.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.Document.Intercept(interceptors...)
	c.ExtractionResult.Intercept(interceptors...)
	c.VerificationRecord.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *DocumentMutation:
		return c.Document.mutate(ctx, m)
	case *ExtractionResultMutation:
		return c.ExtractionResult.mutate(ctx, m)
	case *VerificationRecordMutation:
		return c.VerificationRecord.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// DocumentClient is a client for the Document schema.
type DocumentClient struct {
	config
}

// NewDocumentClient returns a client for the Document from the given config.
func NewDocumentClient(c config) *DocumentClient {
	return &DocumentClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `document.Hooks(f(g(h())))`.
func (c *DocumentClient) Use(hooks ...Hook) {
	c.hooks.Document = append(c.hooks.Document, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `document.Intercept(f(g(h())))`.
func (c *DocumentClient) Intercept(interceptors ...Interceptor) {
	c.inters.Document = append(c.inters.Document, interceptors...)
}

// Create returns a builder for creating a Document entity.
func (c *DocumentClient) Create() *DocumentCreate {
	mutation := newDocumentMutation(c.config, OpCreate)
	return &DocumentCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Document entities.
func (c *DocumentClient) CreateBulk(builders ...*DocumentCreate) *DocumentCreateBulk {
	return &DocumentCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DocumentClient) MapCreateBulk(slice any, setFunc func(*DocumentCreate, int)) *DocumentCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DocumentCreateBulk{err: fmt.Errorf("calling to DocumentClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DocumentCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DocumentCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Document.
func (c *DocumentClient) Update() *DocumentUpdate {
	mutation := newDocumentMutation(c.config, OpUpdate)
	return &DocumentUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DocumentClient) UpdateOne(_m *Document) *DocumentUpdateOne {
	mutation := newDocumentMutation(c.config, OpUpdateOne, withDocument(_m))
	return &DocumentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DocumentClient) UpdateOneID(id uuid.UUID) *DocumentUpdateOne {
	mutation := newDocumentMutation(c.config, OpUpdateOne, withDocumentID(id))
	return &DocumentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Document.
func (c *DocumentClient) Delete() *DocumentDelete {
	mutation := newDocumentMutation(c.config, OpDelete)
	return &DocumentDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DocumentClient) DeleteOne(_m *Document) *DocumentDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DocumentClient) DeleteOneID(id uuid.UUID) *DocumentDeleteOne {
	builder := c.Delete().Where(document.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DocumentDeleteOne{builder}
}

// Query returns a query builder for Document.
func (c *DocumentClient) Query() *DocumentQuery {
	return &DocumentQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDocument},
		inters: c.Interceptors(),
	}
}

// Get returns a Document entity by its id.
func (c *DocumentClient) Get(ctx context.Context, id uuid.UUID) (*Document, error) {
	return c.Query().Where(document.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DocumentClient) GetX(ctx context.Context, id uuid.UUID) *Document {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryResults queries the results edge of a Document.
func (c *DocumentClient) QueryResults(_m *Document) *ExtractionResultQuery {
	query := (&ExtractionResultClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(document.Table, document.FieldID, id),
			sqlgraph.To(extractionresult.Table, extractionresult.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, document.ResultsTable, document.ResultsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryVerifications queries the verifications edge of a Document.
func (c *DocumentClient) QueryVerifications(_m *Document) *VerificationRecordQuery {
	query := (&VerificationRecordClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(document.Table, document.FieldID, id),
			sqlgraph.To(verificationrecord.Table, verificationrecord.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, document.VerificationsTable, document.VerificationsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *DocumentClient) Hooks() []Hook {
	return c.hooks.Document
}

// Interceptors returns the client interceptors.
func (c *DocumentClient) Interceptors() []Interceptor {
	return c.inters.Document
}

func (c *DocumentClient) mutate(ctx context.Context, m *DocumentMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DocumentCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DocumentUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DocumentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DocumentDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Document mutation op: %q", m.Op())
	}
}

// ExtractionResultClient is a client for the ExtractionResult schema.
type ExtractionResultClient struct {
	config
}

// NewExtractionResultClient returns a client for the ExtractionResult from the given config.
func NewExtractionResultClient(c config) *ExtractionResultClient {
	return &ExtractionResultClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `extractionresult.Hooks(f(g(h())))`.
func (c *ExtractionResultClient) Use(hooks ...Hook) {
	c.hooks.ExtractionResult = append(c.hooks.ExtractionResult, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `extractionresult.Intercept(f(g(h())))`.
func (c *ExtractionResultClient) Intercept(interceptors ...Interceptor) {
	c.inters.ExtractionResult = append(c.inters.ExtractionResult, interceptors...)
}

// Create returns a builder for creating a ExtractionResult entity.
func (c *ExtractionResultClient) Create() *ExtractionResultCreate {
	mutation := newExtractionResultMutation(c.config, OpCreate)
	return &ExtractionResultCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ExtractionResult entities.
func (c *ExtractionResultClient) CreateBulk(builders ...*ExtractionResultCreate) *ExtractionResultCreateBulk {
	return &ExtractionResultCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ExtractionResultClient) MapCreateBulk(slice any, setFunc func(*ExtractionResultCreate, int)) *ExtractionResultCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ExtractionResultCreateBulk{err: fmt.Errorf("calling to ExtractionResultClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ExtractionResultCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ExtractionResultCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ExtractionResult.
func (c *ExtractionResultClient) Update() *ExtractionResultUpdate {
	mutation := newExtractionResultMutation(c.config, OpUpdate)
	return &ExtractionResultUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ExtractionResultClient) UpdateOne(_m *ExtractionResult) *ExtractionResultUpdateOne {
	mutation := newExtractionResultMutation(c.config, OpUpdateOne, withExtractionResult(_m))
	return &ExtractionResultUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ExtractionResultClient) UpdateOneID(id uuid.UUID) *ExtractionResultUpdateOne {
	mutation := newExtractionResultMutation(c.config, OpUpdateOne, withExtractionResultID(id))
	return &ExtractionResultUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ExtractionResult.
func (c *ExtractionResultClient) Delete() *ExtractionResultDelete {
	mutation := newExtractionResultMutation(c.config, OpDelete)
	return &ExtractionResultDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ExtractionResultClient) DeleteOne(_m *ExtractionResult) *ExtractionResultDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ExtractionResultClient) DeleteOneID(id uuid.UUID) *ExtractionResultDeleteOne {
	builder := c.Delete().Where(extractionresult.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ExtractionResultDeleteOne{builder}
}

// Query returns a query builder for ExtractionResult.
func (c *ExtractionResultClient) Query() *ExtractionResultQuery {
	return &ExtractionResultQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeExtractionResult},
		inters: c.Interceptors(),
	}
}

// Get returns a ExtractionResult entity by its id.
func (c *ExtractionResultClient) Get(ctx context.Context, id uuid.UUID) (*ExtractionResult, error) {
	return c.Query().Where(extractionresult.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ExtractionResultClient) GetX(ctx context.Context, id uuid.UUID) *ExtractionResult {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryDocument queries the document edge of a ExtractionResult.
func (c *ExtractionResultClient) QueryDocument(_m *ExtractionResult) *DocumentQuery {
	query := (&DocumentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(extractionresult.Table, extractionresult.FieldID, id),
			sqlgraph.To(document.Table, document.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, extractionresult.DocumentTable, extractionresult.DocumentColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ExtractionResultClient) Hooks() []Hook {
	return c.hooks.ExtractionResult
}

// Interceptors returns the client interceptors.
func (c *ExtractionResultClient) Interceptors() []Interceptor {
	return c.inters.ExtractionResult
}

func (c *ExtractionResultClient) mutate(ctx context.Context, m *ExtractionResultMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ExtractionResultCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ExtractionResultUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ExtractionResultUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ExtractionResultDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ExtractionResult mutation op: %q", m.Op())
	}
}

// VerificationRecordClient is a client for the VerificationRecord schema.
type VerificationRecordClient struct {
	config
}

// NewVerificationRecordClient returns a client for the VerificationRecord from the given config.
func NewVerificationRecordClient(c config) *VerificationRecordClient {
	return &VerificationRecordClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `verificationrecord.Hooks(f(g(h())))`.
func (c *VerificationRecordClient) Use(hooks ...Hook) {
	c.hooks.VerificationRecord = append(c.hooks.VerificationRecord, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `verificationrecord.Intercept(f(g(h())))`.
func (c *VerificationRecordClient) Intercept(interceptors ...Interceptor) {
	c.inters.VerificationRecord = append(c.inters.VerificationRecord, interceptors...)
}

// Create returns a builder for creating a VerificationRecord entity.
func (c *VerificationRecordClient) Create() *VerificationRecordCreate {
	mutation := newVerificationRecordMutation(c.config, OpCreate)
	return &VerificationRecordCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of VerificationRecord entities.
func (c *VerificationRecordClient) CreateBulk(builders ...*VerificationRecordCreate) *VerificationRecordCreateBulk {
	return &VerificationRecordCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *VerificationRecordClient) MapCreateBulk(slice any, setFunc func(*VerificationRecordCreate, int)) *VerificationRecordCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &VerificationRecordCreateBulk{err: fmt.Errorf("calling to VerificationRecordClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*VerificationRecordCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &VerificationRecordCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for VerificationRecord.
func (c *VerificationRecordClient) Update() *VerificationRecordUpdate {
	mutation := newVerificationRecordMutation(c.config, OpUpdate)
	return &VerificationRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *VerificationRecordClient) UpdateOne(_m *VerificationRecord) *VerificationRecordUpdateOne {
	mutation := newVerificationRecordMutation(c.config, OpUpdateOne, withVerificationRecord(_m))
	return &VerificationRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *VerificationRecordClient) UpdateOneID(id uuid.UUID) *VerificationRecordUpdateOne {
	mutation := newVerificationRecordMutation(c.config, OpUpdateOne, withVerificationRecordID(id))
	return &VerificationRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for VerificationRecord.
func (c *VerificationRecordClient) Delete() *VerificationRecordDelete {
	mutation := newVerificationRecordMutation(c.config, OpDelete)
	return &VerificationRecordDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *VerificationRecordClient) DeleteOne(_m *VerificationRecord) *VerificationRecordDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *VerificationRecordClient) DeleteOneID(id uuid.UUID) *VerificationRecordDeleteOne {
	builder := c.Delete().Where(verificationrecord.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &VerificationRecordDeleteOne{builder}
}

// Query returns a query builder for VerificationRecord.
func (c *VerificationRecordClient) Query() *VerificationRecordQuery {
	return &VerificationRecordQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeVerificationRecord},
		inters: c.Interceptors(),
	}
}

// Get returns a VerificationRecord entity by its id.
func (c *VerificationRecordClient) Get(ctx context.Context, id uuid.UUID) (*VerificationRecord, error) {
	return c.Query().Where(verificationrecord.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *VerificationRecordClient) GetX(ctx context.Context, id uuid.UUID) *VerificationRecord {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryDocument queries the document edge of a VerificationRecord.
func (c *VerificationRecordClient) QueryDocument(_m *VerificationRecord) *DocumentQuery {
	query := (&DocumentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(verificationrecord.Table, verificationrecord.FieldID, id),
			sqlgraph.To(document.Table, document.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, verificationrecord.DocumentTable, verificationrecord.DocumentColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *VerificationRecordClient) Hooks() []Hook {
	return c.hooks.VerificationRecord
}

// Interceptors returns the client interceptors.
func (c *VerificationRecordClient) Interceptors() []Interceptor {
	return c.inters.VerificationRecord
}

func (c *VerificationRecordClient) mutate(ctx context.Context, m *VerificationRecordMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&VerificationRecordCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&VerificationRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&VerificationRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&VerificationRecordDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown VerificationRecord mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Document, ExtractionResult, VerificationRecord []ent.Hook
	}
	inters struct {
		Document, ExtractionResult, VerificationRecord []ent.Interceptor
	}
)
