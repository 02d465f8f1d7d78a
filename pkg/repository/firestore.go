package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/orgchart/pkg/domain/interfaces"
	"github.com/secmon-lab/orgchart/pkg/domain/model"
	"github.com/secmon-lab/orgchart/pkg/domain/types"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	// DefaultCollection holds employee documents unless WithCollection is given
	DefaultCollection = "employees"

	// Field names
	fieldManagerID = "manager_id"
	fieldSeq       = "seq"
)

// employeeDoc is the stored form of an employee. Seq preserves insertion
// order since document IDs are caller supplied.
type employeeDoc struct {
	model.Employee
	Seq int64 `firestore:"seq"`
}

// Firestore implements Repository interface with Firestore
type Firestore struct {
	client     *firestore.Client
	collection string
}

// FirestoreOption configures a Firestore repository
type FirestoreOption func(*Firestore)

// WithCollection stores employees in the named collection, so several
// charts can share one database
func WithCollection(name string) FirestoreOption {
	return func(f *Firestore) {
		if name != "" {
			f.collection = name
		}
	}
}

// NewFirestore creates a new Firestore repository
func NewFirestore(ctx context.Context, projectID, databaseID string, opts ...FirestoreOption) (interfaces.Repository, error) {
	logger := ctxlog.From(ctx)

	f := &Firestore{collection: DefaultCollection}
	for _, opt := range opts {
		opt(f)
	}

	client, err := firestore.NewClientWithDatabase(ctx, projectID, databaseID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create firestore client")
	}

	// Fail fast on bad project or missing permission
	_, err = client.Collection(f.collection).Limit(1).Documents(ctx).Next()
	if err != nil && err != iterator.Done {
		if status.Code(err) == codes.PermissionDenied || status.Code(err) == codes.Unauthenticated {
			_ = client.Close()
			return nil, goerr.Wrap(err, "failed to connect to firestore project",
				goerr.V("firestore error code", status.Code(err).String()),
			)
		}
		logger.Debug("Firestore connection test returned error (may be empty collection)",
			"error", err,
			"errorCode", status.Code(err).String(),
		)
	}

	logger.Info("Firestore repository initialized successfully",
		"projectID", projectID,
		"databaseID", databaseID,
		"collection", f.collection,
	)

	f.client = client
	return f, nil
}

func (f *Firestore) employees() *firestore.CollectionRef {
	return f.client.Collection(f.collection)
}

// ListEmployees returns all employees in insertion order
func (f *Firestore) ListEmployees(ctx context.Context) (model.Employees, error) {
	iter := f.employees().OrderBy(fieldSeq, firestore.Asc).Documents(ctx)
	defer iter.Stop()

	var employees model.Employees
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate employees")
		}

		var d employeeDoc
		if err := doc.DataTo(&d); err != nil {
			return nil, goerr.Wrap(err, "failed to decode employee", goerr.V("doc", doc.Ref.ID))
		}
		e := d.Employee
		employees = append(employees, &e)
	}

	if employees == nil {
		employees = model.Employees{}
	}
	return employees, nil
}

// GetEmployee retrieves an employee by ID
func (f *Firestore) GetEmployee(ctx context.Context, id types.EmployeeID) (*model.Employee, error) {
	if id == "" {
		return nil, goerr.New("employee ID is empty")
	}

	doc, err := f.employees().Doc(id.String()).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(model.ErrEmployeeNotFound, "failed to get employee", goerr.V("id", id))
		}
		return nil, goerr.Wrap(err, "failed to get employee from firestore", goerr.V("id", id))
	}

	var d employeeDoc
	if err := doc.DataTo(&d); err != nil {
		return nil, goerr.Wrap(err, "failed to decode employee", goerr.V("id", id))
	}
	return &d.Employee, nil
}

// PutEmployee creates or replaces an employee. A replaced employee keeps its position.
func (f *Firestore) PutEmployee(ctx context.Context, employee *model.Employee) error {
	if employee == nil {
		return goerr.New("employee is nil")
	}
	if employee.ID == "" {
		return goerr.New("employee ID is empty")
	}

	ref := f.employees().Doc(employee.ID.String())
	err := f.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		d := employeeDoc{Employee: *employee, Seq: time.Now().UnixNano()}

		doc, err := tx.Get(ref)
		switch {
		case err == nil:
			if seq, err := doc.DataAt(fieldSeq); err == nil {
				if v, ok := seq.(int64); ok {
					d.Seq = v
				}
			}
		case status.Code(err) == codes.NotFound:
		default:
			return goerr.Wrap(err, "failed to get employee document")
		}

		return tx.Set(ref, d)
	})
	if err != nil {
		return goerr.Wrap(err, "failed to put employee", goerr.V("id", employee.ID))
	}

	return nil
}

// UpdateManager sets the manager of an existing employee
func (f *Firestore) UpdateManager(ctx context.Context, id types.EmployeeID, managerID *types.EmployeeID) error {
	if id == "" {
		return goerr.New("employee ID is empty")
	}

	var value any
	if managerID != nil {
		value = managerID.String()
	}

	ref := f.employees().Doc(id.String())
	err := f.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		if _, err := tx.Get(ref); err != nil {
			if status.Code(err) == codes.NotFound {
				return goerr.Wrap(model.ErrEmployeeNotFound, "employee does not exist", goerr.V("id", id))
			}
			return goerr.Wrap(err, "failed to get employee document")
		}
		return tx.Update(ref, []firestore.Update{
			{Path: fieldManagerID, Value: value},
		})
	})
	if err != nil {
		return goerr.Wrap(err, "failed to update manager", goerr.V("id", id))
	}

	return nil
}

// Close closes the Firestore client
func (f *Firestore) Close() error {
	if f.client != nil {
		return f.client.Close()
	}
	return nil
}

var _ interfaces.Repository = (*Firestore)(nil) // Compile-time interface check
