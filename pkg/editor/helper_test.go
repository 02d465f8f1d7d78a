package editor_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/orgchart/pkg/domain/interfaces/mocks"
	"github.com/secmon-lab/orgchart/pkg/domain/model"
	"github.com/secmon-lab/orgchart/pkg/domain/types"
	"github.com/secmon-lab/orgchart/pkg/editor"
)

type fakeTimer struct {
	d       time.Duration
	f       func()
	stopped bool
}

func (t *fakeTimer) Stop() bool {
	was := !t.stopped
	t.stopped = true
	return was
}

type fakeClock struct {
	mu     sync.Mutex
	timers []*fakeTimer
}

func (c *fakeClock) AfterFunc(d time.Duration, f func()) editor.Timer {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := &fakeTimer{d: d, f: f}
	c.timers = append(c.timers, t)
	return t
}

// fire runs every pending timer
func (c *fakeClock) fire() {
	c.mu.Lock()
	var pending []*fakeTimer
	for _, t := range c.timers {
		if !t.stopped {
			t.stopped = true
			pending = append(pending, t)
		}
	}
	c.mu.Unlock()

	for _, t := range pending {
		t.f()
	}
}

func (c *fakeClock) last() *fakeTimer {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.timers) == 0 {
		return nil
	}
	return c.timers[len(c.timers)-1]
}

func person(id, managerID, name, designation, team string) *model.Employee {
	return &model.Employee{
		ID:          types.EmployeeID(id),
		EmployeeID:  "EMP0" + id,
		Name:        name,
		Designation: designation,
		Team:        team,
		ManagerID:   types.EmployeeID(managerID).Ptr(),
	}
}

// 1 Alice
// ├── 2 Bob
// │   └── 5 Emma
// │       └── 7 Grace
// │           └── 9 Ivy
// └── 3 Carol
//     └── 18 Ruby
// 10 Kim (separate root)
func sampleOrg() model.Employees {
	return model.Employees{
		person("1", "", "Alice Johnson", "CEO", "Executive"),
		person("2", "1", "Bob Smith", "CTO", "Executive"),
		person("3", "1", "Carol Williams", "CFO", "Executive"),
		person("5", "2", "Emma Davis", "VP Engineering", "Engineering"),
		person("7", "5", "Grace Wilson", "Engineering Manager", "Engineering"),
		person("9", "7", "Ivy Taylor", "Backend Developer", "Engineering"),
		person("18", "3", "Ruby Martinez", "Controller", "Finance"),
		person("10", "", "Kim Lee", "Advisor", "Board"),
	}
}

// fakeServer is a store mock that applies moves to its own copy of the list
type fakeServer struct {
	mu        sync.Mutex
	employees model.Employees
	fail      func(call int) error
	calls     int
}

func newFakeServer(employees model.Employees) *fakeServer {
	return &fakeServer{employees: employees.Clone()}
}

func (s *fakeServer) mock() *mocks.EmployeeStoreMock {
	return &mocks.EmployeeStoreMock{
		ListEmployeesFunc: func(ctx context.Context) (model.Employees, error) {
			s.mu.Lock()
			defer s.mu.Unlock()
			return s.employees.Clone(), nil
		},
		MoveEmployeeFunc: func(ctx context.Context, id types.EmployeeID, managerID *types.EmployeeID) (model.Employees, error) {
			s.mu.Lock()
			defer s.mu.Unlock()
			s.calls++
			if s.fail != nil {
				if err := s.fail(s.calls); err != nil {
					return nil, err
				}
			}
			s.employees = s.employees.Reassign(id, managerID).Clone()
			return s.employees.Clone(), nil
		},
	}
}

type fixture struct {
	store  *mocks.EmployeeStoreMock
	server *fakeServer
	chart  *editor.Chart
	notes  *editor.Notifications
	clock  *fakeClock
	mover  *editor.Mover
	states []string
}

func newFixture(t *testing.T, opts ...editor.MoverOption) *fixture {
	t.Helper()

	f := &fixture{
		server: newFakeServer(sampleOrg()),
		clock:  &fakeClock{},
	}
	f.store = f.server.mock()
	f.chart = editor.NewChart(f.store)
	f.notes = editor.NewNotifications(editor.WithClock(f.clock))

	var mu sync.Mutex
	opts = append(opts, editor.WithMoveObserver(func(ctx context.Context, state model.MoveState) {
		mu.Lock()
		defer mu.Unlock()
		f.states = append(f.states, state.Name())
	}))
	f.mover = editor.NewMover(f.chart, f.store, f.notes, opts...)

	gt.NoError(t, f.chart.Load(context.Background())).Required()
	return f
}

func managers(list model.Employees) map[types.EmployeeID]types.EmployeeID {
	out := make(map[types.EmployeeID]types.EmployeeID, len(list))
	for _, e := range list {
		out[e.ID] = e.Manager()
	}
	return out
}
