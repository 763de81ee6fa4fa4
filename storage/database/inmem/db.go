package inmemdb

import (
	"sync"

	"github.com/trezcool/shule/core/assignment"
	"github.com/trezcool/shule/core/attendance"
	"github.com/trezcool/shule/core/class"
	"github.com/trezcool/shule/core/grade"
	"github.com/trezcool/shule/core/user"
)

type (
	DB struct {
		user       *userTable
		class      *classTable
		attendance *attendanceTable
		assignment *assignmentTable
		grade      *gradeTable
	}

	userTable struct {
		sync.RWMutex
		table map[string]*user.User
	}

	classTable struct {
		sync.RWMutex
		table map[string]*class.Class
	}

	attendanceTable struct {
		sync.RWMutex
		table map[string]*attendance.Attendance
	}

	assignmentTable struct {
		sync.RWMutex
		table map[string]*assignment.Assignment
	}

	gradeTable struct {
		sync.RWMutex
		table map[string]*grade.Grade
	}
)

func Open() (*DB, error) {
	db := &DB{
		user:       &userTable{table: make(map[string]*user.User)},
		class:      &classTable{table: make(map[string]*class.Class)},
		attendance: &attendanceTable{table: make(map[string]*attendance.Attendance)},
		assignment: &assignmentTable{table: make(map[string]*assignment.Assignment)},
		grade:      &gradeTable{table: make(map[string]*grade.Grade)},
	}
	return db, nil
}

// Reset empties all tables.
func (db *DB) Reset() {
	db.user.Lock()
	db.user.table = make(map[string]*user.User)
	db.user.Unlock()

	db.class.Lock()
	db.class.table = make(map[string]*class.Class)
	db.class.Unlock()

	db.attendance.Lock()
	db.attendance.table = make(map[string]*attendance.Attendance)
	db.attendance.Unlock()

	db.assignment.Lock()
	db.assignment.table = make(map[string]*assignment.Assignment)
	db.assignment.Unlock()

	db.grade.Lock()
	db.grade.table = make(map[string]*grade.Grade)
	db.grade.Unlock()
}
