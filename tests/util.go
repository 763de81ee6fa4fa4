package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/trezcool/shule/core/assignment"
	"github.com/trezcool/shule/core/attendance"
	"github.com/trezcool/shule/core/class"
	"github.com/trezcool/shule/core/grade"
	"github.com/trezcool/shule/core/user"
)

func CreateUser(
	t *testing.T,
	repo user.Repository,
	name, role, email string,
	createdAt ...time.Time,
) user.User {
	tstamp := time.Now().UTC()
	if len(createdAt) > 0 {
		tstamp = createdAt[0].UTC()
	}
	usr := user.User{
		Name:      name,
		Role:      role,
		Email:     email,
		CreatedAt: tstamp,
	}
	usr, err := repo.CreateUser(context.Background(), usr)
	if err != nil {
		t.Fatalf("CreateUser() failed: %v", err)
	}
	return usr
}

func CreateClass(
	t *testing.T,
	repo class.Repository,
	name, section, teacher string,
	maleStudents, femaleStudents []string,
	monitor string,
) class.Class {
	now := time.Now().UTC()
	cls := class.Class{
		Name:           name,
		Section:        section,
		ClassTeacher:   teacher,
		MaleStudents:   maleStudents,
		FemaleStudents: femaleStudents,
		Monitor:        monitor,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	cls, err := repo.CreateClass(context.Background(), cls)
	if err != nil {
		t.Fatalf("CreateClass() failed: %v", err)
	}
	return cls
}

func CreateAttendance(
	t *testing.T,
	repo attendance.Repository,
	grd, section string,
	date time.Time,
	statuses map[string]string,
) attendance.Attendance {
	att := attendance.Attendance{
		Grade:     grd,
		Section:   section,
		Date:      date.UTC(),
		Statuses:  statuses,
		CreatedAt: time.Now().UTC(),
	}
	att, err := repo.CreateAttendance(context.Background(), att)
	if err != nil {
		t.Fatalf("CreateAttendance() failed: %v", err)
	}
	return att
}

func CreateAssignment(
	t *testing.T,
	repo assignment.Repository,
	grd, section, title, description string,
	dueDate time.Time,
) assignment.Assignment {
	asg := assignment.Assignment{
		Grade:       grd,
		Section:     section,
		Title:       title,
		Description: description,
		DueDate:     dueDate.UTC(),
		CreatedAt:   time.Now().UTC(),
	}
	asg, err := repo.CreateAssignment(context.Background(), asg)
	if err != nil {
		t.Fatalf("CreateAssignment() failed: %v", err)
	}
	return asg
}

func CreateGrade(
	t *testing.T,
	repo grade.Repository,
	studentID, assignmentID string,
	score float64,
) grade.Grade {
	g := grade.Grade{
		StudentID:    studentID,
		AssignmentID: assignmentID,
		Grade:        score,
	}
	g, err := repo.UpsertGrade(context.Background(), g)
	if err != nil {
		t.Fatalf("CreateGrade() failed: %v", err)
	}
	return g
}
