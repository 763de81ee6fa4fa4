package sqlxrepos

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/volatiletech/null/v8"

	"github.com/trezcool/shule/core"
	"github.com/trezcool/shule/core/class"
)

type classRepository struct {
	db core.DBExecutor
}

var _ class.Repository = (*classRepository)(nil) // interface compliance check

func NewClassRepository(db *sqlx.DB) *classRepository {
	return &classRepository{db: db}
}

type classRow struct {
	ID             string         `db:"id"`
	Name           string         `db:"name"`
	Section        string         `db:"section"`
	ClassTeacher   string         `db:"class_teacher"`
	MaleStudents   pq.StringArray `db:"male_students"`
	FemaleStudents pq.StringArray `db:"female_students"`
	Monitor        string         `db:"monitor"`
	Description    null.String    `db:"description"`
	CreatedAt      time.Time      `db:"created_at"`
	UpdatedAt      time.Time      `db:"updated_at"`
}

func (r classRow) toClass() class.Class {
	return class.Class{
		ID:             r.ID,
		Name:           r.Name,
		Section:        r.Section,
		ClassTeacher:   r.ClassTeacher,
		MaleStudents:   r.MaleStudents,
		FemaleStudents: r.FemaleStudents,
		Monitor:        r.Monitor,
		Description:    r.Description.String,
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
	}
}

// trapNoRowsErr maps psql "no rows" err to class.ErrNotFound
func trapNoRowsErr(err error, msg string) error {
	if err == sql.ErrNoRows {
		return class.ErrNotFound
	}
	return trapConnErr(err, msg)
}

// validUUID guards uuid columns against malformed ids; a malformed id can
// never match a record so it is reported as not-found, not as a query error.
func validUUID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

func (repo classRepository) CreateClass(ctx context.Context, cls class.Class) (class.Class, error) {
	cls.ID = uuid.New().String()
	_, err := repo.db.ExecContext(ctx,
		`INSERT INTO class (id, name, section, class_teacher, male_students, female_students, monitor, description, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		cls.ID, cls.Name, cls.Section, cls.ClassTeacher,
		pq.StringArray(cls.MaleStudents), pq.StringArray(cls.FemaleStudents),
		cls.Monitor, null.NewString(cls.Description, cls.Description != ""),
		cls.CreatedAt, cls.UpdatedAt,
	)
	if err != nil {
		return class.Class{}, trapConnErr(err, "inserting class")
	}
	return cls, nil
}

func (repo classRepository) QueryAllClasses(ctx context.Context) ([]class.Class, error) {
	var rows []classRow
	err := repo.db.SelectContext(ctx, &rows, `SELECT * FROM class ORDER BY created_at`)
	if err != nil {
		return nil, trapConnErr(err, "querying classes")
	}
	classes := make([]class.Class, 0, len(rows))
	for _, r := range rows {
		classes = append(classes, r.toClass())
	}
	return classes, nil
}

func (repo classRepository) GetClassByID(ctx context.Context, id string) (class.Class, error) {
	if !validUUID(id) {
		return class.Class{}, class.ErrNotFound
	}
	var r classRow
	err := repo.db.GetContext(ctx, &r, `SELECT * FROM class WHERE id = $1`, id)
	if err != nil {
		return class.Class{}, trapNoRowsErr(err, "getting class")
	}
	return r.toClass(), nil
}

func (repo classRepository) UpdateClass(ctx context.Context, cls class.Class) (class.Class, error) {
	if !validUUID(cls.ID) {
		return class.Class{}, class.ErrNotFound
	}
	var r classRow
	err := repo.db.GetContext(ctx, &r,
		`UPDATE class
		 SET name = $2, section = $3, class_teacher = $4, male_students = $5,
		     female_students = $6, monitor = $7, description = $8, updated_at = $9
		 WHERE id = $1
		 RETURNING *`,
		cls.ID, cls.Name, cls.Section, cls.ClassTeacher,
		pq.StringArray(cls.MaleStudents), pq.StringArray(cls.FemaleStudents),
		cls.Monitor, null.NewString(cls.Description, cls.Description != ""),
		cls.UpdatedAt,
	)
	if err != nil {
		return class.Class{}, trapNoRowsErr(err, "updating class")
	}
	return r.toClass(), nil
}

func (repo classRepository) DeleteClass(ctx context.Context, id string) error {
	if !validUUID(id) {
		return class.ErrNotFound
	}
	res, err := repo.db.ExecContext(ctx, `DELETE FROM class WHERE id = $1`, id)
	if err != nil {
		return trapConnErr(err, "deleting class")
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return class.ErrNotFound
	}
	return nil
}
