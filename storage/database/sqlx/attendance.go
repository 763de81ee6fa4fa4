package sqlxrepos

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/jmoiron/sqlx/types"
	"github.com/pkg/errors"

	"github.com/trezcool/shule/core"
	"github.com/trezcool/shule/core/attendance"
)

type attendanceRepository struct {
	db core.DBExecutor
}

var _ attendance.Repository = (*attendanceRepository)(nil) // interface compliance check

func NewAttendanceRepository(db *sqlx.DB) *attendanceRepository {
	return &attendanceRepository{db: db}
}

type attendanceRow struct {
	ID        string         `db:"id"`
	Grade     string         `db:"grade"`
	Section   string         `db:"section"`
	Date      time.Time      `db:"date"`
	Statuses  types.JSONText `db:"statuses"`
	CreatedAt time.Time      `db:"created_at"`
}

func (r attendanceRow) toAttendance() (attendance.Attendance, error) {
	statuses := make(map[string]string)
	if err := json.Unmarshal(r.Statuses, &statuses); err != nil {
		return attendance.Attendance{}, errors.Wrap(err, "unmarshalling attendance statuses")
	}
	return attendance.Attendance{
		ID:        r.ID,
		Grade:     r.Grade,
		Section:   r.Section,
		Date:      r.Date,
		Statuses:  statuses,
		CreatedAt: r.CreatedAt,
	}, nil
}

func (repo attendanceRepository) CreateAttendance(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	att.ID = uuid.New().String()
	statuses, err := json.Marshal(att.Statuses)
	if err != nil {
		return attendance.Attendance{}, errors.Wrap(err, "marshalling attendance statuses")
	}
	_, err = repo.db.ExecContext(ctx,
		`INSERT INTO attendance (id, grade, section, date, statuses, created_at) VALUES ($1, $2, $3, $4, $5, $6)`,
		att.ID, att.Grade, att.Section, att.Date, types.JSONText(statuses), att.CreatedAt,
	)
	if err != nil {
		return attendance.Attendance{}, trapConnErr(err, "inserting attendance")
	}
	return att, nil
}

// newest take first
var attendanceOrdering = core.DBOrdering{Field: "date"}

func (repo attendanceRepository) FilterAttendance(ctx context.Context, grade, section string) ([]attendance.Attendance, error) {
	var rows []attendanceRow
	err := repo.db.SelectContext(ctx, &rows,
		`SELECT * FROM attendance WHERE grade = $1 AND section = $2 ORDER BY `+attendanceOrdering.String(), grade, section)
	if err != nil {
		return nil, trapConnErr(err, "filtering attendance")
	}
	atts := make([]attendance.Attendance, 0, len(rows))
	for _, r := range rows {
		att, err := r.toAttendance()
		if err != nil {
			return nil, err
		}
		atts = append(atts, att)
	}
	return atts, nil
}
