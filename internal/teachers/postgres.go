package teachers

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

// contextLevelCourse is the host's context level for courses.
const contextLevelCourse = 50

// Querier is the subset of pgxpool.Pool used by PostgresSource.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

var _ Querier = (*pgxpool.Pool)(nil)

// PostgresSource reads roles and role assignments from the host database.
type PostgresSource struct {
	db     Querier
	prefix string
}

// NewPostgresSource creates a Source over the host tables named with prefix
// (e.g. "mdl_").
func NewPostgresSource(db Querier, prefix string) *PostgresSource {
	return &PostgresSource{db: db, prefix: prefix}
}

func (s *PostgresSource) table(name string) string {
	return pgx.Identifier{s.prefix + name}.Sanitize()
}

// TeacherRoleIDs returns the ids of teacher and editing teacher roles.
func (s *PostgresSource) TeacherRoleIDs(ctx context.Context) ([]int64, error) {
	rows, err := s.db.Query(ctx,
		"SELECT id FROM "+s.table("role")+" WHERE archetype IN ($1, $2) ORDER BY id",
		ArchetypeTeacher, ArchetypeEditingTeacher,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query teacher roles: %w", err)
	}
	ids, err := pgx.CollectRows(rows, pgx.RowTo[int64])
	if err != nil {
		return nil, fmt.Errorf("failed to scan teacher roles: %w", err)
	}
	return ids, nil
}

// CourseTeachers returns the active users holding roleIDs in the course.
func (s *PostgresSource) CourseTeachers(ctx context.Context, courseID int64, roleIDs []int64) ([]User, error) {
	if len(roleIDs) == 0 {
		return nil, nil
	}

	sql := `SELECT DISTINCT u.id, u.firstname, u.lastname, u.firstnamephonetic,
	               u.lastnamephonetic, u.middlename, u.alternatename
	          FROM ` + s.table("user") + ` u
	          JOIN ` + s.table("role_assignments") + ` ra ON ra.userid = u.id
	          JOIN ` + s.table("context") + ` ctx ON ctx.id = ra.contextid
	         WHERE ctx.contextlevel = $1
	           AND ctx.instanceid = $2
	           AND ra.roleid = ANY($3)
	           AND u.deleted = 0
	           AND u.suspended = 0
	      ORDER BY u.lastname, u.firstname`

	rows, err := s.db.Query(ctx, sql, contextLevelCourse, courseID, roleIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query teachers of course %d: %w", courseID, err)
	}
	users, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (User, error) {
		var (
			u                           User
			fnp, lnp, middle, alternate pgtype.Text
		)
		err := row.Scan(&u.ID, &u.FirstName, &u.LastName, &fnp, &lnp, &middle, &alternate)
		u.FirstNamePhonetic = fnp.String
		u.LastNamePhonetic = lnp.String
		u.MiddleName = middle.String
		u.AlternateName = alternate.String
		return u, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan teachers of course %d: %w", courseID, err)
	}
	return users, nil
}
