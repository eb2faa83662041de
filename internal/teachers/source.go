// Package teachers resolves the display names of a course's teachers through
// a two-tier read-through cache.
//
// The first tier is a Session, owned by a single request. The second is a
// durable cache.Store shared by all requests. The roster Source is queried
// only when both tiers miss.
package teachers

import (
	"context"
	"slices"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Teacher role archetypes.
const (
	ArchetypeTeacher        = "teacher"
	ArchetypeEditingTeacher = "editingteacher"
)

// User holds the name fields the host uses to build a full name.
type User struct {
	ID                int64
	FirstName         string
	LastName          string
	FirstNamePhonetic string
	LastNamePhonetic  string
	MiddleName        string
	AlternateName     string
}

// Source reads course rosters from the host database.
type Source interface {
	// TeacherRoleIDs returns the ids of roles whose archetype is teacher or
	// editing teacher.
	TeacherRoleIDs(ctx context.Context) ([]int64, error)

	// CourseTeachers returns distinct active (not deleted, not suspended)
	// users holding any of roleIDs in the course context.
	CourseTeachers(ctx context.Context, courseID int64, roleIDs []int64) ([]User, error)
}

// sortUsers orders users by last name then first name under Brazilian
// Portuguese collation, ignoring case. A Collator is not safe for concurrent
// use, so each call builds its own.
func sortUsers(users []User) {
	c := collate.New(language.BrazilianPortuguese, collate.IgnoreCase)
	slices.SortStableFunc(users, func(a, b User) int {
		if r := c.CompareString(a.LastName, b.LastName); r != 0 {
			return r
		}
		return c.CompareString(a.FirstName, b.FirstName)
	})
}
