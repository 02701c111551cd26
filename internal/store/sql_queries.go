// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/course-api/models"
)

var (
	userColumns = []string{
		"user_id",
		"first_name",
		"last_name",
		"email_address",
		"password_hash",
		"created_at",
		"updated_at",
	}

	courseColumns = []string{
		"course_id",
		"title",
		"description",
		"estimated_time",
		"materials_needed",
		"user_id",
		"created_at",
		"updated_at",
	}

	// ownerColumns is the public projection of the owner joined to a course.
	ownerColumns = []string{
		"u.user_id",
		"u.first_name",
		"u.last_name",
		"u.email_address",
	}
)

func qualified(alias string, columns []string) []string {
	out := make([]string, len(columns))
	for i, c := range columns {
		out[i] = alias + "." + c
	}
	return out
}

func toSQL(b sq.Sqlizer) (string, []any, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildFindUserByEmailQuery(b sq.StatementBuilderType, email string) (string, []any, error) {
	return toSQL(b.Select(userColumns...).
		From(models.User{}.TableName()).
		Where(sq.Eq{"email_address": email}))
}

func buildFindUserByIDQuery(b sq.StatementBuilderType, userID string) (string, []any, error) {
	return toSQL(b.Select(userColumns...).
		From(models.User{}.TableName()).
		Where(sq.Eq{"user_id": userID}))
}

func buildListUsersQuery(b sq.StatementBuilderType) (string, []any, error) {
	return toSQL(b.Select(userColumns...).
		From(models.User{}.TableName()).
		OrderBy("created_at", "user_id"))
}

func buildCreateUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	return toSQL(b.Insert(models.User{}.TableName()).
		Columns(userColumns...).
		Values(
			user.UserID,
			user.FirstName,
			user.LastName,
			user.EmailAddress,
			user.PasswordHash,
			user.CreatedAt,
			user.UpdatedAt,
		))
}

// selectCourses starts a course query. With withOwner the owner columns are
// appended after the course columns via an inner join on users.
func selectCourses(b sq.StatementBuilderType, withOwner bool) sq.SelectBuilder {
	columns := qualified("c", courseColumns)
	if withOwner {
		columns = append(columns, ownerColumns...)
	}

	query := b.Select(columns...).From(models.Course{}.TableName() + " c")
	if withOwner {
		query = query.Join(models.User{}.TableName() + " u ON u.user_id = c.user_id")
	}
	return query
}

func buildFindCourseByIDQuery(b sq.StatementBuilderType, courseID string) (string, []any, error) {
	return toSQL(selectCourses(b, true).Where(sq.Eq{"c.course_id": courseID}))
}

func buildListCoursesQuery(b sq.StatementBuilderType, withOwner bool) (string, []any, error) {
	return toSQL(selectCourses(b, withOwner).OrderBy("c.created_at", "c.course_id"))
}

func buildCreateCourseQuery(b sq.StatementBuilderType, course models.Course) (string, []any, error) {
	return toSQL(b.Insert(models.Course{}.TableName()).
		Columns(courseColumns...).
		Values(
			course.CourseID,
			course.Title,
			course.Description,
			course.EstimatedTime,
			course.MaterialsNeeded,
			course.UserID,
			course.CreatedAt,
			course.UpdatedAt,
		))
}

// buildUpdateCourseQuery never touches user_id or created_at: ownership is
// immutable.
func buildUpdateCourseQuery(b sq.StatementBuilderType, course models.Course) (string, []any, error) {
	return toSQL(b.Update(models.Course{}.TableName()).
		Set("title", course.Title).
		Set("description", course.Description).
		Set("estimated_time", course.EstimatedTime).
		Set("materials_needed", course.MaterialsNeeded).
		Set("updated_at", course.UpdatedAt).
		Where(sq.Eq{"course_id": course.CourseID}))
}

func buildDeleteCourseQuery(b sq.StatementBuilderType, courseID string) (string, []any, error) {
	return toSQL(b.Delete(models.Course{}.TableName()).
		Where(sq.Eq{"course_id": courseID}))
}
