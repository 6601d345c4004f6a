package graphql

import (
	"context"
	"errors"

	"github.com/graphql-go/graphql"
	"github.com/teachteam/backend/internal/app/models/dto"
	"github.com/teachteam/backend/internal/app/services"
	"github.com/teachteam/backend/internal/pkg/apperrors"
)

type contextKey string

// adminContextKey marks requests that carried a valid admin token
const adminContextKey contextKey = "graphqlAdmin"

// WithAdmin marks the context as authenticated for the admin console
func WithAdmin(ctx context.Context) context.Context {
	return context.WithValue(ctx, adminContextKey, true)
}

func requireAdmin(ctx context.Context) error {
	if admin, ok := ctx.Value(adminContextKey).(bool); !ok || !admin {
		return errors.New("admin authentication required")
	}
	return nil
}

// Schema builds the admin console schema over the services
func Schema(svc *services.Services) (graphql.Schema, error) {
	queryType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"allCourses": &graphql.Field{
				Type: graphql.NewList(courseType),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if err := requireAdmin(p.Context); err != nil {
						return nil, err
					}
					return svc.Courses.GetAll(p.Context)
				},
			},
			"course": &graphql.Field{
				Type: courseType,
				Args: graphql.FieldConfigArgument{
					"courseID": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if err := requireAdmin(p.Context); err != nil {
						return nil, err
					}
					return svc.Courses.GetByID(p.Context, int64(p.Args["courseID"].(int)))
				},
			},
			"allLecturers": &graphql.Field{
				Type: graphql.NewList(lecturerType),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if err := requireAdmin(p.Context); err != nil {
						return nil, err
					}
					return svc.Lecturers.GetAll(p.Context)
				},
			},
			"allCandidates": &graphql.Field{
				Type: graphql.NewList(candidateType),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if err := requireAdmin(p.Context); err != nil {
						return nil, err
					}
					return svc.Candidates.GetAll(p.Context)
				},
			},
			"user": &graphql.Field{
				Type: userType,
				Args: graphql.FieldConfigArgument{
					"userID": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if err := requireAdmin(p.Context); err != nil {
						return nil, err
					}
					return svc.Users.GetByID(p.Context, int64(p.Args["userID"].(int)))
				},
			},
			"lecturerCourses": &graphql.Field{
				Type: graphql.NewList(lecturerCourseType),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if err := requireAdmin(p.Context); err != nil {
						return nil, err
					}
					return svc.Courses.Assignments(p.Context)
				},
			},
			"candidatesChosenByCourse": &graphql.Field{
				Type: graphql.NewList(courseWithCandidatesType),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if err := requireAdmin(p.Context); err != nil {
						return nil, err
					}
					return svc.Reports.CandidatesChosenPerCourse(p.Context)
				},
			},
			"candidatesWithMoreThanThreeSelections": &graphql.Field{
				Type: graphql.NewList(candidateType),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if err := requireAdmin(p.Context); err != nil {
						return nil, err
					}
					return svc.Reports.OverselectedCandidates(p.Context)
				},
			},
			"candidatesWithNoSelections": &graphql.Field{
				Type: graphql.NewList(candidateType),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if err := requireAdmin(p.Context); err != nil {
						return nil, err
					}
					return svc.Reports.UnselectedCandidates(p.Context)
				},
			},
		},
	})

	mutationType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"adminLogin": &graphql.Field{
				Type: adminLoginResultType,
				Args: graphql.FieldConfigArgument{
					"username": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"password": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					admin, token, err := svc.Auth.AdminLogin(p.Context,
						p.Args["username"].(string), p.Args["password"].(string))
					if err != nil {
						if errors.Is(err, apperrors.ErrInvalidCredentials) {
							return nil, errors.New("Invalid credentials")
						}
						return nil, err
					}
					return map[string]interface{}{"token": token, "admin": admin}, nil
				},
			},
			"addCourse": &graphql.Field{
				Type: courseType,
				Args: graphql.FieldConfigArgument{
					"code":     &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"name":     &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"semester": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if err := requireAdmin(p.Context); err != nil {
						return nil, err
					}
					return svc.Courses.Create(p.Context, &dto.CreateCourseRequest{
						Code:     p.Args["code"].(string),
						Name:     p.Args["name"].(string),
						Semester: p.Args["semester"].(string),
					})
				},
			},
			"updateCourse": &graphql.Field{
				Type: courseType,
				Args: graphql.FieldConfigArgument{
					"courseID": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
					"code":     &graphql.ArgumentConfig{Type: graphql.String},
					"name":     &graphql.ArgumentConfig{Type: graphql.String},
					"semester": &graphql.ArgumentConfig{Type: graphql.String},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if err := requireAdmin(p.Context); err != nil {
						return nil, err
					}
					req := &dto.UpdateCourseRequest{}
					if code, ok := p.Args["code"].(string); ok {
						req.Code = &code
					}
					if name, ok := p.Args["name"].(string); ok {
						req.Name = &name
					}
					if semester, ok := p.Args["semester"].(string); ok {
						req.Semester = &semester
					}
					return svc.Courses.Update(p.Context, int64(p.Args["courseID"].(int)), req)
				},
			},
			"deleteCourse": &graphql.Field{
				Type: graphql.Boolean,
				Args: graphql.FieldConfigArgument{
					"courseID": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if err := requireAdmin(p.Context); err != nil {
						return nil, err
					}
					if err := svc.Courses.Delete(p.Context, int64(p.Args["courseID"].(int))); err != nil {
						return nil, err
					}
					return true, nil
				},
			},
			"assignLecturerToCourse": &graphql.Field{
				Type: lecturerCourseType,
				Args: graphql.FieldConfigArgument{
					"lecturerID": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
					"courseID":   &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if err := requireAdmin(p.Context); err != nil {
						return nil, err
					}
					return svc.Courses.AssignLecturer(p.Context, &dto.CreateLecturerCourseRequest{
						LecturerID: int64(p.Args["lecturerID"].(int)),
						CourseID:   int64(p.Args["courseID"].(int)),
					})
				},
			},
			"removeLecturerFromCourse": &graphql.Field{
				Type: graphql.Boolean,
				Args: graphql.FieldConfigArgument{
					"lecturerID": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
					"courseID":   &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if err := requireAdmin(p.Context); err != nil {
						return nil, err
					}
					err := svc.Courses.RemoveAssignment(p.Context,
						int64(p.Args["lecturerID"].(int)), int64(p.Args["courseID"].(int)))
					if err != nil {
						return nil, err
					}
					return true, nil
				},
			},
			"blockCandidate": &graphql.Field{
				Type: userType,
				Args: graphql.FieldConfigArgument{
					"candidateID": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if err := requireAdmin(p.Context); err != nil {
						return nil, err
					}
					return setCandidateBlocked(p, svc, true)
				},
			},
			"unblockCandidate": &graphql.Field{
				Type: userType,
				Args: graphql.FieldConfigArgument{
					"candidateID": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if err := requireAdmin(p.Context); err != nil {
						return nil, err
					}
					return setCandidateBlocked(p, svc, false)
				},
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{
		Query:    queryType,
		Mutation: mutationType,
	})
}

// setCandidateBlocked verifies the target really is a candidate before
// flipping the account's blocked flag
func setCandidateBlocked(p graphql.ResolveParams, svc *services.Services, blocked bool) (interface{}, error) {
	candidateID := int64(p.Args["candidateID"].(int))
	if _, err := svc.Candidates.GetByID(p.Context, candidateID); err != nil {
		return nil, err
	}
	return svc.Users.SetBlocked(p.Context, candidateID, blocked)
}
