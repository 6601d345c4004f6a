package graphql

import (
	"github.com/graphql-go/graphql"
	"github.com/teachteam/backend/internal/app/models"
	"github.com/teachteam/backend/internal/app/models/dto"
)

// GraphQL enum names cannot carry hyphens, so the wire values use
// underscores and map back to the stored availability strings.
var availabilityEnum = graphql.NewEnum(graphql.EnumConfig{
	Name: "Availability",
	Values: graphql.EnumValueConfigMap{
		"part_time": &graphql.EnumValueConfig{Value: string(models.PartTime)},
		"full_time": &graphql.EnumValueConfig{Value: string(models.FullTime)},
	},
})

var courseType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Course",
	Fields: graphql.Fields{
		"courseID": &graphql.Field{
			Type: graphql.NewNonNull(graphql.Int),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(*models.Course).ID, nil
			},
		},
		"code": &graphql.Field{
			Type: graphql.NewNonNull(graphql.String),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(*models.Course).Code, nil
			},
		},
		"name": &graphql.Field{
			Type: graphql.NewNonNull(graphql.String),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(*models.Course).Name, nil
			},
		},
		"semester": &graphql.Field{
			Type: graphql.NewNonNull(graphql.String),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(*models.Course).Semester, nil
			},
		},
	},
})

var userType = graphql.NewObject(graphql.ObjectConfig{
	Name: "User",
	Fields: graphql.Fields{
		"userID": &graphql.Field{
			Type: graphql.NewNonNull(graphql.Int),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(*models.User).ID, nil
			},
		},
		"email": &graphql.Field{
			Type: graphql.NewNonNull(graphql.String),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(*models.User).Email, nil
			},
		},
		"firstName": &graphql.Field{
			Type: graphql.NewNonNull(graphql.String),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(*models.User).FirstName, nil
			},
		},
		"lastName": &graphql.Field{
			Type: graphql.NewNonNull(graphql.String),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(*models.User).LastName, nil
			},
		},
		"role": &graphql.Field{
			Type: graphql.NewNonNull(graphql.String),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return string(p.Source.(*models.User).Role), nil
			},
		},
		"isBlocked": &graphql.Field{
			Type: graphql.NewNonNull(graphql.Boolean),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(*models.User).IsBlocked, nil
			},
		},
	},
})

var candidateType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Candidate",
	Fields: graphql.Fields{
		"candidateID": &graphql.Field{
			Type: graphql.NewNonNull(graphql.Int),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(*models.Candidate).ID, nil
			},
		},
		"user": &graphql.Field{
			Type: userType,
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(*models.Candidate).User, nil
			},
		},
		"previousRoles": &graphql.Field{
			Type: graphql.String,
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(*models.Candidate).PreviousRoles, nil
			},
		},
		"availability": &graphql.Field{
			Type: availabilityEnum,
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				availability := p.Source.(*models.Candidate).Availability
				if availability == nil {
					return nil, nil
				}
				return string(*availability), nil
			},
		},
		"skills": &graphql.Field{
			Type: graphql.String,
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(*models.Candidate).Skills, nil
			},
		},
		"academicCredentials": &graphql.Field{
			Type: graphql.String,
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(*models.Candidate).AcademicCredentials, nil
			},
		},
	},
})

var lecturerType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Lecturer",
	Fields: graphql.Fields{
		"lecturerID": &graphql.Field{
			Type: graphql.NewNonNull(graphql.Int),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(*models.Lecturer).ID, nil
			},
		},
		"user": &graphql.Field{
			Type: userType,
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(*models.Lecturer).User, nil
			},
		},
	},
})

var lecturerCourseType = graphql.NewObject(graphql.ObjectConfig{
	Name: "LecturerCourse",
	Fields: graphql.Fields{
		"lecturerID": &graphql.Field{
			Type: graphql.NewNonNull(graphql.Int),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(*models.LecturerCourse).LecturerID, nil
			},
		},
		"courseID": &graphql.Field{
			Type: graphql.NewNonNull(graphql.Int),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(*models.LecturerCourse).CourseID, nil
			},
		},
		"lecturer": &graphql.Field{
			Type: lecturerType,
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(*models.LecturerCourse).Lecturer, nil
			},
		},
		"course": &graphql.Field{
			Type: courseType,
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(*models.LecturerCourse).Course, nil
			},
		},
	},
})

var adminType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Admin",
	Fields: graphql.Fields{
		"adminID": &graphql.Field{
			Type: graphql.NewNonNull(graphql.Int),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(*models.Admin).ID, nil
			},
		},
		"username": &graphql.Field{
			Type: graphql.NewNonNull(graphql.String),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(*models.Admin).Username, nil
			},
		},
	},
})

var adminLoginResultType = graphql.NewObject(graphql.ObjectConfig{
	Name: "AdminLoginResult",
	Fields: graphql.Fields{
		"token": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"admin": &graphql.Field{Type: adminType},
	},
})

var courseWithCandidatesType = graphql.NewObject(graphql.ObjectConfig{
	Name: "CourseWithSelectedCandidates",
	Fields: graphql.Fields{
		"course": &graphql.Field{
			Type: courseType,
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				row := p.Source.(*dto.CourseWithSelectedCandidates)
				return &row.Course, nil
			},
		},
		"selectedCandidates": &graphql.Field{
			Type: graphql.NewList(candidateType),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(*dto.CourseWithSelectedCandidates).SelectedCandidates, nil
			},
		},
	},
})
