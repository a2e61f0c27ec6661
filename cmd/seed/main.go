// Command seed loads a small set of sample employees into MongoDB.
// Existing documents with the same employee_id are left untouched.
package main

import (
	"context"
	"errors"

	"github.com/peoplehub/employee-api/internal/core/domain"
	"github.com/peoplehub/employee-api/internal/infrastructure/config"
	mongodb "github.com/peoplehub/employee-api/internal/infrastructure/db/mongo"
	"github.com/peoplehub/employee-api/pkg/logger"
)

var sampleEmployees = []domain.Employee{
	{EmployeeID: "E001", Name: "John Doe", Department: "Engineering", Salary: 75000, JoiningDate: "2023-01-15", Skills: []string{"Python", "MongoDB", "APIs"}},
	{EmployeeID: "E002", Name: "Jane Smith", Department: "Engineering", Salary: 85000, JoiningDate: "2023-02-20", Skills: []string{"JavaScript", "React", "Node.js"}},
	{EmployeeID: "E003", Name: "Mike Johnson", Department: "HR", Salary: 60000, JoiningDate: "2023-03-10", Skills: []string{"Recruitment", "Employee Relations", "HRIS"}},
	{EmployeeID: "E004", Name: "Sarah Wilson", Department: "Engineering", Salary: 90000, JoiningDate: "2023-04-05", Skills: []string{"Go", "Kubernetes", "Docker"}},
	{EmployeeID: "E005", Name: "Tom Brown", Department: "Marketing", Salary: 56500, JoiningDate: "2023-05-12", Skills: []string{"SEO", "Content Strategy", "Analytics"}},
}

func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: true})

	ctx := context.Background()

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		_ = client.Disconnect(context.Background())
	}()

	repo := mongodb.NewEmployeeRepository(db)
	if err := repo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("index creation failed")
	}

	seeded := 0
	for i := range sampleEmployees {
		e := sampleEmployees[i]
		err := repo.Insert(ctx, &e)
		if errors.Is(err, domain.ErrDuplicateEmployeeID) {
			log.Debug().Str("employee_id", e.EmployeeID).Msg("already present, skipping")
			continue
		}
		if err != nil {
			log.Fatal().Err(err).Str("employee_id", e.EmployeeID).Msg("seed insert failed")
		}
		seeded++
	}

	log.Info().Int("inserted", seeded).Int("total", len(sampleEmployees)).Msg("seed complete")
}
