package mongo

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/peoplehub/employee-api/internal/core/domain"
	"github.com/peoplehub/employee-api/internal/core/ports"
)

const collectionEmployees = "employees"

// employeeIDPattern matches well-formed sequential ids. Anything else in the
// collection is ignored by the allocator.
const employeeIDPattern = "^E[0-9]+$"

type EmployeeRepository struct {
	col *mongo.Collection
}

func NewEmployeeRepository(db *mongo.Database) *EmployeeRepository {
	return &EmployeeRepository{col: db.Collection(collectionEmployees)}
}

// NextEmployeeID derives the next sequential id from the numerically highest
// suffix among ids matching ^E[0-9]+$. Suffixes are compared as integers, so
// E099 is followed by E100, and E999 by E1000.
func (r *EmployeeRepository) NextEmployeeID(ctx context.Context) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"employee_id": bson.M{"$regex": employeeIDPattern}}}},
		{{Key: "$addFields", Value: bson.M{
			"numeric_id": bson.M{"$toInt": bson.M{"$substrBytes": bson.A{"$employee_id", 1, bson.M{"$subtract": bson.A{bson.M{"$strLenBytes": "$employee_id"}, 1}}}}},
		}}},
		{{Key: "$sort", Value: bson.M{"numeric_id": -1}}},
		{{Key: "$limit", Value: 1}},
	}

	cursor, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return "", fmt.Errorf("allocate id: %w", err)
	}
	defer cursor.Close(ctx)

	var results []struct {
		NumericID int `bson:"numeric_id"`
	}
	if err := cursor.All(ctx, &results); err != nil {
		return "", fmt.Errorf("allocate id: %w", err)
	}

	next := 1
	if len(results) > 0 {
		next = results[0].NumericID + 1
	}
	return fmt.Sprintf("E%03d", next), nil
}

// Insert persists a new employee document. The unique index on employee_id
// turns a concurrent allocation race into a duplicate-key error, surfaced as
// domain.ErrDuplicateEmployeeID for the service to retry on.
func (r *EmployeeRepository) Insert(ctx context.Context, e *domain.Employee) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.InsertOne(ctx, e)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrDuplicateEmployeeID
		}
		return fmt.Errorf("insert employee: %w", err)
	}
	return nil
}

func (r *EmployeeRepository) FindByEmployeeID(ctx context.Context, employeeID string) (*domain.Employee, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var e domain.Employee
	err := r.col.FindOne(ctx, bson.M{"employee_id": employeeID}).Decode(&e)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("find employee: %w", err)
	}
	return &e, nil
}

// Update applies a partial $set of the supplied patch fields. A matched
// document counts as success even when nothing actually changed.
func (r *EmployeeRepository) Update(ctx context.Context, employeeID string, patch ports.EmployeePatch) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	set := bson.M{}
	if patch.Name != nil {
		set["name"] = *patch.Name
	}
	if patch.Department != nil {
		set["department"] = *patch.Department
	}
	if patch.Salary != nil {
		set["salary"] = *patch.Salary
	}
	if patch.JoiningDate != nil {
		set["joining_date"] = *patch.JoiningDate
	}
	if patch.Skills != nil {
		set["skills"] = patch.Skills
	}

	res, err := r.col.UpdateOne(ctx, bson.M{"employee_id": employeeID}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("update employee: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrEmployeeNotFound
	}
	return nil
}

func (r *EmployeeRepository) Delete(ctx context.Context, employeeID string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"employee_id": employeeID})
	if err != nil {
		return fmt.Errorf("delete employee: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrEmployeeNotFound
	}
	return nil
}

// List returns a page of employees matching filter and the total match
// count. Sorted by joining_date descending; _id ascending breaks ties in
// insertion order.
func (r *EmployeeRepository) List(ctx context.Context, filter ports.ListEmployeesFilter) ([]*domain.Employee, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{}
	if filter.Department != "" {
		query["department"] = filter.Department
	}
	if filter.Skill != "" {
		// Substring match, not a user-supplied regex.
		query["skills"] = bson.M{"$regex": regexp.QuoteMeta(filter.Skill), "$options": "i"}
	}

	total, err := r.col.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("count employees: %w", err)
	}

	opts := options.Find().SetSort(bson.D{{Key: "joining_date", Value: -1}, {Key: "_id", Value: 1}})
	if filter.Limit > 0 {
		opts = opts.SetSkip(filter.Offset).SetLimit(filter.Limit)
	}

	cursor, err := r.col.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("list employees: %w", err)
	}
	defer cursor.Close(ctx)

	employees := make([]*domain.Employee, 0)
	if err := cursor.All(ctx, &employees); err != nil {
		return nil, 0, fmt.Errorf("list employees: %w", err)
	}
	return employees, total, nil
}

// AverageSalaryByDepartment runs the aggregation pipeline: group by
// department, average the salaries, round to 2 decimals, sort by department
// name ascending.
func (r *EmployeeRepository) AverageSalaryByDepartment(ctx context.Context) ([]ports.DepartmentAverage, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{
			"_id":        "$department",
			"avg_salary": bson.M{"$avg": "$salary"},
		}}},
		{{Key: "$project", Value: bson.M{
			"_id":        0,
			"department": "$_id",
			"avg_salary": bson.M{"$round": bson.A{"$avg_salary", 2}},
		}}},
		{{Key: "$sort", Value: bson.M{"department": 1}}},
	}

	cursor, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("aggregate salaries: %w", err)
	}
	defer cursor.Close(ctx)

	rows := make([]ports.DepartmentAverage, 0)
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("aggregate salaries: %w", err)
	}
	return rows, nil
}

// EnsureIndexes creates the indexes the repository relies on. The unique
// index on employee_id is load-bearing: it is what makes concurrent id
// allocation safe.
func (r *EmployeeRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "employee_id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{Keys: bson.D{{Key: "department", Value: 1}}},
		{Keys: bson.D{{Key: "joining_date", Value: -1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
