// Package metrics defines and registers all custom Prometheus metrics for
// the employee API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics are registered with the default registry at package init via
// promauto; the router exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "employee_api"

// EmployeesCreatedTotal counts successfully created employees.
// Label:
//   - department: the department the employee was created in
var EmployeesCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "employees_created_total",
		Help:      "Total number of employees created, by department.",
	},
	[]string{"department"},
)

// IDAllocationRetriesTotal counts create attempts that lost the race for a
// sequential employee id and had to re-allocate.
var IDAllocationRetriesTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "id_allocation_retries_total",
		Help:      "Total number of employee id allocation retries after a duplicate-key conflict.",
	},
)

// SalaryReportCacheTotal counts avg-salary report cache lookups.
// Label:
//   - result: "hit" or "miss"
var SalaryReportCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "salary_report_cache_total",
		Help:      "Total number of average-salary report cache lookups, labelled by result (hit/miss).",
	},
	[]string{"result"},
)

// LoginAttemptsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_attempts_total",
		Help:      "Total number of login attempts, labelled by result.",
	},
	[]string{"result"},
)
