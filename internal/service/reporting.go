package service

import (
	"sort"
	"strings"
	"time"

	"whites-admin-backend/internal/domain"
)

// Derived views are pure functions over loaded tables. Nothing in this file
// mutates storage.

// CountBy tallies rows by a key, e.g. status.
func CountBy[T any](rows []T, key func(*T) string) map[string]int {
	counts := make(map[string]int)
	for i := range rows {
		counts[key(&rows[i])]++
	}
	return counts
}

// FilterRows keeps the rows matching the predicate.
func FilterRows[T any](rows []T, match func(*T) bool) []T {
	var out []T
	for i := range rows {
		if match(&rows[i]) {
			out = append(out, rows[i])
		}
	}
	return out
}

// MatchesSearch reports whether any field contains the term,
// case-insensitively. Empty fields never match; an empty term matches
// everything.
func MatchesSearch(term string, fields ...string) bool {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return true
	}
	for _, f := range fields {
		if f == "" {
			continue
		}
		if strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	return false
}

// CategoryOf buckets a categorical value, folding blanks into "Unknown" so
// filters can address rows with no category.
func CategoryOf(value string) string {
	if strings.TrimSpace(value) == "" {
		return "Unknown"
	}
	return value
}

// UtilizationRate is the share of the fleet currently On Hire; 0 for an
// empty fleet.
func UtilizationRate(vehicles []domain.Vehicle) float64 {
	if len(vehicles) == 0 {
		return 0
	}
	onHire := 0
	for i := range vehicles {
		if vehicles[i].Status == domain.VehicleStatusOnHire {
			onHire++
		}
	}
	return float64(onHire) / float64(len(vehicles))
}

// MaintenanceDueItem is one schedule entry relative to the owning vehicle's
// current mileage.
type MaintenanceDueItem struct {
	Record        domain.MaintenanceRecord `json:"record"`
	MilesUntilDue float64                  `json:"miles_until_due"`
}

// MaintenanceDue groups schedules by urgency, each group sorted most urgent
// first.
type MaintenanceDue struct {
	Overdue  []MaintenanceDueItem `json:"overdue"`
	DueSoon  []MaintenanceDueItem `json:"due_soon"`
	Upcoming []MaintenanceDueItem `json:"upcoming"`
}

// ClassifyMaintenanceDue buckets every record carrying a next-due mileage:
// at or past due is overdue, within 1000 miles is due soon, the rest is
// upcoming. Records whose vehicle has no known mileage are skipped.
func ClassifyMaintenanceDue(records []domain.MaintenanceRecord, currentMileage map[string]float64) MaintenanceDue {
	var items []MaintenanceDueItem
	for _, r := range records {
		if r.NextDueMileage == nil {
			continue
		}
		mileage, ok := currentMileage[r.VehicleID]
		if !ok {
			continue
		}
		items = append(items, MaintenanceDueItem{
			Record:        r,
			MilesUntilDue: *r.NextDueMileage - mileage,
		})
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].MilesUntilDue < items[j].MilesUntilDue
	})

	var due MaintenanceDue
	for _, item := range items {
		switch {
		case item.MilesUntilDue <= 0:
			due.Overdue = append(due.Overdue, item)
		case item.MilesUntilDue <= 1000:
			due.DueSoon = append(due.DueSoon, item)
		default:
			due.Upcoming = append(due.Upcoming, item)
		}
	}
	return due
}

// RentalOverdueDays is the signed day count between today and the expected
// return date: positive means overdue, zero due today, negative days
// remaining.
func RentalOverdueDays(r *domain.Rental, today time.Time) (int, error) {
	expected, err := time.Parse("2006-01-02", r.ExpectedReturnDate)
	if err != nil {
		return 0, err
	}
	day := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	return int(day.Sub(expected).Hours() / 24), nil
}

// RentalStatusBoard buckets active rentals by their overdue state, overdue
// rentals most-late first.
type RentalStatusBoard struct {
	Overdue   []OverdueRental `json:"overdue"`
	DueToday  []domain.Rental `json:"due_today"`
	Remaining []domain.Rental `json:"remaining"`
}

// ClassifyActiveRentals inspects only Active rentals; rentals with an
// unparseable expected return date are skipped. Equipment names come from
// the supplied table, keyed by ID.
func ClassifyActiveRentals(rentals []domain.Rental, equipment []domain.Equipment, today time.Time) RentalStatusBoard {
	names := make(map[string]string, len(equipment))
	for i := range equipment {
		names[equipment[i].ID] = equipment[i].Name
	}

	var board RentalStatusBoard
	for _, r := range rentals {
		if r.Status != domain.RentalStatusActive {
			continue
		}
		days, err := RentalOverdueDays(&r, today)
		if err != nil {
			continue
		}
		switch {
		case days > 0:
			board.Overdue = append(board.Overdue, OverdueRental{
				Rental:        r,
				EquipmentName: names[r.EquipmentID],
				DaysOverdue:   days,
			})
		case days == 0:
			board.DueToday = append(board.DueToday, r)
		default:
			board.Remaining = append(board.Remaining, r)
		}
	}
	sort.SliceStable(board.Overdue, func(i, j int) bool {
		return board.Overdue[i].DaysOverdue > board.Overdue[j].DaysOverdue
	})
	return board
}

type AggregateOp string

const (
	AggregateSum   AggregateOp = "sum"
	AggregateCount AggregateOp = "count"
)

// MonthlyPoint is one bucket of a time series, keyed by YYYY-MM.
type MonthlyPoint struct {
	Month string  `json:"month"`
	Value float64 `json:"value"`
}

// MonthlyAggregate buckets rows by the calendar month of their date field and
// sums or counts them, chronologically ordered. Rows with unparseable dates
// are skipped.
func MonthlyAggregate[T any](rows []T, date func(*T) string, value func(*T) float64, op AggregateOp) []MonthlyPoint {
	totals := make(map[string]float64)
	for i := range rows {
		d, err := time.Parse("2006-01-02", date(&rows[i]))
		if err != nil {
			continue
		}
		month := d.Format("2006-01")
		if op == AggregateCount {
			totals[month]++
		} else {
			totals[month] += value(&rows[i])
		}
	}

	months := make([]string, 0, len(totals))
	for m := range totals {
		months = append(months, m)
	}
	sort.Strings(months)

	points := make([]MonthlyPoint, 0, len(months))
	for _, m := range months {
		points = append(points, MonthlyPoint{Month: m, Value: totals[m]})
	}
	return points
}

// DateRange bounds a summary; nil endpoints are open.
type DateRange struct {
	From *time.Time
	To   *time.Time
}

func (r *DateRange) contains(date string) bool {
	if r == nil || (r.From == nil && r.To == nil) {
		return true
	}
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		return false
	}
	if r.From != nil && d.Before(*r.From) {
		return false
	}
	if r.To != nil && d.After(*r.To) {
		return false
	}
	return true
}

// CostSummary aggregates maintenance spend. Average is 0, never NaN, when no
// rows match.
type CostSummary struct {
	Total   float64            `json:"total"`
	Average float64            `json:"average"`
	Count   int                `json:"count"`
	ByType  map[string]float64 `json:"by_type"`
}

func MaintenanceCostSummary(records []domain.MaintenanceRecord, rng *DateRange) CostSummary {
	summary := CostSummary{ByType: make(map[string]float64)}
	for _, r := range records {
		if !rng.contains(r.Date) {
			continue
		}
		summary.Total += r.Cost
		summary.Count++
		summary.ByType[r.Type] += r.Cost
	}
	if summary.Count > 0 {
		summary.Average = summary.Total / float64(summary.Count)
	}
	return summary
}

// RevenueSummary aggregates rental income keyed by equipment, bucketed by
// rental start date. Same zero-count rule as CostSummary.
type RevenueSummary struct {
	Total       float64            `json:"total"`
	Average     float64            `json:"average"`
	Count       int                `json:"count"`
	ByEquipment map[string]float64 `json:"by_equipment"`
}

func RentalRevenueSummary(rentals []domain.Rental, rng *DateRange) RevenueSummary {
	summary := RevenueSummary{ByEquipment: make(map[string]float64)}
	for _, r := range rentals {
		if !rng.contains(r.StartDate) {
			continue
		}
		summary.Total += r.RentalRate
		summary.Count++
		summary.ByEquipment[r.EquipmentID] += r.RentalRate
	}
	if summary.Count > 0 {
		summary.Average = summary.Total / float64(summary.Count)
	}
	return summary
}
