// Package analytics derives summary statistics from a snapshot of the job
// collection. All functions are pure; given the same input they always
// return the same output.
package analytics

import (
	"time"

	"jobtrack/internal/domain/models"
)

// MonthNames are the labels for the twelve month buckets, Jan..Dec.
var MonthNames = []string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// StatusCounts counts records per recognized status. Records with an
// unknown or missing status fall into no bucket.
func StatusCounts(jobs []models.JobRecord) map[models.Status]int {
	counts := map[models.Status]int{
		models.StatusApplied:   0,
		models.StatusInterview: 0,
		models.StatusRejected:  0,
		models.StatusAccepted:  0,
	}

	for _, job := range jobs {
		if _, known := counts[job.Status]; known {
			counts[job.Status]++
		}
	}

	return counts
}

// MonthlyCounts buckets records by the calendar month of their application
// date, Jan..Dec. The year is deliberately ignored: all years collapse
// into the same twelve buckets. Records without a date are excluded.
func MonthlyCounts(jobs []models.JobRecord) [12]int {
	var months [12]int

	for _, job := range jobs {
		if job.Date == "" {
			continue
		}
		date, err := time.Parse("2006-01-02", job.Date)
		if err != nil {
			continue
		}
		months[int(date.Month())-1]++
	}

	return months
}

// CumulativeTrend is the running sum of the monthly buckets, in order.
func CumulativeTrend(monthly [12]int) [12]int {
	var trend [12]int

	total := 0
	for i, count := range monthly {
		total += count
		trend[i] = total
	}

	return trend
}
